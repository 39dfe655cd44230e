package recommendation

import (
	"github.com/fundwise/sipadvisor/internal/catalog"
	apperrors "github.com/fundwise/sipadvisor/internal/errors"
	"github.com/fundwise/sipadvisor/internal/models"
)

// BaseAllocation returns the static debt/hybrid/equity split for a risk
// profile.
func BaseAllocation(profile models.RiskProfile) (models.Allocation, error) {
	alloc, ok := catalog.BaseAllocation(profile)
	if !ok {
		return models.Allocation{}, apperrors.NewInvalidRiskProfileError(string(profile))
	}
	return alloc, nil
}
