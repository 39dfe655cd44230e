package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fundwise/sipadvisor/internal/models"
)

// FundDataCache layers typed accessors for fund payloads and the API
// availability flag over a Store.
type FundDataCache struct {
	store           Store
	fundTTL         time.Duration
	availabilityTTL time.Duration
}

func NewFundDataCache(store Store, fundTTL, availabilityTTL time.Duration) *FundDataCache {
	return &FundDataCache{
		store:           store,
		fundTTL:         fundTTL,
		availabilityTTL: availabilityTTL,
	}
}

func fundKey(schemeCode string) string {
	return fmt.Sprintf("fund:data:%s", schemeCode)
}

// GetFundDetails returns the cached payload for a scheme code, or nil on
// a miss. Cache failures are returned so callers can log and continue.
func (c *FundDataCache) GetFundDetails(ctx context.Context, schemeCode string) (*models.FundDetails, error) {
	data, ok, err := c.store.Get(ctx, fundKey(schemeCode))
	if err != nil || !ok {
		return nil, err
	}

	var details models.FundDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *FundDataCache) SetFundDetails(ctx context.Context, schemeCode string, details *models.FundDetails) error {
	data, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, fundKey(schemeCode), data, c.fundTTL)
}

// GetAvailability returns the cached API availability flag. The second
// return value is false when no probe result is cached.
func (c *FundDataCache) GetAvailability(ctx context.Context) (available bool, ok bool) {
	data, found, err := c.store.Get(ctx, "fund:api:available")
	if err != nil || !found {
		return false, false
	}
	v, err := strconv.ParseBool(string(data))
	if err != nil {
		return false, false
	}
	return v, true
}

func (c *FundDataCache) SetAvailability(ctx context.Context, available bool) error {
	return c.store.Set(ctx, "fund:api:available", []byte(strconv.FormatBool(available)), c.availabilityTTL)
}
