package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundwise/sipadvisor/internal/database"
	apperrors "github.com/fundwise/sipadvisor/internal/errors"
	"github.com/fundwise/sipadvisor/internal/models"
)

type RecommendationRepository struct {
	db *database.DB
}

func NewRecommendationRepository(db *database.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// Replace drops the user's saved recommendations and stores the new
// set in a single transaction.
func (r *RecommendationRepository) Replace(ctx context.Context, userID uuid.UUID, recs []models.Recommendation) error {
	err := r.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM recommendations WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("delete recommendations: %w", err)
		}

		for _, rec := range recs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO recommendations (user_id, fund_name, fund_type, allocation_percentage, monthly_investment, expected_return, risk_level)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, userID, rec.FundName, rec.FundType, rec.AllocationPercent, rec.MonthlyInvestment, rec.ExpectedReturn, rec.RiskLevel)
			if err != nil {
				return fmt.Errorf("insert recommendation: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return apperrors.NewDatabaseError("replace recommendations", err)
	}
	return nil
}

// ListByUser returns the user's saved recommendations, batch order
// preserved by insertion id. Limit and offset are clamped to sane
// bounds before hitting the database.
func (r *RecommendationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.SavedRecommendation, error) {
	qb := database.NewQueryBuilder()
	qb.AddParam("user_id", userID)
	qb.AddParam("limit", database.SafeLimit(limit))
	qb.AddParam("offset", database.SafeOffset(offset))

	query, args := qb.Build(`
		SELECT id, user_id, fund_name, fund_type, allocation_percentage, monthly_investment, expected_return, risk_level, created_at
		FROM recommendations
		WHERE user_id = @user_id
		ORDER BY id
		LIMIT @limit OFFSET @offset
	`)

	rows, err := r.db.QuerySafe(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list recommendations", err)
	}
	defer rows.Close()

	var recs []models.SavedRecommendation
	for rows.Next() {
		var rec models.SavedRecommendation
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.FundName,
			&rec.FundType,
			&rec.AllocationPercent,
			&rec.MonthlyInvestment,
			&rec.ExpectedReturn,
			&rec.RiskLevel,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewDatabaseError("scan recommendation", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("list recommendations", err)
	}

	return recs, nil
}
