package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fundwise/sipadvisor/internal/database"
	apperrors "github.com/fundwise/sipadvisor/internal/errors"
	"github.com/fundwise/sipadvisor/internal/models"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user profile. Duplicate emails are rejected.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()

	qb := database.NewQueryBuilder()
	qb.AddParam("id", user.ID)
	qb.AddParam("name", user.Name)
	qb.AddParam("email", user.Email)
	qb.AddParam("risk_profile", string(user.RiskProfile))
	qb.AddParam("investment_years", user.InvestmentYears)
	qb.AddParam("monthly_investment", user.MonthlyInvestment)

	query, args := qb.Build(`
		INSERT INTO users (id, name, email, risk_profile, investment_years, monthly_investment)
		VALUES (@id, @name, @email, @risk_profile, @investment_years, @monthly_investment)
		RETURNING created_at, updated_at
	`)

	err := r.db.QueryRowSafe(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return apperrors.NewDuplicateUserError(user.Email)
		}
		return apperrors.NewDatabaseError("create user", err)
	}

	return nil
}

// Upsert inserts the user when the email is new, otherwise updates the
// investment parameters of the existing profile. The user's ID is
// populated either way.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	existing, err := r.GetByEmail(ctx, user.Email)
	if err != nil {
		var appErr *apperrors.Error
		if !errors.As(err, &appErr) || appErr.Type != apperrors.ErrorTypeNotFound {
			return err
		}
		return r.Create(ctx, user)
	}

	user.ID = existing.ID
	user.CreatedAt = existing.CreatedAt

	qb := database.NewQueryBuilder()
	qb.AddParam("id", user.ID)
	qb.AddParam("risk_profile", string(user.RiskProfile))
	qb.AddParam("investment_years", user.InvestmentYears)
	qb.AddParam("monthly_investment", user.MonthlyInvestment)

	query, args := qb.Build(`
		UPDATE users
		SET risk_profile = @risk_profile,
		    investment_years = @investment_years,
		    monthly_investment = @monthly_investment,
		    updated_at = NOW()
		WHERE id = @id
	`)

	result, err := r.db.ExecSafe(ctx, query, args...)
	if err != nil {
		return apperrors.NewDatabaseError("update user", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		// Profile deleted between the lookup and the update.
		return apperrors.NewUserNotFoundError(user.ID.String())
	}

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	qb := database.NewQueryBuilder()
	qb.AddParam("email", email)

	query, args := qb.Build(`
		SELECT id, name, email, risk_profile, investment_years, monthly_investment, created_at, updated_at
		FROM users
		WHERE email = @email
	`)

	return r.scanUser(r.db.QueryRowSafe(ctx, query, args...), email)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	qb := database.NewQueryBuilder()
	qb.AddParam("id", id)

	query, args := qb.Build(`
		SELECT id, name, email, risk_profile, investment_years, monthly_investment, created_at, updated_at
		FROM users
		WHERE id = @id
	`)

	return r.scanUser(r.db.QueryRowSafe(ctx, query, args...), id.String())
}

func (r *UserRepository) scanUser(row *sql.Row, ref string) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.RiskProfile,
		&user.InvestmentYears,
		&user.MonthlyInvestment,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewUserNotFoundError(ref)
		}
		return nil, apperrors.NewDatabaseError("get user", err)
	}
	return &user, nil
}
