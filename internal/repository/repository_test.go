package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundwise/sipadvisor/internal/database"
	apperrors "github.com/fundwise/sipadvisor/internal/errors"
	"github.com/fundwise/sipadvisor/internal/models"
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.New(db), mock
}

func sampleUser() *models.User {
	return &models.User{
		Name:              "Asha",
		Email:             "asha@example.com",
		RiskProfile:       models.RiskMedium,
		InvestmentYears:   10,
		MonthlyInvestment: 10000,
	}
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts and fills timestamps", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		user := sampleUser()

		now := time.Now()
		mock.ExpectPrepare("INSERT INTO users").
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.Create(ctx, user))
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, now, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email maps to a conflict error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectPrepare("INSERT INTO users").
			ExpectQuery().
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, sampleUser())
		var appErr *apperrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	})
}

func TestUserRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	userRow := func(id uuid.UUID) *sqlmock.Rows {
		now := time.Now()
		return sqlmock.NewRows([]string{
			"id", "name", "email", "risk_profile", "investment_years", "monthly_investment", "created_at", "updated_at",
		}).AddRow(id, "Asha", "asha@example.com", "low", 5, 5000, now, now)
	}

	t.Run("updates an existing profile", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		existingID := uuid.New()

		mock.ExpectPrepare("SELECT (.+) FROM users").
			ExpectQuery().
			WithArgs("asha@example.com").
			WillReturnRows(userRow(existingID))
		mock.ExpectPrepare("UPDATE users").
			ExpectExec().
			WillReturnResult(sqlmock.NewResult(0, 1))

		user := sampleUser()
		require.NoError(t, repo.Upsert(ctx, user))
		assert.Equal(t, existingID, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("profile vanishing mid-upsert maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectPrepare("SELECT (.+) FROM users").
			ExpectQuery().
			WithArgs("asha@example.com").
			WillReturnRows(userRow(uuid.New()))
		mock.ExpectPrepare("UPDATE users").
			ExpectExec().
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Upsert(ctx, sampleUser())
		var appErr *apperrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})

	t.Run("creates when the email is unknown", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectPrepare("SELECT (.+) FROM users").
			ExpectQuery().
			WithArgs("asha@example.com").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectPrepare("INSERT INTO users").
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))

		user := sampleUser()
		require.NoError(t, repo.Upsert(ctx, user))
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates lookup failures", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectPrepare("SELECT (.+) FROM users").
			ExpectQuery().
			WillReturnError(errors.New("connection reset"))

		err := repo.Upsert(ctx, sampleUser())
		var appErr *apperrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		id := uuid.New()

		mock.ExpectPrepare("SELECT (.+) FROM users").
			ExpectQuery().
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, id)
		var appErr *apperrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})

	t.Run("scans the full row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		id := uuid.New()
		now := time.Now()

		mock.ExpectPrepare("SELECT (.+) FROM users").
			ExpectQuery().
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "email", "risk_profile", "investment_years", "monthly_investment", "created_at", "updated_at",
			}).AddRow(id, "Asha", "asha@example.com", "medium", 10, 10000.0, now, now))

		user, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, models.RiskMedium, user.RiskProfile)
		assert.Equal(t, 10, user.InvestmentYears)
	})
}

func TestRecommendationRepository_Replace(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	recs := []models.Recommendation{
		{FundName: "HDFC Corporate Bond Fund", FundType: "Debt Funds", AllocationPercent: 40, MonthlyInvestment: 4000, ExpectedReturn: 7.5, RiskLevel: "Medium"},
		{FundName: "Axis Bluechip Fund", FundType: "Equity Funds", AllocationPercent: 60, MonthlyInvestment: 6000, ExpectedReturn: 13.5, RiskLevel: "Medium"},
	}

	t.Run("deletes then inserts within one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecommendationRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM recommendations").
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("INSERT INTO recommendations").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO recommendations").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Replace(ctx, userID, recs))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when an insert fails", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecommendationRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM recommendations").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO recommendations").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.Replace(ctx, userID, recs)
		var appErr *apperrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecommendationRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	savedRows := func(now time.Time) *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "user_id", "fund_name", "fund_type", "allocation_percentage", "monthly_investment", "expected_return", "risk_level", "created_at",
		}).
			AddRow(1, userID, "HDFC Corporate Bond Fund", "Debt Funds", 40.0, 4000.0, 7.5, "Medium", now).
			AddRow(2, userID, "Axis Bluechip Fund", "Equity Funds", 60.0, 6000.0, 13.5, "Medium", now)
	}

	t.Run("scans saved rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecommendationRepository(db)

		mock.ExpectPrepare("SELECT (.+) FROM recommendations").
			ExpectQuery().
			WillReturnRows(savedRows(time.Now()))

		recs, err := repo.ListByUser(ctx, userID, 50, 0)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, int64(1), recs[0].ID)
		assert.Equal(t, "Axis Bluechip Fund", recs[1].FundName)
		assert.Equal(t, userID, recs[1].UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("out-of-range paging is clamped before the query", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecommendationRepository(db)

		mock.ExpectPrepare("SELECT (.+) FROM recommendations").
			ExpectQuery().
			WillReturnRows(savedRows(time.Now()))

		_, err := repo.ListByUser(ctx, userID, -5, -10)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
