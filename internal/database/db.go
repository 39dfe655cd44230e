package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

type DB struct {
	*sql.DB
}

func New(db *sql.DB) *DB {
	return &DB{db}
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return New(db), nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(120) NOT NULL UNIQUE,
		risk_profile VARCHAR(20) NOT NULL,
		investment_years INTEGER NOT NULL,
		monthly_investment DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS recommendations (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		fund_name VARCHAR(200) NOT NULL,
		fund_type VARCHAR(50) NOT NULL,
		allocation_percentage DOUBLE PRECISION NOT NULL,
		monthly_investment DOUBLE PRECISION NOT NULL,
		expected_return DOUBLE PRECISION NOT NULL,
		risk_level VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_recommendations_user_id ON recommendations (user_id)`,
}

// EnsureSchema creates the tables used by the service if missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (db *DB) ExecSafe(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("execute statement: %w", err)
	}

	return result, nil
}

func (db *DB) QuerySafe(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}

	return rows, nil
}

func (db *DB) QueryRowSafe(ctx context.Context, query string, args ...interface{}) *sql.Row {
	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return db.QueryRowContext(ctx, "SELECT 1 WHERE false")
	}
	defer stmt.Close()

	return stmt.QueryRowContext(ctx, args...)
}

type QueryBuilder struct {
	args   []interface{}
	params map[string]interface{}
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		params: make(map[string]interface{}),
	}
}

func (qb *QueryBuilder) AddParam(name string, value interface{}) {
	qb.params[name] = value
}

func (qb *QueryBuilder) Build(baseQuery string) (string, []interface{}) {
	paramCount := 1
	query := baseQuery

	for name, value := range qb.params {
		placeholder := fmt.Sprintf("@%s", name)
		if strings.Contains(query, placeholder) {
			query = strings.ReplaceAll(query, placeholder, fmt.Sprintf("$%d", paramCount))
			qb.args = append(qb.args, value)
			paramCount++
		}
	}

	return query, qb.args
}

type TxFn func(*sql.Tx) error

func (db *DB) WithTransaction(ctx context.Context, fn TxFn) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func SafeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func SafeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
