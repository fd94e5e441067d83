// Package testutil provides shared fixtures for database-backed tests.
package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	"github.com/finance-tracker/bookkeeping/internal/integration/persistence/model"
)

// NewTestDB opens a private in-memory SQLite database with every model migrated.
// A single connection is used so that a transaction and the code under test
// always see the same database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	dbSQL, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		_ = dbSQL.Close()
	})

	return db
}

// Seed inserts ledger rows directly, bypassing use case validation.
type Seed struct {
	t  testing.TB
	db *gorm.DB
}

// NewSeed creates a seeder bound to db.
func NewSeed(t testing.TB, db *gorm.DB) *Seed {
	return &Seed{t: t, db: db}
}

// User inserts a user.
func (s *Seed) User(email string) *entity.User {
	s.t.Helper()
	user := entity.NewUser(email, "Test User", "hash")
	s.create(model.UserFromEntity(user))
	return user
}

// Account inserts an active account with the given starting balance.
func (s *Seed) Account(userID uuid.UUID, name string, startingBalance string) *entity.Account {
	s.t.Helper()
	account := entity.NewAccount(userID, name, entity.AccountTypeBank, decimal.RequireFromString(startingBalance))
	s.create(model.AccountFromEntity(account))
	return account
}

// Category inserts a category under an optional parent.
func (s *Seed) Category(userID uuid.UUID, name string, categoryType entity.EntryType, parent *entity.Category) *entity.Category {
	s.t.Helper()
	var parentID *uuid.UUID
	if parent != nil {
		parentID = &parent.ID
	}
	category := entity.NewCategory(userID, name, categoryType, parentID)
	s.create(model.CategoryFromEntity(category))
	return category
}

// Transaction inserts a plain transaction.
func (s *Seed) Transaction(account *entity.Account, category *entity.Category, amount string, date string) *entity.Transaction {
	s.t.Helper()
	txn := entity.NewTransaction(account.UserID, account.ID, category.ID, category.Type, Date(s.t, date), decimal.RequireFromString(amount), nil, nil, time.Now())
	s.create(model.TransactionFromEntity(txn))
	return txn
}

// Rule inserts a recurring rule and forces its next run date.
func (s *Seed) Rule(account *entity.Account, category *entity.Category, amount string, frequency entity.Frequency, start string, end string, nextRun string) *entity.RecurringRule {
	s.t.Helper()
	var endDate *time.Time
	if end != "" {
		d := Date(s.t, end)
		endDate = &d
	}
	rule := entity.NewRecurringRule(account.UserID, account.ID, category.ID, category.Type, decimal.RequireFromString(amount), frequency, Date(s.t, start), endDate, nil)
	if nextRun != "" {
		rule.NextRunDate = Date(s.t, nextRun)
	}
	s.create(model.RecurringRuleFromEntity(rule))
	return rule
}

func (s *Seed) create(value interface{}) {
	s.t.Helper()
	if err := s.db.Create(value).Error; err != nil {
		s.t.Fatalf("failed to seed %T: %v", value, err)
	}
}

// Date parses a YYYY-MM-DD date at midnight UTC.
func Date(t testing.TB, value string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		t.Fatalf("invalid date %q: %v", value, err)
	}
	return d
}

// FixedClock is an adapter.Clock that always returns the same instant.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}
