package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// RecurringRuleModel represents the recurring_rules table in the database.
type RecurringRuleModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency   string          `gorm:"type:varchar(10);not null"`
	StartDate   time.Time       `gorm:"type:date;not null"`
	EndDate     *time.Time      `gorm:"type:date"`
	NextRunDate time.Time       `gorm:"type:date;not null;index:idx_recurring_rules_due,priority:2"`
	Note        *string         `gorm:"type:text"`
	IsActive    bool            `gorm:"not null;default:true;index:idx_recurring_rules_due,priority:1"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringRuleModel.
func (RecurringRuleModel) TableName() string {
	return "recurring_rules"
}

// ToEntity converts a RecurringRuleModel to a domain RecurringRule entity.
func (m *RecurringRuleModel) ToEntity() *entity.RecurringRule {
	var endDate *time.Time
	if m.EndDate != nil {
		d := entity.DateOf(*m.EndDate)
		endDate = &d
	}

	return &entity.RecurringRule{
		ID:          m.ID,
		UserID:      m.UserID,
		AccountID:   m.AccountID,
		CategoryID:  m.CategoryID,
		Type:        entity.EntryType(m.Type),
		Amount:      m.Amount,
		Frequency:   entity.Frequency(m.Frequency),
		StartDate:   entity.DateOf(m.StartDate),
		EndDate:     endDate,
		NextRunDate: entity.DateOf(m.NextRunDate),
		Note:        m.Note,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// RecurringRuleFromEntity creates a RecurringRuleModel from a domain RecurringRule entity.
func RecurringRuleFromEntity(rule *entity.RecurringRule) *RecurringRuleModel {
	return &RecurringRuleModel{
		ID:          rule.ID,
		UserID:      rule.UserID,
		AccountID:   rule.AccountID,
		CategoryID:  rule.CategoryID,
		Type:        string(rule.Type),
		Amount:      rule.Amount,
		Frequency:   string(rule.Frequency),
		StartDate:   entity.DateOf(rule.StartDate),
		EndDate:     rule.EndDate,
		NextRunDate: entity.DateOf(rule.NextRunDate),
		Note:        rule.Note,
		IsActive:    rule.IsActive,
		CreatedAt:   rule.CreatedAt,
		UpdatedAt:   rule.UpdatedAt,
	}
}
