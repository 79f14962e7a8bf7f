package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type RecordType string

const (
	RecordTypeIncome  RecordType = "income"
	RecordTypeExpense RecordType = "expense"
)

type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusCompleted RecordStatus = "completed"
	RecordStatusCancelled RecordStatus = "cancelled"
)

// Record is a single cash movement in the agency's books.
type Record struct {
	ID            snowflake.ID `gorm:"primaryKey"`
	Type          RecordType   `gorm:"type:text;not null;index"`
	Category      string       `gorm:"type:text;not null"`
	Amount        float64      `gorm:"not null"`
	Description   string       `gorm:"type:text;not null"`
	Date          time.Time    `gorm:"not null;index"`
	PaymentMethod string       `gorm:"type:text"`
	Status        RecordStatus `gorm:"type:text;not null;default:'pending';index"`
	Notes         string       `gorm:"type:text"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "finance_records" }

func ValidRecordType(t RecordType) bool {
	return t == RecordTypeIncome || t == RecordTypeExpense
}

func ValidRecordStatus(s RecordStatus) bool {
	switch s {
	case RecordStatusPending, RecordStatusCompleted, RecordStatusCancelled:
		return true
	}
	return false
}
