package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a manually issued agency invoice. Amount is derived: it always
// equals the sum of the breakdown items and is recomputed on every write.
// PriceBreakdown is the serialized []LineItem; it exists only at the
// persistence boundary and is re-encoded from the structured form on save.
type Invoice struct {
	ID             snowflake.ID  `gorm:"primaryKey"`
	InvoiceNumber  string        `gorm:"type:text;not null;uniqueIndex"`
	ClientID       *snowflake.ID `gorm:"index"`
	ClientName     string        `gorm:"type:text;not null"`
	ClientEmail    string        `gorm:"type:text"`
	Amount         float64       `gorm:"not null;default:0"`
	Status         InvoiceStatus `gorm:"type:text;not null;default:'draft';index"`
	IssueDate      time.Time     `gorm:"not null"`
	DueDate        time.Time     `gorm:"not null"`
	Service        string        `gorm:"type:text"`
	PriceBreakdown string        `gorm:"column:price_breakdown;type:text"`
	Description    string        `gorm:"type:text"`
	Notes          string        `gorm:"type:text"`
	CreatedAt      time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}
