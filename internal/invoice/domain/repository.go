package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	// LastNumberWithPrefix returns the highest existing invoice number that
	// starts with prefix, or "" when none exists.
	LastNumberWithPrefix(ctx context.Context, db *gorm.DB, prefix string) (string, error)
	List(ctx context.Context, db *gorm.DB, filter ListRequest, page pagination.Pagination) ([]Invoice, error)
	Count(ctx context.Context, db *gorm.DB, filter ListRequest) (int64, error)
	SumAmountByStatus(ctx context.Context, db *gorm.DB) (map[InvoiceStatus]float64, error)
	// SumAmountIssuedBetween totals invoice amounts with an issue date in
	// [from, to], drafts excluded.
	SumAmountIssuedBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (float64, error)
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
