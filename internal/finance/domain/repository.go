package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *Record) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Record, error)
	List(ctx context.Context, db *gorm.DB, filter ListRequest, page pagination.Pagination) ([]Record, error)
	Count(ctx context.Context, db *gorm.DB, filter ListRequest) (int64, error)
	// SumByType totals completed records per type within [from, to].
	SumByType(ctx context.Context, db *gorm.DB, from, to time.Time) (map[RecordType]float64, error)
	Update(ctx context.Context, db *gorm.DB, record *Record) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
