package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, client *Client) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Client, error)
	List(ctx context.Context, db *gorm.DB, filter ListRequest, page pagination.Pagination) ([]Client, error)
	Count(ctx context.Context, db *gorm.DB, filter ListRequest) (int64, error)
	CountByStatus(ctx context.Context, db *gorm.DB) (map[ClientStatus]int64, error)
	Update(ctx context.Context, db *gorm.DB, client *Client) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
