package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Package is a marketing-site offering (paket) with its headline price.
type Package struct {
	ID            snowflake.ID                `gorm:"primaryKey" json:"id"`
	Name          string                      `gorm:"type:text;not null" json:"name"`
	Slug          string                      `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Category      string                      `gorm:"type:text;not null;index" json:"category"`
	Description   string                      `gorm:"type:text" json:"description"`
	Price         float64                     `gorm:"not null" json:"price"`
	BillingPeriod string                      `gorm:"type:text" json:"billing_period"`
	Features      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"features"`
	Featured      bool                        `gorm:"not null;default:false" json:"featured"`
	Active        bool                        `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Package) TableName() string { return "catalog_packages" }

// Portfolio is a published work sample shown on the marketing site.
type Portfolio struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Title        string       `gorm:"type:text;not null" json:"title"`
	Slug         string       `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Category     string       `gorm:"type:text;not null;index" json:"category"`
	Description  string       `gorm:"type:text" json:"description"`
	Image        string       `gorm:"type:text" json:"image"`
	Client       string       `gorm:"type:text" json:"client"`
	Technologies string       `gorm:"type:text" json:"technologies,omitempty"`
	Link         string       `gorm:"type:text" json:"link,omitempty"`
	Featured     bool         `gorm:"not null;default:false" json:"featured"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Portfolio) TableName() string { return "portfolios" }

type UpsertPackageRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	BillingPeriod string   `json:"billing_period"`
	Features      []string `json:"features"`
	Featured      bool     `json:"featured"`
	Active        *bool    `json:"active"`
}

type UpsertPortfolioRequest struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Client       string `json:"client"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	Featured     bool   `json:"featured"`
}

type Service interface {
	// Public catalog reads: active packages and published portfolio only.
	ListPackages(ctx context.Context, category string) ([]Package, error)
	GetPackageBySlug(ctx context.Context, slug string) (*Package, error)
	ListPortfolio(ctx context.Context, category string) ([]Portfolio, error)

	CreatePackage(ctx context.Context, req UpsertPackageRequest) (*Package, error)
	UpdatePackage(ctx context.Context, req UpsertPackageRequest) (*Package, error)
	DeletePackage(ctx context.Context, id string) error
	CreatePortfolio(ctx context.Context, req UpsertPortfolioRequest) (*Portfolio, error)
	UpdatePortfolio(ctx context.Context, req UpsertPortfolioRequest) (*Portfolio, error)
	DeletePortfolio(ctx context.Context, id string) error
}

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrNotFound        = errors.New("not_found")
)
