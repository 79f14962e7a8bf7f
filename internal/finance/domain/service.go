package domain

import (
	"context"
	"errors"
	"time"

	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
)

type CreateRequest struct {
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

type UpdateRequest struct {
	ID            string   `json:"id"`
	Type          *string  `json:"type"`
	Category      *string  `json:"category"`
	Amount        *float64 `json:"amount"`
	Description   *string  `json:"description"`
	Date          *string  `json:"date"`
	PaymentMethod *string  `json:"payment_method"`
	Status        *string  `json:"status"`
	Notes         *string  `json:"notes"`
}

type ListRequest struct {
	Type   string `form:"type"`
	Status string `form:"status"`
	From   string `form:"from"`
	To     string `form:"to"`
	pagination.Pagination
}

type Response struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Date          string    `json:"date"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ListResponse struct {
	Records  []Response          `json:"records"`
	PageInfo pagination.PageInfo `json:"page_info"`
}

// Summary aggregates completed records over a period.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, from, to time.Time) (*Summary, error)
}

var (
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidType        = errors.New("invalid_type")
	ErrInvalidCategory    = errors.New("invalid_category")
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidDate        = errors.New("invalid_date")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrNotFound           = errors.New("not_found")
)
