package domain

import (
	"context"
	"errors"
	"time"

	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
)

// CreateRequest accepts the breakdown either structured (Items) or in its
// serialized string form (PriceBreakdown); Items wins when both are present.
// There is deliberately no amount field: the total is always computed from
// the breakdown, never supplied by the caller.
type CreateRequest struct {
	ClientID       string     `json:"client_id"`
	ClientName     string     `json:"client_name"`
	ClientEmail    string     `json:"client_email"`
	Status         string     `json:"status"`
	IssueDate      string     `json:"issue_date"`
	DueDate        string     `json:"due_date"`
	Service        string     `json:"service"`
	Items          []LineItem `json:"items"`
	PriceBreakdown string     `json:"price_breakdown"`
	Description    string     `json:"description"`
	Notes          string     `json:"notes"`
}

type UpdateRequest struct {
	ID             string      `json:"id"`
	ClientID       *string     `json:"client_id"`
	ClientName     *string     `json:"client_name"`
	ClientEmail    *string     `json:"client_email"`
	Status         *string     `json:"status"`
	IssueDate      *string     `json:"issue_date"`
	DueDate        *string     `json:"due_date"`
	Service        *string     `json:"service"`
	Items          *[]LineItem `json:"items"`
	PriceBreakdown *string     `json:"price_breakdown"`
	Description    *string     `json:"description"`
	Notes          *string     `json:"notes"`
}

type ListRequest struct {
	Status   string `form:"status"`
	Service  string `form:"service"`
	ClientID string `form:"client_id"`
	pagination.Pagination
}

type Response struct {
	ID             string     `json:"id"`
	InvoiceNumber  string     `json:"invoice_number"`
	ClientID       string     `json:"client_id,omitempty"`
	ClientName     string     `json:"client_name"`
	ClientEmail    string     `json:"client_email,omitempty"`
	Amount         float64    `json:"amount"`
	Status         string     `json:"status"`
	IssueDate      string     `json:"issue_date"`
	DueDate        string     `json:"due_date"`
	Service        string     `json:"service,omitempty"`
	Items          []LineItem `json:"items"`
	PriceBreakdown string     `json:"price_breakdown"`
	Description    string     `json:"description,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ListResponse struct {
	Invoices []Response          `json:"invoices"`
	PageInfo pagination.PageInfo `json:"page_info"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	// RenderPDF produces the printable kwitansi for the invoice.
	RenderPDF(ctx context.Context, id string) ([]byte, error)
}

var (
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidClient    = errors.New("invalid_client")
	ErrInvalidStatus    = errors.New("invalid_status")
	ErrInvalidIssueDate = errors.New("invalid_issue_date")
	ErrInvalidDueDate   = errors.New("invalid_due_date")
	ErrNotFound         = errors.New("not_found")
)
