package domain

import (
	"context"
	"errors"
	"time"

	"github.com/nexcubelabs/nexcube/internal/subscription"
	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
)

type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
}

type UpdateRequest struct {
	ID             string  `json:"id"`
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Company        *string `json:"company"`
	Phone          *string `json:"phone"`
	Message        *string `json:"message"`
	Service        *string `json:"service"`
	Budget         *string `json:"budget"`
	Status         *string `json:"status"`
	CPanelURL      *string `json:"cpanel_url"`
	CPanelUsername *string `json:"cpanel_username"`
	CPanelPassword *string `json:"cpanel_password"`

	// YYYY-MM-DD; empty string clears the package assignment.
	PackageStartDate      *string `json:"package_start_date"`
	PackageDurationMonths *int    `json:"package_duration_months"`
}

type ListRequest struct {
	Status  string `form:"status"`
	Service string `form:"service"`
	Search  string `form:"search"`
	pagination.Pagination
}

// Response is the client record plus its derived package window, recomputed
// on every read because it varies with wall-clock time.
type Response struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Company        string `json:"company,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Message        string `json:"message,omitempty"`
	Service        string `json:"service,omitempty"`
	Budget         string `json:"budget,omitempty"`
	Status         string `json:"status"`
	CPanelURL      string `json:"cpanel_url,omitempty"`
	CPanelUsername string `json:"cpanel_username,omitempty"`
	CPanelPassword string `json:"cpanel_password,omitempty"`

	PackageStartDate      string                   `json:"package_start_date,omitempty"`
	PackageDurationMonths *int                     `json:"package_duration_months,omitempty"`
	Package               subscription.PackageInfo `json:"package"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListResponse struct {
	Clients  []Response          `json:"clients"`
	PageInfo pagination.PageInfo `json:"page_info"`
}

type Service interface {
	SubmitContact(ctx context.Context, req SubmitContactRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidMessage = errors.New("invalid_message")
	ErrInvalidStatus  = errors.New("invalid_status")
	ErrInvalidService = errors.New("invalid_service")
	ErrNotFound       = errors.New("not_found")
)
