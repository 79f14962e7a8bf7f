package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/nexcubelabs/nexcube/internal/clock"
	"github.com/nexcubelabs/nexcube/internal/config"
	"github.com/nexcubelabs/nexcube/internal/invoice/domain"
	"github.com/nexcubelabs/nexcube/internal/invoice/render"
	"github.com/nexcubelabs/nexcube/internal/subscription"
	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const numberPrefix = "INV"

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	renderer render.Renderer
	company  config.CompanyConfig
}

type ServiceParam struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	Renderer render.Renderer
	Config   config.Config
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		renderer: p.Renderer,
		company:  p.Config.Company,
	}
}

// Create implements domain.Service. The breakdown is normalized first and the
// amount is computed from it; the two can never disagree on a stored invoice.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	clientName := strings.TrimSpace(req.ClientName)
	if clientName == "" {
		return nil, domain.ErrInvalidClient
	}

	var clientID *snowflake.ID
	if raw := strings.TrimSpace(req.ClientID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return nil, domain.ErrInvalidClient
		}
		clientID = &id
	}

	status := domain.InvoiceStatusDraft
	if raw := strings.TrimSpace(req.Status); raw != "" {
		status = domain.InvoiceStatus(raw)
		if !domain.ValidInvoiceStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
	}

	now := s.clock.Now(ctx)
	issueDate := now
	if raw := strings.TrimSpace(req.IssueDate); raw != "" {
		parsed := subscription.ParseDate(raw)
		if parsed == nil {
			return nil, domain.ErrInvalidIssueDate
		}
		issueDate = *parsed
	}
	dueDate := issueDate.AddDate(0, 0, 14)
	if raw := strings.TrimSpace(req.DueDate); raw != "" {
		parsed := subscription.ParseDate(raw)
		if parsed == nil {
			return nil, domain.ErrInvalidDueDate
		}
		dueDate = *parsed
	}

	items := s.resolveBreakdown(req.PriceBreakdown, req.Items)

	number, err := s.nextInvoiceNumber(ctx, issueDate)
	if err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		ID:             s.genID.Generate(),
		InvoiceNumber:  number,
		ClientID:       clientID,
		ClientName:     clientName,
		ClientEmail:    strings.ToLower(strings.TrimSpace(req.ClientEmail)),
		Amount:         domain.ComputeTotal(items),
		Status:         status,
		IssueDate:      issueDate,
		DueDate:        dueDate,
		Service:        strings.TrimSpace(req.Service),
		PriceBreakdown: domain.EncodeBreakdown(items),
		Description:    strings.TrimSpace(req.Description),
		Notes:          strings.TrimSpace(req.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Insert(ctx, s.db, invoice); err != nil {
		return nil, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.Float64("amount", invoice.Amount),
	)
	return s.toResponse(invoice), nil
}

// List implements domain.Service.
func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	if req.Status != "" && !domain.ValidInvoiceStatus(domain.InvoiceStatus(req.Status)) {
		return nil, domain.ErrInvalidStatus
	}

	page := req.Pagination.Normalize()
	items, err := s.repo.List(ctx, s.db, req, page)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, s.db, req)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.Response, 0, len(items))
	for i := range items {
		responses = append(responses, *s.toResponse(&items[i]))
	}
	return &domain.ListResponse{
		Invoices: responses,
		PageInfo: pagination.NewPageInfo(page, total),
	}, nil
}

// GetByID implements domain.Service.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	invoice, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(invoice), nil
}

// Update implements domain.Service. Any change to the breakdown recomputes
// the amount before persisting; the amount itself is not updatable.
func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	invoice, err := s.findByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ClientID != nil {
		if raw := strings.TrimSpace(*req.ClientID); raw == "" {
			invoice.ClientID = nil
		} else {
			id, err := snowflake.ParseString(raw)
			if err != nil {
				return nil, domain.ErrInvalidClient
			}
			invoice.ClientID = &id
		}
	}
	if req.ClientName != nil {
		name := strings.TrimSpace(*req.ClientName)
		if name == "" {
			return nil, domain.ErrInvalidClient
		}
		invoice.ClientName = name
	}
	if req.ClientEmail != nil {
		invoice.ClientEmail = strings.ToLower(strings.TrimSpace(*req.ClientEmail))
	}
	if req.Status != nil {
		status := domain.InvoiceStatus(strings.TrimSpace(*req.Status))
		if !domain.ValidInvoiceStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
		invoice.Status = status
	}
	if req.IssueDate != nil {
		parsed := subscription.ParseDate(*req.IssueDate)
		if parsed == nil {
			return nil, domain.ErrInvalidIssueDate
		}
		invoice.IssueDate = *parsed
	}
	if req.DueDate != nil {
		parsed := subscription.ParseDate(*req.DueDate)
		if parsed == nil {
			return nil, domain.ErrInvalidDueDate
		}
		invoice.DueDate = *parsed
	}
	if req.Service != nil {
		invoice.Service = strings.TrimSpace(*req.Service)
	}
	if req.Description != nil {
		invoice.Description = strings.TrimSpace(*req.Description)
	}
	if req.Notes != nil {
		invoice.Notes = strings.TrimSpace(*req.Notes)
	}

	if req.Items != nil || req.PriceBreakdown != nil {
		var raw string
		if req.PriceBreakdown != nil {
			raw = *req.PriceBreakdown
		}
		var structured []domain.LineItem
		if req.Items != nil {
			structured = *req.Items
		}
		items := s.resolveBreakdown(raw, structured)
		invoice.PriceBreakdown = domain.EncodeBreakdown(items)
		invoice.Amount = domain.ComputeTotal(items)
	}

	invoice.UpdatedAt = s.clock.Now(ctx)
	if err := s.repo.Update(ctx, s.db, invoice); err != nil {
		return nil, err
	}
	return s.toResponse(invoice), nil
}

// Delete implements domain.Service.
func (s *Service) Delete(ctx context.Context, id string) error {
	invoice, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, invoice.ID)
}

// RenderPDF implements domain.Service.
func (s *Service) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	invoice, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, parseErr := domain.ParseBreakdown(invoice.PriceBreakdown)
	if parseErr != nil {
		s.log.Warn("malformed price breakdown",
			zap.String("invoice_id", invoice.ID.String()),
			zap.Error(parseErr),
		)
	}

	// A breakdown that degraded to the empty default still prints the
	// invoice amount as its single line, like the dashboard preview.
	total := domain.ComputeTotal(items)
	if total == 0 && invoice.Amount != 0 {
		items = []domain.LineItem{{ID: "1", Description: invoice.Description, Price: invoice.Amount}}
		total = invoice.Amount
	}

	return s.renderer.Render(render.Input{
		Company: render.CompanyView{
			Name:  s.company.Name,
			Email: s.company.Email,
			Phone: s.company.Phone,
		},
		Invoice: render.InvoiceView{
			Number:      invoice.InvoiceNumber,
			ClientName:  invoice.ClientName,
			ClientEmail: invoice.ClientEmail,
			Status:      string(invoice.Status),
			IssueDate:   invoice.IssueDate.Format("2006-01-02"),
			DueDate:     invoice.DueDate.Format("2006-01-02"),
			Service:     invoice.Service,
			Description: invoice.Description,
			Notes:       invoice.Notes,
		},
		Items: items,
		Total: total,
	})
}

func (s *Service) findByID(ctx context.Context, id string) (*domain.Invoice, error) {
	invoiceID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	invoice, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

// resolveBreakdown prefers structured items over the serialized form and
// guarantees a non-empty result. Malformed serialized input degrades to the
// default row with a warning, never an error.
func (s *Service) resolveBreakdown(raw string, items []domain.LineItem) []domain.LineItem {
	if items != nil {
		if len(items) == 0 {
			return domain.DefaultBreakdown()
		}
		return items
	}

	parsed, err := domain.ParseBreakdown(raw)
	if err != nil {
		s.log.Warn("malformed price breakdown", zap.Error(err))
	}
	return parsed
}

// nextInvoiceNumber allocates INV-<yyyymm>-<seq>, continuing from the highest
// suffix issued that month so deletes cannot cause number reuse.
func (s *Service) nextInvoiceNumber(ctx context.Context, issueDate time.Time) (string, error) {
	prefix := fmt.Sprintf("%s-%s-", numberPrefix, issueDate.Format("200601"))
	last, err := s.repo.LastNumberWithPrefix(ctx, s.db, prefix)
	if err != nil {
		return "", err
	}

	seq := 1
	if last != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, prefix)); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

func (s *Service) toResponse(invoice *domain.Invoice) *domain.Response {
	items, _ := domain.ParseBreakdown(invoice.PriceBreakdown)

	clientID := ""
	if invoice.ClientID != nil {
		clientID = invoice.ClientID.String()
	}

	return &domain.Response{
		ID:             invoice.ID.String(),
		InvoiceNumber:  invoice.InvoiceNumber,
		ClientID:       clientID,
		ClientName:     invoice.ClientName,
		ClientEmail:    invoice.ClientEmail,
		Amount:         invoice.Amount,
		Status:         string(invoice.Status),
		IssueDate:      invoice.IssueDate.Format("2006-01-02"),
		DueDate:        invoice.DueDate.Format("2006-01-02"),
		Service:        invoice.Service,
		Items:          items,
		PriceBreakdown: invoice.PriceBreakdown,
		Description:    invoice.Description,
		Notes:          invoice.Notes,
		CreatedAt:      invoice.CreatedAt,
		UpdatedAt:      invoice.UpdatedAt,
	}
}
