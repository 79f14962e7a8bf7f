package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/nexcubelabs/nexcube/internal/clock"
	"github.com/nexcubelabs/nexcube/internal/finance/domain"
	"github.com/nexcubelabs/nexcube/internal/subscription"
	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("finance.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

// Create implements domain.Service.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	recordType := domain.RecordType(strings.TrimSpace(req.Type))
	if !domain.ValidRecordType(recordType) {
		return nil, domain.ErrInvalidType
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, domain.ErrInvalidCategory
	}
	if req.Amount < 0 {
		return nil, domain.ErrInvalidAmount
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, domain.ErrInvalidDescription
	}

	now := s.clock.Now(ctx)
	date := now
	if raw := strings.TrimSpace(req.Date); raw != "" {
		parsed := subscription.ParseDate(raw)
		if parsed == nil {
			return nil, domain.ErrInvalidDate
		}
		date = *parsed
	}

	status := domain.RecordStatusPending
	if raw := strings.TrimSpace(req.Status); raw != "" {
		status = domain.RecordStatus(raw)
		if !domain.ValidRecordStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
	}

	record := &domain.Record{
		ID:            s.genID.Generate(),
		Type:          recordType,
		Category:      category,
		Amount:        req.Amount,
		Description:   description,
		Date:          date,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Status:        status,
		Notes:         strings.TrimSpace(req.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, record); err != nil {
		return nil, err
	}

	s.log.Info("finance record created",
		zap.String("record_id", record.ID.String()),
		zap.String("type", string(record.Type)),
		zap.Float64("amount", record.Amount),
	)
	return toResponse(record), nil
}

// List implements domain.Service.
func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	if req.Type != "" && !domain.ValidRecordType(domain.RecordType(req.Type)) {
		return nil, domain.ErrInvalidType
	}
	if req.Status != "" && !domain.ValidRecordStatus(domain.RecordStatus(req.Status)) {
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
		responses = append(responses, *toResponse(&items[i]))
	}
	return &domain.ListResponse{
		Records:  responses,
		PageInfo: pagination.NewPageInfo(page, total),
	}, nil
}

// GetByID implements domain.Service.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	record, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(record), nil
}

// Update implements domain.Service.
func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	record, err := s.findByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		recordType := domain.RecordType(strings.TrimSpace(*req.Type))
		if !domain.ValidRecordType(recordType) {
			return nil, domain.ErrInvalidType
		}
		record.Type = recordType
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return nil, domain.ErrInvalidCategory
		}
		record.Category = category
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, domain.ErrInvalidAmount
		}
		record.Amount = *req.Amount
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, domain.ErrInvalidDescription
		}
		record.Description = description
	}
	if req.Date != nil {
		parsed := subscription.ParseDate(*req.Date)
		if parsed == nil {
			return nil, domain.ErrInvalidDate
		}
		record.Date = *parsed
	}
	if req.PaymentMethod != nil {
		record.PaymentMethod = strings.TrimSpace(*req.PaymentMethod)
	}
	if req.Status != nil {
		status := domain.RecordStatus(strings.TrimSpace(*req.Status))
		if !domain.ValidRecordStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
		record.Status = status
	}
	if req.Notes != nil {
		record.Notes = strings.TrimSpace(*req.Notes)
	}

	record.UpdatedAt = s.clock.Now(ctx)
	if err := s.repo.Update(ctx, s.db, record); err != nil {
		return nil, err
	}
	return toResponse(record), nil
}

// Delete implements domain.Service.
func (s *Service) Delete(ctx context.Context, id string) error {
	record, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, record.ID)
}

// Summary implements domain.Service.
func (s *Service) Summary(ctx context.Context, from, to time.Time) (*domain.Summary, error) {
	totals, err := s.repo.SumByType(ctx, s.db, from, to)
	if err != nil {
		return nil, err
	}

	income := totals[domain.RecordTypeIncome]
	expense := totals[domain.RecordTypeExpense]
	return &domain.Summary{
		Income:  income,
		Expense: expense,
		Net:     income - expense,
	}, nil
}

func (s *Service) findByID(ctx context.Context, id string) (*domain.Record, error) {
	recordID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	record, err := s.repo.FindByID(ctx, s.db, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func toResponse(record *domain.Record) *domain.Response {
	return &domain.Response{
		ID:            record.ID.String(),
		Type:          string(record.Type),
		Category:      record.Category,
		Amount:        record.Amount,
		Description:   record.Description,
		Date:          record.Date.Format("2006-01-02"),
		PaymentMethod: record.PaymentMethod,
		Status:        string(record.Status),
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
