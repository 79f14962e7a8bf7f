package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/nexcubelabs/nexcube/internal/client/domain"
	"github.com/nexcubelabs/nexcube/internal/clock"
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
		log:   p.Log.Named("client.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

// SubmitContact implements domain.Service. It is the public contact-form
// entrypoint, so the record always starts at status "new" with no cpanel or
// package fields.
func (s *Service) SubmitContact(ctx context.Context, req domain.SubmitContactRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	message := strings.TrimSpace(req.Message)

	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}
	if message == "" {
		return nil, domain.ErrInvalidMessage
	}
	service := domain.ServiceType(strings.TrimSpace(req.Service))
	if !domain.ValidService(service) {
		return nil, domain.ErrInvalidService
	}

	now := s.clock.Now(ctx)
	client := &domain.Client{
		ID:        s.genID.Generate(),
		Name:      name,
		Email:     email,
		Company:   strings.TrimSpace(req.Company),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   message,
		Service:   service,
		Budget:    strings.TrimSpace(req.Budget),
		Status:    domain.ClientStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, client); err != nil {
		return nil, err
	}

	s.log.Info("contact submitted",
		zap.String("client_id", client.ID.String()),
		zap.String("service", string(client.Service)),
	)
	return s.toResponse(ctx, client), nil
}

// List implements domain.Service.
func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	if req.Status != "" && !domain.ValidStatus(domain.ClientStatus(req.Status)) {
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
		responses = append(responses, *s.toResponse(ctx, &items[i]))
	}
	return &domain.ListResponse{
		Clients:  responses,
		PageInfo: pagination.NewPageInfo(page, total),
	}, nil
}

// GetByID implements domain.Service.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	clientID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	client, err := s.repo.FindByID(ctx, s.db, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return s.toResponse(ctx, client), nil
}

// Update implements domain.Service. Package assignment goes through here:
// start date as YYYY-MM-DD (empty clears it) and duration in months.
func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	clientID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	client, err := s.repo.FindByID(ctx, s.db, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		client.Name = name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, domain.ErrInvalidEmail
		}
		client.Email = email
	}
	if req.Company != nil {
		client.Company = strings.TrimSpace(*req.Company)
	}
	if req.Phone != nil {
		client.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Message != nil {
		client.Message = strings.TrimSpace(*req.Message)
	}
	if req.Service != nil {
		service := domain.ServiceType(strings.TrimSpace(*req.Service))
		if !domain.ValidService(service) {
			return nil, domain.ErrInvalidService
		}
		client.Service = service
	}
	if req.Budget != nil {
		client.Budget = strings.TrimSpace(*req.Budget)
	}
	if req.Status != nil {
		status := domain.ClientStatus(strings.TrimSpace(*req.Status))
		if !domain.ValidStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
		client.Status = status
	}
	if req.CPanelURL != nil {
		client.CPanelURL = strings.TrimSpace(*req.CPanelURL)
	}
	if req.CPanelUsername != nil {
		client.CPanelUsername = strings.TrimSpace(*req.CPanelUsername)
	}
	if req.CPanelPassword != nil {
		client.CPanelPassword = *req.CPanelPassword
	}
	if req.PackageStartDate != nil {
		// A malformed date clears the assignment rather than erroring; the
		// window then reads as unknown.
		client.PackageStartDate = subscription.ParseDate(*req.PackageStartDate)
	}
	if req.PackageDurationMonths != nil {
		if *req.PackageDurationMonths <= 0 {
			client.PackageDurationMonths = nil
		} else {
			months := *req.PackageDurationMonths
			client.PackageDurationMonths = &months
		}
	}

	client.UpdatedAt = s.clock.Now(ctx)
	if err := s.repo.Update(ctx, s.db, client); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, client), nil
}

// Delete implements domain.Service.
func (s *Service) Delete(ctx context.Context, id string) error {
	clientID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	client, err := s.repo.FindByID(ctx, s.db, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, clientID)
}

func (s *Service) toResponse(ctx context.Context, c *domain.Client) *domain.Response {
	return &domain.Response{
		ID:             c.ID.String(),
		Name:           c.Name,
		Email:          c.Email,
		Company:        c.Company,
		Phone:          c.Phone,
		Message:        c.Message,
		Service:        string(c.Service),
		Budget:         c.Budget,
		Status:         string(c.Status),
		CPanelURL:      c.CPanelURL,
		CPanelUsername: c.CPanelUsername,
		CPanelPassword: c.CPanelPassword,

		PackageStartDate:      subscription.FormatDateForInput(c.PackageStartDate),
		PackageDurationMonths: c.PackageDurationMonths,
		// Derived per read; never cached (it flips with wall-clock time).
		Package: subscription.ComputePackageInfo(c.PackageStartDate, c.PackageDurationMonths, s.clock.Now(ctx)),

		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
