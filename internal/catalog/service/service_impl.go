package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/nexcubelabs/nexcube/internal/catalog/domain"
	"github.com/nexcubelabs/nexcube/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("catalog.service"),
		genID: p.GenID,
		clock: p.Clock,
	}
}

// ListPackages implements domain.Service. Only active packages are returned,
// featured ones first.
func (s *Service) ListPackages(ctx context.Context, category string) ([]domain.Package, error) {
	stmt := s.db.WithContext(ctx).Where("active = ?", true)
	if category != "" {
		stmt = stmt.Where("category = ?", category)
	}

	var packages []domain.Package
	if err := stmt.Order("featured DESC, price ASC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

// GetPackageBySlug implements domain.Service.
func (s *Service) GetPackageBySlug(ctx context.Context, rawSlug string) (*domain.Package, error) {
	var pkg domain.Package
	err := s.db.WithContext(ctx).
		Where("slug = ? AND active = ?", strings.TrimSpace(rawSlug), true).
		Take(&pkg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

// ListPortfolio implements domain.Service. Featured entries first, newest after.
func (s *Service) ListPortfolio(ctx context.Context, category string) ([]domain.Portfolio, error) {
	stmt := s.db.WithContext(ctx).Model(&domain.Portfolio{})
	if category != "" {
		stmt = stmt.Where("category = ?", category)
	}

	var entries []domain.Portfolio
	if err := stmt.Order("featured DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CreatePackage implements domain.Service.
func (s *Service) CreatePackage(ctx context.Context, req domain.UpsertPackageRequest) (*domain.Package, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, domain.ErrInvalidCategory
	}
	if req.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	now := s.clock.Now(ctx)
	pkg := &domain.Package{
		ID:            s.genID.Generate(),
		Name:          name,
		Category:      category,
		Description:   strings.TrimSpace(req.Description),
		Price:         req.Price,
		BillingPeriod: strings.TrimSpace(req.BillingPeriod),
		Features:      datatypes.NewJSONSlice(req.Features),
		Featured:      req.Featured,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.Active != nil {
		pkg.Active = *req.Active
	}

	packageSlug, err := s.uniqueSlug(ctx, &domain.Package{}, name, 0)
	if err != nil {
		return nil, err
	}
	pkg.Slug = packageSlug

	if err := s.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return nil, err
	}

	s.log.Info("catalog package created",
		zap.String("package_id", pkg.ID.String()),
		zap.String("slug", pkg.Slug),
	)
	return pkg, nil
}

// UpdatePackage implements domain.Service. The slug is regenerated when the
// name changes.
func (s *Service) UpdatePackage(ctx context.Context, req domain.UpsertPackageRequest) (*domain.Package, error) {
	pkg, err := findByID[domain.Package](ctx, s.db, req.ID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, domain.ErrInvalidCategory
	}
	if req.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	if name != pkg.Name {
		packageSlug, err := s.uniqueSlug(ctx, &domain.Package{}, name, pkg.ID)
		if err != nil {
			return nil, err
		}
		pkg.Slug = packageSlug
	}

	pkg.Name = name
	pkg.Category = category
	pkg.Description = strings.TrimSpace(req.Description)
	pkg.Price = req.Price
	pkg.BillingPeriod = strings.TrimSpace(req.BillingPeriod)
	pkg.Features = datatypes.NewJSONSlice(req.Features)
	pkg.Featured = req.Featured
	if req.Active != nil {
		pkg.Active = *req.Active
	}
	pkg.UpdatedAt = s.clock.Now(ctx)

	if err := s.db.WithContext(ctx).Model(pkg).Select("*").Omit("created_at").Updates(pkg).Error; err != nil {
		return nil, err
	}
	return pkg, nil
}

// DeletePackage implements domain.Service.
func (s *Service) DeletePackage(ctx context.Context, id string) error {
	pkg, err := findByID[domain.Package](ctx, s.db, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(pkg).Error
}

// CreatePortfolio implements domain.Service.
func (s *Service) CreatePortfolio(ctx context.Context, req domain.UpsertPortfolioRequest) (*domain.Portfolio, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrInvalidName
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, domain.ErrInvalidCategory
	}

	now := s.clock.Now(ctx)
	entry := &domain.Portfolio{
		ID:           s.genID.Generate(),
		Title:        title,
		Category:     category,
		Description:  strings.TrimSpace(req.Description),
		Image:        strings.TrimSpace(req.Image),
		Client:       strings.TrimSpace(req.Client),
		Technologies: strings.TrimSpace(req.Technologies),
		Link:         strings.TrimSpace(req.Link),
		Featured:     req.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	entrySlug, err := s.uniqueSlug(ctx, &domain.Portfolio{}, title, 0)
	if err != nil {
		return nil, err
	}
	entry.Slug = entrySlug

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}

	s.log.Info("portfolio entry created",
		zap.String("portfolio_id", entry.ID.String()),
		zap.String("slug", entry.Slug),
	)
	return entry, nil
}

// UpdatePortfolio implements domain.Service.
func (s *Service) UpdatePortfolio(ctx context.Context, req domain.UpsertPortfolioRequest) (*domain.Portfolio, error) {
	entry, err := findByID[domain.Portfolio](ctx, s.db, req.ID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrInvalidName
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, domain.ErrInvalidCategory
	}

	if title != entry.Title {
		entrySlug, err := s.uniqueSlug(ctx, &domain.Portfolio{}, title, entry.ID)
		if err != nil {
			return nil, err
		}
		entry.Slug = entrySlug
	}

	entry.Title = title
	entry.Category = category
	entry.Description = strings.TrimSpace(req.Description)
	entry.Image = strings.TrimSpace(req.Image)
	entry.Client = strings.TrimSpace(req.Client)
	entry.Technologies = strings.TrimSpace(req.Technologies)
	entry.Link = strings.TrimSpace(req.Link)
	entry.Featured = req.Featured
	entry.UpdatedAt = s.clock.Now(ctx)

	if err := s.db.WithContext(ctx).Model(entry).Select("*").Omit("created_at").Updates(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// DeletePortfolio implements domain.Service.
func (s *Service) DeletePortfolio(ctx context.Context, id string) error {
	entry, err := findByID[domain.Portfolio](ctx, s.db, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(entry).Error
}

// uniqueSlug derives a slug from name and appends a numeric suffix until no
// other row owns it. self is excluded so renames keep their own slug free.
func (s *Service) uniqueSlug(ctx context.Context, model any, name string, self snowflake.ID) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 2; ; i++ {
		var count int64
		stmt := s.db.WithContext(ctx).Model(model).Where("slug = ?", candidate)
		if self != 0 {
			stmt = stmt.Where("id <> ?", self)
		}
		if err := stmt.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func findByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	var row T
	if err := db.WithContext(ctx).Where("id = ?", parsed).Take(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}
