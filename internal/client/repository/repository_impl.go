package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/nexcubelabs/nexcube/internal/client/domain"
	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Create(client).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Client, error) {
	var c domain.Client
	err := db.WithContext(ctx).Where("id = ?", id).Take(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func filteredStmt(ctx context.Context, db *gorm.DB, filter domain.ListRequest) *gorm.DB {
	stmt := db.WithContext(ctx).Model(&domain.Client{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.Service != "" {
		stmt = stmt.Where("service = ?", filter.Service)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		stmt = stmt.Where("name LIKE ? OR email LIKE ? OR company LIKE ?", like, like, like)
	}
	return stmt
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListRequest, page pagination.Pagination) ([]domain.Client, error) {
	var items []domain.Client
	err := filteredStmt(ctx, db, filter).
		Order("created_at DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB, filter domain.ListRequest) (int64, error) {
	var count int64
	err := filteredStmt(ctx, db, filter).Count(&count).Error
	return count, err
}

func (r *repo) CountByStatus(ctx context.Context, db *gorm.DB) (map[domain.ClientStatus]int64, error) {
	var rows []struct {
		Status domain.ClientStatus
		Total  int64
	}
	err := db.WithContext(ctx).
		Model(&domain.Client{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.ClientStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	// Save with Select("*") so cleared package fields persist as NULL.
	return db.WithContext(ctx).Model(client).Select("*").Omit("created_at").Updates(client).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Client{}).Error
}
