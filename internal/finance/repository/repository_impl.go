package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/nexcubelabs/nexcube/internal/finance/domain"
	"github.com/nexcubelabs/nexcube/internal/subscription"
	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.Record) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Record, error) {
	var rec domain.Record
	err := db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func filteredStmt(ctx context.Context, db *gorm.DB, filter domain.ListRequest) *gorm.DB {
	stmt := db.WithContext(ctx).Model(&domain.Record{})
	if filter.Type != "" {
		stmt = stmt.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if from := subscription.ParseDate(filter.From); from != nil {
		stmt = stmt.Where("date >= ?", *from)
	}
	if to := subscription.ParseDate(filter.To); to != nil {
		stmt = stmt.Where("date <= ?", *to)
	}
	return stmt
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListRequest, page pagination.Pagination) ([]domain.Record, error) {
	var items []domain.Record
	err := filteredStmt(ctx, db, filter).
		Order("date DESC, id DESC").
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

func (r *repo) SumByType(ctx context.Context, db *gorm.DB, from, to time.Time) (map[domain.RecordType]float64, error) {
	var rows []struct {
		Type  domain.RecordType
		Total float64
	}
	err := db.WithContext(ctx).
		Model(&domain.Record{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", domain.RecordStatusCompleted).
		Where("date >= ? AND date <= ?", from, to).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[domain.RecordType]float64, len(rows))
	for _, row := range rows {
		totals[row.Type] = row.Total
	}
	return totals, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, record *domain.Record) error {
	return db.WithContext(ctx).Model(record).Select("*").Omit("created_at").Updates(record).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Record{}).Error
}
