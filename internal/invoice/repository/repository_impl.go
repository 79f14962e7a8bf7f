package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/nexcubelabs/nexcube/internal/invoice/domain"
	"github.com/nexcubelabs/nexcube/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := db.WithContext(ctx).Where("id = ?", id).Take(&inv).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repo) LastNumberWithPrefix(ctx context.Context, db *gorm.DB, prefix string) (string, error) {
	var number string
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Select("invoice_number").
		Where("invoice_number LIKE ?", prefix+"%").
		Order("invoice_number DESC").
		Limit(1).
		Scan(&number).Error
	if err != nil {
		return "", err
	}
	return number, nil
}

func filteredStmt(ctx context.Context, db *gorm.DB, filter domain.ListRequest) *gorm.DB {
	stmt := db.WithContext(ctx).Model(&domain.Invoice{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.Service != "" {
		stmt = stmt.Where("service = ?", filter.Service)
	}
	if filter.ClientID != "" {
		stmt = stmt.Where("client_id = ?", filter.ClientID)
	}
	return stmt
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListRequest, page pagination.Pagination) ([]domain.Invoice, error) {
	var items []domain.Invoice
	err := filteredStmt(ctx, db, filter).
		Order("issue_date DESC, invoice_number DESC").
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

func (r *repo) SumAmountByStatus(ctx context.Context, db *gorm.DB) (map[domain.InvoiceStatus]float64, error) {
	var rows []struct {
		Status domain.InvoiceStatus
		Total  float64
	}
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Select("status, COALESCE(SUM(amount), 0) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[domain.InvoiceStatus]float64, len(rows))
	for _, row := range rows {
		totals[row.Status] = row.Total
	}
	return totals, nil
}

func (r *repo) SumAmountIssuedBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (float64, error) {
	var total float64
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status <> ?", domain.InvoiceStatusDraft).
		Where("issue_date >= ? AND issue_date <= ?", from, to).
		Scan(&total).Error
	return total, err
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Model(invoice).Select("*").Omit("created_at").Updates(invoice).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Invoice{}).Error
}
