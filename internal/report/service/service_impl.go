package service

import (
	"context"
	"time"

	clientdomain "github.com/nexcubelabs/nexcube/internal/client/domain"
	"github.com/nexcubelabs/nexcube/internal/clock"
	financedomain "github.com/nexcubelabs/nexcube/internal/finance/domain"
	invoicedomain "github.com/nexcubelabs/nexcube/internal/invoice/domain"
	"github.com/nexcubelabs/nexcube/internal/report/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	clock       clock.Clock
	clientRepo  clientdomain.Repository
	invoiceRepo invoicedomain.Repository
	financeRepo financedomain.Repository
}

type ServiceParam struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Clock       clock.Clock
	ClientRepo  clientdomain.Repository
	InvoiceRepo invoicedomain.Repository
	FinanceRepo financedomain.Repository
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("report.service"),
		clock:       p.Clock,
		clientRepo:  p.ClientRepo,
		invoiceRepo: p.InvoiceRepo,
		financeRepo: p.FinanceRepo,
	}
}

// Dashboard implements domain.Service.
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	byStatus, err := s.clientRepo.CountByStatus(ctx, s.db)
	if err != nil {
		return nil, err
	}
	stats.Clients.New = byStatus[clientdomain.ClientStatusNew]
	stats.Clients.Read = byStatus[clientdomain.ClientStatusRead]
	stats.Clients.Responded = byStatus[clientdomain.ClientStatusResponded]
	stats.Clients.Active = byStatus[clientdomain.ClientStatusActive]
	stats.Clients.Inactive = byStatus[clientdomain.ClientStatusInactive]
	for _, count := range byStatus {
		stats.Clients.Total += count
	}

	amounts, err := s.invoiceRepo.SumAmountByStatus(ctx, s.db)
	if err != nil {
		return nil, err
	}
	stats.Invoices.PaidAmount = amounts[invoicedomain.InvoiceStatusPaid]
	stats.Invoices.OverdueAmount = amounts[invoicedomain.InvoiceStatusOverdue]
	stats.Invoices.UnpaidAmount = amounts[invoicedomain.InvoiceStatusSent] + amounts[invoicedomain.InvoiceStatusOverdue]
	for _, amount := range amounts {
		stats.Invoices.TotalAmount += amount
	}

	from, to := monthBounds(s.clock.Now(ctx))
	totals, err := s.financeRepo.SumByType(ctx, s.db, from, to)
	if err != nil {
		return nil, err
	}
	stats.Finance.MonthIncome = totals[financedomain.RecordTypeIncome]
	stats.Finance.MonthExpense = totals[financedomain.RecordTypeExpense]
	stats.Finance.MonthNet = stats.Finance.MonthIncome - stats.Finance.MonthExpense

	return stats, nil
}

// Monthly implements domain.Service.
func (s *Service) Monthly(ctx context.Context, months int) (*domain.MonthlyReport, error) {
	if months <= 0 {
		months = 6
	}
	if months > 24 {
		months = 24
	}

	now := s.clock.Now(ctx)
	points := make([]domain.MonthlyPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		from, to := monthBounds(anchor)

		totals, err := s.financeRepo.SumByType(ctx, s.db, from, to)
		if err != nil {
			return nil, err
		}
		invoiced, err := s.invoiceRepo.SumAmountIssuedBetween(ctx, s.db, from, to)
		if err != nil {
			return nil, err
		}

		income := totals[financedomain.RecordTypeIncome]
		expense := totals[financedomain.RecordTypeExpense]
		points = append(points, domain.MonthlyPoint{
			Month:    anchor.Format("2006-01"),
			Income:   income,
			Expense:  expense,
			Net:      income - expense,
			Invoiced: invoiced,
		})
	}
	return &domain.MonthlyReport{Points: points}, nil
}

// monthBounds returns the first instant of t's month and the last instant
// before the next month.
func monthBounds(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return from, to
}
