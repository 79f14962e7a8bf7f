package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	clientdomain "github.com/nexcubelabs/nexcube/internal/client/domain"
	clientrepo "github.com/nexcubelabs/nexcube/internal/client/repository"
	financedomain "github.com/nexcubelabs/nexcube/internal/finance/domain"
	financerepo "github.com/nexcubelabs/nexcube/internal/finance/repository"
	invoicedomain "github.com/nexcubelabs/nexcube/internal/invoice/domain"
	invoicerepo "github.com/nexcubelabs/nexcube/internal/invoice/repository"
	"github.com/nexcubelabs/nexcube/internal/report/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixedClock struct{ now time.Time }

func (f *fixedClock) Now(context.Context) time.Time { return f.now }

type testEnv struct {
	db   *gorm.DB
	node *snowflake.Node
	svc  domain.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&clientdomain.Client{}, &invoicedomain.Invoice{}, &financedomain.Record{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := NewService(ServiceParam{
		DB:          db,
		Log:         zap.NewNop(),
		Clock:       &fixedClock{now: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)},
		ClientRepo:  clientrepo.Provide(),
		InvoiceRepo: invoicerepo.Provide(),
		FinanceRepo: financerepo.Provide(),
	})
	return &testEnv{db: db, node: node, svc: svc}
}

func (e *testEnv) seedClient(t *testing.T, status clientdomain.ClientStatus) {
	t.Helper()
	require.NoError(t, e.db.Create(&clientdomain.Client{
		ID:     e.node.Generate(),
		Name:   "Client " + string(status),
		Email:  "client@example.com",
		Status: status,
	}).Error)
}

func (e *testEnv) seedInvoice(t *testing.T, number string, status invoicedomain.InvoiceStatus, amount float64) {
	t.Helper()
	issue := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, e.db.Create(&invoicedomain.Invoice{
		ID:            e.node.Generate(),
		InvoiceNumber: number,
		ClientName:    "PT Contoh",
		Amount:        amount,
		Status:        status,
		IssueDate:     issue,
		DueDate:       issue.AddDate(0, 0, 14),
	}).Error)
}

func (e *testEnv) seedRecord(t *testing.T, recordType financedomain.RecordType, amount float64, date time.Time, status financedomain.RecordStatus) {
	t.Helper()
	require.NoError(t, e.db.Create(&financedomain.Record{
		ID:          e.node.Generate(),
		Type:        recordType,
		Category:    "project",
		Amount:      amount,
		Description: "seed",
		Date:        date,
		Status:      status,
	}).Error)
}

func TestDashboardAggregatesAllSections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedClient(t, clientdomain.ClientStatusNew)
	env.seedClient(t, clientdomain.ClientStatusNew)
	env.seedClient(t, clientdomain.ClientStatusActive)
	env.seedClient(t, clientdomain.ClientStatusInactive)

	env.seedInvoice(t, "INV-202407-0001", invoicedomain.InvoiceStatusPaid, 1500000)
	env.seedInvoice(t, "INV-202407-0002", invoicedomain.InvoiceStatusSent, 500000)
	env.seedInvoice(t, "INV-202407-0003", invoicedomain.InvoiceStatusOverdue, 250000)
	env.seedInvoice(t, "INV-202407-0004", invoicedomain.InvoiceStatusDraft, 100000)

	july := time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	env.seedRecord(t, financedomain.RecordTypeIncome, 2000000, july, financedomain.RecordStatusCompleted)
	env.seedRecord(t, financedomain.RecordTypeIncome, 900000, july, financedomain.RecordStatusPending)
	env.seedRecord(t, financedomain.RecordTypeExpense, 400000, july, financedomain.RecordStatusCompleted)
	env.seedRecord(t, financedomain.RecordTypeIncome, 7000000, june, financedomain.RecordStatusCompleted)

	stats, err := env.svc.Dashboard(ctx)
	require.NoError(t, err)

	require.Equal(t, int64(4), stats.Clients.Total)
	require.Equal(t, int64(2), stats.Clients.New)
	require.Equal(t, int64(1), stats.Clients.Active)
	require.Equal(t, int64(1), stats.Clients.Inactive)

	require.Equal(t, 2350000.0, stats.Invoices.TotalAmount)
	require.Equal(t, 1500000.0, stats.Invoices.PaidAmount)
	require.Equal(t, 750000.0, stats.Invoices.UnpaidAmount)
	require.Equal(t, 250000.0, stats.Invoices.OverdueAmount)

	require.Equal(t, 2000000.0, stats.Finance.MonthIncome)
	require.Equal(t, 400000.0, stats.Finance.MonthExpense)
	require.Equal(t, 1600000.0, stats.Finance.MonthNet)
}

func TestDashboardOnEmptyDatabase(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), stats.Clients.Total)
	require.Equal(t, 0.0, stats.Invoices.TotalAmount)
	require.Equal(t, 0.0, stats.Finance.MonthNet)
}

func TestMonthlySeriesOldestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedRecord(t, financedomain.RecordTypeIncome, 1000000,
		time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), financedomain.RecordStatusCompleted)
	env.seedRecord(t, financedomain.RecordTypeExpense, 300000,
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), financedomain.RecordStatusCompleted)
	env.seedRecord(t, financedomain.RecordTypeIncome, 2500000,
		time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), financedomain.RecordStatusCompleted)
	env.seedInvoice(t, "INV-202407-0001", invoicedomain.InvoiceStatusSent, 1250000)
	env.seedInvoice(t, "INV-202407-0002", invoicedomain.InvoiceStatusDraft, 999999)

	report, err := env.svc.Monthly(ctx, 3)
	require.NoError(t, err)
	require.Len(t, report.Points, 3)

	require.Equal(t, "2024-05", report.Points[0].Month)
	require.Equal(t, 1000000.0, report.Points[0].Income)
	require.Equal(t, "2024-06", report.Points[1].Month)
	require.Equal(t, -300000.0, report.Points[1].Net)
	require.Equal(t, "2024-07", report.Points[2].Month)
	require.Equal(t, 2500000.0, report.Points[2].Income)
	require.Equal(t, 1250000.0, report.Points[2].Invoiced)
	require.Equal(t, 0.0, report.Points[0].Invoiced)
}

func TestMonthlyDefaultsAndClamps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	report, err := env.svc.Monthly(ctx, 0)
	require.NoError(t, err)
	require.Len(t, report.Points, 6)

	report, err = env.svc.Monthly(ctx, 100)
	require.NoError(t, err)
	require.Len(t, report.Points, 24)
}
