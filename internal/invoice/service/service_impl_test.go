package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/nexcubelabs/nexcube/internal/config"
	"github.com/nexcubelabs/nexcube/internal/invoice/domain"
	"github.com/nexcubelabs/nexcube/internal/invoice/render"
	"github.com/nexcubelabs/nexcube/internal/invoice/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixedClock struct{ now time.Time }

func (f *fixedClock) Now(context.Context) time.Time { return f.now }

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Invoice{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParam{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    &fixedClock{now: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
		Repo:     repository.Provide(),
		Renderer: render.NewRenderer(),
		Config: config.Config{Company: config.CompanyConfig{
			Name:  "NEXCUBE",
			Email: "nexcubedigital@gmail.com",
		}},
	})
}

func TestCreateComputesAmountFromItems(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, domain.CreateRequest{
		ClientName: "Budi Santoso",
		Items: []domain.LineItem{
			{ID: "1", Description: "Domain", Price: 150000},
			{ID: "2", Description: "Hosting", Price: 350000},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 500000.0, resp.Amount)
	require.Len(t, resp.Items, 2)
	require.Equal(t, "draft", resp.Status)
	require.Equal(t, "INV-202407-0001", resp.InvoiceNumber)
	require.Equal(t, "2024-07-15", resp.DueDate, "due date defaults to issue + 14 days")
}

func TestCreateFromSerializedBreakdown(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, domain.CreateRequest{
		ClientName:     "Budi",
		PriceBreakdown: `[{"id":"1","description":"Domain","price":150000},{"id":"2","description":"Hosting","price":350000}]`,
	})
	require.NoError(t, err)
	require.Equal(t, 500000.0, resp.Amount)
	require.Len(t, resp.Items, 2)
}

func TestCreateWithMalformedBreakdownFallsBack(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, domain.CreateRequest{
		ClientName:     "Budi",
		PriceBreakdown: "not json",
	})
	require.NoError(t, err, "malformed persisted data must not fail the operation")
	require.Equal(t, 0.0, resp.Amount)
	require.Equal(t, domain.DefaultBreakdown(), resp.Items)
}

func TestUpdateBreakdownKeepsAmountInSync(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		ClientName: "Budi",
		Items: []domain.LineItem{
			{ID: "1", Description: "Domain", Price: 150000},
			{ID: "2", Description: "Hosting", Price: 350000},
		},
	})
	require.NoError(t, err)

	// Removing item "1" drops the amount to the surviving row's price.
	remaining := domain.RemoveItem(created.Items, "1")
	updated, err := svc.Update(ctx, domain.UpdateRequest{
		ID:    created.ID,
		Items: &remaining,
	})
	require.NoError(t, err)
	require.Equal(t, 350000.0, updated.Amount)
	require.Len(t, updated.Items, 1)
	require.Equal(t, "Hosting", updated.Items[0].Description)

	// Removing the last row collapses to the default and a zero amount.
	empty := domain.RemoveItem(updated.Items, "2")
	collapsed, err := svc.Update(ctx, domain.UpdateRequest{
		ID:    created.ID,
		Items: &empty,
	})
	require.NoError(t, err)
	require.Equal(t, domain.DefaultBreakdown(), collapsed.Items)
	require.Equal(t, 0.0, collapsed.Amount)

	// A fresh read agrees with what Update returned.
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 0.0, got.Amount)
	require.Equal(t, domain.DefaultBreakdown(), got.Items)
}

func TestInvoiceNumberSequencePerMonth(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateRequest{ClientName: "A"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, domain.CreateRequest{ClientName: "B"})
	require.NoError(t, err)
	require.Equal(t, "INV-202407-0001", first.InvoiceNumber)
	require.Equal(t, "INV-202407-0002", second.InvoiceNumber)

	// Deleting the latest invoice must not free its number for reuse.
	require.NoError(t, svc.Delete(ctx, second.ID))
	third, err := svc.Create(ctx, domain.CreateRequest{ClientName: "C"})
	require.NoError(t, err)
	require.Equal(t, "INV-202407-0003", third.InvoiceNumber)

	// A different issue month runs its own sequence.
	august, err := svc.Create(ctx, domain.CreateRequest{ClientName: "D", IssueDate: "2024-08-02"})
	require.NoError(t, err)
	require.Equal(t, "INV-202408-0001", august.InvoiceNumber)
}

func TestListFiltersByStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	draft, err := svc.Create(ctx, domain.CreateRequest{ClientName: "A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{ClientName: "B", Status: "sent"})
	require.NoError(t, err)

	sent, err := svc.List(ctx, domain.ListRequest{Status: "sent"})
	require.NoError(t, err)
	require.Len(t, sent.Invoices, 1)

	all, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, all.Invoices, 2)
	require.EqualValues(t, 2, all.PageInfo.TotalCount)

	_, err = svc.List(ctx, domain.ListRequest{Status: "void"})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = svc.Update(ctx, domain.UpdateRequest{ID: draft.ID, Status: strPtr("paid")})
	require.NoError(t, err)
}

func TestRenderPDF(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		ClientName: "Budi Santoso",
		Status:     "sent",
		Items: []domain.LineItem{
			{ID: "1", Description: "Domain", Price: 150000},
			{ID: "2", Description: "Hosting", Price: 350000},
		},
		Notes: "Transfer BCA 1234567890",
	})
	require.NoError(t, err)

	out, err := svc.RenderPDF(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(out[:4]))

	_, err = svc.RenderPDF(ctx, "123456789")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMissingInvoice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "not-a-snowflake")
	require.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.GetByID(ctx, "123456789")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
