package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/nexcubelabs/nexcube/internal/client/domain"
	"github.com/nexcubelabs/nexcube/internal/client/repository"
	"github.com/nexcubelabs/nexcube/internal/subscription"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixedClock struct{ now time.Time }

func (f *fixedClock) Now(context.Context) time.Time { return f.now }

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func newTestService(t *testing.T, now time.Time) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Client{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParam{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: &fixedClock{now: now},
		Repo:  repository.Provide(),
	})
}

func TestSubmitContactStartsNewWithUnknownPackage(t *testing.T) {
	svc := newTestService(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	resp, err := svc.SubmitContact(ctx, domain.SubmitContactRequest{
		Name:    "Budi Santoso",
		Email:   "Budi@Example.com",
		Message: "Butuh website company profile",
		Service: "website",
		Budget:  "1-3jt",
	})
	require.NoError(t, err)
	require.Equal(t, "new", resp.Status)
	require.Equal(t, "budi@example.com", resp.Email)
	require.Equal(t, subscription.StatusUnknown, resp.Package.Status)
	require.Empty(t, resp.PackageStartDate)
}

func TestSubmitContactValidation(t *testing.T) {
	svc := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	_, err := svc.SubmitContact(ctx, domain.SubmitContactRequest{Email: "a@b.c", Message: "hi"})
	require.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.SubmitContact(ctx, domain.SubmitContactRequest{Name: "A", Email: "not-an-email", Message: "hi"})
	require.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.SubmitContact(ctx, domain.SubmitContactRequest{Name: "A", Email: "a@b.c"})
	require.ErrorIs(t, err, domain.ErrInvalidMessage)

	_, err = svc.SubmitContact(ctx, domain.SubmitContactRequest{Name: "A", Email: "a@b.c", Message: "hi", Service: "saas"})
	require.ErrorIs(t, err, domain.ErrInvalidService)
}

func TestUpdateAssignsPackageAndDerivesWindow(t *testing.T) {
	// Evaluated two days before the six-month window closes.
	svc := newTestService(t, time.Date(2024, 7, 13, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := svc.SubmitContact(ctx, domain.SubmitContactRequest{
		Name:    "Budi Santoso",
		Email:   "budi@example.com",
		Message: "Butuh website",
		Service: "website",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.UpdateRequest{
		ID:                    created.ID,
		Status:                strPtr("active"),
		PackageStartDate:      strPtr("2024-01-15"),
		PackageDurationMonths: intPtr(6),
	})
	require.NoError(t, err)
	require.Equal(t, subscription.StatusActive, updated.Package.Status)
	require.Equal(t, "2024-07-15", subscription.FormatDateForInput(updated.Package.EndDate))
	require.Equal(t, 2, *updated.Package.RemainingDays)

	// The stored record derives the same window on a fresh read.
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, subscription.StatusActive, got.Package.Status)
	require.Equal(t, "2024-01-15", got.PackageStartDate)
}

func TestUpdateClearsPackageOnEmptyOrMalformedDate(t *testing.T) {
	svc := newTestService(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := svc.SubmitContact(ctx, domain.SubmitContactRequest{
		Name: "Budi", Email: "budi@example.com", Message: "halo",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.UpdateRequest{
		ID:                    created.ID,
		PackageStartDate:      strPtr("2024-01-15"),
		PackageDurationMonths: intPtr(3),
	})
	require.NoError(t, err)
	require.Equal(t, subscription.StatusInactive, updated.Package.Status)

	cleared, err := svc.Update(ctx, domain.UpdateRequest{
		ID:               created.ID,
		PackageStartDate: strPtr(""),
	})
	require.NoError(t, err)
	require.Equal(t, subscription.StatusUnknown, cleared.Package.Status)
	require.Nil(t, cleared.Package.EndDate)

	malformed, err := svc.Update(ctx, domain.UpdateRequest{
		ID:               created.ID,
		PackageStartDate: strPtr("31-12-2024"),
	})
	require.NoError(t, err, "malformed dates degrade to unknown, never error")
	require.Equal(t, subscription.StatusUnknown, malformed.Package.Status)
}

func TestListFiltersByStatus(t *testing.T) {
	svc := newTestService(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.SubmitContact(ctx, domain.SubmitContactRequest{
			Name: name, Email: name + "@example.com", Message: "halo",
		})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, list.Clients, 3)
	require.EqualValues(t, 3, list.PageInfo.TotalCount)

	first := list.Clients[0]
	_, err = svc.Update(ctx, domain.UpdateRequest{ID: first.ID, Status: strPtr("responded")})
	require.NoError(t, err)

	responded, err := svc.List(ctx, domain.ListRequest{Status: "responded"})
	require.NoError(t, err)
	require.Len(t, responded.Clients, 1)

	_, err = svc.List(ctx, domain.ListRequest{Status: "bogus"})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	created, err := svc.SubmitContact(ctx, domain.SubmitContactRequest{
		Name: "Budi", Email: "budi@example.com", Message: "halo",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "abc"), domain.ErrInvalidID)
}
