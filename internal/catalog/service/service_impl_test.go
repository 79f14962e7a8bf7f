package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/nexcubelabs/nexcube/internal/catalog/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixedClock struct{ now time.Time }

func (f *fixedClock) Now(context.Context) time.Time { return f.now }

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Package{}, &domain.Portfolio{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParam{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: &fixedClock{now: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	})
}

func TestCreatePackageGeneratesSlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	pkg, err := svc.CreatePackage(ctx, domain.UpsertPackageRequest{
		Name:          "Paket Website Sekolah",
		Category:      "website",
		Price:         1500000,
		BillingPeriod: "tahun",
		Features:      []string{"Hosting 1 tahun", "Domain .sch.id", "5 halaman"},
	})
	require.NoError(t, err)
	require.Equal(t, "paket-website-sekolah", pkg.Slug)
	require.True(t, pkg.Active)

	got, err := svc.GetPackageBySlug(ctx, "paket-website-sekolah")
	require.NoError(t, err)
	require.Equal(t, pkg.ID, got.ID)
	require.Len(t, got.Features, 3)
}

func TestSlugCollisionGetsNumericSuffix(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreatePackage(ctx, domain.UpsertPackageRequest{Name: "Undangan Digital", Category: "undangan", Price: 150000})
	require.NoError(t, err)
	second, err := svc.CreatePackage(ctx, domain.UpsertPackageRequest{Name: "Undangan Digital", Category: "undangan", Price: 250000})
	require.NoError(t, err)

	require.Equal(t, "undangan-digital", first.Slug)
	require.Equal(t, "undangan-digital-2", second.Slug)
}

func TestInactivePackageHiddenFromPublicReads(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inactive := false
	pkg, err := svc.CreatePackage(ctx, domain.UpsertPackageRequest{
		Name: "Paket Lama", Category: "website", Price: 500000, Active: &inactive,
	})
	require.NoError(t, err)

	listed, err := svc.ListPackages(ctx, "")
	require.NoError(t, err)
	require.Empty(t, listed)

	_, err = svc.GetPackageBySlug(ctx, pkg.Slug)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPackagesOrdersFeaturedFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePackage(ctx, domain.UpsertPackageRequest{Name: "Basic", Category: "website", Price: 500000})
	require.NoError(t, err)
	_, err = svc.CreatePackage(ctx, domain.UpsertPackageRequest{Name: "Pro", Category: "website", Price: 2500000, Featured: true})
	require.NoError(t, err)

	listed, err := svc.ListPackages(ctx, "website")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "Pro", listed[0].Name)
}

func TestUpdatePackageRenameRefreshesSlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	pkg, err := svc.CreatePackage(ctx, domain.UpsertPackageRequest{Name: "Katalog Produk", Category: "katalog", Price: 750000})
	require.NoError(t, err)

	updated, err := svc.UpdatePackage(ctx, domain.UpsertPackageRequest{
		ID:       pkg.ID.String(),
		Name:     "Katalog Produk UMKM",
		Category: "katalog",
		Price:    900000,
	})
	require.NoError(t, err)
	require.Equal(t, "katalog-produk-umkm", updated.Slug)
	require.Equal(t, 900000.0, updated.Price)
}

func TestUpdatePackageValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	pkg, err := svc.CreatePackage(ctx, domain.UpsertPackageRequest{Name: "Desain Logo", Category: "desain", Price: 300000})
	require.NoError(t, err)

	_, err = svc.UpdatePackage(ctx, domain.UpsertPackageRequest{ID: pkg.ID.String(), Category: "desain", Price: 1})
	require.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.UpdatePackage(ctx, domain.UpsertPackageRequest{ID: pkg.ID.String(), Name: "Desain Logo", Category: "desain", Price: -1})
	require.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = svc.UpdatePackage(ctx, domain.UpsertPackageRequest{ID: "not-a-snowflake", Name: "x", Category: "desain"})
	require.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestPortfolioLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	entry, err := svc.CreatePortfolio(ctx, domain.UpsertPortfolioRequest{
		Title:        "Website Pesantren Al-Hikmah",
		Category:     "website",
		Client:       "Pesantren Al-Hikmah",
		Technologies: "Next.js, Tailwind",
		Featured:     true,
	})
	require.NoError(t, err)
	require.Equal(t, "website-pesantren-al-hikmah", entry.Slug)

	listed, err := svc.ListPortfolio(ctx, "website")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	updated, err := svc.UpdatePortfolio(ctx, domain.UpsertPortfolioRequest{
		ID:       entry.ID.String(),
		Title:    entry.Title,
		Category: "website",
		Link:     "https://alhikmah.sch.id",
	})
	require.NoError(t, err)
	require.Equal(t, entry.Slug, updated.Slug)
	require.Equal(t, "https://alhikmah.sch.id", updated.Link)

	require.NoError(t, svc.DeletePortfolio(ctx, entry.ID.String()))
	listed, err = svc.ListPortfolio(ctx, "")
	require.NoError(t, err)
	require.Empty(t, listed)
}
