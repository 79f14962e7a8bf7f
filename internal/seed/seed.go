package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	authdomain "github.com/nexcubelabs/nexcube/internal/auth/domain"
	"github.com/nexcubelabs/nexcube/internal/auth/password"
	catalogdomain "github.com/nexcubelabs/nexcube/internal/catalog/domain"
	"github.com/nexcubelabs/nexcube/internal/config"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Run seeds the bootstrap admin user and the default catalog packages. It is
// idempotent: existing rows are left untouched.
func Run(db *gorm.DB, cfg config.Config) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureAdminUser(tx, node, cfg.Auth); err != nil {
			return err
		}
		return ensureDefaultPackages(tx, node)
	})
}

func ensureAdminUser(tx *gorm.DB, node *snowflake.Node, cfg config.AuthConfig) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		return errors.New("seed admin credentials are required")
	}

	var count int64
	if err := tx.Model(&authdomain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return tx.Create(&authdomain.User{
		ID:           node.Generate(),
		Email:        email,
		Name:         cfg.AdminName,
		PasswordHash: hash,
		Role:         "admin",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}).Error
}

type packageSeed struct {
	name          string
	category      string
	description   string
	price         float64
	billingPeriod string
	features      []string
	featured      bool
}

var defaultPackages = []packageSeed{
	{
		name:          "Website Basic",
		category:      "website",
		description:   "Landing page untuk UMKM dan profil usaha",
		price:         1500000,
		billingPeriod: "tahun",
		features:      []string{"1 halaman landing", "Domain .com 1 tahun", "Hosting 1 tahun", "Desain responsif"},
	},
	{
		name:          "Website Bisnis",
		category:      "website",
		description:   "Website company profile lengkap",
		price:         3500000,
		billingPeriod: "tahun",
		features:      []string{"Sampai 10 halaman", "Domain + hosting 1 tahun", "Form kontak", "Optimasi SEO dasar"},
		featured:      true,
	},
	{
		name:          "Undangan Digital",
		category:      "undangan",
		description:   "Undangan pernikahan digital dengan RSVP",
		price:         250000,
		billingPeriod: "sekali",
		features:      []string{"Desain custom", "Galeri foto", "RSVP online", "Hitung mundur acara"},
	},
	{
		name:          "Desain Grafis",
		category:      "desain",
		description:   "Logo, banner, dan materi promosi",
		price:         300000,
		billingPeriod: "sekali",
		features:      []string{"Logo + 2 revisi", "File master", "Panduan warna"},
	},
	{
		name:          "Katalog Produk",
		category:      "katalog",
		description:   "Katalog online untuk toko dan UMKM",
		price:         750000,
		billingPeriod: "tahun",
		features:      []string{"Sampai 50 produk", "Pencarian produk", "Tombol pesan WhatsApp"},
	},
}

func ensureDefaultPackages(tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.Model(&catalogdomain.Package{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, seed := range defaultPackages {
		pkg := &catalogdomain.Package{
			ID:            node.Generate(),
			Name:          seed.name,
			Slug:          slug.Make(seed.name),
			Category:      seed.category,
			Description:   seed.description,
			Price:         seed.price,
			BillingPeriod: seed.billingPeriod,
			Features:      datatypes.NewJSONSlice(seed.features),
			Featured:      seed.featured,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.Create(pkg).Error; err != nil {
			return err
		}
	}
	return nil
}
