package migration

import (
	"errors"

	authdomain "github.com/nexcubelabs/nexcube/internal/auth/domain"
	catalogdomain "github.com/nexcubelabs/nexcube/internal/catalog/domain"
	clientdomain "github.com/nexcubelabs/nexcube/internal/client/domain"
	financedomain "github.com/nexcubelabs/nexcube/internal/finance/domain"
	invoicedomain "github.com/nexcubelabs/nexcube/internal/invoice/domain"
	"gorm.io/gorm"
)

// Run migrates every persisted model. It is idempotent and must be invoked
// explicitly by the migrate entrypoint before the server starts.
func Run(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}
	return db.AutoMigrate(
		&authdomain.User{},
		&clientdomain.Client{},
		&invoicedomain.Invoice{},
		&financedomain.Record{},
		&catalogdomain.Package{},
		&catalogdomain.Portfolio{},
	)
}
