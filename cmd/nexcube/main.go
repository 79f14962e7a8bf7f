package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/joho/godotenv"
	"github.com/nexcubelabs/nexcube/internal/auth"
	"github.com/nexcubelabs/nexcube/internal/catalog"
	"github.com/nexcubelabs/nexcube/internal/client"
	"github.com/nexcubelabs/nexcube/internal/clock"
	"github.com/nexcubelabs/nexcube/internal/config"
	"github.com/nexcubelabs/nexcube/internal/finance"
	"github.com/nexcubelabs/nexcube/internal/invoice"
	"github.com/nexcubelabs/nexcube/internal/migration"
	"github.com/nexcubelabs/nexcube/internal/observability"
	"github.com/nexcubelabs/nexcube/internal/redis"
	"github.com/nexcubelabs/nexcube/internal/report"
	"github.com/nexcubelabs/nexcube/internal/seed"
	"github.com/nexcubelabs/nexcube/internal/server"
	"github.com/nexcubelabs/nexcube/pkg/db"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "nexcube",
		Short:   "Nexcube agency backend",
		Version: readVersionFromEnv(),
	}
	root.AddCommand(newMigrateCmd(), newServeCmd(), newAllCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and seed bootstrap data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Migrate, seed, then run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMigrate(); err != nil {
				return err
			}
			runServe()
			return nil
		},
	}
}

func runMigrate() error {
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		fx.Invoke(func(handle *gorm.DB, cfg config.Config) error {
			if err := migration.Run(handle); err != nil {
				return err
			}
			return seed.Run(handle, cfg)
		}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

func runServe() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		redis.Module,
		auth.Module,
		client.Module,
		invoice.Module,
		finance.Module,
		catalog.Module,
		report.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func readVersionFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	return "dev"
}
