package cmd

import (
	"fmt"

	"auction-manager/core/config"
	"auction-manager/core/database"
	"auction-manager/core/logger"
	auctionmodels "auction-manager/feature/auction/models"
	usermodels "auction-manager/feature/user/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCheck bool

// migrateCmd creates or updates the database schema for all features.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create or update the tables backing auctions and users.

With --check no changes are made; the command reports which tables are
missing and lists the columns of the ones that exist.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateCheck, "check", false, "Report schema state without applying changes")
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	tables := []string{"auctions", "auction_participants", "auction_items", "users", "company_memberships"}

	if migrateCheck {
		for _, table := range tables {
			if !database.HasTable(db, table) {
				l.Warn("Table missing", zap.String("table", table))
				continue
			}
			cols, err := database.GetTableColumns(db, table)
			if err != nil {
				return fmt.Errorf("failed to inspect table %s: %w", table, err)
			}
			names := make([]string, 0, len(cols))
			for _, col := range cols {
				names = append(names, col.Field)
			}
			l.Info("Table present", zap.String("table", table), zap.Strings("columns", names))
		}
		return nil
	}

	err = db.AutoMigrate(
		&auctionmodels.Auction{},
		&auctionmodels.Participant{},
		&auctionmodels.Item{},
		&usermodels.User{},
		&usermodels.CompanyMembership{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	l.Info("Schema migrated", zap.Strings("tables", tables))
	return nil
}
