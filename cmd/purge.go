package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"auction-manager/core/config"
	"auction-manager/core/database"
	"auction-manager/core/logger"
	"auction-manager/core/storage"
	"auction-manager/feature/auction"
	"auction-manager/feature/user"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for purge commands
	purgeYes         bool
	purgeDropArchive bool
)

// purgeCmd is the parent command for all purge operations.
var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Permanently delete a record and its child collections",
	Long: `Permanently delete a record together with all of its child rows.
Unlike the HTTP delete endpoint this bypasses soft deletion entirely.`,
}

// purgeAuctionCmd hard-deletes one auction with its participants and items.
var purgeAuctionCmd = &cobra.Command{
	Use:   "auction <id>",
	Short: "Delete an auction, its participants, and its items",
	Long: `Delete an auction and every participant and item row attached to it.

When object storage is enabled a deletion snapshot is written first, so the
record can still be inspected after it is gone. Pass --drop-archive to remove
any existing snapshot as well.

Examples:
  # Purge with interactive confirmation
  purge auction 42

  # Purge without prompting
  purge auction 42 --yes

  # Purge and remove the stored snapshot
  purge auction 42 --yes --drop-archive`,
	Args: cobra.ExactArgs(1),
	RunE: runPurgeAuction,
}

// purgeUserCmd hard-deletes one user with its company memberships.
var purgeUserCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Delete a user and its company memberships",
	Args:  cobra.ExactArgs(1),
	RunE:  runPurgeUser,
}

func init() {
	purgeCmd.AddCommand(purgeAuctionCmd)
	purgeCmd.AddCommand(purgeUserCmd)

	purgeCmd.PersistentFlags().BoolVar(&purgeYes, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	purgeAuctionCmd.Flags().BoolVar(&purgeDropArchive, "drop-archive", false, "Also remove the stored deletion snapshot")

	RootCmd.AddCommand(purgeCmd)
}

func runPurgeAuction(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid auction id %q: %w", args[0], err)
	}

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

	var archiver *auction.Archiver
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		archiver = auction.NewArchiver(client, cfg.Storage.Bucket)
	}

	if !confirmPurge() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	svc := auction.NewService(db, l, archiver)
	if err := svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to purge auction %d: %w", id, err)
	}
	l.Info("Purged auction", zap.Int64("id", id))

	if purgeDropArchive {
		if archiver == nil {
			l.Warn("Storage is disabled, --drop-archive skipped")
			return nil
		}
		if err := archiver.Remove(ctx, id); err != nil {
			return fmt.Errorf("failed to remove archive for auction %d: %w", id, err)
		}
		l.Info("Removed deletion archive", zap.Int64("id", id))
	}

	return nil
}

func runPurgeUser(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", args[0], err)
	}

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

	if !confirmPurge() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	svc := user.NewService(db, l)
	if err := svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to purge user %d: %w", id, err)
	}
	l.Info("Purged user", zap.Int64("id", id))

	return nil
}

// confirmPurge prompts the user for confirmation or uses the --yes flag.
func confirmPurge() bool {
	if purgeYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
