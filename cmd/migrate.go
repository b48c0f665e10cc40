package cmd

import (
	"fmt"

	"github.com/killallgit/podcaster-api/internal/database"
	"github.com/killallgit/podcaster-api/internal/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the Podcaster API.

The schema is derived from the users, categories and podcasts models.

Available subcommands:
  up      - Create or update every table
  down    - Drop every table (requires --force)
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply all pending database migrations.

Missing tables are created and existing tables gain any new columns
and indexes.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the schema
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop every application table",
	Long: `Drop every application table.

All stored users, categories and podcasts are lost. Uploaded files are
left in place. Pass --force to confirm.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long:  `Display whether each application table exists.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
	migrateDownCmd.Flags().Bool("force", false, "confirm dropping every table")
}

func openDatabase() (*database.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()
	return migrateUp(cmd, db)
}

func migrateUp(cmd *cobra.Command, db *database.DB) error {
	out := cmd.OutOrStdout()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, model := range models.All() {
			name := tableName(db, model)
			if db.Migrator().HasTable(model) {
				fmt.Fprintf(out, "  update %s\n", name)
			} else {
				fmt.Fprintf(out, "  create %s\n", name)
			}
		}
		return nil
	}

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	fmt.Fprintln(out, "Migrations applied")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()
	return migrateDown(cmd, db)
}

func migrateDown(cmd *cobra.Command, db *database.DB) error {
	out := cmd.OutOrStdout()
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	force, _ := cmd.Flags().GetBool("force")

	// drop dependents first
	all := models.All()
	ordered := make([]any, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		ordered = append(ordered, all[i])
	}

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, model := range ordered {
			if db.Migrator().HasTable(model) {
				fmt.Fprintf(out, "  drop %s\n", tableName(db, model))
			}
		}
		return nil
	}
	if !force {
		return fmt.Errorf("refusing to drop tables without --force")
	}

	if err := db.Migrator().DropTable(ordered...); err != nil {
		return fmt.Errorf("dropping tables: %w", err)
	}
	fmt.Fprintln(out, "Tables dropped")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()
	return migrateStatus(cmd, db)
}

func migrateStatus(cmd *cobra.Command, db *database.DB) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Migration Status:")
	for _, model := range models.All() {
		state := "missing"
		if db.Migrator().HasTable(model) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-12s %s\n", tableName(db, model), state)
	}
	return nil
}

func tableName(db *database.DB, model any) string {
	stmt := &gorm.Statement{DB: db.DB}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}
