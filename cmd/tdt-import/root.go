package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srqtax/tdt/internal/config"
	"github.com/srqtax/tdt/internal/countyimport"
	"github.com/srqtax/tdt/internal/database"
	"github.com/srqtax/tdt/internal/logger"
)

var (
	cfg *config.Config
	log *logger.Logger

	tableName string
	importAll bool
	dryRun    bool
	dataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "tdt-import",
	Short: "Load county assessor export files into the compliance database",
	Long: "Imports the county property appraiser's flat-file exports (properties, sales,\n" +
		"buildings, land, values, exemptions, lookup codes) into PostgreSQL.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		log = logger.New(cfg.Server.Env)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if tableName == "" && !importAll {
			_ = cmd.Help()
			return fmt.Errorf("specify --table <name> or --all")
		}

		ctx := context.Background()
		db, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		if err := database.Migrate(ctx, db.Pool, log); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		dir := cfg.Import.DataDir
		if dataDir != "" {
			dir = dataDir
		}
		imp := countyimport.New(db.Pool, log, countyimport.Options{
			DataDir:   dir,
			BatchSize: cfg.Import.BatchSize,
			DryRun:    dryRun,
		})

		var summary *countyimport.Summary
		if importAll {
			summary, err = imp.RunAll(ctx)
		} else {
			summary, err = imp.Run(ctx, []string{tableName})
		}
		if err != nil {
			return err
		}

		printSummary(cmd, summary)
		if summary.HasErrors() {
			return fmt.Errorf("import finished with errors")
		}
		return nil
	},
}

func printSummary(cmd *cobra.Command, summary *countyimport.Summary) {
	for _, r := range summary.Results {
		switch {
		case r.Skipped:
			cmd.Printf("%-25s %s not found, skipped\n", r.Table, r.File)
		case len(r.Errors) > 0:
			cmd.Printf("%-25s read=%d dropped=%d inserted=%d errors=%d\n",
				r.Table, r.Read, r.Dropped, r.Inserted, len(r.Errors))
			for _, e := range r.Errors {
				cmd.Printf("  %s\n", e)
			}
		default:
			cmd.Printf("%-25s read=%d dropped=%d inserted=%d\n",
				r.Table, r.Read, r.Dropped, r.Inserted)
		}
	}
	cmd.Printf("total inserted: %d\n", summary.TotalInserted())
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		db, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		return database.Migrate(ctx, db.Pool, log)
	},
}

func init() {
	rootCmd.Flags().StringVar(&tableName, "table", "",
		fmt.Sprintf("import a single table %v", countyimport.TableNames()))
	rootCmd.Flags().BoolVar(&importAll, "all", false, "import every table in dependency order")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate files without inserting")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the source data directory")

	rootCmd.AddCommand(migrateCmd)
}
