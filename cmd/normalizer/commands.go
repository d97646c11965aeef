package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/profile-normalizer/internal/audit"
	"github.com/profile-normalizer/internal/db"
	import_pkg "github.com/profile-normalizer/internal/import"
	"github.com/profile-normalizer/internal/store"
	"github.com/profile-normalizer/internal/transform"
	"github.com/profile-normalizer/internal/vocab"
)

// jobNames lists the per-job subcommands in the order "all" runs them
var jobNames = []string{
	transform.JobAddress,
	transform.JobEducation,
	transform.JobIncome,
	transform.JobParentOccupation,
	transform.JobProfession,
	transform.JobPhone,
	transform.JobReference,
	transform.JobSiblings,
}

var jobDescriptions = map[string]string{
	transform.JobAddress:          "Split residing addresses into house number, street, area, city, state, country and PIN",
	transform.JobEducation:        "Map education answers onto the canonical degree list",
	transform.JobIncome:           "Convert income answers to lakh INR and an income bracket",
	transform.JobParentOccupation: "Classify father's and mother's occupation",
	transform.JobProfession:       "Extract profession and designation",
	transform.JobPhone:            "Extract primary and secondary phone numbers",
	transform.JobReference:        "Split references into contact name and phone",
	transform.JobSiblings:         "Map sibling descriptions onto sister and brother labels",
}

func createJobCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: jobDescriptions[name],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobs(cmd.Context(), []string{name})
		},
	}
}

func createAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every normalizer job in sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobs(cmd.Context(), jobNames)
		},
	}
}

// needsVocabulary reports whether any of the jobs matches against lookup tables
func needsVocabulary(names []string) bool {
	for _, n := range names {
		if n == transform.JobParentOccupation || n == transform.JobProfession {
			return true
		}
	}
	return false
}

func runJobs(ctx context.Context, names []string) error {
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	st := store.NewPostgresStore(conn.DB, cfg.Staging.Table, cfg.Staging.KeyColumn).WithDebug(debugMode)

	v := vocab.Default()
	if needsVocabulary(names) {
		if v, err = vocab.Load(ctx, st, cfg.Staging); err != nil {
			return err
		}
	}
	registry := transform.Jobs(v)

	jobs := make([]transform.Job, 0, len(names))
	for _, n := range names {
		j, err := registry.Get(n)
		if err != nil {
			return err
		}
		jobs = append(jobs, j)
	}

	driver := transform.NewDriver(st, store.NewGuard(conn.DB, cfg.Guard), transform.Options{
		BatchSize: cfg.BatchSize,
		DryRun:    dryRun,
		Debug:     debugMode,
	})
	if cfg.AuditEnabled && !dryRun {
		driver.WithRecorder(func(job string) transform.Recorder {
			return audit.NewTracker(conn.DB, job).WithDebug(debugMode)
		})
	}

	results, err := driver.RunAll(ctx, jobs)
	for _, s := range results {
		printStats(s)
	}
	return err
}

func printStats(s *transform.RunStats) {
	mode := ""
	if s.DryRun {
		mode = " (dry run)"
	}
	fmt.Printf("\n=== %s%s ===\n", s.Job, mode)
	fmt.Printf("Run id:         %s\n", s.RunID)
	fmt.Printf("Rows:           %d\n", s.Rows)
	fmt.Printf("Warnings:       %d\n", s.Warnings)
	if !s.DryRun {
		fmt.Printf("Batches:        %d (%d failed)\n", s.Batches, s.FailedBatches)
		fmt.Printf("Rows affected:  %d\n", s.RowsAffected)
	}
	fmt.Printf("Time:           %v\n", s.ProcessingTime)
}

func createImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [filename]",
		Short: "Import a survey export CSV into the staging table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conn, err := db.NewConnection(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			importer := import_pkg.NewCSVImporter(conn.DB, cfg.Staging.Table, cfg.Staging.KeyColumn).WithDebug(debugMode)
			stats, err := importer.ImportFile(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to import %s: %w", args[0], err)
			}

			fmt.Printf("Imported %d of %d records (%d skipped, %d errors)\n",
				stats.Imported, stats.Read, stats.Skipped, stats.Errors)
			return nil
		},
	}
}

func createPreviewCmd() *cobra.Command {
	var fromDB bool

	cmd := &cobra.Command{
		Use:   "preview [job] [text...]",
		Short: "Show what a normalizer produces for a raw answer",
		Long:  `Runs one job's normalizer on the given text without touching the staging table. The text is used for every raw column the job reads.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := vocab.Default()
			if fromDB {
				ctx := cmd.Context()
				conn, err := db.NewConnection(ctx, cfg.Database)
				if err != nil {
					return err
				}
				defer conn.Close()

				st := store.NewPostgresStore(conn.DB, cfg.Staging.Table, cfg.Staging.KeyColumn)
				if v, err = vocab.Load(ctx, st, cfg.Staging); err != nil {
					return err
				}
			}

			job, err := transform.Jobs(v).Get(args[0])
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			raw := make(map[string]string, len(job.Reads))
			for _, c := range job.Reads {
				raw[c] = text
			}
			values, warnings := job.Transform(raw)

			for i, c := range job.Writes {
				val := values[i]
				if val == nil || val == "" {
					val = "NULL"
				}
				fmt.Printf("%-20s %v\n", c.Name+":", val)
			}
			for _, w := range warnings {
				fmt.Printf("warning: %s (%s)\n", w.Reason, w.Column)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromDB, "db", false, "load profession and designation vocabularies from the database")
	return cmd
}

// createPingCmd creates a command to test database connectivity
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conn, err := db.NewConnection(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			fmt.Println("Database connection successful!")

			for _, table := range []string{cfg.Staging.Table, cfg.Staging.ProfessionTable, cfg.Staging.DesignationTable} {
				var count int
				if err := conn.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+pq.QuoteIdentifier(table)); err != nil {
					log.Warn().Err(err).Str("table", table).Msg("Error counting records")
					continue
				}
				fmt.Printf("%s: %d rows\n", table, count)
			}
			return nil
		},
	}
}

func createDBCmd() *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database utility commands",
	}

	dbCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the staging, lookup and audit tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conn, err := db.NewConnection(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			st := store.NewPostgresStore(conn.DB, cfg.Staging.Table, cfg.Staging.KeyColumn)
			if err := st.InitSchema(ctx); err != nil {
				return err
			}
			fmt.Println("Schema is up to date")
			return nil
		},
	})

	return dbCmd
}
