package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/amina/career-match/internal/db"
	"github.com/amina/career-match/internal/ingestion"
)

var (
	ingestURL        string
	ingestOutFile    string
	ingestUseBrowser bool
	ingestVerbose    bool
	ingestStore      bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest an opportunity posting from a URL",
	Long:  "Fetch a posting page, extract its title, description and required skills, and write the opportunity as JSON or store it in the catalog database.",
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the posting from (required)")
	ingestCmd.Flags().StringVarP(&ingestOutFile, "out", "o", "", "Output file (default: stdout)")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "browser", false, "Render JavaScript-heavy pages in a headless browser")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed extraction information")
	ingestCmd.Flags().BoolVar(&ingestStore, "store", false, "Insert the opportunity into the catalog database")

	_ = ingestCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	opp, err := ingestion.IngestURL(ctx, ingestURL, ingestUseBrowser, ingestVerbose)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if ingestStore {
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required with --store")
		}

		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		stored, err := database.CreateOpportunity(ctx, *opp)
		if err != nil {
			return fmt.Errorf("failed to store opportunity: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Stored opportunity %s: %s\n", stored.ID, stored.Title)
		return nil
	}

	return writeJSON(ingestOutFile, opp)
}
