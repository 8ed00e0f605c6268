package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amina/career-match/internal/matching"
	"github.com/amina/career-match/internal/schemas"
	"github.com/amina/career-match/internal/types"
)

var (
	rankProfileFile string
	rankCatalogFile string
	rankOutFile     string
	rankTopN        int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a catalog of opportunities for a candidate profile",
	Long:  "Read a candidate profile and an opportunity catalog from JSON files, score every pairing, and write results ordered best first.",
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankProfileFile, "profile", "p", "", "Path to candidate profile JSON (required)")
	rankCmd.Flags().StringVarP(&rankCatalogFile, "catalog", "c", "", "Path to opportunity catalog JSON (required)")
	rankCmd.Flags().StringVarP(&rankOutFile, "out", "o", "", "Output file (default: stdout)")
	rankCmd.Flags().IntVarP(&rankTopN, "top", "n", 0, "Keep only the top N results (0 keeps all)")

	_ = rankCmd.MarkFlagRequired("profile")
	_ = rankCmd.MarkFlagRequired("catalog")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(rankProfileFile)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(rankCatalogFile)
	if err != nil {
		return err
	}

	results := matching.Rank(profile, catalog)
	if rankTopN > 0 && len(results) > rankTopN {
		results = results[:rankTopN]
	}

	return writeJSON(rankOutFile, results)
}

// loadProfile reads, schema-checks and validates a candidate profile file.
func loadProfile(path string) (*types.CandidateProfile, error) {
	if schemaPath := schemas.ResolveSchemaPath(schemas.CandidateProfileSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("profile failed schema validation: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return &profile, nil
}

// loadCatalog reads and schema-checks an opportunity catalog file.
func loadCatalog(path string) ([]types.Opportunity, error) {
	if schemaPath := schemas.ResolveSchemaPath(schemas.OpportunitiesSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("catalog failed schema validation: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var catalog []types.Opportunity
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	for i := range catalog {
		if err := catalog[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid opportunity at index %d: %w", i, err)
		}
	}

	return catalog, nil
}

// writeJSON writes v as indented JSON to path, or stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
