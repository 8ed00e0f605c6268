package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amina/career-match/internal/matching"
	"github.com/amina/career-match/internal/types"
)

var (
	matchProfileFile     string
	matchOpportunityFile string
	matchOutFile         string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate profile against a single opportunity",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to candidate profile JSON (required)")
	matchCmd.Flags().StringVarP(&matchOpportunityFile, "opportunity", "j", "", "Path to opportunity JSON (required)")
	matchCmd.Flags().StringVarP(&matchOutFile, "out", "o", "", "Output file (default: stdout)")

	_ = matchCmd.MarkFlagRequired("profile")
	_ = matchCmd.MarkFlagRequired("opportunity")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(matchProfileFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(matchOpportunityFile)
	if err != nil {
		return fmt.Errorf("failed to read opportunity: %w", err)
	}
	var opp types.Opportunity
	if err := json.Unmarshal(data, &opp); err != nil {
		return fmt.Errorf("failed to parse opportunity JSON: %w", err)
	}
	if err := opp.Validate(); err != nil {
		return fmt.Errorf("invalid opportunity: %w", err)
	}

	result := matching.CalculateMatch(profile, opp)
	return writeJSON(matchOutFile, result)
}
