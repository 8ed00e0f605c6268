// Package main provides the entry point for the career match CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_match",
	Short: "Candidate-to-opportunity matching engine",
	Long:  "career_match scores candidate skill profiles against internship and job opportunities, ranks catalogs, ingests postings, and serves the REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
