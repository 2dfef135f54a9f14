// Package main provides the entry point for the faculty recruitment
// screening service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Sayak1321/faculty-recruitment-system/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Faculty recruitment screening service",
	Long:  "Screens faculty applications against per-job criteria: extracts facts from resumes, decides eligibility, ranks candidates and exports reports.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration from the optional config
// file overlaid with environment variables.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.FromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
