// Package main is the entry point for the rules engine API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ledger-of-heroes",
	Short: "D&D 5e character progression and resource rules engine",
	Long:  `Ledger of Heroes serves a JSON API for D&D 5e character progression, choice resolution, and resource tracking.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
