package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
	authToken  string
)

var rootCmd = &cobra.Command{
	Use:   "flix",
	Short: "CLI client for the movieflix server",
	Long: `flix - CLI client for the movieflix server

Search movies, inspect cached records, and administer the
metadata cache.

Run 'flixd' to start the server daemon.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:4000", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", os.Getenv("MOVIEFLIX_TOKEN"), "Auth token (defaults to $MOVIEFLIX_TOKEN)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("flix {{.Version}}\n")
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
