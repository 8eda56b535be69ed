package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	Args:  cobra.NoArgs,
	RunE:  runStatsCmd,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, authToken)

	stats, err := client.Stats()
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	if jsonOutput {
		printJSON(stats)
		return nil
	}

	fmt.Printf("Cached movies: %d\n", stats.TotalMovies)
	if stats.AverageRating != nil {
		fmt.Printf("Average rating: %.1f\n", *stats.AverageRating)
	}

	if len(stats.Genres) > 0 {
		fmt.Println("\nGenres")
		for _, g := range stats.Genres {
			if g.AverageRating != nil {
				fmt.Printf("  %-15s %3d movies  avg %.1f\n", g.Genre, g.Count, *g.AverageRating)
			} else {
				fmt.Printf("  %-15s %3d movies\n", g.Genre, g.Count)
			}
		}
	}

	if len(stats.Years) > 0 {
		fmt.Println("\nYears")
		for _, y := range stats.Years {
			if y.AverageRuntime != nil {
				fmt.Printf("  %d  %3d movies  avg %.0f min\n", y.Year, y.Count, *y.AverageRuntime)
			} else {
				fmt.Printf("  %d  %3d movies\n", y.Year, y.Count)
			}
		}
	}
	return nil
}
