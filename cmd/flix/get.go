package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <imdb-id>",
	Short: "Show one movie's full record",
	Long: `Show one movie's full cached record, fetching it from the
metadata provider if it is not cached yet.

Examples:
  flix get tt1160419
  flix get tt1160419 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGetCmd,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGetCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, authToken)

	movie, err := client.Movie(args[0])
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}

	if jsonOutput {
		printJSON(movie)
		return nil
	}

	fmt.Printf("%s", movie.Title)
	if movie.Year != nil {
		fmt.Printf(" (%d)", *movie.Year)
	}
	fmt.Printf("  [%s]\n", movie.ID)

	if movie.Rated != nil {
		fmt.Printf("  Rated:    %s\n", *movie.Rated)
	}
	if movie.RuntimeMinutes != nil {
		fmt.Printf("  Runtime:  %d min\n", *movie.RuntimeMinutes)
	}
	if len(movie.Genres) > 0 {
		fmt.Printf("  Genres:   %s\n", strings.Join(movie.Genres, ", "))
	}
	if len(movie.Directors) > 0 {
		fmt.Printf("  Director: %s\n", strings.Join(movie.Directors, ", "))
	}
	if len(movie.Actors) > 0 {
		fmt.Printf("  Actors:   %s\n", strings.Join(movie.Actors, ", "))
	}
	if movie.IMDBRating != nil {
		fmt.Printf("  Rating:   %.1f\n", *movie.IMDBRating)
	}
	if movie.Plot != nil {
		fmt.Printf("\n  %s\n", *movie.Plot)
	}
	fmt.Printf("\n  Cached at %s\n", movie.LastFetchedAt)
	return nil
}
