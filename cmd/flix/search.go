package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search for movies",
	Long: `Search for movies by title.

Examples:
  flix search "dune"
  flix search "dune" --sort rating
  flix search "war" --genre Drama --year 2020
  flix search --cached "dune"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("page", 1, "Result page")
	searchCmd.Flags().Int("limit", 10, "Results per page")
	searchCmd.Flags().String("sort", "", "Sort field: title, year, runtime, rating (append :asc for ascending)")
	searchCmd.Flags().String("genre", "", "Filter by genre (comma-separated)")
	searchCmd.Flags().String("year", "", "Filter by release year (comma-separated)")
	searchCmd.Flags().Bool("cached", false, "Search cached records only, without contacting the provider")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	sort, _ := cmd.Flags().GetString("sort")
	genre, _ := cmd.Flags().GetString("genre")
	year, _ := cmd.Flags().GetString("year")
	cached, _ := cmd.Flags().GetBool("cached")

	client := NewClient(serverURL, authToken)

	if cached {
		results, err := client.SearchCached(query, limit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if jsonOutput {
			printJSON(results)
			return nil
		}
		if len(results.Items) == 0 {
			fmt.Println("No cached movies found")
			return nil
		}
		fmt.Printf("Found %d cached movies for %q:\n\n", results.Total, query)
		printMovieTable(results.Items)
		return nil
	}

	results, err := client.Search(query, page, limit, sort, genre, year)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(results)
		return nil
	}

	if len(results.Items) == 0 {
		fmt.Println("No movies found")
		return nil
	}

	fmt.Printf("Found %d movies for %q (page %d of %d, %d total):\n\n",
		results.Total, query, results.Page, results.TotalPages, results.TotalResults)
	printMovieTable(results.Items)
	return nil
}

func printMovieTable(movies []MovieResponse) {
	fmt.Printf("  %-10s │ %-40s │ %4s │ %6s │ %s\n", "ID", "TITLE", "YEAR", "RATING", "GENRES")
	fmt.Println("─────────────┼──────────────────────────────────────────┼──────┼────────┼────────────")

	for _, m := range movies {
		title := m.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		year := "    "
		if m.Year != nil {
			year = fmt.Sprintf("%4d", *m.Year)
		}
		rating := "   -  "
		if m.IMDBRating != nil {
			rating = fmt.Sprintf("%6.1f", *m.IMDBRating)
		}
		fmt.Printf("  %-10s │ %-40s │ %s │ %s │ %s\n",
			m.ID, title, year, rating, strings.Join(m.Genres, ", "))
	}
}
