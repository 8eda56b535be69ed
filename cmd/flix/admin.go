package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and print an auth token",
	Long: `Log in as the admin user and print a token for later requests.

The password is read from stdin. Export the printed token:

  export MOVIEFLIX_TOKEN=$(flix login admin@example.com)`,
	Args: cobra.ExactArgs(1),
	RunE: runLoginCmd,
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Force-refresh every cached movie (admin)",
	Args:  cobra.NoArgs,
	RunE:  runRefreshCmd,
}

var removeCmd = &cobra.Command{
	Use:   "remove <imdb-id>",
	Short: "Remove a movie from the cache (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveCmd,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(removeCmd)
}

func runLoginCmd(cmd *cobra.Command, args []string) error {
	password, err := readPassword()
	if err != nil {
		return err
	}

	client := NewClient(serverURL, "")
	resp, err := client.Login(args[0], password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}
	fmt.Println(resp.Token)
	return nil
}

func readPassword() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runRefreshCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, authToken)

	resp, err := client.RefreshCache()
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}
	fmt.Printf("Refreshed %d movies\n", resp.Refreshed)
	return nil
}

func runRemoveCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, authToken)

	if err := client.RemoveMovie(args[0]); err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}

	if !jsonOutput {
		fmt.Printf("Removed %s\n", args[0])
	}
	return nil
}
