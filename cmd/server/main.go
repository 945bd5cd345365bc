// Package main is the entry point for the rpg-tale server and its test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tale/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-tale",
	Short: "Narrative RPG session server",
	Long: `rpg-tale drives single-player narrative role-playing sessions: dice-driven
character creation followed by a story loop told by an external narrator.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
