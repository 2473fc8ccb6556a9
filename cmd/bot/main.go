// Package main is the entry point for the ShadowRoll Telegram bot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "shadowroll",
	Short: "Shadowrun dice-pool bot",
	Long:  "ShadowRoll resolves Shadowrun dice-pool rolls (SR4/SR5/SR6), as a Telegram bot or straight from the terminal.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config", "directory containing config.yaml")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(versionCmd)
}

// version is stamped by the build; "dev" otherwise.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shadowroll", version)
	},
}
