// Package main is the entry point for the card-wallet-cli application.
// It registers the card and image sub-commands, which operate directly on the
// configured database and image store.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/card-wallet/cmd/card-wallet-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(args []string) error {
	rootCmd, err := newRootCommand()
	if err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func newRootCommand() (*cobra.Command, error) {
	defaultConfigPath := os.Getenv("CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/rest-app.yaml"
	}

	var configPath string
	rootCmd := &cobra.Command{
		Use:   "card-wallet-cli",
		Short: "Card wallet administration CLI",
		Long: `card-wallet-cli manages loyalty cards and their stored images
using the same configuration as the REST API (CONFIG_PATH or --config,
overridable through CARD_WALLET_* environment variables).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to the configuration file")

	load := commands.NewConfigDependencyLoader(&configPath)

	if err := commands.InitCardCommands(rootCmd, load); err != nil {
		return nil, fmt.Errorf("failed to initialize card commands: %w", err)
	}
	if err := commands.InitImageCommands(rootCmd, load); err != nil {
		return nil, fmt.Errorf("failed to initialize image commands: %w", err)
	}

	return rootCmd, nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
