package main

import (
	"fmt"
	"os"

	"github.com/JheyDev/Kanban/internal/config"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	c := &cli{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:           "kanban",
		Short:         "Kanban - a single-user task board",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(c.serveCmd())
	rootCmd.AddCommand(c.boardCmd())
	rootCmd.AddCommand(c.addCmd())
	rootCmd.AddCommand(c.editCmd())
	rootCmd.AddCommand(c.moveCmd())
	rootCmd.AddCommand(c.toggleCmd())
	rootCmd.AddCommand(c.rmCmd())
	rootCmd.AddCommand(c.commentCmd())
	rootCmd.AddCommand(c.showCmd())

	return rootCmd
}
