package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/sprite-tools/internal/server"
	"github.com/ironsheep/sprite-tools/internal/sprite"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run the MCP (Model Context Protocol) server over stdio.

stdout carries protocol messages only; logs go to stderr. Configure the
command in an MCP client as: sprite-tools serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palettes, err := loadPalettes()
			if err != nil {
				return err
			}

			server.Version = Version
			sprite.Logger().Info("starting MCP server", "version", Version, "commit", GitCommit, "built", BuildTime)
			return server.New(palettes...).Run()
		},
	}
}
