package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/upadhyeammit/smart-proxy/framework/app"
	"github.com/upadhyeammit/smart-proxy/framework/container"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "smart-proxy:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFiles []string

	rootCmd := &cobra.Command{
		Use:           "smart-proxy",
		Short:         "Smart proxy service host",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv file(s) to load (default .env)")

	rootCmd.AddCommand(
		serveCommand(&envFiles),
		dependenciesCommand(&envFiles),
	)
	return rootCmd
}

func serveCommand(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Boot the application and serve HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := app.New(*envFiles...)
			if err != nil {
				return errors.Wrap(err, "create application")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return application.Run(ctx)
		},
	}
}

func dependenciesCommand(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "dependencies",
		Short: "Boot the application and list its registered dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := app.New(*envFiles...)
			if err != nil {
				return errors.Wrap(err, "create application")
			}
			if err := application.Boot(); err != nil {
				return err
			}
			renderDependencies(cmd.OutOrStdout(), application.ContainerInstance().Describe())
			return nil
		},
	}
}

func renderDependencies(w io.Writer, deps []container.Description) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Strategy", "Resolved"})
	table.SetAutoFormatHeaders(true)
	table.SetBorder(false)
	for _, d := range deps {
		strategy := d.Strategy
		if d.Deferred {
			strategy = "deferred"
		}
		table.Append([]string{d.Name, strategy, strconv.FormatBool(d.Resolved)})
	}
	table.Render()
}
