package cli

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/progress"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	root := &cobra.Command{
		Use:           "ensmallen",
		Short:         "Ensmallen runs graph algorithms over compressed graphs",
		Long:          `Ensmallen generates a graph from a TOML run file and runs walks, components, shortest paths or centralities over it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			if configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				c.config = cfg
			}
			c.run = uuid.New()
			c.Logger = c.Logger.With("run", c.run.String())
			c.Logger.Debug("starting", "command", cmd.Name(), "config", configPath)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML run file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.infoCommand())
	root.AddCommand(c.walksCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.sccCommand())
	root.AddCommand(c.pathsCommand())
	root.AddCommand(c.centralityCommand())

	return root
}

// Execute runs the command tree with ctx.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(c.Out)

	return root.ExecuteContext(ctx)
}

// graph builds the configured graph and logs its summary.
func (c *CLI) graph() (*graph.Graph, error) {
	span := progress.Start(c.Logger, "generating graph", "generator", c.config.Graph.Generator)
	g, err := c.config.Graph.Build(c.config.Run.Workers)
	if err != nil {
		return nil, err
	}
	span.Done()
	progress.Info(c.Logger, "graph ready", "summary", g.String())

	return g, nil
}
