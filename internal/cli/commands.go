package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnacletoLAB/ensmallen-sub009/bfs"
	"github.com/AnacletoLAB/ensmallen-sub009/centrality"
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/dijkstra"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/scc"
	"github.com/AnacletoLAB/ensmallen-sub009/spanning"
	"github.com/AnacletoLAB/ensmallen-sub009/walks"
)

func (c *CLI) infoCommand() *cobra.Command {
	var diameter bool
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print a summary of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.graph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, g.String())
			fmt.Fprintf(out, "hash\t%016x\n", g.Hash())
			fmt.Fprintf(out, "degree\tmin=%d max=%d\n", g.MinNodeDegree(), g.MaxNodeDegree())
			fmt.Fprintf(out, "traps\t%d\n", g.NumberOfTraps())
			fmt.Fprintf(out, "singletons\t%d\n", g.NumberOfSingletons())
			fmt.Fprintf(out, "self-loops\t%d\n", g.NumberOfSelfLoops())
			fmt.Fprintf(out, "multigraph\t%t\n", g.IsMultigraph())
			if diameter {
				d, err := bfs.Diameter(cmd.Context(), g, bfs.WithWorkers(c.config.Run.Workers))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "diameter\t%v\n", d)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&diameter, "diameter", false, "also compute the diameter")

	return cmd
}

func (c *CLI) walksCommand() *cobra.Command {
	var (
		quantity int
		length   uint64
		seed     uint64
	)
	cmd := &cobra.Command{
		Use:   "walks",
		Short: "Generate random walks, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.graph()
			if err != nil {
				return err
			}
			p := c.config.Walks
			if cmd.Flags().Changed("length") {
				p.WalkLength = length
			}
			if cmd.Flags().Changed("seed") {
				p = p.Seed(seed)
			}
			opts := []walks.Option{walks.WithWorkers(c.config.Run.Workers), walks.WithLogger(c.Logger)}
			var seq *walks.Sequence
			if quantity > 0 {
				seq, err = walks.RandomWalks(g, quantity, p, opts...)
			} else {
				seq, err = walks.CompleteWalks(g, p, opts...)
			}
			if err != nil {
				return err
			}
			all, err := seq.Collect(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, walk := range all {
				fmt.Fprintln(out, names(g, walk))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&quantity, "random", 0, "number of walks from random starts; 0 walks from every node")
	cmd.Flags().Uint64Var(&length, "length", 0, "override walk_length")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "override the random state")

	return cmd
}

func (c *CLI) componentsCommand() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Print the component of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.graph()
			if err != nil {
				return err
			}
			opts := []spanning.Option{spanning.WithWorkers(c.config.Run.Workers), spanning.WithLogger(c.Logger)}
			var res *spanning.Result
			switch method {
			case "kruskal":
				res, err = spanning.Kruskal(g, opts...)
			case "parallel":
				res, err = spanning.Parallel(cmd.Context(), g, opts...)
			case "components":
				res, err = spanning.ConnectedComponents(cmd.Context(), g, opts...)
			default:
				err = fmt.Errorf("unknown method %q: %w", method, core.ErrInvalidParameter)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "components\t%d\tmin=%d\tmax=%d\tforest edges=%d\n", res.Count, res.MinSize, res.MaxSize, len(res.Edges))
			for v, comp := range res.Components {
				fmt.Fprintf(out, "%s\t%d\n", g.UncheckedNodeName(core.NodeT(v)), comp)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "parallel", "kruskal, parallel or components")

	return cmd
}

func (c *CLI) sccCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scc",
		Short: "Print strongly connected components, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.graph()
			if err != nil {
				return err
			}
			res, err := scc.Tarjan(cmd.Context(), g, scc.WithLogger(c.Logger))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, comp := range res.Components {
				fmt.Fprintln(out, names(g, comp))
			}
			return nil
		},
	}
}

func (c *CLI) pathsCommand() *cobra.Command {
	var (
		src, dst    string
		unit, probs bool
	)
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print a shortest path and its distance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.graph()
			if err != nil {
				return err
			}
			from, err := g.NodeID(src)
			if err != nil {
				return err
			}
			to, err := g.NodeID(dst)
			if err != nil {
				return err
			}
			var opts []dijkstra.Option
			if unit {
				opts = append(opts, dijkstra.WithUnitWeights())
			}
			if probs {
				opts = append(opts, dijkstra.WithProbabilities())
			}
			path, d, err := dijkstra.ShortestPath(g, from, to, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", names(g, path), d)
			return nil
		},
	}
	cmd.Flags().StringVar(&src, "src", "", "source node name")
	cmd.Flags().StringVar(&dst, "dst", "", "destination node name")
	cmd.Flags().BoolVar(&unit, "unit", false, "ignore weights")
	cmd.Flags().BoolVar(&probs, "probabilities", false, "read weights as probabilities")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")

	return cmd
}

// Centrality kinds accepted by --kind.
var centralityKinds = []string{"degree", "betweenness", "stress", "closeness", "harmonic", "eigenvector"}

func (c *CLI) centralityCommand() *cobra.Command {
	var (
		kind                       string
		weighted, normalize, probs bool
	)
	cmd := &cobra.Command{
		Use:   "centrality",
		Short: "Print a centrality score per node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.graph()
			if err != nil {
				return err
			}
			opts := []centrality.Option{centrality.WithWorkers(c.config.Run.Workers), centrality.WithLogger(c.Logger)}
			if normalize {
				opts = append(opts, centrality.WithNormalize())
			}
			if probs {
				opts = append(opts, centrality.WithProbabilities())
			}
			ctx := cmd.Context()
			var scores []float64
			switch {
			case kind == "degree" && weighted:
				scores, err = centrality.WeightedDegree(g)
			case kind == "degree":
				scores, err = centrality.Degree(g)
			case kind == "betweenness":
				scores, err = centrality.Betweenness(ctx, g, opts...)
			case kind == "stress":
				scores, err = centrality.Stress(ctx, g, opts...)
			case kind == "closeness" && weighted:
				scores, err = centrality.WeightedCloseness(ctx, g, opts...)
			case kind == "closeness":
				scores, err = centrality.Closeness(ctx, g, opts...)
			case kind == "harmonic" && weighted:
				scores, err = centrality.WeightedHarmonic(ctx, g, opts...)
			case kind == "harmonic":
				scores, err = centrality.Harmonic(ctx, g, opts...)
			case kind == "eigenvector" && weighted:
				scores, err = centrality.WeightedEigenvector(ctx, g, opts...)
			case kind == "eigenvector":
				scores, err = centrality.Eigenvector(ctx, g, opts...)
			default:
				err = fmt.Errorf("unknown kind %q, want one of %s: %w", kind, strings.Join(centralityKinds, ", "), core.ErrInvalidParameter)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for v, s := range scores {
				fmt.Fprintf(out, "%s\t%s\n", g.UncheckedNodeName(core.NodeT(v)), strconv.FormatFloat(s, 'g', 6, 64))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "degree", strings.Join(centralityKinds, ", "))
	cmd.Flags().BoolVar(&weighted, "weighted", false, "use edge weights")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "normalize scores")
	cmd.Flags().BoolVar(&probs, "probabilities", false, "read weights as probabilities")

	return cmd
}

// names renders node ids as space separated names.
func names(g *graph.Graph, ids []core.NodeT) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(g.UncheckedNodeName(id))
	}

	return b.String()
}
