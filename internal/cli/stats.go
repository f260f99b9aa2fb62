package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theseus-aligner/seqtools/pkg/gfa"
	"github.com/theseus-aligner/seqtools/pkg/graph"
)

type statsOpts struct {
	gfaOpts
	json   bool
	output string
}

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var opts statsOpts

	cmd := &cobra.Command{
		Use:   "stats <input.gfa>",
		Short: "Summarise the segments and links of a GFA graph",
		Long: `Load a GFA graph and report segment and link counts, total sequence
length, and links that point at undeclared segments.

With --json the whole graph (nodes and edges) is written as JSON instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.skipMalformed = boolSetting(cmd, "skip-malformed", opts.skipMalformed, c.config.GFA.SkipMalformed)
			return runStats(cmd, args[0], opts)
		},
	}

	addGFAFlags(cmd, &opts.gfaOpts)
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the graph as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", stdioPath, "JSON output file (with --json)")

	return cmd
}

func runStats(cmd *cobra.Command, input string, opts statsOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer in.Close()

	g, err := graph.Load(ctx, in, gfa.ScanOptions{
		Policy: opts.policy(),
		OnSkip: skipWarner(ctx, input),
	})
	if err != nil {
		return gfaError(err, input)
	}
	prog.done(fmt.Sprintf("Loaded %s", input))

	if opts.json {
		out, err := openOutput(cmd, opts.output)
		if err != nil {
			return err
		}
		defer out.Abort()
		if err := graph.WriteJSON(g, out); err != nil {
			return err
		}
		return out.Commit()
	}

	printGraphStats(cmd, input, g.Stats())
	return nil
}

func printGraphStats(cmd *cobra.Command, input string, st graph.Stats) {
	w := cmd.OutOrStdout()
	printKeyValue(w, "File", input)
	printCount(w, "Segments", st.Segments)
	printCount(w, "Links", st.Links)
	printCount(w, "Total length", st.TotalLength)
	printCount(w, "Unknown seq", st.UnknownSequences)
	printCount(w, "Sources", st.Sources)
	printCount(w, "Sinks", st.Sinks)
	printCount(w, "Self loops", st.SelfLoops)

	if len(st.Undeclared) > 0 {
		printWarning(w, "%d link endpoints have no segment: %s", len(st.Undeclared), strings.Join(st.Undeclared, ", "))
	}
	if len(st.Duplicates) > 0 {
		printWarning(w, "%d segments declared more than once: %s", len(st.Duplicates), strings.Join(st.Duplicates, ", "))
	}
}
