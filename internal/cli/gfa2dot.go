package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/theseus-aligner/seqtools/pkg/dot"
	seqerrors "github.com/theseus-aligner/seqtools/pkg/errors"
	"github.com/theseus-aligner/seqtools/pkg/gfa"
)

// gfaOpts holds the flags shared by commands that read GFA.
type gfaOpts struct {
	skipMalformed bool
	rawLabels     bool
	quoteIDs      bool
	linkLabels    bool
}

func (o *gfaOpts) policy() gfa.Policy {
	if o.skipMalformed {
		return gfa.PolicySkip
	}
	return gfa.PolicyStrict
}

// gfa2dotCommand creates the gfa2dot command.
func (c *CLI) gfa2dotCommand() *cobra.Command {
	var opts gfaOpts

	cmd := &cobra.Command{
		Use:   "gfa2dot <input.gfa> <output.dot>",
		Short: "Convert a GFA graph to Graphviz DOT",
		Long: `Convert a GFA graph to Graphviz DOT.

Every segment (S) line becomes a node labelled with its sequence and every
link (L) line becomes a directed edge, in input order. Other lines are
ignored. Use "-" for either path to read stdin or write stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config.GFA
			opts.skipMalformed = boolSetting(cmd, "skip-malformed", opts.skipMalformed, cfg.SkipMalformed)
			opts.rawLabels = boolSetting(cmd, "raw-labels", opts.rawLabels, cfg.RawLabels)
			opts.quoteIDs = boolSetting(cmd, "quote-ids", opts.quoteIDs, cfg.QuoteIDs)
			return runGFA2Dot(cmd, args[0], args[1], opts)
		},
	}

	addGFAFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.rawLabels, "raw-labels", false, "write labels without escaping quotes and backslashes")
	cmd.Flags().BoolVar(&opts.quoteIDs, "quote-ids", false, "quote node identifiers")
	cmd.Flags().BoolVar(&opts.linkLabels, "link-labels", false, "label edges with orientations and overlap")

	return cmd
}

func addGFAFlags(cmd *cobra.Command, opts *gfaOpts) {
	cmd.Flags().BoolVar(&opts.skipMalformed, "skip-malformed", false, "warn about and skip malformed S/L lines instead of failing")
}

func runGFA2Dot(cmd *cobra.Command, input, outPath string, opts gfaOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(cmd, outPath)
	if err != nil {
		return err
	}
	defer out.Abort()

	logger.Debug("converting", "input", input, "policy", opts.policy())
	sum, err := dot.Convert(ctx, in, out, dot.ConvertOptions{
		Options:    dot.Options{RawLabels: opts.rawLabels, QuoteIDs: opts.quoteIDs},
		LinkLabels: opts.linkLabels,
		Policy:     opts.policy(),
		OnSkip:     skipWarner(ctx, input),
	})
	if err != nil {
		return gfaError(err, input)
	}
	if err := out.Commit(); err != nil {
		return err
	}

	prog.done("Converted " + input)
	if outPath != stdioPath {
		w := cmd.OutOrStdout()
		printSuccess(w, "Wrote %d nodes and %d edges", sum.Nodes, sum.Edges)
		if sum.Skipped > 0 {
			printWarning(w, "Skipped %d malformed records", sum.Skipped)
		}
		printFile(w, out.Name())
	}
	return nil
}

// skipWarner logs each record dropped under the skip policy.
func skipWarner(ctx context.Context, input string) func(*gfa.RecordError) {
	logger := loggerFromContext(ctx)
	return func(e *gfa.RecordError) {
		logger.Warn("skipping malformed record", "file", input, "line", e.Line, "error", e)
	}
}

// gfaError classifies a failed GFA read for the user.
func gfaError(err error, input string) error {
	var recErr *gfa.RecordError
	if errors.As(err, &recErr) {
		return seqerrors.Wrap(seqerrors.ErrCodeMalformedRecord, err, "%s", input)
	}
	return err
}
