package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theseus-aligner/seqtools/pkg/exectime"
)

type exectimeOpts struct {
	input  string
	prefix string
}

// exectimeCommand creates the exectime command.
func (c *CLI) exectimeCommand() *cobra.Command {
	var opts exectimeOpts

	cmd := &cobra.Command{
		Use:   "exectime -i <log>",
		Short: "Sum the alignment times reported in a log",
		Long: `Sum the alignment times reported in a log.

Every line starting with the prefix (default "Local alignment took ") carries
a time in microseconds as the first word after the prefix. The total is
printed in seconds. Lines whose value cannot be parsed are reported and left
out of the total.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.prefix = stringSetting(cmd, "prefix", opts.prefix, c.config.ExecTime.Prefix)
			return runExectime(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "log file to read (- for stdin)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", exectime.DefaultPrefix, "prefix of the lines that carry a time")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runExectime(cmd *cobra.Command, opts exectimeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	in, err := openInput(cmd, opts.input)
	if err != nil {
		return err
	}
	defer in.Close()

	res, err := exectime.Sum(ctx, in, opts.prefix)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, inv := range res.Invalid {
		logger.Debug("invalid time value", "line", inv.Line, "error", inv.Err)
		fmt.Fprintln(w, inv)
	}
	logger.Debug("summed", "lines", res.Matched, "invalid", len(res.Invalid), "micros", res.TotalMicros)
	fmt.Fprintln(w, res)
	return nil
}
