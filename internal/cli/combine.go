package cli

import (
	"github.com/spf13/cobra"

	"github.com/theseus-aligner/seqtools/pkg/fasta"
)

// combineCommand creates the combine command.
func (c *CLI) combineCommand() *cobra.Command {
	var ext string

	cmd := &cobra.Command{
		Use:   "combine <input> <output.fasta>",
		Short: "Concatenate the FASTA files in a directory or archive",
		Long: `Concatenate every FASTA file under a directory into one file.

The input may also be a .zip archive or a .gz file (including .tar.gz); it is
unpacked into a temporary directory next to it, which is removed afterwards.
Files are selected by extension (default .fna, case-insensitive) and merged
in path order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext = stringSetting(cmd, "ext", ext, c.config.Combine.Extension)
			return runCombine(cmd, args[0], args[1], ext)
		},
	}

	cmd.Flags().StringVar(&ext, "ext", fasta.DefaultExtension, "extension of the files to merge")

	return cmd
}

func runCombine(cmd *cobra.Command, input, output, ext string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	stop := startSpinner(ctx, cmd.ErrOrStderr(), "Combining "+input)
	res, err := fasta.Combine(ctx, input, output, fasta.CombineOptions{Extension: ext})
	stop()
	if err != nil {
		return err
	}
	if res.Decompressed != "" {
		logger.Debug("removed temporary directory", "path", res.Decompressed)
	}
	for _, f := range res.Files {
		logger.Debug("merged", "file", f)
	}

	prog.done("Combined " + input)
	w := cmd.OutOrStdout()
	printSuccess(w, "%s", res)
	if len(res.Files) == 0 {
		printWarning(w, "No %s files found under %s", ext, input)
	}
	return nil
}
