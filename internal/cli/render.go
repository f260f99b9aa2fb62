package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theseus-aligner/seqtools/pkg/cache"
	"github.com/theseus-aligner/seqtools/pkg/dot"
	seqerrors "github.com/theseus-aligner/seqtools/pkg/errors"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file; defaults to the input with the format's extension
	format  string // "svg" or "png"
	noCache bool   // bypass the render cache
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: dot.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render <input.dot>",
		Short: "Render a DOT graph to SVG or PNG with Graphviz",
		Long: `Render a DOT graph to SVG or PNG with Graphviz.

Rendered output is cached by content hash under the user cache directory,
so rendering an unchanged file again is instant. Use --no-cache to bypass it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = strings.ToLower(opts.format)
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = defaultRenderPath(args[0], opts.format)
			}
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with .svg/.png extension, - for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or write the render cache")

	return cmd
}

// validateFormat checks that the format is one Graphviz can produce here.
func validateFormat(f string) error {
	if !dot.ValidFormats[f] {
		return seqerrors.New(seqerrors.ErrCodeInvalidInput, "invalid format: %s (must be 'svg' or 'png')", f)
	}
	return nil
}

// defaultRenderPath replaces the input's extension with the format's.
func defaultRenderPath(input, format string) string {
	if input == stdioPath {
		return stdioPath
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

func runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	src, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	c, err := newCache(opts.noCache)
	if err != nil {
		logger.Warn("render cache unavailable", "error", err)
		c = cache.NewNullCache()
	}
	defer c.Close()

	key := cache.RenderKey(src, opts.format)
	data, cached, err := c.Get(ctx, key)
	if err != nil {
		logger.Debug("cache read failed", "error", err)
	}
	if !cached {
		stop := startSpinner(ctx, cmd.ErrOrStderr(), "Rendering "+input)
		data, err = dot.Render(ctx, src, opts.format)
		stop()
		if err != nil {
			return seqerrors.Wrap(seqerrors.ErrCodeInvalidFormat, err, "render %s", input)
		}
		if err := c.Set(ctx, key, data, 0); err != nil {
			logger.Debug("cache write failed", "error", err)
		}
	}
	logger.Debug("render", "format", opts.format, "bytes", len(data), "cached", cached)

	out, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	defer out.Abort()
	if _, err := out.Write(data); err != nil {
		return seqerrors.WrapIO(err, "write %s", out.Name())
	}
	if err := out.Commit(); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %s", input))
	if opts.output != stdioPath {
		w := cmd.OutOrStdout()
		printSuccess(w, "Rendered %s", strings.ToUpper(opts.format))
		printCacheStatus(w, cached)
		printFile(w, out.Name())
	}
	return nil
}

// readInput reads a whole file, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, seqerrors.WrapIO(err, "read %s", path)
	}
	return data, nil
}
