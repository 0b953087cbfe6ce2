package cli

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/ardnew/json2kdl/convert"
	"github.com/ardnew/json2kdl/kdl"
	"github.com/ardnew/json2kdl/log"
	"github.com/ardnew/json2kdl/pkg"
	"github.com/ardnew/json2kdl/tree"
)

// Convert converts a JSON (or YAML) node document into KDL.
type Convert struct {
	Input  string `arg:"" help:"Input file, or '-' for stdin."   name:"input"`
	Output string `arg:"" help:"Output file, or '-' for stdout." name:"output"`

	From   string `default:"auto"        enum:"auto,json,yaml"    help:"Input notation (auto selects by file extension)."`
	Where  string `                                               help:"Only convert nodes for which this expression is true." placeholder:"EXPR"`
	Indent int    `default:"${indent}"                            help:"Spaces per nesting level."`
	Color  string `default:"auto"        enum:"auto,always,never" help:"Colorize KDL written to stdout."`
	Diff   bool   `                                               help:"Print a diff against the existing output instead of writing it."`
}

// Run executes the convert command.
func (c *Convert) Run(ctx context.Context, s *streams) error {
	start := time.Now()

	format, err := c.format()
	if err != nil {
		return err
	}

	pred, err := convert.CompilePredicate(c.Where)
	if err != nil {
		return err
	}

	data, err := s.readInput(c.Input)
	if err != nil {
		return ErrReadInput.Wrap(err).
			With(slog.String("input", c.Input))
	}

	root, err := tree.Decode(bytes.NewReader(data), format)
	if err != nil {
		return pkg.WrapError(err).
			With(slog.String("input", c.Input))
	}

	log.DebugContext(ctx, "input decoded",
		slog.String("input", c.Input),
		slog.String("format", format.String()),
		slog.Int("bytes", len(data)),
	)

	doc, err := convert.New(
		convert.WithLogger(log.Default()),
		convert.WithPredicate(pred),
	).Transform(ctx, root)
	if err != nil {
		return pkg.WrapError(err).
			With(slog.String("input", c.Input))
	}

	if c.Diff {
		return c.diff(ctx, s, doc)
	}

	opts := []kdl.FormatOption{kdl.WithIndent(c.Indent)}

	if c.Output == stdio {
		if p, ok := palette(c.Color, s.out); ok {
			opts = append(opts, kdl.WithPalette(p))
		}
	}

	var buf bytes.Buffer

	if err := doc.Format(&buf, opts...); err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("output", c.Output))
	}

	if err := s.writeOutput(c.Output, buf.Bytes()); err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("output", c.Output))
	}

	log.InfoContext(ctx, "converted",
		slog.String("input", c.Input),
		slog.String("output", c.Output),
		slog.Int("nodes", doc.Len()),
		slog.Int("bytes", buf.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// format resolves --from against the input path.
func (c *Convert) format() (tree.Format, error) {
	format, err := tree.ParseFormat(c.From)
	if err != nil {
		return format, err
	}

	if format == tree.FormatAuto {
		format = tree.FormatOf(c.Input)
	}

	return format, nil
}

// diff compares the plain rendering of doc with the existing output.
func (c *Convert) diff(
	ctx context.Context,
	s *streams,
	doc *kdl.Document,
) error {
	var buf bytes.Buffer

	if err := doc.Format(&buf, kdl.WithIndent(c.Indent)); err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("output", c.Output))
	}

	old, err := readExisting(c.Output)
	if err != nil {
		return ErrReadInput.Wrap(err).
			With(slog.String("output", c.Output))
	}

	if old == buf.String() {
		log.InfoContext(ctx, "output up to date",
			slog.String("output", c.Output))

		return nil
	}

	if _, err := s.out.Write([]byte(lineDiff(old, buf.String()))); err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("output", stdio))
	}

	return ErrOutputDiffers.With(slog.String("output", c.Output))
}
