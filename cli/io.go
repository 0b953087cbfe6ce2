package cli

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/renameio/v2/maybe"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ardnew/json2kdl/kdl"
)

// stdio is the path argument that selects stdin or stdout.
const stdio = "-"

// outputPerm is the mode of a newly created output file.
const outputPerm = 0o644

// streams are the standard streams used for the "-" path.
type streams struct {
	in  io.Reader
	out io.Writer
}

// readInput reads all of path, or of s.in when path is "-".
func (s *streams) readInput(path string) ([]byte, error) {
	if path == stdio {
		return io.ReadAll(s.in)
	}

	return os.ReadFile(path)
}

// readExisting returns the current content of an output path. A missing
// file, or stdout, reads as empty.
func readExisting(path string) (string, error) {
	if path == stdio {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}

	return string(data), err
}

// writeOutput writes data to s.out when path is "-", and otherwise replaces
// path atomically. An existing file keeps its permissions.
func (s *streams) writeOutput(path string, data []byte) error {
	if path == stdio {
		_, err := s.out.Write(data)

		return err
	}

	return maybe.WriteFile(path, data, outputPerm)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// palette returns the output palette for a --color mode.
func palette(mode string, w io.Writer) (kdl.Palette, bool) {
	switch mode {
	case "always":
		return kdl.ColorPalette(true), true

	case "auto":
		if isTerminal(w) && !color.NoColor {
			return kdl.ColorPalette(false), true
		}
	}

	return kdl.Palette{}, false
}

// lineDiff renders a line-oriented diff of two texts. Each line carries a
// "-", "+" or " " marker.
func lineDiff(from, to string) string {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for _, d := range diffs {
		marker := " "

		switch d.Type {
		case diffmatchpatch.DiffInsert:
			marker = "+"
		case diffmatchpatch.DiffDelete:
			marker = "-"
		}

		for line := range strings.SplitAfterSeq(d.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(marker)
			sb.WriteString(line)

			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n\\ no newline at end of file\n")
			}
		}
	}

	return sb.String()
}
