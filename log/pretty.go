package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Colors used by the pretty handlers. [color.NoColor] disables all of them
// when the process is not attached to a terminal.
var (
	keyColor    = color.New(color.FgHiBlack).SprintFunc()
	stringColor = color.New(color.FgCyan).SprintFunc()
	numberColor = color.New(color.FgYellow).SprintFunc()
	trueColor   = color.New(color.FgGreen).SprintFunc()
	falseColor  = color.New(color.FgRed).SprintFunc()
	timeColor   = color.New(color.FgBlue).SprintFunc()
	spanColor   = color.New(color.FgMagenta).SprintFunc()
)

// levelColor returns the color function for a record level.
func levelColor(level slog.Level) func(...any) string {
	switch {
	case level >= slog.LevelError:
		return falseColor
	case level >= slog.LevelWarn:
		return numberColor
	case level >= slog.LevelInfo:
		return trueColor
	default:
		return timeColor
	}
}

// prettyBase holds the state shared by both pretty handlers.
type prettyBase struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func (h *prettyBase) enabled(level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

// replace applies the ReplaceAttr hook, if any.
func (h *prettyBase) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(h.groups, a)
}

// header returns the built-in attributes of r in output order.
func (h *prettyBase) header(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, 4)

	if !r.Time.IsZero() {
		attrs = append(attrs, h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	attrs = append(attrs, h.replace(slog.Any(slog.LevelKey, r.Level)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			attrs = append(attrs, slog.String(
				slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	return append(attrs, slog.String(slog.MessageKey, r.Message))
}

// body returns the handler attributes followed by the record attributes.
func (h *prettyBase) body(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.replace(a))

		return true
	})

	return attrs
}

func (h *prettyBase) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h prettyBase) withAttrs(attrs []slog.Attr) prettyBase {
	h.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return h
}

func (h prettyBase) withGroup(name string) prettyBase {
	h.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return h
}

// prettyTextHandler implements a colorized key=value handler.
type prettyTextHandler struct{ prettyBase }

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{prettyBase{opts: *opts, mu: &sync.Mutex{}, w: w}}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for _, a := range append(h.header(r), h.body(r)...) {
		writeTextAttr(buf, "", a, r.Level)
	}

	return h.write(buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

func writeTextAttr(
	buf *bytes.Buffer,
	prefix string,
	a slog.Attr,
	lvl slog.Level,
) {
	if a.Key == "" {
		return
	}

	v := a.Value.Resolve()

	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			writeTextAttr(buf, prefix+a.Key+".", ga, lvl)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(keyColor(prefix + a.Key))
	buf.WriteByte('=')

	if a.Key == slog.LevelKey && prefix == "" {
		buf.WriteString(levelColor(lvl)(v.String()))

		return
	}

	buf.WriteString(coloredValue(v))
}

// coloredValue renders a resolved scalar slog.Value without quotes.
func coloredValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64:
		return numberColor(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return numberColor(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return numberColor(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return trueColor("true")
		}

		return falseColor("false")

	case slog.KindDuration:
		return spanColor(v.Duration().String())

	case slog.KindTime:
		return timeColor(v.Time().Format(time.RFC3339))

	default:
		return stringColor(v.String())
	}
}

// prettyJSONHandler implements a multiline, indented JSON-like handler.
type prettyJSONHandler struct{ prettyBase }

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{prettyBase{opts: *opts, mu: &sync.Mutex{}, w: w}}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)
	buf.WriteString("{")

	first := true
	for _, a := range append(h.header(r), h.body(r)...) {
		writeJSONAttr(buf, a, 1, &first, r.Level)
	}

	buf.WriteString("\n}")

	return h.write(buf)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}

func writeJSONAttr(
	buf *bytes.Buffer,
	a slog.Attr,
	depth int,
	first *bool,
	lvl slog.Level,
) {
	if a.Key == "" {
		return
	}

	if !*first {
		buf.WriteByte(',')
	}

	*first = false

	buf.WriteByte('\n')

	for range depth {
		buf.WriteString("  ")
	}

	buf.WriteString(keyColor(a.Key))
	buf.WriteString(": ")

	v := a.Value.Resolve()

	switch {
	case v.Kind() == slog.KindGroup:
		buf.WriteByte('{')

		inner := true
		for _, ga := range v.Group() {
			writeJSONAttr(buf, ga, depth+1, &inner, lvl)
		}

		buf.WriteByte('\n')

		for range depth {
			buf.WriteString("  ")
		}

		buf.WriteByte('}')

	case a.Key == slog.LevelKey && depth == 1:
		buf.WriteString(levelColor(lvl)(v.String()))

	default:
		buf.WriteString(coloredValue(v))
	}
}
