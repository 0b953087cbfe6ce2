package kdl

import "github.com/fatih/color"

// Palette holds one coloring function per token class. A nil function
// leaves its tokens unchanged, so the zero Palette renders plain text.
type Palette struct {
	Identifier func(string) string
	Annotation func(string) string
	String     func(string) string
	Number     func(string) string
	Keyword    func(string) string
	Punct      func(string) string
}

// ColorPalette returns a terminal palette. Unless force is set, colors
// follow [color.NoColor], which is true when stdout is not a terminal or
// NO_COLOR is set.
func ColorPalette(force bool) Palette {
	paint := func(c *color.Color) func(string) string {
		if force {
			c.EnableColor()
		}

		sprint := c.SprintFunc()

		return func(s string) string { return sprint(s) }
	}

	return Palette{
		Identifier: paint(color.RGB(128, 168, 196)),
		Annotation: paint(color.RGB(74, 92, 138)),
		String:     paint(color.RGB(8, 196, 16)),
		Number:     paint(color.RGB(128, 216, 236)),
		Keyword:    paint(color.New(color.FgCyan)),
		Punct:      paint(color.RGB(196, 128, 128)),
	}
}

func apply(fn func(string) string, s string) string {
	if fn == nil {
		return s
	}

	return fn(s)
}

func (p Palette) identifier(s string) string { return apply(p.Identifier, s) }
func (p Palette) annotation(s string) string { return apply(p.Annotation, s) }
func (p Palette) punct(s string) string      { return apply(p.Punct, s) }

// value colors a literal by kind.
func (p Palette) value(v Value) string {
	switch v.Kind {
	case KindString:
		return apply(p.String, v.Text())
	case KindInt, KindFloat:
		return apply(p.Number, v.Text())
	default:
		return apply(p.Keyword, v.Text())
	}
}
