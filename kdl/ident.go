package kdl

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nonIdentifier lists the characters KDL 1.0 reserves outside identifiers.
const nonIdentifier = `\/(){}<>;[]=,"`

// IsIdentifier reports whether s can be written as a bare KDL identifier.
func IsIdentifier(s string) bool {
	switch s {
	case "", "true", "false", "null":
		return false
	}

	first, size := utf8.DecodeRuneInString(s)
	if isDigit(first) {
		return false
	}

	if first == '+' || first == '-' {
		if next, _ := utf8.DecodeRuneInString(s[size:]); isDigit(next) {
			return false
		}
	}

	for _, r := range s {
		if r == utf8.RuneError || r == '\uFEFF' || unicode.IsSpace(r) ||
			unicode.IsControl(r) || strings.ContainsRune(nonIdentifier, r) {
			return false
		}
	}

	return true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Identifier returns s bare when it is a valid identifier, quoted otherwise.
func Identifier(s string) string {
	if IsIdentifier(s) {
		return s
	}

	return Quote(s)
}

// Quote returns s as a KDL string literal.
func Quote(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if unicode.IsControl(r) {
				sb.WriteString(`\u{`)
				sb.WriteString(strconv.FormatInt(int64(r), 16))
				sb.WriteByte('}')
			} else {
				sb.WriteRune(r)
			}
		}
	}

	sb.WriteByte('"')

	return sb.String()
}
