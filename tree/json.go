package tree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/valyala/fastjson"
)

var (
	errTrailingData = errors.New("unexpected data after top-level value")
	errInvalidUTF8  = errors.New("invalid UTF-8 in input")
)

// jsonSpace is the whitespace allowed around JSON tokens.
const jsonSpace = " \t\r\n"

// DecodeJSON reads one JSON value from r.
//
// The input must be valid UTF-8 and strictly follow the JSON grammar: no
// missing or extra separators and no leading zeros or truncated numbers.
// Objects preserve key order, and numbers keep their literal text. A
// duplicated key keeps its first position and its last value.
func DecodeJSON(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, decodeError(err)
	}

	if len(bytes.Trim(data, jsonSpace)) == 0 {
		return nil, decodeError(io.ErrUnexpectedEOF)
	}

	if !utf8.Valid(data) {
		return nil, decodeError(errInvalidUTF8)
	}

	if err := fastjson.ValidateBytes(data); err != nil {
		return nil, decodeError(err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := nextJSON(dec)
	if err != nil {
		return nil, decodeError(err, slog.Int64("offset", dec.InputOffset()))
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}

		return nil, decodeError(err, slog.Int64("offset", dec.InputOffset()))
	}

	return v, nil
}

func decodeError(err error, attrs ...slog.Attr) error {
	return ErrDecode.Wrap(err).With(
		append([]slog.Attr{slog.String("format", FormatJSON.String())}, attrs...)...,
	)
}

// nextJSON reads the next complete value from dec.
func nextJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}

		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return arrayJSON(dec)
		case '{':
			return objectJSON(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
		}

	case nil:
		return Null{}, nil

	case bool:
		return Bool(t), nil

	case json.Number:
		// The decoder's number text aliases its read buffer.
		return Number(strings.Clone(string(t))), nil

	case float64:
		return floatNumber(t), nil

	case string:
		return String(t), nil

	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func arrayJSON(dec *json.Decoder) (Value, error) {
	arr := Array{}

	for dec.More() {
		v, err := nextJSON(dec)
		if err != nil {
			return nil, err
		}

		arr = append(arr, v)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}

func objectJSON(dec *json.Decoder) (Value, error) {
	obj := NewObject(0)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}

		v, err := nextJSON(dec)
		if err != nil {
			return nil, err
		}

		obj.Set(key, v)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

// floatNumber formats f so that [Number.IsFloat] holds for it.
func floatNumber(f float64) Number {
	s := strconv.FormatFloat(f, 'g', -1, 64)

	if !Number(s).IsFloat() {
		s += ".0"
	}

	return Number(s)
}
