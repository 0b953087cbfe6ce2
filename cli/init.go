package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/json2kdl/log"
	"github.com/ardnew/json2kdl/profile"
)

// Init writes a configuration file holding the current flag values.
type Init struct {
	Force bool   `help:"Overwrite an existing configuration file." short:"f"`
	Path  string `default:"${config}" help:"Configuration file to write." type:"path"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context, ktx *kong.Context) error {
	if _, err := os.Stat(i.Path); err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", i.Path), slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.Marshal(settings(ktx))
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", i.Path)).
			Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(i.Path), 0o700); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", i.Path)).
			Wrap(err)
	}

	if err := os.WriteFile(i.Path, data, 0o600); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", i.Path)).
			Wrap(err)
	}

	log.InfoContext(ctx, "initialized configuration file",
		slog.String("path", i.Path))

	return nil
}

// settings collects the value of every configurable flag in the model, in
// declaration order. Flags of the init command itself are skipped.
func settings(ktx *kong.Context) yaml.MapSlice {
	var out yaml.MapSlice

	var walk func(node *kong.Node)

	walk = func(node *kong.Node) {
		if node.Type == kong.CommandNode && node.Name == "init" {
			return
		}

		for _, flag := range node.Flags {
			if skipSetting(flag) {
				continue
			}

			if v, ok := settingValue(ktx.FlagValue(flag)); ok {
				out = append(out, yaml.MapItem{Key: flag.Name, Value: v})
			}
		}

		for _, child := range node.Children {
			walk(child)
		}
	}

	walk(ktx.Model.Node)

	return out
}

func skipSetting(flag *kong.Flag) bool {
	return flag.Hidden ||
		flag.Name == "help" ||
		flag.Name == "version" ||
		strings.HasPrefix(flag.Name, profile.Tag)
}

// settingValue converts a flag value for YAML. Empty strings are omitted.
func settingValue(v any) (any, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false

	case bool, int, int64, float64:
		return v, true

	default:
		s := fmt.Sprint(v)

		return s, s != ""
	}
}
