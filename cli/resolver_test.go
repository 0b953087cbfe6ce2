package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	val, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: name}})
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}

	return val
}

func TestResolveYAML_FlatKeys(t *testing.T) {
	config := `
log-level: debug
log_format: json
indent: 2
diff: true
`

	resolver, err := resolveYAML(strings.NewReader(config))
	if err != nil {
		t.Fatalf("resolveYAML failed: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", "json"},
		{"indent", "2"},
		{"diff", true},
		{"where", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			if got := resolveFlag(t, resolver, tt.flag); got != tt.want {
				t.Errorf("%s = %#v, want %#v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestResolveYAML_NestedKeys(t *testing.T) {
	config := `
log:
  level: trace
  time_layout: Kitchen
pprof:
  mode: cpu
`

	resolver, err := resolveYAML(strings.NewReader(config))
	if err != nil {
		t.Fatalf("resolveYAML failed: %v", err)
	}

	if got := resolveFlag(t, resolver, "log-level"); got != "trace" {
		t.Errorf("log-level = %#v, want trace", got)
	}

	if got := resolveFlag(t, resolver, "log-time-layout"); got != "Kitchen" {
		t.Errorf("log-time-layout = %#v, want Kitchen", got)
	}

	if got := resolveFlag(t, resolver, "pprof-mode"); got != "cpu" {
		t.Errorf("pprof-mode = %#v, want cpu", got)
	}

	if got := resolveFlag(t, resolver, "log"); got != nil {
		t.Errorf("log = %#v, want nil", got)
	}
}

func TestResolveYAML_Empty(t *testing.T) {
	resolver, err := resolveYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("resolveYAML failed: %v", err)
	}

	if got := resolveFlag(t, resolver, "log-level"); got != nil {
		t.Errorf("expected nil value for empty config, got %#v", got)
	}

	if err := resolver.Validate(nil); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestResolveYAML_Invalid(t *testing.T) {
	_, err := resolveYAML(strings.NewReader("log-level: [unterminated"))
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestScalar(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{int(3), "3"},
		{int64(-4), "-4"},
		{uint64(5), "5"},
		{1.5, "1.5"},
		{"text", "text"},
		{true, true},
		{nil, nil},
	}

	for _, tt := range tests {
		if got := scalar(tt.in); got != tt.want {
			t.Errorf("scalar(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
