//nolint:goconst // repeated literals keep the tables readable
package keymap

import (
	"slices"
	"testing"
)

func TestResolveKey(t *testing.T) {
	r := NewResolver([]Binding{
		{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
		{[]string{"s"}, ActionToggleStats, "Fault statistics", "global"},
		{[]string{"t"}, ActionTestWarning, "Inject test warning", "global"},
		{[]string{"T"}, ActionTestCritical, "Inject test critical", "global"},
	})

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"s", ActionToggleStats},
		{"t", ActionTestWarning},
		{"T", ActionTestCritical},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestKeysForAction(t *testing.T) {
	r := NewResolver([]Binding{
		{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
		{[]string{"s"}, ActionToggleStats, "Fault statistics", "global"},
	})

	tests := []struct {
		action Action
		want   []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionToggleStats, []string{"s"}},
		{ActionViewLogs, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if got := r.KeysFor(tt.action); !slices.Equal(got, tt.want) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestKeysForDeduplicates(t *testing.T) {
	// The same key may serve an action in several contexts.
	r := NewResolver([]Binding{
		{[]string{"esc"}, ActionDismiss, "Dismiss fault", "modal"},
		{[]string{"esc"}, ActionDismiss, "Dismiss fault", "stats"},
	})

	if keys := r.KeysFor(ActionDismiss); !slices.Equal(keys, []string{"esc"}) {
		t.Errorf("KeysFor(ActionDismiss) = %v, want deduplicated [esc]", keys)
	}
}

func TestResolverFromContext(t *testing.T) {
	r := NewResolver(ByContext("global"))

	if got := r.Resolve("q"); got != ActionQuit {
		t.Errorf("Resolve(q) = %q, want ActionQuit", got)
	}
	if got := r.Resolve("x"); got != "" {
		t.Errorf("Resolve(x) in global context = %q, want unbound", got)
	}
}

func TestResolverNoBindings(t *testing.T) {
	r := NewResolver(nil)

	if got := r.Resolve("q"); got != "" {
		t.Errorf("Resolve(q) = %q, want unbound", got)
	}
	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor(ActionQuit) = %v, want nil", keys)
	}
}
