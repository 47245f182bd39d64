package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/trace"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTrace_DefaultFlags(t *testing.T) {
	out, err := execute(t, "trace", "Earth", "--csv")
	if err != nil {
		t.Fatalf("trace with default flags failed: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// header plus the starting sample plus one per default frame
	if len(rows) != 1+1+600 {
		t.Errorf("expected 602 csv rows, got %d", len(rows))
	}
}

func TestTrace_FlagDefaults(t *testing.T) {
	root := newRootCmd()
	for name, want := range map[string]string{"trace": "600", "snapshot": "0"} {
		sub, _, err := root.Find([]string{name})
		if err != nil {
			t.Fatal(err)
		}
		if got := sub.Flags().Lookup("frames").DefValue; got != want {
			t.Errorf("%s --frames default = %s, want %s", name, got, want)
		}
	}
}

func TestTrace_Plot(t *testing.T) {
	out, err := execute(t, "trace", "Mars", "--frames", "120", "--speed", "5", "--axis", "y")
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	if !strings.Contains(out, "Mars y over 120 frames at 5x") {
		t.Errorf("plot caption missing in %q", out)
	}
}

func TestTrace_Errors(t *testing.T) {
	if _, err := execute(t, "trace", "Pluto"); !errors.Is(err, trace.ErrUnknownBody) {
		t.Errorf("expected %v, got %v", trace.ErrUnknownBody, err)
	}
	if _, err := execute(t, "trace", "Earth", "--speed", "3"); !errors.Is(err, trace.ErrBadSpeed) {
		t.Errorf("expected %v, got %v", trace.ErrBadSpeed, err)
	}
	if _, err := execute(t, "trace", "Earth", "--axis", "z"); err == nil {
		t.Error("expected error for unknown axis")
	}
}

func TestSnapshot(t *testing.T) {
	out, err := execute(t, "snapshot", "--frames", "10")
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Errorf("output is not an svg document: %.80q", out)
	}
}

func TestBodies(t *testing.T) {
	out, err := execute(t, "bodies", "--preset", "inner")
	if err != nil {
		t.Fatalf("bodies failed: %v", err)
	}
	want := config.GetPreset("inner")
	for _, p := range want.Planets {
		if !strings.Contains(out, p.Name) {
			t.Errorf("listing missing %s", p.Name)
		}
	}
	if strings.Contains(out, "Neptune") {
		t.Error("inner preset should not list Neptune")
	}
}

func TestSettingsErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(bad, []byte(`{"window_width": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "bodies", "--config", bad); !errors.Is(err, config.ErrMissingField) {
		t.Errorf("expected %v, got %v", config.ErrMissingField, err)
	}
	if _, err := execute(t, "bodies", "--preset", "nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := execute(t, "bodies", "--preset", "inner", "--config", bad); err == nil {
		t.Error("expected error for --config with --preset")
	}
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Fields(out); strings.Join(got, ",") != strings.Join(sortedPresets(), ",") {
		t.Errorf("unexpected presets %v", got)
	}
}
