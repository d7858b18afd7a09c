package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-surf/internal/config"
	"github.com/vovakirdan/tui-surf/internal/games/surf"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("surf %s failed: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestConfigCommandPrintsPreset(t *testing.T) {
	out := execute(t, "config", "--difficulty", "hard")

	cfg, err := config.ParseSurf([]byte(out))
	if err != nil {
		t.Fatalf("printed config does not parse: %v\n%s", err, out)
	}
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("difficulty = %+v, want enabled at 0.7", cfg.Difficulty)
	}
}

func TestHeadlessCommandReport(t *testing.T) {
	out := execute(t, "headless", "--seed", "9", "--ticks", "600", "--difficulty", "")

	var report surf.Report
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("report is not YAML: %v\n%s", err, out)
	}
	if report.Seed != 9 || report.Ticks != 600 {
		t.Errorf("report = %+v, want seed 9 and 600 ticks", report)
	}
	if report.Digest == "" {
		t.Error("report should carry a digest")
	}
}

func TestScoresCommandEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	out := execute(t, "scores", "--db", db)

	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRunDuration(t *testing.T) {
	flagFPS = 60
	tests := []struct {
		ticks uint64
		want  string
	}{
		{0, "-"},
		{60, "1s"},
		{3600, "1m0s"},
	}
	for _, tt := range tests {
		if got := runDuration(tt.ticks); got != tt.want {
			t.Errorf("runDuration(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}
