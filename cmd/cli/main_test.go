package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cxd309/train-motion/internal/engine"
	"github.com/cxd309/train-motion/internal/kinematics"
)

// isolateHome points HOME at a temp directory so a real ~/.trainmotion is never read.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TRAINMOTION_LOG_LEVEL", "")
	t.Setenv("TRAINMOTION_VARIANT", "")
	t.Setenv("TRAINMOTION_FRAME_INTERVAL", "")
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("output %q missing version %q", out, version)
	}
}

func TestSolveText(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "solve", "--speed-a", "40", "--speed-b", "60", "--head-start", "2", "--explain")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	for _, want := range []string{
		"Trains will meet after 4.00 hours.",
		"Meeting point: 240.0 miles",
		"t = 80 / 20 = 4.00 hours",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSolveJSONNeverMeets(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "solve", "--json", "--speed-a", "40", "--speed-b", "30", "--head-start", "1")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	var resp struct {
		Meeting *kinematics.MeetingResult `json:"meeting"`
		Message string                    `json:"message"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if resp.Meeting != nil {
		t.Errorf("meeting = %+v, want null", resp.Meeting)
	}
	if !strings.Contains(resp.Message, "never meet") {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestSolveOpposite(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "solve", "--scenario", "opposite")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(out, "Trains will meet after 0.80 hours.") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSolveClampsToPreset(t *testing.T) {
	isolateHome(t)
	out, errOut, err := execute(t, "", "solve", "--json", "--speed-b", "5000")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	var resp struct {
		Params kinematics.MotionParams `json:"motion_params"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if resp.Params.SpeedB != 300 {
		t.Errorf("speed B = %v, want the classic maximum 300", resp.Params.SpeedB)
	}
	if !strings.Contains(errOut, "clamped") {
		t.Errorf("expected a clamp warning on stderr, got %q", errOut)
	}
}

func TestSolveRejectsUnknownScenario(t *testing.T) {
	isolateHome(t)
	if _, _, err := execute(t, "", "solve", "--scenario", "sideways"); err == nil {
		t.Error("expected an error for an unknown scenario")
	}
}

func TestSolveRejectsUnknownVariant(t *testing.T) {
	isolateHome(t)
	if _, _, err := execute(t, "", "solve", "--variant", "missing"); err == nil {
		t.Error("expected an error for an unknown variant")
	}
}

func TestRunFromStdinAndFile(t *testing.T) {
	isolateHome(t)
	input := `{"simulation_meta": {"simulation_id": "cli", "time_step": 1, "buffer": 1},
		"motion_params": {"speed_a": 40, "speed_b": 60, "head_start": 2, "scenario": "same-direction"}}`

	check := func(out string) {
		t.Helper()
		var log engine.SimulationLog
		if err := json.Unmarshal([]byte(out), &log); err != nil {
			t.Fatalf("decoding output: %v", err)
		}
		if len(log.Output) != 6 {
			t.Errorf("got %d frames, want 6", len(log.Output))
		}
	}

	out, _, err := execute(t, input, "run")
	if err != nil {
		t.Fatalf("run from stdin: %v", err)
	}
	check(out)

	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(input), 0600); err != nil {
		t.Fatal(err)
	}
	out, _, err = execute(t, "", "run", path)
	if err != nil {
		t.Fatalf("run from file: %v", err)
	}
	check(out)
}

func TestRunBadInput(t *testing.T) {
	if _, _, err := execute(t, "not json", "run"); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestPlayPrintsEveryFrame(t *testing.T) {
	isolateHome(t)
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	content := `variant: fast
variants:
  fast:
    speed_a: {min: 10, max: 100, step: 10, default: 40}
    speed_b: {min: 10, max: 100, step: 10, default: 60}
    head_start: {min: 0, max: 5, step: 1, default: 2}
    time_step: 1
    buffer: 1
    frame_interval: 1ms
`
	if err := os.WriteFile(cfg, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "play", "--config", cfg, "--width", "40")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want banner + 6 frames:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[len(lines)-1], "met") {
		t.Errorf("last frame %q should be past the meeting", lines[len(lines)-1])
	}
}

func TestPlayNeverMeets(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "play", "--speed-a", "100", "--speed-b", "50")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out, "never meet") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPresets(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "presets", "--variant", "wide")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, want := range []string{"  classic", "* wide", "10-800 step 10 (default 40)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFrameIntervalEnvAppliesToFlagVariant(t *testing.T) {
	isolateHome(t)
	t.Setenv("TRAINMOTION_FRAME_INTERVAL", "7ms")

	out, _, err := execute(t, "", "presets", "--json", "--variant", "wide")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	var resp struct {
		Selected string `json:"selected"`
		Active   struct {
			FrameInterval time.Duration `json:"frame_interval"`
		} `json:"active"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if resp.Selected != "wide" {
		t.Errorf("selected = %q, want wide", resp.Selected)
	}
	if resp.Active.FrameInterval != 7*time.Millisecond {
		t.Errorf("frame interval = %v, want 7ms", resp.Active.FrameInterval)
	}
}

func TestPlayJSONNeverMeets(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "play", "--json", "--speed-a", "100", "--speed-b", "50")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	var resp struct {
		Meeting *kinematics.MeetingResult `json:"meeting"`
		Message string                    `json:"message"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if resp.Meeting != nil {
		t.Errorf("meeting = %+v, want null", resp.Meeting)
	}
	if !strings.Contains(resp.Message, "never meet") {
		t.Errorf("message = %q", resp.Message)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPlayJSONReportsWriteError(t *testing.T) {
	isolateHome(t)
	t.Setenv("TRAINMOTION_FRAME_INTERVAL", "1ms")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"play", "--json", "--speed-a", "40", "--speed-b", "60", "--head-start", "1"})
	cmd.SetOut(failingWriter{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected the write error, got %v", err)
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var resp map[string]string
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if resp["version"] != version {
		t.Errorf("version = %q, want %q", resp["version"], version)
	}
}
