package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixture = "../../internal/model/testdata/dump.json"

// run executes nvview with args against an isolated settings directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NVVIEW_CONFIG_DIR", t.TempDir())
	t.Setenv("NVVIEW_DATA_DIR", t.TempDir())

	e := &env{}
	defer e.close()
	cmd := newRootCmd(e)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestHelperCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bar", []string{"bar", "GPU", "100", "--width", "20"}, "GPU: ███████████ MAX\n"},
		{"bar na", []string{"bar", "MEM", "N/A", "--width", "12"}, "MEM: ░░░ N/A\n"},
		{"cut left", []string{"cut", "python3 train.py", "10"}, "python3...\n"},
		{"cut right", []string{"cut", "python3 train.py", "10", "--align", "right"}, "...rain.py\n"},
		{"bytes", []string{"bytes", "512", "2048", "N/A"}, "512B\n2KiB\nN/A\n"},
		{"duration", []string{"duration", "3723", "90s", "N/A"}, "1:02:03\n1:30\nN/A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHelperCommandErrors(t *testing.T) {
	tests := [][]string{
		{"bar", "GPU", "lots"},
		{"cut", "text", "ten"},
		{"cut", "text", "2", "--align", "middle"},
		{"bytes", "1.5k"},
		{"duration", "soon"},
		{"--color", "sometimes", "bytes", "1"},
		{"--log-level", "loud", "bytes", "1"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := run(t, args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", fixture, "--width", "40", "--snapshots")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{
		"gpu-node-07 | Driver 550.54.15",
		"=== DEVICES ===",
		"[0] NVIDIA A100-SXM4-40GB",
		"GPU: ██████████▊ 35%",
		"=== PROCESSES ON GPU 0 ===",
		"alice",
		"=== PROCESSES ON GPU 1 ===",
		"No running processes found",
		"ProcessSnapshot(real=4242, ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q", want)
		}
	}

	for _, sample := range []string{"3", "0", "-1"} {
		if _, err := run(t, "show", fixture, "--sample="+sample); err == nil {
			t.Errorf("--sample %s: expected out-of-range error", sample)
		}
	}
}

func TestShowUsesLatestDumpAndLogFile(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(fixture)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "latest.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	logFile := filepath.Join(t.TempDir(), "nvview.log")

	t.Setenv("NVVIEW_CONFIG_DIR", t.TempDir())
	t.Setenv("NVVIEW_DATA_DIR", dir)
	e := &env{}
	cmd := newRootCmd(e)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--color", "never", "--log-file", logFile, "show"})
	err = cmd.Execute()
	e.close()
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out.String(), "Sample 1/2") {
		t.Errorf("output = %q", out.String())
	}

	logged, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logged), `"msg":"dump loaded"`) {
		t.Errorf("log = %q", logged)
	}
}

func TestSettingsFileProvidesDefaults(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("NVVIEW_CONFIG_DIR", cfgDir)
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(`{"bar_width": 20, "color": "never"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	e := &env{}
	defer e.close()
	cmd := newRootCmd(e)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"bar", "GPU", "100"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "GPU: ███████████ MAX\n" {
		t.Errorf("output = %q", got)
	}
}
