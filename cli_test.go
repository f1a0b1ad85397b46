package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{"png", ExportPNG, false},
		{"SVG", ExportSVG, false},
		{"text", ExportTXT, false},
		{"gif", 0, true},
	}
	for _, tt := range tests {
		got, err := parseFormat(tt.in)
		if (err != nil) != tt.wantErr || (!tt.wantErr && got != tt.want) {
			t.Errorf("parseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestParseItem(t *testing.T) {
	name, size, x, y, err := parseItem("Cube A:2:3.5:4")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Cube A" || size != 2 || x != 3.5 || y != 4 {
		t.Errorf("got %q %v %v %v", name, size, x, y)
	}
	for _, bad := range []string{"Cube A:2:3", "Cube A:two:3:4", ""} {
		if _, _, _, _, err := parseItem(bad); err == nil {
			t.Errorf("parseItem(%q) should fail", bad)
		}
	}
}

func runExport(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"export", "--config", filepath.Join(t.TempDir(), "rc")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.txt")
	out, err := runExport(t, "--format", "txt", "--out", path,
		"--title", "Demo", "--item", "Cube A:2:3:4", "--item", "Block B:1.5:6:7")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("expected the output path on stdout, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Demo", "Cube A", "Block B"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestExportCommand_Demo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.png")
	if _, err := runExport(t, "--demo", "--out", path); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("png not written")
	}
}

func TestExportCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := [][]string{
		{"--format", "gif"},
		{"--item", "broken"},
		{"--item", "Zero:0:1:1", "--format", "txt", "--out", filepath.Join(dir, "z.txt")},
		{"--format", "png", "--out", filepath.Join(dir, "empty.png")},
	}
	for _, args := range tests {
		if _, err := runExport(t, args...); err == nil {
			t.Errorf("export %v should fail", args)
		}
	}
}
