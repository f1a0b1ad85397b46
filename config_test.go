package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRC(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "axisdroprc")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if config.Axis != defaultAxis() || !config.Confirmations || config.View != ViewSingle {
		t.Errorf("expected defaults, got %+v", config)
	}
}

func TestLoadConfig_Parses(t *testing.T) {
	dir := t.TempDir()
	path := writeRC(t, `# axisdrop settings
savedirectory = `+dir+`
confirmations = false
view = dual
xmin = -5
xmax = 5
y_max = 20
grid = 2.5
nonsense line
unknown = 1
`)
	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.SaveDirectory != dir || config.Confirmations || config.View != ViewDual {
		t.Errorf("unexpected settings %+v", config)
	}
	want := AxisConfig{XMin: -5, XMax: 5, YMin: 0, YMax: 20, GridSize: 2.5}
	if config.Axis != want {
		t.Errorf("axis = %+v, want %+v", config.Axis, want)
	}
}

func TestLoadConfig_InvalidAxisFallsBack(t *testing.T) {
	path := writeRC(t, "xmin = 10\nxmax = 0\n")
	config, err := loadConfig(path)
	if err == nil {
		t.Error("expected an error for an inverted axis")
	}
	if config.Axis != defaultAxis() {
		t.Errorf("expected the default axis, got %+v", config.Axis)
	}
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	if got, err := config.GetSavePath("a.png"); err != nil || got != "a.png" {
		t.Errorf("no save directory should keep the name, got %q (%v)", got, err)
	}
	config.SaveDirectory = filepath.Join(t.TempDir(), "out")
	got, err := config.GetSavePath("a.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(config.SaveDirectory, "a.png") {
		t.Errorf("got %q", got)
	}
	if _, err := os.Stat(config.SaveDirectory); err != nil {
		t.Errorf("save directory not created: %v", err)
	}
}

func TestGetSavePath_DirectoryError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	config := defaultConfig()
	config.SaveDirectory = filepath.Join(blocker, "out")
	if _, err := config.GetSavePath("a.png"); err == nil {
		t.Error("expected an error when the save directory cannot be created")
	}
}
