package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnview/alnview-cli/pkg/models"
)

func withTempDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestReadSettingsMissingFileReturnsDefaults(t *testing.T) {
	withTempDir(t)

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	want := models.DefaultSettings()
	if settings.Theme != want.Theme {
		t.Errorf("theme = %+v, want defaults %+v", settings.Theme, want.Theme)
	}
	if settings.Layout != want.Layout {
		t.Errorf("layout = %+v, want defaults %+v", settings.Layout, want.Layout)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	withTempDir(t)

	settings := models.DefaultSettings()
	settings.Theme.Basic = "124"
	settings.Layout.PairGap = 2

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if got.Theme.Basic != "124" {
		t.Errorf("Theme.Basic = %q, want %q", got.Theme.Basic, "124")
	}
	if got.Layout.PairGap != 2 {
		t.Errorf("Layout.PairGap = %d, want 2", got.Layout.PairGap)
	}
}

func TestReadSettingsPartialFileMergesDefaults(t *testing.T) {
	withTempDir(t)

	if err := os.MkdirAll(AlnviewDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	partial := "theme:\n  acidic: \"99\"\n"
	if err := os.WriteFile(filepath.Join(AlnviewDir, SettingsFile), []byte(partial), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if got.Theme.Acidic != "99" {
		t.Errorf("Theme.Acidic = %q, want override %q", got.Theme.Acidic, "99")
	}
	defaults := models.DefaultSettings()
	if got.Theme.Basic != defaults.Theme.Basic {
		t.Errorf("Theme.Basic = %q, want default %q", got.Theme.Basic, defaults.Theme.Basic)
	}
	if got.Layout.PairGap != defaults.Layout.PairGap {
		t.Errorf("Layout.PairGap = %d, want default %d", got.Layout.PairGap, defaults.Layout.PairGap)
	}
}

func TestReadSettingsMalformedFileFails(t *testing.T) {
	withTempDir(t)

	if err := os.MkdirAll(AlnviewDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(AlnviewDir, SettingsFile), []byte("theme: [broken"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := ReadSettings(); err == nil {
		t.Error("expected error for malformed settings file")
	}
}
