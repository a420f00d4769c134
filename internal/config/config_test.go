package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `executable_path: C:\tools\vswhere.exe
mirror_url: https://mirror.example/vswhere.exe
cache_dir: D:\cache\vslocate
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ExecutablePath != `C:\tools\vswhere.exe` {
		t.Errorf("unexpected executable_path %q", cfg.ExecutablePath)
	}
	if cfg.MirrorURL != "https://mirror.example/vswhere.exe" {
		t.Errorf("unexpected mirror_url %q", cfg.MirrorURL)
	}
	if cfg.CacheDir != `D:\cache\vslocate` {
		t.Errorf("unexpected cache_dir %q", cfg.CacheDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("mirror_url: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadDefaultMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("VSLOCATE_CACHE_DIR", t.TempDir())

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
