package main

import (
	"os"
	"testing"

	"github.com/gogpu/icongen"
)

func TestLoadEnv_Defaults(t *testing.T) {
	for _, key := range []string{"ICONGEN_TABLE", "ICONGEN_OUTPUT_DIR", "ICONGEN_FONT_PATH", "ICONGEN_WORKERS"} {
		t.Setenv(key, "") // restores the original value on cleanup
		if err := os.Unsetenv(key); err != nil {
			t.Fatal(err)
		}
	}

	cfg, err := loadEnv()
	if err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
	if cfg.Table != "" {
		t.Errorf("Table = %q, want empty", cfg.Table)
	}
	if cfg.OutputDir != icongen.DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, icongen.DefaultOutputDir)
	}
	if cfg.FontPath != icongen.DefaultFontPath {
		t.Errorf("FontPath = %q, want %q", cfg.FontPath, icongen.DefaultFontPath)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("ICONGEN_TABLE", "icons.toml")
	t.Setenv("ICONGEN_OUTPUT_DIR", "out")
	t.Setenv("ICONGEN_FONT_PATH", "/fonts/x.ttf")
	t.Setenv("ICONGEN_WORKERS", "8")

	cfg, err := loadEnv()
	if err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
	want := envConfig{Table: "icons.toml", OutputDir: "out", FontPath: "/fonts/x.ttf", Workers: 8}
	if cfg != want {
		t.Errorf("loadEnv() = %+v, want %+v", cfg, want)
	}
}

func TestLoadEnv_BadWorkers(t *testing.T) {
	t.Setenv("ICONGEN_WORKERS", "many")
	if _, err := loadEnv(); err == nil {
		t.Error("loadEnv should reject a non-numeric worker count")
	}
}
