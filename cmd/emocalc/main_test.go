package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/emocalc/internal/config"
	"github.com/verte-zerg/emocalc/internal/emotion"
)

func runCLI(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.toml")
}

func TestPressScenario(t *testing.T) {
	out, err := runCLI(t, missingConfig(t), "press", "5", "+", "3", "=")
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if out != "8\n" {
		t.Fatalf("expected 8, got %q", out)
	}
}

func TestPressSplitsCompactArguments(t *testing.T) {
	out, err := runCLI(t, missingConfig(t), "press", "1234x", "2")
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if out != "2\n1,234 ×\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPressDivideByZero(t *testing.T) {
	out, err := runCLI(t, missingConfig(t), "press", "5/0=")
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if out != "Error\n" {
		t.Fatalf("expected Error, got %q", out)
	}
}

func TestPressLargeNegativeProductKeepsSignificantDigits(t *testing.T) {
	out, err := runCLI(t, missingConfig(t), "press", "0-999999999999=", "x999999999999=")
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if out != "-999,999,999,998,000,000,000,000\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPressWithEmotion(t *testing.T) {
	out, err := runCLI(t, missingConfig(t), "--emotion", "press", "2", "0", "0", "0")
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if out != emotion.Grinning+"\n2,000\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPressUnknownKey(t *testing.T) {
	if _, err := runCLI(t, missingConfig(t), "press", "5", "%"); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[display]
emotion = true

[format]
grouping-separator = " "
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCLI(t, path, "press", "-", "1", "2", "3", "4", "5", "=")
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if out != emotion.Crying+"\n-12 345\n" {
		t.Fatalf("expected config values to apply, got %q", out)
	}

	out, err = runCLI(t, path, "--emotion=false", "press", "7")
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("expected flag to override config, got %q", out)
	}
}

func TestInvalidFormatConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[format]\ndecimal-separator = \",\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := runCLI(t, path, "press", "1")
	if err == nil || !strings.Contains(err.Error(), "invalid format settings") {
		t.Fatalf("expected invalid format error, got %v", err)
	}
}

func TestInvalidLocale(t *testing.T) {
	if _, err := runCLI(t, missingConfig(t), "--locale", "!!", "press", "1"); err == nil {
		t.Fatalf("expected locale error")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("write default config: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template should decode: %v", err)
	}
	if cfg.Display.Emotion != nil || cfg.Format.MaxFractionDigits != nil {
		t.Fatalf("expected all template values to be commented out")
	}

	if err := os.WriteFile(path, []byte("[display]\nemotion = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("write default config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != "[display]\nemotion = true\n" {
		t.Fatalf("expected existing config to be kept")
	}
}

func TestParseKeysKeepsBackspaceWhole(t *testing.T) {
	keys, err := parseKeys([]string{"12", "BS", "bs", "3"})
	if err != nil {
		t.Fatalf("parse keys: %v", err)
	}
	if len(keys) != 5 {
		t.Fatalf("expected 5 keys, got %d", len(keys))
	}
}
