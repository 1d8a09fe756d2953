// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}

	// No config file anywhere near the temp working directory.
	wd, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := LoadConfig[Config](cmd, Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Database.Type != "sqlite" {
		t.Fatalf("expected default database type sqlite, got %q", cfg.Database.Type)
	}
	if cfg.Database.Dsn != "./formkeeper.db" {
		t.Fatalf("expected default dsn, got %q", cfg.Database.Dsn)
	}
	if cfg.Auth.MinPasswordLength != 6 {
		t.Fatalf("expected default min password length 6, got %d", cfg.Auth.MinPasswordLength)
	}
	if cfg.Auth.UsernamePattern != "^[a-zA-Z0-9_]+$" {
		t.Fatalf("unexpected default username pattern %q", cfg.Auth.UsernamePattern)
	}
	if cfg.Language != "en" || cfg.Debug {
		t.Fatalf("unexpected defaults: lang=%q debug=%v", cfg.Language, cfg.Debug)
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "formkeeper.yaml")
	content := []byte("database:\n  type: postgres\n  dsn: \"postgres://localhost/fk\"\nauth:\n  min_password_length: 10\nlanguage: fa\ndebug: true\n")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("writing config fixture failed: %v", err)
	}

	cmd := &cobra.Command{Use: "test"}
	cfg, err := LoadConfig[Config](cmd, Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Database.Type != "postgres" || cfg.Database.Dsn != "postgres://localhost/fk" {
		t.Fatalf("file values not applied: %+v", cfg.Database)
	}
	if cfg.Auth.MinPasswordLength != 10 {
		t.Fatalf("expected min password length 10, got %d", cfg.Auth.MinPasswordLength)
	}
	if cfg.Language != "fa" || !cfg.Debug {
		t.Fatalf("expected fa/debug from file, got lang=%q debug=%v", cfg.Language, cfg.Debug)
	}
	// Settings the file omits keep their defaults.
	if cfg.Auth.UsernamePattern != "^[a-zA-Z0-9_]+$" {
		t.Fatalf("default not preserved for omitted key: %q", cfg.Auth.UsernamePattern)
	}
}

func TestLoadConfig_KeyNamedFlags(t *testing.T) {
	// The CLI names its persistent flags after the config keys; BindPFlags
	// must surface their values in the unmarshaled struct without a mapping
	// layer.
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("database.type", "sqlite", "")
	cmd.Flags().String("database.dsn", "./formkeeper.db", "")
	if err := cmd.Flags().Set("database.type", "mysql"); err != nil {
		t.Fatalf("setting flag failed: %v", err)
	}
	if err := cmd.Flags().Set("database.dsn", "user:pw@/fk"); err != nil {
		t.Fatalf("setting flag failed: %v", err)
	}

	wd, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := LoadConfig[Config](cmd, Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Database.Type != "mysql" || cfg.Database.Dsn != "user:pw@/fk" {
		t.Fatalf("key-named flags not bound: %+v", cfg.Database)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath failed: %v", err)
	}
	if filepath.Base(path) != "formkeeper.yaml" {
		t.Fatalf("unexpected config file name in %q", path)
	}
	if filepath.Base(filepath.Dir(path)) != "formkeeper" {
		t.Fatalf("expected a formkeeper config directory, got %q", path)
	}
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "formkeeper.yaml")
	if err := os.WriteFile(path, []byte("language: fa\n"), 0600); err != nil {
		t.Fatalf("writing config fixture failed: %v", err)
	}

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("language", "de"); err != nil {
		t.Fatalf("setting flag failed: %v", err)
	}

	cfg, err := LoadConfig[Config](cmd, Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Language != "de" {
		t.Fatalf("expected the flag to win over the file, got %q", cfg.Language)
	}
}
