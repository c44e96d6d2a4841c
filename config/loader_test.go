package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// setupProject points the path manager at a fresh project and user config dir.
func setupProject(t *testing.T) string {
	t.Helper()
	project := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, project)

	ResetPathManager()
	t.Cleanup(ResetPathManager)
	if err := InitPaths(); err != nil {
		t.Fatalf("InitPaths() error = %v", err)
	}
	return project
}

func TestLoadConfigDefaults(t *testing.T) {
	setupProject(t)

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := DefaultConfig()
	if *cfg != *want {
		t.Errorf("LoadConfig() = %+v, want %+v", *cfg, *want)
	}
	if GetDateFormat() != "2006-01-02 15:04" {
		t.Errorf("GetDateFormat() = %q", GetDateFormat())
	}
	if GetWordWrap() != 100 {
		t.Errorf("GetWordWrap() = %d", GetWordWrap())
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	project := setupProject(t)

	cfg := DefaultConfig()
	cfg.Logging.Level = "info"
	cfg.Store.File = "from-file.yaml"
	cfg.Display.Style = "light"
	if err := WriteConfigFile(filepath.Join(project, ".todo", "config.yaml"), cfg, false); err != nil {
		t.Fatalf("WriteConfigFile() error = %v", err)
	}

	t.Setenv("TODO_LOGGING_LEVEL", "debug")

	flags := pflag.NewFlagSet("todo", pflag.ContinueOnError)
	flags.String("file", "", "")
	flags.String("style", "", "")
	if err := flags.Parse([]string{"--file", "from-flag.json"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, err := LoadConfig(flags)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if got.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want env value debug", got.Logging.Level)
	}
	if got.Store.File != "from-flag.json" {
		t.Errorf("Store.File = %q, want flag value", got.Store.File)
	}
	if got.Display.Style != "light" {
		t.Errorf("Display.Style = %q, want file value light (unset flag must not override)", got.Display.Style)
	}
	if want := filepath.Join(project, "from-flag.json"); GetStoreFile() != want {
		t.Errorf("GetStoreFile() = %q, want %q", GetStoreFile(), want)
	}
}

func TestWriteConfigFileNoOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := WriteConfigFile(path, DefaultConfig(), false); err != nil {
		t.Fatalf("first write error = %v", err)
	}
	if err := WriteConfigFile(path, DefaultConfig(), false); !errors.Is(err, ErrConfigExists) {
		t.Errorf("second write error = %v, want ErrConfigExists", err)
	}
	if err := WriteConfigFile(path, DefaultConfig(), true); err != nil {
		t.Errorf("overwrite error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("config file is empty")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
