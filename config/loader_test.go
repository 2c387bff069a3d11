package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kbukum/swapkit/errors"
)

type testSettings struct {
	Family  string `mapstructure:"family"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

func (c *testSettings) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 30
	}
}

func (c *testSettings) Validate() error {
	if c.Family == "" {
		return errors.InvalidConfig("family is required")
	}
	return nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FileWithDefaults(t *testing.T) {
	path := writeConfig(t, "family: swap\nbase_url: https://lite-api.jup.ag\n")

	cfg, err := Load[testSettings](path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Family != "swap" || cfg.BaseURL != "https://lite-api.jup.ag" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Timeout != 30 {
		t.Errorf("timeout default not applied: %d", cfg.Timeout)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, "base_url: https://lite-api.jup.ag\n")

	_, err := Load[testSettings](path)
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load[testSettings]("/does/not/exist.yml")
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "family: swap\nbase_url: https://lite-api.jup.ag\n")
	t.Setenv("SWAPKIT_BASE_URL", "https://api.jup.ag")

	cfg, err := Load[testSettings](path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://api.jup.ag" {
		t.Errorf("env override not applied: %q", cfg.BaseURL)
	}
}

// An env var whose key has no line in the config file must still reach the
// unmarshalled struct.
func TestLoad_EnvOnlyKey(t *testing.T) {
	path := writeConfig(t, "family: swap\n")
	t.Setenv("SWAPKIT_BASE_URL", "https://api.jup.ag")

	cfg, err := Load[testSettings](path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://api.jup.ag" {
		t.Errorf("env-only key dropped: BaseURL = %q", cfg.BaseURL)
	}
}

type nestedSettings struct {
	Family  string `mapstructure:"family"`
	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
}

func TestLoad_EnvOnlyNestedKey(t *testing.T) {
	path := writeConfig(t, "family: price\n")
	t.Setenv("SWAPKIT_LOGGING_LEVEL", "debug")

	cfg, err := Load[nestedSettings](path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("nested env-only key dropped: %+v", cfg)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"FAMILY", []string{"family"}},
		{"API_KEY", []string{"api_key", "api.key", "api.key"}},
		{"LOGGING_NO_COLOR", []string{"logging_no_color", "logging.no.color", "logging.no_color", "logging.no.color"}},
	}
	for _, tt := range tests {
		if got := envKeyVariants(tt.key); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("envKeyVariants(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

type fakeFS struct {
	files  map[string]bool
	loaded []string
}

func (f *fakeFS) Exists(path string) bool { return f.files[path] }
func (f *fakeFS) LoadEnv(path string) error {
	f.loaded = append(f.loaded, path)
	return fmt.Errorf("broken dotenv")
}

func TestLoad_EnvFileFailureIsSwallowed(t *testing.T) {
	path := writeConfig(t, "family: price\n")
	fs := &fakeFS{files: map[string]bool{path: true, ".env": true}}

	cfg, err := Load[testSettings](path, WithFileSystem(fs))
	if err != nil {
		t.Fatalf("dotenv failure must not break loading: %v", err)
	}
	if cfg.Family != "price" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(fs.loaded) != 1 || fs.loaded[0] != ".env" {
		t.Errorf("expected .env load attempt, got %v", fs.loaded)
	}
}
