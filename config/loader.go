package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/swapkit/errors"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SWAPKIT"

// Settings is implemented by config structs that carry their own defaulting
// and validation, following the ApplyDefaults/Validate convention used
// throughout swapkit.
type Settings interface {
	ApplyDefaults()
	Validate() error
}

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

// Exists reports whether path exists.
func (rfs RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadEnv loads environment variables from a dotenv file.
func (rfs RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Options holds loader dependencies and optional overrides.
type Options struct {
	FileSystem FileSystem
	EnvFile    string
}

// Option is a functional option for Load.
type Option func(*Options)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) Option {
	return func(o *Options) { o.FileSystem = fs }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *Options) { o.EnvFile = path }
}

// Load reads configuration into a fresh T: .env first (when present), then
// the config file, then SWAPKIT_* environment overrides. When *T implements
// Settings, defaults are applied and the result validated before returning.
func Load[T any](configFile string, opts ...Option) (*T, error) {
	o := Options{FileSystem: RealFileSystem{}}
	for _, opt := range opts {
		opt(&o)
	}

	loadEnvFile(o)

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	if configFile != "" {
		if !o.FileSystem.Exists(configFile) {
			return nil, errors.InvalidConfig(fmt.Sprintf("config file %q not found", configFile))
		}
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.InvalidConfig("failed to read config file").WithCause(err)
		}
	}

	var cfg T
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.InvalidConfig("failed to unmarshal config").WithCause(err)
	}

	if s, ok := any(&cfg).(Settings); ok {
		s.ApplyDefaults()
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// bindEnvVars surfaces SWAPKIT_* environment variables through Unmarshal.
// AutomaticEnv alone only resolves keys viper already knows about, so an
// env-only key absent from the config file would be silently dropped.
func bindEnvVars(v *viper.Viper) {
	prefix := EnvPrefix + "_"
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		for _, variant := range envKeyVariants(strings.TrimPrefix(pair[0], prefix)) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants lists the key spellings an env var may address, since an
// underscore can separate either nested sections or words within one key:
//
//	API_KEY          -> api_key, api.key
//	LOGGING_NO_COLOR -> logging_no_color, logging.no.color, logging.no_color
//
// Setting a variant that matches no struct field is harmless; Unmarshal
// ignores unknown keys.
func envKeyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	if len(parts) <= 1 {
		return []string{lower}
	}
	variants := []string{
		lower,
		strings.ReplaceAll(lower, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return variants
}

// loadEnvFile loads the explicit env file, or ./.env when one exists.
// A missing env file is not an error; a broken one is only logged by the
// caller because config loading must not depend on local dotenv hygiene.
func loadEnvFile(o Options) {
	path := o.EnvFile
	if path == "" {
		if !o.FileSystem.Exists(".env") {
			return
		}
		path = ".env"
	}
	_ = o.FileSystem.LoadEnv(path)
}
