package jupiter

import (
	"context"
	"time"

	"github.com/kbukum/swapkit/credentials"
	"github.com/kbukum/swapkit/errors"
	"github.com/kbukum/swapkit/httpclient"
	"github.com/kbukum/swapkit/logger"
	"github.com/kbukum/swapkit/runner"
	"github.com/kbukum/swapkit/util"
	"github.com/kbukum/swapkit/validation"
)

// Config configures one adapter instance.
type Config struct {
	// Family selects the operation catalog.
	Family string `yaml:"family" mapstructure:"family" validate:"required,oneof=ultra swap trigger recurring price token"`

	// BaseURL overrides the service base URL. When empty it defaults to
	// the authenticated tier if a key is available, the lite tier
	// otherwise.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// APIKey is sent as the x-api-key header. Empty means unauthenticated
	// access.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// APIKeyEnv names an environment variable to read the key from when
	// APIKey is empty.
	APIKeyEnv string `yaml:"api_key_env" mapstructure:"api_key_env"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// ContinueOnError turns per-item failure isolation on for Run.
	ContinueOnError bool `yaml:"continue_on_error" mapstructure:"continue_on_error"`

	// Logging configures the adapter logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	c.Logging.ApplyDefaults()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error())
	}
	return nil
}

// Adapter executes operation batches against one Jupiter API family.
type Adapter struct {
	family string
	runner *runner.Runner
	opts   runner.Options
}

// New builds an Adapter from the configuration: it selects the family
// catalog, resolves the credential provider, picks the base URL tier, and
// wires the HTTP client and batch runner.
func New(cfg Config) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cat, err := FamilyCatalog(cfg.Family)
	if err != nil {
		return nil, err
	}

	creds := provider(cfg)
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultLiteBaseURL
		if creds != nil {
			if _, ok := creds.Lookup(context.Background()); ok {
				baseURL = DefaultBaseURL
			}
		}
	}

	client, err := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	if err != nil {
		return nil, err
	}

	log := logger.New(&cfg.Logging, "swapkit").WithFields(map[string]any{
		logger.FieldCatalog: cfg.Family,
	})
	if cfg.APIKey != "" {
		log.Debug("using configured api key", logger.Fields("api_key", util.MaskSecret(cfg.APIKey, 4)))
	}

	run, err := runner.New(runner.Config{
		Catalog:     cat,
		BaseURL:     baseURL,
		Executor:    client,
		Credentials: creds,
		Logger:      log,
	})
	if err != nil {
		return nil, err
	}

	return &Adapter{
		family: cfg.Family,
		runner: run,
		opts:   runner.Options{ContinueOnError: cfg.ContinueOnError},
	}, nil
}

// provider maps the key configuration to a credential provider. Nil means
// unauthenticated access.
func provider(cfg Config) credentials.Provider {
	switch {
	case cfg.APIKey != "":
		return credentials.Static{Credential: credentials.Credential{APIKey: cfg.APIKey}}
	case cfg.APIKeyEnv != "":
		return credentials.Env{Var: cfg.APIKeyEnv}
	default:
		return nil
	}
}

// Family returns the adapter family name.
func (a *Adapter) Family() string { return a.family }

// Run processes the items in input order and returns one result per item in
// isolation mode, or the results gathered before the first failure in abort
// mode.
func (a *Adapter) Run(ctx context.Context, items []runner.Item) ([]runner.Result, error) {
	return a.runner.Run(ctx, items, a.opts)
}
