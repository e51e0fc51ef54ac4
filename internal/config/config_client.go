package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
)

// Client defaults applied when neither env nor flags provide a value.
const (
	DefaultClientServerURL = "http://localhost:8080"
	DefaultClientTimeout   = 15 * time.Second
)

// ErrInvalidClientConfigs indicates invalid client settings (for example, a
// server URL that cannot be parsed).
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the events REST server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Namespace is the route prefix configured on the server.
	// Env: CLIENT_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains the server address, namespace and timeout.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// Args are the positional arguments left after flag parsing: the
	// resource to fetch and its id.
	Args []string
}

// GetClientConfig loads the client configuration from environment variables
// and command-line flags (flags win), applies defaults and validates it.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := new(ClientConfig)
	for _, c := range []*ClientConfig{envCfg, flagsCfg} {
		if err = mergo.Merge(cfg, c, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}
	cfg.Args = flagsCfg.Args

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

// parseClientFlags parses the client flags.
//
// Flags:
//
//	-s server base URL (e.g. "http://localhost:8080")
//	-namespace route namespace prefix (e.g. "/wp/v2")
//	-timeout request timeout (e.g., "5s")
func parseClientFlags(args []string) (*ClientConfig, error) {
	var serverURL string
	var namespace string
	var timeout time.Duration

	fs := flag.NewFlagSet("events-client", flag.ContinueOnError)
	fs.StringVar(&serverURL, "s", "", "Server base URL")
	fs.StringVar(&namespace, "namespace", "", "Route namespace prefix")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      serverURL,
			Namespace:      namespace,
			RequestTimeout: timeout,
		},
		Args: fs.Args(),
	}, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = DefaultClientServerURL
	}
	if cfg.Adapter.Namespace == "" {
		cfg.Adapter.Namespace = DefaultNamespace
	}
	cfg.Adapter.Namespace = strings.TrimRight(cfg.Adapter.Namespace, "/")
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientTimeout
	}
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.ServerURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server url %q must include scheme and host", ErrInvalidClientConfigs, cfg.Adapter.ServerURL)
	}
	if cfg.Adapter.Namespace != "" && !strings.HasPrefix(cfg.Adapter.Namespace, "/") {
		return fmt.Errorf("%w: namespace %q must start with '/'", ErrInvalidClientConfigs, cfg.Adapter.Namespace)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidClientConfigs)
	}
	return nil
}
