package config

import (
	"fmt"
	"net/mail"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/blackhillsconsortium/annualreport/internal/pages"
	"github.com/blackhillsconsortium/annualreport/internal/remote"
)

// EnvPrefix prefixes environment overrides. A double underscore descends
// into a section: ANNUALREPORT_SERVER__PORT sets server.port.
const EnvPrefix = "ANNUALREPORT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps ANNUALREPORT_REMOTE__ANON_KEY to remote.anon_key.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Site.Title == "" {
		return fmt.Errorf("site.title is required")
	}
	if c.Site.Organization == "" {
		return fmt.Errorf("site.organization is required")
	}
	if c.Site.Year < 2000 || c.Site.Year > 2100 {
		return fmt.Errorf("site.year %d is out of range", c.Site.Year)
	}
	for name, addr := range map[string]string{
		"site.contact_email":  c.Site.ContactEmail,
		"site.investor_email": c.Site.InvestorEmail,
	} {
		if addr == "" {
			continue
		}
		if _, err := mail.ParseAddress(addr); err != nil {
			return fmt.Errorf("invalid %s %q", name, addr)
		}
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.Server.Watch && c.DataDir == "" {
		return fmt.Errorf("server.watch needs data_dir: the embedded data cannot change")
	}

	if c.Remote.URL != "" {
		u, err := url.Parse(c.Remote.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid remote.url %q", c.Remote.URL)
		}
		if c.Remote.AnonKey == "" {
			return fmt.Errorf("remote.anon_key is required when remote.url is set")
		}
	}
	if c.Remote.TimeoutSeconds < 0 {
		return fmt.Errorf("remote.timeout_seconds must be non-negative")
	}

	return nil
}

// PageSite converts the site section into page branding.
func (c *Config) PageSite() pages.Site {
	return pages.Site{
		Title:         c.Site.Title,
		Organization:  c.Site.Organization,
		Year:          c.Site.Year,
		ContactEmail:  c.Site.ContactEmail,
		InvestorEmail: c.Site.InvestorEmail,
	}
}

// RemoteClient returns the backend client configuration.
func (c *Config) RemoteClient() remote.Config {
	return remote.Config{
		URL:     c.Remote.URL,
		AnonKey: c.Remote.AnonKey,
		Timeout: time.Duration(c.Remote.TimeoutSeconds) * time.Second,
	}
}
