package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the inputs of one resolution run.
type Config struct {
	// CultureCode selects the localized feed, e.g. "0409" for en-US.
	CultureCode string `mapstructure:"culture_code" yaml:"culture_code"`
	// BaseURL overrides the feed URL entirely; CultureCode is ignored when set.
	BaseURL string `mapstructure:"base_url" yaml:"base_url,omitempty"`
	// Version is "latest" or a version string found in an entry title.
	Version string `mapstructure:"version" yaml:"version"`
	// UpdateName is the pkginfo name and the prefix of requires entries.
	UpdateName string `mapstructure:"munki_update_name" yaml:"munki_update_name"`
	// UserAgent is sent with the feed request; the feed rejects generic clients.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// Timeout bounds the feed request.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

const (
	// DefaultConfigFilename is read from the working directory when no path is given.
	DefaultConfigFilename = "lync-update-info.yaml"

	// EnvPrefix is prepended to every environment variable, e.g. LYNC_CULTURE_CODE.
	EnvPrefix = "LYNC"

	// DefaultCultureCode corresponds to en-US.
	DefaultCultureCode = "0409"

	// FeedURLTemplate is filled with the culture code.
	FeedURLTemplate = "https://officecdn.microsoft.com/pr/C1297A47-86C4-4C1F-97FA-950631F94777/OfficeMac/%sUCCP14.xml"

	// LatestVersion selects the most recently published entry.
	LatestVersion = "latest"

	// DefaultUpdateName is the munki item name for Lync updates.
	DefaultUpdateName = "Lync_Installer"

	// DefaultUserAgent mimics Microsoft AutoUpdate.
	DefaultUserAgent = "Microsoft%20AutoUpdate/3.0.2 CFNetwork/720.2.4 Darwin/14.1.0 (x86_64)"

	// DefaultTimeout is the default duration for the feed request.
	DefaultTimeout = 30 * time.Second
)

// Keys used for viper lookups, environment variables and config files.
const (
	KeyCultureCode = "culture_code"
	KeyBaseURL     = "base_url"
	KeyVersion     = "version"
	KeyUpdateName  = "munki_update_name"
	KeyUserAgent   = "user_agent"
	KeyTimeout     = "timeout"
)

// flagKeys maps CLI flag names to config keys.
//
//nolint:gochecknoglobals // Read-only lookup table.
var flagKeys = map[string]string{
	"culture-code": KeyCultureCode,
	"base-url":     KeyBaseURL,
	"version":      KeyVersion,
	"update-name":  KeyUpdateName,
	"user-agent":   KeyUserAgent,
	"timeout":      KeyTimeout,
}

var (
	// errUpdateNameRequired is returned when the update name is blanked out.
	errUpdateNameRequired = errors.New("update name must be provided")
	// errUserAgentRequired is returned when the user agent is blanked out.
	errUserAgentRequired = errors.New("user agent must be provided")
	// errInvalidCultureCode is returned for culture codes that are not four hex digits.
	errInvalidCultureCode = errors.New("culture code must be four hexadecimal digits")

	cultureCodePattern = regexp.MustCompile(`^[0-9A-Fa-f]{4}$`)
)

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		CultureCode: DefaultCultureCode,
		Version:     LatestVersion,
		UpdateName:  DefaultUpdateName,
		UserAgent:   DefaultUserAgent,
		Timeout:     DefaultTimeout,
	}
}

// Load layers defaults, the YAML file at path, LYNC_* environment variables
// and changed flags (in increasing precedence) and validates the result.
// An empty path reads DefaultConfigFilename if it exists. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyCultureCode, defaults.CultureCode)
	v.SetDefault(KeyBaseURL, defaults.BaseURL)
	v.SetDefault(KeyVersion, defaults.Version)
	v.SetDefault(KeyUpdateName, defaults.UpdateName)
	v.SetDefault(KeyUserAgent, defaults.UserAgent)
	v.SetDefault(KeyTimeout, defaults.Timeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFilename); err == nil {
			path = DefaultConfigFilename
		}
	}

	if path != "" {
		v.SetConfigFile(filepath.Clean(path))
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read settings: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}

			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate normalises cfg and checks its fields.
func Validate(cfg *Config) error {
	cfg.CultureCode = strings.TrimSpace(cfg.CultureCode)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.UpdateName = strings.TrimSpace(cfg.UpdateName)

	cfg.Version = strings.TrimSpace(cfg.Version)
	if cfg.Version == "" {
		cfg.Version = LatestVersion
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.UpdateName == "" {
		return errUpdateNameRequired
	}

	if cfg.UserAgent == "" {
		return errUserAgentRequired
	}

	if cfg.BaseURL != "" {
		if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
			return fmt.Errorf("invalid base URL: %w", err)
		}

		return nil
	}

	if !cultureCodePattern.MatchString(cfg.CultureCode) {
		return fmt.Errorf("%w: %q", errInvalidCultureCode, cfg.CultureCode)
	}

	return nil
}

// FeedURL returns BaseURL when set and the culture-specific feed otherwise.
func (c Config) FeedURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}

	return fmt.Sprintf(FeedURLTemplate, c.CultureCode)
}

// IsLatest reports whether a version selector asks for the most recent entry.
func IsLatest(selector string) bool {
	return selector == "" || selector == LatestVersion
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}

	return data, nil
}
