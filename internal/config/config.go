// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultSFTPTimeout    = 10 * time.Second
	DefaultSFTPPort       = 22
	DefaultPublishWorkers = 2
	DefaultMaxFileBytes   = 100 << 20 // 100 MiB per uploaded file
)

// Config is the application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Catalogs CatalogsConfig `mapstructure:"catalogs"`
	Publish  PublishConfig  `mapstructure:"publish"`
	Notify   NotifyConfig   `mapstructure:"notify"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// DatabaseConfig holds the local state database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// IngestConfig holds upload intake and placement configuration.
type IngestConfig struct {
	TempPath       string `mapstructure:"tempPath"`       // staging area for raw uploads
	AudioPath      string `mapstructure:"audioPath"`      // local target directory for placed mp3 files
	DescriptorPath string `mapstructure:"descriptorPath"` // local target directory for placed xml files
	MaxFileBytes   int64  `mapstructure:"maxFileBytes"`   // per-file upload size limit, 0 = default
}

// RemoteConfig holds remote storage configuration for publishing.
type RemoteConfig struct {
	Type           string        `mapstructure:"type"` // remote backend: "sftp" (default) or "local"
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	KeyFile        string        `mapstructure:"keyFile"`
	KnownHostsFile string        `mapstructure:"knownHostsFile"` // Path to known_hosts file (mutually exclusive with IgnoreHostKey)
	IgnoreHostKey  bool          `mapstructure:"ignoreHostKey"`  // Skip host key verification (mutually exclusive with KnownHostsFile)
	Timeout        time.Duration `mapstructure:"timeout"`
	AudioPath      string        `mapstructure:"audioPath"`      // remote directory for published mp3 files
	DescriptorPath string        `mapstructure:"descriptorPath"` // remote directory for published xml files
	LocalRoot      string        `mapstructure:"localRoot"`      // root directory when type is "local"
}

// CatalogsConfig holds connection settings for the two external catalogs
// that published recitations are mirrored into.
type CatalogsConfig struct {
	First  CatalogConfig `mapstructure:"first"`
	Second CatalogConfig `mapstructure:"second"`
}

// CatalogConfig holds one catalog database connection.
type CatalogConfig struct {
	DSN string `mapstructure:"dsn"`
}

// PublishConfig holds background publish queue configuration.
type PublishConfig struct {
	Workers       int           `mapstructure:"workers"`
	RetryInterval time.Duration `mapstructure:"retryInterval"` // how often stuck approved recitations are rescanned, 0 disables
}

// NotifyConfig holds outbound user notification configuration.
type NotifyConfig struct {
	WebhookURL  string        `mapstructure:"webhookUrl"` // empty disables notifications
	TokenURL    string        `mapstructure:"tokenUrl"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	HTTPTimeout time.Duration `mapstructure:"httpTimeout"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ConfigFile is an explicit config file path. If empty, default locations are searched.
	ConfigFile string
}

// Load reads configuration from file and environment variables.
// If opts.ConfigFile is set, that file is used directly.
// Otherwise, it searches default locations: $HOME, current directory, /config
// for files named .khanesh.yaml, khanesh.yaml, or config.yaml.
//
// Environment variables with prefix KHANESH_ override config file values.
func Load(opts LoadOptions) (Config, error) {
	v := viper.NewWithOptions(viper.ExperimentalBindStruct())

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.AddConfigPath("/config")
		v.SetConfigType("yaml")
		v.SetConfigName(".khanesh")
		v.SetConfigName("khanesh")
		v.SetConfigName("config")
	}

	// Environment variables
	v.SetEnvPrefix("KHANESH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("server.listen", "[::]:8480")
	v.SetDefault("database.path", "khanesh.db")
	v.SetDefault("ingest.tempPath", "/data/uploads")
	v.SetDefault("ingest.audioPath", "/data/audio")
	v.SetDefault("ingest.descriptorPath", "/data/xml")
	v.SetDefault("publish.workers", DefaultPublishWorkers)
	v.SetDefault("publish.retryInterval", "1h")

	// Read config file (ignore error if not found)
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	setDerivedDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// setDerivedDefaults applies default values to config fields that can't
// be set with viper.SetDefault.
func setDerivedDefaults(cfg *Config) {
	if cfg.Ingest.MaxFileBytes == 0 {
		cfg.Ingest.MaxFileBytes = DefaultMaxFileBytes
	}

	if cfg.Remote.Port == 0 {
		cfg.Remote.Port = DefaultSFTPPort
	}
	if cfg.Remote.Timeout == 0 {
		cfg.Remote.Timeout = DefaultSFTPTimeout
	}

	if cfg.Notify.HTTPTimeout == 0 {
		cfg.Notify.HTTPTimeout = DefaultHTTPTimeout
	}
}

// remoteConfigured reports whether any remote storage setting was provided.
func remoteConfigured(r *RemoteConfig) bool {
	return r.Type != "" || r.Host != "" || r.LocalRoot != "" ||
		r.AudioPath != "" || r.DescriptorPath != ""
}

// Configured reports whether remote storage was provided at all.
// An entirely unset remote disables publishing.
func (r RemoteConfig) Configured() bool {
	return remoteConfigured(&r)
}

// Valid remote backend types.
//
//nolint:gochecknoglobals // validation lookup table
var validRemoteTypes = map[string]bool{
	"":      true, // empty means default (sftp)
	"sftp":  true,
	"local": true,
}

// validate checks that the configuration is valid.
//
//nolint:gocognit // validation requires checking many fields
func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	// Validate ingest paths
	if cfg.Ingest.TempPath == "" {
		errs = append(errs, errors.New("ingest.tempPath is required"))
	}
	if cfg.Ingest.AudioPath == "" {
		errs = append(errs, errors.New("ingest.audioPath is required"))
	}
	if cfg.Ingest.DescriptorPath == "" {
		errs = append(errs, errors.New("ingest.descriptorPath is required"))
	}

	// Validate remote storage. An entirely unset remote disables publishing,
	// so only a partially filled remote is an error.
	if remoteConfigured(&cfg.Remote) {
		if !validRemoteTypes[cfg.Remote.Type] {
			errs = append(errs, fmt.Errorf("remote.type: unknown backend %q", cfg.Remote.Type))
		}

		switch cfg.Remote.Type {
		case "local":
			if cfg.Remote.LocalRoot == "" {
				errs = append(errs, errors.New("remote.localRoot is required for local remote"))
			}
		case "", "sftp":
			if cfg.Remote.Host == "" {
				errs = append(errs, errors.New("remote.host is required"))
			}
			if cfg.Remote.User == "" {
				errs = append(errs, errors.New("remote.user is required"))
			}
			if cfg.Remote.Password == "" && cfg.Remote.KeyFile == "" {
				errs = append(errs, errors.New("remote.password or remote.keyFile is required"))
			}

			// Host key verification: must specify knownHostsFile OR ignoreHostKey, but not both
			if cfg.Remote.KnownHostsFile != "" && cfg.Remote.IgnoreHostKey {
				errs = append(errs, errors.New("remote.knownHostsFile and remote.ignoreHostKey are mutually exclusive"))
			}
			if cfg.Remote.KnownHostsFile == "" && !cfg.Remote.IgnoreHostKey {
				errs = append(errs, errors.New("remote.knownHostsFile is required (or set remote.ignoreHostKey to true)"))
			}
		}

		if cfg.Remote.AudioPath == "" {
			errs = append(errs, errors.New("remote.audioPath is required"))
		}
		if cfg.Remote.DescriptorPath == "" {
			errs = append(errs, errors.New("remote.descriptorPath is required"))
		}
	}

	// Validate catalogs: both or neither
	if (cfg.Catalogs.First.DSN == "") != (cfg.Catalogs.Second.DSN == "") {
		errs = append(errs, errors.New("catalogs.first.dsn and catalogs.second.dsn must be set together"))
	}

	// Validate publish queue
	if cfg.Publish.Workers < 0 {
		errs = append(errs, errors.New("publish.workers must not be negative"))
	}

	// Validate notifications
	if cfg.Notify.WebhookURL != "" {
		if _, err := url.Parse(cfg.Notify.WebhookURL); err != nil {
			errs = append(errs, fmt.Errorf("notify.webhookUrl: invalid url: %w", err))
		}
		if cfg.Notify.TokenURL == "" {
			errs = append(errs, errors.New("notify.tokenUrl is required when notify.webhookUrl is set"))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
