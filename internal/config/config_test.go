package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/config"
)

// loadConfigFromYAML creates a temp config file and loads it using Load().
// This ensures tests use the exact same config loading code as the application.
func loadConfigFromYAML(t *testing.T, yaml string) config.Config {
	t.Helper()

	// Create temp directory for config file
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	// Write YAML to temp file
	err := os.WriteFile(configFile, []byte(yaml), 0644)
	require.NoError(t, err, "failed to write temp config file")

	// Load using the same function the app uses
	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile})
	require.NoError(t, err, "failed to load config")

	return cfg
}

func TestConfigDefaults(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, cfg config.Config)
	}{
		{
			name: "empty config uses all defaults",
			yaml: "",
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "[::]:8480", cfg.Server.Listen)
				assert.Equal(t, "khanesh.db", cfg.Database.Path)
				assert.Equal(t, "/data/uploads", cfg.Ingest.TempPath)
				assert.Equal(t, "/data/audio", cfg.Ingest.AudioPath)
				assert.Equal(t, "/data/xml", cfg.Ingest.DescriptorPath)
				assert.Equal(t, 2, cfg.Publish.Workers)
				assert.Equal(t, time.Hour, cfg.Publish.RetryInterval)
			},
		},
		{
			name: "server listen can be overridden",
			yaml: `
server:
  listen: "0.0.0.0:9000"
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "0.0.0.0:9000", cfg.Server.Listen)
				// Other defaults still apply
				assert.Equal(t, "/data/uploads", cfg.Ingest.TempPath)
			},
		},
		{
			name: "ingest paths can be overridden",
			yaml: `
ingest:
  tempPath: /srv/staging
  audioPath: /srv/audio
  descriptorPath: /srv/xml
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "/srv/staging", cfg.Ingest.TempPath)
				assert.Equal(t, "/srv/audio", cfg.Ingest.AudioPath)
				assert.Equal(t, "/srv/xml", cfg.Ingest.DescriptorPath)
			},
		},
		{
			name: "maxFileBytes defaults when unset",
			yaml: "",
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, int64(config.DefaultMaxFileBytes), cfg.Ingest.MaxFileBytes)
			},
		},
		{
			name: "maxFileBytes can be set",
			yaml: `
ingest:
  maxFileBytes: 52428800
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, int64(52428800), cfg.Ingest.MaxFileBytes)
			},
		},
		{
			name: "publish workers can be overridden",
			yaml: `
publish:
  workers: 4
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, 4, cfg.Publish.Workers)
			},
		},
		{
			name: "retryInterval can be overridden",
			yaml: `
publish:
  retryInterval: 30m
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, 30*time.Minute, cfg.Publish.RetryInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadConfigFromYAML(t, tt.yaml)
			tt.check(t, cfg)
		})
	}
}

func TestRemoteConfig(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, cfg config.Config)
	}{
		{
			name: "sftp remote",
			yaml: `
remote:
  type: sftp
  host: audio.example.com
  port: 2222
  user: publisher
  keyFile: /config/ssh/id_ed25519
  ignoreHostKey: true
  audioPath: /i/a
  descriptorPath: /i/x
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "sftp", cfg.Remote.Type)
				assert.Equal(t, "audio.example.com", cfg.Remote.Host)
				assert.Equal(t, 2222, cfg.Remote.Port)
				assert.Equal(t, "publisher", cfg.Remote.User)
				assert.Equal(t, "/config/ssh/id_ed25519", cfg.Remote.KeyFile)
				assert.Equal(t, "/i/a", cfg.Remote.AudioPath)
				assert.Equal(t, "/i/x", cfg.Remote.DescriptorPath)
			},
		},
		{
			name: "port defaults to 22 when not specified",
			yaml: `
remote:
  host: audio.example.com
  user: publisher
  password: secret
  ignoreHostKey: true
  audioPath: /i/a
  descriptorPath: /i/x
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, config.DefaultSFTPPort, cfg.Remote.Port)
				assert.Equal(t, config.DefaultSFTPTimeout, cfg.Remote.Timeout)
			},
		},
		{
			name: "local remote for single-host deployments",
			yaml: `
remote:
  type: local
  localRoot: /srv/published
  audioPath: audio
  descriptorPath: xml
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "local", cfg.Remote.Type)
				assert.Equal(t, "/srv/published", cfg.Remote.LocalRoot)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadConfigFromYAML(t, tt.yaml)
			tt.check(t, cfg)
		})
	}
}

func TestFullConfig(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) config.LoadOptions
	}{
		{
			name: "from yaml file",
			setup: func(t *testing.T) config.LoadOptions {
				yaml := `
server:
  listen: "0.0.0.0:8080"

database:
  path: /data/khanesh.db

ingest:
  tempPath: /data/staging
  audioPath: /data/audio
  descriptorPath: /data/xml
  maxFileBytes: 209715200

remote:
  type: sftp
  host: audio.example.com
  port: 2222
  user: publisher
  password: secret123
  ignoreHostKey: true
  audioPath: /i/a
  descriptorPath: /i/x

catalogs:
  first:
    dsn: postgres://khanesh:pw@db1:5432/catalog
  second:
    dsn: postgres://khanesh:pw@db2:5432/catalog

publish:
  workers: 3
  retryInterval: 2h

notify:
  webhookUrl: https://hub.example.com/api/notifications
  tokenUrl: https://hub.example.com/api/users/login
  username: bot
  password: hunter2
`
				// Create temp directory for config file
				tmpDir := t.TempDir()
				configFile := filepath.Join(tmpDir, "config.yaml")

				err := os.WriteFile(configFile, []byte(yaml), 0644)
				require.NoError(t, err)

				return config.LoadOptions{ConfigFile: configFile}
			},
		},
		{
			name: "from environment variables",
			setup: func(t *testing.T) config.LoadOptions {
				// Set all config values via environment variables
				// Single underscore for hierarchy (camelCase keys have no underscores)
				envVars := map[string]string{
					"KHANESH_SERVER_LISTEN":         "0.0.0.0:8080",
					"KHANESH_DATABASE_PATH":         "/data/khanesh.db",
					"KHANESH_INGEST_TEMPPATH":       "/data/staging",
					"KHANESH_INGEST_AUDIOPATH":      "/data/audio",
					"KHANESH_INGEST_DESCRIPTORPATH": "/data/xml",
					"KHANESH_INGEST_MAXFILEBYTES":   "209715200",
					"KHANESH_REMOTE_TYPE":           "sftp",
					"KHANESH_REMOTE_HOST":           "audio.example.com",
					"KHANESH_REMOTE_PORT":           "2222",
					"KHANESH_REMOTE_USER":           "publisher",
					"KHANESH_REMOTE_PASSWORD":       "secret123",
					"KHANESH_REMOTE_IGNOREHOSTKEY":  "true",
					"KHANESH_REMOTE_AUDIOPATH":      "/i/a",
					"KHANESH_REMOTE_DESCRIPTORPATH": "/i/x",
					"KHANESH_CATALOGS_FIRST_DSN":    "postgres://khanesh:pw@db1:5432/catalog",
					"KHANESH_CATALOGS_SECOND_DSN":   "postgres://khanesh:pw@db2:5432/catalog",
					"KHANESH_PUBLISH_WORKERS":       "3",
					"KHANESH_PUBLISH_RETRYINTERVAL": "2h",
					"KHANESH_NOTIFY_WEBHOOKURL":     "https://hub.example.com/api/notifications",
					"KHANESH_NOTIFY_TOKENURL":       "https://hub.example.com/api/users/login",
					"KHANESH_NOTIFY_USERNAME":       "bot",
					"KHANESH_NOTIFY_PASSWORD":       "hunter2",
				}

				for key, value := range envVars {
					t.Setenv(key, value)
				}

				// No config file - Load will use env vars
				return config.LoadOptions{}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.setup(t)

			cfg, err := config.Load(opts)
			require.NoError(t, err, "failed to load config")

			// Server
			assert.Equal(t, "0.0.0.0:8080", cfg.Server.Listen)

			// Database
			assert.Equal(t, "/data/khanesh.db", cfg.Database.Path)

			// Ingest
			assert.Equal(t, "/data/staging", cfg.Ingest.TempPath)
			assert.Equal(t, "/data/audio", cfg.Ingest.AudioPath)
			assert.Equal(t, "/data/xml", cfg.Ingest.DescriptorPath)
			assert.Equal(t, int64(209715200), cfg.Ingest.MaxFileBytes)

			// Remote
			assert.Equal(t, "sftp", cfg.Remote.Type)
			assert.Equal(t, "audio.example.com", cfg.Remote.Host)
			assert.Equal(t, 2222, cfg.Remote.Port)
			assert.Equal(t, "publisher", cfg.Remote.User)
			assert.Equal(t, "secret123", cfg.Remote.Password)
			assert.True(t, cfg.Remote.IgnoreHostKey)
			assert.Equal(t, "/i/a", cfg.Remote.AudioPath)
			assert.Equal(t, "/i/x", cfg.Remote.DescriptorPath)

			// Catalogs
			assert.Equal(t, "postgres://khanesh:pw@db1:5432/catalog", cfg.Catalogs.First.DSN)
			assert.Equal(t, "postgres://khanesh:pw@db2:5432/catalog", cfg.Catalogs.Second.DSN)

			// Publish
			assert.Equal(t, 3, cfg.Publish.Workers)
			assert.Equal(t, 2*time.Hour, cfg.Publish.RetryInterval)

			// Notify
			assert.Equal(t, "https://hub.example.com/api/notifications", cfg.Notify.WebhookURL)
			assert.Equal(t, "https://hub.example.com/api/users/login", cfg.Notify.TokenURL)
			assert.Equal(t, "bot", cfg.Notify.Username)
			assert.Equal(t, "hunter2", cfg.Notify.Password)
			assert.Equal(t, config.DefaultHTTPTimeout, cfg.Notify.HTTPTimeout)
		})
	}
}

func TestLoadWithNoConfigFile(t *testing.T) {
	// When no config file exists and no env vars are set,
	// Load should return defaults without error
	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	// Should have all defaults
	assert.Equal(t, "[::]:8480", cfg.Server.Listen)
	assert.Equal(t, "khanesh.db", cfg.Database.Path)
	assert.Equal(t, "/data/uploads", cfg.Ingest.TempPath)
	assert.Equal(t, 2, cfg.Publish.Workers)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		errContains string
	}{
		{
			name: "remote missing host",
			yaml: `
remote:
  type: sftp
  user: publisher
  password: secret
  ignoreHostKey: true
  audioPath: /i/a
  descriptorPath: /i/x
`,
			errContains: "remote.host is required",
		},
		{
			name: "remote missing user",
			yaml: `
remote:
  type: sftp
  host: audio.example.com
  password: secret
  ignoreHostKey: true
  audioPath: /i/a
  descriptorPath: /i/x
`,
			errContains: "remote.user is required",
		},
		{
			name: "remote missing credentials",
			yaml: `
remote:
  type: sftp
  host: audio.example.com
  user: publisher
  ignoreHostKey: true
  audioPath: /i/a
  descriptorPath: /i/x
`,
			errContains: "remote.password or remote.keyFile is required",
		},
		{
			name: "remote missing host key config",
			yaml: `
remote:
  type: sftp
  host: audio.example.com
  user: publisher
  password: secret
  audioPath: /i/a
  descriptorPath: /i/x
`,
			errContains: "remote.knownHostsFile is required (or set remote.ignoreHostKey to true)",
		},
		{
			name: "remote knownHostsFile and ignoreHostKey mutually exclusive",
			yaml: `
remote:
  type: sftp
  host: audio.example.com
  user: publisher
  password: secret
  knownHostsFile: /path/to/known_hosts
  ignoreHostKey: true
  audioPath: /i/a
  descriptorPath: /i/x
`,
			errContains: "remote.knownHostsFile and remote.ignoreHostKey are mutually exclusive",
		},
		{
			name: "remote unknown type",
			yaml: `
remote:
  type: ftp
  host: audio.example.com
  audioPath: /i/a
  descriptorPath: /i/x
`,
			errContains: `remote.type: unknown backend "ftp"`,
		},
		{
			name: "local remote missing root",
			yaml: `
remote:
  type: local
  audioPath: audio
  descriptorPath: xml
`,
			errContains: "remote.localRoot is required for local remote",
		},
		{
			name: "remote missing publish paths",
			yaml: `
remote:
  type: local
  localRoot: /srv/published
`,
			errContains: "remote.audioPath is required",
		},
		{
			name: "catalogs must be configured as a pair",
			yaml: `
catalogs:
  first:
    dsn: postgres://khanesh:pw@db1:5432/catalog
`,
			errContains: "catalogs.first.dsn and catalogs.second.dsn must be set together",
		},
		{
			name: "notify webhook requires token url",
			yaml: `
notify:
  webhookUrl: https://hub.example.com/api/notifications
`,
			errContains: "notify.tokenUrl is required when notify.webhookUrl is set",
		},
		{
			name:        "unset remote disables publishing without error",
			yaml:        "",
			errContains: "", // No error expected
		},
		{
			name: "multiple validation errors",
			yaml: `
database:
  path: ""
remote:
  type: sftp
  audioPath: /i/a
`,
			errContains: "remote.host is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.yaml), 0644)
			require.NoError(t, err)

			_, err = config.Load(config.LoadOptions{ConfigFile: configFile})

			if tt.errContains == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}
