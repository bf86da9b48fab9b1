package testing_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/config"
	testutil "github.com/khanesh/khanesh/internal/testing"
)

func TestValidConfig(t *testing.T) {
	cfg := testutil.ValidConfig(t)

	// Write the config to a temp file and load it to verify it's valid
	yamlContent := testutil.ConfigToYAML(t, cfg)
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0600))

	loaded, err := config.Load(config.LoadOptions{ConfigFile: tmpFile})
	require.NoError(t, err, "ValidConfig should produce a valid config")

	// Verify key fields are present
	assert.NotEmpty(t, loaded.Server.Listen)
	assert.NotEmpty(t, loaded.Database.Path)
	assert.NotEmpty(t, loaded.Ingest.TempPath)
	assert.NotEmpty(t, loaded.Ingest.AudioPath)
	assert.NotEmpty(t, loaded.Ingest.DescriptorPath)

	// Verify remote has required fields
	assert.Equal(t, "sftp", loaded.Remote.Type)
	assert.NotEmpty(t, loaded.Remote.Host)
	assert.NotEmpty(t, loaded.Remote.User)
	assert.NotEmpty(t, loaded.Remote.KeyFile)

	// Verify catalogs come as a pair
	assert.NotEmpty(t, loaded.Catalogs.First.DSN)
	assert.NotEmpty(t, loaded.Catalogs.Second.DSN)
}

func TestValidConfigWithKnownHosts(t *testing.T) {
	cfg := testutil.ValidConfigWithKnownHosts(t)

	// Write the config to a temp file and load it to verify it's valid
	yamlContent := testutil.ConfigToYAML(t, cfg)
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0600))

	loaded, err := config.Load(config.LoadOptions{ConfigFile: tmpFile})
	require.NoError(t, err, "ValidConfigWithKnownHosts should produce a valid config")

	// Verify SSH uses known_hosts instead of ignoreHostKey
	assert.False(t, loaded.Remote.IgnoreHostKey)
	assert.NotEmpty(t, loaded.Remote.KnownHostsFile)
}

func TestValidConfigMinimal(t *testing.T) {
	cfg := testutil.ValidConfigMinimal(t)

	// Write the config to a temp file and load it to verify it's valid
	yamlContent := testutil.ConfigToYAML(t, cfg)
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0600))

	loaded, err := config.Load(config.LoadOptions{ConfigFile: tmpFile})
	require.NoError(t, err, "ValidConfigMinimal should produce a valid config")

	// Unset remote means publishing is disabled
	assert.Empty(t, loaded.Remote.Host)
	assert.Empty(t, loaded.Catalogs.First.DSN)
}

func TestCreateTestSSHFiles(t *testing.T) {
	files := testutil.CreateTestSSHFiles(t)

	// Verify key file exists with correct permissions
	info, err := os.Stat(files.KeyFile)
	require.NoError(t, err, "key file should exist")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "key file should have 0600 permissions")

	// Verify known_hosts file exists
	_, err = os.Stat(files.KnownHostsFile)
	require.NoError(t, err, "known_hosts file should exist")

	// Verify temp dir is the parent
	assert.Equal(t, files.TempDir, filepath.Dir(files.KeyFile))
	assert.Equal(t, files.TempDir, filepath.Dir(files.KnownHostsFile))
}

func TestConfigToYAML(t *testing.T) {
	cfg := testutil.ValidConfig(t)
	yamlContent := testutil.ConfigToYAML(t, cfg)

	// Verify YAML contains expected keys
	assert.Contains(t, yamlContent, "server:")
	assert.Contains(t, yamlContent, "ingest:")
	assert.Contains(t, yamlContent, "remote:")
	assert.Contains(t, yamlContent, "catalogs:")
}
