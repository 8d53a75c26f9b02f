package gobittrex

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves the test into an empty directory so no .env or gobittrex.yaml of the developer leaks in.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadAPIConfig_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TESTBTX_API_KEY", "key")
	t.Setenv("TESTBTX_API_SECRET", "secret")
	t.Setenv("TESTBTX_HTTPS_PROXY", "socks5://127.0.0.1:1090")
	t.Setenv("TESTBTX_TIMEOUT", "30")

	config, err := LoadAPIConfig("TESTBTX")
	require.NoError(t, err)
	assert.Equal(t, "key", config.ApiKey)
	assert.Equal(t, "secret", config.ApiSecretKey)
	assert.Equal(t, "socks5://127.0.0.1:1090", config.HttpsProxy)
	assert.Equal(t, "", config.HttpProxy)
	assert.Equal(t, "", config.Endpoint)
	assert.Equal(t, 30*time.Second, config.Timeout)
}

func TestLoadAPIConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := LoadAPIConfig("NOTSETBTX")
	require.NoError(t, err)
	assert.Equal(t, DEFAULT_TIMEOUT, config.Timeout)
	assert.Empty(t, config.ApiKey)
}

func TestLoadAPIConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "api_key: filekey\nendpoint: http://127.0.0.1:9999/api/v1.1\ntimeout: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_NAME+".yaml"), []byte(yaml), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FILEBTX_API_SECRET=dotenv\n"), 0o600))
	t.Setenv("FILEBTX_API_KEY", "envkey")
	t.Cleanup(func() { _ = os.Unsetenv("FILEBTX_API_SECRET") })

	config, err := LoadAPIConfig("FILEBTX")
	require.NoError(t, err)
	assert.Equal(t, "envkey", config.ApiKey)
	assert.Equal(t, "dotenv", config.ApiSecretKey)
	assert.Equal(t, "http://127.0.0.1:9999/api/v1.1", config.Endpoint)
	assert.Equal(t, 5*time.Second, config.Timeout)
}

func TestLoadAPIConfig_NegativeTimeout(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NEGBTX_TIMEOUT", "-1")

	_, err := LoadAPIConfig("NEGBTX")
	assert.Error(t, err)
}

func TestAPIConfig_Init(t *testing.T) {
	config := &APIConfig{}
	require.NoError(t, config.Init("https://bittrex.com/api/v1.1"))
	assert.Equal(t, "https://bittrex.com/api/v1.1", config.Endpoint)
	assert.NotNil(t, config.HttpClient)
	assert.NotNil(t, config.Nonce)
	assert.NotNil(t, config.Logger)

	custom := &APIConfig{Endpoint: "http://127.0.0.1:1/api"}
	require.NoError(t, custom.Init("https://bittrex.com/api/v1.1"))
	assert.Equal(t, "http://127.0.0.1:1/api", custom.Endpoint)

	broken := &APIConfig{HttpProxy: "http://[::1"}
	assert.Error(t, broken.Init("https://bittrex.com/api/v1.1"))
}
