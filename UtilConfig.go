package gobittrex

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	CONFIG_NAME    = "gobittrex"
	DEFAULT_PREFIX = "BITTREX"
)

// LoadAPIConfig reads <PREFIX>_API_KEY, _API_SECRET, _ENDPOINT, _HTTP_PROXY, _HTTPS_PROXY and _TIMEOUT
// (seconds) from the environment, an optional .env file and an optional gobittrex.yaml in the working
// directory. The environment wins over the file.
func LoadAPIConfig(prefix string) (*APIConfig, error) {
	if prefix == "" {
		prefix = DEFAULT_PREFIX
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName(CONFIG_NAME)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_key", "")
	v.SetDefault("api_secret", "")
	v.SetDefault("endpoint", "")
	v.SetDefault("http_proxy", "")
	v.SetDefault("https_proxy", "")
	v.SetDefault("timeout", int(DEFAULT_TIMEOUT/time.Second))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	timeout := v.GetInt("timeout")
	if timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %d", timeout)
	}

	return &APIConfig{
		Endpoint:     v.GetString("endpoint"),
		ApiKey:       v.GetString("api_key"),
		ApiSecretKey: v.GetString("api_secret"),
		HttpProxy:    v.GetString("http_proxy"),
		HttpsProxy:   v.GetString("https_proxy"),
		Timeout:      time.Duration(timeout) * time.Second,
	}, nil
}
