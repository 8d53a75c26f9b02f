package gobittrex

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

/**
 *
 * models about API config
 *
 **/
type APIConfig struct {
	HttpClient   *http.Client // built from the proxies and Timeout when nil
	Endpoint     string
	ApiKey       string
	ApiSecretKey string
	HttpProxy    string
	HttpsProxy   string
	Timeout      time.Duration
	Nonce        NonceSource
	Logger       *logrus.Logger
}

// Init fills the zero fields with defaults. endpoint is the exchange's production url.
func (config *APIConfig) Init(endpoint string) error {
	if config.Endpoint == "" {
		config.Endpoint = endpoint
	}
	if config.HttpClient == nil {
		client, err := NewHttpClient(config.HttpProxy, config.HttpsProxy, config.Timeout)
		if err != nil {
			return err
		}
		config.HttpClient = client
	}
	if config.Nonce == nil {
		config.Nonce = NewClockNonce()
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	return nil
}
