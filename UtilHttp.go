package gobittrex

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DEFAULT_TIMEOUT   = 15 * time.Second
	MAX_REDIRECT_HOPS = 10
)

var ErrRedirectLoop = errors.New("too many redirects")

// NewHttpRequest sends the request and returns the body whatever the status code is, the exchange
// reports failures inside the body. Transport failures come back as API_ERROR.
func NewHttpRequest(
	client *http.Client,
	reqType,
	reqUrl,
	postData string,
	requstHeaders map[string]string,
) ([]byte, int, error) {
	req, err := http.NewRequest(reqType, reqUrl, strings.NewReader(postData))
	if err != nil {
		return nil, 0, WrapError(API_ERROR, err, "build request failed")
	}
	req.Header.Set(HEADER_USER_AGENT, USER_AGENT)
	for k, v := range requstHeaders {
		req.Header.Add(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		// the query of a signed url carries the api key, keep only the path
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = fmt.Errorf("%s %s: %w", urlErr.Op, req.URL.Path, urlErr.Err)
		}
		if errors.Is(err, ErrRedirectLoop) || strings.Contains(err.Error(), "redirects") {
			return nil, 0, WrapError(API_ERROR, err, "redirect loop")
		}
		return nil, 0, WrapError(API_ERROR, err, "http request failed")
	}
	defer resp.Body.Close()

	bodyData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, WrapError(API_ERROR, err, "read response body failed")
	}

	return bodyData, resp.StatusCode, nil
}

// NewHttpClient builds the client used when APIConfig.HttpClient is nil. Each proxy only serves its
// own scheme, an empty one means direct connection.
func NewHttpClient(httpProxy, httpsProxy string, timeout time.Duration) (*http.Client, error) {
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}

	var proxies = map[string]*url.URL{}
	for scheme, raw := range map[string]string{"http": httpProxy, "https": httpsProxy} {
		if raw == "" {
			continue
		}
		proxyUrl, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s proxy %q: %w", scheme, raw, err)
		}
		proxies[scheme] = proxyUrl
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		return proxies[req.URL.Scheme], nil
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= MAX_REDIRECT_HOPS {
				return ErrRedirectLoop
			}
			return nil
		},
	}, nil
}
