package gobittrex

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"
)

// GetParamHmacSHA512Sign returns the uppercase hex HMAC-SHA512 of payload keyed by secret.
func GetParamHmacSHA512Sign(secret, payload string) (string, error) {
	mac := hmac.New(sha512.New, []byte(secret))
	if _, err := mac.Write([]byte(payload)); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil))), nil
}

// SignRequest appends apikey and nonce to reqUrl and signs the resulting url.
// The returned url is the one that has to be fetched, the sign goes into the apisign header.
func SignRequest(reqUrl, apiKey, apiSecret string, nonce int64) (string, string) {
	sep := "&"
	if !strings.Contains(reqUrl, "?") {
		sep = "?"
	}
	signedUrl := fmt.Sprintf(
		"%s%s%s=%s&%s=%d",
		reqUrl, sep, PARAM_APIKEY, url.QueryEscape(apiKey), PARAM_NONCE, nonce,
	)

	// hmac over a byte slice never fails
	sign, _ := GetParamHmacSHA512Sign(apiSecret, signedUrl)
	return signedUrl, sign
}

// NonceSource hands out the nonce of a signed request.
type NonceSource interface {
	Nonce() int64
}

type NonceFunc func() int64

func (f NonceFunc) Nonce() int64 {
	return f()
}

// clockNonce is nanosecond time, bumped by one whenever two callers read the same clock value.
type clockNonce struct {
	last int64
	now  func() time.Time
}

func NewClockNonce() NonceSource {
	return &clockNonce{now: time.Now}
}

func (c *clockNonce) Nonce() int64 {
	for {
		last := atomic.LoadInt64(&c.last)
		next := c.now().UnixNano()
		if next <= last {
			next = last + 1
		}
		if atomic.CompareAndSwapInt64(&c.last, last, next) {
			return next
		}
	}
}
