package gobittrex

import (
	"net/url"
	"strings"
)

type Param struct {
	Key   string
	Value string
}

// Params is an ordered query. url.Values sorts keys on Encode, the exchange docs and the signed
// URL read better in declaration order, so the order is kept here.
type Params []Param

func NewParams(kv ...string) Params {
	params := make(Params, 0, len(kv)/2+2)
	for i := 0; i+1 < len(kv); i += 2 {
		params = params.Set(kv[i], kv[i+1])
	}
	return params
}

// Set replaces the value of an existing key in place, otherwise appends.
func (p Params) Set(key, value string) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var buf strings.Builder
	for i, param := range p {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(param.Key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(param.Value))
	}
	return buf.String()
}

// BuildUrl joins endpoint, uri and the encoded params. Without params no '?' is added.
func BuildUrl(endpoint, uri string, params Params) string {
	reqUrl := strings.TrimSuffix(endpoint, "/") + uri
	if query := params.Encode(); query != "" {
		reqUrl += "?" + query
	}
	return reqUrl
}
