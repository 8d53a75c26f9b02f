package bittrex

import (
	"errors"

	"github.com/sirupsen/logrus"

	. "github.com/deforceHK/gobittrex"
)

const (
	ENDPOINT = "https://bittrex.com/api/v1.1"
)

type endpoint struct {
	path    string
	private bool
	shape   Shape
}

/* Rest endpoints */
var (
	GET_MARKETS          = endpoint{"/public/getmarkets", false, SHAPE_OPTIONAL_LIST}
	GET_CURRENCIES       = endpoint{"/public/getcurrencies", false, SHAPE_OPTIONAL_LIST}
	GET_TICKER           = endpoint{"/public/getticker", false, SHAPE_OPTIONAL_SINGLE}
	GET_MARKET_SUMMARIES = endpoint{"/public/getmarketsummaries", false, SHAPE_OPTIONAL_LIST}
	GET_MARKET_SUMMARY   = endpoint{"/public/getmarketsummary", false, SHAPE_LEGACY_LIST}
	GET_ORDER_BOOK       = endpoint{"/public/getorderbook", false, SHAPE_OPTIONAL_SINGLE}
	GET_ORDER_BOOK_SIDE  = endpoint{"/public/getorderbook", false, SHAPE_OPTIONAL_LIST}
	GET_MARKET_HISTORY   = endpoint{"/public/getmarkethistory", false, SHAPE_OPTIONAL_LIST}

	BUY_LIMIT       = endpoint{"/market/buylimit", true, SHAPE_OPTIONAL_SINGLE}
	SELL_LIMIT      = endpoint{"/market/selllimit", true, SHAPE_OPTIONAL_SINGLE}
	CANCEL_ORDER    = endpoint{"/market/cancel", true, SHAPE_NONE}
	GET_OPEN_ORDERS = endpoint{"/market/getopenorders", true, SHAPE_OPTIONAL_LIST}

	GET_BALANCES           = endpoint{"/account/getbalances", true, SHAPE_OPTIONAL_LIST}
	GET_BALANCE            = endpoint{"/account/getbalance", true, SHAPE_OPTIONAL_SINGLE}
	GET_DEPOSIT_ADDRESS    = endpoint{"/account/getdepositaddress", true, SHAPE_OPTIONAL_SINGLE}
	WITHDRAW               = endpoint{"/account/withdraw", true, SHAPE_OPTIONAL_SINGLE}
	GET_ORDER              = endpoint{"/account/getorder", true, SHAPE_OPTIONAL_SINGLE}
	GET_ORDER_HISTORY      = endpoint{"/account/getorderhistory", true, SHAPE_OPTIONAL_LIST}
	GET_WITHDRAWAL_HISTORY = endpoint{"/account/getwithdrawalhistory", true, SHAPE_OPTIONAL_LIST}
	GET_DEPOSIT_HISTORY    = endpoint{"/account/getdeposithistory", true, SHAPE_OPTIONAL_LIST}
)

type Bittrex struct {
	config *APIConfig

	Public  *Public
	Trading *Trading
	Account *Account
}

// New fills the zero fields of config with defaults, see APIConfig.Init.
func New(config *APIConfig) (*Bittrex, error) {
	if err := config.Init(ENDPOINT); err != nil {
		return nil, err
	}

	bittrex := &Bittrex{config: config}
	bittrex.Public = &Public{bittrex}
	bittrex.Trading = &Trading{bittrex}
	bittrex.Account = &Account{bittrex}
	return bittrex, nil
}

func (bittrex *Bittrex) GetExchangeName() string {
	return BITTREX
}

// DoRequest fetches a public endpoint and decodes the envelope.
func (bittrex *Bittrex) DoRequest(uri string, params Params) (*Envelope, []byte, error) {
	reqUrl := BuildUrl(bittrex.config.Endpoint, uri, params)
	return bittrex.fetch(reqUrl, nil)
}

// DoSignRequest adds apikey and nonce, signs the full url and sends the sign in the apisign header.
func (bittrex *Bittrex) DoSignRequest(uri string, params Params) (*Envelope, []byte, error) {
	signedUrl, sign := SignRequest(
		BuildUrl(bittrex.config.Endpoint, uri, params),
		bittrex.config.ApiKey,
		bittrex.config.ApiSecretKey,
		bittrex.config.Nonce.Nonce(),
	)
	return bittrex.fetch(signedUrl, map[string]string{HEADER_APISIGN: sign})
}

func (bittrex *Bittrex) fetch(reqUrl string, headers map[string]string) (*Envelope, []byte, error) {
	resp, statusCode, err := NewHttpRequest(
		bittrex.config.HttpClient,
		"GET",
		reqUrl,
		"",
		headers,
	)
	if err != nil {
		return nil, nil, err
	}

	env, err := DecodeEnvelope(resp)
	if err != nil {
		if statusCode != 200 {
			return nil, resp, WrapError(JSON_ERROR, errors.Unwrap(err), "http status %d", statusCode)
		}
		return nil, resp, err
	}
	return env, resp, nil
}

func (bittrex *Bittrex) call(ep endpoint, params Params) (*Envelope, []byte, error) {
	log := bittrex.config.Logger.WithFields(logrus.Fields{
		"exchange": BITTREX,
		"path":     ep.path,
		"private":  ep.private,
		"shape":    ep.shape.String(),
	})
	log.Debug("bittrex request")

	var env *Envelope
	var resp []byte
	var err error
	if ep.private {
		env, resp, err = bittrex.DoSignRequest(ep.path, params)
	} else {
		env, resp, err = bittrex.DoRequest(ep.path, params)
	}
	if err != nil {
		log.WithError(err).Debug("bittrex request failed")
		return nil, resp, err
	}
	if !env.Success {
		log.WithField("message", env.Message).Debug("bittrex rejected the request")
	}
	return env, resp, nil
}

func fetchOne[T any](bittrex *Bittrex, ep endpoint, params Params) (*T, []byte, error) {
	env, resp, err := bittrex.call(ep, params)
	if err != nil {
		return nil, resp, err
	}
	result, err := NormalizeSingle[T](env, ep.shape)
	if err != nil {
		return nil, resp, err
	}
	return result, resp, nil
}

func fetchAll[T any](bittrex *Bittrex, ep endpoint, params Params) ([]T, []byte, error) {
	env, resp, err := bittrex.call(ep, params)
	if err != nil {
		return nil, resp, err
	}
	results, err := NormalizeList[T](env)
	if err != nil {
		return nil, resp, err
	}
	return results, resp, nil
}

func fetchAck(bittrex *Bittrex, ep endpoint, params Params) ([]byte, error) {
	env, resp, err := bittrex.call(ep, params)
	if err != nil {
		return resp, err
	}
	return resp, NormalizeAck(env)
}
