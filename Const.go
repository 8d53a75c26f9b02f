package gobittrex

const (
	GO_BIRTHDAY = "2006-01-02 15:04:05"

	// the exchange sends timestamps without zone, fraction is optional
	BITTREX_TIME_LAYOUT = "2006-01-02T15:04:05.999999999"
)

// exchanges const
const (
	BITTREX = "bittrex"
)

// http headers
const (
	HEADER_APISIGN    = "apisign"
	HEADER_USER_AGENT = "User-Agent"

	USER_AGENT = "gobittrex/1.0"
)

// injected query params of signed requests
const (
	PARAM_APIKEY = "apikey"
	PARAM_NONCE  = "nonce"
)

var orderBookTypeSymbol = [...]string{"buy", "sell", "both"}

type OrderBookType int

const (
	BOOK_BUY OrderBookType = iota
	BOOK_SELL
	BOOK_BOTH
)

func (obt OrderBookType) String() string {
	if obt < BOOK_BUY || obt > BOOK_BOTH {
		return "unknown"
	}
	return orderBookTypeSymbol[obt]
}

var shapeSymbol = [...]string{"none", "legacy_list", "optional_single", "optional_list"}

// Shape is the declared layout of an endpoint's result field.
type Shape int

const (
	SHAPE_NONE            Shape = iota // result ignored, only success matters
	SHAPE_LEGACY_LIST                  // [T], exactly one element expected
	SHAPE_OPTIONAL_SINGLE              // T or null
	SHAPE_OPTIONAL_LIST                // [T] or null
)

func (s Shape) String() string {
	if s < SHAPE_NONE || s > SHAPE_OPTIONAL_LIST {
		return "unknown"
	}
	return shapeSymbol[s]
}
