package gobittrex

import (
	"fmt"
	"strings"
)

const PAIR_SEP = "-"

type Pair struct {
	//The currency prices are quoted in, written first by the exchange: BTC in BTC-LTC.
	Base string
	//The traded currency.
	Market string
}

// NewPair splits symbol on sepChar, the base currency comes first.
func NewPair(symbol string, sepChar string) (Pair, error) {
	currencys := strings.Split(strings.TrimSpace(symbol), sepChar)
	if len(currencys) != 2 || currencys[0] == "" || currencys[1] == "" {
		return Pair{}, fmt.Errorf("invalid market %q, want BASE%sMARKET", symbol, sepChar)
	}
	return Pair{Base: strings.ToUpper(currencys[0]), Market: strings.ToUpper(currencys[1])}, nil
}

func (pair Pair) String() string {
	return pair.ToSymbol(PAIR_SEP, true)
}

func (pair Pair) ToSymbol(joinChar string, isUpper bool) string {
	rawSymbol := strings.Join([]string{pair.Base, pair.Market}, joinChar)
	if isUpper {
		return strings.ToUpper(rawSymbol)
	}
	return strings.ToLower(rawSymbol)
}
