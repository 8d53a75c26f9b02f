package bittrex

import (
	. "github.com/deforceHK/gobittrex"
)

type Trading struct {
	*Bittrex
}

// BuyLimit places a limit buy order, the returned Identifier holds the new order's uuid.
func (bittrex *Trading) BuyLimit(market string, quantity, rate float64) (*Identifier, []byte, error) {
	return bittrex.placeLimit(BUY_LIMIT, market, quantity, rate)
}

// SellLimit places a limit sell order.
func (bittrex *Trading) SellLimit(market string, quantity, rate float64) (*Identifier, []byte, error) {
	return bittrex.placeLimit(SELL_LIMIT, market, quantity, rate)
}

func (bittrex *Trading) placeLimit(ep endpoint, market string, quantity, rate float64) (*Identifier, []byte, error) {
	q, err := FloatToString(quantity)
	if err != nil {
		return nil, nil, err
	}
	r, err := FloatToString(rate)
	if err != nil {
		return nil, nil, err
	}

	params := NewParams("market", market, "quantity", q, "rate", r)
	return fetchOne[Identifier](bittrex.Bittrex, ep, params)
}

// CancelOrder only reports whether the exchange accepted the cancel.
func (bittrex *Trading) CancelOrder(orderId string) ([]byte, error) {
	return fetchAck(bittrex.Bittrex, CANCEL_ORDER, NewParams("uuid", orderId))
}

func (bittrex *Trading) GetOpenOrders() ([]OpenOrder, []byte, error) {
	return fetchAll[OpenOrder](bittrex.Bittrex, GET_OPEN_ORDERS, nil)
}

func (bittrex *Trading) GetOpenOrdersByMarket(market string) ([]OpenOrder, []byte, error) {
	return fetchAll[OpenOrder](bittrex.Bittrex, GET_OPEN_ORDERS, NewParams("market", market))
}
