package bittrex

import (
	. "github.com/deforceHK/gobittrex"
)

type Public struct {
	*Bittrex
}

func (bittrex *Public) GetMarkets() ([]Market, []byte, error) {
	return fetchAll[Market](bittrex.Bittrex, GET_MARKETS, nil)
}

func (bittrex *Public) GetCurrencies() ([]Currency, []byte, error) {
	return fetchAll[Currency](bittrex.Bittrex, GET_CURRENCIES, nil)
}

// GetTicker market like BTC-LTC, base currency first.
func (bittrex *Public) GetTicker(market string) (*Ticker, []byte, error) {
	return fetchOne[Ticker](bittrex.Bittrex, GET_TICKER, NewParams("market", market))
}

func (bittrex *Public) GetMarketSummaries() ([]MarketSummary, []byte, error) {
	return fetchAll[MarketSummary](bittrex.Bittrex, GET_MARKET_SUMMARIES, nil)
}

// GetMarketSummary the exchange answers with a one element list, anything else is an error.
func (bittrex *Public) GetMarketSummary(market string) (*MarketSummary, []byte, error) {
	return fetchOne[MarketSummary](bittrex.Bittrex, GET_MARKET_SUMMARY, NewParams("market", market))
}

// GetOrderBook with BOOK_BUY or BOOK_SELL the exchange sends a bare list of entries,
// it is put on the matching side and the other side stays empty.
func (bittrex *Public) GetOrderBook(market string, bookType OrderBookType) (*OrderBook, []byte, error) {
	params := NewParams("market", market, "type", bookType.String())

	switch bookType {
	case BOOK_BOTH:
		book, resp, err := fetchOne[OrderBook](bittrex.Bittrex, GET_ORDER_BOOK, params)
		if err != nil {
			return nil, resp, err
		}
		if book.Buy == nil {
			book.Buy = make([]BookEntry, 0)
		}
		if book.Sell == nil {
			book.Sell = make([]BookEntry, 0)
		}
		return book, resp, nil

	case BOOK_BUY, BOOK_SELL:
		entries, resp, err := fetchAll[BookEntry](bittrex.Bittrex, GET_ORDER_BOOK_SIDE, params)
		if err != nil {
			return nil, resp, err
		}
		book := &OrderBook{Buy: make([]BookEntry, 0), Sell: make([]BookEntry, 0)}
		if bookType == BOOK_BUY {
			book.Buy = entries
		} else {
			book.Sell = entries
		}
		return book, resp, nil

	default:
		return nil, nil, NewError(API_ERROR, "unknown order book type %d", int(bookType))
	}
}

// GetMarketHistory latest trades of the market.
func (bittrex *Public) GetMarketHistory(market string) ([]Trade, []byte, error) {
	return fetchAll[Trade](bittrex.Bittrex, GET_MARKET_HISTORY, NewParams("market", market))
}
