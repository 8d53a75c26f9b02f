package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	. "github.com/deforceHK/gobittrex"
	"github.com/deforceHK/gobittrex/bittrex"
)

type Args struct {
	Market   string
	Currency string
	Book     string
}

type Command struct {
	Raw bool

	client *bittrex.Bittrex
	out    io.Writer
}

func NewCommand(config *APIConfig, out io.Writer) (*Command, error) {
	client, err := bittrex.New(config)
	if err != nil {
		return nil, err
	}
	return &Command{client: client, out: out}, nil
}

func parseBookType(book string) (OrderBookType, error) {
	for _, bookType := range []OrderBookType{BOOK_BUY, BOOK_SELL, BOOK_BOTH} {
		if bookType.String() == book {
			return bookType, nil
		}
	}
	return 0, fmt.Errorf("unknown order book side %q", book)
}

func (c *Command) Run(name string, args Args) error {
	var records []fmt.Stringer
	var resp []byte
	var err error

	switch name {
	case "markets":
		var markets []bittrex.Market
		markets, resp, err = c.client.Public.GetMarkets()
		records = stringers(markets)
	case "currencies":
		var currencies []bittrex.Currency
		currencies, resp, err = c.client.Public.GetCurrencies()
		records = stringers(currencies)
	case "ticker":
		var ticker *bittrex.Ticker
		ticker, resp, err = c.client.Public.GetTicker(args.Market)
		if ticker != nil {
			records = []fmt.Stringer{ticker}
		}
	case "summary":
		var summary *bittrex.MarketSummary
		summary, resp, err = c.client.Public.GetMarketSummary(args.Market)
		if summary != nil {
			records = []fmt.Stringer{summary}
		}
	case "summaries":
		var summaries []bittrex.MarketSummary
		summaries, resp, err = c.client.Public.GetMarketSummaries()
		records = stringers(summaries)
	case "book":
		bookType, parseErr := parseBookType(args.Book)
		if parseErr != nil {
			return parseErr
		}
		var book *bittrex.OrderBook
		book, resp, err = c.client.Public.GetOrderBook(args.Market, bookType)
		if book != nil {
			records = append(records, book)
			for _, entry := range book.Buy {
				records = append(records, sided{"buy", entry})
			}
			for _, entry := range book.Sell {
				records = append(records, sided{"sell", entry})
			}
		}
	case "history":
		var trades []bittrex.Trade
		trades, resp, err = c.client.Public.GetMarketHistory(args.Market)
		records = stringers(trades)
	case "balances":
		var balances []bittrex.Balance
		balances, resp, err = c.client.Account.GetBalances()
		records = stringers(balances)
	case "balance":
		var balance *bittrex.Balance
		balance, resp, err = c.client.Account.GetBalance(args.Currency)
		if balance != nil {
			records = []fmt.Stringer{balance}
		}
	case "orders":
		var orders []bittrex.OpenOrder
		orders, resp, err = c.client.Trading.GetOpenOrdersByMarket(args.Market)
		records = stringers(orders)
	default:
		return fmt.Errorf("unknown command %q", name)
	}

	if err != nil {
		if IsKind(err, NO_RESULTS) {
			_, werr := fmt.Fprintln(c.out, aurora.Yellow(err.Error()))
			return werr
		}
		return err
	}

	if c.Raw {
		_, err = fmt.Fprintln(c.out, string(resp))
		return err
	}
	return c.print(name, records)
}

func (c *Command) print(name string, records []fmt.Stringer) error {
	if _, err := fmt.Fprintf(c.out, "%s %d\n", aurora.Bold(aurora.Cyan(name)), len(records)); err != nil {
		return err
	}
	for _, record := range records {
		if _, err := fmt.Fprintln(c.out, record.String()); err != nil {
			return err
		}
	}
	return nil
}

type sided struct {
	side  string
	entry bittrex.BookEntry
}

func (s sided) String() string {
	if s.side == "buy" {
		return fmt.Sprintf("%s %s", aurora.Green("buy "), s.entry)
	}
	return fmt.Sprintf("%s %s", aurora.Red("sell"), s.entry)
}

func stringers[T fmt.Stringer](records []T) []fmt.Stringer {
	out := make([]fmt.Stringer, 0, len(records))
	for _, record := range records {
		out = append(out, record)
	}
	return out
}
