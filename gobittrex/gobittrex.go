package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"

	. "github.com/deforceHK/gobittrex"
)

var cliMarket = flag.String("market", "BTC-LTC", "Input the market, base currency first. ")
var cliCurrency = flag.String("currency", "BTC", "Input the currency. ")
var cliBook = flag.String("book", "both", "Input the order book side, buy sell or both. ")
var cliPrefix = flag.String("prefix", DEFAULT_PREFIX, "Input the env prefix of the api config. ")
var cliRaw = flag.Bool("raw", false, "Print the raw response body. ")
var cliVerbose = flag.Bool("verbose", false, "Log every request. ")

var sCommand = map[string]string{
	"markets":    "all markets of the exchange",
	"currencies": "all currencies of the exchange",
	"ticker":     "ticker of the market",
	"summary":    "24h summary of the market",
	"summaries":  "24h summary of all markets",
	"book":       "order book of the market",
	"history":    "latest trades of the market",
	"balances":   "balances of the account, needs api key",
	"balance":    "balance of the currency, needs api key",
	"orders":     "open orders of the market, needs api key",
}

func main() {
	flag.Parse()
	paramCount := flag.NArg()
	firstParam := ""
	if paramCount != 0 {
		firstParam = flag.Arg(0)
	}

	_, exist := sCommand[firstParam]
	if paramCount == 0 || !exist {
		flag.PrintDefaults()
		for name, usage := range sCommand {
			fmt.Fprintf(os.Stderr, "  %s\n    \t%s\n", name, usage)
		}
		os.Exit(2)
	}

	pair, err := NewPair(*cliMarket, PAIR_SEP)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(2)
	}

	config, err := LoadAPIConfig(*cliPrefix)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *cliVerbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	config.Logger = logger

	c, err := NewCommand(config, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}
	c.Raw = *cliRaw

	if err := c.Run(firstParam, Args{Market: pair.String(), Currency: *cliCurrency, Book: *cliBook}); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Bold(aurora.Red(err.Error())))
		os.Exit(1)
	}
}
