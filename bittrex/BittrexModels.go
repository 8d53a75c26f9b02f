package bittrex

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	. "github.com/deforceHK/gobittrex"
)

/**
 * models about market
 **/

type Market struct {
	MarketCurrency     string          `json:"MarketCurrency"`
	BaseCurrency       string          `json:"BaseCurrency"`
	MarketCurrencyLong string          `json:"MarketCurrencyLong"`
	BaseCurrencyLong   string          `json:"BaseCurrencyLong"`
	MinTradeSize       decimal.Decimal `json:"MinTradeSize"`
	MarketName         string          `json:"MarketName"`
	IsActive           bool            `json:"IsActive"`
	Created            Timestamp       `json:"Created"`
}

func (m Market) String() string {
	return fmt.Sprintf("%s (Min. Trade Size: %s)", m.MarketName, m.MinTradeSize)
}

type Currency struct {
	Currency        string          `json:"Currency"`
	CurrencyLong    string          `json:"CurrencyLong"`
	MinConfirmation int             `json:"MinConfirmation"`
	TxFee           decimal.Decimal `json:"TxFee"`
	IsActive        bool            `json:"IsActive"`
	CoinType        *string         `json:"CoinType"`
	BaseAddress     *string         `json:"BaseAddress"`
	Notice          *string         `json:"Notice"`
}

func (c Currency) String() string {
	return fmt.Sprintf("%s (Min. Confirmations: %d, Tx Fee: %s)", c.Currency, c.MinConfirmation, c.TxFee)
}

type Ticker struct {
	Bid  decimal.Decimal `json:"Bid"`
	Ask  decimal.Decimal `json:"Ask"`
	Last decimal.Decimal `json:"Last"`
}

func (t Ticker) String() string {
	return fmt.Sprintf("(Ask: %s, Bid: %s, Last: %s)", t.Ask, t.Bid, t.Last)
}

type MarketSummary struct {
	MarketName        string          `json:"MarketName"`
	High              decimal.Decimal `json:"High"`
	Low               decimal.Decimal `json:"Low"`
	Volume            decimal.Decimal `json:"Volume"`
	Last              decimal.Decimal `json:"Last"`
	BaseVolume        decimal.Decimal `json:"BaseVolume"`
	TimeStamp         Timestamp       `json:"TimeStamp"`
	Bid               decimal.Decimal `json:"Bid"`
	Ask               decimal.Decimal `json:"Ask"`
	OpenBuyOrders     int             `json:"OpenBuyOrders"`
	OpenSellOrders    int             `json:"OpenSellOrders"`
	PrevDay           decimal.Decimal `json:"PrevDay"`
	Created           Timestamp       `json:"Created"`
	DisplayMarketName *string         `json:"DisplayMarketName"`
}

func (s MarketSummary) String() string {
	return fmt.Sprintf("%s (High: %s, Low: %s, Volume: %s)", s.MarketName, s.High, s.Low, s.Volume)
}

type BookEntry struct {
	Quantity decimal.Decimal `json:"Quantity"`
	Rate     decimal.Decimal `json:"Rate"`
}

func (e BookEntry) String() string {
	return fmt.Sprintf("(Quantity: %s, Rate: %s)", e.Quantity, e.Rate)
}

type OrderBook struct {
	Buy  []BookEntry `json:"buy"`
	Sell []BookEntry `json:"sell"`
}

func (ob OrderBook) String() string {
	return fmt.Sprintf("(Buy Quantity: %d, Sell Quantity: %d)", len(ob.Buy), len(ob.Sell))
}

// record
type Trade struct {
	Id        int64           `json:"Id"`
	TimeStamp Timestamp       `json:"TimeStamp"`
	Quantity  decimal.Decimal `json:"Quantity"`
	Price     decimal.Decimal `json:"Price"`
	Total     decimal.Decimal `json:"Total"`
	FillType  string          `json:"FillType"`
	OrderType string          `json:"OrderType"`
}

func (t Trade) String() string {
	return fmt.Sprintf("ID: %d (Quantity: %s, Price: %s, Total: %s)", t.Id, t.Quantity, t.Price, t.Total)
}

/**
 * models about trade
 **/

// Identifier wraps the uuid the exchange generates for a new order or withdrawal.
type Identifier struct {
	UUID uuid.UUID `json:"uuid"`
}

func (id Identifier) String() string {
	return id.UUID.String()
}

type OpenOrder struct {
	Uuid              *string             `json:"Uuid"`
	OrderUuid         uuid.UUID           `json:"OrderUuid"`
	Exchange          string              `json:"Exchange"`
	OrderType         string              `json:"OrderType"`
	Quantity          decimal.Decimal     `json:"Quantity"`
	QuantityRemaining decimal.Decimal     `json:"QuantityRemaining"`
	Limit             decimal.Decimal     `json:"Limit"`
	CommissionPaid    decimal.Decimal     `json:"CommissionPaid"`
	Price             decimal.Decimal     `json:"Price"`
	PricePerUnit      decimal.NullDecimal `json:"PricePerUnit"`
	Opened            Timestamp           `json:"Opened"`
	Closed            *Timestamp          `json:"Closed"`
	CancelInitiated   bool                `json:"CancelInitiated"`
	ImmediateOrCancel bool                `json:"ImmediateOrCancel"`
	IsConditional     bool                `json:"IsConditional"`
	Condition         *string             `json:"Condition"`
	ConditionTarget   *string             `json:"ConditionTarget"`
}

func (o OpenOrder) String() string {
	return fmt.Sprintf(
		"Uuid: %s (Exchange: %s, Order Type: %s, Quantity: %s, Limit: %s)",
		o.OrderUuid, o.Exchange, o.OrderType, o.Quantity, o.Limit,
	)
}

type HistoryOrder struct {
	OrderUuid         uuid.UUID           `json:"OrderUuid"`
	Exchange          string              `json:"Exchange"`
	TimeStamp         Timestamp           `json:"TimeStamp"`
	OrderType         string              `json:"OrderType"`
	Limit             decimal.Decimal     `json:"Limit"`
	Quantity          decimal.Decimal     `json:"Quantity"`
	QuantityRemaining decimal.Decimal     `json:"QuantityRemaining"`
	Commission        decimal.Decimal     `json:"Commission"`
	Price             decimal.Decimal     `json:"Price"`
	PricePerUnit      decimal.NullDecimal `json:"PricePerUnit"`
	IsConditional     bool                `json:"IsConditional"`
	Condition         *string             `json:"Condition"`
	ConditionTarget   *string             `json:"ConditionTarget"`
	ImmediateOrCancel bool                `json:"ImmediateOrCancel"`
}

func (o HistoryOrder) String() string {
	return fmt.Sprintf(
		"Uuid: %s (Exchange: %s, Type: %s, Quantity: %s, Limit: %s)",
		o.OrderUuid, o.Exchange, o.OrderType, o.Quantity, o.Limit,
	)
}

type Order struct {
	AccountId                  *string             `json:"AccountId"`
	OrderUuid                  uuid.UUID           `json:"OrderUuid"`
	Exchange                   string              `json:"Exchange"`
	Type                       string              `json:"Type"`
	Quantity                   decimal.Decimal     `json:"Quantity"`
	QuantityRemaining          decimal.Decimal     `json:"QuantityRemaining"`
	Limit                      decimal.Decimal     `json:"Limit"`
	Reserved                   decimal.Decimal     `json:"Reserved"`
	ReserveRemaining           decimal.Decimal     `json:"ReserveRemaining"`
	CommissionReserved         decimal.Decimal     `json:"CommissionReserved"`
	CommissionReserveRemaining decimal.Decimal     `json:"CommissionReserveRemaining"`
	CommissionPaid             decimal.Decimal     `json:"CommissionPaid"`
	Price                      decimal.Decimal     `json:"Price"`
	PricePerUnit               decimal.NullDecimal `json:"PricePerUnit"`
	Opened                     Timestamp           `json:"Opened"`
	Closed                     *Timestamp          `json:"Closed"`
	IsOpen                     bool                `json:"IsOpen"`
	Sentinel                   string              `json:"Sentinel"`
	CancelInitiated            bool                `json:"CancelInitiated"`
	ImmediateOrCancel          bool                `json:"ImmediateOrCancel"`
	IsConditional              bool                `json:"IsConditional"`
	Condition                  *string             `json:"Condition"`
	ConditionTarget            *string             `json:"ConditionTarget"`
}

func (o Order) String() string {
	return fmt.Sprintf(
		"Uuid: %s (Exchange: %s, Type: %s, Quantity: %s, Limit: %s, Is Open: %t)",
		o.OrderUuid, o.Exchange, o.Type, o.Quantity, o.Limit, o.IsOpen,
	)
}

/*
	models about account
*/

type Transaction struct {
	PaymentUuid    uuid.UUID       `json:"PaymentUuid"`
	Currency       string          `json:"Currency"`
	Amount         decimal.Decimal `json:"Amount"`
	Address        string          `json:"Address"`
	Opened         Timestamp       `json:"Opened"`
	Authorized     bool            `json:"Authorized"`
	PendingPayment bool            `json:"PendingPayment"`
	TxCost         decimal.Decimal `json:"TxCost"`
	TxId           *string         `json:"TxId"`
	Canceled       bool            `json:"Canceled"`
	InvalidAddress bool            `json:"InvalidAddress"`
}

func (t Transaction) String() string {
	return fmt.Sprintf(
		"Uuid: %s (Currency: %s, Amount: %s, Address: %s, Pending: %t)",
		t.PaymentUuid, t.Currency, t.Amount, t.Address, t.PendingPayment,
	)
}

type Balance struct {
	Currency      string          `json:"Currency"`
	Balance       decimal.Decimal `json:"Balance"`
	Available     decimal.Decimal `json:"Available"`
	Pending       decimal.Decimal `json:"Pending"`
	CryptoAddress *string         `json:"CryptoAddress"`
}

func (b Balance) String() string {
	return fmt.Sprintf(
		"Currency: %s (Balance: %s, Available: %s, Pending: %s)",
		b.Currency, b.Balance, b.Available, b.Pending,
	)
}

type Address struct {
	Currency string `json:"Currency"`
	Address  string `json:"Address"`
}

func (a Address) String() string {
	return fmt.Sprintf("Currency: %s (Address: %s)", a.Currency, a.Address)
}
