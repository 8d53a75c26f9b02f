package bittrex

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/deforceHK/gobittrex"
)

const ORDER_UUID = "e606d53c-8d70-11e3-94b5-425861b86ab6"

var identifierBody = envelope(`{"uuid" : "` + ORDER_UUID + `"}`)

func TestTrading_BuyLimit(t *testing.T) {
	fake := newFakeBittrex(t, map[string]string{"/market/buylimit": identifierBody})
	bittrex, _ := newTestBittrex(t, fake)

	id, _, err := bittrex.Trading.BuyLimit("BTC-LTC", 1.2, 1.3)
	require.NoError(t, err)
	assert.Equal(t, ORDER_UUID, id.UUID.String())
	assert.Equal(t, ORDER_UUID, id.String())

	req := fake.last(t)
	assert.True(t, strings.HasPrefix(req.uri, "/market/buylimit?market=BTC-LTC&quantity=1.2&rate=1.3&"))
	assert.Regexp(t, regexp.MustCompile(`&apikey=`+TEST_API_KEY+`&nonce=\d+$`), req.uri)
	assert.Equal(t, expectedSign(t, fake.server.URL+req.uri), req.apisign)
}

func TestTrading_SellLimit(t *testing.T) {
	fake := newFakeBittrex(t, map[string]string{"/market/selllimit": identifierBody})
	bittrex, _ := newTestBittrex(t, fake)

	id, _, err := bittrex.Trading.SellLimit("BTC-LTC", 0.00001, 250)
	require.NoError(t, err)
	assert.Equal(t, ORDER_UUID, id.UUID.String())
	assert.Equal(t,
		fmt.Sprintf("/market/selllimit?market=BTC-LTC&quantity=0.00001&rate=250&apikey=%s&nonce=%d", TEST_API_KEY, TEST_NONCE),
		fake.last(t).uri,
	)
}

func TestTrading_BuyLimit_Rejected(t *testing.T) {
	fake := newFakeBittrex(t, map[string]string{
		"/market/buylimit": `{"success":false,"message":"INSUFFICIENT_FUNDS","result":null}`,
	})
	bittrex, _ := newTestBittrex(t, fake)

	id, _, err := bittrex.Trading.BuyLimit("BTC-LTC", 1, 1)
	require.Error(t, err)
	assert.Nil(t, id)
	assert.Equal(t, "Error while calling Bittrex API: INSUFFICIENT_FUNDS", err.Error())
}

func TestTrading_CancelOrder(t *testing.T) {
	fake := newFakeBittrex(t, map[string]string{"/market/cancel": envelope(`null`)})
	bittrex, _ := newTestBittrex(t, fake)

	_, err := bittrex.Trading.CancelOrder(ORDER_UUID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(fake.last(t).uri, "/market/cancel?uuid="+ORDER_UUID+"&apikey="))
}

func TestTrading_CancelOrder_Rejected(t *testing.T) {
	fake := newFakeBittrex(t, map[string]string{
		"/market/cancel": `{"success":false,"message":"ORDER_NOT_OPEN","result":null}`,
	})
	bittrex, _ := newTestBittrex(t, fake)

	_, err := bittrex.Trading.CancelOrder(ORDER_UUID)
	require.Error(t, err)
	assert.True(t, IsKind(err, API_ERROR))
	assert.Equal(t, "ORDER_NOT_OPEN", err.(Error).Message())
}

const OPEN_ORDER_SELL = `{
	"Uuid" : null,
	"OrderUuid" : "09aa5bb6-8232-41aa-9b78-a5a1093e0211",
	"Exchange" : "BTC-LTC",
	"OrderType" : "LIMIT_SELL",
	"Quantity" : 5.00000000,
	"QuantityRemaining" : 5.00000000,
	"Limit" : 2.00000000,
	"CommissionPaid" : 0.00000000,
	"Price" : 0.00000000,
	"PricePerUnit" : null,
	"Opened" : "2014-07-09T03:55:48.77",
	"Closed" : null,
	"CancelInitiated" : false,
	"ImmediateOrCancel" : false,
	"IsConditional" : false,
	"Condition" : null,
	"ConditionTarget" : null
}`

const OPEN_ORDER_BUY = `{
	"Uuid" : null,
	"OrderUuid" : "8925d746-bc9f-4684-b1aa-e507467aaa99",
	"Exchange" : "BTC-LTC",
	"OrderType" : "LIMIT_BUY",
	"Quantity" : 100000.00000000,
	"QuantityRemaining" : 100000.00000000,
	"Limit" : 0.00000001,
	"CommissionPaid" : 0.00000000,
	"Price" : 0.00000000,
	"PricePerUnit" : null,
	"Opened" : "2014-07-09T03:55:48.583",
	"Closed" : null,
	"CancelInitiated" : false,
	"ImmediateOrCancel" : false,
	"IsConditional" : false,
	"Condition" : null,
	"ConditionTarget" : null
}`

func TestTrading_GetOpenOrders(t *testing.T) {
	fake := newFakeBittrex(t, map[string]string{
		"/market/getopenorders": envelope("[" + OPEN_ORDER_SELL + "," + OPEN_ORDER_BUY + "]"),
	})
	bittrex, _ := newTestBittrex(t, fake)

	orders, _, err := bittrex.Trading.GetOpenOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.True(t, orders[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "09aa5bb6-8232-41aa-9b78-a5a1093e0211", orders[0].OrderUuid.String())
	assert.Nil(t, orders[0].Uuid)
	assert.Nil(t, orders[0].Closed)
	assert.False(t, orders[0].PricePerUnit.Valid)
	assert.Equal(t, "LIMIT_BUY", orders[1].OrderType)
	assert.True(t, strings.HasPrefix(fake.last(t).uri, "/market/getopenorders?apikey="))
}

func TestTrading_GetOpenOrdersByMarket(t *testing.T) {
	fake := newFakeBittrex(t, map[string]string{
		"/market/getopenorders": envelope("[" + OPEN_ORDER_SELL + "]"),
	})
	bittrex, _ := newTestBittrex(t, fake)

	orders, _, err := bittrex.Trading.GetOpenOrdersByMarket("BTC-LTC")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, strings.HasPrefix(fake.last(t).uri, "/market/getopenorders?market=BTC-LTC&apikey="))
}

func TestTrading_GetOpenOrders_None(t *testing.T) {
	fake := newFakeBittrex(t, map[string]string{"/market/getopenorders": envelope(`null`)})
	bittrex, _ := newTestBittrex(t, fake)

	orders, _, err := bittrex.Trading.GetOpenOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestTrading_NotFiniteNumbers(t *testing.T) {
	fake := newFakeBittrex(t, map[string]string{
		"/market/buylimit":  identifierBody,
		"/market/selllimit": identifierBody,
	})
	bittrex, _ := newTestBittrex(t, fake)

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		id, _, err := bittrex.Trading.BuyLimit("BTC-LTC", v, 1)
		require.Error(t, err)
		assert.Nil(t, id)
		assert.True(t, IsKind(err, API_ERROR))

		_, _, err = bittrex.Trading.SellLimit("BTC-LTC", 1, v)
		require.Error(t, err)
		assert.True(t, IsKind(err, API_ERROR))
	}

	fake.Lock()
	defer fake.Unlock()
	assert.Empty(t, fake.seen)
}
