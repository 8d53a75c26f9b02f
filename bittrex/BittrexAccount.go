package bittrex

import (
	. "github.com/deforceHK/gobittrex"
)

type Account struct {
	*Bittrex
}

func (bittrex *Account) GetBalances() ([]Balance, []byte, error) {
	return fetchAll[Balance](bittrex.Bittrex, GET_BALANCES, nil)
}

func (bittrex *Account) GetBalance(currency string) (*Balance, []byte, error) {
	return fetchOne[Balance](bittrex.Bittrex, GET_BALANCE, NewParams("currency", currency))
}

func (bittrex *Account) GetDepositAddress(currency string) (*Address, []byte, error) {
	return fetchOne[Address](bittrex.Bittrex, GET_DEPOSIT_ADDRESS, NewParams("currency", currency))
}

// Withdraw paymentId is the memo some currencies need, it is sent even when empty.
func (bittrex *Account) Withdraw(
	currency string,
	quantity float64,
	address string,
	paymentId string,
) (*Identifier, []byte, error) {
	q, err := FloatToString(quantity)
	if err != nil {
		return nil, nil, err
	}

	params := NewParams(
		"currency", currency,
		"quantity", q,
		"address", address,
		"paymentid", paymentId,
	)
	return fetchOne[Identifier](bittrex.Bittrex, WITHDRAW, params)
}

func (bittrex *Account) GetOrder(orderId string) (*Order, []byte, error) {
	return fetchOne[Order](bittrex.Bittrex, GET_ORDER, NewParams("uuid", orderId))
}

func (bittrex *Account) GetOrderHistory() ([]HistoryOrder, []byte, error) {
	return fetchAll[HistoryOrder](bittrex.Bittrex, GET_ORDER_HISTORY, nil)
}

func (bittrex *Account) GetOrderHistoryByMarket(market string) ([]HistoryOrder, []byte, error) {
	return fetchAll[HistoryOrder](bittrex.Bittrex, GET_ORDER_HISTORY, NewParams("market", market))
}

func (bittrex *Account) GetWithdrawalHistory() ([]Transaction, []byte, error) {
	return fetchAll[Transaction](bittrex.Bittrex, GET_WITHDRAWAL_HISTORY, nil)
}

func (bittrex *Account) GetWithdrawalHistoryByCurrency(currency string) ([]Transaction, []byte, error) {
	return fetchAll[Transaction](bittrex.Bittrex, GET_WITHDRAWAL_HISTORY, NewParams("currency", currency))
}

func (bittrex *Account) GetDepositHistory() ([]Transaction, []byte, error) {
	return fetchAll[Transaction](bittrex.Bittrex, GET_DEPOSIT_HISTORY, nil)
}

func (bittrex *Account) GetDepositHistoryByCurrency(currency string) ([]Transaction, []byte, error) {
	return fetchAll[Transaction](bittrex.Bittrex, GET_DEPOSIT_HISTORY, NewParams("currency", currency))
}
