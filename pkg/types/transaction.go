package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus is the closed deposit/withdrawal status vocabulary
// shared by all adapters.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusOK       TransactionStatus = "ok"
	TransactionStatusFailed   TransactionStatus = "failed"
	TransactionStatusCanceled TransactionStatus = "canceled"
)

// Transaction is a unified deposit or withdrawal record. Amount is always
// positive; the direction lives in Type.
type Transaction struct {
	ID            string `json:"id,omitempty"`
	TransactionID string `json:"transactionID,omitempty"` // on-chain txid

	Exchange ExchangeName    `json:"exchange"`
	Type     TransactionType `json:"type"`

	Asset  string           `json:"asset"`
	Amount fixedpoint.Value `json:"amount"`

	Address    string `json:"address,omitempty"`
	AddressTag string `json:"addressTag,omitempty"`
	Network    string `json:"network,omitempty"`

	Status TransactionStatus `json:"status"`

	// OriginalStatus keeps the exchange-native status code or string.
	OriginalStatus string `json:"originalStatus,omitempty"`

	Fee         fixedpoint.Value `json:"fee,omitempty"`
	FeeCurrency string           `json:"feeCurrency,omitempty"`

	Time Time `json:"time"`

	Info json.RawMessage `json:"info,omitempty"`
}

func (tx Transaction) EffectiveTime() time.Time {
	return tx.Time.Time()
}

func (tx Transaction) String() string {
	o := fmt.Sprintf("%s %s %s %s -> %s @ %s STATUS: %s (%s)",
		tx.Exchange,
		tx.Type,
		tx.Amount.String(),
		tx.Asset,
		tx.Address,
		tx.Time.Time(),
		tx.Status,
		tx.OriginalStatus)
	return o
}

// DepositAddress is the result of the deposit-address query.
type DepositAddress struct {
	Asset   string `json:"asset"`
	Address string `json:"address"`
	Tag     string `json:"tag,omitempty"`
	Network string `json:"network,omitempty"`
}

// WithdrawalOptions carries the optional withdrawal parameters. ClientID
// is the idempotency token forwarded to exchanges that support one.
type WithdrawalOptions struct {
	Network    string
	AddressTag string
	ClientID   string
}
