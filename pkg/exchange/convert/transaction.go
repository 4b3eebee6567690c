package convert

import (
	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"
)

// InferTransactionType reads the transfer direction from the sign of the
// amount when the exchange does not label it explicitly: negative amounts
// are withdrawals. The returned amount always has the sign stripped.
func InferTransactionType(amount fixedpoint.Value) (types.TransactionType, fixedpoint.Value) {
	if amount.Sign() < 0 {
		return types.TransactionTypeWithdrawal, amount.Neg()
	}
	return types.TransactionTypeDeposit, amount
}

// TransactionStatusMap resolves exchange-native deposit/withdrawal status
// codes onto the closed unified vocabulary.
type TransactionStatusMap map[string]types.TransactionStatus

// Resolve falls back to the given default for unknown native codes; the
// raw code stays available in Transaction.OriginalStatus.
func (m TransactionStatusMap) Resolve(native string, fallback types.TransactionStatus) types.TransactionStatus {
	if status, ok := m[native]; ok {
		return status
	}
	return fallback
}
