package enums

import "fmt"

// TransactionType distinguishes purchase events from returns.
type TransactionType string

const (
	TransactionTypeBuy    TransactionType = "Buy"
	TransactionTypeReturn TransactionType = "Return"
)

var validTransactionTypes = []TransactionType{
	TransactionTypeBuy,
	TransactionTypeReturn,
}

// String implements fmt.Stringer.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid reports whether the value matches the canonical transaction type enum.
func (t TransactionType) IsValid() bool {
	for _, candidate := range validTransactionTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTransactionType converts raw input into TransactionType.
func ParseTransactionType(value string) (TransactionType, error) {
	for _, candidate := range validTransactionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction type %q", value)
}
