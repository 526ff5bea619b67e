package model

// SavingsAccount is a deposit account held by a client or group.
type SavingsAccount struct {
	EncodedKey        string  `json:"encodedKey,omitempty"`
	ID                string  `json:"id,omitempty"`
	AccountHolderKey  string  `json:"accountHolderKey" validate:"required"`
	AccountHolderType string  `json:"accountHolderType,omitempty"`
	ProductTypeKey    string  `json:"productTypeKey" validate:"required"`
	AccountState      string  `json:"accountState,omitempty"`
	AccountType       string  `json:"accountType,omitempty"`
	Balance           float64 `json:"balance,omitempty"`
	AccruedInterest   float64 `json:"accruedInterest,omitempty"`
	MaxWithdrawal     float64 `json:"maxWithdrawalAmount,omitempty" validate:"gte=0"`
	CreationDate      string  `json:"creationDate,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// SavingsTransaction is one movement on a savings account.
type SavingsTransaction struct {
	EncodedKey    string  `json:"encodedKey,omitempty"`
	TransactionID int64   `json:"transactionId,omitempty"`
	ParentAccount string  `json:"parentAccountKey,omitempty"`
	Type          string  `json:"type,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Balance       float64 `json:"balance,omitempty"`
	EntryDate     string  `json:"entryDate,omitempty"`
	Comment       string  `json:"comment,omitempty"`
}

// SavingsProduct is a template savings accounts are created from.
type SavingsProduct struct {
	EncodedKey   string  `json:"encodedKey,omitempty"`
	ID           string  `json:"id,omitempty"`
	ProductName  string  `json:"savingsProductName,omitempty"`
	Active       bool    `json:"activated,omitempty"`
	InterestRate float64 `json:"defaultInterestRate,omitempty"`
}
