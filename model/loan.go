package model

// LoanAccount is a loan issued to a client or group.
type LoanAccount struct {
	EncodedKey        string  `json:"encodedKey,omitempty"`
	ID                string  `json:"id,omitempty"`
	AccountHolderKey  string  `json:"accountHolderKey" validate:"required"`
	AccountHolderType string  `json:"accountHolderType,omitempty"`
	ProductTypeKey    string  `json:"productTypeKey" validate:"required"`
	AccountState      string  `json:"accountState,omitempty"`
	LoanAmount        float64 `json:"loanAmount" validate:"gt=0"`
	InterestRate      float64 `json:"interestRate,omitempty" validate:"gte=0"`
	PrincipalDue      float64 `json:"principalDue,omitempty"`
	InterestDue       float64 `json:"interestDue,omitempty"`
	RepaymentPeriods  int     `json:"repaymentInstallments,omitempty" validate:"omitempty,gt=0"`
	DisbursementDate  string  `json:"disbursementDate,omitempty"`
	CreationDate      string  `json:"creationDate,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// LoanTransaction is one movement on a loan account: a repayment entry, a
// disbursement, a fee, or the record of a state-changing action.
type LoanTransaction struct {
	EncodedKey    string  `json:"encodedKey,omitempty"`
	TransactionID int64   `json:"transactionId,omitempty"`
	ParentAccount string  `json:"parentAccountKey,omitempty"`
	Type          string  `json:"type,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Balance       float64 `json:"balance,omitempty"`
	EntryDate     string  `json:"entryDate,omitempty"`
	Comment       string  `json:"comment,omitempty"`
}

// Repayment is one scheduled installment of a loan.
type Repayment struct {
	EncodedKey    string  `json:"encodedKey,omitempty"`
	ParentAccount string  `json:"parentAccountKey,omitempty"`
	DueDate       string  `json:"dueDate,omitempty"`
	State         string  `json:"state,omitempty"`
	PrincipalDue  float64 `json:"principalDue,omitempty"`
	PrincipalPaid float64 `json:"principalPaid,omitempty"`
	InterestDue   float64 `json:"interestDue,omitempty"`
	InterestPaid  float64 `json:"interestPaid,omitempty"`
	FeesDue       float64 `json:"feesDue,omitempty"`
	PenaltyDue    float64 `json:"penaltyDue,omitempty"`
	RepaidDate    string  `json:"repaidDate,omitempty"`
}

// LoanProduct is a template loans are created from.
type LoanProduct struct {
	EncodedKey        string  `json:"encodedKey,omitempty"`
	ID                string  `json:"id,omitempty"`
	ProductName       string  `json:"loanProductName,omitempty"`
	Active            bool    `json:"activated,omitempty"`
	DefaultLoanAmount float64 `json:"defaultLoanAmount,omitempty"`
	MaxLoanAmount     float64 `json:"maxLoanAmount,omitempty"`
	InterestRate      float64 `json:"defaultInterestRate,omitempty"`
}
