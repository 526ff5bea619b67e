package crediflow

import (
	"context"

	"github.com/crediflow/crediflow-go/model"
)

// Transaction type values accepted by the loan transaction endpoints.
const (
	loanActionApprove     = "APPROVE"
	loanActionUndoApprove = "UNDO_APPROVAL"
	loanTxRepayment       = "REPAYMENT"
	loanTxDisbursement    = "DISBURSMENT" // backend spelling
)

// LoansService manages loan accounts and their transactions.
type LoansService struct {
	executor *Executor

	get             Definition
	getDetails      Definition
	list            Definition
	transactions    Definition
	allTransactions Definition
	create          Definition
	update          Definition
	remove          Definition
	postTransaction Definition
	action          Definition
}

// NewLoansService creates the service with its definitions pre-built.
func NewLoansService(executor *Executor) *LoansService {
	return &LoansService{
		executor:        executor,
		get:             MustDefinition(NewDefinition(GetEntity, KindLoanAccount)),
		getDetails:      MustDefinition(NewDefinition(GetEntityDetails, KindLoanAccount)),
		list:            MustDefinition(NewDefinition(GetList, KindLoanAccount)),
		transactions:    MustDefinition(NewDefinitionWith(GetOwnedEntities, KindLoanAccount, KindLoanTransaction)),
		allTransactions: MustDefinition(NewDefinitionWith(GetRelatedEntities, KindLoanAccount, KindLoanTransaction)),
		create:          MustDefinition(NewDefinition(CreateJSONEntity, KindLoanAccount)),
		update:          MustDefinition(NewDefinition(UpdateJSONEntity, KindLoanAccount)),
		remove:          MustDefinition(NewDefinition(DeleteEntity, KindLoanAccount)),
		postTransaction: MustDefinition(NewDefinitionWith(PostOwnedEntity, KindLoanAccount, KindLoanTransaction)),
		action:          MustDefinition(NewDefinitionWith(PostEntityAction, KindLoanAccount, KindLoanTransaction)),
	}
}

// Get returns one loan account. Example: GET loans/822
func (s *LoansService) Get(ctx context.Context, accountID string) (model.LoanAccount, error) {
	return ExecuteObject[model.LoanAccount](ctx, s.executor, s.get, Args{ObjectID: accountID})
}

// GetDetails returns one loan account with full details.
// Example: GET loans/822?fullDetails=true
func (s *LoansService) GetDetails(ctx context.Context, accountID string) (model.LoanAccount, error) {
	return ExecuteObject[model.LoanAccount](ctx, s.executor, s.getDetails, Args{ObjectID: accountID})
}

// List returns loan accounts. Offset and limit are optional; empty values
// are omitted from the request.
func (s *LoansService) List(ctx context.Context, offset, limit string) ([]model.LoanAccount, error) {
	params := NewParams()
	params.Set(paramOffset, offset)
	params.Set(paramLimit, limit)
	return ExecuteCollection[model.LoanAccount](ctx, s.executor, s.list, Args{Params: params})
}

// Transactions returns the transactions of one loan account.
// Example: GET loans/822/transactions
func (s *LoansService) Transactions(ctx context.Context, accountID string) ([]model.LoanTransaction, error) {
	return ExecuteCollection[model.LoanTransaction](ctx, s.executor, s.transactions, Args{ObjectID: accountID})
}

// AllTransactions returns loan transactions across accounts.
// Example: GET loans/transactions
func (s *LoansService) AllTransactions(ctx context.Context) ([]model.LoanTransaction, error) {
	return ExecuteCollection[model.LoanTransaction](ctx, s.executor, s.allTransactions, Args{})
}

// Create creates a new loan account from a JSON payload and returns the
// backend's representation of it. Example: POST loans
func (s *LoansService) Create(ctx context.Context, account model.LoanAccount) (model.LoanAccount, error) {
	if err := validate.Struct(account); err != nil {
		return model.LoanAccount{}, WrapError(CodeInvalidArgument, err, "invalid loan account payload")
	}
	return ExecuteObject[model.LoanAccount](ctx, s.executor, s.create, Args{Body: account})
}

// Update updates a loan account from a JSON payload.
// Example: POST loans/88666
func (s *LoansService) Update(ctx context.Context, accountID string, account model.LoanAccount) (model.LoanAccount, error) {
	if err := validate.Struct(account); err != nil {
		return model.LoanAccount{}, WrapError(CodeInvalidArgument, err, "invalid loan account payload")
	}
	return ExecuteObject[model.LoanAccount](ctx, s.executor, s.update, Args{ObjectID: accountID, Body: account})
}

// Delete deletes a loan account. Example: DELETE loans/822
func (s *LoansService) Delete(ctx context.Context, accountID string) (bool, error) {
	return ExecuteBoolean(ctx, s.executor, s.remove, Args{ObjectID: accountID})
}

// Approve moves a pending loan account to the approved state and returns the
// updated account. Example: POST loans/822/transactions?type=APPROVE
func (s *LoansService) Approve(ctx context.Context, accountID, notes string) (model.LoanAccount, error) {
	params := NewParams()
	params.Set(paramType, loanActionApprove)
	params.Set(paramNotes, notes)
	return ExecuteObject[model.LoanAccount](ctx, s.executor, s.action, Args{ObjectID: accountID, Params: params})
}

// UndoApprove reverts an approval and returns the updated account.
func (s *LoansService) UndoApprove(ctx context.Context, accountID, notes string) (model.LoanAccount, error) {
	params := NewParams()
	params.Set(paramType, loanActionUndoApprove)
	params.Set(paramNotes, notes)
	return ExecuteObject[model.LoanAccount](ctx, s.executor, s.action, Args{ObjectID: accountID, Params: params})
}

// MakeRepayment enters a repayment on a loan account and returns the
// resulting transaction.
// Example: POST loans/822/transactions?type=REPAYMENT&amount=50
func (s *LoansService) MakeRepayment(ctx context.Context, accountID, amount, date, notes string) (model.LoanTransaction, error) {
	params := NewParams()
	params.Set(paramType, loanTxRepayment)
	params.Set(paramAmount, amount)
	params.Set(paramDate, date)
	params.Set(paramNotes, notes)
	return ExecuteObject[model.LoanTransaction](ctx, s.executor, s.postTransaction, Args{ObjectID: accountID, Params: params})
}

// Disburse disburses an approved loan account and returns the resulting
// transaction.
func (s *LoansService) Disburse(ctx context.Context, accountID, amount, date, notes string) (model.LoanTransaction, error) {
	params := NewParams()
	params.Set(paramType, loanTxDisbursement)
	params.Set(paramAmount, amount)
	params.Set(paramDate, date)
	params.Set(paramNotes, notes)
	return ExecuteObject[model.LoanTransaction](ctx, s.executor, s.postTransaction, Args{ObjectID: accountID, Params: params})
}
