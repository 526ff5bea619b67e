package crediflow

import (
	"context"

	"github.com/crediflow/crediflow-go/model"
)

const (
	savingsActionApprove = "APPROVAL"
	savingsTxDeposit     = "DEPOSIT"
	savingsTxWithdrawal  = "WITHDRAWAL"
)

// SavingsService manages savings accounts and their transactions.
type SavingsService struct {
	executor *Executor

	get             Definition
	getDetails      Definition
	list            Definition
	transactions    Definition
	postTransaction Definition
	action          Definition
}

// NewSavingsService creates the service with its definitions pre-built.
func NewSavingsService(executor *Executor) *SavingsService {
	return &SavingsService{
		executor:        executor,
		get:             MustDefinition(NewDefinition(GetEntity, KindSavingsAccount)),
		getDetails:      MustDefinition(NewDefinition(GetEntityDetails, KindSavingsAccount)),
		list:            MustDefinition(NewDefinition(GetList, KindSavingsAccount)),
		transactions:    MustDefinition(NewDefinitionWith(GetOwnedEntities, KindSavingsAccount, KindSavingsTransaction)),
		postTransaction: MustDefinition(NewDefinitionWith(PostOwnedEntity, KindSavingsAccount, KindSavingsTransaction)),
		action:          MustDefinition(NewDefinitionWith(PostEntityAction, KindSavingsAccount, KindSavingsTransaction)),
	}
}

// Get returns one savings account. Example: GET savings/1234
func (s *SavingsService) Get(ctx context.Context, accountID string) (model.SavingsAccount, error) {
	return ExecuteObject[model.SavingsAccount](ctx, s.executor, s.get, Args{ObjectID: accountID})
}

// GetDetails returns one savings account with full details.
func (s *SavingsService) GetDetails(ctx context.Context, accountID string) (model.SavingsAccount, error) {
	return ExecuteObject[model.SavingsAccount](ctx, s.executor, s.getDetails, Args{ObjectID: accountID})
}

// List returns savings accounts. Offset and limit are optional.
func (s *SavingsService) List(ctx context.Context, offset, limit string) ([]model.SavingsAccount, error) {
	params := NewParams()
	params.Set(paramOffset, offset)
	params.Set(paramLimit, limit)
	return ExecuteCollection[model.SavingsAccount](ctx, s.executor, s.list, Args{Params: params})
}

// Transactions returns the transactions of one savings account.
// Example: GET savings/1234/transactions
func (s *SavingsService) Transactions(ctx context.Context, accountID string) ([]model.SavingsTransaction, error) {
	return ExecuteCollection[model.SavingsTransaction](ctx, s.executor, s.transactions, Args{ObjectID: accountID})
}

// Deposit enters a deposit on a savings account and returns the resulting
// transaction. Example: POST savings/1234/transactions?type=DEPOSIT&amount=50
func (s *SavingsService) Deposit(ctx context.Context, accountID, amount, date, notes string) (model.SavingsTransaction, error) {
	params := NewParams()
	params.Set(paramType, savingsTxDeposit)
	params.Set(paramAmount, amount)
	params.Set(paramDate, date)
	params.Set(paramNotes, notes)
	return ExecuteObject[model.SavingsTransaction](ctx, s.executor, s.postTransaction, Args{ObjectID: accountID, Params: params})
}

// Withdraw enters a withdrawal on a savings account and returns the
// resulting transaction.
func (s *SavingsService) Withdraw(ctx context.Context, accountID, amount, date, notes string) (model.SavingsTransaction, error) {
	params := NewParams()
	params.Set(paramType, savingsTxWithdrawal)
	params.Set(paramAmount, amount)
	params.Set(paramDate, date)
	params.Set(paramNotes, notes)
	return ExecuteObject[model.SavingsTransaction](ctx, s.executor, s.postTransaction, Args{ObjectID: accountID, Params: params})
}

// Approve moves a pending savings account to the approved state and returns
// the updated account.
// Example: POST savings/1234/transactions?type=APPROVAL
func (s *SavingsService) Approve(ctx context.Context, accountID, notes string) (model.SavingsAccount, error) {
	params := NewParams()
	params.Set(paramType, savingsActionApprove)
	params.Set(paramNotes, notes)
	return ExecuteObject[model.SavingsAccount](ctx, s.executor, s.action, Args{ObjectID: accountID, Params: params})
}
