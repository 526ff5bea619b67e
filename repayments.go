package crediflow

import (
	"context"

	"github.com/crediflow/crediflow-go/model"
)

// repaymentDueFilter narrows a repayment listing to a due-date window.
type repaymentDueFilter struct {
	DueFrom string `schema:"dueFrom"`
	DueTo   string `schema:"dueTo"`
}

// RepaymentsService reads repayment schedules.
type RepaymentsService struct {
	executor *Executor
	list     Definition
	forLoan  Definition
}

// NewRepaymentsService creates the service with its definitions pre-built.
func NewRepaymentsService(executor *Executor) *RepaymentsService {
	return &RepaymentsService{
		executor: executor,
		list:     MustDefinition(NewDefinition(GetList, KindRepayment)),
		forLoan:  MustDefinition(NewDefinitionWith(GetOwnedEntities, KindLoanAccount, KindRepayment)),
	}
}

// ListDue returns all repayments falling due between dueFrom and dueTo,
// dates formatted as yyyy-MM-dd.
// Example: GET repayments?dueFrom=2011-01-05&dueTo=2011-06-07
func (s *RepaymentsService) ListDue(ctx context.Context, dueFrom, dueTo string) ([]model.Repayment, error) {
	params, err := ParamsFrom(repaymentDueFilter{DueFrom: dueFrom, DueTo: dueTo})
	if err != nil {
		return nil, err
	}
	return ExecuteCollection[model.Repayment](ctx, s.executor, s.list, Args{Params: params})
}

// ForLoanAccount returns the repayment schedule of one loan account.
// Example: GET loans/822/repayments
func (s *RepaymentsService) ForLoanAccount(ctx context.Context, accountID string) ([]model.Repayment, error) {
	return ExecuteCollection[model.Repayment](ctx, s.executor, s.forLoan, Args{ObjectID: accountID})
}

// ForLoanAccountPaged is ForLoanAccount with offset and limit. Both are
// passed through unconditionally; whether the backend honors them for
// repayments is unconfirmed, and with both empty the full schedule comes
// back.
func (s *RepaymentsService) ForLoanAccountPaged(ctx context.Context, accountID, offset, limit string) ([]model.Repayment, error) {
	params := NewParams()
	params.Set(paramOffset, offset)
	params.Set(paramLimit, limit)
	return ExecuteCollection[model.Repayment](ctx, s.executor, s.forLoan, Args{ObjectID: accountID, Params: params})
}
