package crediflow

import (
	"context"

	"github.com/crediflow/crediflow-go/model"
)

// Form field names for the legacy form-encoded client create endpoint.
const (
	paramFirstName = "firstName"
	paramLastName  = "lastName"
	paramEmail     = "emailAddress"
	paramBirthDate = "birthdate"
)

// ClientsService manages clients and their custom information.
type ClientsService struct {
	executor *Executor

	get               Definition
	getDetails        Definition
	list              Definition
	loans             Definition
	createForm        Definition
	patchCustomField  Definition
	deleteCustomField Definition
}

// NewClientsService creates the service with its definitions pre-built.
func NewClientsService(executor *Executor) *ClientsService {
	return &ClientsService{
		executor:          executor,
		get:               MustDefinition(NewDefinition(GetEntity, KindClient)),
		getDetails:        MustDefinition(NewDefinition(GetEntityDetails, KindClientDetails)),
		list:              MustDefinition(NewDefinition(GetList, KindClient)),
		loans:             MustDefinition(NewDefinitionWith(GetOwnedEntities, KindClient, KindLoanAccount)),
		createForm:        MustDefinition(NewDefinition(CreateFormEntity, KindClient)),
		patchCustomField:  MustDefinition(NewDefinitionWith(PatchOwnedEntity, KindClient, KindCustomFieldValue)),
		deleteCustomField: MustDefinition(NewDefinitionWith(DeleteOwnedEntity, KindClient, KindCustomFieldValue)),
	}
}

// Get returns one client. Example: GET clients/3444
func (s *ClientsService) Get(ctx context.Context, clientID string) (model.Client, error) {
	return ExecuteObject[model.Client](ctx, s.executor, s.get, Args{ObjectID: clientID})
}

// GetDetails returns one client with full details.
// Example: GET clients/3444?fullDetails=true
func (s *ClientsService) GetDetails(ctx context.Context, clientID string) (model.Client, error) {
	return ExecuteObject[model.Client](ctx, s.executor, s.getDetails, Args{ObjectID: clientID})
}

// List returns clients. Offset and limit are optional.
func (s *ClientsService) List(ctx context.Context, offset, limit string) ([]model.Client, error) {
	params := NewParams()
	params.Set(paramOffset, offset)
	params.Set(paramLimit, limit)
	return ExecuteCollection[model.Client](ctx, s.executor, s.list, Args{Params: params})
}

// Loans returns the loan accounts held by one client.
// Example: GET clients/456/loans
func (s *ClientsService) Loans(ctx context.Context, clientID string) ([]model.LoanAccount, error) {
	return ExecuteCollection[model.LoanAccount](ctx, s.executor, s.loans, Args{ObjectID: clientID})
}

// CreateForm creates a client through the legacy form-encoded endpoint and
// returns the created client. Example: POST clients (form body)
func (s *ClientsService) CreateForm(ctx context.Context, client model.Client) (model.Client, error) {
	if err := validate.Struct(client); err != nil {
		return model.Client{}, WrapError(CodeInvalidArgument, err, "invalid client payload")
	}
	params := NewParams()
	params.Set(paramFirstName, client.FirstName)
	params.Set(paramLastName, client.LastName)
	params.Set(paramEmail, client.Email)
	params.Set(paramBirthDate, client.BirthDate)
	return ExecuteObject[model.Client](ctx, s.executor, s.createForm, Args{Params: params})
}

// UpdateCustomField sets the value of one custom field on a client.
// Example: PATCH clients/456/custominformation/loan_officer
func (s *ClientsService) UpdateCustomField(ctx context.Context, clientID, fieldID, value string) (bool, error) {
	body := struct {
		Value string `json:"value"`
	}{Value: value}
	return ExecuteBoolean(ctx, s.executor, s.patchCustomField, Args{ObjectID: clientID, RelatedID: fieldID, Body: body})
}

// DeleteCustomField removes one custom field value from a client.
// Example: DELETE clients/456/custominformation/loan_officer
func (s *ClientsService) DeleteCustomField(ctx context.Context, clientID, fieldID string) (bool, error) {
	return ExecuteBoolean(ctx, s.executor, s.deleteCustomField, Args{ObjectID: clientID, RelatedID: fieldID})
}
