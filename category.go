package crediflow

import "net/http"

// Category names one rule template for a whole class of API calls. Each
// category fixes the HTTP method, the content type, the URL shape (object id
// and related-entity segments) and the default return kind. The set is
// closed: NewDefinition rejects anything outside this table.
type Category string

const (
	// GetEntity fetches one entity. Example: GET clients/3444
	GetEntity Category = "get_entity"
	// GetEntityDetails fetches one entity with full details.
	// Example: GET loans/5566?fullDetails=true
	GetEntityDetails Category = "get_entity_details"
	// GetList fetches a list of entities. Example: GET savings
	GetList Category = "get_list"
	// GetOwnedEntities fetches entities reachable only through their owner.
	// Example: GET loans/822/repayments
	GetOwnedEntities Category = "get_owned_entities"
	// GetRelatedEntities fetches entities of a related type without an owner
	// id. Example: GET loans/transactions
	GetRelatedEntities Category = "get_related_entities"
	// PatchOwnedEntity partially updates an owned entity.
	// Example: PATCH clients/123/custominformation/field_id
	PatchOwnedEntity Category = "patch_owned_entity"
	// DeleteOwnedEntity deletes an owned entity.
	// Example: DELETE clients/123/custominformation/field_id
	DeleteOwnedEntity Category = "delete_owned_entity"
	// CreateJSONEntity creates an entity from a JSON body. Example: POST clients
	CreateJSONEntity Category = "create_json_entity"
	// CreateFormEntity creates an entity from form parameters. Used by older
	// endpoints that never moved to JSON.
	CreateFormEntity Category = "create_form_entity"
	// UpdateJSONEntity updates an entity from a JSON body. Example: POST loans/88666
	UpdateJSONEntity Category = "update_json_entity"
	// DeleteEntity deletes an entity. Example: DELETE clients/976
	DeleteEntity Category = "delete_entity"
	// PostOwnedEntity posts an action that produces an owned entity.
	// Example: POST loans/822/transactions?type=REPAYMENT returns the LoanTransaction
	PostOwnedEntity Category = "post_owned_entity"
	// PostEntityAction posts a state-changing action that returns the
	// acted-upon entity itself.
	// Example: POST loans/822/transactions?type=APPROVE returns the LoanAccount
	PostEntityAction Category = "post_entity_action"
)

// ContentType selects how request parameters travel on the wire.
type ContentType string

const (
	ContentTypeJSON ContentType = "application/json"
	ContentTypeForm ContentType = "application/x-www-form-urlencoded"
)

// ReturnKind describes the structural shape of a parsed response.
type ReturnKind string

const (
	// ReturnObject decodes the body as a single instance of the result type.
	ReturnObject ReturnKind = "object"
	// ReturnCollection decodes the body as an ordered sequence of the result
	// type. An empty body is an empty sequence, not an error.
	ReturnCollection ReturnKind = "collection"
	// ReturnBoolean maps any 2xx status to true. Errors propagate as errors;
	// there is no successful false.
	ReturnBoolean ReturnKind = "boolean"
	// ReturnString returns the body verbatim, unparsed.
	ReturnString ReturnKind = "string"
)

// categoryRule fixes the request shape for one category.
type categoryRule struct {
	method        string
	contentType   ContentType
	needsObjectID bool
	fullDetails   bool
	needsRelated  bool
	returns       ReturnKind
}

// categoryRules is the single source of truth for how each category builds
// its request. Read-only after initialization.
var categoryRules = map[Category]categoryRule{
	GetEntity:          {http.MethodGet, ContentTypeForm, true, false, false, ReturnObject},
	GetEntityDetails:   {http.MethodGet, ContentTypeForm, true, true, false, ReturnObject},
	GetList:            {http.MethodGet, ContentTypeForm, false, false, false, ReturnCollection},
	GetOwnedEntities:   {http.MethodGet, ContentTypeForm, true, false, true, ReturnCollection},
	GetRelatedEntities: {http.MethodGet, ContentTypeForm, false, false, true, ReturnCollection},
	PatchOwnedEntity:   {http.MethodPatch, ContentTypeJSON, true, false, true, ReturnBoolean},
	DeleteOwnedEntity:  {http.MethodDelete, ContentTypeForm, true, false, true, ReturnBoolean},
	CreateJSONEntity:   {http.MethodPost, ContentTypeJSON, false, false, false, ReturnObject},
	CreateFormEntity:   {http.MethodPost, ContentTypeForm, false, false, false, ReturnObject},
	UpdateJSONEntity:   {http.MethodPost, ContentTypeJSON, true, false, false, ReturnObject},
	DeleteEntity:       {http.MethodDelete, ContentTypeForm, true, false, false, ReturnBoolean},
	PostOwnedEntity:    {http.MethodPost, ContentTypeForm, true, false, true, ReturnObject},
	PostEntityAction:   {http.MethodPost, ContentTypeForm, true, false, true, ReturnObject},
}

// Method returns the HTTP method the category dispatches with.
func (c Category) Method() string {
	return categoryRules[c].method
}

// ContentType returns the content type the category dispatches with.
func (c Category) ContentType() ContentType {
	return categoryRules[c].contentType
}

// NeedsObjectID reports whether the category requires an object id in the path.
func (c Category) NeedsObjectID() bool {
	return categoryRules[c].needsObjectID
}

// WithFullDetails reports whether the fullDetails parameter is auto-injected.
func (c Category) WithFullDetails() bool {
	return categoryRules[c].fullDetails
}

// NeedsRelatedEntity reports whether the category requires a related-entity
// path segment.
func (c Category) NeedsRelatedEntity() bool {
	return categoryRules[c].needsRelated
}

// Returns reports the category's default return kind.
func (c Category) Returns() ReturnKind {
	return categoryRules[c].returns
}
