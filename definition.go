package crediflow

// Definition is an immutable descriptor of one class of API call: the
// category's URL/HTTP rules bound to concrete endpoint segments, plus the
// shape and kind of the expected response. Definitions are built once,
// typically when a service is constructed, and shared freely across
// concurrent calls.
//
// The URL path is assembled as endpoint[/objectID][/relatedEntity[/relatedID]]
// with everything after the endpoint optional. Examples: loans,
// savings/1234, clients/456/loans, loans/822/repayments.
type Definition struct {
	category Category
	endpoint string
	related  string
	returns  ReturnKind
	result   Kind
}

// NewDefinition builds a definition for categories that need a single entity
// kind. Example: NewDefinition(GetEntity, KindLoanAccount) for GET loans/123.
func NewDefinition(category Category, entity Kind) (Definition, error) {
	return buildDefinition(category, entity, "")
}

// NewDefinitionWith builds a definition for categories that involve a second
// entity kind: owned and related fetches, owned posts/patches/deletes, entity
// actions, and creates/updates whose returned representation differs from
// the payload type. Example: NewDefinitionWith(GetOwnedEntities,
// KindLoanAccount, KindRepayment) for GET loans/822/repayments.
func NewDefinitionWith(category Category, entity, result Kind) (Definition, error) {
	return buildDefinition(category, entity, result)
}

// MustDefinition panics if err is non-nil. Definitions are built at wiring
// time from a closed rule table, so a failure here is a programming error.
func MustDefinition(def Definition, err error) Definition {
	if err != nil {
		panic("crediflow: " + err.Error())
	}
	return def
}

func buildDefinition(category Category, entity, result Kind) (Definition, error) {
	if category == "" {
		return Definition{}, NewError(CodeInvalidArgument, "category must not be empty")
	}
	if _, ok := categoryRules[category]; !ok {
		return Definition{}, Errorf(CodeConfiguration, "unknown category %q", category)
	}
	if entity == "" {
		return Definition{}, NewError(CodeInvalidArgument, "entity kind must not be empty")
	}

	endpoint, err := EndpointFor(entity)
	if err != nil {
		return Definition{}, err
	}

	def := Definition{
		category: category,
		endpoint: endpoint,
		returns:  category.Returns(),
	}

	// The switch below is the single source of truth for what each class of
	// call returns. It must stay exhaustive over all categories: a category
	// missing here fails construction instead of falling through to a guess.
	switch category {
	case GetEntity, GetEntityDetails, GetList, CreateFormEntity:
		def.result = entity

	case CreateJSONEntity, UpdateJSONEntity:
		// The creation payload kind may differ from the returned
		// representation kind, e.g. posting a document wrapper but getting
		// the document back. Absent a result kind, the entity kind is both.
		if result != "" {
			def.result = result
		} else {
			def.result = entity
		}

	case GetOwnedEntities, GetRelatedEntities, PostOwnedEntity, PatchOwnedEntity, DeleteOwnedEntity:
		if result == "" {
			return Definition{}, Errorf(CodeInvalidArgument, "category %s requires a result kind", category)
		}
		def.related, err = EndpointFor(result)
		if err != nil {
			return Definition{}, err
		}
		switch def.returns {
		case ReturnObject, ReturnCollection:
			def.result = result
		case ReturnBoolean, ReturnString:
			// No entity kind: the caller gets a bool or the raw body.
		}

	case DeleteEntity:
		// Always boolean, regardless of any supplied result kind.

	case PostEntityAction:
		// The result kind only names the action sub-path; the action returns
		// the acted-upon entity, not the sub-entity.
		if result == "" {
			return Definition{}, Errorf(CodeInvalidArgument, "category %s requires a result kind", category)
		}
		def.related, err = EndpointFor(result)
		if err != nil {
			return Definition{}, err
		}
		def.result = entity

	default:
		return Definition{}, Errorf(CodeConfiguration, "category %s has no construction rule", category)
	}

	return def, nil
}

// Category returns the category the definition was built from.
func (d Definition) Category() Category {
	return d.category
}

// Endpoint returns the resolved path segment of the primary entity kind.
func (d Definition) Endpoint() string {
	return d.endpoint
}

// RelatedEntity returns the resolved related-entity path segment, or an empty
// string for categories without one.
func (d Definition) RelatedEntity() string {
	return d.related
}

// Returns reports the definition's return kind.
func (d Definition) Returns() ReturnKind {
	return d.returns
}

// Result returns the entity kind of the decoded result. It is empty for
// boolean and string return kinds.
func (d Definition) Result() Kind {
	return d.result
}

// WithReturns returns a copy of the definition with the return kind
// overridden. The receiver is unchanged.
func (d Definition) WithReturns(returns ReturnKind) Definition {
	d.returns = returns
	return d
}
