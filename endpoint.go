package crediflow

// Kind identifies one backend resource type and, through the endpoint table,
// its URL path segment. Kinds are explicit tags: every model type maps to
// exactly one Kind, decided at compile time rather than by reflection.
type Kind string

const (
	KindClient             Kind = "client"
	KindClientDetails      Kind = "client_details"
	KindGroup              Kind = "group"
	KindGroupDetails       Kind = "group_details"
	KindLoanAccount        Kind = "loan_account"
	KindLoanTransaction    Kind = "loan_transaction"
	KindRepayment          Kind = "repayment"
	KindLoanProduct        Kind = "loan_product"
	KindSavingsAccount     Kind = "savings_account"
	KindSavingsTransaction Kind = "savings_transaction"
	KindSavingsProduct     Kind = "savings_product"
	KindBranch             Kind = "branch"
	KindCentre             Kind = "centre"
	KindUser               Kind = "user"
	KindCurrency           Kind = "currency"
	KindTask               Kind = "task"
	KindDocument           Kind = "document"
	KindCustomFieldValue   Kind = "custom_field_value"
	KindSearchResult       Kind = "search_result"
)

// endpoints maps each entity kind to its URL path segment. Populated once at
// load time and read-only thereafter, so concurrent lookups need no locking.
var endpoints = map[Kind]string{
	KindClient:             "clients",
	KindClientDetails:      "clients",
	KindGroup:              "groups",
	KindGroupDetails:       "groups",
	KindLoanAccount:        "loans",
	KindLoanTransaction:    "transactions",
	KindRepayment:          "repayments",
	KindLoanProduct:        "loanproducts",
	KindSavingsAccount:     "savings",
	KindSavingsTransaction: "transactions",
	KindSavingsProduct:     "savingsproducts",
	KindBranch:             "branches",
	KindCentre:             "centres",
	KindUser:               "users",
	KindCurrency:           "currencies",
	KindTask:               "tasks",
	KindDocument:           "documents",
	KindCustomFieldValue:   "custominformation",
	KindSearchResult:       "search",
}

// EndpointFor returns the URL path segment for the given entity kind.
// It returns a configuration error for kinds with no registered endpoint.
func EndpointFor(kind Kind) (string, error) {
	segment, ok := endpoints[kind]
	if !ok {
		return "", Errorf(CodeConfiguration, "no endpoint registered for kind %q", kind)
	}
	return segment, nil
}
