package crediflow

import "testing"

func TestEndpointFor(t *testing.T) {
	tests := []struct {
		kind    Kind
		segment string
	}{
		{KindClient, "clients"},
		{KindClientDetails, "clients"},
		{KindGroup, "groups"},
		{KindGroupDetails, "groups"},
		{KindLoanAccount, "loans"},
		{KindLoanTransaction, "transactions"},
		{KindRepayment, "repayments"},
		{KindLoanProduct, "loanproducts"},
		{KindSavingsAccount, "savings"},
		{KindSavingsTransaction, "transactions"},
		{KindSavingsProduct, "savingsproducts"},
		{KindBranch, "branches"},
		{KindCentre, "centres"},
		{KindUser, "users"},
		{KindCurrency, "currencies"},
		{KindTask, "tasks"},
		{KindDocument, "documents"},
		{KindCustomFieldValue, "custominformation"},
		{KindSearchResult, "search"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			segment, err := EndpointFor(tt.kind)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if segment != tt.segment {
				t.Errorf("expected segment %q, got %q", tt.segment, segment)
			}
		})
	}
}

func TestEndpointForUnknownKind(t *testing.T) {
	_, err := EndpointFor(Kind("ledger"))
	if err == nil {
		t.Fatal("expected error for unregistered kind")
	}
	if CodeOf(err) != CodeConfiguration {
		t.Errorf("expected code %s, got %s", CodeConfiguration, CodeOf(err))
	}
}
