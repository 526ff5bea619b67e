package crediflow

import (
	"context"
	"net/http"
	"testing"

	"github.com/crediflow/crediflow-go/testutil"
)

func TestSavingsGet(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodGet, "/savings/1234", http.StatusOK, `{"id":"1234","balance":310.75}`)
	api := newTestClient(t, server)

	account, err := api.Savings.Get(context.Background(), "1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID != "1234" || account.Balance != 310.75 {
		t.Errorf("unexpected account %+v", account)
	}
}

func TestSavingsDeposit(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodPost, "/savings/1234/transactions", http.StatusOK,
		`{"transactionId":42,"type":"DEPOSIT","amount":50,"balance":360.75}`)
	api := newTestClient(t, server)

	tx, err := api.Savings.Deposit(context.Background(), "1234", "50", "2014-02-15", "cash desk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ex := server.LastExchange(t)
	if ex.Path != "/savings/1234/transactions" {
		t.Errorf("unexpected path %q", ex.Path)
	}
	if ex.Body != "type=DEPOSIT&amount=50&date=2014-02-15&notes=cash+desk" {
		t.Errorf("unexpected form body %q", ex.Body)
	}
	if tx.Balance != 360.75 {
		t.Errorf("unexpected transaction %+v", tx)
	}
}

func TestSavingsTransactions(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodGet, "/savings/1234/transactions", http.StatusOK, `[]`)
	api := newTestClient(t, server)

	txs, err := api.Savings.Transactions(context.Background(), "1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("expected empty transactions, got %+v", txs)
	}
}

func TestSavingsApprove(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodPost, "/savings/1234/transactions", http.StatusOK,
		`{"id":"1234","accountState":"APPROVED"}`)
	api := newTestClient(t, server)

	account, err := api.Savings.Approve(context.Background(), "1234", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex := server.LastExchange(t); ex.Body != "type=APPROVAL" {
		t.Errorf("unexpected form body %q", ex.Body)
	}
	if account.AccountState != "APPROVED" {
		t.Errorf("unexpected account %+v", account)
	}
}
