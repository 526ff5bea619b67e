package crediflow

import (
	"context"
	"net/http"
	"testing"

	"github.com/crediflow/crediflow-go/model"
	"github.com/crediflow/crediflow-go/testutil"
)

func TestClientsGet(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodGet, "/clients/3444", http.StatusOK,
		`{"id":"3444","firstName":"Maria","lastName":"Popescu"}`)
	api := newTestClient(t, server)

	client, err := api.Clients.Get(context.Background(), "3444")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.FirstName != "Maria" || client.LastName != "Popescu" {
		t.Errorf("unexpected client %+v", client)
	}
	if ex := server.LastExchange(t); ex.Query != "" {
		t.Errorf("plain get must not inject parameters, got %q", ex.Query)
	}
}

func TestClientsLoans(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodGet, "/clients/456/loans", http.StatusOK, `[{"id":"822"}]`)
	api := newTestClient(t, server)

	loans, err := api.Clients.Loans(context.Background(), "456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 1 || loans[0].ID != "822" {
		t.Errorf("unexpected loans %+v", loans)
	}
}

func TestClientsCreateForm(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodPost, "/clients", http.StatusOK,
		`{"id":"77","firstName":"Ion","lastName":"Ionescu"}`)
	api := newTestClient(t, server)

	created, err := api.Clients.CreateForm(context.Background(), model.Client{
		FirstName: "Ion",
		LastName:  "Ionescu",
		Email:     "ion@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ex := server.LastExchange(t)
	if ex.Header.Get("Content-Type") != string(ContentTypeForm) {
		t.Errorf("expected form content type, got %q", ex.Header.Get("Content-Type"))
	}
	if ex.Body != "firstName=Ion&lastName=Ionescu&emailAddress=ion%40example.com" {
		t.Errorf("unexpected form body %q", ex.Body)
	}
	if created.ID != "77" {
		t.Errorf("unexpected created client %+v", created)
	}
}

func TestClientsCreateFormRejectsInvalidPayload(t *testing.T) {
	server := testutil.NewServer(t)
	api := newTestClient(t, server)

	_, err := api.Clients.CreateForm(context.Background(), model.Client{FirstName: "Ion"})
	if CodeOf(err) != CodeInvalidArgument {
		t.Fatalf("expected %s for missing last name, got %v", CodeInvalidArgument, err)
	}
	if len(server.Exchanges()) != 0 {
		t.Error("invalid payload must not reach the backend")
	}
}

func TestClientsUpdateCustomField(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodPatch, "/clients/456/custominformation/loan_officer", http.StatusOK, "")
	api := newTestClient(t, server)

	ok, err := api.Clients.UpdateCustomField(context.Background(), "456", "loan_officer", "maria")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true on 2xx")
	}

	ex := server.LastExchange(t)
	if ex.Body != `{"value":"maria"}` {
		t.Errorf("unexpected body %q", ex.Body)
	}
	if ex.Header.Get("Content-Type") != string(ContentTypeJSON) {
		t.Errorf("expected JSON content type, got %q", ex.Header.Get("Content-Type"))
	}
}

func TestClientsDeleteCustomField(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodDelete, "/clients/456/custominformation/loan_officer", http.StatusOK, "")
	api := newTestClient(t, server)

	ok, err := api.Clients.DeleteCustomField(context.Background(), "456", "loan_officer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true on 2xx")
	}
}

func TestClientsDeleteCustomFieldFailure(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodDelete, "/clients/456/custominformation/loan_officer",
		http.StatusBadRequest, `{"returnCode":912}`)
	api := newTestClient(t, server)

	ok, err := api.Clients.DeleteCustomField(context.Background(), "456", "loan_officer")
	if err == nil {
		t.Fatal("expected protocol error")
	}
	if ok {
		t.Error("a failed delete must never report success")
	}
	if CodeOf(err) != CodeProtocol {
		t.Errorf("expected code %s, got %s", CodeProtocol, CodeOf(err))
	}
}
