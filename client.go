package crediflow

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// validate checks create/update payloads before they are encoded; the
// backend would reject them anyway, this just fails fast with a local error.
var validate = validator.New()

// Client is the entry point to the SDK. It owns a single Executor and one
// service per backend resource. A Client is safe for concurrent use.
//
//	api, err := crediflow.NewClient("https://demo.crediflow.dev/api")
//	if err != nil {
//		return err
//	}
//	repayments, err := api.Repayments.ForLoanAccount(ctx, "822")
type Client struct {
	executor *Executor

	Clients    *ClientsService
	Loans      *LoansService
	Repayments *RepaymentsService
	Savings    *SavingsService
}

// NewClient creates a Client talking to the API rooted at baseURL.
func NewClient(baseURL string) (*Client, error) {
	transport, err := NewHTTPTransport(baseURL)
	if err != nil {
		return nil, err
	}
	return NewClientWithTransport(transport), nil
}

// NewClientWithTransport creates a Client on a caller-supplied transport.
// Use this to swap in a custom networking layer or a test double.
func NewClientWithTransport(transport Transport) *Client {
	executor := NewExecutor(transport)
	return &Client{
		executor:   executor,
		Clients:    NewClientsService(executor),
		Loans:      NewLoansService(executor),
		Repayments: NewRepaymentsService(executor),
		Savings:    NewSavingsService(executor),
	}
}

// WithLogger sets a logger on the underlying executor.
// It returns the client for chaining.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.executor.WithLogger(logger)
	return c
}

// WithInterceptor adds a call interceptor to the underlying executor.
// It returns the client for chaining.
func (c *Client) WithInterceptor(i CallInterceptor) *Client {
	c.executor.WithInterceptor(i)
	return c
}

// Executor exposes the underlying executor for callers that build their own
// definitions on top of the SDK's registry.
func (c *Client) Executor() *Executor {
	return c.executor
}
