// Package crediflow is a client SDK for the Crediflow core-banking REST API.
//
// Instead of one hand-written function per endpoint, every class of call is
// described by a [Definition]: a category (the URL shape, HTTP method,
// content type and return kind rules) bound to one or two entity kinds whose
// path segments come from a fixed endpoint table. A single generic executor
// turns a definition plus per-call arguments into the HTTP exchange and the
// typed result.
//
// Most callers use the resource services on [Client]:
//
//	api, err := crediflow.NewClient("https://demo.crediflow.dev/api")
//	if err != nil {
//		log.Fatal(err)
//	}
//	api.WithInterceptor(middleware.BasicAuth(user, password))
//
//	schedule, err := api.Repayments.ForLoanAccount(ctx, "822")
//
// Definitions can also be built directly for endpoints the services do not
// cover:
//
//	def, err := crediflow.NewDefinitionWith(crediflow.GetOwnedEntities,
//		crediflow.KindLoanAccount, crediflow.KindRepayment)
//	if err != nil {
//		return err
//	}
//	repayments, err := crediflow.ExecuteCollection[model.Repayment](
//		ctx, api.Executor(), def, crediflow.Args{ObjectID: "822"})
//
// Definitions and the endpoint table are immutable after construction, and
// the executor keeps no state between calls, so everything here is safe for
// concurrent use.
package crediflow
