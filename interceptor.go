package crediflow

import "context"

// CallFunc represents the next stage of an interceptor chain. It is passed
// to [CallInterceptor] functions to invoke the next interceptor or the
// transport itself.
type CallFunc func(ctx context.Context, req *Request) (*Response, error)

// CallInterceptor is a hook that wraps the outbound call.
//
//	func timing(ctx context.Context, req *crediflow.Request, next crediflow.CallFunc) (*crediflow.Response, error) {
//		start := time.Now()
//		res, err := next(ctx, req)
//		log.Printf("%s %s took %v", req.Method, req.URL, time.Since(start))
//		return res, err
//	}
//
// Interceptors can inspect or amend the request (headers in particular),
// inspect the response, short-circuit by returning an error without calling
// next, or add values to the context.
type CallInterceptor func(ctx context.Context, req *Request, next CallFunc) (*Response, error)

// chainInterceptors combines multiple interceptors into a single one.
// The first interceptor in the slice is the outer-most one (runs first).
func chainInterceptors(interceptors []CallInterceptor) CallInterceptor {
	if len(interceptors) == 0 {
		return nil
	}
	if len(interceptors) == 1 {
		return interceptors[0]
	}
	return func(ctx context.Context, req *Request, next CallFunc) (*Response, error) {
		chain := next
		for i := len(interceptors) - 1; i >= 1; i-- {
			current := interceptors[i]
			inner := chain
			chain = func(ctx context.Context, req *Request) (*Response, error) {
				return current(ctx, req, inner)
			}
		}
		return interceptors[0](ctx, req, chain)
	}
}
