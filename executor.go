package crediflow

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// paramFullDetails is injected automatically for details-fetch categories.
// Callers never supply it; supplying it anyway has no additional effect.
const paramFullDetails = "fullDetails"

// Executor turns a Definition plus caller arguments into one HTTP exchange
// and parses the response according to the definition's return kind. It is
// stateless across calls: all call state lives in the immutable Definition
// and the caller's Args, so one Executor serves any number of goroutines.
type Executor struct {
	transport    Transport
	logger       *slog.Logger
	interceptors []CallInterceptor
}

// NewExecutor creates an executor on top of the given transport.
func NewExecutor(transport Transport) *Executor {
	return &Executor{transport: transport}
}

// WithLogger sets a logger for per-call debug records.
// It returns the executor for chaining.
func (e *Executor) WithLogger(logger *slog.Logger) *Executor {
	e.logger = logger
	return e
}

// WithInterceptor adds a call interceptor. Interceptors run in the order
// they were added, outermost first, around the transport send.
func (e *Executor) WithInterceptor(i CallInterceptor) *Executor {
	e.interceptors = append(e.interceptors, i)
	return e
}

// Args carries the per-call inputs for one execution: the optional object
// and related ids for the URL path, the parameter set, and the payload for
// JSON-bodied categories.
type Args struct {
	ObjectID  string
	RelatedID string
	Params    *Params
	Body      any
}

// ExecuteObject runs a definition whose return kind is a single object and
// decodes the body into T.
func ExecuteObject[T any](ctx context.Context, e *Executor, def Definition, args Args) (T, error) {
	var zero T
	if def.Returns() != ReturnObject {
		return zero, Errorf(CodeInvalidArgument, "definition for %s returns %s, not a single object", def.Category(), def.Returns())
	}
	req, res, err := e.execute(ctx, def, args)
	if err != nil {
		return zero, err
	}
	v, err := decodeObject[T](res.Body)
	if err != nil {
		return zero, decodeDetails(err, req)
	}
	return v, nil
}

// ExecuteCollection runs a definition whose return kind is a collection and
// decodes the body into an ordered []T. An empty body yields an empty slice.
func ExecuteCollection[T any](ctx context.Context, e *Executor, def Definition, args Args) ([]T, error) {
	if def.Returns() != ReturnCollection {
		return nil, Errorf(CodeInvalidArgument, "definition for %s returns %s, not a collection", def.Category(), def.Returns())
	}
	req, res, err := e.execute(ctx, def, args)
	if err != nil {
		return nil, err
	}
	vs, err := decodeCollection[T](res.Body)
	if err != nil {
		return nil, decodeDetails(err, req)
	}
	return vs, nil
}

// ExecuteBoolean runs a definition whose return kind is a success flag. Any
// 2xx status yields true; every failure propagates as an error, so there is
// no successful false.
func ExecuteBoolean(ctx context.Context, e *Executor, def Definition, args Args) (bool, error) {
	if def.Returns() != ReturnBoolean {
		return false, Errorf(CodeInvalidArgument, "definition for %s returns %s, not a boolean", def.Category(), def.Returns())
	}
	if _, _, err := e.execute(ctx, def, args); err != nil {
		return false, err
	}
	return true, nil
}

// ExecuteString runs a definition whose return kind is a raw string and
// returns the body verbatim.
func ExecuteString(ctx context.Context, e *Executor, def Definition, args Args) (string, error) {
	if def.Returns() != ReturnString {
		return "", Errorf(CodeInvalidArgument, "definition for %s returns %s, not a string", def.Category(), def.Returns())
	}
	_, res, err := e.execute(ctx, def, args)
	if err != nil {
		return "", err
	}
	return string(res.Body), nil
}

// execute assembles the outbound request, runs it through the interceptor
// chain and the transport, and enforces the 2xx contract.
func (e *Executor) execute(ctx context.Context, def Definition, args Args) (*Request, *Response, error) {
	if def.category == "" {
		return nil, nil, NewError(CodeInvalidArgument, "definition is not built; use NewDefinition")
	}

	path, err := buildPath(def, args)
	if err != nil {
		return nil, nil, err
	}

	params := args.Params.clone()
	if def.category.WithFullDetails() {
		params.Set(paramFullDetails, "true")
	}

	method := def.category.Method()
	contentType := def.category.ContentType()

	req := &Request{
		Method:      method,
		ContentType: contentType,
		Header:      http.Header{},
	}

	// Parameters travel in the form body only for form-encoded POSTs;
	// everywhere else they go on the query string.
	encoded := params.Encode()
	if method == http.MethodPost && contentType == ContentTypeForm {
		req.Form = encoded
		req.URL = path
	} else {
		req.URL = path
		if encoded != "" {
			req.URL += "?" + encoded
		}
	}

	if args.Body != nil {
		if contentType != ContentTypeJSON {
			return nil, nil, Errorf(CodeInvalidArgument, "category %s does not accept a request body", def.category)
		}
		req.Body, err = json.Marshal(args.Body)
		if err != nil {
			return nil, nil, WrapError(CodeInvalidArgument, err, "cannot encode request body")
		}
	}

	send := CallFunc(e.transport.Send)
	var res *Response
	if chain := chainInterceptors(e.interceptors); chain != nil {
		res, err = chain(ctx, req, send)
	} else {
		res, err = send(ctx, req)
	}
	if err != nil {
		// Transport failures propagate unchanged.
		return req, nil, err
	}

	if e.logger != nil {
		e.logger.DebugContext(ctx, "api call",
			slog.String("method", req.Method),
			slog.String("url", req.URL),
			slog.Int("status", res.Status),
		)
	}

	if res.Status < 200 || res.Status > 299 {
		return req, nil, Errorf(CodeProtocol, "%s %s returned status %d", req.Method, req.URL, res.Status).
			WithDetails(map[string]any{
				"method": req.Method,
				"url":    req.URL,
				"status": res.Status,
				"body":   string(res.Body),
			})
	}

	return req, res, nil
}

// buildPath assembles endpoint[/objectID][/relatedEntity[/relatedID]].
// The object id is appended only when the category requires one, the
// related-entity segment only when the definition carries one, and the
// related id only underneath that segment.
func buildPath(def Definition, args Args) (string, error) {
	segments := []string{def.endpoint}

	if def.category.NeedsObjectID() {
		if args.ObjectID == "" {
			return "", Errorf(CodeInvalidArgument, "category %s requires an object id", def.category)
		}
		segments = append(segments, url.PathEscape(args.ObjectID))
	}

	if def.related != "" {
		segments = append(segments, def.related)
		if args.RelatedID != "" {
			segments = append(segments, url.PathEscape(args.RelatedID))
		}
	}

	return strings.Join(segments, "/"), nil
}

// decodeDetails annotates a decode error with the call that produced it.
func decodeDetails(err error, req *Request) error {
	apiErr, ok := err.(*Error)
	if !ok || req == nil {
		return err
	}
	return apiErr.WithDetails(map[string]any{
		"method": req.Method,
		"url":    req.URL,
	})
}
