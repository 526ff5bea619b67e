package crediflow

import (
	"net/url"
	"sort"

	"github.com/gorilla/schema"
)

var paramsEncoder = schema.NewEncoder()

// Parameter names shared across the resource services.
const (
	paramOffset = "offset"
	paramLimit  = "limit"
	paramType   = "type"
	paramAmount = "amount"
	paramDate   = "date"
	paramNotes  = "notes"
)

// Params is an ordered set of request parameters. Depending on the
// definition's content type they travel in the query string (GET, DELETE,
// PATCH, form-less POST) or in the form body (form-encoded POST). Unlike
// url.Values, encoding preserves insertion order.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// ParamsFrom encodes a struct with schema tags into a parameter set. Field
// order follows the sorted encoded keys so the result is deterministic.
//
//	type filter struct {
//		DueFrom string `schema:"dueFrom"`
//		DueTo   string `schema:"dueTo"`
//	}
func ParamsFrom(v any) (*Params, error) {
	dst := url.Values{}
	if err := paramsEncoder.Encode(v, dst); err != nil {
		return nil, WrapError(CodeInvalidArgument, err, "cannot encode parameter struct")
	}
	keys := make([]string, 0, len(dst))
	for k := range dst {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := NewParams()
	for _, k := range keys {
		p.Set(k, dst.Get(k))
	}
	return p, nil
}

// Set stores a parameter, replacing any previous value for the key while
// keeping the key's original position.
func (p *Params) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key, or an empty string if absent.
func (p *Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p.values[key]
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.values[key]
	return ok
}

// Len returns the number of parameters with non-empty values.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, k := range p.keys {
		if p.values[k] != "" {
			n++
		}
	}
	return n
}

// Encode returns the URL-encoded form of the parameters in insertion order.
// Keys with empty values are omitted: optional parameters a caller never
// filled in must not reach the wire.
func (p *Params) Encode() string {
	if p == nil {
		return ""
	}
	var buf []byte
	for _, k := range p.keys {
		v := p.values[k]
		if v == "" {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '&')
		}
		buf = append(buf, url.QueryEscape(k)...)
		buf = append(buf, '=')
		buf = append(buf, url.QueryEscape(v)...)
	}
	return string(buf)
}

// clone returns a copy so the executor can inject parameters without
// mutating the caller's set.
func (p *Params) clone() *Params {
	out := NewParams()
	if p == nil {
		return out
	}
	for _, k := range p.keys {
		out.Set(k, p.values[k])
	}
	return out
}
