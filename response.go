package crediflow

import (
	"bytes"
	"encoding/json"
)

// decodeObject parses a response body as a single instance of T.
func decodeObject[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, WrapError(CodeDecode, err, "response body is not a single object")
	}
	return v, nil
}

// decodeCollection parses a response body as an ordered sequence of T.
// An empty body is valid and yields an empty, non-nil slice.
func decodeCollection[T any](body []byte) ([]T, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return []T{}, nil
	}
	var vs []T
	if err := json.Unmarshal(body, &vs); err != nil {
		return nil, WrapError(CodeDecode, err, "response body is not a collection")
	}
	if vs == nil {
		vs = []T{}
	}
	return vs, nil
}
