package decode

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/specialistvlad/stdinarg"
)

// JSON decodes the content as a JSON document into a T.
func JSON[T any]() stdinarg.ParseFunc[T] {
	return func(s string) (T, error) {
		var v T
		err := json.Unmarshal([]byte(s), &v)
		return v, err
	}
}

// JSONStrict is JSON that also rejects unknown object fields and trailing
// data after the document.
func JSONStrict[T any]() stdinarg.ParseFunc[T] {
	return func(s string) (T, error) {
		var v T
		dec := json.NewDecoder(strings.NewReader(s))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&v); err != nil {
			return v, err
		}
		if dec.More() {
			return v, errTrailingData
		}
		return v, nil
	}
}
