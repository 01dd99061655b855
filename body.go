package httpmock

import (
	"encoding/json"
	"fmt"
	"io"
)

// ParseBody returns a private copy of the given payload. Readers are drained completely.
func ParseBody(input any) ([]byte, error) {
	if isNil(input) {
		return nil, newConversionError(OpBody, input, "body is nil")
	}

	switch v := input.(type) {
	case []byte:
		return cloneBytes(v), nil
	case json.RawMessage:
		return cloneBytes(v), nil
	case string:
		return []byte(v), nil
	case io.Reader:
		body, err := io.ReadAll(v)
		if err != nil {
			return nil, newConversionError(OpBody, input, "can not read body: %s", err)
		}

		return body, nil
	case fmt.Stringer:
		return []byte(v.String()), nil
	default:
		return nil, newConversionError(OpBody, input, "unsupported type %T", input)
	}
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	return out
}
