package httpmock

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	minStatusCode = 100
	maxStatusCode = 599
)

type StatusCode int

func (s StatusCode) Int() int {
	return int(s)
}

func (s StatusCode) String() string {
	if text := http.StatusText(int(s)); text != "" {
		return fmt.Sprintf("%d %s", int(s), text)
	}

	return strconv.Itoa(int(s))
}

// ParseStatusCode accepts a StatusCode, any integer kind, a numeric string or a fmt.Stringer
// rendering a numeric string. The code has to be within 100 and 599.
func ParseStatusCode(input any) (StatusCode, error) {
	var code int64

	if isNil(input) {
		return 0, newConversionError(OpStatusCode, input, "status code is nil")
	}

	switch v := input.(type) {
	case StatusCode:
		code = int64(v)
	case int:
		code = int64(v)
	case int8:
		code = int64(v)
	case int16:
		code = int64(v)
	case int32:
		code = int64(v)
	case int64:
		code = v
	case uint:
		code = clampUint(uint64(v))
	case uint8:
		code = int64(v)
	case uint16:
		code = int64(v)
	case uint32:
		code = int64(v)
	case uint64:
		code = clampUint(v)
	case string:
		return parseStatusCodeString(input, v)
	case fmt.Stringer:
		return parseStatusCodeString(input, v.String())
	default:
		return 0, newConversionError(OpStatusCode, input, "unsupported type %T", input)
	}

	if code < minStatusCode || code > maxStatusCode {
		return 0, newConversionError(OpStatusCode, input, "%d is outside of the range %d to %d", code, minStatusCode, maxStatusCode)
	}

	return StatusCode(code), nil
}

func parseStatusCodeString(input any, s string) (StatusCode, error) {
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, newConversionError(OpStatusCode, input, "%q is not numeric", s)
	}

	if code < minStatusCode || code > maxStatusCode {
		return 0, newConversionError(OpStatusCode, input, "%d is outside of the range %d to %d", code, minStatusCode, maxStatusCode)
	}

	return StatusCode(code), nil
}

func clampUint(v uint64) int64 {
	if v > maxStatusCode {
		return maxStatusCode + 1
	}

	return int64(v)
}
