package httpmock

import (
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/net/http/httpguts"
)

// HeaderName is a validated header field name in its canonical form. Two names differing
// only in case convert to the same HeaderName.
type HeaderName string

// HeaderValue is a header field value free of control characters.
type HeaderValue string

func (n HeaderName) String() string {
	return string(n)
}

func (v HeaderValue) String() string {
	return string(v)
}

func ParseHeaderName(input any) (HeaderName, error) {
	var name string

	if isNil(input) {
		return "", newConversionError(OpHeaderName, input, "header name is nil")
	}

	switch v := input.(type) {
	case HeaderName:
		name = string(v)
	case string:
		name = v
	case []byte:
		name = string(v)
	case fmt.Stringer:
		name = v.String()
	default:
		return "", newConversionError(OpHeaderName, input, "unsupported type %T", input)
	}

	if !httpguts.ValidHeaderFieldName(name) {
		return "", newConversionError(OpHeaderName, input, "%q is not a valid header field name", name)
	}

	return HeaderName(http.CanonicalHeaderKey(name)), nil
}

func ParseHeaderValue(input any) (HeaderValue, error) {
	var value string

	if isNil(input) {
		return "", newConversionError(OpHeaderValue, input, "header value is nil")
	}

	switch v := input.(type) {
	case HeaderValue:
		value = string(v)
	case string:
		value = v
	case []byte:
		value = string(v)
	case StatusCode:
		value = strconv.Itoa(int(v))
	case int:
		value = strconv.FormatInt(int64(v), 10)
	case int8:
		value = strconv.FormatInt(int64(v), 10)
	case int16:
		value = strconv.FormatInt(int64(v), 10)
	case int32:
		value = strconv.FormatInt(int64(v), 10)
	case int64:
		value = strconv.FormatInt(v, 10)
	case uint:
		value = strconv.FormatUint(uint64(v), 10)
	case uint8:
		value = strconv.FormatUint(uint64(v), 10)
	case uint16:
		value = strconv.FormatUint(uint64(v), 10)
	case uint32:
		value = strconv.FormatUint(uint64(v), 10)
	case uint64:
		value = strconv.FormatUint(v, 10)
	case fmt.Stringer:
		value = v.String()
	default:
		return "", newConversionError(OpHeaderValue, input, "unsupported type %T", input)
	}

	if !httpguts.ValidHeaderFieldValue(value) {
		return "", newConversionError(OpHeaderValue, input, "%q is not a valid header field value", value)
	}

	return HeaderValue(value), nil
}
