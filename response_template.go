package httpmock

import (
	"maps"
	"slices"

	"github.com/justtrackio/gosoline/pkg/encoding/json"
	"github.com/justtrackio/gosoline/pkg/funk"
)

const (
	contentTypeJson = "application/json; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
)

// ResponseTemplate describes the response a mock server returns once a mock matched an
// incoming request. Every method returns an updated copy, so a template can be shared as a
// base and refined by different mocks without them affecting each other.
//
// Inputs are converted when they are declared. A value which can not be converted makes the
// method panic with a *ConversionError.
type ResponseTemplate struct {
	statusCode StatusCode
	headers    map[HeaderName][]HeaderValue
	body       []byte
	hasBody    bool
}

// NewResponseTemplate starts a template with the given status code, see ParseStatusCode for the
// accepted inputs.
func NewResponseTemplate(statusCode any) ResponseTemplate {
	return ResponseTemplate{
		statusCode: must(ParseStatusCode(statusCode)),
		headers:    make(map[HeaderName][]HeaderValue),
	}
}

// AppendHeader adds value to the values already declared for name. If there are none yet, the
// header is created with value as its only value.
func (t ResponseTemplate) AppendHeader(name any, value any) ResponseTemplate {
	key := must(ParseHeaderName(name))
	val := must(ParseHeaderValue(value))

	existing := t.headers[key]
	values := make([]HeaderValue, len(existing), len(existing)+1)
	copy(values, existing)

	t.headers = t.cloneHeaders()
	t.headers[key] = append(values, val)

	return t
}

// InsertHeader drops all values declared for name and replaces them with value.
func (t ResponseTemplate) InsertHeader(name any, value any) ResponseTemplate {
	key := must(ParseHeaderName(name))
	val := must(ParseHeaderValue(value))

	t.headers = t.cloneHeaders()
	t.headers[key] = []HeaderValue{val}

	return t
}

// SetBody replaces the body, see ParseBody for the accepted inputs.
func (t ResponseTemplate) SetBody(body any) ResponseTemplate {
	t.body = must(ParseBody(body))
	t.hasBody = true

	return t
}

func (t ResponseTemplate) SetBodyString(text string) ResponseTemplate {
	return t.SetBody(text).InsertHeader("Content-Type", contentTypeText)
}

// SetBodyJson encodes v as json and sets the matching content type.
func (t ResponseTemplate) SetBodyJson(v any) ResponseTemplate {
	body, err := json.Marshal(v)
	if err != nil {
		panic(newConversionError(OpBody, v, "can not encode body as json: %s", err))
	}

	return t.SetBody(body).InsertHeader("Content-Type", contentTypeJson)
}

func (t ResponseTemplate) StatusCode() StatusCode {
	return t.statusCode
}

// Header returns a copy of the values declared for name or nil if there are none. An invalid
// name has no values.
func (t ResponseTemplate) Header(name any) []string {
	key, err := ParseHeaderName(name)
	if err != nil {
		return nil
	}

	values, ok := t.headers[key]
	if !ok {
		return nil
	}

	return headerValueStrings(values)
}

func (t ResponseTemplate) HeaderNames() []HeaderName {
	return slices.Sorted(maps.Keys(t.headers))
}

func (t ResponseTemplate) Body() []byte {
	return cloneBytes(t.body)
}

func (t ResponseTemplate) HasBody() bool {
	return t.hasBody
}

// Materialize builds the concrete response. It can be called any number of times, every call
// returns a response which does not share memory with the template or earlier responses.
func (t ResponseTemplate) Materialize() Response {
	options := make([]ResponseOption, 0, len(t.headers)+2)
	options = append(options, WithStatusCode(t.statusCode.Int()))

	for name, values := range t.headers {
		options = append(options, WithHeaderValues(name.String(), headerValueStrings(values)...))
	}

	if t.hasBody {
		options = append(options, WithBody(t.body))
	}

	return NewResponse(options...)
}

func (t ResponseTemplate) cloneHeaders() map[HeaderName][]HeaderValue {
	headers := make(map[HeaderName][]HeaderValue, len(t.headers)+1)
	maps.Copy(headers, t.headers)

	return headers
}

func headerValueStrings(values []HeaderValue) []string {
	return funk.Map(values, func(value HeaderValue) string {
		return value.String()
	})
}
