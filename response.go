package httpmock

import (
	"net/http"
)

// Response is the materialized form of a ResponseTemplate as consumed by the serving layer.
type Response interface {
	Body() ([]byte, error)
	Header() http.Header
	StatusCode() int
}

type response struct {
	body       []byte
	header     http.Header
	statusCode int
}

func NewResponse(options ...ResponseOption) *response {
	resp := &response{
		body:       []byte{},
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}

	for _, option := range options {
		option(resp)
	}

	return resp
}

func (r response) Body() ([]byte, error) {
	return r.body, nil
}

func (r response) Header() http.Header {
	return r.header
}

func (r response) StatusCode() int {
	return r.statusCode
}
