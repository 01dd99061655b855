package httpmock

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v3"
	"github.com/justtrackio/gosoline/pkg/log"
)

var ErrInformationalStatus = errors.New("informational status codes can not be sent as final response")

// checkFinalStatus rejects 1xx codes. net/http only sends them as interim responses followed by
// an implicit 200 and fasthttp writes them as a final status line clients do not accept.
func checkFinalStatus(response Response) error {
	if code := response.StatusCode(); code >= 100 && code < 200 {
		return fmt.Errorf("status %d: %w", code, ErrInformationalStatus)
	}

	return nil
}

// WriteResponse sends the response on a net/http writer. Every header value is sent as its own
// header line. A 1xx status is rejected with ErrInformationalStatus before anything is written.
//
// net/http still adds headers of its own: without a declared Content-Type it sniffs one from a
// non-empty body, and it sets Content-Length and Date.
func WriteResponse(writer http.ResponseWriter, response Response) error {
	var err error
	var body []byte

	if err = checkFinalStatus(response); err != nil {
		return err
	}

	if body, err = response.Body(); err != nil {
		return fmt.Errorf("body read error: %w", err)
	}

	for key, values := range response.Header() {
		for _, value := range values {
			writer.Header().Add(key, value)
		}
	}

	writer.WriteHeader(response.StatusCode())

	if _, err = writer.Write(body); err != nil {
		return fmt.Errorf("body write error: %w", err)
	}

	return nil
}

func NewHttpHandler(logger log.Logger, template ResponseTemplate) http.Handler {
	logger = logger.WithChannel("httpmock")

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		response := template.Materialize()
		err := WriteResponse(writer, response)

		if errors.Is(err, ErrInformationalStatus) {
			http.Error(writer, err.Error(), http.StatusInternalServerError)
		}

		logResponse(logger, request.Context(), request.Method, request.URL.Path, response, err)
	})
}

func NewGinHandler(logger log.Logger, template ResponseTemplate) gin.HandlerFunc {
	logger = logger.WithChannel("httpmock")

	return func(ginCtx *gin.Context) {
		var err error
		var body []byte

		response := template.Materialize()
		ctx := ginCtx.Request.Context()

		defer func() {
			logResponse(logger, ctx, ginCtx.Request.Method, ginCtx.Request.URL.Path, response, err)
		}()

		if err = checkFinalStatus(response); err != nil {
			ginCtx.Error(err)
			ginCtx.String(http.StatusInternalServerError, err.Error())

			return
		}

		if body, err = response.Body(); err != nil {
			err = fmt.Errorf("body read error: %w", err)
			ginCtx.Error(err)

			return
		}

		for key, values := range response.Header() {
			for _, value := range values {
				ginCtx.Writer.Header().Add(key, value)
			}
		}

		ginCtx.Status(response.StatusCode())
		ginCtx.Writer.WriteHeaderNow()

		if _, err = ginCtx.Writer.Write(body); err != nil {
			err = fmt.Errorf("body write error: %w", err)
			ginCtx.Error(err)
		}
	}
}

// NewFiberHandler serves the template through fiber. A 1xx status is returned as error and
// answered by the app's error handler. fasthttp sets a default Content-Type of its own if the
// template declares none.
func NewFiberHandler(logger log.Logger, template ResponseTemplate) fiber.Handler {
	logger = logger.WithChannel("httpmock")

	return func(reqCtx fiber.Ctx) error {
		response := template.Materialize()

		if err := checkFinalStatus(response); err != nil {
			logResponse(logger, reqCtx.Context(), reqCtx.Method(), reqCtx.Path(), response, err)

			return err
		}

		body, err := response.Body()
		if err != nil {
			err = fmt.Errorf("body read error: %w", err)
			logResponse(logger, reqCtx.Context(), reqCtx.Method(), reqCtx.Path(), response, err)

			return err
		}

		for key, values := range response.Header() {
			for _, value := range values {
				reqCtx.Response().Header.Add(key, value)
			}
		}

		reqCtx.Status(response.StatusCode())

		if err = reqCtx.Send(body); err != nil {
			err = fmt.Errorf("body write error: %w", err)
		}

		logResponse(logger, reqCtx.Context(), reqCtx.Method(), reqCtx.Path(), response, err)

		return err
	}
}
