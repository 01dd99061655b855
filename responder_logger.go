package httpmock

import (
	"context"

	"github.com/justtrackio/gosoline/pkg/log"
)

func logResponse(logger log.Logger, ctx context.Context, method string, path string, response Response, err error) {
	fields := log.Fields{
		"request_method": method,
		"request_path":   path,
		"status":         response.StatusCode(),
	}

	if body, bodyErr := response.Body(); bodyErr == nil {
		fields["bytes"] = len(body)
	}

	logger = logger.WithFields(fields)

	if err != nil {
		logger.Error(ctx, "%s %s: %w", method, path, err)

		return
	}

	logger.Info(ctx, "%s %s answered with mock response %d", method, path, response.StatusCode())
}
