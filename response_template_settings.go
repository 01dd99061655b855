package httpmock

import (
	"errors"
	"fmt"
	"sort"

	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/encoding/base64"
)

type ResponseTemplateSettings struct {
	Status     int                 `cfg:"status" default:"200"`
	Headers    map[string][]string `cfg:"headers"`
	Body       string              `cfg:"body"`
	BodyBase64 string              `cfg:"body_base64"`
}

func ResponseTemplateSettingsKey(name string) string {
	return fmt.Sprintf("httpmock.templates.%s", name)
}

// NewResponseTemplateFromConfig reads the template declared at httpmock.templates.<name>.
func NewResponseTemplateFromConfig(config cfg.Config, name string) (ResponseTemplate, error) {
	settings := &ResponseTemplateSettings{}
	if err := config.UnmarshalKey(ResponseTemplateSettingsKey(name), settings); err != nil {
		return ResponseTemplate{}, fmt.Errorf("failed to unmarshal response template settings for %q: %w", name, err)
	}

	tmpl, err := NewResponseTemplateWithSettings(settings)
	if err != nil {
		return ResponseTemplate{}, fmt.Errorf("invalid response template %q: %w", name, err)
	}

	return tmpl, nil
}

// NewResponseTemplateWithSettings returns conversion failures as errors instead of panicking.
func NewResponseTemplateWithSettings(settings *ResponseTemplateSettings) (ResponseTemplate, error) {
	var err error
	var statusCode StatusCode

	if statusCode, err = ParseStatusCode(settings.Status); err != nil {
		return ResponseTemplate{}, err
	}

	tmpl := ResponseTemplate{
		statusCode: statusCode,
		headers:    make(map[HeaderName][]HeaderValue, len(settings.Headers)),
	}

	names := make([]string, 0, len(settings.Headers))
	for name := range settings.Headers {
		names = append(names, name)
	}
	// differently cased names merge into one header, sorting keeps the merged order stable
	sort.Strings(names)

	for _, name := range names {
		var key HeaderName

		if key, err = ParseHeaderName(name); err != nil {
			return ResponseTemplate{}, err
		}

		for _, value := range settings.Headers[name] {
			var val HeaderValue

			if val, err = ParseHeaderValue(value); err != nil {
				return ResponseTemplate{}, err
			}

			tmpl.headers[key] = append(tmpl.headers[key], val)
		}
	}

	switch {
	case settings.Body != "" && settings.BodyBase64 != "":
		return ResponseTemplate{}, errors.New("body and body_base64 can not be set at the same time")
	case settings.Body != "":
		tmpl.body = []byte(settings.Body)
		tmpl.hasBody = true
	case settings.BodyBase64 != "":
		var body []byte

		if body, err = base64.Decode([]byte(settings.BodyBase64)); err != nil {
			return ResponseTemplate{}, newConversionError(OpBody, settings.BodyBase64, "can not decode base64 body: %s", err)
		}

		tmpl.body = body
		tmpl.hasBody = true
	}

	return tmpl, nil
}
