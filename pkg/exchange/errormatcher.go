package exchange

import (
	"strings"

	"github.com/valyala/fastjson"

	"github.com/uniex/uniex/pkg/types"
)

// BroadRule matches a known phrase anywhere inside the error message.
type BroadRule struct {
	Substring string
	Kind      error
}

// ErrorMatcher is the per-adapter error translation table. Exact code
// matches always win over broad substring matches; anything recognizable
// but unmatched becomes the ErrExchange catch-all with the raw body
// attached.
type ErrorMatcher struct {
	Exchange types.ExchangeName

	// Exact maps a native error code (or exact message) onto a kind.
	Exact map[string]error

	// Broad is scanned in order against the lower-cased message.
	Broad []BroadRule
}

// Translate converts an exchange-reported failure into a typed error from
// the closed taxonomy. code and message are whatever the adapter extracted
// from the response body. A response with no recognizable error marker is
// not an error, even on a non-2xx status: some exchanges flag success only
// in the body.
func (m *ErrorMatcher) Translate(httpStatus int, code, message string, body []byte) error {
	if code == "" && message == "" {
		return nil
	}

	kind := m.match(code, message)

	return &types.RequestError{
		Kind:       kind,
		Exchange:   m.Exchange,
		HTTPStatus: httpStatus,
		Code:       code,
		Message:    message,
		Body:       body,
	}
}

func (m *ErrorMatcher) match(code, message string) error {
	if code != "" {
		if kind, ok := m.Exact[code]; ok {
			return kind
		}
	}

	if message != "" {
		if kind, ok := m.Exact[message]; ok {
			return kind
		}

		lower := strings.ToLower(message)
		for _, rule := range m.Broad {
			if strings.Contains(lower, strings.ToLower(rule.Substring)) {
				return rule.Kind
			}
		}
	}

	return types.ErrExchange
}

// SniffErrorFields pulls the error code and message out of a raw response
// body without committing to a full schema. codePaths and messagePaths are
// tried in order; the first non-empty value wins. A body that is not JSON
// yields empty fields.
func SniffErrorFields(body []byte, codePaths, messagePaths [][]string) (code, message string) {
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return "", ""
	}

	for _, path := range codePaths {
		field := v.Get(path...)
		if field == nil {
			continue
		}

		switch field.Type() {
		case fastjson.TypeString:
			code = string(field.GetStringBytes())
		case fastjson.TypeNumber:
			code = field.String()
		}

		if code != "" && code != "0" {
			break
		}
		code = ""
	}

	for _, path := range messagePaths {
		field := v.Get(path...)
		if field == nil || field.Type() != fastjson.TypeString {
			continue
		}

		message = string(field.GetStringBytes())
		if message != "" {
			break
		}
	}

	return code, message
}
