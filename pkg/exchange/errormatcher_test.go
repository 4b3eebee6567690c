package exchange

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniex/uniex/pkg/types"
)

func newTestMatcher() *ErrorMatcher {
	return &ErrorMatcher{
		Exchange: types.ExchangeBinance,
		Exact: map[string]error{
			"-2010": types.ErrInsufficientFunds,
			"-2013": types.ErrOrderNotFound,
		},
		Broad: []BroadRule{
			{Substring: "insufficient", Kind: types.ErrInsufficientFunds},
			{Substring: "order does not exist", Kind: types.ErrOrderNotFound},
			{Substring: "too many requests", Kind: types.ErrRateLimitExceeded},
		},
	}
}

func TestErrorMatcher_ExactWinsOverBroad(t *testing.T) {
	m := newTestMatcher()

	// code -2013 is an exact order-not-found entry while the message also
	// matches the broad "insufficient" rule; exact must win
	err := m.Translate(400, "-2013", "insufficient whatever", []byte(`{}`))
	assert.True(t, errors.Is(err, types.ErrOrderNotFound))
	assert.False(t, errors.Is(err, types.ErrInsufficientFunds))
}

func TestErrorMatcher_BroadMatch(t *testing.T) {
	m := newTestMatcher()

	err := m.Translate(429, "", "Too Many Requests, slow down", nil)
	assert.True(t, errors.Is(err, types.ErrRateLimitExceeded))
}

func TestErrorMatcher_CatchAll(t *testing.T) {
	m := newTestMatcher()

	body := []byte(`{"code":"-9999","msg":"some new failure"}`)
	err := m.Translate(400, "-9999", "some new failure", body)
	assert.True(t, errors.Is(err, types.ErrExchange))

	var reqErr *types.RequestError
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, body, reqErr.Body)
}

func TestErrorMatcher_NoMarkerIsNotAnError(t *testing.T) {
	m := newTestMatcher()

	// some exchanges flag success only in the body; a non-2xx status with
	// no recognizable marker passes
	assert.NoError(t, m.Translate(500, "", "", []byte(`{"result":[]}`)))
}

func TestSniffErrorFields(t *testing.T) {
	code, msg := SniffErrorFields(
		[]byte(`{"code":-2010,"msg":"Account has insufficient balance"}`),
		[][]string{{"code"}},
		[][]string{{"msg"}},
	)
	assert.Equal(t, "-2010", code)
	assert.Equal(t, "Account has insufficient balance", msg)

	// nested error object
	code, msg = SniffErrorFields(
		[]byte(`{"error":{"code":2004,"message":"nope"}}`),
		[][]string{{"error", "code"}},
		[][]string{{"error", "message"}},
	)
	assert.Equal(t, "2004", code)
	assert.Equal(t, "nope", msg)

	// code 0 conventionally means success and is not a marker
	code, msg = SniffErrorFields(
		[]byte(`{"code":0,"data":{}}`),
		[][]string{{"code"}},
		[][]string{{"msg"}},
	)
	assert.Equal(t, "", code)
	assert.Equal(t, "", msg)

	// not JSON
	code, msg = SniffErrorFields([]byte(`<html>boom</html>`), [][]string{{"code"}}, nil)
	assert.Equal(t, "", code)
	assert.Equal(t, "", msg)
}
