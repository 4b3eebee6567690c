package binance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniex/uniex/pkg/types"
)

// The key pair and expected signature come from the official REST API
// signing example.
const (
	testAPIKey    = "vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A"
	testAPISecret = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
)

func TestSign_documentedVector(t *testing.T) {
	payload := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"
	assert.Equal(t,
		"c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71",
		Sign(payload, testAPISecret))
}

func TestNewAuthenticatedRequest(t *testing.T) {
	client := NewRestClient(ProductionAPIURL)
	client.Auth(testAPIKey, testAPISecret)

	params := url.Values{}
	params.Set("symbol", "BTCUSDT")

	req, err := client.NewAuthenticatedRequest(context.Background(), "GET", "/api/v3/openOrders", params)
	require.NoError(t, err)

	assert.Equal(t, testAPIKey, req.Header.Get("X-MBX-APIKEY"))

	query := req.URL.Query()
	assert.Equal(t, "BTCUSDT", query.Get("symbol"))
	assert.Equal(t, defaultRecvWindow, query.Get("recvWindow"))
	assert.NotEmpty(t, query.Get("timestamp"))

	// the signature must cover the canonical query string minus itself
	signature := query.Get("signature")
	require.NotEmpty(t, signature)

	canonical := strings.TrimSuffix(req.URL.RawQuery, "&signature="+signature)
	mac := hmac.New(sha256.New, []byte(testAPISecret))
	mac.Write([]byte(canonical))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), signature)
}

func TestNewAuthenticatedRequest_missingCredentials(t *testing.T) {
	client := NewRestClient(ProductionAPIURL)

	_, err := client.NewAuthenticatedRequest(context.Background(), "GET", "/api/v3/account", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrAuthentication))

	var reqErr *types.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, types.ExchangeBinance, reqErr.Exchange)
}

func TestSendRequest_translatesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":-2010,"msg":"Account has insufficient balance for requested action."}`))
	}))
	defer server.Close()

	client := NewRestClient(server.URL)
	req, err := client.NewRequest(context.Background(), "POST", "/api/v3/order", nil)
	require.NoError(t, err)

	_, err = client.SendRequest(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInsufficientFunds))

	var reqErr *types.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "-2010", reqErr.Code)
	assert.Equal(t, http.StatusBadRequest, reqErr.HTTPStatus)
}

func TestSendRequest_noMarkerIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream timeout`))
	}))
	defer server.Close()

	client := NewRestClient(server.URL)
	req, err := client.NewRequest(context.Background(), "GET", "/api/v3/time", nil)
	require.NoError(t, err)

	response, err := client.SendRequest(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, response.StatusCode)
}

func TestSendRequest_transportError(t *testing.T) {
	// a closed server makes the round trip fail at the transport layer
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewRestClient(server.URL)
	req, err := client.NewRequest(context.Background(), "GET", "/api/v3/time", nil)
	require.NoError(t, err)

	_, err = client.SendRequest(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExchangeNotAvailable))
}

func TestClampDepthLimit(t *testing.T) {
	assert.Equal(t, 100, clampDepthLimit(0))
	assert.Equal(t, 5, clampDepthLimit(3))
	assert.Equal(t, 50, clampDepthLimit(50))
	assert.Equal(t, 500, clampDepthLimit(101))
	assert.Equal(t, 5000, clampDepthLimit(99999))
}
