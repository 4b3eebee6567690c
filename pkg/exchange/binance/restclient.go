package binance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/uniex/uniex/pkg/metrics"
	"github.com/uniex/uniex/pkg/nonce"
	"github.com/uniex/uniex/pkg/types"
)

const (
	// ProductionAPIURL is the official Binance REST endpoint
	ProductionAPIURL = "https://api.binance.com"

	UserAgent = "uniex/1.0"

	defaultHTTPTimeout = time.Second * 15

	defaultRecvWindow = "5000"
)

// Response is a wrapper for the standard http.Response with the body
// already drained.
type Response struct {
	*http.Response

	// Body overrides the composited Body field.
	Body []byte
}

func newResponse(r *http.Response) (response *Response, err error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	err = r.Body.Close()
	response = &Response{Response: r, Body: body}
	return response, err
}

func (r *Response) DecodeJSON(o interface{}) error {
	return json.Unmarshal(r.Body, o)
}

type RestClient struct {
	client *http.Client

	BaseURL *url.URL

	// Authentication
	APIKey    string
	APISecret string

	timestampNonce *nonce.Millisecond
}

func NewRestClientWithHttpClient(baseURL string, httpClient *http.Client) *RestClient {
	u, err := url.Parse(baseURL)
	if err != nil {
		panic(err)
	}

	return &RestClient{
		client:         httpClient,
		BaseURL:        u,
		timestampNonce: nonce.NewMillisecondNonce(time.Now()),
	}
}

func NewRestClient(baseURL string) *RestClient {
	return NewRestClientWithHttpClient(baseURL, &http.Client{
		Timeout: defaultHTTPTimeout,
	})
}

// Auth sets the api key and secret for the private request family.
func (c *RestClient) Auth(key, secret string) *RestClient {
	c.APIKey = key
	c.APISecret = secret
	return c
}

// Sign computes the HMAC-SHA256 hex signature over the canonical query
// string, which is the documented Binance signing scheme.
func Sign(payload, secret string) string {
	sig := hmac.New(sha256.New, []byte(secret))
	sig.Write([]byte(payload))
	return hex.EncodeToString(sig.Sum(nil))
}

// NewRequest creates a public API request: query-encoded params, no
// credentials involved.
func (c *RestClient) NewRequest(
	ctx context.Context, method, refURL string, params url.Values,
) (*http.Request, error) {
	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if params != nil {
		rel.RawQuery = params.Encode()
	}

	u := c.BaseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("User-Agent", UserAgent)
	return req, nil
}

// NewAuthenticatedRequest creates a request for the private API family:
// the canonical query string is extended with a millisecond timestamp
// nonce and recvWindow, signed, and the key goes into the X-MBX-APIKEY
// header. Missing credentials fail before any request is built.
func (c *RestClient) NewAuthenticatedRequest(
	ctx context.Context, method, refURL string, params url.Values,
) (*http.Request, error) {
	if len(c.APIKey) == 0 || len(c.APISecret) == 0 {
		return nil, &types.RequestError{
			Kind:     types.ErrAuthentication,
			Exchange: types.ExchangeBinance,
			Message:  "empty api key or secret",
		}
	}

	if params == nil {
		params = url.Values{}
	}

	params.Set("recvWindow", defaultRecvWindow)
	params.Set("timestamp", c.timestampNonce.GetString())

	payload := params.Encode()
	payload += "&signature=" + Sign(payload, c.APISecret)

	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}
	rel.RawQuery = payload

	u := c.BaseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("User-Agent", UserAgent)
	req.Header.Add("X-MBX-APIKEY", c.APIKey)
	return req, nil
}

// SendRequest executes the request and fails fast: a transport failure
// maps to the exchange-not-available kind, an error-flagged body to its
// translated kind. Callers only decode bodies that passed translation.
func (c *RestClient) SendRequest(req *http.Request) (*Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordError(types.ExchangeBinance.String(), req.URL.Path)
		return nil, &types.RequestError{
			Kind:     types.ErrExchangeNotAvailable,
			Exchange: types.ExchangeBinance,
			Message:  errors.Wrap(err, "transport error").Error(),
		}
	}

	response, err := newResponse(resp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	metrics.RecordRequest(types.ExchangeBinance.String(), req.URL.Path, response.StatusCode)

	if err := translateError(response); err != nil {
		metrics.RecordError(types.ExchangeBinance.String(), req.URL.Path)
		return response, err
	}

	return response, nil
}
