package max

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
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
	// ProductionAPIURL is the official MAX REST endpoint; service refURLs
	// carry the version prefix ("v2/markets").
	ProductionAPIURL = "https://max-api.maicoin.com/api/"

	UserAgent = "uniex/1.0"

	defaultHTTPTimeout = time.Second * 15
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

	nonce *nonce.Millisecond

	PublicService  *PublicService
	AccountService *AccountService
	OrderService   *OrderService
}

func NewRestClientWithHttpClient(baseURL string, httpClient *http.Client) *RestClient {
	u, err := url.Parse(baseURL)
	if err != nil {
		panic(err)
	}

	client := &RestClient{
		client:  httpClient,
		BaseURL: u,
		nonce:   nonce.NewMillisecondNonce(time.Now()),
	}

	client.PublicService = &PublicService{client}
	client.AccountService = &AccountService{client}
	client.OrderService = &OrderService{client}
	return client
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

// BuildPayload assembles the signed JSON body of a private request. The
// nonce and the full request path are folded into the same object as the
// business parameters, which is the documented MAX signing scheme.
func BuildPayload(path string, params map[string]interface{}, nonce int64) ([]byte, error) {
	payload := map[string]interface{}{
		"nonce": nonce,
		"path":  path,
	}

	for k, v := range params {
		payload[k] = v
	}

	return json.Marshal(payload)
}

// SignPayload computes the HMAC-SHA256 hex signature over the base64
// encoded payload.
func SignPayload(encodedPayload, secret string) string {
	sig := hmac.New(sha256.New, []byte(secret))
	sig.Write([]byte(encodedPayload))
	return hex.EncodeToString(sig.Sum(nil))
}

// NewAuthenticatedRequest creates a request for the private API family:
// the params plus nonce and path are JSON-encoded into the body, the body
// goes base64 into X-MAX-PAYLOAD and its signature into X-MAX-SIGNATURE.
// Missing credentials fail before any request is built.
func (c *RestClient) NewAuthenticatedRequest(
	ctx context.Context, method, refURL string, params map[string]interface{},
) (*http.Request, error) {
	if len(c.APIKey) == 0 || len(c.APISecret) == 0 {
		return nil, &types.RequestError{
			Kind:     types.ErrAuthentication,
			Exchange: types.ExchangeMax,
			Message:  "empty api key or secret",
		}
	}

	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	path := c.BaseURL.ResolveReference(rel).Path

	body, err := BuildPayload(path, params, c.nonce.GetInt64())
	if err != nil {
		return nil, err
	}

	u := c.BaseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(body)

	req.Header.Add("User-Agent", UserAgent)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("X-MAX-ACCESSKEY", c.APIKey)
	req.Header.Add("X-MAX-PAYLOAD", encoded)
	req.Header.Add("X-MAX-SIGNATURE", SignPayload(encoded, c.APISecret))
	return req, nil
}

// SendRequest executes the request and fails fast: a transport failure
// maps to the exchange-not-available kind, an error-flagged body to its
// translated kind. Callers only decode bodies that passed translation.
func (c *RestClient) SendRequest(req *http.Request) (*Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordError(types.ExchangeMax.String(), req.URL.Path)
		return nil, &types.RequestError{
			Kind:     types.ErrExchangeNotAvailable,
			Exchange: types.ExchangeMax,
			Message:  errors.Wrap(err, "transport error").Error(),
		}
	}

	response, err := newResponse(resp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	metrics.RecordRequest(types.ExchangeMax.String(), req.URL.Path, response.StatusCode)

	if err := translateError(response); err != nil {
		metrics.RecordError(types.ExchangeMax.String(), req.URL.Path)
		return response, err
	}

	return response, nil
}
