package max

import (
	"github.com/uniex/uniex/pkg/exchange"
	"github.com/uniex/uniex/pkg/types"
)

// MAX reports failures as {"error":{"code":<int>,"message":"..."}} bodies.
// A body without that marker passes, whatever the HTTP status says.
var errorMatcher = &exchange.ErrorMatcher{
	Exchange: types.ExchangeMax,
	Exact: map[string]error{
		"2002": types.ErrInsufficientFunds, // balance not enough
		"2003": types.ErrInvalidOrder,      // order volume too small
		"2004": types.ErrOrderNotFound,     // order doesn't exist
		"2005": types.ErrAuthentication,    // signature is invalid
		"2006": types.ErrInvalidNonce,      // nonce has already been used
		"2007": types.ErrInvalidNonce,      // nonce is too old
		"2008": types.ErrAuthentication,    // access key does not exist
		"2009": types.ErrPermissionDenied,  // access key is disabled
		"2011": types.ErrPermissionDenied,  // out of scope
		"2015": types.ErrPermissionDenied,  // ip not allowed
		"2016": types.ErrBadRequest,        // amount is too small
		"2018": types.ErrInsufficientFunds, // insufficient balance for withdrawal
		"2022": types.ErrInvalidOrder,      // order could not be canceled
		"1001": types.ErrBadRequest,        // market does not exist
		"1004": types.ErrArgumentsRequired, // missing parameter
	},
	Broad: []exchange.BroadRule{
		{Substring: "balance is not enough", Kind: types.ErrInsufficientFunds},
		{Substring: "couldn't find that order", Kind: types.ErrOrderNotFound},
		{Substring: "nonce", Kind: types.ErrInvalidNonce},
		{Substring: "under maintenance", Kind: types.ErrExchangeNotAvailable},
		{Substring: "requests are too frequent", Kind: types.ErrRateLimitExceeded},
	},
}

func translateError(response *Response) error {
	code, message := exchange.SniffErrorFields(response.Body,
		[][]string{{"error", "code"}},
		[][]string{{"error", "message"}},
	)

	return errorMatcher.Translate(response.StatusCode, code, message, response.Body)
}
