package binance

import (
	"github.com/uniex/uniex/pkg/exchange"
	"github.com/uniex/uniex/pkg/types"
)

// Binance reports failures as {"code":<negative int>,"msg":"..."} bodies.
// A body without that marker passes, whatever the HTTP status says.
var errorMatcher = &exchange.ErrorMatcher{
	Exchange: types.ExchangeBinance,
	Exact: map[string]error{
		"-1002": types.ErrAuthentication,    // unauthorized
		"-1003": types.ErrRateLimitExceeded, // too many requests
		"-1013": types.ErrInvalidOrder,      // filter failure
		"-1021": types.ErrInvalidNonce,      // timestamp outside recvWindow
		"-1022": types.ErrAuthentication,    // invalid signature
		"-1100": types.ErrBadRequest,        // illegal characters in parameter
		"-1102": types.ErrArgumentsRequired, // mandatory parameter missing
		"-1121": types.ErrBadRequest,        // invalid symbol
		"-2010": types.ErrInsufficientFunds, // new order rejected: insufficient balance
		"-2011": types.ErrOrderNotFound,     // cancel rejected: unknown order
		"-2013": types.ErrOrderNotFound,     // order does not exist
		"-2014": types.ErrAuthentication,    // bad api key format
		"-2015": types.ErrPermissionDenied,  // invalid key, ip or permissions
		"-3022": types.ErrPermissionDenied,  // account trading banned
		"-4001": types.ErrInvalidAddress,    // invalid withdraw address
	},
	Broad: []exchange.BroadRule{
		{Substring: "insufficient balance", Kind: types.ErrInsufficientFunds},
		{Substring: "unknown order", Kind: types.ErrOrderNotFound},
		{Substring: "too many requests", Kind: types.ErrRateLimitExceeded},
		{Substring: "way too much request weight", Kind: types.ErrRateLimitExceeded},
		{Substring: "signature for this request is not valid", Kind: types.ErrAuthentication},
		{Substring: "service unavailable", Kind: types.ErrExchangeNotAvailable},
		{Substring: "system is under maintenance", Kind: types.ErrExchangeNotAvailable},
	},
}

func translateError(response *Response) error {
	code, message := exchange.SniffErrorFields(response.Body,
		[][]string{{"code"}},
		[][]string{{"msg"}, {"message"}},
	)

	return errorMatcher.Translate(response.StatusCode, code, message, response.Body)
}
