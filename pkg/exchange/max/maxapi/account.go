package max

import (
	"context"
	"time"
)

type AccountService struct {
	client *RestClient
}

func (s *AccountService) Accounts(ctx context.Context) ([]Account, error) {
	req, err := s.client.NewAuthenticatedRequest(ctx, "GET", "v2/members/accounts", nil)
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var accounts []Account
	if err := response.DecodeJSON(&accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

func transferHistoryParams(currency string, since, until time.Time) map[string]interface{} {
	params := map[string]interface{}{}
	if len(currency) > 0 {
		params["currency"] = currency
	}
	if !since.IsZero() {
		params["from"] = since.Unix()
	}
	if !until.IsZero() {
		params["to"] = until.Unix()
	}

	return params
}

func (s *AccountService) Deposits(ctx context.Context, currency string, since, until time.Time) ([]Deposit, error) {
	req, err := s.client.NewAuthenticatedRequest(ctx, "GET", "v2/deposits", transferHistoryParams(currency, since, until))
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var deposits []Deposit
	if err := response.DecodeJSON(&deposits); err != nil {
		return nil, err
	}

	return deposits, nil
}

func (s *AccountService) Withdrawals(ctx context.Context, currency string, since, until time.Time) ([]Withdraw, error) {
	req, err := s.client.NewAuthenticatedRequest(ctx, "GET", "v2/withdrawals", transferHistoryParams(currency, since, until))
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var withdraws []Withdraw
	if err := response.DecodeJSON(&withdraws); err != nil {
		return nil, err
	}

	return withdraws, nil
}

func (s *AccountService) DepositAddresses(ctx context.Context, currency string) ([]DepositAddress, error) {
	req, err := s.client.NewAuthenticatedRequest(ctx, "GET", "v2/deposit_addresses", map[string]interface{}{
		"currency": currency,
	})
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var addresses []DepositAddress
	if err := response.DecodeJSON(&addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (s *AccountService) WithdrawAddresses(ctx context.Context, currency string) ([]WithdrawAddress, error) {
	req, err := s.client.NewAuthenticatedRequest(ctx, "GET", "v2/withdraw_addresses", map[string]interface{}{
		"currency": currency,
	})
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var addresses []WithdrawAddress
	if err := response.DecodeJSON(&addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

// CreateWithdrawal submits a withdrawal to a pre-registered address,
// identified by its address book uuid.
func (s *AccountService) CreateWithdrawal(ctx context.Context, currency string, amount string, addressUUID string) (*Withdraw, error) {
	req, err := s.client.NewAuthenticatedRequest(ctx, "POST", "v2/withdrawal", map[string]interface{}{
		"currency":              currency,
		"amount":                amount,
		"withdraw_address_uuid": addressUUID,
	})
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var withdraw Withdraw
	if err := response.DecodeJSON(&withdraw); err != nil {
		return nil, err
	}

	return &withdraw, nil
}
