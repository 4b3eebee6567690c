package max

import (
	"context"
)

type OrderService struct {
	client *RestClient
}

// SubmitOrderParams carries the create-order parameters; zero-valued
// optional fields are left out of the signed payload.
type SubmitOrderParams struct {
	Market    string
	Side      string
	Volume    string
	Price     string
	StopPrice string
	OrdType   string
	ClientOID string
}

func (p SubmitOrderParams) toMap() map[string]interface{} {
	params := map[string]interface{}{
		"market":   p.Market,
		"side":     p.Side,
		"volume":   p.Volume,
		"ord_type": p.OrdType,
	}

	if len(p.Price) > 0 {
		params["price"] = p.Price
	}
	if len(p.StopPrice) > 0 {
		params["stop_price"] = p.StopPrice
	}
	if len(p.ClientOID) > 0 {
		params["client_oid"] = p.ClientOID
	}

	return params
}

func (s *OrderService) Create(ctx context.Context, p SubmitOrderParams) (*Order, error) {
	req, err := s.client.NewAuthenticatedRequest(ctx, "POST", "v2/orders", p.toMap())
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := response.DecodeJSON(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

func orderIDParams(orderID int64, clientOID string) map[string]interface{} {
	if orderID > 0 {
		return map[string]interface{}{"id": orderID}
	}
	return map[string]interface{}{"client_oid": clientOID}
}

func (s *OrderService) Cancel(ctx context.Context, orderID int64, clientOID string) error {
	req, err := s.client.NewAuthenticatedRequest(ctx, "POST", "v2/order/delete", orderIDParams(orderID, clientOID))
	if err != nil {
		return err
	}

	_, err = s.client.SendRequest(req)
	return err
}

func (s *OrderService) Get(ctx context.Context, orderID int64, clientOID string) (*Order, error) {
	req, err := s.client.NewAuthenticatedRequest(ctx, "GET", "v2/order", orderIDParams(orderID, clientOID))
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := response.DecodeJSON(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

// List returns the orders of one market filtered by state ("wait",
// "done", "cancel"). An empty state lists all of them.
func (s *OrderService) List(ctx context.Context, market, state string) ([]Order, error) {
	params := map[string]interface{}{
		"market": market,
		"limit":  1000,
	}
	if len(state) > 0 {
		params["state"] = state
	}

	req, err := s.client.NewAuthenticatedRequest(ctx, "GET", "v2/orders", params)
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := response.DecodeJSON(&orders); err != nil {
		return nil, err
	}

	return orders, nil
}
