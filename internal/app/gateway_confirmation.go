package app

import (
	"context"
	"fmt"

	"github.com/rentreturn/wallet-service/internal/domain"
	"github.com/rentreturn/wallet-service/pkg/bankgateway"
)

// GatewayConfirmation adapts the bank gateway HTTP client to the
// ConfirmationProvider contract, for deployments with a real settlement
// backend instead of the simulator.
type GatewayConfirmation struct {
	client *bankgateway.Client
}

func NewGatewayConfirmation(client *bankgateway.Client) *GatewayConfirmation {
	return &GatewayConfirmation{client: client}
}

func (g *GatewayConfirmation) Confirm(ctx context.Context, amount float64, txnType domain.TransactionType) (*ConfirmationResult, error) {
	resp, err := g.client.Confirm(ctx, bankgateway.ConfirmationRequest{
		Amount:   amount,
		Currency: "PKR",
		Type:     string(txnType),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBankTimeout, err)
	}

	status := resp.Data.Status
	if status == "" {
		status = domain.StatusConfirmed
	}
	return &ConfirmationResult{
		TransactionID: resp.Data.Reference,
		Status:        status,
		Message:       resp.Data.Message,
	}, nil
}
