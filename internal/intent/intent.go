package intent

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/arvalon/chainledger/internal/domain"
	"github.com/arvalon/chainledger/internal/providers/avalanche"
	"github.com/arvalon/chainledger/internal/store/schema"
)

// Builder constructs client-signable transfer intents. The server never
// holds key material; the client signs and submits the intent itself.
//
//go:generate mockgen -source=intent.go -destination=../mocks/intent.go -package=mocks -mock_names=Builder=MockBuilder
type Builder interface {
	// BuildIntent builds the unsigned contract call for a payment record.
	// Pure; nothing is persisted and no chain round trip happens.
	BuildIntent(record *schema.PaymentRecord, fromAddress, toAddress string) (*domain.TransferIntent, error)

	// EstimateGas estimates gas for an intent without mutating any state
	EstimateGas(ctx context.Context, ti *domain.TransferIntent) (*domain.GasEstimate, error)
}

type builder struct {
	contract common.Address
	chain    avalanche.ChainClient
}

// NewBuilder creates a new transfer intent builder
func NewBuilder(contractAddress string, chain avalanche.ChainClient) Builder {
	return &builder{
		contract: common.HexToAddress(contractAddress),
		chain:    chain,
	}
}

// BuildIntent builds the unsigned contract call for a payment record
func (b *builder) BuildIntent(record *schema.PaymentRecord, fromAddress, toAddress string) (*domain.TransferIntent, error) {
	if !common.IsHexAddress(fromAddress) {
		return nil, fmt.Errorf("invalid payer address %q: %w", fromAddress, domain.ErrWalletMissing)
	}
	if !common.IsHexAddress(toAddress) {
		return nil, fmt.Errorf("invalid recipient address %q: %w", toAddress, domain.ErrWalletMissing)
	}

	// The correlation id rides in the call data so the contract can echo it
	// back in its events; reconciliation never matches on address pairs
	var (
		data []byte
		err  error
	)
	if record.Type == domain.PaymentTypePurchase {
		data, err = avalanche.PackPurchaseContent(record.ID, common.HexToAddress(toAddress))
	} else {
		data, err = avalanche.PackDonate(common.HexToAddress(toAddress), record.ID)
	}
	if err != nil {
		return nil, err
	}

	return &domain.TransferIntent{
		From:  common.HexToAddress(fromAddress).Hex(),
		To:    b.contract.Hex(),
		Value: domain.ToAtomic(record.Amount),
		Data:  data,
	}, nil
}

// EstimateGas estimates gas for an intent
func (b *builder) EstimateGas(ctx context.Context, ti *domain.TransferIntent) (*domain.GasEstimate, error) {
	to := common.HexToAddress(ti.To)
	gas, err := b.chain.EstimateGas(ctx, ethereum.CallMsg{
		From:  common.HexToAddress(ti.From),
		To:    &to,
		Value: ti.Value,
		Data:  ti.Data,
	})
	if err != nil {
		return nil, err
	}
	return &domain.GasEstimate{Gas: gas}, nil
}
