package avalanche

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/arvalon/chainledger/internal/adapter"
	"github.com/arvalon/chainledger/internal/domain"
)

// callTimeout bounds every single RPC round trip
const callTimeout = 15 * time.Second

// paymentContractABI covers the two settlement events and the read-only
// verification entry point of the payment contract
const paymentContractABI = `[
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"amount","type":"uint256"},{"indexed":false,"name":"paymentId","type":"string"},{"indexed":false,"name":"timestamp","type":"uint256"}],"name":"Payment","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"buyer","type":"address"},{"indexed":true,"name":"creator","type":"address"},{"indexed":false,"name":"paymentId","type":"string"},{"indexed":false,"name":"price","type":"uint256"},{"indexed":false,"name":"timestamp","type":"uint256"}],"name":"ContentPurchased","type":"event"},
	{"constant":true,"inputs":[{"name":"paymentId","type":"string"}],"name":"verifyPayment","outputs":[{"name":"verified","type":"bool"},{"name":"amount","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"paymentId","type":"string"},{"name":"creator","type":"address"}],"name":"purchaseContent","outputs":[],"payable":true,"stateMutability":"payable","type":"function"},
	{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"paymentId","type":"string"}],"name":"donate","outputs":[],"payable":true,"stateMutability":"payable","type":"function"}
]`

// Event signatures
var (
	// Payment(address indexed from, address indexed to, uint256 amount, string paymentId, uint256 timestamp)
	paymentEventSignature = crypto.Keccak256Hash([]byte("Payment(address,address,uint256,string,uint256)"))

	// ContentPurchased(address indexed buyer, address indexed creator, string paymentId, uint256 price, uint256 timestamp)
	contentPurchasedEventSignature = crypto.Keccak256Hash([]byte("ContentPurchased(address,address,string,uint256,uint256)"))
)

// VerifyResult is the outcome of a read-only on-chain verification call
type VerifyResult struct {
	Verified bool
	// Amount is the verified payment value in atomic units
	Amount *big.Int
}

// ChainClient defines the interface for payment-contract chain operations
//
//go:generate mockgen -source=client.go -destination=../../mocks/chainclient.go -package=mocks -mock_names=ChainClient=MockChainClient
type ChainClient interface {
	// ParseEventLog parses a contract log into a normalized settlement event.
	// The correlation id always comes from the event data.
	ParseEventLog(ctx context.Context, vLog types.Log) (*domain.SettlementEvent, error)

	// SubscribeFilterLogs subscribes to filter logs
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)

	// HeaderByNumber returns a header by number
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// VerifyPayment performs the contract's read-only verifyPayment call
	VerifyPayment(ctx context.Context, paymentID string) (*VerifyResult, error)

	// TransactionReceipt returns the receipt of a mined transaction,
	// or nil when the transaction is not mined yet
	TransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error)

	// EstimateGas estimates the gas needed to execute a transaction
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)

	// GetBalance returns an address's native-currency balance in atomic units
	GetBalance(ctx context.Context, address string) (*big.Int, error)

	// ContractAddress returns the payment contract address
	ContractAddress() common.Address

	// Close closes the connection
	Close()
}

type chainClient struct {
	chainID  domain.Chain
	contract common.Address
	client   adapter.EthClient
	clock    adapter.Clock
	abi      abi.ABI
}

// NewClient creates a new payment-contract chain client
func NewClient(chainID domain.Chain, contractAddress string, client adapter.EthClient, clock adapter.Clock) (ChainClient, error) {
	parsed, err := abi.JSON(strings.NewReader(paymentContractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	return &chainClient{
		chainID:  chainID,
		contract: common.HexToAddress(contractAddress),
		client:   client,
		clock:    clock,
		abi:      parsed,
	}, nil
}

// SubscribeFilterLogs subscribes to filter logs
func (c *chainClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

// HeaderByNumber returns a header by number
func (c *chainClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, number)
}

// ParseEventLog parses a contract log into a normalized settlement event
func (c *chainClient) ParseEventLog(_ context.Context, vLog types.Log) (*domain.SettlementEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, fmt.Errorf("log has no topics")
	}

	event := &domain.SettlementEvent{
		Chain:       c.chainID,
		TxHash:      vLog.TxHash.Hex(),
		LogIndex:    vLog.Index,
		BlockNumber: vLog.BlockNumber,
	}

	switch vLog.Topics[0] {
	case paymentEventSignature:
		// Payment(address indexed from, address indexed to, uint256 amount, string paymentId, uint256 timestamp)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid Payment event: expected 3 topics, got %d", len(vLog.Topics))
		}

		values, err := c.abi.Unpack("Payment", vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack Payment event: %w", err)
		}
		amount, ok := values[0].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("invalid Payment event: amount is not uint256")
		}
		paymentID, ok := values[1].(string)
		if !ok {
			return nil, fmt.Errorf("invalid Payment event: paymentId is not string")
		}
		timestamp, ok := values[2].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("invalid Payment event: timestamp is not uint256")
		}

		event.Kind = domain.EventKindPayment
		event.PaymentID = paymentID
		event.FromAddress = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.ToAddress = common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()
		event.Amount = amount.String()
		event.Timestamp = c.clock.Unix(timestamp.Int64(), 0)

	case contentPurchasedEventSignature:
		// ContentPurchased(address indexed buyer, address indexed creator, string paymentId, uint256 price, uint256 timestamp)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid ContentPurchased event: expected 3 topics, got %d", len(vLog.Topics))
		}

		values, err := c.abi.Unpack("ContentPurchased", vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack ContentPurchased event: %w", err)
		}
		paymentID, ok := values[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid ContentPurchased event: paymentId is not string")
		}
		price, ok := values[1].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("invalid ContentPurchased event: price is not uint256")
		}
		timestamp, ok := values[2].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("invalid ContentPurchased event: timestamp is not uint256")
		}

		event.Kind = domain.EventKindContentPurchase
		event.PaymentID = paymentID
		event.FromAddress = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.ToAddress = common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()
		event.Amount = price.String()
		event.Timestamp = c.clock.Unix(timestamp.Int64(), 0)

	default:
		return nil, fmt.Errorf("unknown event signature: %s", vLog.Topics[0].Hex())
	}

	return event, nil
}

// VerifyPayment performs the contract's read-only verifyPayment call
func (c *chainClient) VerifyPayment(ctx context.Context, paymentID string) (*VerifyResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	data, err := c.abi.Pack("verifyPayment", paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to pack verifyPayment call: %w", err)
	}

	result, err := c.client.CallContract(callCtx, ethereum.CallMsg{
		To:   &c.contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("verifyPayment call failed: %w: %w", domain.ErrChainUnavailable, err)
	}

	values, err := c.abi.Unpack("verifyPayment", result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack verifyPayment result: %w", err)
	}
	verified, ok := values[0].(bool)
	if !ok {
		return nil, fmt.Errorf("invalid verifyPayment result: verified is not bool")
	}
	amount, ok := values[1].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("invalid verifyPayment result: amount is not uint256")
	}

	return &VerifyResult{Verified: verified, Amount: amount}, nil
}

// TransactionReceipt returns the receipt of a mined transaction,
// or nil when the transaction is not mined yet
func (c *chainClient) TransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	receipt, err := c.client.TransactionReceipt(callCtx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get receipt for %s: %w: %w", txHash, domain.ErrChainUnavailable, err)
	}
	return receipt, nil
}

// EstimateGas estimates the gas needed to execute a transaction
func (c *chainClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	gas, err := c.client.EstimateGas(callCtx, msg)
	if err != nil {
		return 0, fmt.Errorf("estimate gas: %w: %w", domain.ErrGasEstimation, err)
	}
	return gas, nil
}

// GetBalance returns an address's native-currency balance in atomic units
func (c *chainClient) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	balance, err := c.client.BalanceAt(callCtx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance for %s: %w: %w", address, domain.ErrChainUnavailable, err)
	}
	return balance, nil
}

// ContractAddress returns the payment contract address
func (c *chainClient) ContractAddress() common.Address {
	return c.contract
}

// Close closes the connection
func (c *chainClient) Close() {
	c.client.Close()
}
