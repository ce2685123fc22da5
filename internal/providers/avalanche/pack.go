package avalanche

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// PackPurchaseContent ABI-encodes the purchaseContent(paymentId, creator)
// call carrying the correlation id
func PackPurchaseContent(paymentID string, creator common.Address) ([]byte, error) {
	parsed, err := abi.JSON(strings.NewReader(paymentContractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	data, err := parsed.Pack("purchaseContent", paymentID, creator)
	if err != nil {
		return nil, fmt.Errorf("failed to pack purchaseContent call: %w", err)
	}
	return data, nil
}

// PackDonate ABI-encodes the donate(to, paymentId) call carrying the
// correlation id
func PackDonate(to common.Address, paymentID string) ([]byte, error) {
	parsed, err := abi.JSON(strings.NewReader(paymentContractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	data, err := parsed.Pack("donate", to, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to pack donate call: %w", err)
	}
	return data, nil
}
