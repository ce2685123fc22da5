package avalanche

import "github.com/arvalon/chainledger/internal/messaging"

// Exported aliases for tests in package avalanche_test.
var (
	PaymentContractABI             = paymentContractABI
	PaymentEventSignature          = paymentEventSignature
	ContentPurchasedEventSignature = contentPurchasedEventSignature
)

var _ messaging.Subscriber = (*chainSubscriber)(nil)
