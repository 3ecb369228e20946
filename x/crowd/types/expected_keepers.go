package types

import (
	"context"
)

// ComputeRouter is the outbound boundary to the off-chain compute runtime.
// SendRequest dispatches an encoded request and returns a freshly allocated
// unique request identifier. Dispatch is fire-and-forget: the result arrives
// later through the module's FulfillComputeRequest path, invoked by the
// router address configured in module params.
type ComputeRouter interface {
	SendRequest(ctx context.Context, subscriptionID uint64, payload []byte, gasLimit uint32, domainID []byte) ([]byte, error)
}
