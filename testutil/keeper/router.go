package keeper

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// MockDispatch records one request handed to the mock router.
type MockDispatch struct {
	RequestID      []byte
	SubscriptionID uint64
	Payload        []byte
	GasLimit       uint32
	DomainID       []byte
}

// MockComputeRouter implements types.ComputeRouter for tests. Each dispatch
// allocates a fresh deterministic request id derived from a nonce, so two
// sequential requests never share an identifier.
type MockComputeRouter struct {
	nonce      uint64
	Dispatches []MockDispatch

	// Err, when set, is returned by SendRequest instead of dispatching.
	Err error
}

var _ types.ComputeRouter = (*MockComputeRouter)(nil)

// NewMockComputeRouter creates an empty mock router.
func NewMockComputeRouter() *MockComputeRouter {
	return &MockComputeRouter{}
}

// SendRequest implements types.ComputeRouter.
func (m *MockComputeRouter) SendRequest(_ context.Context, subscriptionID uint64, payload []byte, gasLimit uint32, domainID []byte) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.nonce++
	var seed [8]byte
	binary.BigEndian.PutUint64(seed[:], m.nonce)
	id := sha256.Sum256(seed[:])

	m.Dispatches = append(m.Dispatches, MockDispatch{
		RequestID:      id[:],
		SubscriptionID: subscriptionID,
		Payload:        payload,
		GasLimit:       gasLimit,
		DomainID:       domainID,
	})

	return id[:], nil
}

// LastDispatch returns the most recent dispatch, or nil when none happened.
func (m *MockComputeRouter) LastDispatch() *MockDispatch {
	if len(m.Dispatches) == 0 {
		return nil
	}
	return &m.Dispatches[len(m.Dispatches)-1]
}
