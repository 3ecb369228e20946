package keeper

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// SendComputeRequest encodes req and dispatches it to the off-chain runtime.
// Restricted to the module owner. The returned identifier becomes the single
// outstanding one, superseding any previous request: a response for the
// superseded id is permanently unmatchable.
func (k Keeper) SendComputeRequest(ctx context.Context, caller sdk.AccAddress, req types.ComputeRequest, subscriptionID uint64, gasLimit uint32, domainID []byte) ([]byte, error) {
	if err := k.assertOwner(ctx, caller); err != nil {
		return nil, err
	}

	payload, err := req.Encode()
	if err != nil {
		return nil, err
	}

	return k.dispatch(ctx, payload, subscriptionID, gasLimit, domainID)
}

// SendRawComputeRequest dispatches a pre-encoded payload with the same
// authorization and supersede semantics as SendComputeRequest.
func (k Keeper) SendRawComputeRequest(ctx context.Context, caller sdk.AccAddress, payload []byte, subscriptionID uint64, gasLimit uint32, domainID []byte) ([]byte, error) {
	if err := k.assertOwner(ctx, caller); err != nil {
		return nil, err
	}

	if len(payload) == 0 {
		return nil, types.ErrInvalidArgument.Wrap("payload cannot be empty")
	}

	return k.dispatch(ctx, payload, subscriptionID, gasLimit, domainID)
}

// dispatch hands the payload to the router and records the fresh request id
// as the outstanding one. The call is fire-and-forget: the result arrives
// later through FulfillComputeRequest.
func (k Keeper) dispatch(ctx context.Context, payload []byte, subscriptionID uint64, gasLimit uint32, domainID []byte) ([]byte, error) {
	requestID, err := k.router.SendRequest(ctx, subscriptionID, payload, gasLimit, domainID)
	if err != nil {
		return nil, types.ErrInvalidArgument.Wrapf("router dispatch failed: %s", err)
	}
	if len(requestID) != types.RequestIDLength {
		return nil, types.ErrUnexpectedRequestID.Wrapf("router returned a %d byte id", len(requestID))
	}

	k.setLastRequestID(ctx, requestID)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeComputeRequestSent,
			sdk.NewAttribute(types.AttributeKeyRequestID, hex.EncodeToString(requestID)),
			sdk.NewAttribute(types.AttributeKeySubscriptionID, fmt.Sprintf("%d", subscriptionID)),
			sdk.NewAttribute(types.AttributeKeyGasLimit, fmt.Sprintf("%d", gasLimit)),
			sdk.NewAttribute(types.AttributeKeyDomainID, hex.EncodeToString(domainID)),
		),
	)

	return requestID, nil
}

// FulfillComputeRequest records the response for the outstanding request.
// Only the router address configured in params may call it, and requestID
// must equal the outstanding identifier; this rejects responses for requests
// that were never issued, were superseded, or were already fulfilled. A
// matched identifier is consumed: a second delivery for it fails.
func (k Keeper) FulfillComputeRequest(ctx context.Context, caller sdk.AccAddress, requestID, response, errPayload []byte) error {
	params := k.GetParams(ctx)
	if params.RouterAddress == "" || caller.String() != params.RouterAddress {
		return types.ErrUnauthorized.Wrapf("caller %s is not the compute router", caller)
	}

	outstanding := k.GetLastRequestID(ctx)
	if len(outstanding) == 0 || !bytes.Equal(requestID, outstanding) {
		return types.ErrUnexpectedRequestID.Wrapf("request id %s is not outstanding", hex.EncodeToString(requestID))
	}

	k.clearLastRequestID(ctx)
	k.setLastResponse(ctx, response)
	k.setLastError(ctx, errPayload)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeComputeResponseReceived,
			sdk.NewAttribute(types.AttributeKeyRequestID, hex.EncodeToString(requestID)),
			sdk.NewAttribute(types.AttributeKeyResponse, hex.EncodeToString(response)),
			sdk.NewAttribute(types.AttributeKeyError, hex.EncodeToString(errPayload)),
		),
	)

	return nil
}

// GetLastRequestID returns the outstanding request identifier, or nil when
// no request is outstanding.
func (k Keeper) GetLastRequestID(ctx context.Context) []byte {
	store := k.getStore(ctx)
	return store.Get(types.LastRequestIDKey)
}

func (k Keeper) setLastRequestID(ctx context.Context, id []byte) {
	store := k.getStore(ctx)
	store.Set(types.LastRequestIDKey, id)
}

func (k Keeper) clearLastRequestID(ctx context.Context) {
	store := k.getStore(ctx)
	store.Delete(types.LastRequestIDKey)
}

// GetLastResponse returns the payload of the last matched response.
func (k Keeper) GetLastResponse(ctx context.Context) []byte {
	store := k.getStore(ctx)
	return store.Get(types.LastResponseKey)
}

func (k Keeper) setLastResponse(ctx context.Context, response []byte) {
	store := k.getStore(ctx)
	if len(response) == 0 {
		store.Delete(types.LastResponseKey)
		return
	}
	store.Set(types.LastResponseKey, response)
}

// GetLastError returns the error payload of the last matched response.
func (k Keeper) GetLastError(ctx context.Context) []byte {
	store := k.getStore(ctx)
	return store.Get(types.LastErrorKey)
}

func (k Keeper) setLastError(ctx context.Context, errPayload []byte) {
	store := k.getStore(ctx)
	if len(errPayload) == 0 {
		store.Delete(types.LastErrorKey)
		return
	}
	store.Set(types.LastErrorKey, errPayload)
}

// RestoreCorrelatorState seeds the correlator slots from genesis.
func (k Keeper) RestoreCorrelatorState(ctx context.Context, requestID, response, errPayload []byte) {
	if len(requestID) > 0 {
		k.setLastRequestID(ctx, requestID)
	}
	k.setLastResponse(ctx, response)
	k.setLastError(ctx, errPayload)
}
