package keeper_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/crowd-chain/crowd/testutil/keeper"
	"github.com/crowd-chain/crowd/x/crowd/types"
)

func testComputeRequest() types.ComputeRequest {
	req := types.NewComputeRequest("return Functions.encodeUint256(performance);")
	req.Args = []string{"42"}
	return req
}

func TestSendComputeRequest(t *testing.T) {
	k, ctx, router := keepertest.CrowdKeeper(t)

	id, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 7, 300_000, []byte{0xab})
	require.NoError(t, err)
	require.Len(t, id, types.RequestIDLength)
	require.Equal(t, id, k.GetLastRequestID(ctx))

	dispatch := router.LastDispatch()
	require.NotNil(t, dispatch)
	require.Equal(t, uint64(7), dispatch.SubscriptionID)
	require.Equal(t, uint32(300_000), dispatch.GasLimit)
	require.Equal(t, []byte{0xab}, dispatch.DomainID)

	decoded, err := types.DecodeComputeRequest(dispatch.Payload)
	require.NoError(t, err)
	require.Equal(t, testComputeRequest().Source, decoded.Source)
}

func TestSendComputeRequestNonOwner(t *testing.T) {
	k, ctx, router := keepertest.CrowdKeeper(t)

	_, err := k.SendComputeRequest(ctx, keepertest.TestAddress(0x10), testComputeRequest(), 1, 100_000, nil)
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.Empty(t, router.Dispatches)
	require.Nil(t, k.GetLastRequestID(ctx))
}

func TestSendComputeRequestRouterError(t *testing.T) {
	k, ctx, router := keepertest.CrowdKeeper(t)
	router.Err = errors.New("subscription not funded")

	_, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 1, 100_000, nil)
	require.Error(t, err)
	require.Nil(t, k.GetLastRequestID(ctx))
}

func TestSendRawComputeRequest(t *testing.T) {
	k, ctx, router := keepertest.CrowdKeeper(t)

	payload := []byte{0x01, 0x02, 0x03}
	id, err := k.SendRawComputeRequest(ctx, keepertest.TestOwner(), payload, 3, 200_000, nil)
	require.NoError(t, err)
	require.Equal(t, id, k.GetLastRequestID(ctx))
	require.Equal(t, payload, router.LastDispatch().Payload)
}

func TestSendRawComputeRequestEmptyPayload(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	_, err := k.SendRawComputeRequest(ctx, keepertest.TestOwner(), nil, 3, 200_000, nil)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestFulfillComputeRequest(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	id, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 1, 100_000, nil)
	require.NoError(t, err)

	response := []byte("result")
	require.NoError(t, k.FulfillComputeRequest(ctx, keepertest.TestRouter(), id, response, nil))

	require.Equal(t, response, k.GetLastResponse(ctx))
	require.Nil(t, k.GetLastError(ctx))

	// The matched id is consumed: nothing is outstanding anymore.
	require.Nil(t, k.GetLastRequestID(ctx))
}

func TestFulfillComputeRequestErrorPayload(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	id, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 1, 100_000, nil)
	require.NoError(t, err)

	errPayload := []byte("execution reverted")
	require.NoError(t, k.FulfillComputeRequest(ctx, keepertest.TestRouter(), id, nil, errPayload))

	require.Nil(t, k.GetLastResponse(ctx))
	require.Equal(t, errPayload, k.GetLastError(ctx))
}

func TestFulfillComputeRequestNonRouter(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	id, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 1, 100_000, nil)
	require.NoError(t, err)

	// Not even the module owner may deliver responses.
	err = k.FulfillComputeRequest(ctx, keepertest.TestOwner(), id, []byte("result"), nil)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// The request stays outstanding for the real router.
	require.Equal(t, id, k.GetLastRequestID(ctx))
}

func TestFulfillComputeRequestWrongID(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	_, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 1, 100_000, nil)
	require.NoError(t, err)

	bogus := make([]byte, types.RequestIDLength)
	err = k.FulfillComputeRequest(ctx, keepertest.TestRouter(), bogus, []byte("result"), nil)
	require.ErrorIs(t, err, types.ErrUnexpectedRequestID)
}

func TestFulfillComputeRequestNoneOutstanding(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	bogus := make([]byte, types.RequestIDLength)
	err := k.FulfillComputeRequest(ctx, keepertest.TestRouter(), bogus, []byte("result"), nil)
	require.ErrorIs(t, err, types.ErrUnexpectedRequestID)
}

// A new request supersedes the outstanding one: the old id becomes permanently
// unmatchable while the new id still matches.
func TestSendComputeRequestSupersedes(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	first, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 1, 100_000, nil)
	require.NoError(t, err)
	second, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 1, 100_000, nil)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	err = k.FulfillComputeRequest(ctx, keepertest.TestRouter(), first, []byte("stale"), nil)
	require.ErrorIs(t, err, types.ErrUnexpectedRequestID)

	require.NoError(t, k.FulfillComputeRequest(ctx, keepertest.TestRouter(), second, []byte("fresh"), nil))
	require.Equal(t, []byte("fresh"), k.GetLastResponse(ctx))
}

// Once matched, a second delivery for the same id is rejected.
func TestFulfillComputeRequestDuplicateDelivery(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	id, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 1, 100_000, nil)
	require.NoError(t, err)

	require.NoError(t, k.FulfillComputeRequest(ctx, keepertest.TestRouter(), id, []byte("first"), nil))

	err = k.FulfillComputeRequest(ctx, keepertest.TestRouter(), id, []byte("replay"), nil)
	require.ErrorIs(t, err, types.ErrUnexpectedRequestID)
	require.Equal(t, []byte("first"), k.GetLastResponse(ctx))
}

// A follow-up response overwrites the recorded result of the previous cycle,
// clearing slots the new response does not fill.
func TestFulfillComputeRequestOverwritesPreviousResult(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	first, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 1, 100_000, nil)
	require.NoError(t, err)
	require.NoError(t, k.FulfillComputeRequest(ctx, keepertest.TestRouter(), first, []byte("ok"), nil))

	second, err := k.SendComputeRequest(ctx, keepertest.TestOwner(), testComputeRequest(), 1, 100_000, nil)
	require.NoError(t, err)
	require.NoError(t, k.FulfillComputeRequest(ctx, keepertest.TestRouter(), second, nil, []byte("boom")))

	require.Nil(t, k.GetLastResponse(ctx))
	require.Equal(t, []byte("boom"), k.GetLastError(ctx))
}
