package mock_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/mock"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

func TestCheckHeaderAndUpdateState(t *testing.T) {
	requireT := require.New(t)
	verifier := mock.NewVerifier()
	state := mock.NewClientState(ibctypes.NewHeight(0, 5))

	newState, newConsensus, err := verifier.CheckHeaderAndUpdateState(state, mock.Header{
		HeightVal:    ibctypes.NewHeight(0, 6),
		TimestampVal: ibctypes.Timestamp(9),
		RootVal:      []byte("root"),
	})
	requireT.NoError(err)
	requireT.Equal(ibctypes.NewHeight(0, 6), newState.LatestHeight())
	requireT.Equal(ibctypes.Timestamp(9), newConsensus.Timestamp())
}

func TestCheckHeaderStale(t *testing.T) {
	verifier := mock.NewVerifier()
	state := mock.NewClientState(ibctypes.NewHeight(0, 5))

	// equal height is stale, not just lower
	_, _, err := verifier.CheckHeaderAndUpdateState(state, mock.Header{HeightVal: ibctypes.NewHeight(0, 5)})
	require.ErrorIs(t, err, exported.ErrHeaderVerificationFailure)

	_, _, err = verifier.CheckHeaderAndUpdateState(state, mock.Header{HeightVal: ibctypes.NewHeight(0, 4)})
	require.ErrorIs(t, err, exported.ErrHeaderVerificationFailure)
}

func TestCheckHeaderFrozen(t *testing.T) {
	verifier := mock.NewVerifier()
	state := mock.ClientState{LatestHeightVal: ibctypes.NewHeight(0, 5), IsFrozen: true}

	_, _, err := verifier.CheckHeaderAndUpdateState(state, mock.Header{HeightVal: ibctypes.NewHeight(0, 6)})
	require.ErrorIs(t, err, exported.ErrFrozenClient)
}

func TestVerifyRejectsEmptyProof(t *testing.T) {
	requireT := require.New(t)
	verifier := mock.NewVerifier()
	state := mock.NewClientState(ibctypes.NewHeight(0, 5))

	err := verifier.VerifyConnectionState(state, ibctypes.NewHeight(0, 5), nil, exported.Prefix{}, nil, "connection-0", nil)
	requireT.ErrorIs(err, exported.ErrClientProofVerification)

	err = verifier.VerifyConnectionState(state, ibctypes.NewHeight(0, 5), nil, exported.Prefix{}, exported.Proof{0x01}, "connection-0", nil)
	requireT.NoError(err)
}

func TestClientStateRoundTrip(t *testing.T) {
	requireT := require.New(t)
	state := mock.ClientState{LatestHeightVal: ibctypes.NewHeight(1, 2), IsFrozen: true}

	encoded, err := state.ToRaw().Marshal()
	requireT.NoError(err)

	var raw mock.RawClientState
	requireT.NoError(raw.Unmarshal(encoded))
	requireT.Equal(state, mock.FromRaw(&raw))
}
