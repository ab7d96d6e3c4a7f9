package keeper_test

import (
	"testing"

	"cosmossdk.io/log"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	clientkeeper "github.com/tokenize-x/ibc-core/x/ibccore/02-client/keeper"
	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/mock"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	"github.com/tokenize-x/ibc-core/x/ibccore/store"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

var testSigner = sdk.AccAddress([]byte("client-test-signer00")).String()

func newTestKeeper(t *testing.T) (clientkeeper.Keeper, sdk.Context) {
	t.Helper()
	storeService := store.NewMemStoreService()
	verifiers := map[ibctypes.ClientType]exported.Verifier{
		ibctypes.ClientTypeMock: mock.Verifier{},
	}
	k := clientkeeper.NewKeeper(storeService, log.NewNopLogger(), verifiers)
	ctx := sdk.NewContext(nil, cmtproto.Header{}, false, log.NewNopLogger())
	return k, ctx
}

func TestKeeper_CreateClientThenUpdate(t *testing.T) {
	requireT := require.New(t)
	k, ctx := newTestKeeper(t)

	initialHeight := ibctypes.NewHeight(0, 1)
	createMsg := clienttypes.MsgCreateClient{
		ClientType:     ibctypes.ClientTypeMock,
		ClientState:    mock.ClientState{LatestHeightVal: initialHeight},
		ConsensusState: mock.ConsensusState{TimestampVal: ibctypes.Timestamp(1)},
		Signer:         testSigner,
	}

	clientId, err := k.CreateClient(ctx, createMsg)
	requireT.NoError(err)
	requireT.NotEmpty(clientId)

	record, err := k.GetClientRecord(ctx, clientId)
	requireT.NoError(err)
	requireT.Equal(ibctypes.ClientTypeMock, record.ClientType)
	requireT.Equal(initialHeight, record.ClientState.LatestHeight())

	nextHeight := ibctypes.NewHeight(0, 2)
	updateMsg := clienttypes.MsgUpdateClient{
		ClientId: clientId,
		Header:   mock.Header{HeightVal: nextHeight},
		Signer:   createMsg.Signer,
	}
	requireT.NoError(k.UpdateClient(ctx, updateMsg))

	updated, err := k.GetClientRecord(ctx, clientId)
	requireT.NoError(err)
	requireT.Equal(nextHeight, updated.ClientState.LatestHeight())

	consensus, err := k.GetConsensusStateAt(ctx, clientId, nextHeight)
	requireT.NoError(err)
	requireT.Equal(ibctypes.ClientTypeMock, consensus.ClientType())
}

func TestKeeper_UpdateClientUnknownId(t *testing.T) {
	requireT := require.New(t)
	k, ctx := newTestKeeper(t)

	err := k.UpdateClient(ctx, clienttypes.MsgUpdateClient{
		ClientId: ibctypes.DefaultClientId(),
		Header:   mock.Header{HeightVal: ibctypes.NewHeight(0, 1)},
		Signer:   testSigner,
	})
	requireT.ErrorIs(err, clienttypes.ErrClientNotFound)
}
