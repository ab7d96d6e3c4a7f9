package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/testutil/ibctesting"
	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/mock"
	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/03-connection/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

var clientHeight = ibctypes.NewHeight(0, 1)

func TestConnOpenInit(t *testing.T) {
	requireT := require.New(t)
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(clientHeight)

	connectionId, err := chain.Connection.ConnOpenInit(chain.Ctx, types.MsgConnectionOpenInit{
		ClientId: clientId,
		Counterparty: types.Counterparty{
			ClientId: ibctypes.ClientId("09-mock-0"),
			Prefix:   ibctesting.DefaultPrefix,
		},
		Signer: ibctesting.Signer,
	})
	requireT.NoError(err)
	requireT.Equal(ibctypes.ConnectionId("connection-0"), connectionId)

	end, err := chain.Connection.GetConnection(chain.Ctx, connectionId)
	requireT.NoError(err)
	requireT.Equal(types.Init, end.State)
	requireT.Equal(clientId, end.ClientId)
	requireT.Len(end.Versions, 1)

	// counters are monotone and never reused
	second, err := chain.Connection.ConnOpenInit(chain.Ctx, types.MsgConnectionOpenInit{
		ClientId: clientId,
		Counterparty: types.Counterparty{
			ClientId: ibctypes.ClientId("09-mock-0"),
			Prefix:   ibctesting.DefaultPrefix,
		},
		Signer: ibctesting.Signer,
	})
	requireT.NoError(err)
	requireT.Equal(ibctypes.ConnectionId("connection-1"), second)
}

func TestConnOpenInitMissingClient(t *testing.T) {
	chain := ibctesting.NewChain(t, nil)

	_, err := chain.Connection.ConnOpenInit(chain.Ctx, types.MsgConnectionOpenInit{
		ClientId: ibctypes.ClientId("09-mock-9"),
		Counterparty: types.Counterparty{
			ClientId: ibctypes.ClientId("09-mock-0"),
			Prefix:   ibctesting.DefaultPrefix,
		},
		Signer: ibctesting.Signer,
	})
	require.ErrorIs(t, err, types.ErrMissingClient)
}

func TestConnOpenInitFrozenClient(t *testing.T) {
	requireT := require.New(t)
	chain := ibctesting.NewChain(t, nil)

	clientId, err := chain.Client.CreateClient(chain.Ctx, clienttypes.MsgCreateClient{
		ClientType:     ibctypes.ClientTypeMock,
		ClientState:    mock.ClientState{LatestHeightVal: clientHeight, IsFrozen: true},
		ConsensusState: mock.NewConsensusState(ibctypes.Timestamp(1), []byte("root")),
		Signer:         ibctesting.Signer,
	})
	requireT.NoError(err)

	_, err = chain.Connection.ConnOpenInit(chain.Ctx, types.MsgConnectionOpenInit{
		ClientId: clientId,
		Counterparty: types.Counterparty{
			ClientId: ibctypes.ClientId("09-mock-0"),
			Prefix:   ibctesting.DefaultPrefix,
		},
		Signer: ibctesting.Signer,
	})
	requireT.ErrorIs(err, exported.ErrFrozenClient)
}

func TestConnOpenTryThenConfirm(t *testing.T) {
	requireT := require.New(t)
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(clientHeight)

	connectionId, err := chain.Connection.ConnOpenTry(chain.Ctx, types.MsgConnectionOpenTry{
		ClientId:    clientId,
		ClientState: mock.NewClientState(clientHeight),
		Counterparty: types.Counterparty{
			ClientId:     ibctypes.ClientId("09-mock-0"),
			ConnectionId: ibctypes.ConnectionId("connection-7"),
			Prefix:       ibctesting.DefaultPrefix,
		},
		CounterpartyVersions: []types.Version{types.DefaultVersion()},
		ProofHeight:          clientHeight,
		ProofInit:            ibctesting.MockProof,
		ProofClient:          ibctesting.MockProof,
		Signer:               ibctesting.Signer,
	})
	requireT.NoError(err)

	end, err := chain.Connection.GetConnection(chain.Ctx, connectionId)
	requireT.NoError(err)
	requireT.Equal(types.TryOpen, end.State)
	requireT.Equal(ibctypes.ConnectionId("connection-7"), end.Counterparty.ConnectionId)

	err = chain.Connection.ConnOpenConfirm(chain.Ctx, types.MsgConnectionOpenConfirm{
		ConnectionId: connectionId,
		ProofHeight:  clientHeight,
		ProofAck:     ibctesting.MockProof,
		Signer:       ibctesting.Signer,
	})
	requireT.NoError(err)

	end, err = chain.Connection.GetConnection(chain.Ctx, connectionId)
	requireT.NoError(err)
	requireT.Equal(types.Open, end.State)
	requireT.True(end.Counterparty.HasConnectionId())
}

func TestConnOpenTryNoCommonVersion(t *testing.T) {
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(clientHeight)

	_, err := chain.Connection.ConnOpenTry(chain.Ctx, types.MsgConnectionOpenTry{
		ClientId:    clientId,
		ClientState: mock.NewClientState(clientHeight),
		Counterparty: types.Counterparty{
			ClientId: ibctypes.ClientId("09-mock-0"),
			Prefix:   ibctesting.DefaultPrefix,
		},
		CounterpartyVersions: []types.Version{{Identifier: "999"}},
		ProofHeight:          clientHeight,
		ProofInit:            ibctesting.MockProof,
		ProofClient:          ibctesting.MockProof,
		Signer:               ibctesting.Signer,
	})
	require.ErrorIs(t, err, types.ErrNoCommonVersion)
}

func TestConnOpenTryConsensusHeightAheadOfHost(t *testing.T) {
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(clientHeight)

	_, err := chain.Connection.ConnOpenTry(chain.Ctx, types.MsgConnectionOpenTry{
		ClientId:    clientId,
		ClientState: mock.NewClientState(clientHeight),
		Counterparty: types.Counterparty{
			ClientId: ibctypes.ClientId("09-mock-0"),
			Prefix:   ibctesting.DefaultPrefix,
		},
		CounterpartyVersions: []types.Version{types.DefaultVersion()},
		ProofHeight:          clientHeight,
		ProofInit:            ibctesting.MockProof,
		ProofClient:          ibctesting.MockProof,
		ProofConsensus:       ibctesting.MockProof,
		// claims a consensus state of this chain at a height the
		// chain has not reached (host is at 10)
		ConsensusHeight: ibctypes.NewHeight(0, 100),
		Signer:          ibctesting.Signer,
	})
	require.ErrorIs(t, err, types.ErrInvalidConsensusHeight)
}

func TestConnOpenAck(t *testing.T) {
	requireT := require.New(t)
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(clientHeight)

	connectionId := chain.OpenConnection(clientId, clientHeight)

	end, err := chain.Connection.GetConnection(chain.Ctx, connectionId)
	requireT.NoError(err)
	requireT.Equal(types.Open, end.State)
	// invariant: an Open end always knows its counterparty's id
	requireT.Equal(ibctypes.ConnectionId("connection-0"), end.Counterparty.ConnectionId)
	requireT.Len(end.Versions, 1)
}

func TestConnOpenAckWrongState(t *testing.T) {
	requireT := require.New(t)
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(clientHeight)
	connectionId := chain.OpenConnection(clientId, clientHeight)

	// already Open, so a second Ack must be rejected
	err := chain.Connection.ConnOpenAck(chain.Ctx, types.MsgConnectionOpenAck{
		ConnectionId:             connectionId,
		CounterpartyConnectionId: ibctypes.ConnectionId("connection-0"),
		ClientState:              mock.NewClientState(clientHeight),
		Version:                  types.DefaultVersion(),
		ProofHeight:              clientHeight,
		ProofTry:                 ibctesting.MockProof,
		ProofClient:              ibctesting.MockProof,
		Signer:                   ibctesting.Signer,
	})
	requireT.ErrorIs(err, types.ErrInvalidConnectionState)
}

func TestConnOpenConfirmNotFound(t *testing.T) {
	chain := ibctesting.NewChain(t, nil)

	err := chain.Connection.ConnOpenConfirm(chain.Ctx, types.MsgConnectionOpenConfirm{
		ConnectionId: ibctypes.ConnectionId("connection-42"),
		ProofHeight:  clientHeight,
		ProofAck:     ibctesting.MockProof,
		Signer:       ibctesting.Signer,
	})
	require.ErrorIs(t, err, types.ErrConnectionNotFound)
}

func TestConnOpenTryEmptyProofRejected(t *testing.T) {
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(clientHeight)

	_, err := chain.Connection.ConnOpenTry(chain.Ctx, types.MsgConnectionOpenTry{
		ClientId:    clientId,
		ClientState: mock.NewClientState(clientHeight),
		Counterparty: types.Counterparty{
			ClientId: ibctypes.ClientId("09-mock-0"),
			Prefix:   ibctesting.DefaultPrefix,
		},
		CounterpartyVersions: []types.Version{types.DefaultVersion()},
		ProofHeight:          clientHeight,
		ProofInit:            ibctesting.MockProof,
		ProofClient:          nil, // mock verifier rejects empty proofs
		Signer:               ibctesting.Signer,
	})
	require.ErrorIs(t, err, types.ErrInvalidProof)
}
