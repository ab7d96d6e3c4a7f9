package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	transfertypes "github.com/tokenize-x/ibc-core/apps/transfer/types"
	"github.com/tokenize-x/ibc-core/testutil/ibctesting"
	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/mock"
	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	connectiontypes "github.com/tokenize-x/ibc-core/x/ibccore/03-connection/types"
	channeltypes "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	routingtypes "github.com/tokenize-x/ibc-core/x/ibccore/26-routing/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

var (
	clientHeight = ibctypes.NewHeight(0, 1)
	transferPort = ibctypes.DefaultPortId()
	mockClientId = ibctypes.ClientId("09-mock-0")
)

func newRouterChain(t *testing.T) *ibctesting.Chain {
	t.Helper()
	modules := map[ibctypes.PortId]channeltypes.IBCModule{
		transferPort: ibctesting.NewModule([]byte("ack")),
	}
	chain := ibctesting.NewChain(t, modules)
	chain.Ports.Bind(transferPort)
	return chain
}

func createClientMsg() clienttypes.MsgCreateClient {
	return clienttypes.MsgCreateClient{
		ClientType:     ibctypes.ClientTypeMock,
		ClientState:    mock.NewClientState(clientHeight),
		ConsensusState: mock.NewConsensusState(ibctypes.Timestamp(1), []byte("root")),
		Signer:         ibctesting.Signer,
	}
}

// TestDeliverFullHandshake plays both sides of the connection and
// channel handshakes through one store: Init/Ack walk the "A" ends to
// Open and Try/Confirm walk the "B" ends to Open, nine messages in a
// single atomic batch starting from an empty store.
func TestDeliverFullHandshake(t *testing.T) {
	requireT := require.New(t)
	chain := newRouterChain(t)

	counterpartyConn := connectiontypes.Counterparty{
		ClientId: mockClientId,
		Prefix:   ibctesting.DefaultPrefix,
	}

	envs := []routingtypes.Envelope{
		createClientMsg(),
		connectiontypes.MsgConnectionOpenInit{
			ClientId:     mockClientId,
			Counterparty: counterpartyConn,
			Signer:       ibctesting.Signer,
		},
		connectiontypes.MsgConnectionOpenTry{
			ClientId:    mockClientId,
			ClientState: mock.NewClientState(clientHeight),
			Counterparty: connectiontypes.Counterparty{
				ClientId:     mockClientId,
				ConnectionId: ibctypes.ConnectionId("connection-0"),
				Prefix:       ibctesting.DefaultPrefix,
			},
			CounterpartyVersions: []connectiontypes.Version{connectiontypes.DefaultVersion()},
			ProofHeight:          clientHeight,
			ProofInit:            ibctesting.MockProof,
			ProofClient:          ibctesting.MockProof,
			Signer:               ibctesting.Signer,
		},
		connectiontypes.MsgConnectionOpenAck{
			ConnectionId:             ibctypes.ConnectionId("connection-0"),
			CounterpartyConnectionId: ibctypes.ConnectionId("connection-1"),
			ClientState:              mock.NewClientState(clientHeight),
			Version:                  connectiontypes.DefaultVersion(),
			ProofHeight:              clientHeight,
			ProofTry:                 ibctesting.MockProof,
			ProofClient:              ibctesting.MockProof,
			Signer:                   ibctesting.Signer,
		},
		connectiontypes.MsgConnectionOpenConfirm{
			ConnectionId: ibctypes.ConnectionId("connection-1"),
			ProofHeight:  clientHeight,
			ProofAck:     ibctesting.MockProof,
			Signer:       ibctesting.Signer,
		},
		channeltypes.MsgChannelOpenInit{
			PortId:         transferPort,
			Ordering:       channeltypes.UnorderedOrdering,
			ConnectionHops: []ibctypes.ConnectionId{"connection-0"},
			Version:        channeltypes.DefaultVersion,
			Counterparty:   channeltypes.Counterparty{PortId: transferPort},
			Signer:         ibctesting.Signer,
		},
		channeltypes.MsgChannelOpenTry{
			PortId:              transferPort,
			Ordering:            channeltypes.UnorderedOrdering,
			ConnectionHops:      []ibctypes.ConnectionId{"connection-1"},
			CounterpartyVersion: channeltypes.DefaultVersion,
			Counterparty: channeltypes.Counterparty{
				PortId:    transferPort,
				ChannelId: ibctypes.ChannelId("channel-0"),
			},
			ProofInit:   ibctesting.MockProof,
			ProofHeight: clientHeight,
			Signer:      ibctesting.Signer,
		},
		channeltypes.MsgChannelOpenAck{
			PortId:                transferPort,
			ChannelId:             ibctypes.ChannelId("channel-0"),
			CounterpartyChannelId: ibctypes.ChannelId("channel-1"),
			CounterpartyVersion:   channeltypes.DefaultVersion,
			ProofTry:              ibctesting.MockProof,
			ProofHeight:           clientHeight,
			Signer:                ibctesting.Signer,
		},
		channeltypes.MsgChannelOpenConfirm{
			PortId:      transferPort,
			ChannelId:   ibctypes.ChannelId("channel-1"),
			ProofAck:    ibctesting.MockProof,
			ProofHeight: clientHeight,
			Signer:      ibctesting.Signer,
		},
	}

	results, err := chain.Router.Deliver(chain.Ctx, envs)
	requireT.NoError(err)
	requireT.Len(results, len(envs))

	record, err := chain.Client.GetClientRecord(chain.Ctx, mockClientId)
	requireT.NoError(err)
	requireT.False(record.ClientState.Frozen())

	for _, connectionId := range []ibctypes.ConnectionId{"connection-0", "connection-1"} {
		end, err := chain.Connection.GetConnection(chain.Ctx, connectionId)
		requireT.NoError(err)
		requireT.Equal(connectiontypes.Open, end.State)
	}
	for _, channelId := range []ibctypes.ChannelId{"channel-0", "channel-1"} {
		end, err := chain.Channel.GetChannel(chain.Ctx, transferPort, channelId)
		requireT.NoError(err)
		requireT.Equal(channeltypes.Open, end.State)
	}

	for _, eventType := range []string{
		"ibccore.client.v1.EventCreateClient",
		"ibccore.connection.v1.EventConnectionOpenInit",
		"ibccore.connection.v1.EventConnectionOpenTry",
		"ibccore.connection.v1.EventConnectionOpenAck",
		"ibccore.connection.v1.EventConnectionOpenConfirm",
		"ibccore.channel.v1.EventChannelOpenInit",
		"ibccore.channel.v1.EventChannelOpenTry",
		"ibccore.channel.v1.EventChannelOpenAck",
		"ibccore.channel.v1.EventChannelOpenConfirm",
	} {
		requireT.Len(chain.EventsOfType(eventType), 1, eventType)
	}
}

// TestDeliverRollsBackFailedBatch is the atomicity contract: a stale
// header in the second message must leave the store byte-identical to
// before the call, including the client counter.
func TestDeliverRollsBackFailedBatch(t *testing.T) {
	requireT := require.New(t)
	chain := newRouterChain(t)

	before := chain.Store.Clone()

	_, err := chain.Router.Deliver(chain.Ctx, []routingtypes.Envelope{
		createClientMsg(),
		clienttypes.MsgUpdateClient{
			ClientId: mockClientId,
			// not greater than the client's latest height, so stale
			Header: mock.Header{HeightVal: clientHeight},
			Signer: ibctesting.Signer,
		},
	})
	requireT.ErrorIs(err, exported.ErrHeaderVerificationFailure)

	requireT.True(chain.Store.Equal(before))
	_, err = chain.Client.GetClientRecord(chain.Ctx, mockClientId)
	requireT.ErrorIs(err, clienttypes.ErrClientNotFound)
	requireT.Empty(chain.Ctx.EventManager().Events())
}

func TestDeliverEmptyBatch(t *testing.T) {
	chain := newRouterChain(t)
	_, err := chain.Router.Deliver(chain.Ctx, nil)
	require.ErrorIs(t, err, routingtypes.ErrEmptyBatch)
}

func TestDispatchUnknownEnvelope(t *testing.T) {
	chain := newRouterChain(t)
	_, err := chain.Router.Dispatch(chain.Ctx, unknownEnvelope{})
	require.ErrorIs(t, err, routingtypes.ErrUnknownTypeURL)
}

type unknownEnvelope struct{}

func (unknownEnvelope) TypeURL() string      { return "/ibccore.test.v1.MsgUnknown" }
func (unknownEnvelope) ValidateBasic() error { return nil }

func TestDispatchCreateClient(t *testing.T) {
	requireT := require.New(t)
	chain := newRouterChain(t)

	res, err := chain.Router.Dispatch(chain.Ctx, createClientMsg())
	requireT.NoError(err)
	requireT.Equal(clienttypes.MsgCreateClientTypeURL, res.TypeURL)
	requireT.Equal([]byte(mockClientId), res.Data)

	record, err := chain.Client.GetClientRecord(chain.Ctx, mockClientId)
	requireT.NoError(err)
	requireT.Equal(ibctypes.ClientTypeMock, record.ClientType)
}

func TestDeliverTransfer(t *testing.T) {
	requireT := require.New(t)
	chain := newRouterChain(t)

	clientId := chain.CreateMockClient(clientHeight)
	connectionId := chain.OpenConnection(clientId, clientHeight)
	channelId := chain.OpenChannel(connectionId, transferPort, channeltypes.UnorderedOrdering, clientHeight)

	sender := sdk.AccAddress([]byte("ibctesting-sender-00"))
	token := sdk.NewCoin("utx", sdkmath.NewInt(500))
	chain.Bank.Fund(sender, sdk.NewCoins(token))

	_, err := chain.Router.Dispatch(chain.Ctx, transfertypes.MsgTransfer{
		SourcePort:    transferPort,
		SourceChannel: channelId,
		Token:         token,
		Sender:        sender.String(),
		Receiver:      ibctesting.Signer,
		TimeoutHeight: ibctypes.NewHeight(0, 6),
	})
	requireT.NoError(err)

	// the tokens moved into the module escrow and a commitment exists
	requireT.Equal(token, chain.Bank.BalanceOf(transfertypes.ModuleName, "utx"))
	key := channeltypes.ChannelKey(string(transferPort), string(channelId))
	_, err = chain.Channel.PacketCommitment.Get(chain.Ctx, channeltypes.MakePacketKey(key, 1))
	requireT.NoError(err)

	next, err := chain.Channel.NextSendSequence(chain.Ctx, transferPort, channelId)
	requireT.NoError(err)
	requireT.EqualValues(2, next)
}

func TestDeliverRecvPacketInvokesModule(t *testing.T) {
	requireT := require.New(t)
	module := ibctesting.NewModule([]byte("ack"))
	chain := ibctesting.NewChain(t, map[ibctypes.PortId]channeltypes.IBCModule{transferPort: module})
	chain.Ports.Bind(transferPort)

	clientId := chain.CreateMockClient(clientHeight)
	connectionId := chain.OpenConnection(clientId, clientHeight)
	channelId := chain.OpenChannel(connectionId, transferPort, channeltypes.UnorderedOrdering, clientHeight)

	packet := channeltypes.Packet{
		Sequence:           1,
		SourcePort:         transferPort,
		SourceChannel:      ibctypes.DefaultChannelId(),
		DestinationPort:    transferPort,
		DestinationChannel: channelId,
		Data:               []byte{0},
		TimeoutHeight:      ibctypes.NewHeight(0, 100),
	}
	_, err := chain.Router.Dispatch(chain.Ctx, channeltypes.MsgRecvPacket{
		Packet:      packet,
		Proof:       ibctesting.MockProof,
		ProofHeight: clientHeight,
		Signer:      ibctesting.Signer,
	})
	requireT.NoError(err)
	requireT.Equal(1, module.RecvCount)

	key := channeltypes.ChannelKey(string(transferPort), string(channelId))
	ack, err := chain.Channel.PacketAcknowledgement.Get(chain.Ctx, channeltypes.MakePacketKey(key, 1))
	requireT.NoError(err)
	requireT.Equal(channeltypes.CommitAcknowledgement(ibctesting.Hasher{}, []byte("ack")), ack)
}
