package keeper_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/testutil/ibctesting"
	connectiontypes "github.com/tokenize-x/ibc-core/x/ibccore/03-connection/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

var (
	clientHeight = ibctypes.NewHeight(0, 1)
	transferPort = ibctypes.DefaultPortId()
)

// fixture builds a chain with a mock client, an open connection, and a
// bound transfer port, the starting state most packet tests share.
func fixture(t *testing.T) (*ibctesting.Chain, ibctypes.ClientId, ibctypes.ConnectionId, types.Capability) {
	t.Helper()
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(clientHeight)
	connectionId := chain.OpenConnection(clientId, clientHeight)
	cap := chain.Ports.Bind(transferPort)
	return chain, clientId, connectionId, cap
}

func outboundPacket(channelId ibctypes.ChannelId, sequence uint64, timeoutHeight ibctypes.Height) types.Packet {
	return types.Packet{
		Sequence:           sequence,
		SourcePort:         transferPort,
		SourceChannel:      channelId,
		DestinationPort:    transferPort,
		DestinationChannel: ibctypes.DefaultChannelId(),
		Data:               []byte{0},
		TimeoutHeight:      timeoutHeight,
	}
}

func inboundPacket(channelId ibctypes.ChannelId, sequence uint64) types.Packet {
	return types.Packet{
		Sequence:           sequence,
		SourcePort:         transferPort,
		SourceChannel:      ibctypes.DefaultChannelId(),
		DestinationPort:    transferPort,
		DestinationChannel: channelId,
		Data:               []byte{0},
		TimeoutHeight:      ibctypes.NewHeight(0, 100),
	}
}

func noopRecv(context.Context, types.Packet) ([]byte, error) { return []byte("ack"), nil }

func TestChanOpenInit(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, _ := fixture(t)

	channelId, err := chain.Channel.ChanOpenInit(chain.Ctx, types.MsgChannelOpenInit{
		PortId:         transferPort,
		Ordering:       types.UnorderedOrdering,
		ConnectionHops: []ibctypes.ConnectionId{connectionId},
		Version:        types.DefaultVersion,
		Counterparty:   types.Counterparty{PortId: transferPort},
		Signer:         ibctesting.Signer,
	})
	requireT.NoError(err)
	requireT.Equal(ibctypes.ChannelId("channel-0"), channelId)

	end, err := chain.Channel.GetChannel(chain.Ctx, transferPort, channelId)
	requireT.NoError(err)
	requireT.Equal(types.Init, end.State)

	key := types.ChannelKey(string(transferPort), string(channelId))
	for _, seqs := range []interface {
		Get(ctx context.Context, key string) (uint64, error)
	}{chain.Channel.NextSequenceSend, chain.Channel.NextSequenceRecv, chain.Channel.NextSequenceAck} {
		seq, err := seqs.Get(chain.Ctx, key)
		requireT.NoError(err)
		requireT.EqualValues(1, seq)
	}
}

func TestChanOpenInitConnectionNotOpen(t *testing.T) {
	requireT := require.New(t)
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(clientHeight)
	chain.Ports.Bind(transferPort)

	// connection exists but was left in Init
	connectionId, err := chain.Connection.ConnOpenInit(chain.Ctx, connectiontypes.MsgConnectionOpenInit{
		ClientId: clientId,
		Counterparty: connectiontypes.Counterparty{
			ClientId: ibctypes.ClientId("09-mock-0"),
			Prefix:   ibctesting.DefaultPrefix,
		},
		Signer: ibctesting.Signer,
	})
	requireT.NoError(err)

	_, err = chain.Channel.ChanOpenInit(chain.Ctx, types.MsgChannelOpenInit{
		PortId:         transferPort,
		Ordering:       types.UnorderedOrdering,
		ConnectionHops: []ibctypes.ConnectionId{connectionId},
		Counterparty:   types.Counterparty{PortId: transferPort},
		Signer:         ibctesting.Signer,
	})
	requireT.ErrorIs(err, types.ErrMissingConnection)
}

func TestChanOpenInitNoCapability(t *testing.T) {
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(clientHeight)
	connectionId := chain.OpenConnection(clientId, clientHeight)

	_, err := chain.Channel.ChanOpenInit(chain.Ctx, types.MsgChannelOpenInit{
		PortId:         transferPort,
		Ordering:       types.UnorderedOrdering,
		ConnectionHops: []ibctypes.ConnectionId{connectionId},
		Counterparty:   types.Counterparty{PortId: transferPort},
		Signer:         ibctesting.Signer,
	})
	require.ErrorIs(t, err, types.ErrInvalidPortCapability)
}

func TestChanHandshakeToOpen(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, _ := fixture(t)

	channelId := chain.OpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	end, err := chain.Channel.GetChannel(chain.Ctx, transferPort, channelId)
	requireT.NoError(err)
	requireT.Equal(types.Open, end.State)
	// invariant: an Open end always knows its counterparty's channel id
	requireT.True(end.Counterparty.HasChannelId())
}

func TestChanOpenTryReopensPreviousInit(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, _ := fixture(t)

	channelId, err := chain.Channel.ChanOpenInit(chain.Ctx, types.MsgChannelOpenInit{
		PortId:         transferPort,
		Ordering:       types.UnorderedOrdering,
		ConnectionHops: []ibctypes.ConnectionId{connectionId},
		Counterparty:   types.Counterparty{PortId: transferPort},
		Signer:         ibctesting.Signer,
	})
	requireT.NoError(err)

	// crossing hellos: the counterparty's Try names our Init end
	reopened, err := chain.Channel.ChanOpenTry(chain.Ctx, types.MsgChannelOpenTry{
		PortId:              transferPort,
		PreviousChannelId:   channelId,
		Ordering:            types.UnorderedOrdering,
		ConnectionHops:      []ibctypes.ConnectionId{connectionId},
		CounterpartyVersion: types.DefaultVersion,
		Counterparty: types.Counterparty{
			PortId:    transferPort,
			ChannelId: ibctypes.DefaultChannelId(),
		},
		ProofInit:   ibctesting.MockProof,
		ProofHeight: clientHeight,
		Signer:      ibctesting.Signer,
	})
	requireT.NoError(err)
	requireT.Equal(channelId, reopened)

	end, err := chain.Channel.GetChannel(chain.Ctx, transferPort, channelId)
	requireT.NoError(err)
	requireT.Equal(types.TryOpen, end.State)
}

func TestChanOpenConfirm(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, _ := fixture(t)
	channelId := chain.TryOpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	err := chain.Channel.ChanOpenConfirm(chain.Ctx, types.MsgChannelOpenConfirm{
		PortId:      transferPort,
		ChannelId:   channelId,
		ProofAck:    ibctesting.MockProof,
		ProofHeight: clientHeight,
		Signer:      ibctesting.Signer,
	})
	requireT.NoError(err)

	end, err := chain.Channel.GetChannel(chain.Ctx, transferPort, channelId)
	requireT.NoError(err)
	requireT.Equal(types.Open, end.State)
}

func TestChanCloseInit(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, _ := fixture(t)
	channelId := chain.OpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	msg := types.MsgChannelCloseInit{
		PortId:    transferPort,
		ChannelId: channelId,
		Signer:    ibctesting.Signer,
	}
	requireT.NoError(chain.Channel.ChanCloseInit(chain.Ctx, msg))

	end, err := chain.Channel.GetChannel(chain.Ctx, transferPort, channelId)
	requireT.NoError(err)
	requireT.Equal(types.Closed, end.State)

	// Closed is terminal for the handshake
	requireT.ErrorIs(chain.Channel.ChanCloseInit(chain.Ctx, msg), types.ErrChannelClosed)
}

func TestChanCloseConfirm(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, _ := fixture(t)
	channelId := chain.OpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	err := chain.Channel.ChanCloseConfirm(chain.Ctx, types.MsgChannelCloseConfirm{
		PortId:      transferPort,
		ChannelId:   channelId,
		ProofInit:   ibctesting.MockProof,
		ProofHeight: clientHeight,
		Signer:      ibctesting.Signer,
	})
	requireT.NoError(err)

	end, err := chain.Channel.GetChannel(chain.Ctx, transferPort, channelId)
	requireT.NoError(err)
	requireT.Equal(types.Closed, end.State)
}

func TestSendPacketChannelNotFound(t *testing.T) {
	chain := ibctesting.NewChain(t, nil)

	packet := outboundPacket(ibctypes.DefaultChannelId(), 1, ibctypes.NewHeight(0, 6))
	err := chain.Channel.SendPacket(chain.Ctx, types.Capability{Index: 1}, packet)
	require.ErrorIs(t, err, types.ErrChannelNotFound)
}

func TestSendPacketNoCapability(t *testing.T) {
	chain, _, connectionId, _ := fixture(t)
	channelId := chain.TryOpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	packet := outboundPacket(channelId, 1, ibctypes.NewHeight(0, 6))
	err := chain.Channel.SendPacket(chain.Ctx, types.Capability{Index: 999}, packet)
	require.ErrorIs(t, err, types.ErrInvalidPortCapability)
}

func TestSendPacket(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, cap := fixture(t)
	channelId := chain.TryOpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	packet := outboundPacket(channelId, 1, ibctypes.NewHeight(0, 6))
	requireT.NoError(chain.Channel.SendPacket(chain.Ctx, cap, packet))

	next, err := chain.Channel.NextSendSequence(chain.Ctx, transferPort, channelId)
	requireT.NoError(err)
	requireT.EqualValues(2, next)

	key := types.ChannelKey(string(transferPort), string(channelId))
	commitment, err := chain.Channel.PacketCommitment.Get(chain.Ctx, types.MakePacketKey(key, 1))
	requireT.NoError(err)
	requireT.Equal(types.CommitPacket(ibctesting.Hasher{}, packet), commitment)

	requireT.Len(chain.EventsOfType("ibccore.channel.v1.EventSendPacket"), 1)
}

func TestSendPacketLowTimeoutHeight(t *testing.T) {
	chain := ibctesting.NewChain(t, nil)
	clientId := chain.CreateMockClient(ibctypes.NewHeight(0, 2))
	connectionId := chain.OpenConnection(clientId, ibctypes.NewHeight(0, 2))
	cap := chain.Ports.Bind(transferPort)
	channelId := chain.TryOpenChannel(connectionId, transferPort, types.UnorderedOrdering, ibctypes.NewHeight(0, 2))

	packet := outboundPacket(channelId, 1, ibctypes.NewHeight(0, 1))
	err := chain.Channel.SendPacket(chain.Ctx, cap, packet)
	require.ErrorIs(t, err, types.ErrLowPacketHeight)
}

func TestSendPacketWrongSequence(t *testing.T) {
	chain, _, connectionId, cap := fixture(t)
	channelId := chain.TryOpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	packet := outboundPacket(channelId, 5, ibctypes.NewHeight(0, 6))
	err := chain.Channel.SendPacket(chain.Ctx, cap, packet)
	require.ErrorIs(t, err, types.ErrInvalidPacketSequence)
}

func TestSendPacketCounterpartyMismatch(t *testing.T) {
	chain, _, connectionId, cap := fixture(t)
	channelId := chain.TryOpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	packet := outboundPacket(channelId, 1, ibctypes.NewHeight(0, 6))
	packet.DestinationChannel = ibctypes.ChannelId("channel-99")
	err := chain.Channel.SendPacket(chain.Ctx, cap, packet)
	require.ErrorIs(t, err, types.ErrChannelMismatch)
}

func TestRecvPacketUnorderedReplay(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, _ := fixture(t)
	channelId := chain.OpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	packet := inboundPacket(channelId, 1)
	requireT.NoError(chain.Channel.RecvPacket(chain.Ctx, packet, ibctesting.MockProof, clientHeight, noopRecv))

	key := types.ChannelKey(string(transferPort), string(channelId))
	_, err := chain.Channel.PacketReceipt.Get(chain.Ctx, types.MakePacketKey(key, 1))
	requireT.NoError(err)
	ack, err := chain.Channel.PacketAcknowledgement.Get(chain.Ctx, types.MakePacketKey(key, 1))
	requireT.NoError(err)
	requireT.Equal(types.CommitAcknowledgement(ibctesting.Hasher{}, []byte("ack")), ack)

	// replaying the identical message must fail
	err = chain.Channel.RecvPacket(chain.Ctx, packet, ibctesting.MockProof, clientHeight, noopRecv)
	requireT.ErrorIs(err, types.ErrPacketAlreadyReceived)
}

func TestRecvPacketOrderedSequence(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, _ := fixture(t)
	channelId := chain.OpenChannel(connectionId, transferPort, types.OrderedOrdering, clientHeight)

	// out-of-order delivery is rejected
	err := chain.Channel.RecvPacket(chain.Ctx, inboundPacket(channelId, 2), ibctesting.MockProof, clientHeight, noopRecv)
	requireT.ErrorIs(err, types.ErrInvalidPacketSequence)

	requireT.NoError(chain.Channel.RecvPacket(chain.Ctx, inboundPacket(channelId, 1), ibctesting.MockProof, clientHeight, noopRecv))

	// the expected sequence advanced past 1
	err = chain.Channel.RecvPacket(chain.Ctx, inboundPacket(channelId, 1), ibctesting.MockProof, clientHeight, noopRecv)
	requireT.ErrorIs(err, types.ErrInvalidPacketSequence)

	requireT.NoError(chain.Channel.RecvPacket(chain.Ctx, inboundPacket(channelId, 2), ibctesting.MockProof, clientHeight, noopRecv))
}

func TestRecvPacketAlreadyTimedOut(t *testing.T) {
	chain, _, connectionId, _ := fixture(t)
	channelId := chain.OpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	packet := inboundPacket(channelId, 1)
	packet.TimeoutHeight = ibctypes.NewHeight(0, 5) // receiver is at height 10
	err := chain.Channel.RecvPacket(chain.Ctx, packet, ibctesting.MockProof, clientHeight, noopRecv)
	require.ErrorIs(t, err, types.ErrPacketTimeout)
}

func TestAcknowledgePacket(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, cap := fixture(t)
	channelId := chain.OpenChannel(connectionId, transferPort, types.OrderedOrdering, clientHeight)

	packet := outboundPacket(channelId, 1, ibctypes.NewHeight(0, 6))
	requireT.NoError(chain.Channel.SendPacket(chain.Ctx, cap, packet))

	requireT.NoError(chain.Channel.AcknowledgePacket(
		chain.Ctx, packet, []byte("ack"), ibctesting.MockProof, clientHeight, nil,
	))

	key := types.ChannelKey(string(transferPort), string(channelId))
	_, err := chain.Channel.PacketCommitment.Get(chain.Ctx, types.MakePacketKey(key, 1))
	requireT.Error(err)

	ackSeq, err := chain.Channel.NextSequenceAck.Get(chain.Ctx, key)
	requireT.NoError(err)
	requireT.EqualValues(2, ackSeq)

	// the commitment is gone, so a second ack has nothing to match
	err = chain.Channel.AcknowledgePacket(chain.Ctx, packet, []byte("ack"), ibctesting.MockProof, clientHeight, nil)
	requireT.ErrorIs(err, types.ErrPacketCommitmentNotFound)
}

func TestTimeoutPacketOrderedClosesChannel(t *testing.T) {
	requireT := require.New(t)
	chain, clientId, connectionId, cap := fixture(t)
	channelId := chain.OpenChannel(connectionId, transferPort, types.OrderedOrdering, clientHeight)

	packet := outboundPacket(channelId, 1, ibctypes.NewHeight(0, 2))
	requireT.NoError(chain.Channel.SendPacket(chain.Ctx, cap, packet))

	// the counterparty's chain moved past the timeout height
	proofHeight := ibctypes.NewHeight(0, 2)
	chain.UpdateMockClient(clientId, proofHeight)

	requireT.NoError(chain.Channel.TimeoutPacket(chain.Ctx, packet, ibctesting.MockProof, proofHeight, 1, nil))

	key := types.ChannelKey(string(transferPort), string(channelId))
	_, err := chain.Channel.PacketCommitment.Get(chain.Ctx, types.MakePacketKey(key, 1))
	requireT.Error(err)

	end, err := chain.Channel.GetChannel(chain.Ctx, transferPort, channelId)
	requireT.NoError(err)
	requireT.Equal(types.Closed, end.State)
	requireT.Len(chain.EventsOfType("ibccore.channel.v1.EventTimeoutPacket"), 1)
}

func TestTimeoutPacketNotReached(t *testing.T) {
	chain, _, connectionId, cap := fixture(t)
	channelId := chain.OpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	packet := outboundPacket(channelId, 1, ibctypes.NewHeight(0, 6))
	require.NoError(t, chain.Channel.SendPacket(chain.Ctx, cap, packet))

	err := chain.Channel.TimeoutPacket(chain.Ctx, packet, ibctesting.MockProof, clientHeight, 1, nil)
	require.ErrorIs(t, err, types.ErrTimeoutNotReached)
}

func TestTimeoutOnClose(t *testing.T) {
	requireT := require.New(t)
	chain, _, connectionId, cap := fixture(t)
	channelId := chain.OpenChannel(connectionId, transferPort, types.UnorderedOrdering, clientHeight)

	packet := outboundPacket(channelId, 1, ibctypes.NewHeight(0, 100))
	requireT.NoError(chain.Channel.SendPacket(chain.Ctx, cap, packet))

	// counterparty proven Closed: the packet drops before its timeout
	requireT.NoError(chain.Channel.TimeoutOnClose(
		chain.Ctx, packet, ibctesting.MockProof, ibctesting.MockProof, clientHeight, 1, nil,
	))

	key := types.ChannelKey(string(transferPort), string(channelId))
	_, err := chain.Channel.PacketCommitment.Get(chain.Ctx, types.MakePacketKey(key, 1))
	requireT.Error(err)

	// unordered channels stay usable after a timeout
	end, err := chain.Channel.GetChannel(chain.Ctx, transferPort, channelId)
	requireT.NoError(err)
	requireT.Equal(types.Open, end.State)
}
