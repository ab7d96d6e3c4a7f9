// Package keeper implements the channel handshake and packet lifecycle
// (spec.md §4.4, §4.5): ChanOpenInit/Try/Ack/Confirm, ChanCloseInit/
// Confirm, SendPacket, RecvPacket, AcknowledgePacket, TimeoutPacket and
// TimeoutOnClose.
package keeper

import (
	"context"
	stderrors "errors"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Keeper owns channel handshake and packet lifecycle state. It depends
// on the client and connection subsystems only through their narrow
// expected-keeper interfaces (03-connection/keeper.Keeper follows the
// same shape).
type Keeper struct {
	storeService     sdkstore.KVStoreService
	logger           log.Logger
	clientKeeper     types.ClientKeeper
	connectionKeeper types.ConnectionKeeper
	portKeeper       types.PortKeeper
	hasher           types.Hasher
	selfPrefix       exported.Prefix

	Schema                collections.Schema
	Channels              collections.Map[string, []byte]
	ConnectionChannels    collections.Map[collections.Pair[string, string], bool]
	NextSequenceSend      collections.Map[string, uint64]
	NextSequenceRecv      collections.Map[string, uint64]
	NextSequenceAck       collections.Map[string, uint64]
	PacketCommitment      collections.Map[collections.Pair[string, string], []byte]
	PacketReceipt         collections.Map[collections.Pair[string, string], bool]
	PacketAcknowledgement collections.Map[collections.Pair[string, string], []byte]
	ChannelCounter        collections.Item[uint64]
}

// NewKeeper builds a Keeper over storeService. hasher backs the
// deterministic commitment hash the channel reader/keeper contract
// names (spec.md §6); the host wires in its chosen concrete hash.
func NewKeeper(
	storeService sdkstore.KVStoreService, logger log.Logger,
	clientKeeper types.ClientKeeper, connectionKeeper types.ConnectionKeeper, portKeeper types.PortKeeper,
	hasher types.Hasher, selfPrefix exported.Prefix,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:     storeService,
		logger:           logger.With("module", "x/"+types.ModuleName),
		clientKeeper:     clientKeeper,
		connectionKeeper: connectionKeeper,
		portKeeper:       portKeeper,
		hasher:           hasher,
		selfPrefix:       selfPrefix,
		Channels: collections.NewMap(
			sb, types.ChannelsKey, "channels",
			collections.StringKey, collections.BytesValue,
		),
		ConnectionChannels: collections.NewMap(
			sb, types.ConnectionChannelsKey, "connection_channels",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collections.BoolValue,
		),
		NextSequenceSend: collections.NewMap(
			sb, types.NextSequenceSendKey, "next_sequence_send",
			collections.StringKey, collections.Uint64Value,
		),
		NextSequenceRecv: collections.NewMap(
			sb, types.NextSequenceRecvKey, "next_sequence_recv",
			collections.StringKey, collections.Uint64Value,
		),
		NextSequenceAck: collections.NewMap(
			sb, types.NextSequenceAckKey, "next_sequence_ack",
			collections.StringKey, collections.Uint64Value,
		),
		PacketCommitment: collections.NewMap(
			sb, types.PacketCommitmentKey, "packet_commitment",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collections.BytesValue,
		),
		PacketReceipt: collections.NewMap(
			sb, types.PacketReceiptKey, "packet_receipt",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collections.BoolValue,
		),
		PacketAcknowledgement: collections.NewMap(
			sb, types.PacketAcknowledgementKey, "packet_acknowledgement",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collections.BytesValue,
		),
		ChannelCounter: collections.NewItem(
			sb, types.ChannelCounterKey, "channel_counter",
			collections.Uint64Value,
		),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

func (k Keeper) Logger() log.Logger { return k.logger }

func (k Keeper) nextChannelCounter(ctx context.Context) (uint64, error) {
	n, err := k.ChannelCounter.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			n = 0
		} else {
			return 0, err
		}
	}
	if err := k.ChannelCounter.Set(ctx, n+1); err != nil {
		return 0, err
	}
	return n, nil
}

// GetChannel loads a ChannelEnd by (port, channel).
func (k Keeper) GetChannel(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId) (types.ChannelEnd, error) {
	raw, err := k.Channels.Get(ctx, types.ChannelKey(string(portId), string(channelId)))
	if err != nil {
		if isNotFound(err) {
			return types.ChannelEnd{}, types.ErrChannelNotFound
		}
		return types.ChannelEnd{}, err
	}
	var rawEnd types.RawChannelEnd
	if err := rawEnd.Unmarshal(raw); err != nil {
		return types.ChannelEnd{}, err
	}
	return types.ChannelEndFromRaw(&rawEnd), nil
}

// NextSendSequence returns the sequence number SendPacket requires the
// next packet sent over (portId, channelId) to carry. Exported so
// application modules building a Packet before calling SendPacket can
// read it without reaching into the keeper's collections fields
// directly.
func (k Keeper) NextSendSequence(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId) (uint64, error) {
	return k.NextSequenceSend.Get(ctx, types.ChannelKey(string(portId), string(channelId)))
}

func (k Keeper) setChannel(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId, end types.ChannelEnd) error {
	encoded, err := types.ChannelEndToRaw(end).Marshal()
	if err != nil {
		return err
	}
	key := types.ChannelKey(string(portId), string(channelId))
	if err := k.Channels.Set(ctx, key, encoded); err != nil {
		return err
	}
	return k.ConnectionChannels.Set(ctx, collections.Join(string(end.ConnectionId()), key), true)
}

// ChanOpenInit implements spec.md §4.4 step OpenInit.
func (k Keeper) ChanOpenInit(ctx context.Context, msg types.MsgChannelOpenInit) (ibctypes.ChannelId, error) {
	if err := msg.ValidateBasic(); err != nil {
		return "", err
	}
	if err := k.requireOpenConnection(ctx, msg.ConnectionHops); err != nil {
		return "", err
	}
	if !k.authenticate(ctx, msg.PortId) {
		return "", types.ErrInvalidPortCapability
	}
	version := msg.Version
	if version == "" {
		version = types.DefaultVersion
	}
	if err := types.ValidateVersion(version); err != nil {
		return "", err
	}

	counter, err := k.nextChannelCounter(ctx)
	if err != nil {
		return "", err
	}
	channelId := ibctypes.FormatChannelId(counter)

	end := types.ChannelEnd{
		State:          types.Init,
		Ordering:       msg.Ordering,
		Counterparty:   msg.Counterparty,
		ConnectionHops: msg.ConnectionHops,
		Version:        version,
	}
	if err := k.setChannel(ctx, msg.PortId, channelId, end); err != nil {
		return "", err
	}
	if err := k.NextSequenceSend.Set(ctx, types.ChannelKey(string(msg.PortId), string(channelId)), 1); err != nil {
		return "", err
	}
	if err := k.NextSequenceRecv.Set(ctx, types.ChannelKey(string(msg.PortId), string(channelId)), 1); err != nil {
		return "", err
	}
	if err := k.NextSequenceAck.Set(ctx, types.ChannelKey(string(msg.PortId), string(channelId)), 1); err != nil {
		return "", err
	}

	k.emit(ctx, &types.EventChannelOpenInit{PortId: msg.PortId, ChannelId: channelId})
	k.logger.Info("channel open init", "port_id", msg.PortId, "channel_id", channelId)
	return channelId, nil
}

// ChanOpenTry implements spec.md §4.4 step OpenTry: it proves the
// counterparty's Init end and either allocates a fresh channel id or
// reopens the one named by PreviousChannelId.
func (k Keeper) ChanOpenTry(ctx context.Context, msg types.MsgChannelOpenTry) (ibctypes.ChannelId, error) {
	if err := msg.ValidateBasic(); err != nil {
		return "", err
	}
	conn, record, err := k.requireOpenConnectionRecord(ctx, msg.ConnectionHops)
	if err != nil {
		return "", err
	}
	if !k.authenticate(ctx, msg.PortId) {
		return "", types.ErrInvalidPortCapability
	}

	version := msg.CounterpartyVersion
	if version == "" {
		version = types.DefaultVersion
	}
	if err := types.ValidateVersion(version); err != nil {
		return "", err
	}

	var channelId ibctypes.ChannelId
	if msg.PreviousChannelId != "" {
		existing, err := k.GetChannel(ctx, msg.PortId, msg.PreviousChannelId)
		if err != nil {
			return "", err
		}
		if existing.State != types.Init {
			return "", types.ErrInvalidChannelState
		}
		channelId = msg.PreviousChannelId
	} else {
		counter, err := k.nextChannelCounter(ctx)
		if err != nil {
			return "", err
		}
		channelId = ibctypes.FormatChannelId(counter)
	}

	expected := types.ChannelEnd{
		State:    types.Init,
		Ordering: msg.Ordering,
		Counterparty: types.Counterparty{
			PortId: msg.PortId,
		},
		ConnectionHops: []ibctypes.ConnectionId{conn.Counterparty.ConnectionId},
		Version:        msg.CounterpartyVersion,
	}
	if err := k.verifyChannelState(ctx, record, conn.ClientId, msg.ProofHeight, conn.Counterparty.Prefix,
		msg.ProofInit, msg.Counterparty.PortId, msg.Counterparty.ChannelId, expected); err != nil {
		return "", err
	}

	end := types.ChannelEnd{
		State:          types.TryOpen,
		Ordering:       msg.Ordering,
		Counterparty:   msg.Counterparty,
		ConnectionHops: msg.ConnectionHops,
		Version:        version,
	}
	if err := k.setChannel(ctx, msg.PortId, channelId, end); err != nil {
		return "", err
	}
	if msg.PreviousChannelId == "" {
		key := types.ChannelKey(string(msg.PortId), string(channelId))
		if err := k.NextSequenceSend.Set(ctx, key, 1); err != nil {
			return "", err
		}
		if err := k.NextSequenceRecv.Set(ctx, key, 1); err != nil {
			return "", err
		}
		if err := k.NextSequenceAck.Set(ctx, key, 1); err != nil {
			return "", err
		}
	}

	k.emit(ctx, &types.EventChannelOpenTry{PortId: msg.PortId, ChannelId: channelId})
	k.logger.Info("channel open try", "port_id", msg.PortId, "channel_id", channelId)
	return channelId, nil
}

// ChanOpenAck implements spec.md §4.4 step OpenAck.
func (k Keeper) ChanOpenAck(ctx context.Context, msg types.MsgChannelOpenAck) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	end, err := k.GetChannel(ctx, msg.PortId, msg.ChannelId)
	if err != nil {
		return err
	}
	if end.State != types.Init {
		return types.ErrInvalidChannelState
	}
	conn, record, err := k.requireOpenConnectionRecord(ctx, end.ConnectionHops)
	if err != nil {
		return err
	}

	expected := end.Expected(msg.PortId, msg.ChannelId, conn.Counterparty.ConnectionId, types.TryOpen, msg.CounterpartyVersion)
	if err := k.verifyChannelState(ctx, record, conn.ClientId, msg.ProofHeight, conn.Counterparty.Prefix,
		msg.ProofTry, end.Counterparty.PortId, msg.CounterpartyChannelId, expected); err != nil {
		return err
	}

	end.State = types.Open
	end.Counterparty.ChannelId = msg.CounterpartyChannelId
	end.Version = msg.CounterpartyVersion
	if err := k.setChannel(ctx, msg.PortId, msg.ChannelId, end); err != nil {
		return err
	}

	k.emit(ctx, &types.EventChannelOpenAck{PortId: msg.PortId, ChannelId: msg.ChannelId})
	k.logger.Info("channel open ack", "port_id", msg.PortId, "channel_id", msg.ChannelId)
	return nil
}

// ChanOpenConfirm implements spec.md §4.4 step OpenConfirm.
func (k Keeper) ChanOpenConfirm(ctx context.Context, msg types.MsgChannelOpenConfirm) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	end, err := k.GetChannel(ctx, msg.PortId, msg.ChannelId)
	if err != nil {
		return err
	}
	if end.State != types.TryOpen {
		return types.ErrInvalidChannelState
	}
	conn, record, err := k.requireOpenConnectionRecord(ctx, end.ConnectionHops)
	if err != nil {
		return err
	}

	expected := end.Expected(msg.PortId, msg.ChannelId, conn.Counterparty.ConnectionId, types.Open, end.Version)
	if err := k.verifyChannelState(ctx, record, conn.ClientId, msg.ProofHeight, conn.Counterparty.Prefix,
		msg.ProofAck, end.Counterparty.PortId, end.Counterparty.ChannelId, expected); err != nil {
		return err
	}

	end.State = types.Open
	if err := k.setChannel(ctx, msg.PortId, msg.ChannelId, end); err != nil {
		return err
	}

	k.emit(ctx, &types.EventChannelOpenConfirm{PortId: msg.PortId, ChannelId: msg.ChannelId})
	k.logger.Info("channel open confirm", "port_id", msg.PortId, "channel_id", msg.ChannelId)
	return nil
}

// ChanCloseInit implements spec.md §4.4 step CloseInit. No proof
// required; the capability check alone authorizes it.
func (k Keeper) ChanCloseInit(ctx context.Context, msg types.MsgChannelCloseInit) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	end, err := k.GetChannel(ctx, msg.PortId, msg.ChannelId)
	if err != nil {
		return err
	}
	if end.State == types.Closed {
		return types.ErrChannelClosed
	}
	if !k.authenticate(ctx, msg.PortId) {
		return types.ErrInvalidPortCapability
	}

	end.State = types.Closed
	if err := k.setChannel(ctx, msg.PortId, msg.ChannelId, end); err != nil {
		return err
	}

	k.emit(ctx, &types.EventChannelCloseInit{PortId: msg.PortId, ChannelId: msg.ChannelId})
	k.logger.Info("channel close init", "port_id", msg.PortId, "channel_id", msg.ChannelId)
	return nil
}

// ChanCloseConfirm implements spec.md §4.4 step CloseConfirm.
func (k Keeper) ChanCloseConfirm(ctx context.Context, msg types.MsgChannelCloseConfirm) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	end, err := k.GetChannel(ctx, msg.PortId, msg.ChannelId)
	if err != nil {
		return err
	}
	if end.State == types.Closed {
		return types.ErrChannelClosed
	}
	conn, record, err := k.requireOpenConnectionRecord(ctx, end.ConnectionHops)
	if err != nil {
		return err
	}

	expected := end.Expected(msg.PortId, msg.ChannelId, conn.Counterparty.ConnectionId, types.Closed, end.Version)
	if err := k.verifyChannelState(ctx, record, conn.ClientId, msg.ProofHeight, conn.Counterparty.Prefix,
		msg.ProofInit, end.Counterparty.PortId, end.Counterparty.ChannelId, expected); err != nil {
		return err
	}

	end.State = types.Closed
	if err := k.setChannel(ctx, msg.PortId, msg.ChannelId, end); err != nil {
		return err
	}

	k.emit(ctx, &types.EventChannelCloseConfirm{PortId: msg.PortId, ChannelId: msg.ChannelId})
	k.logger.Info("channel close confirm", "port_id", msg.PortId, "channel_id", msg.ChannelId)
	return nil
}

// SendPacket implements spec.md §4.5 Send, enforcing its seven
// preconditions in order.
func (k Keeper) SendPacket(ctx context.Context, cap types.Capability, packet types.Packet) error {
	end, err := k.GetChannel(ctx, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return err
	}
	if end.State == types.Closed {
		return types.ErrChannelClosed
	}
	if !k.portKeeper.AuthenticateCapability(ctx, packet.SourcePort, cap) {
		return types.ErrInvalidPortCapability
	}
	if end.Counterparty.PortId != packet.DestinationPort || end.Counterparty.ChannelId != packet.DestinationChannel {
		return types.ErrChannelMismatch
	}
	conn, record, err := k.connectionRecord(ctx, end.ConnectionHops)
	if err != nil {
		return err
	}

	if !packet.TimeoutHeight.IsZero() {
		if !packet.TimeoutHeight.GT(record.ClientState.LatestHeight()) {
			return types.ErrLowPacketHeight.Wrapf("client at %s, timeout %s", record.ClientState.LatestHeight(), packet.TimeoutHeight)
		}
	}
	if !packet.TimeoutTimestamp.IsZero() {
		consensus, err := k.clientKeeper.GetConsensusStateAt(ctx, conn.ClientId, record.ClientState.LatestHeight())
		if err != nil {
			return types.ErrMissingConnection.Wrap(err.Error())
		}
		if packet.TimeoutTimestamp.CheckExpiry(uint64(consensus.Timestamp())) == ibctypes.Expired {
			return types.ErrLowPacketTimestamp
		}
	}

	key := types.ChannelKey(string(packet.SourcePort), string(packet.SourceChannel))
	next, err := k.NextSequenceSend.Get(ctx, key)
	if err != nil {
		return err
	}
	if packet.Sequence != next {
		return types.ErrInvalidPacketSequence.Wrapf("got %d want %d", packet.Sequence, next)
	}

	if err := k.NextSequenceSend.Set(ctx, key, next+1); err != nil {
		return err
	}
	commitment := types.CommitPacket(k.hasher, packet)
	if err := k.PacketCommitment.Set(ctx, types.MakePacketKey(key, packet.Sequence), commitment); err != nil {
		return err
	}

	k.emit(ctx, types.NewEventSendPacket(packet))
	k.logger.Info("send packet", "sequence", packet.Sequence, "source_port", packet.SourcePort, "source_channel", packet.SourceChannel)
	return nil
}

// RecvPacket implements spec.md §4.5 Recv. onRecv is the application
// layer's hook (IBCModule.OnRecvPacket), invoked after the proof and
// freshness checks succeed and after the receipt (unordered) or the
// next_sequence_recv advance (ordered) is written; a non-empty ack it
// returns is committed afterwards, the same leaf-invocation shape
// spec.md §6 names.
func (k Keeper) RecvPacket(ctx context.Context, packet types.Packet, proof exported.Proof, proofHeight ibctypes.Height, onRecv func(ctx context.Context, packet types.Packet) ([]byte, error)) error {
	end, err := k.GetChannel(ctx, packet.DestinationPort, packet.DestinationChannel)
	if err != nil {
		return err
	}
	if end.State != types.Open {
		return types.ErrInvalidChannelState
	}
	if end.Counterparty.PortId != packet.SourcePort || end.Counterparty.ChannelId != packet.SourceChannel {
		return types.ErrChannelMismatch
	}
	conn, record, err := k.connectionRecord(ctx, end.ConnectionHops)
	if err != nil {
		return err
	}

	root, err := k.consensusRoot(ctx, conn.ClientId, proofHeight)
	if err != nil {
		return err
	}
	commitment := types.CommitPacket(k.hasher, packet)
	if err := record.Verifier.VerifyPacketData(
		record.ClientState, proofHeight, root, proof, packet.SourcePort, packet.SourceChannel, packet.Sequence, commitment,
	); err != nil {
		return types.ErrInvalidProof.Wrap(err.Error())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	receiverHeight := ibctypes.NewHeight(0, uint64(sdkCtx.BlockHeight()))
	receiverTime := uint64(sdkCtx.BlockTime().UnixNano())
	if !packet.TimeoutHeight.IsZero() && !receiverHeight.LT(packet.TimeoutHeight) {
		return types.ErrPacketTimeout
	}
	if packet.TimeoutTimestamp.CheckExpiry(receiverTime) == ibctypes.Expired {
		return types.ErrPacketTimeout
	}

	key := types.ChannelKey(string(packet.DestinationPort), string(packet.DestinationChannel))
	if end.Ordering == types.OrderedOrdering {
		next, err := k.NextSequenceRecv.Get(ctx, key)
		if err != nil {
			return err
		}
		if packet.Sequence != next {
			return types.ErrInvalidPacketSequence.Wrapf("got %d want %d", packet.Sequence, next)
		}
		if err := k.NextSequenceRecv.Set(ctx, key, next+1); err != nil {
			return err
		}
	} else {
		packetKey := types.MakePacketKey(key, packet.Sequence)
		if _, err := k.PacketReceipt.Get(ctx, packetKey); err == nil {
			return types.ErrPacketAlreadyReceived
		} else if !isNotFound(err) {
			return err
		}
		if err := k.PacketReceipt.Set(ctx, packetKey, true); err != nil {
			return err
		}
	}

	ack, err := onRecv(ctx, packet)
	if err != nil {
		return err
	}
	if len(ack) > 0 {
		ackCommitment := types.CommitAcknowledgement(k.hasher, ack)
		if err := k.PacketAcknowledgement.Set(ctx, types.MakePacketKey(key, packet.Sequence), ackCommitment); err != nil {
			return err
		}
	}

	k.emit(ctx, types.NewEventReceivePacket(packet))
	k.logger.Info("receive packet", "sequence", packet.Sequence, "destination_port", packet.DestinationPort, "destination_channel", packet.DestinationChannel)
	return nil
}

// AcknowledgePacket implements spec.md §4.5 Acknowledge. The
// next_sequence_ack counter is distinct from next_sequence_send and
// advances independently on ordered channels: there an ack is accepted
// only when its sequence equals next_sequence_ack, so acks are taken
// strictly in sequence order, while next_sequence_send has already
// moved past every sent packet. Unordered channels do not check the
// sequence.
func (k Keeper) AcknowledgePacket(ctx context.Context, packet types.Packet, acknowledgement []byte, proof exported.Proof, proofHeight ibctypes.Height, onAcknowledge func(ctx context.Context, packet types.Packet, ack []byte) error) error {
	end, err := k.GetChannel(ctx, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return err
	}
	key := types.ChannelKey(string(packet.SourcePort), string(packet.SourceChannel))
	packetKey := types.MakePacketKey(key, packet.Sequence)
	storedCommitment, err := k.PacketCommitment.Get(ctx, packetKey)
	if err != nil {
		if isNotFound(err) {
			return types.ErrPacketCommitmentNotFound
		}
		return err
	}
	if string(storedCommitment) != string(types.CommitPacket(k.hasher, packet)) {
		return types.ErrPacketCommitmentMismatch
	}

	conn, record, err := k.connectionRecord(ctx, end.ConnectionHops)
	if err != nil {
		return err
	}
	root, err := k.consensusRoot(ctx, conn.ClientId, proofHeight)
	if err != nil {
		return err
	}
	ackCommitment := types.CommitAcknowledgement(k.hasher, acknowledgement)
	if err := record.Verifier.VerifyPacketAcknowledgement(
		record.ClientState, proofHeight, root, proof, packet.DestinationPort, packet.DestinationChannel, packet.Sequence, ackCommitment,
	); err != nil {
		return types.ErrInvalidProof.Wrap(err.Error())
	}

	if end.Ordering == types.OrderedOrdering {
		next, err := k.NextSequenceAck.Get(ctx, key)
		if err != nil {
			return err
		}
		if packet.Sequence != next {
			return types.ErrInvalidPacketSequence.Wrapf("got %d want %d", packet.Sequence, next)
		}
		if err := k.NextSequenceAck.Set(ctx, key, next+1); err != nil {
			return err
		}
	}

	if err := k.PacketCommitment.Remove(ctx, packetKey); err != nil {
		return err
	}
	if onAcknowledge != nil {
		if err := onAcknowledge(ctx, packet, acknowledgement); err != nil {
			return err
		}
	}

	k.emit(ctx, types.NewEventAcknowledgePacket(packet))
	k.logger.Info("acknowledge packet", "sequence", packet.Sequence, "source_port", packet.SourcePort, "source_channel", packet.SourceChannel)
	return nil
}

// TimeoutPacket implements spec.md §4.5 Timeout, plain variant.
func (k Keeper) TimeoutPacket(ctx context.Context, packet types.Packet, proof exported.Proof, proofHeight ibctypes.Height, nextSequenceRecv uint64, onTimeout func(ctx context.Context, packet types.Packet) error) error {
	return k.timeout(ctx, packet, proof, nil, proofHeight, nextSequenceRecv, onTimeout)
}

// TimeoutOnClose implements spec.md §4.5 Timeout, timeout-on-close
// variant: proofClose additionally proves the counterparty channel is
// Closed, permitting the drop regardless of the timeout fields.
func (k Keeper) TimeoutOnClose(ctx context.Context, packet types.Packet, proof, proofClose exported.Proof, proofHeight ibctypes.Height, nextSequenceRecv uint64, onTimeout func(ctx context.Context, packet types.Packet) error) error {
	return k.timeout(ctx, packet, proof, proofClose, proofHeight, nextSequenceRecv, onTimeout)
}

func (k Keeper) timeout(ctx context.Context, packet types.Packet, proof, proofClose exported.Proof, proofHeight ibctypes.Height, nextSequenceRecv uint64, onTimeout func(ctx context.Context, packet types.Packet) error) error {
	end, err := k.GetChannel(ctx, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return err
	}
	key := types.ChannelKey(string(packet.SourcePort), string(packet.SourceChannel))
	packetKey := types.MakePacketKey(key, packet.Sequence)
	storedCommitment, err := k.PacketCommitment.Get(ctx, packetKey)
	if err != nil {
		if isNotFound(err) {
			return types.ErrPacketCommitmentNotFound
		}
		return err
	}
	if string(storedCommitment) != string(types.CommitPacket(k.hasher, packet)) {
		return types.ErrPacketCommitmentMismatch
	}

	conn, record, err := k.connectionRecord(ctx, end.ConnectionHops)
	if err != nil {
		return err
	}
	root, err := k.consensusRoot(ctx, conn.ClientId, proofHeight)
	if err != nil {
		return err
	}

	if proofClose == nil {
		heightExpired := !packet.TimeoutHeight.IsZero() && proofHeight.GTE(packet.TimeoutHeight)
		timestampExpired := false
		if !packet.TimeoutTimestamp.IsZero() {
			counterpartyConsensus, err := k.clientKeeper.GetConsensusStateAt(ctx, conn.ClientId, proofHeight)
			if err != nil {
				return types.ErrMissingConnection.Wrap(err.Error())
			}
			timestampExpired = packet.TimeoutTimestamp.CheckExpiry(uint64(counterpartyConsensus.Timestamp())) == ibctypes.Expired
		}
		if !heightExpired && !timestampExpired {
			return types.ErrTimeoutNotReached
		}
	} else {
		// Timeout-on-close drops the packet regardless of the timeout
		// fields, but only once the counterparty end is proven Closed.
		expected := end.Expected(packet.SourcePort, packet.SourceChannel, conn.Counterparty.ConnectionId, types.Closed, end.Version)
		if err := k.verifyChannelState(ctx, record, conn.ClientId, proofHeight, conn.Counterparty.Prefix,
			proofClose, end.Counterparty.PortId, end.Counterparty.ChannelId, expected); err != nil {
			return err
		}
	}

	if end.Ordering == types.OrderedOrdering {
		if err := record.Verifier.VerifyNextSequenceRecv(
			record.ClientState, proofHeight, root, proof, packet.DestinationPort, packet.DestinationChannel, nextSequenceRecv,
		); err != nil {
			return types.ErrInvalidProof.Wrap(err.Error())
		}
		if nextSequenceRecv > packet.Sequence {
			return types.ErrTimeoutNotReached
		}
	} else {
		if err := record.Verifier.VerifyPacketReceiptAbsence(
			record.ClientState, proofHeight, root, proof, packet.DestinationPort, packet.DestinationChannel, packet.Sequence,
		); err != nil {
			return types.ErrInvalidProof.Wrap(err.Error())
		}
	}

	if err := k.PacketCommitment.Remove(ctx, packetKey); err != nil {
		return err
	}
	if end.Ordering == types.OrderedOrdering && end.State != types.Closed {
		end.State = types.Closed
		if err := k.setChannel(ctx, packet.SourcePort, packet.SourceChannel, end); err != nil {
			return err
		}
		k.emit(ctx, &types.EventChannelCloseConfirm{PortId: packet.SourcePort, ChannelId: packet.SourceChannel})
	}
	if onTimeout != nil {
		if err := onTimeout(ctx, packet); err != nil {
			return err
		}
	}

	k.emit(ctx, types.NewEventTimeoutPacket(packet))
	k.logger.Info("timeout packet", "sequence", packet.Sequence, "source_port", packet.SourcePort, "source_channel", packet.SourceChannel)
	return nil
}

func (k Keeper) authenticate(ctx context.Context, portId ibctypes.PortId) bool {
	cap, ok := k.portKeeper.LookupCapability(ctx, portId)
	if !ok {
		return false
	}
	return k.portKeeper.AuthenticateCapability(ctx, portId, cap)
}

func (k Keeper) requireOpenConnection(ctx context.Context, hops []ibctypes.ConnectionId) error {
	_, _, err := k.requireOpenConnectionRecord(ctx, hops)
	return err
}

// requireOpenConnectionRecord is the handshake steps' lookup: the
// connection must additionally be Open (spec.md §4.4 preconditions).
// Packet lifecycle steps use connectionRecord directly, which only
// requires the connection to exist and its client to be active
// (spec.md §4.5 Send precondition 4).
func (k Keeper) requireOpenConnectionRecord(ctx context.Context, hops []ibctypes.ConnectionId) (connectionEnd, clientRecord, error) {
	conn, rec, err := k.connectionRecord(ctx, hops)
	if err != nil {
		return connectionEnd{}, clientRecord{}, err
	}
	if !conn.Open {
		return connectionEnd{}, clientRecord{}, types.ErrMissingConnection.Wrap("connection is not open")
	}
	return conn, rec, nil
}

// connectionRecord mirrors 03-connection's own clientRecord type
// locally since channel handlers need both the connection and the
// client's verifier together at every proof step.
func (k Keeper) connectionRecord(ctx context.Context, hops []ibctypes.ConnectionId) (connectionEnd, clientRecord, error) {
	if err := types.ValidateConnectionHops(hops); err != nil {
		return connectionEnd{}, clientRecord{}, err
	}
	conn, err := k.connectionKeeper.GetConnection(ctx, hops[0])
	if err != nil {
		return connectionEnd{}, clientRecord{}, types.ErrMissingConnection.Wrap(err.Error())
	}
	rec, err := k.clientKeeper.GetClientRecord(ctx, conn.ClientId)
	if err != nil {
		return connectionEnd{}, clientRecord{}, types.ErrMissingConnection.Wrap(err.Error())
	}
	if rec.ClientState.Frozen() {
		return connectionEnd{}, clientRecord{}, exported.ErrFrozenClient.Wrapf("client %s", conn.ClientId)
	}
	verifier, err := k.clientKeeper.VerifierFor(rec.ClientType)
	if err != nil {
		return connectionEnd{}, clientRecord{}, err
	}
	return connectionEnd{Open: conn.IsOpen(), ClientId: conn.ClientId, Counterparty: connectionCounterparty{
		ClientId:     conn.Counterparty.ClientId,
		ConnectionId: conn.Counterparty.ConnectionId,
		Prefix:       conn.Counterparty.Prefix,
	}}, clientRecord{
		ClientType:  rec.ClientType,
		ClientState: rec.ClientState,
		Verifier:    verifier,
	}, nil
}

// connectionEnd is the minimal projection of a connection the channel
// handlers need: whether it is Open, the client it names, and the
// counterparty's prefix/connection id for proof reconstruction.
type connectionEnd struct {
	Open         bool
	ClientId     ibctypes.ClientId
	Counterparty connectionCounterparty
}

type connectionCounterparty struct {
	ClientId     ibctypes.ClientId
	ConnectionId ibctypes.ConnectionId
	Prefix       exported.Prefix
}

// clientRecord is the minimal projection of a client record the
// channel handlers need: its state and the scheme's Verifier.
type clientRecord struct {
	ClientType  ibctypes.ClientType
	ClientState exported.ClientState
	Verifier    exported.Verifier
}

func (k Keeper) verifyChannelState(
	ctx context.Context, record clientRecord, clientId ibctypes.ClientId, proofHeight ibctypes.Height,
	prefix exported.Prefix, proof exported.Proof, portId ibctypes.PortId, channelId ibctypes.ChannelId, expected types.ChannelEnd,
) error {
	root, err := k.consensusRoot(ctx, clientId, proofHeight)
	if err != nil {
		return err
	}
	expectedBytes, err := types.ChannelEndToRaw(expected).Marshal()
	if err != nil {
		return err
	}
	if err := record.Verifier.VerifyChannelState(
		record.ClientState, proofHeight, root, prefix, proof, portId, channelId, expectedBytes,
	); err != nil {
		return types.ErrInvalidProof.Wrap(err.Error())
	}
	return nil
}

func (k Keeper) consensusRoot(ctx context.Context, clientId ibctypes.ClientId, height ibctypes.Height) ([]byte, error) {
	consensus, err := k.clientKeeper.GetConsensusStateAt(ctx, clientId, height)
	if err != nil {
		return nil, types.ErrMissingConnection.Wrap(err.Error())
	}
	return consensus.Root(), nil
}

func (k Keeper) emit(ctx context.Context, event sdkProtoMessage) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := sdkCtx.EventManager().EmitTypedEvent(event); err != nil {
		sdkCtx.Logger().Error("failed to emit channel event", "error", err)
	}
}

// sdkProtoMessage is the subset of gogoproto.Message EmitTypedEvent
// requires.
type sdkProtoMessage interface {
	Reset()
	String() string
	ProtoMessage()
}

func isNotFound(err error) bool {
	return stderrors.Is(err, collections.ErrNotFound)
}
