// Package keeper implements the routing dispatcher: Router composes
// the client, connection, and channel keepers and is the single place
// a batch of messages enters the state machine. Deliver gives a batch
// an atomic, all-or-nothing commit; Dispatch is sugar over a
// one-message batch for callers (tests, a relayer driver) that only
// ever submit one message at a time.
package keeper

import (
	"context"
	"fmt"

	sdkstore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	transferkeeper "github.com/tokenize-x/ibc-core/apps/transfer/keeper"
	transfertypes "github.com/tokenize-x/ibc-core/apps/transfer/types"
	clientkeeper "github.com/tokenize-x/ibc-core/x/ibccore/02-client/keeper"
	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	connectionkeeper "github.com/tokenize-x/ibc-core/x/ibccore/03-connection/keeper"
	connectiontypes "github.com/tokenize-x/ibc-core/x/ibccore/03-connection/types"
	channelkeeper "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/keeper"
	channeltypes "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	routingtypes "github.com/tokenize-x/ibc-core/x/ibccore/26-routing/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	"github.com/tokenize-x/ibc-core/x/ibccore/store"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Router holds the construction parameters needed to stand up a fresh
// keeper set bound to a per-batch store.Overlay: every Deliver (and
// Dispatch, a batch of one) runs against its own overlay and only a
// fully successful batch is promoted into baseStore.
type Router struct {
	baseStore     sdkstore.KVStoreService
	logger        log.Logger
	verifiers     map[ibctypes.ClientType]exported.Verifier
	portKeeper    channeltypes.PortKeeper
	hasher        channeltypes.Hasher
	selfPrefix    exported.Prefix
	modules       map[ibctypes.PortId]channeltypes.IBCModule
	bankKeeper    transfertypes.BankKeeper
	selfConsensus connectiontypes.SelfConsensusStateFn
}

// NewRouter builds a Router over the host's store. bankKeeper backs
// the transfer application's send route; a host that doesn't route
// MsgTransfer may pass nil. selfConsensus is the host's own
// consensus-state reader for the connection handshake's
// self-consensus proofs; nil skips them.
func NewRouter(
	storeService sdkstore.KVStoreService,
	logger log.Logger,
	verifiers map[ibctypes.ClientType]exported.Verifier,
	portKeeper channeltypes.PortKeeper,
	hasher channeltypes.Hasher,
	selfPrefix exported.Prefix,
	modules map[ibctypes.PortId]channeltypes.IBCModule,
	bankKeeper transfertypes.BankKeeper,
	selfConsensus connectiontypes.SelfConsensusStateFn,
) Router {
	return Router{
		baseStore:     storeService,
		logger:        logger.With("module", "x/"+routingtypes.ModuleName),
		verifiers:     verifiers,
		portKeeper:    portKeeper,
		hasher:        hasher,
		selfPrefix:    selfPrefix,
		modules:       modules,
		bankKeeper:    bankKeeper,
		selfConsensus: selfConsensus,
	}
}

// Dispatch runs a single envelope through the state machine with the
// same atomic, rollback-on-error contract Deliver gives a batch: one
// message is simply a batch of one. It is not atomic with any other
// call to Dispatch or Deliver — atomicity is scoped to a single batch,
// never across batches.
func (r Router) Dispatch(ctx context.Context, env routingtypes.Envelope) (routingtypes.Result, error) {
	results, err := r.Deliver(ctx, []routingtypes.Envelope{env})
	if err != nil {
		return routingtypes.Result{}, err
	}
	return results[0], nil
}

// Deliver processes envelopes in order against a fresh store.Overlay
// and a scoped event manager. If every message succeeds the overlay's
// write-set is promoted into the base store and its events are merged
// into ctx's event manager; if any message fails, the overlay and its
// events are discarded and the base store is left exactly as it was
// before the call.
func (r Router) Deliver(ctx context.Context, envs []routingtypes.Envelope) ([]routingtypes.Result, error) {
	if len(envs) == 0 {
		return nil, routingtypes.ErrEmptyBatch
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	scopedEvents := sdk.NewEventManager()
	scopedCtx := sdkCtx.WithEventManager(scopedEvents)

	overlay := store.NewOverlay(r.baseStore)
	ck := clientkeeper.NewKeeper(overlay, r.logger, r.verifiers)
	conk := connectionkeeper.NewKeeper(overlay, r.logger, ck, r.selfPrefix, r.selfConsensus)
	chk := channelkeeper.NewKeeper(overlay, r.logger, ck, conk, r.portKeeper, r.hasher, r.selfPrefix)
	h := handlers{client: ck, connection: conk, channel: chk, modules: r.modules}
	if r.bankKeeper != nil {
		tk := transferkeeper.NewKeeper(r.bankKeeper, chk, r.portKeeper, transfertypes.ModuleName)
		h.transfer = &tk
	}

	results := make([]routingtypes.Result, 0, len(envs))
	for i, env := range envs {
		if err := env.ValidateBasic(); err != nil {
			overlay.Discard()
			return nil, errorsmod.Wrapf(err, "message %d (%s)", i, env.TypeURL())
		}
		res, err := h.process(scopedCtx, env)
		if err != nil {
			overlay.Discard()
			return nil, errorsmod.Wrapf(err, "message %d (%s)", i, env.TypeURL())
		}
		results = append(results, res)
	}

	if err := overlay.Promote(ctx); err != nil {
		overlay.Discard()
		return nil, err
	}
	sdkCtx.EventManager().EmitEvents(scopedEvents.Events())
	return results, nil
}

// handlers holds one batch's keeper set and the port->module bindings
// used to reach application-layer callbacks; process is the single
// type switch both Dispatch and Deliver route through.
type handlers struct {
	client     clientkeeper.Keeper
	connection connectionkeeper.Keeper
	channel    channelkeeper.Keeper
	modules    map[ibctypes.PortId]channeltypes.IBCModule
	transfer   *transferkeeper.Keeper
}

func (h handlers) moduleFor(portId ibctypes.PortId) (channeltypes.IBCModule, error) {
	m, ok := h.modules[portId]
	if !ok {
		return nil, routingtypes.ErrNoRoute.Wrapf("port %s", portId)
	}
	return m, nil
}

func (h handlers) process(ctx context.Context, env routingtypes.Envelope) (routingtypes.Result, error) {
	switch msg := env.(type) {

	case clienttypes.MsgCreateClient:
		clientId, err := h.client.CreateClient(ctx, msg)
		if err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), []byte(clientId), "created client "+string(clientId)), nil

	case clienttypes.MsgUpdateClient:
		if err := h.client.UpdateClient(ctx, msg); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, "updated client "+string(msg.ClientId)), nil

	case connectiontypes.MsgConnectionOpenInit:
		connectionId, err := h.connection.ConnOpenInit(ctx, msg)
		if err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), []byte(connectionId), "connection open init "+string(connectionId)), nil

	case connectiontypes.MsgConnectionOpenTry:
		connectionId, err := h.connection.ConnOpenTry(ctx, msg)
		if err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), []byte(connectionId), "connection open try "+string(connectionId)), nil

	case connectiontypes.MsgConnectionOpenAck:
		if err := h.connection.ConnOpenAck(ctx, msg); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, "connection open ack "+string(msg.ConnectionId)), nil

	case connectiontypes.MsgConnectionOpenConfirm:
		if err := h.connection.ConnOpenConfirm(ctx, msg); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, "connection open confirm "+string(msg.ConnectionId)), nil

	case channeltypes.MsgChannelOpenInit:
		channelId, err := h.channel.ChanOpenInit(ctx, msg)
		if err != nil {
			return routingtypes.Result{}, err
		}
		module, err := h.moduleFor(msg.PortId)
		if err != nil {
			return routingtypes.Result{}, err
		}
		end, err := h.channel.GetChannel(ctx, msg.PortId, channelId)
		if err != nil {
			return routingtypes.Result{}, err
		}
		if _, err := module.OnChanOpenInit(ctx, msg.PortId, channelId, end.Version); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), []byte(channelId), "channel open init "+string(channelId)), nil

	case channeltypes.MsgChannelOpenTry:
		channelId, err := h.channel.ChanOpenTry(ctx, msg)
		if err != nil {
			return routingtypes.Result{}, err
		}
		module, err := h.moduleFor(msg.PortId)
		if err != nil {
			return routingtypes.Result{}, err
		}
		end, err := h.channel.GetChannel(ctx, msg.PortId, channelId)
		if err != nil {
			return routingtypes.Result{}, err
		}
		if _, err := module.OnChanOpenTry(ctx, msg.PortId, channelId, end.Version); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), []byte(channelId), "channel open try "+string(channelId)), nil

	case channeltypes.MsgChannelOpenAck:
		if err := h.channel.ChanOpenAck(ctx, msg); err != nil {
			return routingtypes.Result{}, err
		}
		module, err := h.moduleFor(msg.PortId)
		if err != nil {
			return routingtypes.Result{}, err
		}
		if err := module.OnChanOpenAck(ctx, msg.PortId, msg.ChannelId, msg.CounterpartyVersion); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, "channel open ack "+string(msg.ChannelId)), nil

	case channeltypes.MsgChannelOpenConfirm:
		if err := h.channel.ChanOpenConfirm(ctx, msg); err != nil {
			return routingtypes.Result{}, err
		}
		module, err := h.moduleFor(msg.PortId)
		if err != nil {
			return routingtypes.Result{}, err
		}
		if err := module.OnChanOpenConfirm(ctx, msg.PortId, msg.ChannelId); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, "channel open confirm "+string(msg.ChannelId)), nil

	case channeltypes.MsgChannelCloseInit:
		if err := h.channel.ChanCloseInit(ctx, msg); err != nil {
			return routingtypes.Result{}, err
		}
		module, err := h.moduleFor(msg.PortId)
		if err != nil {
			return routingtypes.Result{}, err
		}
		if err := module.OnChanCloseInit(ctx, msg.PortId, msg.ChannelId); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, "channel close init "+string(msg.ChannelId)), nil

	case channeltypes.MsgChannelCloseConfirm:
		if err := h.channel.ChanCloseConfirm(ctx, msg); err != nil {
			return routingtypes.Result{}, err
		}
		module, err := h.moduleFor(msg.PortId)
		if err != nil {
			return routingtypes.Result{}, err
		}
		if err := module.OnChanCloseConfirm(ctx, msg.PortId, msg.ChannelId); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, "channel close confirm "+string(msg.ChannelId)), nil

	case channeltypes.MsgRecvPacket:
		module, err := h.moduleFor(msg.Packet.DestinationPort)
		if err != nil {
			return routingtypes.Result{}, err
		}
		if err := h.channel.RecvPacket(ctx, msg.Packet, msg.Proof, msg.ProofHeight, module.OnRecvPacket); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, fmt.Sprintf("recv packet seq=%d", msg.Packet.Sequence)), nil

	case channeltypes.MsgAcknowledgement:
		module, err := h.moduleFor(msg.Packet.SourcePort)
		if err != nil {
			return routingtypes.Result{}, err
		}
		onAck := func(ctx context.Context, packet channeltypes.Packet, ack []byte) error {
			return module.OnAcknowledgementPacket(ctx, packet, ack)
		}
		if err := h.channel.AcknowledgePacket(ctx, msg.Packet, msg.Acknowledgement, msg.Proof, msg.ProofHeight, onAck); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, fmt.Sprintf("acknowledge packet seq=%d", msg.Packet.Sequence)), nil

	case channeltypes.MsgTimeout:
		module, err := h.moduleFor(msg.Packet.SourcePort)
		if err != nil {
			return routingtypes.Result{}, err
		}
		if err := h.channel.TimeoutPacket(ctx, msg.Packet, msg.Proof, msg.ProofHeight, msg.NextSequenceRecv, module.OnTimeoutPacket); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, fmt.Sprintf("timeout packet seq=%d", msg.Packet.Sequence)), nil

	case channeltypes.MsgTimeoutOnClose:
		module, err := h.moduleFor(msg.Packet.SourcePort)
		if err != nil {
			return routingtypes.Result{}, err
		}
		if err := h.channel.TimeoutOnClose(ctx, msg.Packet, msg.Proof, msg.ProofClose, msg.ProofHeight, msg.NextSequenceRecv, module.OnTimeoutPacket); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, fmt.Sprintf("timeout on close packet seq=%d", msg.Packet.Sequence)), nil

	case transfertypes.MsgTransfer:
		if h.transfer == nil {
			return routingtypes.Result{}, routingtypes.ErrNoRoute.Wrapf("port %s", msg.SourcePort)
		}
		if err := h.transfer.SendTransfer(ctx, msg); err != nil {
			return routingtypes.Result{}, err
		}
		return result(msg.TypeURL(), nil, fmt.Sprintf("transfer %s over %s/%s", msg.Token, msg.SourcePort, msg.SourceChannel)), nil

	default:
		return routingtypes.Result{}, routingtypes.ErrUnknownTypeURL.Wrapf("%T", env)
	}
}

func result(typeURL string, data []byte, logLine string) routingtypes.Result {
	return routingtypes.Result{TypeURL: typeURL, Data: data, Log: []string{logLine}}
}
