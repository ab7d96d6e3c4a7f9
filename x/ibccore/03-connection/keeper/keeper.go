// Package keeper implements the four-step connection handshake
// (spec.md §4.3): ConnOpenInit, ConnOpenTry, ConnOpenAck, and
// ConnOpenConfirm.
package keeper

import (
	"context"
	stderrors "errors"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/x/ibccore/03-connection/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Keeper owns connection handshake state. It depends on the client
// subsystem only through types.ClientKeeper, the teacher's
// expected-keeper pattern (x/pse/keeper/keeper.go).
type Keeper struct {
	storeService  sdkstore.KVStoreService
	logger        log.Logger
	clientKeeper  types.ClientKeeper
	selfPrefix    exported.Prefix
	selfConsensus types.SelfConsensusStateFn

	Schema            collections.Schema
	Connections       collections.Map[string, []byte]
	ClientConnections collections.Map[collections.Pair[string, string], bool]
	ConnectionCounter collections.Item[uint64]
}

// NewKeeper builds a Keeper over storeService. selfConsensus is the
// host's own consensus-state reader; nil disables the self-consensus
// proof on Try/Ack.
func NewKeeper(storeService sdkstore.KVStoreService, logger log.Logger, clientKeeper types.ClientKeeper, selfPrefix exported.Prefix, selfConsensus types.SelfConsensusStateFn) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:  storeService,
		logger:        logger.With("module", "x/"+types.ModuleName),
		clientKeeper:  clientKeeper,
		selfPrefix:    selfPrefix,
		selfConsensus: selfConsensus,
		Connections: collections.NewMap(
			sb, types.ConnectionsKey, "connections",
			collections.StringKey, collections.BytesValue,
		),
		ClientConnections: collections.NewMap(
			sb, types.ClientConnectionsKey, "client_connections",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collections.BoolValue,
		),
		ConnectionCounter: collections.NewItem(
			sb, types.ConnectionCounterKey, "connection_counter",
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

func (k Keeper) nextConnectionCounter(ctx context.Context) (uint64, error) {
	n, err := k.ConnectionCounter.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			n = 0
		} else {
			return 0, err
		}
	}
	if err := k.ConnectionCounter.Set(ctx, n+1); err != nil {
		return 0, err
	}
	return n, nil
}

// GetConnection loads a ConnectionEnd by id.
func (k Keeper) GetConnection(ctx context.Context, connectionId ibctypes.ConnectionId) (types.ConnectionEnd, error) {
	raw, err := k.Connections.Get(ctx, string(connectionId))
	if err != nil {
		if isNotFound(err) {
			return types.ConnectionEnd{}, types.ErrConnectionNotFound
		}
		return types.ConnectionEnd{}, err
	}
	var rawEnd types.RawConnectionEnd
	if err := rawEnd.Unmarshal(raw); err != nil {
		return types.ConnectionEnd{}, err
	}
	return types.ConnectionEndFromRaw(&rawEnd), nil
}

func (k Keeper) setConnection(ctx context.Context, connectionId ibctypes.ConnectionId, end types.ConnectionEnd) error {
	encoded, err := types.ConnectionEndToRaw(end).Marshal()
	if err != nil {
		return err
	}
	if err := k.Connections.Set(ctx, string(connectionId), encoded); err != nil {
		return err
	}
	return k.ClientConnections.Set(ctx, collections.Join(string(end.ClientId), string(connectionId)), true)
}

// ConnOpenInit implements spec.md §4.3 step Init.
func (k Keeper) ConnOpenInit(ctx context.Context, msg types.MsgConnectionOpenInit) (ibctypes.ConnectionId, error) {
	if err := msg.ValidateBasic(); err != nil {
		return "", err
	}
	if _, err := k.requireClient(ctx, msg.ClientId); err != nil {
		return "", err
	}

	version := msg.Version
	if version.Identifier == "" {
		version = types.DefaultVersion()
	}

	counter, err := k.nextConnectionCounter(ctx)
	if err != nil {
		return "", err
	}
	connectionId := ibctypes.FormatConnectionId(counter)

	end := types.ConnectionEnd{
		State:        types.Init,
		ClientId:     msg.ClientId,
		Counterparty: msg.Counterparty,
		Versions:     []types.Version{version},
		DelayPeriod:  msg.DelayPeriod,
	}
	if err := k.setConnection(ctx, connectionId, end); err != nil {
		return "", err
	}

	k.emit(ctx, &types.EventConnectionOpenInit{ConnectionId: connectionId, ClientId: msg.ClientId})
	k.logger.Info("connection open init", "connection_id", connectionId, "client_id", msg.ClientId)
	return connectionId, nil
}

// ConnOpenTry implements spec.md §4.3 step Try: it proves the
// counterparty's Init end, negotiates a version, and either allocates
// a fresh connection id or reopens one named by PreviousConnectionId.
func (k Keeper) ConnOpenTry(ctx context.Context, msg types.MsgConnectionOpenTry) (ibctypes.ConnectionId, error) {
	if err := msg.ValidateBasic(); err != nil {
		return "", err
	}
	record, err := k.requireClient(ctx, msg.ClientId)
	if err != nil {
		return "", err
	}

	version, err := types.PickVersion(msg.CounterpartyVersions, []types.Version{types.DefaultVersion()})
	if err != nil {
		return "", err
	}

	var connectionId ibctypes.ConnectionId
	if msg.PreviousConnectionId != "" {
		existing, err := k.GetConnection(ctx, msg.PreviousConnectionId)
		if err != nil {
			return "", err
		}
		if existing.State != types.Init || existing.ClientId != msg.ClientId {
			return "", types.ErrConnectionMismatch
		}
		connectionId = msg.PreviousConnectionId
	} else {
		counter, err := k.nextConnectionCounter(ctx)
		if err != nil {
			return "", err
		}
		connectionId = ibctypes.FormatConnectionId(counter)
	}

	expected := types.ConnectionEnd{
		State:    types.Init,
		ClientId: msg.Counterparty.ClientId,
		Counterparty: types.Counterparty{
			ClientId: msg.ClientId,
			Prefix:   k.selfPrefix,
		},
		Versions:    msg.CounterpartyVersions,
		DelayPeriod: msg.DelayPeriod,
	}
	if err := k.verifyConnectionState(ctx, record, msg.ClientId, msg.ProofHeight, msg.Counterparty.Prefix,
		msg.ProofInit, msg.Counterparty.ConnectionId, expected); err != nil {
		return "", err
	}
	if err := k.verifyClientFullState(ctx, record, msg.ClientId, msg.ProofHeight, msg.Counterparty.Prefix,
		msg.ProofClient, msg.Counterparty.ClientId, msg.ClientState); err != nil {
		return "", err
	}
	if err := k.verifySelfConsensus(ctx, record, msg.ClientId, msg.ProofHeight, msg.Counterparty.Prefix,
		msg.ProofConsensus, msg.Counterparty.ClientId, msg.ConsensusHeight); err != nil {
		return "", err
	}

	end := types.ConnectionEnd{
		State:        types.TryOpen,
		ClientId:     msg.ClientId,
		Counterparty: msg.Counterparty,
		Versions:     []types.Version{version},
		DelayPeriod:  msg.DelayPeriod,
	}
	if err := k.setConnection(ctx, connectionId, end); err != nil {
		return "", err
	}

	k.emit(ctx, &types.EventConnectionOpenTry{ConnectionId: connectionId, ClientId: msg.ClientId})
	k.logger.Info("connection open try", "connection_id", connectionId, "client_id", msg.ClientId)
	return connectionId, nil
}

// ConnOpenAck implements spec.md §4.3 step Ack.
func (k Keeper) ConnOpenAck(ctx context.Context, msg types.MsgConnectionOpenAck) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	end, err := k.GetConnection(ctx, msg.ConnectionId)
	if err != nil {
		return err
	}
	if end.State != types.Init {
		return types.ErrInvalidConnectionState
	}
	record, err := k.requireClient(ctx, end.ClientId)
	if err != nil {
		return err
	}

	expected := end.Expected(msg.ConnectionId, k.selfPrefix, types.TryOpen)
	expected.Versions = []types.Version{msg.Version}
	if err := k.verifyConnectionState(ctx, record, end.ClientId, msg.ProofHeight, end.Counterparty.Prefix,
		msg.ProofTry, msg.CounterpartyConnectionId, expected); err != nil {
		return err
	}
	if err := k.verifyClientFullState(ctx, record, end.ClientId, msg.ProofHeight, end.Counterparty.Prefix,
		msg.ProofClient, end.Counterparty.ClientId, msg.ClientState); err != nil {
		return err
	}
	if err := k.verifySelfConsensus(ctx, record, end.ClientId, msg.ProofHeight, end.Counterparty.Prefix,
		msg.ProofConsensus, end.Counterparty.ClientId, msg.ConsensusHeight); err != nil {
		return err
	}

	end.State = types.Open
	end.Counterparty.ConnectionId = msg.CounterpartyConnectionId
	end.Versions = []types.Version{msg.Version}
	if err := k.setConnection(ctx, msg.ConnectionId, end); err != nil {
		return err
	}

	k.emit(ctx, &types.EventConnectionOpenAck{ConnectionId: msg.ConnectionId})
	k.logger.Info("connection open ack", "connection_id", msg.ConnectionId)
	return nil
}

// ConnOpenConfirm implements spec.md §4.3 step Confirm.
func (k Keeper) ConnOpenConfirm(ctx context.Context, msg types.MsgConnectionOpenConfirm) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	end, err := k.GetConnection(ctx, msg.ConnectionId)
	if err != nil {
		return err
	}
	if end.State != types.TryOpen {
		return types.ErrInvalidConnectionState
	}
	record, err := k.requireClient(ctx, end.ClientId)
	if err != nil {
		return err
	}

	expected := end.Expected(msg.ConnectionId, k.selfPrefix, types.Open)
	if err := k.verifyConnectionState(ctx, record, end.ClientId, msg.ProofHeight, end.Counterparty.Prefix,
		msg.ProofAck, end.Counterparty.ConnectionId, expected); err != nil {
		return err
	}

	end.State = types.Open
	if err := k.setConnection(ctx, msg.ConnectionId, end); err != nil {
		return err
	}

	k.emit(ctx, &types.EventConnectionOpenConfirm{ConnectionId: msg.ConnectionId})
	k.logger.Info("connection open confirm", "connection_id", msg.ConnectionId)
	return nil
}

func (k Keeper) requireClient(ctx context.Context, clientId ibctypes.ClientId) (clientRecord, error) {
	rec, err := k.clientKeeper.GetClientRecord(ctx, clientId)
	if err != nil {
		return clientRecord{}, types.ErrMissingClient
	}
	if rec.ClientState.Frozen() {
		return clientRecord{}, errorsmod.Wrapf(exported.ErrFrozenClient, "client %s", clientId)
	}
	verifier, err := k.clientKeeper.VerifierFor(rec.ClientType)
	if err != nil {
		return clientRecord{}, err
	}
	return clientRecord{ClientType: rec.ClientType, ClientState: rec.ClientState, Verifier: verifier}, nil
}

// clientRecord is the minimal projection of a client record the
// connection handshake needs: its state and the scheme's Verifier.
type clientRecord struct {
	ClientType  ibctypes.ClientType
	ClientState exported.ClientState
	Verifier    exported.Verifier
}

func (k Keeper) verifyConnectionState(
	ctx context.Context, record clientRecord, clientId ibctypes.ClientId, proofHeight ibctypes.Height,
	prefix exported.Prefix, proof exported.Proof, connectionId ibctypes.ConnectionId, expected types.ConnectionEnd,
) error {
	root, err := k.consensusRoot(ctx, clientId, proofHeight)
	if err != nil {
		return err
	}
	expectedBytes, err := types.ConnectionEndToRaw(expected).Marshal()
	if err != nil {
		return err
	}
	if err := record.Verifier.VerifyConnectionState(
		record.ClientState, proofHeight, root, prefix, proof, connectionId, expectedBytes,
	); err != nil {
		return types.ErrInvalidProof.Wrap(err.Error())
	}
	return nil
}

func (k Keeper) verifyClientFullState(
	ctx context.Context, record clientRecord, clientId ibctypes.ClientId, proofHeight ibctypes.Height,
	prefix exported.Prefix, proof exported.Proof, counterpartyClientId ibctypes.ClientId, expected exported.ClientState,
) error {
	root, err := k.consensusRoot(ctx, clientId, proofHeight)
	if err != nil {
		return err
	}
	if err := record.Verifier.VerifyClientFullState(
		record.ClientState, proofHeight, root, prefix, proof, counterpartyClientId, expected,
	); err != nil {
		return types.ErrInvalidProof.Wrap(err.Error())
	}
	return nil
}

// verifySelfConsensus runs the consensus-height sanity check and, when
// the host supplies a self-consensus reader, proves the counterparty's
// client of this chain pinned the consensus state this chain actually
// had at consensusHeight. A zero consensusHeight means the message
// carried no consensus claim to check.
func (k Keeper) verifySelfConsensus(
	ctx context.Context, record clientRecord, clientId ibctypes.ClientId, proofHeight ibctypes.Height,
	prefix exported.Prefix, proof exported.Proof, counterpartyClientId ibctypes.ClientId, consensusHeight ibctypes.Height,
) error {
	if consensusHeight.IsZero() {
		return nil
	}
	hostHeight := ibctypes.NewHeight(0, uint64(sdk.UnwrapSDKContext(ctx).BlockHeight()))
	if consensusHeight.GT(hostHeight) {
		return types.ErrInvalidConsensusHeight.Wrapf("consensus height %s ahead of host height %s", consensusHeight, hostHeight)
	}
	if k.selfConsensus == nil || len(proof) == 0 {
		return nil
	}
	expected, err := k.selfConsensus(ctx, consensusHeight)
	if err != nil {
		return types.ErrInvalidConsensusHeight.Wrap(err.Error())
	}
	root, err := k.consensusRoot(ctx, clientId, proofHeight)
	if err != nil {
		return err
	}
	if err := record.Verifier.VerifyClientConsensusState(
		record.ClientState, proofHeight, root, prefix, proof, counterpartyClientId, consensusHeight, expected,
	); err != nil {
		return types.ErrInvalidProof.Wrap(err.Error())
	}
	return nil
}

func (k Keeper) consensusRoot(ctx context.Context, clientId ibctypes.ClientId, height ibctypes.Height) ([]byte, error) {
	consensus, err := k.clientKeeper.GetConsensusStateAt(ctx, clientId, height)
	if err != nil {
		return nil, types.ErrInvalidConsensusHeight.Wrap(err.Error())
	}
	return consensus.Root(), nil
}

func (k Keeper) emit(ctx context.Context, event sdkProtoMessage) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := sdkCtx.EventManager().EmitTypedEvent(event); err != nil {
		sdkCtx.Logger().Error("failed to emit connection event", "error", err)
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
