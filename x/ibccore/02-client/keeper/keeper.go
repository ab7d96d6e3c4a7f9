// Package keeper implements the client subsystem's handlers (spec.md
// §4.2): CreateClient and UpdateClient, plus the client-counter and
// per-height consensus-state bookkeeping they share with the
// connection and channel layers' proof verification.
package keeper

import (
	"context"
	stderrors "errors"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Keeper owns the client subsystem's persisted state. It follows the
// teacher's keeper shape (x/pse/keeper/keeper.go): a KVStoreService
// wrapped in cosmossdk.io/collections, built through NewKeeper and
// never constructed directly.
type Keeper struct {
	storeService sdkstore.KVStoreService
	logger       log.Logger

	// verifiers holds one Verifier per recognised ClientType, injected
	// at construction so the keeper never depends on a concrete scheme
	// package directly (spec.md §4.2's "client handlers are generic
	// over scheme").
	verifiers map[ibctypes.ClientType]exported.Verifier

	Schema          collections.Schema
	ClientRecords   collections.Map[string, []byte]
	ConsensusStates collections.Map[collections.Pair[string, string], []byte]
	ClientCounter   collections.Item[uint64]
}

// NewKeeper builds a Keeper over storeService, registering verifiers
// for every supported ClientType.
func NewKeeper(storeService sdkstore.KVStoreService, logger log.Logger, verifiers map[ibctypes.ClientType]exported.Verifier) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		logger:       logger.With("module", "x/"+types.ModuleName),
		verifiers:    verifiers,
		ClientRecords: collections.NewMap(
			sb, types.ClientRecordsKey, "client_records",
			collections.StringKey, collections.BytesValue,
		),
		ConsensusStates: collections.NewMap(
			sb, types.ConsensusStateKey, "consensus_states",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collections.BytesValue,
		),
		ClientCounter: collections.NewItem(
			sb, types.ClientCounterKey, "client_counter",
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

// Logger returns the module logger, named the way the teacher's
// keepers name theirs.
func (k Keeper) Logger() log.Logger { return k.logger }

// VerifierFor looks up the Verifier registered for clientType. Exported
// so the connection and channel keepers can obtain a scheme's Verifier
// through the types.ClientKeeper expected-keeper interface rather than
// depending on this package directly.
func (k Keeper) VerifierFor(clientType ibctypes.ClientType) (exported.Verifier, error) {
	v, ok := k.verifiers[clientType]
	if !ok {
		return nil, ibctypes.ErrUnknownClientType
	}
	return v, nil
}

// nextClientCounter reads and increments the monotonically increasing
// client counter (spec.md §3 "ClientId ... derived from a monotonic
// counter").
func (k Keeper) nextClientCounter(ctx context.Context) (uint64, error) {
	n, err := k.ClientCounter.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			n = 0
		} else {
			return 0, err
		}
	}
	if err := k.ClientCounter.Set(ctx, n+1); err != nil {
		return 0, err
	}
	return n, nil
}

// CreateClient implements spec.md §4.2's CreateClient handler: it
// mints a fresh ClientId from the counter, stores the initial
// ClientState/ConsensusState pair (invariant 1), and emits
// EventCreateClient.
func (k Keeper) CreateClient(ctx context.Context, msg types.MsgCreateClient) (ibctypes.ClientId, error) {
	if err := msg.ValidateBasic(); err != nil {
		return "", err
	}
	if _, err := k.VerifierFor(msg.ClientType); err != nil {
		return "", err
	}

	counter, err := k.nextClientCounter(ctx)
	if err != nil {
		return "", err
	}
	clientId := ibctypes.FormatClientId(msg.ClientType, counter)

	record, err := types.NewClientRecord(msg.ClientType, msg.ClientState, msg.ClientState.LatestHeight(), msg.ConsensusState)
	if err != nil {
		return "", err
	}
	if err := k.writeRecordHeader(ctx, clientId, record); err != nil {
		return "", err
	}
	if err := k.writeConsensusState(ctx, clientId, msg.ClientState.LatestHeight(), msg.ConsensusState); err != nil {
		return "", err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := sdkCtx.EventManager().EmitTypedEvent(&types.EventCreateClient{
		ClientId:   clientId,
		ClientType: msg.ClientType,
		Height:     msg.ClientState.LatestHeight().String(),
	}); err != nil {
		sdkCtx.Logger().Error("failed to emit create client event", "error", err)
	}

	k.logger.Info("created client", "client_id", clientId, "client_type", msg.ClientType.String())
	return clientId, nil
}

// UpdateClient implements spec.md §4.2's UpdateClient handler: it
// loads the client record, delegates header verification to the
// scheme's Verifier, and persists the resulting ClientState and the
// new ConsensusState pinned at the header's height.
func (k Keeper) UpdateClient(ctx context.Context, msg types.MsgUpdateClient) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	record, err := k.GetClientRecord(ctx, msg.ClientId)
	if err != nil {
		return err
	}
	if record.ClientState.Frozen() {
		return errorsmod.Wrapf(exported.ErrFrozenClient, "client %s", msg.ClientId)
	}
	if msg.Header.ClientType() != record.ClientType {
		return errorsmod.Wrapf(exported.ErrClientArgsTypeMismatch,
			"header is %s, client is %s", msg.Header.ClientType(), record.ClientType)
	}

	verifier, err := k.VerifierFor(record.ClientType)
	if err != nil {
		return err
	}
	newState, newConsensus, err := verifier.CheckHeaderAndUpdateState(record.ClientState, msg.Header)
	if err != nil {
		return err
	}

	updated := record.WithUpdatedState(newState, msg.Header.Height(), newConsensus)
	if err := k.writeRecordHeader(ctx, msg.ClientId, updated); err != nil {
		return err
	}
	if err := k.writeConsensusState(ctx, msg.ClientId, msg.Header.Height(), newConsensus); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := sdkCtx.EventManager().EmitTypedEvent(&types.EventUpdateClient{
		ClientId:   msg.ClientId,
		ClientType: record.ClientType,
		Height:     msg.Header.Height().String(),
	}); err != nil {
		sdkCtx.Logger().Error("failed to emit update client event", "error", err)
	}

	k.logger.Info("updated client", "client_id", msg.ClientId, "height", msg.Header.Height().String())
	return nil
}

// GetClientRecord loads the client's type and current ClientState, and
// the single ConsensusState pinned at ClientState.LatestHeight(). Use
// GetConsensusStateAt to fetch a different historical height.
func (k Keeper) GetClientRecord(ctx context.Context, clientId ibctypes.ClientId) (types.ClientRecord, error) {
	raw, err := k.ClientRecords.Get(ctx, string(clientId))
	if err != nil {
		if isNotFound(err) {
			return types.ClientRecord{}, types.ErrClientNotFound
		}
		return types.ClientRecord{}, err
	}
	var header types.RawClientRecordHeader
	if err := header.Unmarshal(raw); err != nil {
		return types.ClientRecord{}, err
	}
	clientState, err := types.ClientStateFromRaw(header.ClientState)
	if err != nil {
		return types.ClientRecord{}, err
	}
	consensus, err := k.GetConsensusStateAt(ctx, clientId, clientState.LatestHeight())
	if err != nil {
		return types.ClientRecord{}, err
	}
	return types.ClientRecord{
		ClientType:      ibctypes.ClientType(header.ClientType),
		ClientState:     clientState,
		ConsensusStates: map[ibctypes.Height]exported.ConsensusState{clientState.LatestHeight(): consensus},
	}, nil
}

// GetConsensusStateAt returns the consensus state pinned at height for
// clientId, used by the connection and channel layers' proof checks
// (spec.md §4.3, §4.5).
func (k Keeper) GetConsensusStateAt(ctx context.Context, clientId ibctypes.ClientId, height ibctypes.Height) (exported.ConsensusState, error) {
	key := types.MakeConsensusStateKey(string(clientId), height.String())
	raw, err := k.ConsensusStates.Get(ctx, key)
	if err != nil {
		if isNotFound(err) {
			return nil, types.ErrConsensusStateNotFound
		}
		return nil, err
	}
	var rawState types.RawConsensusState
	if err := rawState.Unmarshal(raw); err != nil {
		return nil, err
	}
	return types.ConsensusStateFromRaw(&rawState)
}

func (k Keeper) writeRecordHeader(ctx context.Context, clientId ibctypes.ClientId, record types.ClientRecord) error {
	header, err := types.HeaderFor(record.ClientType, record.ClientState)
	if err != nil {
		return err
	}
	encoded, err := header.Marshal()
	if err != nil {
		return err
	}
	return k.ClientRecords.Set(ctx, string(clientId), encoded)
}

func (k Keeper) writeConsensusState(ctx context.Context, clientId ibctypes.ClientId, height ibctypes.Height, consensus exported.ConsensusState) error {
	raw, err := types.ConsensusStateToRaw(consensus)
	if err != nil {
		return err
	}
	encoded, err := raw.Marshal()
	if err != nil {
		return err
	}
	key := types.MakeConsensusStateKey(string(clientId), height.String())
	return k.ConsensusStates.Set(ctx, key, encoded)
}

// isNotFound reports whether err is collections' not-found sentinel,
// matching the errors.Is(err, collections.ErrNotFound) idiom used
// throughout the teacher's keepers (x/pse/keeper/hooks.go).
func isNotFound(err error) bool {
	return stderrors.Is(err, collections.ErrNotFound)
}
