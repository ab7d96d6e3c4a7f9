// Package ibctesting is the in-memory test harness the keeper and
// router tests build their fixtures on: one Chain bundles a fresh
// store, a block context, every keeper, and stub host collaborators
// (port capabilities, bank, hashing), plus helpers that walk the
// client/connection/channel handshakes far enough to hand a test the
// exact starting state it needs.
package ibctesting

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/cometbft/cometbft/crypto/tmhash"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	transfertypes "github.com/tokenize-x/ibc-core/apps/transfer/types"
	clientkeeper "github.com/tokenize-x/ibc-core/x/ibccore/02-client/keeper"
	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/mock"
	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/tendermint"
	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	connectionkeeper "github.com/tokenize-x/ibc-core/x/ibccore/03-connection/keeper"
	connectiontypes "github.com/tokenize-x/ibc-core/x/ibccore/03-connection/types"
	channelkeeper "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/keeper"
	channeltypes "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	routingkeeper "github.com/tokenize-x/ibc-core/x/ibccore/26-routing/keeper"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	"github.com/tokenize-x/ibc-core/x/ibccore/store"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Signer is a well-formed bech32 account address shared by every test
// message; built from fixed bytes so it never depends on key material.
var Signer = sdk.AccAddress([]byte("ibctesting-signer-00")).String()

// MockProof is the non-empty proof bytes the Mock verifier accepts.
var MockProof = exported.Proof{0x01}

// DefaultPrefix is the commitment prefix both sides of a test
// handshake claim.
var DefaultPrefix = exported.Prefix{KeyPrefix: []byte("ibc")}

// Hasher backs packet and acknowledgement commitments with cometbft's
// tmhash, the hash the host chain commits its state with.
type Hasher struct{}

func (Hasher) Hash(data []byte) []byte { return tmhash.Sum(data) }

// PortKeeper is an in-memory capability table: Bind issues a
// capability for a port, and only the exact token issued
// authenticates against it.
type PortKeeper struct {
	caps map[ibctypes.PortId]channeltypes.Capability
	next uint64
}

func NewPortKeeper() *PortKeeper {
	return &PortKeeper{caps: make(map[ibctypes.PortId]channeltypes.Capability)}
}

// Bind issues a fresh capability for portId.
func (p *PortKeeper) Bind(portId ibctypes.PortId) channeltypes.Capability {
	p.next++
	cap := channeltypes.Capability{Index: p.next}
	p.caps[portId] = cap
	return cap
}

func (p *PortKeeper) LookupCapability(_ context.Context, portId ibctypes.PortId) (channeltypes.Capability, bool) {
	cap, ok := p.caps[portId]
	return cap, ok
}

func (p *PortKeeper) AuthenticateCapability(_ context.Context, portId ibctypes.PortId, cap channeltypes.Capability) bool {
	stored, ok := p.caps[portId]
	return ok && stored == cap
}

// BankKeeper is an in-memory ledger good enough for the transfer
// module's mint/escrow/refund flows.
type BankKeeper struct {
	balances map[string]sdk.Coins
}

func NewBankKeeper() *BankKeeper {
	return &BankKeeper{balances: make(map[string]sdk.Coins)}
}

// Fund seeds an account balance directly.
func (b *BankKeeper) Fund(addr sdk.AccAddress, coins sdk.Coins) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(coins...)
}

func (b *BankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	b.balances[moduleName] = b.balances[moduleName].Add(amt...)
	return nil
}

func (b *BankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	return b.move(moduleName, "", amt)
}

func (b *BankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.move(senderModule, recipientAddr.String(), amt)
}

func (b *BankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.move(senderAddr.String(), recipientModule, amt)
}

func (b *BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	balance := b.balances[addr.String()]
	return sdk.Coin{Denom: denom, Amount: balance.AmountOf(denom)}
}

// BalanceOf returns a module account's balance of denom.
func (b *BankKeeper) BalanceOf(name, denom string) sdk.Coin {
	return sdk.Coin{Denom: denom, Amount: b.balances[name].AmountOf(denom)}
}

func (b *BankKeeper) move(from, to string, amt sdk.Coins) error {
	fromBalance, negative := b.balances[from].SafeSub(amt...)
	if negative {
		return cosmoserrors.ErrInsufficientFunds
	}
	b.balances[from] = fromBalance
	if to != "" {
		b.balances[to] = b.balances[to].Add(amt...)
	}
	return nil
}

// Chain is one side of a test topology: a fresh in-memory store with
// every keeper bound over it and a block context pinned at a known
// height and time.
type Chain struct {
	T *testing.T

	Store *store.MemStoreService
	Ctx   sdk.Context

	Client     clientkeeper.Keeper
	Connection connectionkeeper.Keeper
	Channel    channelkeeper.Keeper
	Router     routingkeeper.Router

	Ports *PortKeeper
	Bank  *BankKeeper
}

// BlockHeight and BlockTime are the pinned host values every Chain
// context starts at.
const (
	BlockHeight = 10
	BlockTime   = int64(1_000_000_000) // nanoseconds since epoch
)

// NewChain builds a Chain whose router exposes modules on their ports.
// A nil modules map routes no application callbacks.
func NewChain(t *testing.T, modules map[ibctypes.PortId]channeltypes.IBCModule) *Chain {
	t.Helper()

	memStore := store.NewMemStoreService()
	logger := log.NewNopLogger()
	verifiers := map[ibctypes.ClientType]exported.Verifier{
		ibctypes.ClientTypeMock:       mock.NewVerifier(),
		ibctypes.ClientTypeTendermint: tendermint.NewVerifier(tendermint.MerkleProofVerifier{}),
	}
	ports := NewPortKeeper()
	bank := NewBankKeeper()

	selfConsensus := func(context.Context, ibctypes.Height) (exported.ConsensusState, error) {
		return mock.NewConsensusState(ibctypes.Timestamp(1), []byte("root")), nil
	}

	ck := clientkeeper.NewKeeper(memStore, logger, verifiers)
	conk := connectionkeeper.NewKeeper(memStore, logger, ck, DefaultPrefix, selfConsensus)
	chk := channelkeeper.NewKeeper(memStore, logger, ck, conk, ports, Hasher{}, DefaultPrefix)
	router := routingkeeper.NewRouter(memStore, logger, verifiers, ports, Hasher{}, DefaultPrefix, modules, bank, selfConsensus)

	ctx := sdk.NewContext(nil, cmtproto.Header{}, false, logger).
		WithBlockHeight(BlockHeight).
		WithBlockTime(time.Unix(0, BlockTime))

	return &Chain{
		T:          t,
		Store:      memStore,
		Ctx:        ctx,
		Client:     ck,
		Connection: conk,
		Channel:    chk,
		Router:     router,
		Ports:      ports,
		Bank:       bank,
	}
}

// CreateMockClient creates a Mock client pinned at height and returns
// its minted id.
func (c *Chain) CreateMockClient(height ibctypes.Height) ibctypes.ClientId {
	c.T.Helper()
	clientId, err := c.Client.CreateClient(c.Ctx, clienttypes.MsgCreateClient{
		ClientType:     ibctypes.ClientTypeMock,
		ClientState:    mock.NewClientState(height),
		ConsensusState: mock.NewConsensusState(ibctypes.Timestamp(1), []byte("root")),
		Signer:         Signer,
	})
	require.NoError(c.T, err)
	return clientId
}

// UpdateMockClient advances clientId to height, pinning a fresh
// consensus state there.
func (c *Chain) UpdateMockClient(clientId ibctypes.ClientId, height ibctypes.Height) {
	c.T.Helper()
	err := c.Client.UpdateClient(c.Ctx, clienttypes.MsgUpdateClient{
		ClientId: clientId,
		Header:   mock.Header{HeightVal: height, TimestampVal: ibctypes.Timestamp(1), RootVal: []byte("root")},
		Signer:   Signer,
	})
	require.NoError(c.T, err)
}

// OpenConnection walks clientId through Init and Ack, returning the id
// of a connection in the Open state. proofHeight must name a height
// the client has a consensus state pinned at.
func (c *Chain) OpenConnection(clientId ibctypes.ClientId, proofHeight ibctypes.Height) ibctypes.ConnectionId {
	c.T.Helper()
	connectionId, err := c.Connection.ConnOpenInit(c.Ctx, connectiontypes.MsgConnectionOpenInit{
		ClientId: clientId,
		Counterparty: connectiontypes.Counterparty{
			ClientId: ibctypes.ClientId("09-mock-0"),
			Prefix:   DefaultPrefix,
		},
		Signer: Signer,
	})
	require.NoError(c.T, err)

	err = c.Connection.ConnOpenAck(c.Ctx, connectiontypes.MsgConnectionOpenAck{
		ConnectionId:             connectionId,
		CounterpartyConnectionId: ibctypes.ConnectionId("connection-0"),
		ClientState:              mock.NewClientState(proofHeight),
		Version:                  connectiontypes.DefaultVersion(),
		ProofHeight:              proofHeight,
		ProofTry:                 MockProof,
		ProofClient:              MockProof,
		Signer:                   Signer,
	})
	require.NoError(c.T, err)
	return connectionId
}

// TryOpenChannel runs ChanOpenTry against connectionId, leaving a
// channel in the TryOpen state bound to portId. The port must already
// hold a capability (Ports.Bind).
func (c *Chain) TryOpenChannel(connectionId ibctypes.ConnectionId, portId ibctypes.PortId, ordering channeltypes.Ordering, proofHeight ibctypes.Height) ibctypes.ChannelId {
	c.T.Helper()
	channelId, err := c.Channel.ChanOpenTry(c.Ctx, channeltypes.MsgChannelOpenTry{
		PortId:              portId,
		Ordering:            ordering,
		ConnectionHops:      []ibctypes.ConnectionId{connectionId},
		CounterpartyVersion: channeltypes.DefaultVersion,
		Counterparty: channeltypes.Counterparty{
			PortId:    portId,
			ChannelId: ibctypes.DefaultChannelId(),
		},
		ProofInit:   MockProof,
		ProofHeight: proofHeight,
		Signer:      Signer,
	})
	require.NoError(c.T, err)
	return channelId
}

// OpenChannel walks a channel through Init and Ack, returning the id
// of a channel in the Open state whose counterparty is
// (portId, channel-0).
func (c *Chain) OpenChannel(connectionId ibctypes.ConnectionId, portId ibctypes.PortId, ordering channeltypes.Ordering, proofHeight ibctypes.Height) ibctypes.ChannelId {
	c.T.Helper()
	channelId, err := c.Channel.ChanOpenInit(c.Ctx, channeltypes.MsgChannelOpenInit{
		PortId:         portId,
		Ordering:       ordering,
		ConnectionHops: []ibctypes.ConnectionId{connectionId},
		Version:        channeltypes.DefaultVersion,
		Counterparty: channeltypes.Counterparty{
			PortId: portId,
		},
		Signer: Signer,
	})
	require.NoError(c.T, err)

	err = c.Channel.ChanOpenAck(c.Ctx, channeltypes.MsgChannelOpenAck{
		PortId:                portId,
		ChannelId:             channelId,
		CounterpartyChannelId: ibctypes.DefaultChannelId(),
		CounterpartyVersion:   channeltypes.DefaultVersion,
		ProofTry:              MockProof,
		ProofHeight:           proofHeight,
		Signer:                Signer,
	})
	require.NoError(c.T, err)
	return channelId
}

// EventsOfType returns the events the chain's context accumulated
// whose type equals eventType (the typed event's full message name).
func (c *Chain) EventsOfType(eventType string) []sdk.Event {
	var matched []sdk.Event
	for _, ev := range c.Ctx.EventManager().Events() {
		if ev.Type == eventType {
			matched = append(matched, ev)
		}
	}
	return matched
}

var _ transfertypes.BankKeeper = (*BankKeeper)(nil)
var _ channeltypes.PortKeeper = (*PortKeeper)(nil)
