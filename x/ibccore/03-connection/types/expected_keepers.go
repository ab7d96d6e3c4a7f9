package types

import (
	"context"

	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// ClientKeeper is the slice of the client subsystem the connection
// handshake depends on, following the teacher's expected-keeper
// pattern (x/pse/types/expected_keepers.go): it names 02-client/types'
// own domain types directly (the same way the teacher's BankKeeper
// names sdk.Coins) rather than importing 02-client/keeper.
type ClientKeeper interface {
	GetClientRecord(ctx context.Context, clientId ibctypes.ClientId) (clienttypes.ClientRecord, error)
	GetConsensusStateAt(ctx context.Context, clientId ibctypes.ClientId, height ibctypes.Height) (exported.ConsensusState, error)
	VerifierFor(clientType ibctypes.ClientType) (exported.Verifier, error)
}

// SelfConsensusStateFn is the host-chain reader handing back the
// chain's OWN consensus state at a height (spec.md §6 connection
// reader, "host consensus state at height"), used to check that the
// counterparty's client of this chain pinned the state this chain
// actually had. A nil function skips the proof (the height sanity
// check still runs).
type SelfConsensusStateFn func(ctx context.Context, height ibctypes.Height) (exported.ConsensusState, error)
