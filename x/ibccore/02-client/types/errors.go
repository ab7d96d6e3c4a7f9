package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Note: header/proof verification failures and the frozen-client check
// are registered once, in the exported package's "ibcverifier"
// codespace (exported.ErrClientArgsTypeMismatch, ErrHeaderVerificationFailure,
// ErrClientProofVerification, ErrFrozenClient), since every concrete
// scheme (tendermint, mock) needs them and neither scheme package may
// import this one (it would cycle back through the raw-type oneof
// converters below).
var (
	// ErrClientNotFound is raised when a client record doesn't exist
	// under the requested ClientId.
	ErrClientNotFound = errorsmod.Register(ModuleName, 2, "client not found")
	// ErrRawTypesMismatch is raised when MsgCreateClient's declared
	// client_state and consensus_state carry disagreeing ClientTypes.
	ErrRawTypesMismatch = errorsmod.Register(ModuleName, 3, "client and consensus state types mismatch")
	// ErrConsensusStateNotFound is raised when no consensus state is
	// stored at the requested height.
	ErrConsensusStateNotFound = errorsmod.Register(ModuleName, 4, "consensus state not found")
	// ErrInvalidClientType is raised by FormatClientId / decoding when
	// a ClientType tag isn't one of the recognised variants.
	ErrInvalidClientType = errorsmod.Register(ModuleName, 5, "invalid client type")
)
