package exported

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace for errors raised by the verifier
// contract itself (spec.md §4.2), shared by every concrete scheme
// (tendermint, mock) so they roll up to the same error kinds
// regardless of which scheme produced them.
const ModuleName = "ibcverifier"

var (
	// ErrClientArgsTypeMismatch is raised when a header, proof, or
	// state's dynamic type disagrees with the client's declared
	// ClientType.
	ErrClientArgsTypeMismatch = errorsmod.Register(ModuleName, 2, "client args type mismatch")
	// ErrHeaderVerificationFailure rolls up any scheme-specific header
	// check failure, including staleness.
	ErrHeaderVerificationFailure = errorsmod.Register(ModuleName, 3, "header verification failure")
	// ErrClientProofVerification rolls up any scheme-specific proof
	// verification failure.
	ErrClientProofVerification = errorsmod.Register(ModuleName, 4, "client proof verification failed")
	// ErrFrozenClient is raised when an operation requires an active
	// client but the client is frozen.
	ErrFrozenClient = errorsmod.Register(ModuleName, 5, "client is frozen")
)
