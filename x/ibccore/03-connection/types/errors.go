package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	// ErrConnectionNotFound is raised when a connection id doesn't name
	// a stored ConnectionEnd.
	ErrConnectionNotFound = errorsmod.Register(ModuleName, 2, "connection not found")
	// ErrConnectionMismatch is raised when a handshake step's expected
	// counterparty view disagrees with the stored end.
	ErrConnectionMismatch = errorsmod.Register(ModuleName, 3, "connection mismatch")
	// ErrInvalidConsensusHeight is raised when a proof's consensus
	// height fails the host's sanity check.
	ErrInvalidConsensusHeight = errorsmod.Register(ModuleName, 4, "invalid consensus height")
	// ErrMissingClient is raised when a connection names a client id
	// that has no stored ClientRecord.
	ErrMissingClient = errorsmod.Register(ModuleName, 5, "missing client")
	// ErrInvalidProof is raised when the client's Verifier rejects a
	// handshake proof.
	ErrInvalidProof = errorsmod.Register(ModuleName, 6, "invalid proof")
	// ErrNoCommonVersion is raised when proposed and supported version
	// lists share no (identifier, features) match.
	ErrNoCommonVersion = errorsmod.Register(ModuleName, 7, "no common version")
	// ErrInvalidConnectionState is raised when a handshake step is
	// attempted from a ConnectionEnd state that doesn't permit it.
	ErrInvalidConnectionState = errorsmod.Register(ModuleName, 8, "invalid connection state for transition")
)
