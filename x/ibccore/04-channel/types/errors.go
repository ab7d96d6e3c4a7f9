package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	// ErrChannelNotFound is raised when a (port, channel) pair doesn't
	// name a stored ChannelEnd.
	ErrChannelNotFound = errorsmod.Register(ModuleName, 2, "channel not found")
	// ErrChannelClosed is raised when an operation that requires a live
	// channel is attempted against one in the Closed state.
	ErrChannelClosed = errorsmod.Register(ModuleName, 3, "channel is closed")
	// ErrInvalidChannelState is raised when a handshake step is
	// attempted from a ChannelEnd state that doesn't permit it.
	ErrInvalidChannelState = errorsmod.Register(ModuleName, 4, "invalid channel state for transition")
	// ErrChannelMismatch is raised when a packet's counterparty port or
	// channel disagrees with the channel end's stored counterparty.
	ErrChannelMismatch = errorsmod.Register(ModuleName, 5, "channel mismatch")
	// ErrInvalidPortCapability is raised when the capability presented
	// for a port doesn't authenticate against it.
	ErrInvalidPortCapability = errorsmod.Register(ModuleName, 6, "invalid port capability")
	// ErrInvalidConnectionHops is raised when connection_hops is empty
	// or (for now) longer than one.
	ErrInvalidConnectionHops = errorsmod.Register(ModuleName, 7, "invalid connection hops")
	// ErrInvalidProof is raised when the client's Verifier rejects a
	// channel or packet proof.
	ErrInvalidProof = errorsmod.Register(ModuleName, 8, "invalid proof")
	// ErrInvalidPacketSequence is raised when a packet's sequence
	// disagrees with the channel's expected next sequence.
	ErrInvalidPacketSequence = errorsmod.Register(ModuleName, 9, "invalid packet sequence")
	// ErrLowPacketHeight is raised when a packet's timeout_height is
	// not strictly greater than the destination client's latest height.
	ErrLowPacketHeight = errorsmod.Register(ModuleName, 10, "packet timeout height already passed")
	// ErrLowPacketTimestamp is raised when a packet's timeout_timestamp
	// is already expired against the destination's latest consensus
	// timestamp.
	ErrLowPacketTimestamp = errorsmod.Register(ModuleName, 11, "packet timeout timestamp already passed")
	// ErrPacketCommitmentNotFound is raised when no commitment is
	// stored for a (port, channel, sequence): the packet was never
	// sent, or was already cleaned up by an ack or timeout.
	ErrPacketCommitmentNotFound = errorsmod.Register(ModuleName, 12, "packet commitment not found")
	// ErrPacketCommitmentMismatch is raised when a stored commitment
	// disagrees with the packet presented alongside a proof.
	ErrPacketCommitmentMismatch = errorsmod.Register(ModuleName, 13, "packet commitment mismatch")
	// ErrPacketAlreadyReceived is raised on an unordered channel when a
	// receipt already exists for the (port, channel, sequence).
	ErrPacketAlreadyReceived = errorsmod.Register(ModuleName, 14, "packet already received")
	// ErrPacketTimeout is raised when a packet is received after its
	// own timeout height or timestamp has already passed.
	ErrPacketTimeout = errorsmod.Register(ModuleName, 15, "packet timed out")
	// ErrTimeoutNotReached is raised when TimeoutPacket is attempted
	// before the packet's timeout height or timestamp has actually
	// elapsed on the counterparty.
	ErrTimeoutNotReached = errorsmod.Register(ModuleName, 16, "packet timeout not yet reached")
	// ErrMissingConnection is raised when a channel names a connection
	// id that has no stored ConnectionEnd.
	ErrMissingConnection = errorsmod.Register(ModuleName, 17, "missing connection")
	// ErrInvalidChannelVersion is raised when ValidateVersion rejects
	// an empty-after-trim version string.
	ErrInvalidChannelVersion = errorsmod.Register(ModuleName, 18, "invalid channel version")
)
