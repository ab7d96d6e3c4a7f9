package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	// ErrInvalidPacketData is raised when a packet's Data does not
	// decode as FungibleTokenPacketData.
	ErrInvalidPacketData = errorsmod.Register(ModuleName, 2, "invalid fungible token packet data")
	// ErrInvalidAmount is raised when a transfer's amount is zero or
	// fails to parse as a positive integer.
	ErrInvalidAmount = errorsmod.Register(ModuleName, 3, "invalid amount")
	// ErrInvalidDenom is raised when a transfer names an empty denom.
	ErrInvalidDenom = errorsmod.Register(ModuleName, 4, "invalid denom")
	// ErrInvalidVersion is raised when a counterparty proposes a
	// channel version other than Version during the handshake.
	ErrInvalidVersion = errorsmod.Register(ModuleName, 5, "invalid ics20 version")
)
