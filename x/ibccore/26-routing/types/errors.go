package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the routing dispatcher's error codespace.
const ModuleName = "ibcrouting"

var (
	// ErrUnknownTypeURL is raised when a raw envelope's type_url has
	// no registered decoder.
	ErrUnknownTypeURL = errorsmod.Register(ModuleName, 2, "unknown message type url")
	// ErrNoRoute is raised when a packet's port has no IBCModule bound
	// to receive its callbacks.
	ErrNoRoute = errorsmod.Register(ModuleName, 3, "no application module bound to port")
	// ErrEmptyBatch is raised when Deliver is called with zero
	// messages; a batch commits nothing, so it is rejected rather than
	// silently no-op'd.
	ErrEmptyBatch = errorsmod.Register(ModuleName, 4, "empty message batch")
)
