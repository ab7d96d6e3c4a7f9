package types

import (
	"context"

	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Capability is the opaque token granting send authority on a port
// (spec.md §3 "Port capability"). The abstract interface allows the
// host to back it with an object reference, an integer handle, or a
// cryptographic bearer token (SPEC_FULL.md design notes); this core
// only ever compares one it is handed against one the PortKeeper holds.
type Capability struct {
	Index uint64
}

// PortKeeper is the slice of the host's capability store the channel
// handshake and packet-send path depend on (spec.md §6 "Port reader").
type PortKeeper interface {
	LookupCapability(ctx context.Context, portId ibctypes.PortId) (Capability, bool)
	AuthenticateCapability(ctx context.Context, portId ibctypes.PortId, cap Capability) bool
}
