package types

import "cosmossdk.io/collections"

const (
	// ModuleName is the connection subsystem's collections namespace.
	ModuleName = "ibcconnection"

	// StoreKey is the primary module store key.
	StoreKey = ModuleName
)

// KVStore prefixes.
var (
	ConnectionsKey        = collections.NewPrefix(0)
	ClientConnectionsKey  = collections.NewPrefix(1) // client id -> connection ids sharing it
	ConnectionCounterKey  = collections.NewPrefix(9) // apart from the client (2) and channel (8) counters when keepers share a store
)
