package types

import "cosmossdk.io/collections"

const (
	// ModuleName is the client subsystem's collections namespace.
	ModuleName = "ibcclient"

	// StoreKey is the primary module store key.
	StoreKey = ModuleName
)

// KVStore prefixes, following the teacher's x/pse/types/key.go layout.
var (
	ClientRecordsKey  = collections.NewPrefix(0)
	ConsensusStateKey = collections.NewPrefix(1)
	ClientCounterKey  = collections.NewPrefix(2)
)

// MakeConsensusStateKey builds the composite (clientId, height-string)
// key a consensus state is stored under.
func MakeConsensusStateKey(clientId string, height string) collections.Pair[string, string] {
	return collections.Join(clientId, height)
}
