package types

import "cosmossdk.io/collections"

const (
	// ModuleName is the channel subsystem's collections namespace.
	ModuleName = "ibcchannel"

	// StoreKey is the primary module store key.
	StoreKey = ModuleName
)

// KVStore prefixes, following the teacher's x/pse/types/key.go layout.
var (
	ChannelsKey              = collections.NewPrefix(0)
	ConnectionChannelsKey    = collections.NewPrefix(1) // connection id -> (port,channel) pairs hung off it
	NextSequenceSendKey      = collections.NewPrefix(2)
	NextSequenceRecvKey      = collections.NewPrefix(3)
	NextSequenceAckKey       = collections.NewPrefix(4)
	PacketCommitmentKey      = collections.NewPrefix(5)
	PacketReceiptKey         = collections.NewPrefix(6)
	PacketAcknowledgementKey = collections.NewPrefix(7)
	ChannelCounterKey        = collections.NewPrefix(8)
)

// ChannelKey builds the composite "port/channel" string every
// per-channel collection is keyed by, mirroring 02-client's
// MakeConsensusStateKey composite-key idiom.
func ChannelKey(portId, channelId string) string {
	return portId + "/" + channelId
}

// MakePacketKey builds the composite (channelKey, sequence-string) key
// the packet commitment/receipt/acknowledgement collections use.
func MakePacketKey(channelKey string, sequence uint64) collections.Pair[string, string] {
	return collections.Join(channelKey, FormatSequence(sequence))
}
