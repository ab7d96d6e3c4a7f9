package types

import (
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Packet is the unit of application payload flowing over a channel
// (spec.md §3).
type Packet struct {
	Sequence           uint64
	SourcePort         ibctypes.PortId
	SourceChannel      ibctypes.ChannelId
	DestinationPort    ibctypes.PortId
	DestinationChannel ibctypes.ChannelId
	Data               []byte
	TimeoutHeight      ibctypes.Height
	TimeoutTimestamp   ibctypes.Timestamp
}

// Hasher is the deterministic host hash function packet commitments
// and acknowledgements are recorded under (spec.md §6 ChannelKeeper's
// "deterministic hash(string)"). Hashing itself is an external
// cryptographic primitive (spec.md §1 Out of scope); the core only
// requires that host's Hash be injected and deterministic so a
// commitment computed on one chain verifies against the root committed
// by another.
type Hasher interface {
	Hash(data []byte) []byte
}

// CommitPacket computes the deterministic commitment spec.md §3 records
// for a sent packet: hash(timeout_timestamp, timeout_height, data).
func CommitPacket(h Hasher, packet Packet) []byte {
	var buf []byte
	buf = append(buf, encodeUint64(uint64(packet.TimeoutTimestamp))...)
	buf = append(buf, encodeUint64(packet.TimeoutHeight.RevisionNumber)...)
	buf = append(buf, encodeUint64(packet.TimeoutHeight.RevisionHeight)...)
	buf = append(buf, packet.Data...)
	return h.Hash(buf)
}

// CommitAcknowledgement computes the deterministic commitment spec.md
// §3 records for a stored acknowledgement: hash of the ack bytes.
func CommitAcknowledgement(h Hasher, ack []byte) []byte {
	return h.Hash(ack)
}

func encodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[7-i] = byte(v)
		v >>= 8
	}
	return b
}
