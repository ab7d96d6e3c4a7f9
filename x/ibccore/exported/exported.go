// Package exported defines the abstract capabilities every light-client
// scheme implements, so the connection, channel, and packet layers can
// depend on them without knowing which concrete scheme (Tendermint,
// Mock, ...) backs a given client. It mirrors the role of ibc-go's own
// "exported" package, the dependency named throughout the pack
// (see other_examples' solomachine client_state.go).
package exported

import (
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// ClientState is the scheme-specific trust parameters for a remote
// chain's light client (spec.md §3, §4.2).
type ClientState interface {
	ClientType() ibctypes.ClientType
	LatestHeight() ibctypes.Height
	// Frozen reports whether misbehaviour has permanently disabled this
	// client; a frozen client's proofs must always be rejected.
	Frozen() bool
}

// ConsensusState is a pinned historical commitment root of a remote
// chain at a specific height.
type ConsensusState interface {
	ClientType() ibctypes.ClientType
	Root() []byte
	Timestamp() ibctypes.Timestamp
}

// Header carries the scheme-specific proof a client uses to advance
// its trusted state.
type Header interface {
	ClientType() ibctypes.ClientType
	Height() ibctypes.Height
}

// Misbehaviour carries scheme-specific evidence that a client's
// trust assumptions were violated; not required for this core's
// Non-goals (consensus-soundness proofs) but kept as a first-class
// type so a scheme's Freeze path has somewhere to attach evidence.
type Misbehaviour interface {
	ClientType() ibctypes.ClientType
}

// Prefix is the store-key prefix a chain commits its IBC paths under
// (e.g. "ibc"), applied before a path is proven against a Merkle root.
type Prefix struct {
	KeyPrefix []byte
}

// Proof is the opaque Merkle-inclusion proof bytes produced by the
// counterparty chain's commitment scheme. Verifying it is explicitly
// out of this core's scope (spec.md §1); the core only carries the
// bytes between the store and the scheme-specific Verifier.
type Proof []byte

// Verifier is the per-scheme capability contract every light client
// must implement (spec.md §4.2). All Verify* methods return nil on
// success; the caller rolls any scheme-specific failure reason up into
// ClientProofVerification.
type Verifier interface {
	// CheckHeaderAndUpdateState validates header against the current
	// ClientState and returns the updated ClientState and the
	// ConsensusState to store at the header's height.
	CheckHeaderAndUpdateState(clientState ClientState, header Header) (ClientState, ConsensusState, error)

	// Every Verify* method below takes the root explicitly: the core
	// (not the scheme) owns the consensus-state-at-height lookup, since
	// that lookup lives in the client keeper's store, not in the
	// stateless Verifier delegate.

	VerifyClientConsensusState(
		clientState ClientState, height ibctypes.Height, root []byte, prefix Prefix, proof Proof,
		counterpartyClientId ibctypes.ClientId, consensusHeight ibctypes.Height, expected ConsensusState,
	) error

	VerifyConnectionState(
		clientState ClientState, height ibctypes.Height, root []byte, prefix Prefix, proof Proof,
		connectionId ibctypes.ConnectionId, expected []byte,
	) error

	VerifyChannelState(
		clientState ClientState, height ibctypes.Height, root []byte, prefix Prefix, proof Proof,
		portId ibctypes.PortId, channelId ibctypes.ChannelId, expected []byte,
	) error

	VerifyClientFullState(
		clientState ClientState, height ibctypes.Height, root []byte, prefix Prefix, proof Proof,
		counterpartyClientId ibctypes.ClientId, expected ClientState,
	) error

	VerifyPacketData(
		clientState ClientState, height ibctypes.Height, root []byte, proof Proof,
		portId ibctypes.PortId, channelId ibctypes.ChannelId, sequence uint64, commitment []byte,
	) error

	VerifyPacketAcknowledgement(
		clientState ClientState, height ibctypes.Height, root []byte, proof Proof,
		portId ibctypes.PortId, channelId ibctypes.ChannelId, sequence uint64, ackCommitment []byte,
	) error

	VerifyNextSequenceRecv(
		clientState ClientState, height ibctypes.Height, root []byte, proof Proof,
		portId ibctypes.PortId, channelId ibctypes.ChannelId, nextSequenceRecv uint64,
	) error

	VerifyPacketReceiptAbsence(
		clientState ClientState, height ibctypes.Height, root []byte, proof Proof,
		portId ibctypes.PortId, channelId ibctypes.ChannelId, sequence uint64,
	) error
}
