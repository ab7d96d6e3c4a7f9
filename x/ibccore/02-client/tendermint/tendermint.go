// Package tendermint implements the production light-client scheme
// (spec.md §3 ClientType, §4.2). The concrete cryptographic
// verification of a Tendermint commit and of Merkle-inclusion proofs
// against a committed root is explicitly out of this core's scope
// (spec.md §1 "the cryptographic primitives ... the light-client proof
// format and its concrete Tendermint implementation beyond its
// interface"); this package depends on an injected ProofVerifier
// delegate (an interface declared here) for that piece and implements only the
// trust-parameter bookkeeping the core itself owns: staleness,
// freezing, and the update/verify call shape.
package tendermint

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// ClientState is the Tendermint scheme's trust parameters.
type ClientState struct {
	ChainId              string
	TrustingPeriodNanos  uint64
	UnbondingPeriodNanos uint64
	MaxClockDriftNanos   uint64
	FrozenHeightVal      ibctypes.Height
	LatestHeightVal      ibctypes.Height
}

var _ exported.ClientState = ClientState{}

// NewClientState constructs a Tendermint ClientState.
func NewClientState(chainID string, trustingPeriod, unbondingPeriod, maxClockDrift uint64, latestHeight ibctypes.Height) ClientState {
	return ClientState{
		ChainId:              chainID,
		TrustingPeriodNanos:  trustingPeriod,
		UnbondingPeriodNanos: unbondingPeriod,
		MaxClockDriftNanos:   maxClockDrift,
		LatestHeightVal:      latestHeight,
	}
}

func (c ClientState) ClientType() ibctypes.ClientType { return ibctypes.ClientTypeTendermint }
func (c ClientState) LatestHeight() ibctypes.Height { return c.LatestHeightVal }
func (c ClientState) Frozen() bool { return !c.FrozenHeightVal.IsZero() }

// Freeze returns a copy of c with the frozen height set, used by
// misbehaviour handling (kept for completeness; evidence submission
// itself is out of this core's scope).
func (c ClientState) Freeze(height ibctypes.Height) ClientState {
	c.FrozenHeightVal = height
	return c
}

// ConsensusState pins a height to a historical app hash and next
// validator set hash.
type ConsensusState struct {
	TimestampVal       ibctypes.Timestamp
	RootVal            []byte
	NextValidatorsHash []byte
}

var _ exported.ConsensusState = ConsensusState{}

// NewConsensusState constructs a Tendermint ConsensusState.
func NewConsensusState(timestamp ibctypes.Timestamp, root, nextValidatorsHash []byte) ConsensusState {
	return ConsensusState{TimestampVal: timestamp, RootVal: root, NextValidatorsHash: nextValidatorsHash}
}

func (c ConsensusState) ClientType() ibctypes.ClientType { return ibctypes.ClientTypeTendermint }
func (c ConsensusState) Root() []byte { return c.RootVal }
func (c ConsensusState) Timestamp() ibctypes.Timestamp { return c.TimestampVal }

// Header carries a signed header's height, timestamp and root, plus
// the height it claims to be trusted from. The actual signed-commit
// bytes (cometbft's SignedHeader/ValidatorSet) are the concrete
// verification detail this core does not implement; TrustedHeight and
// the three pinned fields are all the update-bookkeeping logic needs.
type Header struct {
	HeightVal          ibctypes.Height
	TimestampVal       ibctypes.Timestamp
	RootVal            []byte
	NextValidatorsHash []byte
	TrustedHeight      ibctypes.Height
}

var _ exported.Header = Header{}

func (h Header) ClientType() ibctypes.ClientType { return ibctypes.ClientTypeTendermint }
func (h Header) Height() ibctypes.Height { return h.HeightVal }

// ProofVerifier is the external collaborator that performs the actual
// Merkle-membership check against a committed root. It is injected
// into Verifier rather than implemented here (spec.md §1 Out of
// scope); MerkleProofVerifier is the default implementation, and
// testutil/ibctesting wires that one for tests.
type ProofVerifier interface {
	VerifyMembership(root []byte, path string, value []byte, proof exported.Proof) error
}

// Verifier implements exported.Verifier for the Tendermint scheme.
type Verifier struct {
	proofs ProofVerifier
}

var _ exported.Verifier = Verifier{}

// NewVerifier constructs a Tendermint Verifier delegating membership
// checks to pv.
func NewVerifier(pv ProofVerifier) Verifier {
	return Verifier{proofs: pv}
}

// CheckHeaderAndUpdateState implements spec.md §4.2 UpdateClient
// delegation: frozen clients are always rejected, and a header at or
// below the client's current latest height is stale.
func (v Verifier) CheckHeaderAndUpdateState(
	clientState exported.ClientState, header exported.Header,
) (exported.ClientState, exported.ConsensusState, error) {
	cs, ok := clientState.(ClientState)
	if !ok {
		return nil, nil, errorsmod.Wrap(exported.ErrClientArgsTypeMismatch, "not a tendermint client state")
	}
	h, ok := header.(Header)
	if !ok {
		return nil, nil, errorsmod.Wrap(exported.ErrClientArgsTypeMismatch, "not a tendermint header")
	}
	if cs.Frozen() {
		return nil, nil, exported.ErrFrozenClient
	}
	if !h.HeightVal.GT(cs.LatestHeightVal) {
		return nil, nil, errorsmod.Wrapf(exported.ErrHeaderVerificationFailure,
			"stale header: height %s is not greater than latest height %s", h.HeightVal, cs.LatestHeightVal)
	}

	newState := cs
	newState.LatestHeightVal = h.HeightVal
	newConsensus := ConsensusState{
		TimestampVal:       h.TimestampVal,
		RootVal:            h.RootVal,
		NextValidatorsHash: h.NextValidatorsHash,
	}
	return newState, newConsensus, nil
}

func (v Verifier) membership(path string, value []byte, proof exported.Proof, root []byte) error {
	if v.proofs == nil {
		return errorsmod.Wrap(exported.ErrClientProofVerification, "no proof verifier configured")
	}
	if err := v.proofs.VerifyMembership(root, path, value, proof); err != nil {
		return errorsmod.Wrap(exported.ErrClientProofVerification, err.Error())
	}
	return nil
}

func (v Verifier) notFrozen(clientState exported.ClientState) error {
	cs, ok := clientState.(ClientState)
	if !ok {
		return errorsmod.Wrap(exported.ErrClientArgsTypeMismatch, "not a tendermint client state")
	}
	if cs.Frozen() {
		return exported.ErrFrozenClient
	}
	return nil
}

func (v Verifier) VerifyClientConsensusState(
	clientState exported.ClientState, _ ibctypes.Height, root []byte, _ exported.Prefix, proof exported.Proof,
	counterpartyClientId ibctypes.ClientId, consensusHeight ibctypes.Height, expected exported.ConsensusState,
) error {
	if err := v.notFrozen(clientState); err != nil {
		return err
	}
	path := fmt.Sprintf("clients/%s/consensusStates/%s", counterpartyClientId, consensusHeight)
	return v.membership(path, []byte(fmt.Sprintf("%v", expected)), proof, root)
}

func (v Verifier) VerifyConnectionState(
	clientState exported.ClientState, _ ibctypes.Height, root []byte, _ exported.Prefix, proof exported.Proof,
	connectionId ibctypes.ConnectionId, expected []byte,
) error {
	if err := v.notFrozen(clientState); err != nil {
		return err
	}
	path := fmt.Sprintf("connections/%s", connectionId)
	return v.membership(path, expected, proof, root)
}

func (v Verifier) VerifyChannelState(
	clientState exported.ClientState, _ ibctypes.Height, root []byte, _ exported.Prefix, proof exported.Proof,
	portId ibctypes.PortId, channelId ibctypes.ChannelId, expected []byte,
) error {
	if err := v.notFrozen(clientState); err != nil {
		return err
	}
	path := fmt.Sprintf("channelEnds/ports/%s/channels/%s", portId, channelId)
	return v.membership(path, expected, proof, root)
}

func (v Verifier) VerifyClientFullState(
	clientState exported.ClientState, _ ibctypes.Height, root []byte, _ exported.Prefix, proof exported.Proof,
	counterpartyClientId ibctypes.ClientId, expected exported.ClientState,
) error {
	if err := v.notFrozen(clientState); err != nil {
		return err
	}
	path := fmt.Sprintf("clients/%s/clientState", counterpartyClientId)
	return v.membership(path, []byte(fmt.Sprintf("%v", expected)), proof, root)
}

func (v Verifier) VerifyPacketData(
	clientState exported.ClientState, _ ibctypes.Height, root []byte, proof exported.Proof,
	portId ibctypes.PortId, channelId ibctypes.ChannelId, sequence uint64, commitment []byte,
) error {
	if err := v.notFrozen(clientState); err != nil {
		return err
	}
	path := fmt.Sprintf("commitments/ports/%s/channels/%s/sequences/%d", portId, channelId, sequence)
	return v.membership(path, commitment, proof, root)
}

func (v Verifier) VerifyPacketAcknowledgement(
	clientState exported.ClientState, _ ibctypes.Height, root []byte, proof exported.Proof,
	portId ibctypes.PortId, channelId ibctypes.ChannelId, sequence uint64, ackCommitment []byte,
) error {
	if err := v.notFrozen(clientState); err != nil {
		return err
	}
	path := fmt.Sprintf("acks/ports/%s/channels/%s/sequences/%d", portId, channelId, sequence)
	return v.membership(path, ackCommitment, proof, root)
}

func (v Verifier) VerifyNextSequenceRecv(
	clientState exported.ClientState, _ ibctypes.Height, root []byte, proof exported.Proof,
	portId ibctypes.PortId, channelId ibctypes.ChannelId, nextSequenceRecv uint64,
) error {
	if err := v.notFrozen(clientState); err != nil {
		return err
	}
	path := fmt.Sprintf("nextSequenceRecv/ports/%s/channels/%s", portId, channelId)
	value := []byte(fmt.Sprintf("%d", nextSequenceRecv))
	return v.membership(path, value, proof, root)
}

func (v Verifier) VerifyPacketReceiptAbsence(
	clientState exported.ClientState, _ ibctypes.Height, root []byte, proof exported.Proof,
	portId ibctypes.PortId, channelId ibctypes.ChannelId, sequence uint64,
) error {
	if err := v.notFrozen(clientState); err != nil {
		return err
	}
	path := fmt.Sprintf("receipts/ports/%s/channels/%s/sequences/%d", portId, channelId, sequence)
	return v.membership(path, nil, proof, root)
}
