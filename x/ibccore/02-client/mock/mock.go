// Package mock implements the Mock light-client scheme used only in
// tests (spec.md §3 ClientType, §9 design notes). It mirrors the
// semantics of original_source's modules/src/mock/client_def.rs and
// mock/context.rs: header verification succeeds whenever the header's
// height is strictly greater than the client's current latest height,
// and proof verification succeeds unless the proof bytes are empty.
package mock

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// ClientState is the Mock scheme's trust parameters: just the latest
// height and a frozen flag, enough to exercise the handler contracts
// without any real consensus verification.
type ClientState struct {
	LatestHeightVal ibctypes.Height
	IsFrozen        bool
}

var _ exported.ClientState = ClientState{}

// NewClientState constructs a Mock ClientState at the given height.
func NewClientState(height ibctypes.Height) ClientState {
	return ClientState{LatestHeightVal: height}
}

func (c ClientState) ClientType() ibctypes.ClientType { return ibctypes.ClientTypeMock }
func (c ClientState) LatestHeight() ibctypes.Height { return c.LatestHeightVal }
func (c ClientState) Frozen() bool { return c.IsFrozen }

// ConsensusState pins a height to an arbitrary root and timestamp.
type ConsensusState struct {
	TimestampVal ibctypes.Timestamp
	RootVal      []byte
}

var _ exported.ConsensusState = ConsensusState{}

// NewConsensusState constructs a Mock ConsensusState.
func NewConsensusState(timestamp ibctypes.Timestamp, root []byte) ConsensusState {
	return ConsensusState{TimestampVal: timestamp, RootVal: root}
}

func (c ConsensusState) ClientType() ibctypes.ClientType { return ibctypes.ClientTypeMock }
func (c ConsensusState) Root() []byte { return c.RootVal }
func (c ConsensusState) Timestamp() ibctypes.Timestamp { return c.TimestampVal }

// Header is the Mock scheme's update proof: just a target height,
// timestamp, and root to pin.
type Header struct {
	HeightVal    ibctypes.Height
	TimestampVal ibctypes.Timestamp
	RootVal      []byte
}

var _ exported.Header = Header{}

func (h Header) ClientType() ibctypes.ClientType { return ibctypes.ClientTypeMock }
func (h Header) Height() ibctypes.Height { return h.HeightVal }

// Verifier implements exported.Verifier for the Mock scheme.
type Verifier struct{}

var _ exported.Verifier = Verifier{}

// NewVerifier returns the (stateless) Mock verifier.
func NewVerifier() Verifier { return Verifier{} }

func (Verifier) CheckHeaderAndUpdateState(
	clientState exported.ClientState, header exported.Header,
) (exported.ClientState, exported.ConsensusState, error) {
	cs, ok := clientState.(ClientState)
	if !ok {
		return nil, nil, errorsmod.Wrap(exported.ErrClientArgsTypeMismatch, "not a mock client state")
	}
	h, ok := header.(Header)
	if !ok {
		return nil, nil, errorsmod.Wrap(exported.ErrClientArgsTypeMismatch, "not a mock header")
	}
	if cs.Frozen() {
		return nil, nil, exported.ErrFrozenClient
	}
	if !h.HeightVal.GT(cs.LatestHeightVal) {
		return nil, nil, errorsmod.Wrapf(exported.ErrHeaderVerificationFailure,
			"stale header: height %s is not greater than latest height %s", h.HeightVal, cs.LatestHeightVal)
	}
	newState := ClientState{LatestHeightVal: h.HeightVal, IsFrozen: cs.IsFrozen}
	newConsensus := ConsensusState{TimestampVal: h.TimestampVal, RootVal: h.RootVal}
	return newState, newConsensus, nil
}

func (Verifier) verifyProof(proof exported.Proof) error {
	if len(proof) == 0 {
		return errorsmod.Wrap(exported.ErrClientProofVerification, "empty proof")
	}
	return nil
}

func (v Verifier) VerifyClientConsensusState(
	_ exported.ClientState, _ ibctypes.Height, _ []byte, _ exported.Prefix, proof exported.Proof,
	_ ibctypes.ClientId, _ ibctypes.Height, _ exported.ConsensusState,
) error {
	return v.verifyProof(proof)
}

func (v Verifier) VerifyConnectionState(
	_ exported.ClientState, _ ibctypes.Height, _ []byte, _ exported.Prefix, proof exported.Proof,
	_ ibctypes.ConnectionId, _ []byte,
) error {
	return v.verifyProof(proof)
}

func (v Verifier) VerifyChannelState(
	_ exported.ClientState, _ ibctypes.Height, _ []byte, _ exported.Prefix, proof exported.Proof,
	_ ibctypes.PortId, _ ibctypes.ChannelId, _ []byte,
) error {
	return v.verifyProof(proof)
}

func (v Verifier) VerifyClientFullState(
	_ exported.ClientState, _ ibctypes.Height, _ []byte, _ exported.Prefix, proof exported.Proof,
	_ ibctypes.ClientId, _ exported.ClientState,
) error {
	return v.verifyProof(proof)
}

func (v Verifier) VerifyPacketData(
	_ exported.ClientState, _ ibctypes.Height, _ []byte, proof exported.Proof,
	_ ibctypes.PortId, _ ibctypes.ChannelId, _ uint64, _ []byte,
) error {
	return v.verifyProof(proof)
}

func (v Verifier) VerifyPacketAcknowledgement(
	_ exported.ClientState, _ ibctypes.Height, _ []byte, proof exported.Proof,
	_ ibctypes.PortId, _ ibctypes.ChannelId, _ uint64, _ []byte,
) error {
	return v.verifyProof(proof)
}

func (v Verifier) VerifyNextSequenceRecv(
	_ exported.ClientState, _ ibctypes.Height, _ []byte, proof exported.Proof,
	_ ibctypes.PortId, _ ibctypes.ChannelId, _ uint64,
) error {
	return v.verifyProof(proof)
}

func (v Verifier) VerifyPacketReceiptAbsence(
	_ exported.ClientState, _ ibctypes.Height, _ []byte, proof exported.Proof,
	_ ibctypes.PortId, _ ibctypes.ChannelId, _ uint64,
) error {
	return v.verifyProof(proof)
}

// RawClientState is the Mock ClientState's wire form.
type RawClientState struct {
	LatestHeight *ibctypes.RawHeight
	IsFrozen     bool
}

func (m *RawClientState) Reset() { *m = RawClientState{} }
func (m *RawClientState) String() string { return fmt.Sprintf("mock.ClientState{%v}", m.LatestHeight) }
func (*RawClientState) ProtoMessage() {}

func (m *RawClientState) Marshal() ([]byte, error) {
	var b []byte
	if m.LatestHeight != nil {
		hb, err := m.LatestHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 1, hb)
	}
	if m.IsFrozen {
		b = ibctypes.AppendUint64Field(b, 2, 1)
	}
	return b, nil
}

func (m *RawClientState) Unmarshal(data []byte) error {
	*m = RawClientState{}
	it := ibctypes.NewFieldIterator(data)
	for {
		num, typ, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch num {
		case 1:
			hb, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(hb); err != nil {
				return err
			}
			m.LatestHeight = &h
		case 2:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.IsFrozen = v != 0
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ToRaw converts a Mock ClientState to its wire form.
func (c ClientState) ToRaw() *RawClientState {
	return &RawClientState{LatestHeight: c.LatestHeightVal.ToRaw(), IsFrozen: c.IsFrozen}
}

// FromRaw converts a wire-form Mock ClientState back to the domain type.
func FromRaw(raw *RawClientState) ClientState {
	if raw == nil {
		return ClientState{}
	}
	return ClientState{
		LatestHeightVal: ibctypes.HeightFromRaw(raw.LatestHeight),
		IsFrozen:        raw.IsFrozen,
	}
}

// RawConsensusState is the Mock ConsensusState's wire form.
type RawConsensusState struct {
	TimestampNanos uint64
	Root           []byte
}

func (m *RawConsensusState) Reset() { *m = RawConsensusState{} }
func (m *RawConsensusState) String() string { return fmt.Sprintf("mock.ConsensusState{%d}", m.TimestampNanos) }
func (*RawConsensusState) ProtoMessage() {}

func (m *RawConsensusState) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendUint64Field(b, 1, m.TimestampNanos)
	b = ibctypes.AppendBytesField(b, 2, m.Root)
	return b, nil
}

func (m *RawConsensusState) Unmarshal(data []byte) error {
	*m = RawConsensusState{}
	it := ibctypes.NewFieldIterator(data)
	for {
		num, typ, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch num {
		case 1:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.TimestampNanos = v
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Root = append([]byte(nil), v...)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ToRaw converts a Mock ConsensusState to its wire form.
func (c ConsensusState) ToRaw() *RawConsensusState {
	return &RawConsensusState{TimestampNanos: uint64(c.TimestampVal), Root: c.RootVal}
}

// ConsensusStateFromRaw converts a wire-form Mock ConsensusState back
// to the domain type.
func ConsensusStateFromRaw(raw *RawConsensusState) ConsensusState {
	if raw == nil {
		return ConsensusState{}
	}
	return ConsensusState{TimestampVal: ibctypes.Timestamp(raw.TimestampNanos), RootVal: raw.Root}
}

// RawHeader is the Mock Header's wire form.
type RawHeader struct {
	Height         *ibctypes.RawHeight
	TimestampNanos uint64
	Root           []byte
}

func (m *RawHeader) Reset() { *m = RawHeader{} }
func (m *RawHeader) String() string { return fmt.Sprintf("mock.Header{%v}", m.Height) }
func (*RawHeader) ProtoMessage() {}

func (m *RawHeader) Marshal() ([]byte, error) {
	var b []byte
	if m.Height != nil {
		hb, err := m.Height.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 1, hb)
	}
	b = ibctypes.AppendUint64Field(b, 2, m.TimestampNanos)
	b = ibctypes.AppendBytesField(b, 3, m.Root)
	return b, nil
}

func (m *RawHeader) Unmarshal(data []byte) error {
	*m = RawHeader{}
	it := ibctypes.NewFieldIterator(data)
	for {
		num, typ, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch num {
		case 1:
			hb, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(hb); err != nil {
				return err
			}
			m.Height = &h
		case 2:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.TimestampNanos = v
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Root = append([]byte(nil), v...)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ToRaw converts a Mock Header to its wire form.
func (h Header) ToRaw() *RawHeader {
	return &RawHeader{Height: h.HeightVal.ToRaw(), TimestampNanos: uint64(h.TimestampVal), Root: h.RootVal}
}

// HeaderFromRaw converts a wire-form Mock Header back to the domain type.
func HeaderFromRaw(raw *RawHeader) Header {
	if raw == nil {
		return Header{}
	}
	return Header{
		HeightVal:    ibctypes.HeightFromRaw(raw.Height),
		TimestampVal: ibctypes.Timestamp(raw.TimestampNanos),
		RootVal:      raw.Root,
	}
}
