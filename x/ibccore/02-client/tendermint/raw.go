package tendermint

import (
	"fmt"

	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// RawClientState is the Tendermint ClientState's wire form.
type RawClientState struct {
	ChainId              string
	TrustingPeriodNanos  uint64
	UnbondingPeriodNanos uint64
	MaxClockDriftNanos   uint64
	FrozenHeight         *ibctypes.RawHeight
	LatestHeight         *ibctypes.RawHeight
}

func (m *RawClientState) Reset()         { *m = RawClientState{} }
func (m *RawClientState) String() string { return fmt.Sprintf("tendermint.ClientState{%s}", m.ChainId) }
func (*RawClientState) ProtoMessage()    {}

func (m *RawClientState) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.ChainId)
	b = ibctypes.AppendUint64Field(b, 2, m.TrustingPeriodNanos)
	b = ibctypes.AppendUint64Field(b, 3, m.UnbondingPeriodNanos)
	b = ibctypes.AppendUint64Field(b, 4, m.MaxClockDriftNanos)
	if m.FrozenHeight != nil {
		hb, err := m.FrozenHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 5, hb)
	}
	if m.LatestHeight != nil {
		hb, err := m.LatestHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 6, hb)
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
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ChainId = string(v)
		case 2:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.TrustingPeriodNanos = v
		case 3:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.UnbondingPeriodNanos = v
		case 4:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.MaxClockDriftNanos = v
		case 5:
			hb, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(hb); err != nil {
				return err
			}
			m.FrozenHeight = &h
		case 6:
			hb, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(hb); err != nil {
				return err
			}
			m.LatestHeight = &h
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ToRaw converts a Tendermint ClientState to its wire form.
func (c ClientState) ToRaw() *RawClientState {
	raw := &RawClientState{
		ChainId:              c.ChainId,
		TrustingPeriodNanos:  c.TrustingPeriodNanos,
		UnbondingPeriodNanos: c.UnbondingPeriodNanos,
		MaxClockDriftNanos:   c.MaxClockDriftNanos,
		LatestHeight:         c.LatestHeightVal.ToRaw(),
	}
	if !c.FrozenHeightVal.IsZero() {
		raw.FrozenHeight = c.FrozenHeightVal.ToRaw()
	}
	return raw
}

// ClientStateFromRaw converts a wire-form Tendermint ClientState back
// to the domain type.
func ClientStateFromRaw(raw *RawClientState) ClientState {
	if raw == nil {
		return ClientState{}
	}
	return ClientState{
		ChainId:              raw.ChainId,
		TrustingPeriodNanos:  raw.TrustingPeriodNanos,
		UnbondingPeriodNanos: raw.UnbondingPeriodNanos,
		MaxClockDriftNanos:   raw.MaxClockDriftNanos,
		FrozenHeightVal:      ibctypes.HeightFromRaw(raw.FrozenHeight),
		LatestHeightVal:      ibctypes.HeightFromRaw(raw.LatestHeight),
	}
}

// RawConsensusState is the Tendermint ConsensusState's wire form.
type RawConsensusState struct {
	TimestampNanos     uint64
	Root               []byte
	NextValidatorsHash []byte
}

func (m *RawConsensusState) Reset()         { *m = RawConsensusState{} }
func (m *RawConsensusState) String() string { return fmt.Sprintf("tendermint.ConsensusState{%d}", m.TimestampNanos) }
func (*RawConsensusState) ProtoMessage()    {}

func (m *RawConsensusState) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendUint64Field(b, 1, m.TimestampNanos)
	b = ibctypes.AppendBytesField(b, 2, m.Root)
	b = ibctypes.AppendBytesField(b, 3, m.NextValidatorsHash)
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
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.NextValidatorsHash = append([]byte(nil), v...)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ToRaw converts a Tendermint ConsensusState to its wire form.
func (c ConsensusState) ToRaw() *RawConsensusState {
	return &RawConsensusState{
		TimestampNanos:     uint64(c.TimestampVal),
		Root:               c.RootVal,
		NextValidatorsHash: c.NextValidatorsHash,
	}
}

// ConsensusStateFromRaw converts a wire-form Tendermint ConsensusState
// back to the domain type.
func ConsensusStateFromRaw(raw *RawConsensusState) ConsensusState {
	if raw == nil {
		return ConsensusState{}
	}
	return ConsensusState{
		TimestampVal:       ibctypes.Timestamp(raw.TimestampNanos),
		RootVal:            raw.Root,
		NextValidatorsHash: raw.NextValidatorsHash,
	}
}

// RawHeader is the Tendermint Header's wire form.
type RawHeader struct {
	Height             *ibctypes.RawHeight
	TimestampNanos     uint64
	Root               []byte
	NextValidatorsHash []byte
	TrustedHeight      *ibctypes.RawHeight
}

func (m *RawHeader) Reset()         { *m = RawHeader{} }
func (m *RawHeader) String() string { return fmt.Sprintf("tendermint.Header{%v}", m.Height) }
func (*RawHeader) ProtoMessage()    {}

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
	b = ibctypes.AppendBytesField(b, 4, m.NextValidatorsHash)
	if m.TrustedHeight != nil {
		hb, err := m.TrustedHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 5, hb)
	}
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
		case 4:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.NextValidatorsHash = append([]byte(nil), v...)
		case 5:
			hb, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(hb); err != nil {
				return err
			}
			m.TrustedHeight = &h
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ToRaw converts a Tendermint Header to its wire form.
func (h Header) ToRaw() *RawHeader {
	return &RawHeader{
		Height:             h.HeightVal.ToRaw(),
		TimestampNanos:     uint64(h.TimestampVal),
		Root:               h.RootVal,
		NextValidatorsHash: h.NextValidatorsHash,
		TrustedHeight:      h.TrustedHeight.ToRaw(),
	}
}

// HeaderFromRaw converts a wire-form Tendermint Header back to the
// domain type.
func HeaderFromRaw(raw *RawHeader) Header {
	if raw == nil {
		return Header{}
	}
	return Header{
		HeightVal:          ibctypes.HeightFromRaw(raw.Height),
		TimestampVal:       ibctypes.Timestamp(raw.TimestampNanos),
		RootVal:            raw.Root,
		NextValidatorsHash: raw.NextValidatorsHash,
		TrustedHeight:      ibctypes.HeightFromRaw(raw.TrustedHeight),
	}
}
