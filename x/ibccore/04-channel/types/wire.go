package types

import (
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// RawCounterparty is Counterparty's wire form.
type RawCounterparty struct {
	PortId    string
	ChannelId string
}

func (m *RawCounterparty) Reset()         { *m = RawCounterparty{} }
func (m *RawCounterparty) String() string { return m.PortId }
func (*RawCounterparty) ProtoMessage()    {}

func (m *RawCounterparty) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.PortId)
	b = ibctypes.AppendStringField(b, 2, m.ChannelId)
	return b, nil
}

func (m *RawCounterparty) Unmarshal(data []byte) error {
	*m = RawCounterparty{}
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
			m.PortId = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ChannelId = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

func counterpartyToRaw(c Counterparty) *RawCounterparty {
	return &RawCounterparty{PortId: string(c.PortId), ChannelId: string(c.ChannelId)}
}

func counterpartyFromRaw(raw *RawCounterparty) Counterparty {
	if raw == nil {
		return Counterparty{}
	}
	return Counterparty{PortId: ibctypes.PortId(raw.PortId), ChannelId: ibctypes.ChannelId(raw.ChannelId)}
}

// RawChannelEnd is ChannelEnd's wire form, the value the keeper
// persists under each (port, channel) key.
type RawChannelEnd struct {
	State          uint32
	Ordering       uint32
	Counterparty   *RawCounterparty
	ConnectionHops []string
	Version        string
}

func (m *RawChannelEnd) Reset()         { *m = RawChannelEnd{} }
func (m *RawChannelEnd) String() string { return m.Version }
func (*RawChannelEnd) ProtoMessage()    {}

func (m *RawChannelEnd) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendUint64Field(b, 1, uint64(m.State))
	b = ibctypes.AppendUint64Field(b, 2, uint64(m.Ordering))
	if m.Counterparty != nil {
		eb, err := m.Counterparty.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 3, eb)
	}
	for _, hop := range m.ConnectionHops {
		b = ibctypes.AppendStringField(b, 4, hop)
	}
	b = ibctypes.AppendStringField(b, 5, m.Version)
	return b, nil
}

func (m *RawChannelEnd) Unmarshal(data []byte) error {
	*m = RawChannelEnd{}
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
			m.State = uint32(v)
		case 2:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.Ordering = uint32(v)
		case 3:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawCounterparty
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Counterparty = &v
		case 4:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ConnectionHops = append(m.ConnectionHops, string(v))
		case 5:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Version = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ChannelEndToRaw converts a ChannelEnd to its wire form.
func ChannelEndToRaw(c ChannelEnd) *RawChannelEnd {
	hops := make([]string, len(c.ConnectionHops))
	for i, h := range c.ConnectionHops {
		hops[i] = string(h)
	}
	return &RawChannelEnd{
		State:          uint32(c.State),
		Ordering:       uint32(c.Ordering),
		Counterparty:   counterpartyToRaw(c.Counterparty),
		ConnectionHops: hops,
		Version:        c.Version,
	}
}

// ChannelEndFromRaw converts a wire-form ChannelEnd back to the domain
// type.
func ChannelEndFromRaw(raw *RawChannelEnd) ChannelEnd {
	if raw == nil {
		return ChannelEnd{}
	}
	hops := make([]ibctypes.ConnectionId, len(raw.ConnectionHops))
	for i, h := range raw.ConnectionHops {
		hops[i] = ibctypes.ConnectionId(h)
	}
	return ChannelEnd{
		State:          State(raw.State),
		Ordering:       Ordering(raw.Ordering),
		Counterparty:   counterpartyFromRaw(raw.Counterparty),
		ConnectionHops: hops,
		Version:        raw.Version,
	}
}

// RawPacket is Packet's wire form.
type RawPacket struct {
	Sequence           uint64
	SourcePort         string
	SourceChannel      string
	DestinationPort    string
	DestinationChannel string
	Data               []byte
	TimeoutHeight      *ibctypes.RawHeight
	TimeoutTimestamp   uint64
}

func (m *RawPacket) Reset()         { *m = RawPacket{} }
func (m *RawPacket) String() string { return m.SourcePort }
func (*RawPacket) ProtoMessage()    {}

func (m *RawPacket) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendUint64Field(b, 1, m.Sequence)
	b = ibctypes.AppendStringField(b, 2, m.SourcePort)
	b = ibctypes.AppendStringField(b, 3, m.SourceChannel)
	b = ibctypes.AppendStringField(b, 4, m.DestinationPort)
	b = ibctypes.AppendStringField(b, 5, m.DestinationChannel)
	b = ibctypes.AppendBytesField(b, 6, m.Data)
	if m.TimeoutHeight != nil {
		eb, err := m.TimeoutHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 7, eb)
	}
	b = ibctypes.AppendUint64Field(b, 8, m.TimeoutTimestamp)
	return b, nil
}

func (m *RawPacket) Unmarshal(data []byte) error {
	*m = RawPacket{}
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
			m.Sequence = v
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.SourcePort = string(v)
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.SourceChannel = string(v)
		case 4:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.DestinationPort = string(v)
		case 5:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.DestinationChannel = string(v)
		case 6:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Data = append([]byte(nil), v...)
		case 7:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v ibctypes.RawHeight
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.TimeoutHeight = &v
		case 8:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.TimeoutTimestamp = v
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// PacketToRaw converts a Packet to its wire form.
func PacketToRaw(p Packet) *RawPacket {
	return &RawPacket{
		Sequence:           p.Sequence,
		SourcePort:         string(p.SourcePort),
		SourceChannel:      string(p.SourceChannel),
		DestinationPort:    string(p.DestinationPort),
		DestinationChannel: string(p.DestinationChannel),
		Data:               p.Data,
		TimeoutHeight:      p.TimeoutHeight.ToRaw(),
		TimeoutTimestamp:   uint64(p.TimeoutTimestamp),
	}
}

// PacketFromRaw converts a wire-form Packet back to the domain type.
func PacketFromRaw(raw *RawPacket) Packet {
	if raw == nil {
		return Packet{}
	}
	return Packet{
		Sequence:           raw.Sequence,
		SourcePort:         ibctypes.PortId(raw.SourcePort),
		SourceChannel:      ibctypes.ChannelId(raw.SourceChannel),
		DestinationPort:    ibctypes.PortId(raw.DestinationPort),
		DestinationChannel: ibctypes.ChannelId(raw.DestinationChannel),
		Data:               raw.Data,
		TimeoutHeight:      ibctypes.HeightFromRaw(raw.TimeoutHeight),
		TimeoutTimestamp:   ibctypes.Timestamp(raw.TimeoutTimestamp),
	}
}

// RawMsgChannelOpenInit is MsgChannelOpenInit's wire form.
type RawMsgChannelOpenInit struct {
	PortId         string
	Ordering       uint32
	ConnectionHops []string
	Version        string
	Counterparty   *RawCounterparty
	Signer         string
}

func (m *RawMsgChannelOpenInit) Reset()         { *m = RawMsgChannelOpenInit{} }
func (m *RawMsgChannelOpenInit) String() string { return m.PortId }
func (*RawMsgChannelOpenInit) ProtoMessage()    {}

func (m *RawMsgChannelOpenInit) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.PortId)
	b = ibctypes.AppendUint64Field(b, 2, uint64(m.Ordering))
	for _, hop := range m.ConnectionHops {
		b = ibctypes.AppendStringField(b, 3, hop)
	}
	b = ibctypes.AppendStringField(b, 4, m.Version)
	if m.Counterparty != nil {
		eb, err := m.Counterparty.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 5, eb)
	}
	b = ibctypes.AppendStringField(b, 6, m.Signer)
	return b, nil
}

func (m *RawMsgChannelOpenInit) Unmarshal(data []byte) error {
	*m = RawMsgChannelOpenInit{}
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
			m.PortId = string(v)
		case 2:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.Ordering = uint32(v)
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ConnectionHops = append(m.ConnectionHops, string(v))
		case 4:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Version = string(v)
		case 5:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawCounterparty
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Counterparty = &v
		case 6:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Signer = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

func hopsToRaw(hops []ibctypes.ConnectionId) []string {
	out := make([]string, len(hops))
	for i, h := range hops {
		out[i] = string(h)
	}
	return out
}

func hopsFromRaw(hops []string) []ibctypes.ConnectionId {
	out := make([]ibctypes.ConnectionId, len(hops))
	for i, h := range hops {
		out[i] = ibctypes.ConnectionId(h)
	}
	return out
}

// MsgChannelOpenInitToRaw converts a MsgChannelOpenInit to its wire form.
func MsgChannelOpenInitToRaw(m MsgChannelOpenInit) *RawMsgChannelOpenInit {
	return &RawMsgChannelOpenInit{
		PortId:         string(m.PortId),
		Ordering:       uint32(m.Ordering),
		ConnectionHops: hopsToRaw(m.ConnectionHops),
		Version:        m.Version,
		Counterparty:   counterpartyToRaw(m.Counterparty),
		Signer:         m.Signer,
	}
}

// MsgChannelOpenInitFromRaw converts a wire-form MsgChannelOpenInit back
// to the domain type.
func MsgChannelOpenInitFromRaw(raw *RawMsgChannelOpenInit) MsgChannelOpenInit {
	if raw == nil {
		return MsgChannelOpenInit{}
	}
	return MsgChannelOpenInit{
		PortId:         ibctypes.PortId(raw.PortId),
		Ordering:       Ordering(raw.Ordering),
		ConnectionHops: hopsFromRaw(raw.ConnectionHops),
		Version:        raw.Version,
		Counterparty:   counterpartyFromRaw(raw.Counterparty),
		Signer:         raw.Signer,
	}
}

// RawMsgChannelOpenTry is MsgChannelOpenTry's wire form.
type RawMsgChannelOpenTry struct {
	PortId              string
	PreviousChannelId   string
	Ordering            uint32
	ConnectionHops      []string
	CounterpartyVersion string
	Counterparty        *RawCounterparty
	ProofInit            []byte
	ProofHeight          *ibctypes.RawHeight
	Signer               string
}

func (m *RawMsgChannelOpenTry) Reset()         { *m = RawMsgChannelOpenTry{} }
func (m *RawMsgChannelOpenTry) String() string { return m.PortId }
func (*RawMsgChannelOpenTry) ProtoMessage()    {}

func (m *RawMsgChannelOpenTry) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.PortId)
	b = ibctypes.AppendStringField(b, 2, m.PreviousChannelId)
	b = ibctypes.AppendUint64Field(b, 3, uint64(m.Ordering))
	for _, hop := range m.ConnectionHops {
		b = ibctypes.AppendStringField(b, 4, hop)
	}
	b = ibctypes.AppendStringField(b, 5, m.CounterpartyVersion)
	if m.Counterparty != nil {
		eb, err := m.Counterparty.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 6, eb)
	}
	b = ibctypes.AppendBytesField(b, 7, m.ProofInit)
	if m.ProofHeight != nil {
		eb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 8, eb)
	}
	b = ibctypes.AppendStringField(b, 9, m.Signer)
	return b, nil
}

func (m *RawMsgChannelOpenTry) Unmarshal(data []byte) error {
	*m = RawMsgChannelOpenTry{}
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
			m.PortId = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.PreviousChannelId = string(v)
		case 3:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.Ordering = uint32(v)
		case 4:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ConnectionHops = append(m.ConnectionHops, string(v))
		case 5:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.CounterpartyVersion = string(v)
		case 6:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawCounterparty
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Counterparty = &v
		case 7:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofInit = append([]byte(nil), v...)
		case 8:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v ibctypes.RawHeight
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ProofHeight = &v
		case 9:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Signer = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// MsgChannelOpenTryToRaw converts a MsgChannelOpenTry to its wire form.
func MsgChannelOpenTryToRaw(m MsgChannelOpenTry) *RawMsgChannelOpenTry {
	return &RawMsgChannelOpenTry{
		PortId:              string(m.PortId),
		PreviousChannelId:   string(m.PreviousChannelId),
		Ordering:            uint32(m.Ordering),
		ConnectionHops:      hopsToRaw(m.ConnectionHops),
		CounterpartyVersion: m.CounterpartyVersion,
		Counterparty:        counterpartyToRaw(m.Counterparty),
		ProofInit:           m.ProofInit,
		ProofHeight:         m.ProofHeight.ToRaw(),
		Signer:              m.Signer,
	}
}

// MsgChannelOpenTryFromRaw converts a wire-form MsgChannelOpenTry back to
// the domain type.
func MsgChannelOpenTryFromRaw(raw *RawMsgChannelOpenTry) MsgChannelOpenTry {
	if raw == nil {
		return MsgChannelOpenTry{}
	}
	return MsgChannelOpenTry{
		PortId:              ibctypes.PortId(raw.PortId),
		PreviousChannelId:   ibctypes.ChannelId(raw.PreviousChannelId),
		Ordering:            Ordering(raw.Ordering),
		ConnectionHops:      hopsFromRaw(raw.ConnectionHops),
		CounterpartyVersion: raw.CounterpartyVersion,
		Counterparty:        counterpartyFromRaw(raw.Counterparty),
		ProofInit:           exported.Proof(raw.ProofInit),
		ProofHeight:         ibctypes.HeightFromRaw(raw.ProofHeight),
		Signer:              raw.Signer,
	}
}

// RawMsgChannelOpenAck is MsgChannelOpenAck's wire form.
type RawMsgChannelOpenAck struct {
	PortId                string
	ChannelId             string
	CounterpartyChannelId string
	CounterpartyVersion   string
	ProofTry              []byte
	ProofHeight           *ibctypes.RawHeight
	Signer                string
}

func (m *RawMsgChannelOpenAck) Reset()         { *m = RawMsgChannelOpenAck{} }
func (m *RawMsgChannelOpenAck) String() string { return m.PortId }
func (*RawMsgChannelOpenAck) ProtoMessage()    {}

func (m *RawMsgChannelOpenAck) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.PortId)
	b = ibctypes.AppendStringField(b, 2, m.ChannelId)
	b = ibctypes.AppendStringField(b, 3, m.CounterpartyChannelId)
	b = ibctypes.AppendStringField(b, 4, m.CounterpartyVersion)
	b = ibctypes.AppendBytesField(b, 5, m.ProofTry)
	if m.ProofHeight != nil {
		eb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 6, eb)
	}
	b = ibctypes.AppendStringField(b, 7, m.Signer)
	return b, nil
}

func (m *RawMsgChannelOpenAck) Unmarshal(data []byte) error {
	*m = RawMsgChannelOpenAck{}
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
			m.PortId = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ChannelId = string(v)
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.CounterpartyChannelId = string(v)
		case 4:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.CounterpartyVersion = string(v)
		case 5:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofTry = append([]byte(nil), v...)
		case 6:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v ibctypes.RawHeight
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ProofHeight = &v
		case 7:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Signer = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// MsgChannelOpenAckToRaw converts a MsgChannelOpenAck to its wire form.
func MsgChannelOpenAckToRaw(m MsgChannelOpenAck) *RawMsgChannelOpenAck {
	return &RawMsgChannelOpenAck{
		PortId:                string(m.PortId),
		ChannelId:             string(m.ChannelId),
		CounterpartyChannelId: string(m.CounterpartyChannelId),
		CounterpartyVersion:   m.CounterpartyVersion,
		ProofTry:              m.ProofTry,
		ProofHeight:           m.ProofHeight.ToRaw(),
		Signer:                m.Signer,
	}
}

// MsgChannelOpenAckFromRaw converts a wire-form MsgChannelOpenAck back to
// the domain type.
func MsgChannelOpenAckFromRaw(raw *RawMsgChannelOpenAck) MsgChannelOpenAck {
	if raw == nil {
		return MsgChannelOpenAck{}
	}
	return MsgChannelOpenAck{
		PortId:                ibctypes.PortId(raw.PortId),
		ChannelId:             ibctypes.ChannelId(raw.ChannelId),
		CounterpartyChannelId: ibctypes.ChannelId(raw.CounterpartyChannelId),
		CounterpartyVersion:   raw.CounterpartyVersion,
		ProofTry:              exported.Proof(raw.ProofTry),
		ProofHeight:           ibctypes.HeightFromRaw(raw.ProofHeight),
		Signer:                raw.Signer,
	}
}

// RawMsgChannelOpenConfirm is MsgChannelOpenConfirm's wire form.
type RawMsgChannelOpenConfirm struct {
	PortId      string
	ChannelId   string
	ProofAck    []byte
	ProofHeight *ibctypes.RawHeight
	Signer      string
}

func (m *RawMsgChannelOpenConfirm) Reset()         { *m = RawMsgChannelOpenConfirm{} }
func (m *RawMsgChannelOpenConfirm) String() string { return m.PortId }
func (*RawMsgChannelOpenConfirm) ProtoMessage()    {}

func (m *RawMsgChannelOpenConfirm) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.PortId)
	b = ibctypes.AppendStringField(b, 2, m.ChannelId)
	b = ibctypes.AppendBytesField(b, 3, m.ProofAck)
	if m.ProofHeight != nil {
		eb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 4, eb)
	}
	b = ibctypes.AppendStringField(b, 5, m.Signer)
	return b, nil
}

func (m *RawMsgChannelOpenConfirm) Unmarshal(data []byte) error {
	*m = RawMsgChannelOpenConfirm{}
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
			m.PortId = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ChannelId = string(v)
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofAck = append([]byte(nil), v...)
		case 4:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v ibctypes.RawHeight
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ProofHeight = &v
		case 5:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Signer = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// MsgChannelOpenConfirmToRaw converts a MsgChannelOpenConfirm to its wire
// form.
func MsgChannelOpenConfirmToRaw(m MsgChannelOpenConfirm) *RawMsgChannelOpenConfirm {
	return &RawMsgChannelOpenConfirm{
		PortId:      string(m.PortId),
		ChannelId:   string(m.ChannelId),
		ProofAck:    m.ProofAck,
		ProofHeight: m.ProofHeight.ToRaw(),
		Signer:      m.Signer,
	}
}

// MsgChannelOpenConfirmFromRaw converts a wire-form MsgChannelOpenConfirm
// back to the domain type.
func MsgChannelOpenConfirmFromRaw(raw *RawMsgChannelOpenConfirm) MsgChannelOpenConfirm {
	if raw == nil {
		return MsgChannelOpenConfirm{}
	}
	return MsgChannelOpenConfirm{
		PortId:      ibctypes.PortId(raw.PortId),
		ChannelId:   ibctypes.ChannelId(raw.ChannelId),
		ProofAck:    exported.Proof(raw.ProofAck),
		ProofHeight: ibctypes.HeightFromRaw(raw.ProofHeight),
		Signer:      raw.Signer,
	}
}

// RawMsgChannelCloseInit is MsgChannelCloseInit's wire form.
type RawMsgChannelCloseInit struct {
	PortId    string
	ChannelId string
	Signer    string
}

func (m *RawMsgChannelCloseInit) Reset()         { *m = RawMsgChannelCloseInit{} }
func (m *RawMsgChannelCloseInit) String() string { return m.PortId }
func (*RawMsgChannelCloseInit) ProtoMessage()    {}

func (m *RawMsgChannelCloseInit) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.PortId)
	b = ibctypes.AppendStringField(b, 2, m.ChannelId)
	b = ibctypes.AppendStringField(b, 3, m.Signer)
	return b, nil
}

func (m *RawMsgChannelCloseInit) Unmarshal(data []byte) error {
	*m = RawMsgChannelCloseInit{}
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
			m.PortId = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ChannelId = string(v)
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Signer = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// MsgChannelCloseInitToRaw converts a MsgChannelCloseInit to its wire
// form.
func MsgChannelCloseInitToRaw(m MsgChannelCloseInit) *RawMsgChannelCloseInit {
	return &RawMsgChannelCloseInit{PortId: string(m.PortId), ChannelId: string(m.ChannelId), Signer: m.Signer}
}

// MsgChannelCloseInitFromRaw converts a wire-form MsgChannelCloseInit
// back to the domain type.
func MsgChannelCloseInitFromRaw(raw *RawMsgChannelCloseInit) MsgChannelCloseInit {
	if raw == nil {
		return MsgChannelCloseInit{}
	}
	return MsgChannelCloseInit{
		PortId:    ibctypes.PortId(raw.PortId),
		ChannelId: ibctypes.ChannelId(raw.ChannelId),
		Signer:    raw.Signer,
	}
}

// RawMsgChannelCloseConfirm is MsgChannelCloseConfirm's wire form.
type RawMsgChannelCloseConfirm struct {
	PortId      string
	ChannelId   string
	ProofInit   []byte
	ProofHeight *ibctypes.RawHeight
	Signer      string
}

func (m *RawMsgChannelCloseConfirm) Reset()         { *m = RawMsgChannelCloseConfirm{} }
func (m *RawMsgChannelCloseConfirm) String() string { return m.PortId }
func (*RawMsgChannelCloseConfirm) ProtoMessage()    {}

func (m *RawMsgChannelCloseConfirm) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.PortId)
	b = ibctypes.AppendStringField(b, 2, m.ChannelId)
	b = ibctypes.AppendBytesField(b, 3, m.ProofInit)
	if m.ProofHeight != nil {
		eb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 4, eb)
	}
	b = ibctypes.AppendStringField(b, 5, m.Signer)
	return b, nil
}

func (m *RawMsgChannelCloseConfirm) Unmarshal(data []byte) error {
	*m = RawMsgChannelCloseConfirm{}
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
			m.PortId = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ChannelId = string(v)
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofInit = append([]byte(nil), v...)
		case 4:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v ibctypes.RawHeight
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ProofHeight = &v
		case 5:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Signer = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// MsgChannelCloseConfirmToRaw converts a MsgChannelCloseConfirm to its
// wire form.
func MsgChannelCloseConfirmToRaw(m MsgChannelCloseConfirm) *RawMsgChannelCloseConfirm {
	return &RawMsgChannelCloseConfirm{
		PortId:      string(m.PortId),
		ChannelId:   string(m.ChannelId),
		ProofInit:   m.ProofInit,
		ProofHeight: m.ProofHeight.ToRaw(),
		Signer:      m.Signer,
	}
}

// MsgChannelCloseConfirmFromRaw converts a wire-form
// MsgChannelCloseConfirm back to the domain type.
func MsgChannelCloseConfirmFromRaw(raw *RawMsgChannelCloseConfirm) MsgChannelCloseConfirm {
	if raw == nil {
		return MsgChannelCloseConfirm{}
	}
	return MsgChannelCloseConfirm{
		PortId:      ibctypes.PortId(raw.PortId),
		ChannelId:   ibctypes.ChannelId(raw.ChannelId),
		ProofInit:   exported.Proof(raw.ProofInit),
		ProofHeight: ibctypes.HeightFromRaw(raw.ProofHeight),
		Signer:      raw.Signer,
	}
}

// RawMsgRecvPacket is MsgRecvPacket's wire form.
type RawMsgRecvPacket struct {
	Packet      *RawPacket
	Proof       []byte
	ProofHeight *ibctypes.RawHeight
	Signer      string
}

func (m *RawMsgRecvPacket) Reset()         { *m = RawMsgRecvPacket{} }
func (m *RawMsgRecvPacket) String() string { return m.Signer }
func (*RawMsgRecvPacket) ProtoMessage()    {}

func (m *RawMsgRecvPacket) Marshal() ([]byte, error) {
	var b []byte
	if m.Packet != nil {
		eb, err := m.Packet.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 1, eb)
	}
	b = ibctypes.AppendBytesField(b, 2, m.Proof)
	if m.ProofHeight != nil {
		eb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 3, eb)
	}
	b = ibctypes.AppendStringField(b, 4, m.Signer)
	return b, nil
}

func (m *RawMsgRecvPacket) Unmarshal(data []byte) error {
	*m = RawMsgRecvPacket{}
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
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawPacket
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Packet = &v
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Proof = append([]byte(nil), v...)
		case 3:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v ibctypes.RawHeight
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ProofHeight = &v
		case 4:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Signer = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// MsgRecvPacketToRaw converts a MsgRecvPacket to its wire form.
func MsgRecvPacketToRaw(m MsgRecvPacket) *RawMsgRecvPacket {
	return &RawMsgRecvPacket{
		Packet:      PacketToRaw(m.Packet),
		Proof:       m.Proof,
		ProofHeight: m.ProofHeight.ToRaw(),
		Signer:      m.Signer,
	}
}

// MsgRecvPacketFromRaw converts a wire-form MsgRecvPacket back to the
// domain type.
func MsgRecvPacketFromRaw(raw *RawMsgRecvPacket) MsgRecvPacket {
	if raw == nil {
		return MsgRecvPacket{}
	}
	return MsgRecvPacket{
		Packet:      PacketFromRaw(raw.Packet),
		Proof:       exported.Proof(raw.Proof),
		ProofHeight: ibctypes.HeightFromRaw(raw.ProofHeight),
		Signer:      raw.Signer,
	}
}

// RawMsgAcknowledgement is MsgAcknowledgement's wire form.
type RawMsgAcknowledgement struct {
	Packet          *RawPacket
	Acknowledgement []byte
	Proof           []byte
	ProofHeight     *ibctypes.RawHeight
	Signer          string
}

func (m *RawMsgAcknowledgement) Reset()         { *m = RawMsgAcknowledgement{} }
func (m *RawMsgAcknowledgement) String() string { return m.Signer }
func (*RawMsgAcknowledgement) ProtoMessage()    {}

func (m *RawMsgAcknowledgement) Marshal() ([]byte, error) {
	var b []byte
	if m.Packet != nil {
		eb, err := m.Packet.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 1, eb)
	}
	b = ibctypes.AppendBytesField(b, 2, m.Acknowledgement)
	b = ibctypes.AppendBytesField(b, 3, m.Proof)
	if m.ProofHeight != nil {
		eb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 4, eb)
	}
	b = ibctypes.AppendStringField(b, 5, m.Signer)
	return b, nil
}

func (m *RawMsgAcknowledgement) Unmarshal(data []byte) error {
	*m = RawMsgAcknowledgement{}
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
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawPacket
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Packet = &v
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Acknowledgement = append([]byte(nil), v...)
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Proof = append([]byte(nil), v...)
		case 4:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v ibctypes.RawHeight
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ProofHeight = &v
		case 5:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Signer = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// MsgAcknowledgementToRaw converts a MsgAcknowledgement to its wire form.
func MsgAcknowledgementToRaw(m MsgAcknowledgement) *RawMsgAcknowledgement {
	return &RawMsgAcknowledgement{
		Packet:          PacketToRaw(m.Packet),
		Acknowledgement: m.Acknowledgement,
		Proof:           m.Proof,
		ProofHeight:     m.ProofHeight.ToRaw(),
		Signer:          m.Signer,
	}
}

// MsgAcknowledgementFromRaw converts a wire-form MsgAcknowledgement back
// to the domain type.
func MsgAcknowledgementFromRaw(raw *RawMsgAcknowledgement) MsgAcknowledgement {
	if raw == nil {
		return MsgAcknowledgement{}
	}
	return MsgAcknowledgement{
		Packet:          PacketFromRaw(raw.Packet),
		Acknowledgement: raw.Acknowledgement,
		Proof:           exported.Proof(raw.Proof),
		ProofHeight:     ibctypes.HeightFromRaw(raw.ProofHeight),
		Signer:          raw.Signer,
	}
}

// RawMsgTimeout is MsgTimeout's wire form.
type RawMsgTimeout struct {
	Packet           *RawPacket
	Proof            []byte
	ProofHeight      *ibctypes.RawHeight
	NextSequenceRecv uint64
	Signer           string
}

func (m *RawMsgTimeout) Reset()         { *m = RawMsgTimeout{} }
func (m *RawMsgTimeout) String() string { return m.Signer }
func (*RawMsgTimeout) ProtoMessage()    {}

func (m *RawMsgTimeout) Marshal() ([]byte, error) {
	var b []byte
	if m.Packet != nil {
		eb, err := m.Packet.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 1, eb)
	}
	b = ibctypes.AppendBytesField(b, 2, m.Proof)
	if m.ProofHeight != nil {
		eb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 3, eb)
	}
	b = ibctypes.AppendUint64Field(b, 4, m.NextSequenceRecv)
	b = ibctypes.AppendStringField(b, 5, m.Signer)
	return b, nil
}

func (m *RawMsgTimeout) Unmarshal(data []byte) error {
	*m = RawMsgTimeout{}
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
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawPacket
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Packet = &v
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Proof = append([]byte(nil), v...)
		case 3:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v ibctypes.RawHeight
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ProofHeight = &v
		case 4:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.NextSequenceRecv = v
		case 5:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Signer = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// MsgTimeoutToRaw converts a MsgTimeout to its wire form.
func MsgTimeoutToRaw(m MsgTimeout) *RawMsgTimeout {
	return &RawMsgTimeout{
		Packet:           PacketToRaw(m.Packet),
		Proof:            m.Proof,
		ProofHeight:      m.ProofHeight.ToRaw(),
		NextSequenceRecv: m.NextSequenceRecv,
		Signer:           m.Signer,
	}
}

// MsgTimeoutFromRaw converts a wire-form MsgTimeout back to the domain
// type.
func MsgTimeoutFromRaw(raw *RawMsgTimeout) MsgTimeout {
	if raw == nil {
		return MsgTimeout{}
	}
	return MsgTimeout{
		Packet:           PacketFromRaw(raw.Packet),
		Proof:            exported.Proof(raw.Proof),
		ProofHeight:      ibctypes.HeightFromRaw(raw.ProofHeight),
		NextSequenceRecv: raw.NextSequenceRecv,
		Signer:           raw.Signer,
	}
}

// RawMsgTimeoutOnClose is MsgTimeoutOnClose's wire form.
type RawMsgTimeoutOnClose struct {
	Packet           *RawPacket
	Proof            []byte
	ProofClose       []byte
	ProofHeight      *ibctypes.RawHeight
	NextSequenceRecv uint64
	Signer           string
}

func (m *RawMsgTimeoutOnClose) Reset()         { *m = RawMsgTimeoutOnClose{} }
func (m *RawMsgTimeoutOnClose) String() string { return m.Signer }
func (*RawMsgTimeoutOnClose) ProtoMessage()    {}

func (m *RawMsgTimeoutOnClose) Marshal() ([]byte, error) {
	var b []byte
	if m.Packet != nil {
		eb, err := m.Packet.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 1, eb)
	}
	b = ibctypes.AppendBytesField(b, 2, m.Proof)
	b = ibctypes.AppendBytesField(b, 3, m.ProofClose)
	if m.ProofHeight != nil {
		eb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 4, eb)
	}
	b = ibctypes.AppendUint64Field(b, 5, m.NextSequenceRecv)
	b = ibctypes.AppendStringField(b, 6, m.Signer)
	return b, nil
}

func (m *RawMsgTimeoutOnClose) Unmarshal(data []byte) error {
	*m = RawMsgTimeoutOnClose{}
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
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawPacket
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Packet = &v
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Proof = append([]byte(nil), v...)
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofClose = append([]byte(nil), v...)
		case 4:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v ibctypes.RawHeight
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ProofHeight = &v
		case 5:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.NextSequenceRecv = v
		case 6:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Signer = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// MsgTimeoutOnCloseToRaw converts a MsgTimeoutOnClose to its wire form.
func MsgTimeoutOnCloseToRaw(m MsgTimeoutOnClose) *RawMsgTimeoutOnClose {
	return &RawMsgTimeoutOnClose{
		Packet:           PacketToRaw(m.Packet),
		Proof:            m.Proof,
		ProofClose:       m.ProofClose,
		ProofHeight:      m.ProofHeight.ToRaw(),
		NextSequenceRecv: m.NextSequenceRecv,
		Signer:           m.Signer,
	}
}

// MsgTimeoutOnCloseFromRaw converts a wire-form MsgTimeoutOnClose back to
// the domain type.
func MsgTimeoutOnCloseFromRaw(raw *RawMsgTimeoutOnClose) MsgTimeoutOnClose {
	if raw == nil {
		return MsgTimeoutOnClose{}
	}
	return MsgTimeoutOnClose{
		Packet:           PacketFromRaw(raw.Packet),
		Proof:            exported.Proof(raw.Proof),
		ProofClose:       exported.Proof(raw.ProofClose),
		ProofHeight:      ibctypes.HeightFromRaw(raw.ProofHeight),
		NextSequenceRecv: raw.NextSequenceRecv,
		Signer:           raw.Signer,
	}
}
