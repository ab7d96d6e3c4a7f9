package types

import (
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// RawVersion is Version's wire form.
type RawVersion struct {
	Identifier string
	Features   []string
}

func (m *RawVersion) Reset()         { *m = RawVersion{} }
func (m *RawVersion) String() string { return m.Identifier }
func (*RawVersion) ProtoMessage()    {}

func (m *RawVersion) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.Identifier)
	for _, f := range m.Features {
		b = ibctypes.AppendStringField(b, 2, f)
	}
	return b, nil
}

func (m *RawVersion) Unmarshal(data []byte) error {
	*m = RawVersion{}
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
			m.Identifier = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Features = append(m.Features, string(v))
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

func versionToRaw(v Version) *RawVersion {
	return &RawVersion{Identifier: v.Identifier, Features: v.Features}
}

func versionFromRaw(raw *RawVersion) Version {
	if raw == nil {
		return Version{}
	}
	return Version{Identifier: raw.Identifier, Features: raw.Features}
}

// RawCounterparty is Counterparty's wire form.
type RawCounterparty struct {
	ClientId     string
	ConnectionId string
	Prefix       []byte
}

func (m *RawCounterparty) Reset()         { *m = RawCounterparty{} }
func (m *RawCounterparty) String() string { return m.ClientId }
func (*RawCounterparty) ProtoMessage()    {}

func (m *RawCounterparty) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.ClientId)
	b = ibctypes.AppendStringField(b, 2, m.ConnectionId)
	b = ibctypes.AppendBytesField(b, 3, m.Prefix)
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
			m.ClientId = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ConnectionId = string(v)
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Prefix = append([]byte(nil), v...)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

func counterpartyToRaw(c Counterparty) *RawCounterparty {
	return &RawCounterparty{
		ClientId:     string(c.ClientId),
		ConnectionId: string(c.ConnectionId),
		Prefix:       c.Prefix.KeyPrefix,
	}
}

func counterpartyFromRaw(raw *RawCounterparty) Counterparty {
	if raw == nil {
		return Counterparty{}
	}
	return Counterparty{
		ClientId:     ibctypes.ClientId(raw.ClientId),
		ConnectionId: ibctypes.ConnectionId(raw.ConnectionId),
		Prefix:       exported.Prefix{KeyPrefix: raw.Prefix},
	}
}

// RawConnectionEnd is ConnectionEnd's wire form, the value the keeper
// persists under each ConnectionId.
type RawConnectionEnd struct {
	State        uint32
	ClientId     string
	Counterparty *RawCounterparty
	Versions     []*RawVersion
	DelayPeriod  uint64
}

func (m *RawConnectionEnd) Reset()         { *m = RawConnectionEnd{} }
func (m *RawConnectionEnd) String() string { return m.ClientId }
func (*RawConnectionEnd) ProtoMessage()    {}

func (m *RawConnectionEnd) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendUint64Field(b, 1, uint64(m.State))
	b = ibctypes.AppendStringField(b, 2, m.ClientId)
	if m.Counterparty != nil {
		eb, err := m.Counterparty.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 3, eb)
	}
	for _, v := range m.Versions {
		eb, err := v.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 4, eb)
	}
	b = ibctypes.AppendUint64Field(b, 5, m.DelayPeriod)
	return b, nil
}

func (m *RawConnectionEnd) Unmarshal(data []byte) error {
	*m = RawConnectionEnd{}
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
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ClientId = string(v)
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
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawVersion
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Versions = append(m.Versions, &v)
		case 5:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.DelayPeriod = v
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ConnectionEndToRaw converts a ConnectionEnd to its wire form.
func ConnectionEndToRaw(c ConnectionEnd) *RawConnectionEnd {
	versions := make([]*RawVersion, len(c.Versions))
	for i, v := range c.Versions {
		versions[i] = versionToRaw(v)
	}
	return &RawConnectionEnd{
		State:        uint32(c.State),
		ClientId:     string(c.ClientId),
		Counterparty: counterpartyToRaw(c.Counterparty),
		Versions:     versions,
		DelayPeriod:  c.DelayPeriod,
	}
}

// ConnectionEndFromRaw converts a wire-form ConnectionEnd back to the
// domain type.
func ConnectionEndFromRaw(raw *RawConnectionEnd) ConnectionEnd {
	if raw == nil {
		return ConnectionEnd{}
	}
	versions := make([]Version, len(raw.Versions))
	for i, v := range raw.Versions {
		versions[i] = versionFromRaw(v)
	}
	return ConnectionEnd{
		State:        State(raw.State),
		ClientId:     ibctypes.ClientId(raw.ClientId),
		Counterparty: counterpartyFromRaw(raw.Counterparty),
		Versions:     versions,
		DelayPeriod:  raw.DelayPeriod,
	}
}
