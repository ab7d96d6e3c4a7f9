package types

import (
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// RawClientRecordHeader is the wire form of a ClientRecord's type and
// current ClientState; the keeper stores one of these per client and
// the per-height ConsensusStates in a separate collection (spec.md
// §3's ConsensusStates map flattened to a (ClientId, Height)-keyed
// collections.Map so it can grow without re-writing the whole record).
type RawClientRecordHeader struct {
	ClientType  uint32
	ClientState *RawClientState
}

func (m *RawClientRecordHeader) Reset()         { *m = RawClientRecordHeader{} }
func (m *RawClientRecordHeader) String() string { return "RawClientRecordHeader" }
func (*RawClientRecordHeader) ProtoMessage()    {}

func (m *RawClientRecordHeader) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendUint64Field(b, 1, uint64(m.ClientType))
	if m.ClientState != nil {
		eb, err := m.ClientState.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 2, eb)
	}
	return b, nil
}

func (m *RawClientRecordHeader) Unmarshal(data []byte) error {
	*m = RawClientRecordHeader{}
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
			m.ClientType = uint32(v)
		case 2:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawClientState
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ClientState = &v
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// HeaderFor builds a RawClientRecordHeader from a record's type and
// current client state.
func HeaderFor(clientType ibctypes.ClientType, clientState exported.ClientState) (*RawClientRecordHeader, error) {
	raw, err := ClientStateToRaw(clientState)
	if err != nil {
		return nil, err
	}
	return &RawClientRecordHeader{ClientType: uint32(clientType), ClientState: raw}, nil
}
