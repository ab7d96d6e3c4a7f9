package types

import (
	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// RawMsgConnectionOpenInit is MsgConnectionOpenInit's wire form.
type RawMsgConnectionOpenInit struct {
	ClientId     string
	Counterparty *RawCounterparty
	Version      *RawVersion
	DelayPeriod  uint64
	Signer       string
}

func (m *RawMsgConnectionOpenInit) Reset()         { *m = RawMsgConnectionOpenInit{} }
func (m *RawMsgConnectionOpenInit) String() string { return "RawMsgConnectionOpenInit" }
func (*RawMsgConnectionOpenInit) ProtoMessage()    {}

func (m *RawMsgConnectionOpenInit) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.ClientId)
	if m.Counterparty != nil {
		eb, err := m.Counterparty.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 2, eb)
	}
	if m.Version != nil {
		eb, err := m.Version.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 3, eb)
	}
	b = ibctypes.AppendUint64Field(b, 4, m.DelayPeriod)
	b = ibctypes.AppendStringField(b, 5, m.Signer)
	return b, nil
}

func (m *RawMsgConnectionOpenInit) Unmarshal(data []byte) error {
	*m = RawMsgConnectionOpenInit{}
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
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawCounterparty
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Counterparty = &v
		case 3:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawVersion
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Version = &v
		case 4:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.DelayPeriod = v
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

// ToRaw converts MsgConnectionOpenInit to its wire form.
func (m MsgConnectionOpenInit) ToRaw() *RawMsgConnectionOpenInit {
	raw := &RawMsgConnectionOpenInit{
		ClientId:     string(m.ClientId),
		Counterparty: counterpartyToRaw(m.Counterparty),
		DelayPeriod:  m.DelayPeriod,
		Signer:       m.Signer,
	}
	if m.Version.Identifier != "" {
		raw.Version = versionToRaw(m.Version)
	}
	return raw
}

// MsgConnectionOpenInitFromRaw decodes a RawMsgConnectionOpenInit.
func MsgConnectionOpenInitFromRaw(raw *RawMsgConnectionOpenInit) (MsgConnectionOpenInit, error) {
	if raw.ClientId == "" {
		return MsgConnectionOpenInit{}, ibctypes.MissingFieldError("MsgConnectionOpenInit", "client_id")
	}
	return MsgConnectionOpenInit{
		ClientId:     ibctypes.ClientId(raw.ClientId),
		Counterparty: counterpartyFromRaw(raw.Counterparty),
		Version:      versionFromRaw(raw.Version),
		DelayPeriod:  raw.DelayPeriod,
		Signer:       raw.Signer,
	}, nil
}

// RawMsgConnectionOpenTry is MsgConnectionOpenTry's wire form.
type RawMsgConnectionOpenTry struct {
	PreviousConnectionId string
	ClientId             string
	ClientState          *clienttypes.RawClientState
	Counterparty         *RawCounterparty
	DelayPeriod          uint64
	CounterpartyVersions []*RawVersion
	ProofHeight          *ibctypes.RawHeight
	ProofInit            []byte
	ProofClient          []byte
	ProofConsensus       []byte
	ConsensusHeight      *ibctypes.RawHeight
	Signer               string
}

func (m *RawMsgConnectionOpenTry) Reset()         { *m = RawMsgConnectionOpenTry{} }
func (m *RawMsgConnectionOpenTry) String() string { return "RawMsgConnectionOpenTry" }
func (*RawMsgConnectionOpenTry) ProtoMessage()    {}

func (m *RawMsgConnectionOpenTry) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.PreviousConnectionId)
	b = ibctypes.AppendStringField(b, 2, m.ClientId)
	if m.ClientState != nil {
		eb, err := m.ClientState.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 3, eb)
	}
	if m.Counterparty != nil {
		eb, err := m.Counterparty.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 4, eb)
	}
	b = ibctypes.AppendUint64Field(b, 5, m.DelayPeriod)
	for _, v := range m.CounterpartyVersions {
		eb, err := v.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 6, eb)
	}
	if m.ProofHeight != nil {
		hb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 7, hb)
	}
	b = ibctypes.AppendBytesField(b, 8, m.ProofInit)
	b = ibctypes.AppendBytesField(b, 9, m.ProofClient)
	b = ibctypes.AppendBytesField(b, 10, m.ProofConsensus)
	if m.ConsensusHeight != nil {
		hb, err := m.ConsensusHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 11, hb)
	}
	b = ibctypes.AppendStringField(b, 12, m.Signer)
	return b, nil
}

func (m *RawMsgConnectionOpenTry) Unmarshal(data []byte) error {
	*m = RawMsgConnectionOpenTry{}
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
			m.PreviousConnectionId = string(v)
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
			var v clienttypes.RawClientState
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ClientState = &v
		case 4:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawCounterparty
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Counterparty = &v
		case 5:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.DelayPeriod = v
		case 6:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawVersion
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.CounterpartyVersions = append(m.CounterpartyVersions, &v)
		case 7:
			hb, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(hb); err != nil {
				return err
			}
			m.ProofHeight = &h
		case 8:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofInit = append([]byte(nil), v...)
		case 9:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofClient = append([]byte(nil), v...)
		case 10:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofConsensus = append([]byte(nil), v...)
		case 11:
			hb, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(hb); err != nil {
				return err
			}
			m.ConsensusHeight = &h
		case 12:
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

// ToRaw converts MsgConnectionOpenTry to its wire form.
func (m MsgConnectionOpenTry) ToRaw() (*RawMsgConnectionOpenTry, error) {
	cs, err := clienttypes.ClientStateToRaw(m.ClientState)
	if err != nil {
		return nil, err
	}
	versions := make([]*RawVersion, len(m.CounterpartyVersions))
	for i, v := range m.CounterpartyVersions {
		versions[i] = versionToRaw(v)
	}
	return &RawMsgConnectionOpenTry{
		PreviousConnectionId: string(m.PreviousConnectionId),
		ClientId:             string(m.ClientId),
		ClientState:          cs,
		Counterparty:         counterpartyToRaw(m.Counterparty),
		DelayPeriod:          m.DelayPeriod,
		CounterpartyVersions: versions,
		ProofHeight:          m.ProofHeight.ToRaw(),
		ProofInit:            m.ProofInit,
		ProofClient:          m.ProofClient,
		ProofConsensus:       m.ProofConsensus,
		ConsensusHeight:      m.ConsensusHeight.ToRaw(),
		Signer:               m.Signer,
	}, nil
}

// MsgConnectionOpenTryFromRaw decodes a RawMsgConnectionOpenTry.
func MsgConnectionOpenTryFromRaw(raw *RawMsgConnectionOpenTry) (MsgConnectionOpenTry, error) {
	cs, err := clienttypes.ClientStateFromRaw(raw.ClientState)
	if err != nil {
		return MsgConnectionOpenTry{}, err
	}
	versions := make([]Version, len(raw.CounterpartyVersions))
	for i, v := range raw.CounterpartyVersions {
		versions[i] = versionFromRaw(v)
	}
	return MsgConnectionOpenTry{
		PreviousConnectionId: ibctypes.ConnectionId(raw.PreviousConnectionId),
		ClientId:             ibctypes.ClientId(raw.ClientId),
		ClientState:          cs,
		Counterparty:         counterpartyFromRaw(raw.Counterparty),
		DelayPeriod:          raw.DelayPeriod,
		CounterpartyVersions: versions,
		ProofHeight:          ibctypes.HeightFromRaw(raw.ProofHeight),
		ProofInit:            exported.Proof(raw.ProofInit),
		ProofClient:          exported.Proof(raw.ProofClient),
		ProofConsensus:       exported.Proof(raw.ProofConsensus),
		ConsensusHeight:      ibctypes.HeightFromRaw(raw.ConsensusHeight),
		Signer:               raw.Signer,
	}, nil
}
