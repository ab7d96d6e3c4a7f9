package types

import (
	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// RawMsgConnectionOpenAck is MsgConnectionOpenAck's wire form.
type RawMsgConnectionOpenAck struct {
	ConnectionId             string
	CounterpartyConnectionId string
	ClientState              *clienttypes.RawClientState
	Version                  *RawVersion
	ProofHeight              *ibctypes.RawHeight
	ProofTry                 []byte
	ProofClient              []byte
	ProofConsensus           []byte
	ConsensusHeight          *ibctypes.RawHeight
	Signer                   string
}

func (m *RawMsgConnectionOpenAck) Reset()         { *m = RawMsgConnectionOpenAck{} }
func (m *RawMsgConnectionOpenAck) String() string { return "RawMsgConnectionOpenAck" }
func (*RawMsgConnectionOpenAck) ProtoMessage()    {}

func (m *RawMsgConnectionOpenAck) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.ConnectionId)
	b = ibctypes.AppendStringField(b, 2, m.CounterpartyConnectionId)
	if m.ClientState != nil {
		eb, err := m.ClientState.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 3, eb)
	}
	if m.Version != nil {
		eb, err := m.Version.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 4, eb)
	}
	if m.ProofHeight != nil {
		hb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 5, hb)
	}
	b = ibctypes.AppendBytesField(b, 6, m.ProofTry)
	b = ibctypes.AppendBytesField(b, 7, m.ProofClient)
	b = ibctypes.AppendBytesField(b, 8, m.ProofConsensus)
	if m.ConsensusHeight != nil {
		hb, err := m.ConsensusHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 9, hb)
	}
	b = ibctypes.AppendStringField(b, 10, m.Signer)
	return b, nil
}

func (m *RawMsgConnectionOpenAck) Unmarshal(data []byte) error {
	*m = RawMsgConnectionOpenAck{}
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
			m.ConnectionId = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.CounterpartyConnectionId = string(v)
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
			var v RawVersion
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Version = &v
		case 5:
			hb, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(hb); err != nil {
				return err
			}
			m.ProofHeight = &h
		case 6:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofTry = append([]byte(nil), v...)
		case 7:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofClient = append([]byte(nil), v...)
		case 8:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofConsensus = append([]byte(nil), v...)
		case 9:
			hb, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(hb); err != nil {
				return err
			}
			m.ConsensusHeight = &h
		case 10:
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

// ToRaw converts MsgConnectionOpenAck to its wire form.
func (m MsgConnectionOpenAck) ToRaw() (*RawMsgConnectionOpenAck, error) {
	cs, err := clienttypes.ClientStateToRaw(m.ClientState)
	if err != nil {
		return nil, err
	}
	return &RawMsgConnectionOpenAck{
		ConnectionId:             string(m.ConnectionId),
		CounterpartyConnectionId: string(m.CounterpartyConnectionId),
		ClientState:              cs,
		Version:                  versionToRaw(m.Version),
		ProofHeight:              m.ProofHeight.ToRaw(),
		ProofTry:                 m.ProofTry,
		ProofClient:              m.ProofClient,
		ProofConsensus:           m.ProofConsensus,
		ConsensusHeight:          m.ConsensusHeight.ToRaw(),
		Signer:                   m.Signer,
	}, nil
}

// MsgConnectionOpenAckFromRaw decodes a RawMsgConnectionOpenAck.
func MsgConnectionOpenAckFromRaw(raw *RawMsgConnectionOpenAck) (MsgConnectionOpenAck, error) {
	cs, err := clienttypes.ClientStateFromRaw(raw.ClientState)
	if err != nil {
		return MsgConnectionOpenAck{}, err
	}
	return MsgConnectionOpenAck{
		ConnectionId:             ibctypes.ConnectionId(raw.ConnectionId),
		CounterpartyConnectionId: ibctypes.ConnectionId(raw.CounterpartyConnectionId),
		ClientState:              cs,
		Version:                  versionFromRaw(raw.Version),
		ProofHeight:              ibctypes.HeightFromRaw(raw.ProofHeight),
		ProofTry:                 exported.Proof(raw.ProofTry),
		ProofClient:              exported.Proof(raw.ProofClient),
		ProofConsensus:           exported.Proof(raw.ProofConsensus),
		ConsensusHeight:          ibctypes.HeightFromRaw(raw.ConsensusHeight),
		Signer:                   raw.Signer,
	}, nil
}

// RawMsgConnectionOpenConfirm is MsgConnectionOpenConfirm's wire form.
type RawMsgConnectionOpenConfirm struct {
	ConnectionId string
	ProofHeight  *ibctypes.RawHeight
	ProofAck     []byte
	Signer       string
}

func (m *RawMsgConnectionOpenConfirm) Reset()         { *m = RawMsgConnectionOpenConfirm{} }
func (m *RawMsgConnectionOpenConfirm) String() string { return "RawMsgConnectionOpenConfirm" }
func (*RawMsgConnectionOpenConfirm) ProtoMessage()    {}

func (m *RawMsgConnectionOpenConfirm) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.ConnectionId)
	if m.ProofHeight != nil {
		hb, err := m.ProofHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 2, hb)
	}
	b = ibctypes.AppendBytesField(b, 3, m.ProofAck)
	b = ibctypes.AppendStringField(b, 4, m.Signer)
	return b, nil
}

func (m *RawMsgConnectionOpenConfirm) Unmarshal(data []byte) error {
	*m = RawMsgConnectionOpenConfirm{}
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
			m.ConnectionId = string(v)
		case 2:
			hb, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(hb); err != nil {
				return err
			}
			m.ProofHeight = &h
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.ProofAck = append([]byte(nil), v...)
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

// ToRaw converts MsgConnectionOpenConfirm to its wire form.
func (m MsgConnectionOpenConfirm) ToRaw() *RawMsgConnectionOpenConfirm {
	return &RawMsgConnectionOpenConfirm{
		ConnectionId: string(m.ConnectionId),
		ProofHeight:  m.ProofHeight.ToRaw(),
		ProofAck:     m.ProofAck,
		Signer:       m.Signer,
	}
}

// MsgConnectionOpenConfirmFromRaw decodes a RawMsgConnectionOpenConfirm.
func MsgConnectionOpenConfirmFromRaw(raw *RawMsgConnectionOpenConfirm) MsgConnectionOpenConfirm {
	return MsgConnectionOpenConfirm{
		ConnectionId: ibctypes.ConnectionId(raw.ConnectionId),
		ProofHeight:  ibctypes.HeightFromRaw(raw.ProofHeight),
		ProofAck:     exported.Proof(raw.ProofAck),
		Signer:       raw.Signer,
	}
}
