package types

import (
	"fmt"

	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/mock"
	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/tendermint"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// RawClientState is the closed-union wire form of exported.ClientState:
// exactly one of Tendermint/Mock is set, per design notes §9 ("represent
// the universe of client states ... as a closed tagged variant where
// each arm embeds its scheme's state").
type RawClientState struct {
	Tendermint *tendermint.RawClientState
	Mock       *mock.RawClientState
}

func (m *RawClientState) Reset()         { *m = RawClientState{} }
func (m *RawClientState) String() string { return fmt.Sprintf("RawClientState{%v,%v}", m.Tendermint, m.Mock) }
func (*RawClientState) ProtoMessage()    {}

func (m *RawClientState) Marshal() ([]byte, error) {
	var b []byte
	if m.Tendermint != nil {
		eb, err := m.Tendermint.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 1, eb)
	}
	if m.Mock != nil {
		eb, err := m.Mock.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 2, eb)
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
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v tendermint.RawClientState
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Tendermint = &v
		case 2:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v mock.RawClientState
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Mock = &v
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ClientStateToRaw downcasts cs to its concrete scheme and encodes it
// into the closed union.
func ClientStateToRaw(cs exported.ClientState) (*RawClientState, error) {
	switch v := cs.(type) {
	case tendermint.ClientState:
		return &RawClientState{Tendermint: v.ToRaw()}, nil
	case mock.ClientState:
		return &RawClientState{Mock: v.ToRaw()}, nil
	default:
		return nil, fmt.Errorf("ibccore: unrecognised client state type %T", cs)
	}
}

// ClientStateFromRaw dispatches on whichever arm of the union is set
// and reconstructs the concrete scheme's domain type.
func ClientStateFromRaw(raw *RawClientState) (exported.ClientState, error) {
	switch {
	case raw == nil:
		return nil, ibctypes.MissingFieldError("ClientState", "client_state")
	case raw.Tendermint != nil:
		return tendermint.ClientStateFromRaw(raw.Tendermint), nil
	case raw.Mock != nil:
		return mock.FromRaw(raw.Mock), nil
	default:
		return nil, ErrInvalidClientType
	}
}

// RawConsensusState is the closed-union wire form of exported.ConsensusState.
type RawConsensusState struct {
	Tendermint *tendermint.RawConsensusState
	Mock       *mock.RawConsensusState
}

func (m *RawConsensusState) Reset()         { *m = RawConsensusState{} }
func (m *RawConsensusState) String() string { return fmt.Sprintf("RawConsensusState{%v,%v}", m.Tendermint, m.Mock) }
func (*RawConsensusState) ProtoMessage()    {}

func (m *RawConsensusState) Marshal() ([]byte, error) {
	var b []byte
	if m.Tendermint != nil {
		eb, err := m.Tendermint.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 1, eb)
	}
	if m.Mock != nil {
		eb, err := m.Mock.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 2, eb)
	}
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
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v tendermint.RawConsensusState
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Tendermint = &v
		case 2:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v mock.RawConsensusState
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Mock = &v
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ConsensusStateToRaw downcasts cs to its concrete scheme.
func ConsensusStateToRaw(cs exported.ConsensusState) (*RawConsensusState, error) {
	switch v := cs.(type) {
	case tendermint.ConsensusState:
		return &RawConsensusState{Tendermint: v.ToRaw()}, nil
	case mock.ConsensusState:
		return &RawConsensusState{Mock: v.ToRaw()}, nil
	default:
		return nil, fmt.Errorf("ibccore: unrecognised consensus state type %T", cs)
	}
}

// ConsensusStateFromRaw dispatches on whichever arm of the union is set.
func ConsensusStateFromRaw(raw *RawConsensusState) (exported.ConsensusState, error) {
	switch {
	case raw == nil:
		return nil, ibctypes.MissingFieldError("ConsensusState", "consensus_state")
	case raw.Tendermint != nil:
		return tendermint.ConsensusStateFromRaw(raw.Tendermint), nil
	case raw.Mock != nil:
		return mock.ConsensusStateFromRaw(raw.Mock), nil
	default:
		return nil, ErrInvalidClientType
	}
}

// RawHeader is the closed-union wire form of exported.Header.
type RawHeader struct {
	Tendermint *tendermint.RawHeader
	Mock       *mock.RawHeader
}

func (m *RawHeader) Reset()         { *m = RawHeader{} }
func (m *RawHeader) String() string { return fmt.Sprintf("RawHeader{%v,%v}", m.Tendermint, m.Mock) }
func (*RawHeader) ProtoMessage()    {}

func (m *RawHeader) Marshal() ([]byte, error) {
	var b []byte
	if m.Tendermint != nil {
		eb, err := m.Tendermint.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 1, eb)
	}
	if m.Mock != nil {
		eb, err := m.Mock.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 2, eb)
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
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v tendermint.RawHeader
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Tendermint = &v
		case 2:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v mock.RawHeader
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Mock = &v
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// HeaderToRaw downcasts h to its concrete scheme.
func HeaderToRaw(h exported.Header) (*RawHeader, error) {
	switch v := h.(type) {
	case tendermint.Header:
		return &RawHeader{Tendermint: v.ToRaw()}, nil
	case mock.Header:
		return &RawHeader{Mock: v.ToRaw()}, nil
	default:
		return nil, fmt.Errorf("ibccore: unrecognised header type %T", h)
	}
}

// HeaderFromRaw dispatches on whichever arm of the union is set.
func HeaderFromRaw(raw *RawHeader) (exported.Header, error) {
	switch {
	case raw == nil:
		return nil, ibctypes.MissingFieldError("Header", "header")
	case raw.Tendermint != nil:
		return tendermint.HeaderFromRaw(raw.Tendermint), nil
	case raw.Mock != nil:
		return mock.HeaderFromRaw(raw.Mock), nil
	default:
		return nil, ErrInvalidClientType
	}
}

// RawMsgCreateClient is MsgCreateClient's wire form.
type RawMsgCreateClient struct {
	ClientState    *RawClientState
	ConsensusState *RawConsensusState
	Signer         string
}

func (m *RawMsgCreateClient) Reset()         { *m = RawMsgCreateClient{} }
func (m *RawMsgCreateClient) String() string { return "RawMsgCreateClient" }
func (*RawMsgCreateClient) ProtoMessage()    {}

func (m *RawMsgCreateClient) Marshal() ([]byte, error) {
	var b []byte
	if m.ClientState != nil {
		eb, err := m.ClientState.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 1, eb)
	}
	if m.ConsensusState != nil {
		eb, err := m.ConsensusState.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 2, eb)
	}
	b = ibctypes.AppendStringField(b, 3, m.Signer)
	return b, nil
}

func (m *RawMsgCreateClient) Unmarshal(data []byte) error {
	*m = RawMsgCreateClient{}
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
			var v RawClientState
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ClientState = &v
		case 2:
			eb, err := it.Bytes()
			if err != nil {
				return err
			}
			var v RawConsensusState
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.ConsensusState = &v
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

// ToRaw converts MsgCreateClient to its wire form.
func (m MsgCreateClient) ToRaw() (*RawMsgCreateClient, error) {
	cs, err := ClientStateToRaw(m.ClientState)
	if err != nil {
		return nil, err
	}
	consensus, err := ConsensusStateToRaw(m.ConsensusState)
	if err != nil {
		return nil, err
	}
	return &RawMsgCreateClient{ClientState: cs, ConsensusState: consensus, Signer: m.Signer}, nil
}

// MsgCreateClientFromRaw decodes a RawMsgCreateClient into its domain
// form. The two states' required-but-optional-on-the-wire fields
// (spec.md §6) surface as ErrMissingField via ClientStateFromRaw /
// ConsensusStateFromRaw.
func MsgCreateClientFromRaw(raw *RawMsgCreateClient) (MsgCreateClient, error) {
	cs, err := ClientStateFromRaw(raw.ClientState)
	if err != nil {
		return MsgCreateClient{}, err
	}
	consensus, err := ConsensusStateFromRaw(raw.ConsensusState)
	if err != nil {
		return MsgCreateClient{}, err
	}
	return MsgCreateClient{
		ClientType:     cs.ClientType(),
		ClientState:    cs,
		ConsensusState: consensus,
		Signer:         raw.Signer,
	}, nil
}

// RawMsgUpdateClient is MsgUpdateClient's wire form.
type RawMsgUpdateClient struct {
	ClientId string
	Header   *RawHeader
	Signer   string
}

func (m *RawMsgUpdateClient) Reset()         { *m = RawMsgUpdateClient{} }
func (m *RawMsgUpdateClient) String() string { return "RawMsgUpdateClient" }
func (*RawMsgUpdateClient) ProtoMessage()    {}

func (m *RawMsgUpdateClient) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.ClientId)
	if m.Header != nil {
		eb, err := m.Header.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 2, eb)
	}
	b = ibctypes.AppendStringField(b, 3, m.Signer)
	return b, nil
}

func (m *RawMsgUpdateClient) Unmarshal(data []byte) error {
	*m = RawMsgUpdateClient{}
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
			var v RawHeader
			if err := v.Unmarshal(eb); err != nil {
				return err
			}
			m.Header = &v
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

// ToRaw converts MsgUpdateClient to its wire form.
func (m MsgUpdateClient) ToRaw() (*RawMsgUpdateClient, error) {
	header, err := HeaderToRaw(m.Header)
	if err != nil {
		return nil, err
	}
	return &RawMsgUpdateClient{ClientId: string(m.ClientId), Header: header, Signer: m.Signer}, nil
}

// MsgUpdateClientFromRaw decodes a RawMsgUpdateClient into its domain
// form.
func MsgUpdateClientFromRaw(raw *RawMsgUpdateClient) (MsgUpdateClient, error) {
	if raw.ClientId == "" {
		return MsgUpdateClient{}, ibctypes.MissingFieldError("MsgUpdateClient", "client_id")
	}
	header, err := HeaderFromRaw(raw.Header)
	if err != nil {
		return MsgUpdateClient{}, err
	}
	return MsgUpdateClient{ClientId: ibctypes.ClientId(raw.ClientId), Header: header, Signer: raw.Signer}, nil
}
