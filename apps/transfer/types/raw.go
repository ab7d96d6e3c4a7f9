package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// RawCoin is the wire form of the transferred token, amount carried as
// a decimal string the way the SDK's own Coin encodes it.
type RawCoin struct {
	Denom  string
	Amount string
}

func (m *RawCoin) Reset()         { *m = RawCoin{} }
func (m *RawCoin) String() string { return m.Amount + m.Denom }
func (*RawCoin) ProtoMessage()    {}

func (m *RawCoin) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.Denom)
	b = ibctypes.AppendStringField(b, 2, m.Amount)
	return b, nil
}

func (m *RawCoin) Unmarshal(data []byte) error {
	*m = RawCoin{}
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
			m.Denom = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Amount = string(v)
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// RawMsgTransfer is MsgTransfer's wire form.
type RawMsgTransfer struct {
	SourcePort       string
	SourceChannel    string
	Token            *RawCoin
	Sender           string
	Receiver         string
	TimeoutHeight    *ibctypes.RawHeight
	TimeoutTimestamp uint64
}

func (m *RawMsgTransfer) Reset()         { *m = RawMsgTransfer{} }
func (m *RawMsgTransfer) String() string { return "RawMsgTransfer" }
func (*RawMsgTransfer) ProtoMessage()    {}

func (m *RawMsgTransfer) Marshal() ([]byte, error) {
	var b []byte
	b = ibctypes.AppendStringField(b, 1, m.SourcePort)
	b = ibctypes.AppendStringField(b, 2, m.SourceChannel)
	if m.Token != nil {
		tb, err := m.Token.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 3, tb)
	}
	b = ibctypes.AppendStringField(b, 4, m.Sender)
	b = ibctypes.AppendStringField(b, 5, m.Receiver)
	if m.TimeoutHeight != nil {
		hb, err := m.TimeoutHeight.Marshal()
		if err != nil {
			return nil, err
		}
		b = ibctypes.AppendMessageField(b, 6, hb)
	}
	b = ibctypes.AppendUint64Field(b, 7, m.TimeoutTimestamp)
	return b, nil
}

func (m *RawMsgTransfer) Unmarshal(data []byte) error {
	*m = RawMsgTransfer{}
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
			m.SourcePort = string(v)
		case 2:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.SourceChannel = string(v)
		case 3:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			var coin RawCoin
			if err := coin.Unmarshal(v); err != nil {
				return err
			}
			m.Token = &coin
		case 4:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Sender = string(v)
		case 5:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			m.Receiver = string(v)
		case 6:
			v, err := it.Bytes()
			if err != nil {
				return err
			}
			var h ibctypes.RawHeight
			if err := h.Unmarshal(v); err != nil {
				return err
			}
			m.TimeoutHeight = &h
		case 7:
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

// ToRaw converts m to its wire form.
func (m MsgTransfer) ToRaw() *RawMsgTransfer {
	return &RawMsgTransfer{
		SourcePort:       string(m.SourcePort),
		SourceChannel:    string(m.SourceChannel),
		Token:            &RawCoin{Denom: m.Token.Denom, Amount: m.Token.Amount.String()},
		Sender:           m.Sender,
		Receiver:         m.Receiver,
		TimeoutHeight:    m.TimeoutHeight.ToRaw(),
		TimeoutTimestamp: uint64(m.TimeoutTimestamp),
	}
}

// MsgTransferFromRaw converts a wire-form transfer back to the domain
// type. The token is a required field (spec.md §6: optional on the
// wire, required by the domain).
func MsgTransferFromRaw(raw *RawMsgTransfer) (MsgTransfer, error) {
	if raw.Token == nil {
		return MsgTransfer{}, ibctypes.MissingFieldError("MsgTransfer", "token")
	}
	amount, ok := sdkmath.NewIntFromString(raw.Token.Amount)
	if !ok {
		return MsgTransfer{}, ErrInvalidAmount.Wrapf("amount %q", raw.Token.Amount)
	}
	return MsgTransfer{
		SourcePort:       ibctypes.PortId(raw.SourcePort),
		SourceChannel:    ibctypes.ChannelId(raw.SourceChannel),
		Token:            sdk.Coin{Denom: raw.Token.Denom, Amount: amount},
		Sender:           raw.Sender,
		Receiver:         raw.Receiver,
		TimeoutHeight:    ibctypes.HeightFromRaw(raw.TimeoutHeight),
		TimeoutTimestamp: ibctypes.Timestamp(raw.TimeoutTimestamp),
	}, nil
}
