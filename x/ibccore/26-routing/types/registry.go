package types

import (
	transfertypes "github.com/tokenize-x/ibc-core/apps/transfer/types"
	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	connectiontypes "github.com/tokenize-x/ibc-core/x/ibccore/03-connection/types"
	channeltypes "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
)

// DecodeFunc turns one message kind's wire bytes into its decoded
// Envelope. Every registered entry pairs a type_url with the Raw*
// struct and *FromRaw conversion its own layer already defines.
type DecodeFunc func(data []byte) (Envelope, error)

// decoders is the type_url -> decode-function registry a relayer or
// test harness uses to turn opaque (type_url, bytes) envelopes off the
// wire into the typed messages Dispatch/Deliver accept.
var decoders = map[string]DecodeFunc{
	clienttypes.MsgCreateClientTypeURL: func(data []byte) (Envelope, error) {
		raw := new(clienttypes.RawMsgCreateClient)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return clienttypes.MsgCreateClientFromRaw(raw)
	},
	clienttypes.MsgUpdateClientTypeURL: func(data []byte) (Envelope, error) {
		raw := new(clienttypes.RawMsgUpdateClient)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return clienttypes.MsgUpdateClientFromRaw(raw)
	},
	connectiontypes.MsgConnectionOpenInitTypeURL: func(data []byte) (Envelope, error) {
		raw := new(connectiontypes.RawMsgConnectionOpenInit)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return connectiontypes.MsgConnectionOpenInitFromRaw(raw)
	},
	connectiontypes.MsgConnectionOpenTryTypeURL: func(data []byte) (Envelope, error) {
		raw := new(connectiontypes.RawMsgConnectionOpenTry)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return connectiontypes.MsgConnectionOpenTryFromRaw(raw)
	},
	connectiontypes.MsgConnectionOpenAckTypeURL: func(data []byte) (Envelope, error) {
		raw := new(connectiontypes.RawMsgConnectionOpenAck)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return connectiontypes.MsgConnectionOpenAckFromRaw(raw)
	},
	connectiontypes.MsgConnectionOpenConfirmTypeURL: func(data []byte) (Envelope, error) {
		raw := new(connectiontypes.RawMsgConnectionOpenConfirm)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return connectiontypes.MsgConnectionOpenConfirmFromRaw(raw), nil
	},
	channeltypes.MsgChannelOpenInitTypeURL: func(data []byte) (Envelope, error) {
		raw := new(channeltypes.RawMsgChannelOpenInit)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return channeltypes.MsgChannelOpenInitFromRaw(raw), nil
	},
	channeltypes.MsgChannelOpenTryTypeURL: func(data []byte) (Envelope, error) {
		raw := new(channeltypes.RawMsgChannelOpenTry)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return channeltypes.MsgChannelOpenTryFromRaw(raw), nil
	},
	channeltypes.MsgChannelOpenAckTypeURL: func(data []byte) (Envelope, error) {
		raw := new(channeltypes.RawMsgChannelOpenAck)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return channeltypes.MsgChannelOpenAckFromRaw(raw), nil
	},
	channeltypes.MsgChannelOpenConfirmTypeURL: func(data []byte) (Envelope, error) {
		raw := new(channeltypes.RawMsgChannelOpenConfirm)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return channeltypes.MsgChannelOpenConfirmFromRaw(raw), nil
	},
	channeltypes.MsgChannelCloseInitTypeURL: func(data []byte) (Envelope, error) {
		raw := new(channeltypes.RawMsgChannelCloseInit)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return channeltypes.MsgChannelCloseInitFromRaw(raw), nil
	},
	channeltypes.MsgChannelCloseConfirmTypeURL: func(data []byte) (Envelope, error) {
		raw := new(channeltypes.RawMsgChannelCloseConfirm)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return channeltypes.MsgChannelCloseConfirmFromRaw(raw), nil
	},
	channeltypes.MsgRecvPacketTypeURL: func(data []byte) (Envelope, error) {
		raw := new(channeltypes.RawMsgRecvPacket)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return channeltypes.MsgRecvPacketFromRaw(raw), nil
	},
	channeltypes.MsgAcknowledgementTypeURL: func(data []byte) (Envelope, error) {
		raw := new(channeltypes.RawMsgAcknowledgement)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return channeltypes.MsgAcknowledgementFromRaw(raw), nil
	},
	channeltypes.MsgTimeoutTypeURL: func(data []byte) (Envelope, error) {
		raw := new(channeltypes.RawMsgTimeout)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return channeltypes.MsgTimeoutFromRaw(raw), nil
	},
	channeltypes.MsgTimeoutOnCloseTypeURL: func(data []byte) (Envelope, error) {
		raw := new(channeltypes.RawMsgTimeoutOnClose)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return channeltypes.MsgTimeoutOnCloseFromRaw(raw), nil
	},
	transfertypes.MsgTransferTypeURL: func(data []byte) (Envelope, error) {
		raw := new(transfertypes.RawMsgTransfer)
		if err := raw.Unmarshal(data); err != nil {
			return nil, err
		}
		return transfertypes.MsgTransferFromRaw(raw)
	},
}

// Decode looks up typeURL's registered decoder and applies it to data.
func Decode(typeURL string, data []byte) (Envelope, error) {
	fn, ok := decoders[typeURL]
	if !ok {
		return nil, ErrUnknownTypeURL.Wrap(typeURL)
	}
	return fn(data)
}
