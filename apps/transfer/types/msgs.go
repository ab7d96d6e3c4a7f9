package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"

	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// MsgTransferTypeURL identifies the transfer envelope for a router
// that also accepts application-layer messages alongside the core
// handshake/packet ones.
const MsgTransferTypeURL = "/ibccore.apps.transfer.v1.MsgTransfer"

// MsgTransfer requests that amount of a token be sent over a channel
// to a receiver on the counterparty chain.
type MsgTransfer struct {
	SourcePort       ibctypes.PortId
	SourceChannel    ibctypes.ChannelId
	Token            sdk.Coin
	Sender           string
	Receiver         string
	TimeoutHeight    ibctypes.Height
	TimeoutTimestamp ibctypes.Timestamp
}

func (MsgTransfer) TypeURL() string { return MsgTransferTypeURL }

func (m MsgTransfer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	if m.Receiver == "" {
		return ErrInvalidPacketData.Wrap("missing receiver")
	}
	if _, err := ibctypes.NewPortId(string(m.SourcePort)); err != nil {
		return err
	}
	if _, err := ibctypes.NewChannelId(string(m.SourceChannel)); err != nil {
		return err
	}
	if !m.Token.IsValid() || !m.Token.IsPositive() {
		return ErrInvalidAmount
	}
	if m.TimeoutHeight.IsZero() && m.TimeoutTimestamp.IsZero() {
		return ibctypes.MissingFieldError("MsgTransfer", "timeout_height or timeout_timestamp")
	}
	return nil
}
