// Package keeper implements the fungible-token-transfer application
// module: the IBCModule leaf the channel packet dispatcher invokes,
// minting vouchers for every token arriving from a counterparty chain,
// escrowing coins when they leave, and releasing escrow back to the
// sender on a failed acknowledgement or a timeout.
package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/apps/transfer/types"
	channeltypes "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Keeper binds a port to the transfer module's bank-moving logic.
type Keeper struct {
	bankKeeper    types.BankKeeper
	channelKeeper types.ChannelKeeper
	portKeeper    types.PortKeeper
	portId        ibctypes.PortId
}

// NewKeeper builds a Keeper bound to portId (types.ModuleName unless
// the host rebinds it).
func NewKeeper(bankKeeper types.BankKeeper, channelKeeper types.ChannelKeeper, portKeeper types.PortKeeper, portId ibctypes.PortId) Keeper {
	return Keeper{
		bankKeeper:    bankKeeper,
		channelKeeper: channelKeeper,
		portKeeper:    portKeeper,
		portId:        portId,
	}
}

// SendTransfer escrows msg.Token from the sender and sends a packet
// carrying a FungibleTokenPacketData describing the transfer.
func (k Keeper) SendTransfer(ctx context.Context, msg types.MsgTransfer) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return err
	}

	cap, ok := k.portKeeper.LookupCapability(ctx, msg.SourcePort)
	if !ok {
		return channeltypes.ErrInvalidPortCapability
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, sdk.NewCoins(msg.Token)); err != nil {
		return err
	}

	data := types.FungibleTokenPacketData{
		Denom:    msg.Token.Denom,
		Amount:   msg.Token.Amount.String(),
		Sender:   msg.Sender,
		Receiver: msg.Receiver,
	}
	encoded, err := data.Marshal()
	if err != nil {
		return err
	}

	sequence, err := k.channelKeeper.NextSendSequence(ctx, msg.SourcePort, msg.SourceChannel)
	if err != nil {
		return err
	}
	end, err := k.channelKeeper.GetChannel(ctx, msg.SourcePort, msg.SourceChannel)
	if err != nil {
		return err
	}

	packet := channeltypes.Packet{
		Sequence:           sequence,
		SourcePort:         msg.SourcePort,
		SourceChannel:      msg.SourceChannel,
		DestinationPort:    end.Counterparty.PortId,
		DestinationChannel: end.Counterparty.ChannelId,
		Data:               encoded,
		TimeoutHeight:      msg.TimeoutHeight,
		TimeoutTimestamp:   msg.TimeoutTimestamp,
	}
	return k.channelKeeper.SendPacket(ctx, cap, packet)
}

// OnChanOpenInit implements channeltypes.IBCModule.
func (k Keeper) OnChanOpenInit(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId, counterpartyVersion string) (string, error) {
	if counterpartyVersion != "" && counterpartyVersion != types.Version {
		return "", types.ErrInvalidVersion
	}
	return types.Version, nil
}

// OnChanOpenTry implements channeltypes.IBCModule.
func (k Keeper) OnChanOpenTry(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId, counterpartyVersion string) (string, error) {
	if counterpartyVersion != types.Version {
		return "", types.ErrInvalidVersion
	}
	return types.Version, nil
}

// OnChanOpenAck implements channeltypes.IBCModule.
func (k Keeper) OnChanOpenAck(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId, counterpartyVersion string) error {
	if counterpartyVersion != types.Version {
		return types.ErrInvalidVersion
	}
	return nil
}

// OnChanOpenConfirm implements channeltypes.IBCModule.
func (k Keeper) OnChanOpenConfirm(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId) error {
	return nil
}

// OnChanCloseInit implements channeltypes.IBCModule.
func (k Keeper) OnChanCloseInit(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId) error {
	return nil
}

// OnChanCloseConfirm implements channeltypes.IBCModule.
func (k Keeper) OnChanCloseConfirm(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId) error {
	return nil
}

// OnRecvPacket implements channeltypes.IBCModule: it mints a voucher
// for every incoming token, including this chain's own token coming
// back home (escrowed coins are not released on receipt), and always returns an acknowledgement rather than an
// error — a malformed or unpayable transfer acks failure so the
// sending chain can see it, it never aborts packet receipt.
func (k Keeper) OnRecvPacket(ctx context.Context, packet channeltypes.Packet) ([]byte, error) {
	data, err := types.UnmarshalPacketData(packet.Data)
	if err != nil {
		return types.NewErrorAcknowledgement(err), nil
	}
	if err := data.Validate(); err != nil {
		return types.NewErrorAcknowledgement(err), nil
	}
	receiver, err := sdk.AccAddressFromBech32(data.Receiver)
	if err != nil {
		return types.NewErrorAcknowledgement(err), nil
	}
	amount, ok := sdkmath.NewIntFromString(data.Amount)
	if !ok {
		return types.NewErrorAcknowledgement(fmt.Errorf("invalid amount %q", data.Amount)), nil
	}

	voucherDenom := types.VoucherDenom(string(packet.DestinationPort), string(packet.DestinationChannel), data.Denom)
	coin := sdk.NewCoin(voucherDenom, amount)

	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(coin)); err != nil {
		return types.NewErrorAcknowledgement(err), nil
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiver, sdk.NewCoins(coin)); err != nil {
		return types.NewErrorAcknowledgement(err), nil
	}
	return types.NewSuccessAcknowledgement(), nil
}

// OnAcknowledgementPacket implements channeltypes.IBCModule: a failure
// acknowledgement refunds the sender's escrowed tokens.
func (k Keeper) OnAcknowledgementPacket(ctx context.Context, packet channeltypes.Packet, acknowledgement []byte) error {
	if types.IsSuccessAcknowledgement(acknowledgement) {
		return nil
	}
	return k.refund(ctx, packet)
}

// OnTimeoutPacket implements channeltypes.IBCModule: a packet that
// never arrived refunds the sender the same way a failure
// acknowledgement does.
func (k Keeper) OnTimeoutPacket(ctx context.Context, packet channeltypes.Packet) error {
	return k.refund(ctx, packet)
}

func (k Keeper) refund(ctx context.Context, packet channeltypes.Packet) error {
	data, err := types.UnmarshalPacketData(packet.Data)
	if err != nil {
		return err
	}
	sender, err := sdk.AccAddressFromBech32(data.Sender)
	if err != nil {
		return err
	}
	amount, ok := sdkmath.NewIntFromString(data.Amount)
	if !ok {
		return fmt.Errorf("invalid amount %q", data.Amount)
	}
	coin := sdk.NewCoin(data.Denom, amount)
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sender, sdk.NewCoins(coin))
}
