package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// BankKeeper is the slice of the host's token ledger the transfer
// module depends on to mint/burn and move coins as packets arrive and
// resolve.
type BankKeeper interface {
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// ChannelKeeper is the slice of the channel subsystem the transfer
// module depends on to send packets over its bound port.
type ChannelKeeper interface {
	SendPacket(ctx context.Context, cap channeltypes.Capability, packet channeltypes.Packet) error
	GetChannel(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId) (channeltypes.ChannelEnd, error)
	NextSendSequence(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId) (uint64, error)
}

// PortKeeper is the slice of the host's capability store the transfer
// module depends on to authenticate its own send calls.
type PortKeeper interface {
	LookupCapability(ctx context.Context, portId ibctypes.PortId) (channeltypes.Capability, bool)
}
