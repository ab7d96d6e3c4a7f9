package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	transferkeeper "github.com/tokenize-x/ibc-core/apps/transfer/keeper"
	"github.com/tokenize-x/ibc-core/apps/transfer/types"
	"github.com/tokenize-x/ibc-core/testutil/ibctesting"
	channeltypes "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

var (
	clientHeight = ibctypes.NewHeight(0, 1)
	transferPort = ibctypes.DefaultPortId()
)

func newTransferFixture(t *testing.T) (*ibctesting.Chain, transferkeeper.Keeper, ibctypes.ChannelId) {
	t.Helper()
	chain := ibctesting.NewChain(t, nil)
	chain.Ports.Bind(transferPort)
	clientId := chain.CreateMockClient(clientHeight)
	connectionId := chain.OpenConnection(clientId, clientHeight)
	channelId := chain.OpenChannel(connectionId, transferPort, channeltypes.UnorderedOrdering, clientHeight)

	k := transferkeeper.NewKeeper(chain.Bank, chain.Channel, chain.Ports, transferPort)
	return chain, k, channelId
}

func TestSendTransferEscrowsAndCommits(t *testing.T) {
	requireT := require.New(t)
	chain, k, channelId := newTransferFixture(t)

	sender := sdk.AccAddress([]byte("transfer-sender-0000"))
	token := sdk.NewCoin("utx", sdkmath.NewInt(250))
	chain.Bank.Fund(sender, sdk.NewCoins(token))

	err := k.SendTransfer(chain.Ctx, types.MsgTransfer{
		SourcePort:    transferPort,
		SourceChannel: channelId,
		Token:         token,
		Sender:        sender.String(),
		Receiver:      ibctesting.Signer,
		TimeoutHeight: ibctypes.NewHeight(0, 6),
	})
	requireT.NoError(err)

	requireT.Equal(token, chain.Bank.BalanceOf(types.ModuleName, "utx"))
	key := channeltypes.ChannelKey(string(transferPort), string(channelId))
	_, err = chain.Channel.PacketCommitment.Get(chain.Ctx, channeltypes.MakePacketKey(key, 1))
	requireT.NoError(err)
}

func TestSendTransferInsufficientFunds(t *testing.T) {
	chain, k, channelId := newTransferFixture(t)

	sender := sdk.AccAddress([]byte("transfer-sender-0000"))
	err := k.SendTransfer(chain.Ctx, types.MsgTransfer{
		SourcePort:    transferPort,
		SourceChannel: channelId,
		Token:         sdk.NewCoin("utx", sdkmath.NewInt(250)),
		Sender:        sender.String(),
		Receiver:      ibctesting.Signer,
		TimeoutHeight: ibctypes.NewHeight(0, 6),
	})
	require.Error(t, err)
}

func TestOnRecvPacketMintsVoucher(t *testing.T) {
	requireT := require.New(t)
	chain, k, channelId := newTransferFixture(t)

	receiver := sdk.AccAddress([]byte("transfer-receiver-00"))
	data := types.FungibleTokenPacketData{
		Denom:    "uatom",
		Amount:   "40",
		Sender:   ibctesting.Signer,
		Receiver: receiver.String(),
	}
	encoded, err := data.Marshal()
	requireT.NoError(err)

	packet := channeltypes.Packet{
		Sequence:           1,
		SourcePort:         transferPort,
		SourceChannel:      ibctypes.DefaultChannelId(),
		DestinationPort:    transferPort,
		DestinationChannel: channelId,
		Data:               encoded,
	}

	ack, err := k.OnRecvPacket(chain.Ctx, packet)
	requireT.NoError(err)
	requireT.True(types.IsSuccessAcknowledgement(ack))

	voucher := types.VoucherDenom(string(transferPort), string(channelId), "uatom")
	balance := chain.Bank.GetBalance(chain.Ctx, receiver, voucher)
	requireT.Equal(sdkmath.NewInt(40), balance.Amount)
}

func TestOnRecvPacketMalformedDataAcksFailure(t *testing.T) {
	requireT := require.New(t)
	chain, k, _ := newTransferFixture(t)

	packet := channeltypes.Packet{Data: []byte("not json")}
	ack, err := k.OnRecvPacket(chain.Ctx, packet)
	requireT.NoError(err)
	requireT.False(types.IsSuccessAcknowledgement(ack))
}

func TestOnAcknowledgementPacketRefundsFailure(t *testing.T) {
	requireT := require.New(t)
	chain, k, channelId := newTransferFixture(t)

	sender := sdk.AccAddress([]byte("transfer-sender-0000"))
	token := sdk.NewCoin("utx", sdkmath.NewInt(100))
	chain.Bank.Fund(sender, sdk.NewCoins(token))

	msg := types.MsgTransfer{
		SourcePort:    transferPort,
		SourceChannel: channelId,
		Token:         token,
		Sender:        sender.String(),
		Receiver:      ibctesting.Signer,
		TimeoutHeight: ibctypes.NewHeight(0, 6),
	}
	requireT.NoError(k.SendTransfer(chain.Ctx, msg))
	requireT.True(chain.Bank.GetBalance(chain.Ctx, sender, "utx").Amount.IsZero())

	data := types.FungibleTokenPacketData{
		Denom:    "utx",
		Amount:   "100",
		Sender:   sender.String(),
		Receiver: ibctesting.Signer,
	}
	encoded, err := data.Marshal()
	requireT.NoError(err)
	packet := channeltypes.Packet{Data: encoded}

	// a success ack keeps the escrow
	requireT.NoError(k.OnAcknowledgementPacket(chain.Ctx, packet, types.NewSuccessAcknowledgement()))
	requireT.True(chain.Bank.GetBalance(chain.Ctx, sender, "utx").Amount.IsZero())

	// a failure ack refunds the sender
	failure := types.NewErrorAcknowledgement(types.ErrInvalidDenom)
	requireT.NoError(k.OnAcknowledgementPacket(chain.Ctx, packet, failure))
	requireT.Equal(sdkmath.NewInt(100), chain.Bank.GetBalance(chain.Ctx, sender, "utx").Amount)
}

func TestOnTimeoutPacketRefunds(t *testing.T) {
	requireT := require.New(t)
	chain, k, channelId := newTransferFixture(t)

	sender := sdk.AccAddress([]byte("transfer-sender-0000"))
	token := sdk.NewCoin("utx", sdkmath.NewInt(100))
	chain.Bank.Fund(sender, sdk.NewCoins(token))

	requireT.NoError(k.SendTransfer(chain.Ctx, types.MsgTransfer{
		SourcePort:    transferPort,
		SourceChannel: channelId,
		Token:         token,
		Sender:        sender.String(),
		Receiver:      ibctesting.Signer,
		TimeoutHeight: ibctypes.NewHeight(0, 6),
	}))

	data := types.FungibleTokenPacketData{
		Denom:    "utx",
		Amount:   "100",
		Sender:   sender.String(),
		Receiver: ibctesting.Signer,
	}
	encoded, err := data.Marshal()
	requireT.NoError(err)

	requireT.NoError(k.OnTimeoutPacket(chain.Ctx, channeltypes.Packet{Data: encoded}))
	requireT.Equal(sdkmath.NewInt(100), chain.Bank.GetBalance(chain.Ctx, sender, "utx").Amount)
}
