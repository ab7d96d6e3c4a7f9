package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	transfertypes "github.com/tokenize-x/ibc-core/apps/transfer/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/mock"
	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	connectiontypes "github.com/tokenize-x/ibc-core/x/ibccore/03-connection/types"
	channeltypes "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/26-routing/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

var signer = sdk.AccAddress([]byte("registry-signer-0000")).String()

func TestDecodeUnknownTypeURL(t *testing.T) {
	_, err := types.Decode("/ibccore.test.v1.MsgUnknown", nil)
	require.ErrorIs(t, err, types.ErrUnknownTypeURL)
}

func TestDecodeMalformedBytes(t *testing.T) {
	_, err := types.Decode(clienttypes.MsgCreateClientTypeURL, []byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}

func TestCreateClientRoundTrip(t *testing.T) {
	requireT := require.New(t)
	msg := clienttypes.MsgCreateClient{
		ClientType:     ibctypes.ClientTypeMock,
		ClientState:    mock.NewClientState(ibctypes.NewHeight(1, 7)),
		ConsensusState: mock.NewConsensusState(ibctypes.Timestamp(42), []byte("root")),
		Signer:         signer,
	}

	raw, err := msg.ToRaw()
	requireT.NoError(err)
	encoded, err := raw.Marshal()
	requireT.NoError(err)

	decoded, err := types.Decode(clienttypes.MsgCreateClientTypeURL, encoded)
	requireT.NoError(err)
	requireT.Equal(msg, decoded)

	// raw -> domain -> raw yields the original bytes
	reencodedRaw, err := decoded.(clienttypes.MsgCreateClient).ToRaw()
	requireT.NoError(err)
	reencoded, err := reencodedRaw.Marshal()
	requireT.NoError(err)
	requireT.Equal(encoded, reencoded)
}

func TestUpdateClientRoundTrip(t *testing.T) {
	requireT := require.New(t)
	msg := clienttypes.MsgUpdateClient{
		ClientId: ibctypes.ClientId("09-mock-3"),
		Header: mock.Header{
			HeightVal:    ibctypes.NewHeight(0, 9),
			TimestampVal: ibctypes.Timestamp(77),
			RootVal:      []byte("next-root"),
		},
		Signer: signer,
	}

	raw, err := msg.ToRaw()
	requireT.NoError(err)
	encoded, err := raw.Marshal()
	requireT.NoError(err)

	decoded, err := types.Decode(clienttypes.MsgUpdateClientTypeURL, encoded)
	requireT.NoError(err)
	requireT.Equal(msg, decoded)
}

func TestConnectionOpenAckRoundTrip(t *testing.T) {
	requireT := require.New(t)
	msg := connectiontypes.MsgConnectionOpenAck{
		ConnectionId:             ibctypes.ConnectionId("connection-3"),
		CounterpartyConnectionId: ibctypes.ConnectionId("connection-9"),
		ClientState:              mock.NewClientState(ibctypes.NewHeight(0, 5)),
		Version:                  connectiontypes.DefaultVersion(),
		ProofHeight:              ibctypes.NewHeight(0, 5),
		ProofTry:                 exported.Proof{0x01, 0x02},
		ProofClient:              exported.Proof{0x03},
		Signer:                   signer,
	}

	raw, err := msg.ToRaw()
	requireT.NoError(err)
	encoded, err := raw.Marshal()
	requireT.NoError(err)

	decoded, err := types.Decode(connectiontypes.MsgConnectionOpenAckTypeURL, encoded)
	requireT.NoError(err)
	requireT.Equal(msg, decoded)
}

func TestChannelOpenTryRoundTrip(t *testing.T) {
	requireT := require.New(t)
	msg := channeltypes.MsgChannelOpenTry{
		PortId:              ibctypes.PortId("transfer"),
		PreviousChannelId:   ibctypes.ChannelId("channel-4"),
		Ordering:            channeltypes.OrderedOrdering,
		ConnectionHops:      []ibctypes.ConnectionId{"connection-2"},
		CounterpartyVersion: channeltypes.DefaultVersion,
		Counterparty: channeltypes.Counterparty{
			PortId:    ibctypes.PortId("transfer"),
			ChannelId: ibctypes.ChannelId("channel-7"),
		},
		ProofInit:   exported.Proof{0x05},
		ProofHeight: ibctypes.NewHeight(2, 3),
		Signer:      signer,
	}

	raw := channeltypes.MsgChannelOpenTryToRaw(msg)
	encoded, err := raw.Marshal()
	requireT.NoError(err)

	decoded, err := types.Decode(channeltypes.MsgChannelOpenTryTypeURL, encoded)
	requireT.NoError(err)
	requireT.Equal(msg, decoded)
}

func TestRecvPacketRoundTrip(t *testing.T) {
	requireT := require.New(t)
	msg := channeltypes.MsgRecvPacket{
		Packet: channeltypes.Packet{
			Sequence:           11,
			SourcePort:         ibctypes.PortId("transfer"),
			SourceChannel:      ibctypes.ChannelId("channel-0"),
			DestinationPort:    ibctypes.PortId("transfer"),
			DestinationChannel: ibctypes.ChannelId("channel-1"),
			Data:               []byte{0x01, 0x02, 0x03},
			TimeoutHeight:      ibctypes.NewHeight(0, 100),
			TimeoutTimestamp:   ibctypes.Timestamp(12345),
		},
		Proof:       exported.Proof{0x09},
		ProofHeight: ibctypes.NewHeight(0, 42),
		Signer:      signer,
	}

	raw := channeltypes.MsgRecvPacketToRaw(msg)
	encoded, err := raw.Marshal()
	requireT.NoError(err)

	decoded, err := types.Decode(channeltypes.MsgRecvPacketTypeURL, encoded)
	requireT.NoError(err)
	requireT.Equal(msg, decoded)
}

func TestTransferRoundTrip(t *testing.T) {
	requireT := require.New(t)
	msg := transfertypes.MsgTransfer{
		SourcePort:       ibctypes.PortId("transfer"),
		SourceChannel:    ibctypes.ChannelId("channel-0"),
		Token:            sdk.NewCoin("utx", sdkmath.NewInt(1000)),
		Sender:           signer,
		Receiver:         signer,
		TimeoutHeight:    ibctypes.NewHeight(0, 50),
		TimeoutTimestamp: ibctypes.Timestamp(999),
	}

	encoded, err := msg.ToRaw().Marshal()
	requireT.NoError(err)

	decoded, err := types.Decode(transfertypes.MsgTransferTypeURL, encoded)
	requireT.NoError(err)
	requireT.Equal(msg, decoded)
}
