package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/apps/transfer/types"
)

func TestPacketDataRoundTrip(t *testing.T) {
	requireT := require.New(t)
	data := types.FungibleTokenPacketData{
		Denom:    "utx",
		Amount:   "1000",
		Sender:   "sender",
		Receiver: "receiver",
	}

	encoded, err := data.Marshal()
	requireT.NoError(err)

	decoded, err := types.UnmarshalPacketData(encoded)
	requireT.NoError(err)
	requireT.Equal(data, decoded)
}

func TestPacketDataValidate(t *testing.T) {
	requireT := require.New(t)

	valid := types.FungibleTokenPacketData{Denom: "utx", Amount: "1", Sender: "a", Receiver: "b"}
	requireT.NoError(valid.Validate())

	tests := []struct {
		name string
		data types.FungibleTokenPacketData
	}{
		{"empty denom", types.FungibleTokenPacketData{Amount: "1", Sender: "a", Receiver: "b"}},
		{"zero amount", types.FungibleTokenPacketData{Denom: "utx", Amount: "0", Sender: "a", Receiver: "b"}},
		{"negative amount", types.FungibleTokenPacketData{Denom: "utx", Amount: "-5", Sender: "a", Receiver: "b"}},
		{"non-numeric amount", types.FungibleTokenPacketData{Denom: "utx", Amount: "many", Sender: "a", Receiver: "b"}},
		{"missing receiver", types.FungibleTokenPacketData{Denom: "utx", Amount: "1", Sender: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.data.Validate())
		})
	}
}

func TestAcknowledgements(t *testing.T) {
	requireT := require.New(t)

	success := types.NewSuccessAcknowledgement()
	requireT.True(types.IsSuccessAcknowledgement(success))

	failure := types.NewErrorAcknowledgement(types.ErrInvalidDenom)
	requireT.False(types.IsSuccessAcknowledgement(failure))

	requireT.False(types.IsSuccessAcknowledgement([]byte("not json")))
}

func TestUnmarshalPacketDataRejectsGarbage(t *testing.T) {
	_, err := types.UnmarshalPacketData([]byte("not json"))
	require.ErrorIs(t, err, types.ErrInvalidPacketData)
}

func TestVoucherDenom(t *testing.T) {
	require.Equal(t, "ibc/transfer/channel-0/utx", types.VoucherDenom("transfer", "channel-0", "utx"))
}
