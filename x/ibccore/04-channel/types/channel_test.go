package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

func TestValidateVersion(t *testing.T) {
	requireT := require.New(t)
	requireT.NoError(types.ValidateVersion("ics20-1"))
	requireT.ErrorIs(types.ValidateVersion(""), types.ErrInvalidChannelVersion)
	// a string of only whitespace is treated as empty
	requireT.ErrorIs(types.ValidateVersion(" "), types.ErrInvalidChannelVersion)
}

func TestValidateConnectionHops(t *testing.T) {
	requireT := require.New(t)
	requireT.NoError(types.ValidateConnectionHops([]ibctypes.ConnectionId{"connection-0"}))
	requireT.ErrorIs(types.ValidateConnectionHops(nil), types.ErrInvalidConnectionHops)
	// multi-hop channels are reserved, not supported
	requireT.ErrorIs(
		types.ValidateConnectionHops([]ibctypes.ConnectionId{"connection-0", "connection-1"}),
		types.ErrInvalidConnectionHops,
	)
}

func TestCommitPacketDeterministic(t *testing.T) {
	requireT := require.New(t)
	packet := types.Packet{
		Sequence:         1,
		Data:             []byte{0x01, 0x02},
		TimeoutHeight:    ibctypes.NewHeight(0, 6),
		TimeoutTimestamp: ibctypes.Timestamp(77),
	}

	first := types.CommitPacket(identityHasher{}, packet)
	second := types.CommitPacket(identityHasher{}, packet)
	requireT.Equal(first, second)

	// the commitment binds the timeout fields and the data
	changed := packet
	changed.TimeoutHeight = ibctypes.NewHeight(0, 7)
	requireT.NotEqual(first, types.CommitPacket(identityHasher{}, changed))

	changed = packet
	changed.Data = []byte{0x01, 0x03}
	requireT.NotEqual(first, types.CommitPacket(identityHasher{}, changed))
}

func TestChannelEndExpected(t *testing.T) {
	requireT := require.New(t)
	end := types.ChannelEnd{
		State:    types.Init,
		Ordering: types.OrderedOrdering,
		Counterparty: types.Counterparty{
			PortId: "transfer",
		},
		ConnectionHops: []ibctypes.ConnectionId{"connection-0"},
		Version:        types.DefaultVersion,
	}

	expected := end.Expected("transfer", "channel-3", "connection-9", types.TryOpen, "ics20-1")
	requireT.Equal(types.TryOpen, expected.State)
	requireT.Equal(types.OrderedOrdering, expected.Ordering)
	requireT.EqualValues("channel-3", expected.Counterparty.ChannelId)
	requireT.EqualValues("connection-9", expected.ConnectionId())
}

// identityHasher keeps commitment bytes readable in failure output.
type identityHasher struct{}

func (identityHasher) Hash(data []byte) []byte { return append([]byte(nil), data...) }
