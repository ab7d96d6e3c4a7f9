package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/x/ibccore/types"
)

func TestNewClientIdValidation(t *testing.T) {
	_, err := types.NewClientId("short")
	require.Error(t, err)

	_, err = types.NewClientId("07-tendermint-0")
	require.NoError(t, err)

	_, err = types.NewClientId("07-tendermint-0!!")
	require.Error(t, err)
}

func TestFormatClientId(t *testing.T) {
	id := types.FormatClientId(types.ClientTypeTendermint, 3)
	require.Equal(t, types.ClientId("07-tendermint-3"), id)
}

func TestNewConnectionIdValidation(t *testing.T) {
	_, err := types.NewConnectionId("x")
	require.Error(t, err)

	id, err := types.NewConnectionId("connection-0")
	require.NoError(t, err)
	require.Equal(t, types.ConnectionId("connection-0"), id)
}

func TestNewChannelIdValidation(t *testing.T) {
	_, err := types.NewChannelId("x")
	require.Error(t, err)

	id, err := types.NewChannelId("channel-0")
	require.NoError(t, err)
	require.Equal(t, types.ChannelId("channel-0"), id)
}

func TestNewPortIdValidation(t *testing.T) {
	_, err := types.NewPortId("t")
	require.Error(t, err)

	id, err := types.NewPortId("transfer")
	require.NoError(t, err)
	require.Equal(t, types.PortId("transfer"), id)
}
