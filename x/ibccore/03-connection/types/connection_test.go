package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/x/ibccore/03-connection/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
)

func TestPickVersion(t *testing.T) {
	requireT := require.New(t)
	supported := []types.Version{types.DefaultVersion()}

	picked, err := types.PickVersion([]types.Version{types.DefaultVersion()}, supported)
	requireT.NoError(err)
	requireT.Equal(types.DefaultVersion(), picked)

	// first match in proposal order wins
	proposed := []types.Version{
		{Identifier: "2"},
		types.DefaultVersion(),
	}
	picked, err = types.PickVersion(proposed, supported)
	requireT.NoError(err)
	requireT.Equal(types.DefaultVersion(), picked)

	_, err = types.PickVersion([]types.Version{{Identifier: "999"}}, supported)
	requireT.ErrorIs(err, types.ErrNoCommonVersion)

	// features must match as a set, order-independent
	reordered := types.Version{
		Identifier: "1",
		Features:   []string{"ORDER_UNORDERED", "ORDER_ORDERED"},
	}
	picked, err = types.PickVersion([]types.Version{reordered}, supported)
	requireT.NoError(err)
	requireT.Equal(reordered, picked)
}

func TestValidateVersion(t *testing.T) {
	requireT := require.New(t)
	requireT.NoError(types.ValidateVersion(types.DefaultVersion()))
	requireT.Error(types.ValidateVersion(types.Version{Identifier: ""}))
	// a string of only whitespace is treated as empty
	requireT.Error(types.ValidateVersion(types.Version{Identifier: " "}))
}

func TestConnectionEndExpected(t *testing.T) {
	requireT := require.New(t)
	end := types.ConnectionEnd{
		State:    types.Init,
		ClientId: "09-mock-0",
		Counterparty: types.Counterparty{
			ClientId: "09-mock-1",
		},
		Versions: []types.Version{types.DefaultVersion()},
	}

	expected := end.Expected("connection-5", exported.Prefix{KeyPrefix: []byte("ibc")}, types.TryOpen)
	requireT.Equal(types.TryOpen, expected.State)
	requireT.Equal(end.Counterparty.ClientId, expected.ClientId)
	requireT.Equal(end.ClientId, expected.Counterparty.ClientId)
	requireT.EqualValues("connection-5", expected.Counterparty.ConnectionId)
}
