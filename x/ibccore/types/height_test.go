package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/x/ibccore/types"
)

func TestHeightCompare(t *testing.T) {
	h1 := types.NewHeight(0, 1)
	h2 := types.NewHeight(0, 2)
	h3 := types.NewHeight(1, 0)

	require.True(t, h1.LT(h2))
	require.True(t, h2.GT(h1))
	require.True(t, h2.LT(h3))
	require.True(t, h1.EQ(types.NewHeight(0, 1)))
	require.True(t, types.ZeroHeight().IsZero())
	require.False(t, h1.IsZero())
}

func TestHeightIncrement(t *testing.T) {
	h := types.NewHeight(3, 5)
	require.Equal(t, types.NewHeight(3, 6), h.Increment())
}

func TestHeightRawRoundTrip(t *testing.T) {
	h := types.NewHeight(2, 17)
	raw := h.ToRaw()
	encoded, err := raw.Marshal()
	require.NoError(t, err)

	var decoded types.RawHeight
	require.NoError(t, decoded.Unmarshal(encoded))
	require.Equal(t, h, types.HeightFromRaw(&decoded))
}

func TestHeightFromNilRaw(t *testing.T) {
	require.True(t, types.HeightFromRaw(nil).IsZero())
}
