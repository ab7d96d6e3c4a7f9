package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/x/ibccore/types"
)

func TestTimestampCheckExpiry(t *testing.T) {
	require.Equal(t, types.NotExpired, types.NoTimestamp.CheckExpiry(1000))

	ts := types.Timestamp(500)
	require.Equal(t, types.NotExpired, ts.CheckExpiry(100))
	require.Equal(t, types.Expired, ts.CheckExpiry(500))
	require.Equal(t, types.Expired, ts.CheckExpiry(600))
}
