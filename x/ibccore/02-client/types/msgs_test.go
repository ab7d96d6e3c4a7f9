package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/mock"
	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/tendermint"
	"github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

var signer = sdk.AccAddress([]byte("client-msgs-signer00")).String()

func TestMsgCreateClientValidateBasic(t *testing.T) {
	requireT := require.New(t)

	valid := types.MsgCreateClient{
		ClientType:     ibctypes.ClientTypeMock,
		ClientState:    mock.NewClientState(ibctypes.NewHeight(0, 1)),
		ConsensusState: mock.NewConsensusState(ibctypes.Timestamp(1), []byte("root")),
		Signer:         signer,
	}
	requireT.NoError(valid.ValidateBasic())

	// client state from one scheme, consensus state from another
	mismatched := valid
	mismatched.ConsensusState = tendermint.NewConsensusState(ibctypes.Timestamp(1), []byte("root"), nil)
	requireT.ErrorIs(mismatched.ValidateBasic(), types.ErrRawTypesMismatch)

	missing := valid
	missing.ConsensusState = nil
	requireT.ErrorIs(missing.ValidateBasic(), ibctypes.ErrMissingField)

	badSigner := valid
	badSigner.Signer = "not-bech32"
	requireT.Error(badSigner.ValidateBasic())
}

func TestMsgUpdateClientValidateBasic(t *testing.T) {
	requireT := require.New(t)

	valid := types.MsgUpdateClient{
		ClientId: ibctypes.ClientId("09-mock-0"),
		Header:   mock.Header{HeightVal: ibctypes.NewHeight(0, 2)},
		Signer:   signer,
	}
	requireT.NoError(valid.ValidateBasic())

	badId := valid
	badId.ClientId = "x"
	requireT.ErrorIs(badId.ValidateBasic(), ibctypes.ErrIdentifier)

	missingHeader := valid
	missingHeader.Header = nil
	requireT.ErrorIs(missingHeader.ValidateBasic(), ibctypes.ErrMissingField)
}
