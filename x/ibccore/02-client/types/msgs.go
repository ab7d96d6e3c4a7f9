package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Type URLs identify the envelope kind for the routing dispatcher
// (spec.md §4.1, §6). These follow the same "/pkg.v1.MsgName" shape
// ibc-go's own generated types use.
const (
	MsgCreateClientTypeURL = "/ibccore.client.v1.MsgCreateClient"
	MsgUpdateClientTypeURL = "/ibccore.client.v1.MsgUpdateClient"
)

// MsgCreateClient is the domain envelope for CreateClient (spec.md §4.2).
type MsgCreateClient struct {
	ClientType     ibctypes.ClientType
	ClientState    exported.ClientState
	ConsensusState exported.ConsensusState
	Signer         string
}

// TypeURL implements the routing envelope contract.
func (MsgCreateClient) TypeURL() string { return MsgCreateClientTypeURL }

// ValidateBasic checks that the two states agree on ClientType and that
// the signer is a well-formed address, mirroring the bech32-validation
// idiom in x/pse/types/msg.go's ValidateBasic.
func (m MsgCreateClient) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if m.ClientState == nil || m.ConsensusState == nil {
		return ibctypes.MissingFieldError("MsgCreateClient", "client_state or consensus_state")
	}
	if m.ClientState.ClientType() != m.ConsensusState.ClientType() {
		return ErrRawTypesMismatch
	}
	return nil
}

// MsgUpdateClient is the domain envelope for UpdateClient.
type MsgUpdateClient struct {
	ClientId ibctypes.ClientId
	Header   exported.Header
	Signer   string
}

// TypeURL implements the routing envelope contract.
func (MsgUpdateClient) TypeURL() string { return MsgUpdateClientTypeURL }

// ValidateBasic checks the client id and signer are well formed.
func (m MsgUpdateClient) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if _, err := ibctypes.NewClientId(string(m.ClientId)); err != nil {
		return err
	}
	if m.Header == nil {
		return ibctypes.MissingFieldError("MsgUpdateClient", "header")
	}
	return nil
}
