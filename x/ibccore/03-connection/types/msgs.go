package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Type URLs identify the four handshake steps for the routing
// dispatcher (spec.md §4.1).
const (
	MsgConnectionOpenInitTypeURL    = "/ibccore.connection.v1.MsgConnectionOpenInit"
	MsgConnectionOpenTryTypeURL     = "/ibccore.connection.v1.MsgConnectionOpenTry"
	MsgConnectionOpenAckTypeURL     = "/ibccore.connection.v1.MsgConnectionOpenAck"
	MsgConnectionOpenConfirmTypeURL = "/ibccore.connection.v1.MsgConnectionOpenConfirm"
)

// MsgConnectionOpenInit starts a connection handshake from this chain's
// side (spec.md §4.3 step Init).
type MsgConnectionOpenInit struct {
	ClientId     ibctypes.ClientId
	Counterparty Counterparty
	Version      Version // zero value means "propose DefaultVersion()"
	DelayPeriod  uint64
	Signer       string
}

func (MsgConnectionOpenInit) TypeURL() string { return MsgConnectionOpenInitTypeURL }

func (m MsgConnectionOpenInit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if _, err := ibctypes.NewClientId(string(m.ClientId)); err != nil {
		return err
	}
	if _, err := ibctypes.NewClientId(string(m.Counterparty.ClientId)); err != nil {
		return err
	}
	return nil
}

// MsgConnectionOpenTry is the counterparty's response to Init,
// carrying proof that this chain's Init end exists (spec.md §4.3 step
// Try). PreviousConnectionId is empty unless reopening an existing
// TryOpen-capable end.
type MsgConnectionOpenTry struct {
	PreviousConnectionId ibctypes.ConnectionId
	ClientId             ibctypes.ClientId
	ClientState          exported.ClientState // counterparty's self client state
	Counterparty         Counterparty
	DelayPeriod          uint64
	CounterpartyVersions []Version
	ProofHeight          ibctypes.Height
	ProofInit            exported.Proof
	ProofClient          exported.Proof
	ProofConsensus       exported.Proof
	ConsensusHeight      ibctypes.Height
	Signer               string
}

func (MsgConnectionOpenTry) TypeURL() string { return MsgConnectionOpenTryTypeURL }

func (m MsgConnectionOpenTry) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if _, err := ibctypes.NewClientId(string(m.ClientId)); err != nil {
		return err
	}
	if m.ClientState == nil {
		return ibctypes.MissingFieldError("MsgConnectionOpenTry", "client_state")
	}
	if len(m.ProofInit) == 0 {
		return ibctypes.MissingFieldError("MsgConnectionOpenTry", "proof_init")
	}
	if len(m.CounterpartyVersions) == 0 {
		return ibctypes.MissingFieldError("MsgConnectionOpenTry", "counterparty_versions")
	}
	return nil
}

// MsgConnectionOpenAck carries proof that the counterparty moved to
// TryOpen, and the agreed version (spec.md §4.3 step Ack).
type MsgConnectionOpenAck struct {
	ConnectionId             ibctypes.ConnectionId
	CounterpartyConnectionId ibctypes.ConnectionId
	ClientState              exported.ClientState
	Version                  Version
	ProofHeight              ibctypes.Height
	ProofTry                 exported.Proof
	ProofClient              exported.Proof
	ProofConsensus           exported.Proof
	ConsensusHeight          ibctypes.Height
	Signer                   string
}

func (MsgConnectionOpenAck) TypeURL() string { return MsgConnectionOpenAckTypeURL }

func (m MsgConnectionOpenAck) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if _, err := ibctypes.NewConnectionId(string(m.ConnectionId)); err != nil {
		return err
	}
	if _, err := ibctypes.NewConnectionId(string(m.CounterpartyConnectionId)); err != nil {
		return err
	}
	if m.ClientState == nil {
		return ibctypes.MissingFieldError("MsgConnectionOpenAck", "client_state")
	}
	if len(m.ProofTry) == 0 {
		return ibctypes.MissingFieldError("MsgConnectionOpenAck", "proof_try")
	}
	if err := ValidateVersion(m.Version); err != nil {
		return err
	}
	return nil
}

// MsgConnectionOpenConfirm carries proof that the counterparty
// finished moving to Open (spec.md §4.3 step Confirm).
type MsgConnectionOpenConfirm struct {
	ConnectionId ibctypes.ConnectionId
	ProofHeight  ibctypes.Height
	ProofAck     exported.Proof
	Signer       string
}

func (MsgConnectionOpenConfirm) TypeURL() string { return MsgConnectionOpenConfirmTypeURL }

func (m MsgConnectionOpenConfirm) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if _, err := ibctypes.NewConnectionId(string(m.ConnectionId)); err != nil {
		return err
	}
	if len(m.ProofAck) == 0 {
		return ibctypes.MissingFieldError("MsgConnectionOpenConfirm", "proof_ack")
	}
	return nil
}
