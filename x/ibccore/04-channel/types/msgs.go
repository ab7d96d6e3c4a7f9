package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Type URLs identify the channel handshake and packet envelopes for
// the routing dispatcher (spec.md §4.1, §6).
const (
	MsgChannelOpenInitTypeURL     = "/ibccore.channel.v1.MsgChannelOpenInit"
	MsgChannelOpenTryTypeURL      = "/ibccore.channel.v1.MsgChannelOpenTry"
	MsgChannelOpenAckTypeURL      = "/ibccore.channel.v1.MsgChannelOpenAck"
	MsgChannelOpenConfirmTypeURL  = "/ibccore.channel.v1.MsgChannelOpenConfirm"
	MsgChannelCloseInitTypeURL    = "/ibccore.channel.v1.MsgChannelCloseInit"
	MsgChannelCloseConfirmTypeURL = "/ibccore.channel.v1.MsgChannelCloseConfirm"

	MsgRecvPacketTypeURL      = "/ibccore.channel.v1.MsgRecvPacket"
	MsgAcknowledgementTypeURL = "/ibccore.channel.v1.MsgAcknowledgement"
	MsgTimeoutTypeURL         = "/ibccore.channel.v1.MsgTimeout"
	MsgTimeoutOnCloseTypeURL  = "/ibccore.channel.v1.MsgTimeoutOnClose"
)

func validateSignerAndPort(signer string, portId ibctypes.PortId) error {
	if _, err := sdk.AccAddressFromBech32(signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if _, err := ibctypes.NewPortId(string(portId)); err != nil {
		return err
	}
	return nil
}

// MsgChannelOpenInit starts a channel handshake from this chain's side
// (spec.md §4.4 step OpenInit).
type MsgChannelOpenInit struct {
	PortId         ibctypes.PortId
	Ordering       Ordering
	ConnectionHops []ibctypes.ConnectionId
	Version        string
	Counterparty   Counterparty
	Signer         string
}

func (MsgChannelOpenInit) TypeURL() string { return MsgChannelOpenInitTypeURL }

func (m MsgChannelOpenInit) ValidateBasic() error {
	if err := validateSignerAndPort(m.Signer, m.PortId); err != nil {
		return err
	}
	if _, err := ibctypes.NewPortId(string(m.Counterparty.PortId)); err != nil {
		return err
	}
	return ValidateConnectionHops(m.ConnectionHops)
}

// MsgChannelOpenTry is the counterparty's response to OpenInit,
// carrying proof that this chain's Init end exists (spec.md §4.4 step
// OpenTry). PreviousChannelId is empty unless reopening an existing
// Init-state end for a crossing-hellos handshake (SPEC_FULL.md §3).
type MsgChannelOpenTry struct {
	PortId              ibctypes.PortId
	PreviousChannelId   ibctypes.ChannelId
	Ordering            Ordering
	ConnectionHops      []ibctypes.ConnectionId
	CounterpartyVersion string
	Counterparty        Counterparty
	ProofInit           exported.Proof
	ProofHeight         ibctypes.Height
	Signer              string
}

func (MsgChannelOpenTry) TypeURL() string { return MsgChannelOpenTryTypeURL }

func (m MsgChannelOpenTry) ValidateBasic() error {
	if err := validateSignerAndPort(m.Signer, m.PortId); err != nil {
		return err
	}
	if _, err := ibctypes.NewPortId(string(m.Counterparty.PortId)); err != nil {
		return err
	}
	if err := ValidateConnectionHops(m.ConnectionHops); err != nil {
		return err
	}
	if len(m.ProofInit) == 0 {
		return ibctypes.MissingFieldError("MsgChannelOpenTry", "proof_init")
	}
	return nil
}

// MsgChannelOpenAck carries proof that the counterparty moved to
// TryOpen, and the version it agreed to (spec.md §4.4 step OpenAck).
type MsgChannelOpenAck struct {
	PortId                ibctypes.PortId
	ChannelId             ibctypes.ChannelId
	CounterpartyChannelId ibctypes.ChannelId
	CounterpartyVersion   string
	ProofTry              exported.Proof
	ProofHeight           ibctypes.Height
	Signer                string
}

func (MsgChannelOpenAck) TypeURL() string { return MsgChannelOpenAckTypeURL }

func (m MsgChannelOpenAck) ValidateBasic() error {
	if err := validateSignerAndPort(m.Signer, m.PortId); err != nil {
		return err
	}
	if _, err := ibctypes.NewChannelId(string(m.ChannelId)); err != nil {
		return err
	}
	if len(m.ProofTry) == 0 {
		return ibctypes.MissingFieldError("MsgChannelOpenAck", "proof_try")
	}
	return ValidateVersion(m.CounterpartyVersion)
}

// MsgChannelOpenConfirm carries proof that the counterparty finished
// moving to Open (spec.md §4.4 step OpenConfirm).
type MsgChannelOpenConfirm struct {
	PortId      ibctypes.PortId
	ChannelId   ibctypes.ChannelId
	ProofAck    exported.Proof
	ProofHeight ibctypes.Height
	Signer      string
}

func (MsgChannelOpenConfirm) TypeURL() string { return MsgChannelOpenConfirmTypeURL }

func (m MsgChannelOpenConfirm) ValidateBasic() error {
	if err := validateSignerAndPort(m.Signer, m.PortId); err != nil {
		return err
	}
	if _, err := ibctypes.NewChannelId(string(m.ChannelId)); err != nil {
		return err
	}
	if len(m.ProofAck) == 0 {
		return ibctypes.MissingFieldError("MsgChannelOpenConfirm", "proof_ack")
	}
	return nil
}

// MsgChannelCloseInit starts closing a channel from this chain's side
// (spec.md §4.4 step CloseInit). No proof required.
type MsgChannelCloseInit struct {
	PortId    ibctypes.PortId
	ChannelId ibctypes.ChannelId
	Signer    string
}

func (MsgChannelCloseInit) TypeURL() string { return MsgChannelCloseInitTypeURL }

func (m MsgChannelCloseInit) ValidateBasic() error {
	if err := validateSignerAndPort(m.Signer, m.PortId); err != nil {
		return err
	}
	_, err := ibctypes.NewChannelId(string(m.ChannelId))
	return err
}

// MsgChannelCloseConfirm carries proof that the counterparty already
// closed its end (spec.md §4.4 step CloseConfirm).
type MsgChannelCloseConfirm struct {
	PortId      ibctypes.PortId
	ChannelId   ibctypes.ChannelId
	ProofInit   exported.Proof
	ProofHeight ibctypes.Height
	Signer      string
}

func (MsgChannelCloseConfirm) TypeURL() string { return MsgChannelCloseConfirmTypeURL }

func (m MsgChannelCloseConfirm) ValidateBasic() error {
	if err := validateSignerAndPort(m.Signer, m.PortId); err != nil {
		return err
	}
	if _, err := ibctypes.NewChannelId(string(m.ChannelId)); err != nil {
		return err
	}
	if len(m.ProofInit) == 0 {
		return ibctypes.MissingFieldError("MsgChannelCloseConfirm", "proof_init")
	}
	return nil
}

// MsgRecvPacket delivers a packet plus proof of its commitment on the
// source chain (spec.md §4.5 Recv).
type MsgRecvPacket struct {
	Packet      Packet
	Proof       exported.Proof
	ProofHeight ibctypes.Height
	Signer      string
}

func (MsgRecvPacket) TypeURL() string { return MsgRecvPacketTypeURL }

func (m MsgRecvPacket) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if len(m.Proof) == 0 {
		return ibctypes.MissingFieldError("MsgRecvPacket", "proof")
	}
	return nil
}

// MsgAcknowledgement delivers ack bytes plus proof the counterparty
// stored them (spec.md §4.5 Acknowledge).
type MsgAcknowledgement struct {
	Packet          Packet
	Acknowledgement []byte
	Proof           exported.Proof
	ProofHeight     ibctypes.Height
	Signer          string
}

func (MsgAcknowledgement) TypeURL() string { return MsgAcknowledgementTypeURL }

func (m MsgAcknowledgement) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if len(m.Proof) == 0 {
		return ibctypes.MissingFieldError("MsgAcknowledgement", "proof")
	}
	if len(m.Acknowledgement) == 0 {
		return ibctypes.MissingFieldError("MsgAcknowledgement", "acknowledgement")
	}
	return nil
}

// MsgTimeout proves non-receipt of a packet by its timeout (spec.md
// §4.5 Timeout, plain variant). NextSequenceRecv is only meaningful for
// Ordered channels' VerifyNextSequenceRecv proof.
type MsgTimeout struct {
	Packet           Packet
	Proof            exported.Proof
	ProofHeight      ibctypes.Height
	NextSequenceRecv uint64
	Signer           string
}

func (MsgTimeout) TypeURL() string { return MsgTimeoutTypeURL }

func (m MsgTimeout) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if len(m.Proof) == 0 {
		return ibctypes.MissingFieldError("MsgTimeout", "proof")
	}
	return nil
}

// MsgTimeoutOnClose proves non-receipt AND that the counterparty
// channel is Closed, permitting drop regardless of timeout fields
// (spec.md §4.5 Timeout, timeout-on-close variant).
type MsgTimeoutOnClose struct {
	Packet           Packet
	Proof            exported.Proof
	ProofClose       exported.Proof
	ProofHeight      ibctypes.Height
	NextSequenceRecv uint64
	Signer           string
}

func (MsgTimeoutOnClose) TypeURL() string { return MsgTimeoutOnCloseTypeURL }

func (m MsgTimeoutOnClose) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid signer address: %s", err)
	}
	if len(m.Proof) == 0 {
		return ibctypes.MissingFieldError("MsgTimeoutOnClose", "proof")
	}
	if len(m.ProofClose) == 0 {
		return ibctypes.MissingFieldError("MsgTimeoutOnClose", "proof_close")
	}
	return nil
}
