package types

import (
	"context"

	clienttypes "github.com/tokenize-x/ibc-core/x/ibccore/02-client/types"
	connectiontypes "github.com/tokenize-x/ibc-core/x/ibccore/03-connection/types"
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// ClientKeeper is the slice of the client subsystem the channel
// handshake and packet lifecycle depend on (spec.md §4.4, §4.5),
// the same expected-keeper shape 03-connection/types declares.
type ClientKeeper interface {
	GetClientRecord(ctx context.Context, clientId ibctypes.ClientId) (clienttypes.ClientRecord, error)
	GetConsensusStateAt(ctx context.Context, clientId ibctypes.ClientId, height ibctypes.Height) (exported.ConsensusState, error)
	VerifierFor(clientType ibctypes.ClientType) (exported.Verifier, error)
}

// ConnectionKeeper is the slice of the connection subsystem the
// channel layer depends on: every channel handshake and packet step
// first loads the connection a channel's single hop names (spec.md
// §3 invariant 4).
type ConnectionKeeper interface {
	GetConnection(ctx context.Context, connectionId ibctypes.ConnectionId) (connectiontypes.ConnectionEnd, error)
}

// IBCModule is the application-layer leaf the packet dispatcher
// invokes (spec.md §4.1 "the application layer ... is invoked as a
// leaf from the packet dispatcher"; SPEC_FULL.md §3 supplement). A
// reference fungible-token-transfer implementation lives in
// apps/transfer; this interface is "the shape of its hooks" spec.md
// §1 keeps in scope even though ICS-20's own logic is out of scope.
type IBCModule interface {
	OnChanOpenInit(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId, counterpartyVersion string) (string, error)
	OnChanOpenTry(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId, counterpartyVersion string) (string, error)
	OnChanOpenAck(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId, counterpartyVersion string) error
	OnChanOpenConfirm(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId) error
	OnChanCloseInit(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId) error
	OnChanCloseConfirm(ctx context.Context, portId ibctypes.PortId, channelId ibctypes.ChannelId) error

	OnRecvPacket(ctx context.Context, packet Packet) ([]byte, error)
	OnAcknowledgementPacket(ctx context.Context, packet Packet, acknowledgement []byte) error
	OnTimeoutPacket(ctx context.Context, packet Packet) error
}
