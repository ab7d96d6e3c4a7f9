package ibctesting

import (
	"context"

	channeltypes "github.com/tokenize-x/ibc-core/x/ibccore/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// Module is a recording channeltypes.IBCModule: every callback
// succeeds, OnRecvPacket acks with Ack, and the counters let a test
// assert which hooks fired.
type Module struct {
	Ack []byte

	RecvCount    int
	AckCount     int
	TimeoutCount int
}

var _ channeltypes.IBCModule = (*Module)(nil)

// NewModule returns a Module acking with ack.
func NewModule(ack []byte) *Module {
	return &Module{Ack: ack}
}

func (m *Module) OnChanOpenInit(_ context.Context, _ ibctypes.PortId, _ ibctypes.ChannelId, counterpartyVersion string) (string, error) {
	return counterpartyVersion, nil
}

func (m *Module) OnChanOpenTry(_ context.Context, _ ibctypes.PortId, _ ibctypes.ChannelId, counterpartyVersion string) (string, error) {
	return counterpartyVersion, nil
}

func (m *Module) OnChanOpenAck(context.Context, ibctypes.PortId, ibctypes.ChannelId, string) error {
	return nil
}

func (m *Module) OnChanOpenConfirm(context.Context, ibctypes.PortId, ibctypes.ChannelId) error {
	return nil
}

func (m *Module) OnChanCloseInit(context.Context, ibctypes.PortId, ibctypes.ChannelId) error {
	return nil
}

func (m *Module) OnChanCloseConfirm(context.Context, ibctypes.PortId, ibctypes.ChannelId) error {
	return nil
}

func (m *Module) OnRecvPacket(context.Context, channeltypes.Packet) ([]byte, error) {
	m.RecvCount++
	return m.Ack, nil
}

func (m *Module) OnAcknowledgementPacket(context.Context, channeltypes.Packet, []byte) error {
	m.AckCount++
	return nil
}

func (m *Module) OnTimeoutPacket(context.Context, channeltypes.Packet) error {
	m.TimeoutCount++
	return nil
}
