package types

import (
	"fmt"

	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// EventChannelOpenInit is emitted by ChanOpenInit.
type EventChannelOpenInit struct {
	PortId    ibctypes.PortId
	ChannelId ibctypes.ChannelId
}

func (e *EventChannelOpenInit) Reset() { *e = EventChannelOpenInit{} }
func (e *EventChannelOpenInit) String() string { return fmt.Sprintf("EventChannelOpenInit{%s/%s}", e.PortId, e.ChannelId) }
func (*EventChannelOpenInit) ProtoMessage() {}
func (*EventChannelOpenInit) XXX_MessageName() string {
	return "ibccore.channel.v1.EventChannelOpenInit"
}

// EventChannelOpenTry is emitted by ChanOpenTry.
type EventChannelOpenTry struct {
	PortId    ibctypes.PortId
	ChannelId ibctypes.ChannelId
}

func (e *EventChannelOpenTry) Reset() { *e = EventChannelOpenTry{} }
func (e *EventChannelOpenTry) String() string { return fmt.Sprintf("EventChannelOpenTry{%s/%s}", e.PortId, e.ChannelId) }
func (*EventChannelOpenTry) ProtoMessage() {}
func (*EventChannelOpenTry) XXX_MessageName() string {
	return "ibccore.channel.v1.EventChannelOpenTry"
}

// EventChannelOpenAck is emitted by ChanOpenAck.
type EventChannelOpenAck struct {
	PortId    ibctypes.PortId
	ChannelId ibctypes.ChannelId
}

func (e *EventChannelOpenAck) Reset() { *e = EventChannelOpenAck{} }
func (e *EventChannelOpenAck) String() string { return fmt.Sprintf("EventChannelOpenAck{%s/%s}", e.PortId, e.ChannelId) }
func (*EventChannelOpenAck) ProtoMessage() {}
func (*EventChannelOpenAck) XXX_MessageName() string {
	return "ibccore.channel.v1.EventChannelOpenAck"
}

// EventChannelOpenConfirm is emitted by ChanOpenConfirm.
type EventChannelOpenConfirm struct {
	PortId    ibctypes.PortId
	ChannelId ibctypes.ChannelId
}

func (e *EventChannelOpenConfirm) Reset() { *e = EventChannelOpenConfirm{} }
func (e *EventChannelOpenConfirm) String() string {
	return fmt.Sprintf("EventChannelOpenConfirm{%s/%s}", e.PortId, e.ChannelId)
}
func (*EventChannelOpenConfirm) ProtoMessage() {}
func (*EventChannelOpenConfirm) XXX_MessageName() string {
	return "ibccore.channel.v1.EventChannelOpenConfirm"
}

// EventChannelCloseInit is emitted by ChanCloseInit.
type EventChannelCloseInit struct {
	PortId    ibctypes.PortId
	ChannelId ibctypes.ChannelId
}

func (e *EventChannelCloseInit) Reset() { *e = EventChannelCloseInit{} }
func (e *EventChannelCloseInit) String() string {
	return fmt.Sprintf("EventChannelCloseInit{%s/%s}", e.PortId, e.ChannelId)
}
func (*EventChannelCloseInit) ProtoMessage() {}
func (*EventChannelCloseInit) XXX_MessageName() string {
	return "ibccore.channel.v1.EventChannelCloseInit"
}

// EventChannelCloseConfirm is emitted by ChanCloseConfirm and by
// TimeoutPacket/TimeoutOnClose for ordered channels (spec.md §4.5:
// "for ordered channels, additionally close the channel").
type EventChannelCloseConfirm struct {
	PortId    ibctypes.PortId
	ChannelId ibctypes.ChannelId
}

func (e *EventChannelCloseConfirm) Reset() { *e = EventChannelCloseConfirm{} }
func (e *EventChannelCloseConfirm) String() string {
	return fmt.Sprintf("EventChannelCloseConfirm{%s/%s}", e.PortId, e.ChannelId)
}
func (*EventChannelCloseConfirm) ProtoMessage() {}
func (*EventChannelCloseConfirm) XXX_MessageName() string {
	return "ibccore.channel.v1.EventChannelCloseConfirm"
}

// packetEventFields is embedded by every packet lifecycle event so
// relayers can locate the packet from the minimum routing identifiers
// (spec.md §6 "Events").
type packetEventFields struct {
	Sequence           uint64
	SourcePort         ibctypes.PortId
	SourceChannel      ibctypes.ChannelId
	DestinationPort    ibctypes.PortId
	DestinationChannel ibctypes.ChannelId
}

func packetFieldsOf(p Packet) packetEventFields {
	return packetEventFields{
		Sequence:           p.Sequence,
		SourcePort:         p.SourcePort,
		SourceChannel:      p.SourceChannel,
		DestinationPort:    p.DestinationPort,
		DestinationChannel: p.DestinationChannel,
	}
}

// EventSendPacket is emitted by SendPacket.
type EventSendPacket struct {
	packetEventFields
}

func NewEventSendPacket(p Packet) *EventSendPacket { return &EventSendPacket{packetFieldsOf(p)} }
func (e *EventSendPacket) Reset() { *e = EventSendPacket{} }
func (e *EventSendPacket) String() string { return fmt.Sprintf("EventSendPacket{seq=%d}", e.Sequence) }
func (*EventSendPacket) ProtoMessage() {}
func (*EventSendPacket) XXX_MessageName() string { return "ibccore.channel.v1.EventSendPacket" }

// EventReceivePacket is emitted by RecvPacket.
type EventReceivePacket struct {
	packetEventFields
}

func NewEventReceivePacket(p Packet) *EventReceivePacket { return &EventReceivePacket{packetFieldsOf(p)} }
func (e *EventReceivePacket) Reset() { *e = EventReceivePacket{} }
func (e *EventReceivePacket) String() string { return fmt.Sprintf("EventReceivePacket{seq=%d}", e.Sequence) }
func (*EventReceivePacket) ProtoMessage() {}
func (*EventReceivePacket) XXX_MessageName() string { return "ibccore.channel.v1.EventReceivePacket" }

// EventAcknowledgePacket is emitted by AcknowledgePacket.
type EventAcknowledgePacket struct {
	packetEventFields
}

func NewEventAcknowledgePacket(p Packet) *EventAcknowledgePacket {
	return &EventAcknowledgePacket{packetFieldsOf(p)}
}
func (e *EventAcknowledgePacket) Reset() { *e = EventAcknowledgePacket{} }
func (e *EventAcknowledgePacket) String() string {
	return fmt.Sprintf("EventAcknowledgePacket{seq=%d}", e.Sequence)
}
func (*EventAcknowledgePacket) ProtoMessage() {}
func (*EventAcknowledgePacket) XXX_MessageName() string {
	return "ibccore.channel.v1.EventAcknowledgePacket"
}

// EventTimeoutPacket is emitted by TimeoutPacket and TimeoutOnClose.
type EventTimeoutPacket struct {
	packetEventFields
}

func NewEventTimeoutPacket(p Packet) *EventTimeoutPacket { return &EventTimeoutPacket{packetFieldsOf(p)} }
func (e *EventTimeoutPacket) Reset() { *e = EventTimeoutPacket{} }
func (e *EventTimeoutPacket) String() string { return fmt.Sprintf("EventTimeoutPacket{seq=%d}", e.Sequence) }
func (*EventTimeoutPacket) ProtoMessage() {}
func (*EventTimeoutPacket) XXX_MessageName() string { return "ibccore.channel.v1.EventTimeoutPacket" }
