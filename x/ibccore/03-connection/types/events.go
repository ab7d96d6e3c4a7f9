package types

import (
	"fmt"

	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// EventConnectionOpenInit is emitted by ConnOpenInit.
type EventConnectionOpenInit struct {
	ConnectionId ibctypes.ConnectionId
	ClientId     ibctypes.ClientId
}

func (e *EventConnectionOpenInit) Reset()         { *e = EventConnectionOpenInit{} }
func (e *EventConnectionOpenInit) String() string { return fmt.Sprintf("EventConnectionOpenInit{%s}", e.ConnectionId) }
func (*EventConnectionOpenInit) ProtoMessage()    {}
func (*EventConnectionOpenInit) XXX_MessageName() string {
	return "ibccore.connection.v1.EventConnectionOpenInit"
}

// EventConnectionOpenTry is emitted by ConnOpenTry.
type EventConnectionOpenTry struct {
	ConnectionId ibctypes.ConnectionId
	ClientId     ibctypes.ClientId
}

func (e *EventConnectionOpenTry) Reset()         { *e = EventConnectionOpenTry{} }
func (e *EventConnectionOpenTry) String() string { return fmt.Sprintf("EventConnectionOpenTry{%s}", e.ConnectionId) }
func (*EventConnectionOpenTry) ProtoMessage()    {}
func (*EventConnectionOpenTry) XXX_MessageName() string {
	return "ibccore.connection.v1.EventConnectionOpenTry"
}

// EventConnectionOpenAck is emitted by ConnOpenAck.
type EventConnectionOpenAck struct {
	ConnectionId ibctypes.ConnectionId
}

func (e *EventConnectionOpenAck) Reset()         { *e = EventConnectionOpenAck{} }
func (e *EventConnectionOpenAck) String() string { return fmt.Sprintf("EventConnectionOpenAck{%s}", e.ConnectionId) }
func (*EventConnectionOpenAck) ProtoMessage()    {}
func (*EventConnectionOpenAck) XXX_MessageName() string {
	return "ibccore.connection.v1.EventConnectionOpenAck"
}

// EventConnectionOpenConfirm is emitted by ConnOpenConfirm.
type EventConnectionOpenConfirm struct {
	ConnectionId ibctypes.ConnectionId
}

func (e *EventConnectionOpenConfirm) Reset() { *e = EventConnectionOpenConfirm{} }
func (e *EventConnectionOpenConfirm) String() string {
	return fmt.Sprintf("EventConnectionOpenConfirm{%s}", e.ConnectionId)
}
func (*EventConnectionOpenConfirm) ProtoMessage() {}
func (*EventConnectionOpenConfirm) XXX_MessageName() string {
	return "ibccore.connection.v1.EventConnectionOpenConfirm"
}
