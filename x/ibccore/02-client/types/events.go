package types

import (
	"fmt"

	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// EventCreateClient is emitted by CreateClient (spec.md §4.2). It
// satisfies proto.Message structurally, the same way the teacher's
// typed events do (x/pse/types/events.pb.go), so it can be passed
// straight to sdk.EventManager.EmitTypedEvent.
type EventCreateClient struct {
	ClientId   ibctypes.ClientId
	ClientType ibctypes.ClientType
	Height     string
}

func (e *EventCreateClient) Reset()         { *e = EventCreateClient{} }
func (e *EventCreateClient) String() string { return fmt.Sprintf("EventCreateClient{%s}", e.ClientId) }
func (*EventCreateClient) ProtoMessage()    {}
func (*EventCreateClient) XXX_MessageName() string {
	return "ibccore.client.v1.EventCreateClient"
}

// EventUpdateClient is emitted by UpdateClient.
type EventUpdateClient struct {
	ClientId   ibctypes.ClientId
	ClientType ibctypes.ClientType
	Height     string
}

func (e *EventUpdateClient) Reset()         { *e = EventUpdateClient{} }
func (e *EventUpdateClient) String() string { return fmt.Sprintf("EventUpdateClient{%s}", e.ClientId) }
func (*EventUpdateClient) ProtoMessage()    {}
func (*EventUpdateClient) XXX_MessageName() string {
	return "ibccore.client.v1.EventUpdateClient"
}
