// Package types declares the routing dispatcher's envelope contract,
// its type-URL decode registry, and the result shape its sub-handlers
// return.
package types

// Envelope is the shape every message accepted by the routing
// dispatcher implements: the same TypeURL()/ValidateBasic() contract
// already used by every Msg type across 02-client, 03-connection, and
// 04-channel. The dispatcher never needs more than this to route and
// pre-validate a message.
type Envelope interface {
	TypeURL() string
	ValidateBasic() error
}
