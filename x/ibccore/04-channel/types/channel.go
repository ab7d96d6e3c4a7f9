package types

import (
	"fmt"
	"strings"

	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// FormatSequence renders a packet sequence the same deterministic way
// on both the store key and the commitment path, so a proof computed
// against one chain's key layout verifies against the other's.
func FormatSequence(sequence uint64) string {
	return fmt.Sprintf("%d", sequence)
}

// State is a ChannelEnd's handshake phase (spec.md §3).
type State int

const (
	Uninitialized State = iota
	Init
	TryOpen
	Open
	Closed
)

func (s State) String() string {
	switch s {
	case Init:
		return "INIT"
	case TryOpen:
		return "TRYOPEN"
	case Open:
		return "OPEN"
	case Closed:
		return "CLOSED"
	default:
		return "UNINITIALIZED"
	}
}

// Ordering is a channel's delivery discipline (spec.md §3).
type Ordering int

const (
	UnorderedOrdering Ordering = iota
	OrderedOrdering
)

func (o Ordering) String() string {
	if o == OrderedOrdering {
		return "ORDER_ORDERED"
	}
	return "ORDER_UNORDERED"
}

// Counterparty is the remote side's view of a channel: its port id and
// its channel id once known.
type Counterparty struct {
	PortId    ibctypes.PortId
	ChannelId ibctypes.ChannelId // empty until the counterparty's id is known
}

// HasChannelId reports whether the counterparty's channel id is known
// yet (invariant 3: an Open channel always has one).
func (c Counterparty) HasChannelId() bool { return c.ChannelId != "" }

// DefaultVersion is the channel version this core proposes when an
// application doesn't name one explicitly.
const DefaultVersion = "ics20-1"

// ValidateVersion rejects an empty-after-trim version string, mirroring
// 03-connection's ValidateVersion (SPEC_FULL.md Open Question 2: an
// all-whitespace string is the adversarial case that must be rejected).
func ValidateVersion(version string) error {
	if strings.TrimSpace(version) == "" {
		return ErrInvalidChannelVersion.Wrap("version is empty")
	}
	return nil
}

// ChannelEnd is the persisted state of one side of a channel handshake
// (spec.md §3). ConnectionHops names the connection(s) this channel
// runs over; only length-one is accepted today (spec.md §3, longer
// hops reserved for future multi-hop channels).
type ChannelEnd struct {
	State          State
	Ordering       Ordering
	Counterparty   Counterparty
	ConnectionHops []ibctypes.ConnectionId
	Version        string
}

// ConnectionId returns the single connection this channel runs over,
// valid only once ValidateConnectionHops has accepted ConnectionHops.
func (c ChannelEnd) ConnectionId() ibctypes.ConnectionId {
	return c.ConnectionHops[0]
}

// ValidateConnectionHops enforces spec.md §3's "only length-one is
// accepted today" rule.
func ValidateConnectionHops(hops []ibctypes.ConnectionId) error {
	if len(hops) != 1 {
		return ErrInvalidConnectionHops.Wrapf("got %d hops, want exactly 1", len(hops))
	}
	return nil
}

// Expected reconstructs the counterparty's view of this ChannelEnd,
// used as the "expected" argument to VerifyChannelState (spec.md §4.4),
// the same reconstruction idiom as 03-connection's ConnectionEnd.Expected.
func (c ChannelEnd) Expected(selfPortId ibctypes.PortId, selfChannelId ibctypes.ChannelId, counterpartyConnectionId ibctypes.ConnectionId, state State, version string) ChannelEnd {
	return ChannelEnd{
		State:    state,
		Ordering: c.Ordering,
		Counterparty: Counterparty{
			PortId:    selfPortId,
			ChannelId: selfChannelId,
		},
		ConnectionHops: []ibctypes.ConnectionId{counterpartyConnectionId},
		Version:        version,
	}
}
