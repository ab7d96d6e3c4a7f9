package types

import (
	"strings"

	"github.com/samber/lo"

	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// State is a ConnectionEnd's handshake phase (spec.md §3).
type State int

const (
	Uninitialized State = iota
	Init
	TryOpen
	Open
)

func (s State) String() string {
	switch s {
	case Init:
		return "INIT"
	case TryOpen:
		return "TRYOPEN"
	case Open:
		return "OPEN"
	default:
		return "UNINITIALIZED"
	}
}

// Counterparty is the remote side's view of the connection: its
// client id, its connection id once known, and the Merkle prefix its
// paths are committed under.
type Counterparty struct {
	ClientId     ibctypes.ClientId
	ConnectionId ibctypes.ConnectionId // empty until the counterparty's id is known
	Prefix       exported.Prefix
}

// HasConnectionId reports whether the counterparty's connection id is
// known yet (invariant 2: an Open connection always has one).
func (c Counterparty) HasConnectionId() bool { return c.ConnectionId != "" }

// Version names a supported feature set by identifier, following
// ICS-03's (identifier, features) pairing.
type Version struct {
	Identifier string
	Features   []string
}

// Equal reports whether v and other name the same identifier and
// feature set, ignoring feature order.
func (v Version) Equal(other Version) bool {
	if v.Identifier != other.Identifier {
		return false
	}
	if len(v.Features) != len(other.Features) {
		return false
	}
	want := append([]string(nil), v.Features...)
	got := append([]string(nil), other.Features...)
	return lo.Every(want, got) && lo.Every(got, want)
}

// DefaultVersion is the version this core proposes when none is
// supplied by the caller.
func DefaultVersion() Version {
	return Version{Identifier: "1", Features: []string{"ORDER_ORDERED", "ORDER_UNORDERED"}}
}

// PickVersion intersects proposed against supported by Version.Equal
// and returns the first proposed entry with a match, in proposal
// order (SPEC_FULL.md Open Question 1: simple intersection-first-match,
// mirroring the set-filter idiom in x/pse/keeper/params.go's
// UpdateExcludedAddresses).
func PickVersion(proposed, supported []Version) (Version, error) {
	for _, p := range proposed {
		for _, s := range supported {
			if p.Equal(s) {
				return p, nil
			}
		}
	}
	return Version{}, ErrNoCommonVersion
}

// ValidateVersion rejects an empty-after-trim identifier (SPEC_FULL.md
// Open Question 2: a string of only whitespace is the adversarial case
// that must be rejected, not accepted as "some version").
func ValidateVersion(v Version) error {
	if strings.TrimSpace(v.Identifier) == "" {
		return ErrInvalidConnectionState.Wrap("version identifier is empty")
	}
	return nil
}

// ConnectionEnd is the persisted state of one side of a connection
// handshake (spec.md §3).
type ConnectionEnd struct {
	State        State
	ClientId     ibctypes.ClientId
	Counterparty Counterparty
	Versions     []Version
	DelayPeriod  uint64
}

// IsOpen reports whether the handshake has completed on this side.
func (c ConnectionEnd) IsOpen() bool { return c.State == Open }

// Expected reconstructs the counterparty's view of this ConnectionEnd,
// used as the "expected" argument to VerifyConnectionState (spec.md
// §4.3: "against an expected ConnectionEnd the handler reconstructs").
func (c ConnectionEnd) Expected(selfConnectionId ibctypes.ConnectionId, selfPrefix exported.Prefix, state State) ConnectionEnd {
	return ConnectionEnd{
		State:    state,
		ClientId: c.Counterparty.ClientId,
		Counterparty: Counterparty{
			ClientId:     c.ClientId,
			ConnectionId: selfConnectionId,
			Prefix:       selfPrefix,
		},
		Versions:    c.Versions,
		DelayPeriod: c.DelayPeriod,
	}
}
