package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace shared by the domain-primitive errors
// (identifiers, heights, timestamps) that every higher layer builds on.
const ModuleName = "ibccore"

// NOTE: error codes must start from 2; 1 is reserved by cosmossdk.io/errors
// for internal errors.
var (
	// ErrIdentifier is raised when an identifier fails its length or
	// character-class validation.
	ErrIdentifier = errorsmod.Register(ModuleName, 2, "invalid identifier")
	// ErrInvalidHeight is raised when a height comparison or parse fails.
	ErrInvalidHeight = errorsmod.Register(ModuleName, 3, "invalid height")
	// ErrInvalidTimestamp is raised when a timestamp comparison is
	// attempted against malformed operands.
	ErrInvalidTimestamp = errorsmod.Register(ModuleName, 4, "invalid timestamp")
	// ErrUnknownClientType is raised when a ClientType tag is not one of
	// the recognised variants.
	ErrUnknownClientType = errorsmod.Register(ModuleName, 5, "unknown client type")
)

// IdentifierError wraps ErrIdentifier with the offending value and kind,
// matching the error-kind-carries-payload design in spec.md §7.
func IdentifierError(kind, value string, reason error) error {
	return errorsmod.Wrapf(ErrIdentifier, "%s %q: %s", kind, value, reason)
}
