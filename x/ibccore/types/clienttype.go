package types

// ClientType tags the light-client scheme backing a ClientRecord. It is
// a closed variant: dispatch on it must cover every case, and a scheme
// whose dynamic type disagrees with the declared ClientType is always
// a terminal error (spec.md invariant 1).
type ClientType int

const (
	// ClientTypeUnspecified is the zero value; never a valid stored type.
	ClientTypeUnspecified ClientType = iota
	// ClientTypeTendermint is the production light-client scheme.
	ClientTypeTendermint
	// ClientTypeMock exists only for tests.
	ClientTypeMock
)

// Prefix returns the identifier prefix conventionally used when minting
// a fresh ClientId of this type, e.g. "07-tendermint".
func (t ClientType) Prefix() string {
	switch t {
	case ClientTypeTendermint:
		return "07-tendermint"
	case ClientTypeMock:
		return "09-mock"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (t ClientType) String() string {
	switch t {
	case ClientTypeTendermint:
		return "Tendermint"
	case ClientTypeMock:
		return "Mock"
	default:
		return "Unspecified"
	}
}

// Valid reports whether t is a recognised, non-zero ClientType.
func (t ClientType) Valid() bool {
	return t == ClientTypeTendermint || t == ClientTypeMock
}
