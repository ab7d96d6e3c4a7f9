package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ErrMissingField is raised when a raw message omits a field the
// domain model requires (spec.md §6: "required but optional on the
// wire" fields such as proof_height or client_state).
var ErrMissingField = errorsmod.Register(ModuleName, 6, "missing required field")

// MissingFieldError reports that raw message kind is missing field.
func MissingFieldError(kind, field string) error {
	return errorsmod.Wrapf(ErrMissingField, "%s: missing %s", kind, field)
}

// RawHeight is the wire form of Height (field 1: revision_number,
// field 2: revision_height).
type RawHeight struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

// Reset, String and ProtoMessage satisfy github.com/cosmos/gogoproto/proto.Message.
func (m *RawHeight) Reset()         { *m = RawHeight{} }
func (m *RawHeight) String() string { return NewHeight(m.RevisionNumber, m.RevisionHeight).String() }
func (*RawHeight) ProtoMessage()    {}

// Marshal encodes m to its wire form.
func (m *RawHeight) Marshal() ([]byte, error) {
	var b []byte
	b = AppendUint64Field(b, 1, m.RevisionNumber)
	b = AppendUint64Field(b, 2, m.RevisionHeight)
	return b, nil
}

// Unmarshal decodes m from its wire form.
func (m *RawHeight) Unmarshal(data []byte) error {
	*m = RawHeight{}
	it := NewFieldIterator(data)
	for {
		num, typ, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch num {
		case 1:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.RevisionNumber = v
		case 2:
			v, err := it.Varint()
			if err != nil {
				return err
			}
			m.RevisionHeight = v
		default:
			if err := it.Skip(typ); err != nil {
				return err
			}
		}
	}
}

// ToRaw converts a Height to its wire form.
func (h Height) ToRaw() *RawHeight {
	return &RawHeight{RevisionNumber: h.RevisionNumber, RevisionHeight: h.RevisionHeight}
}

// HeightFromRaw converts a wire-form height back to the domain type. A
// nil raw height decodes to ZeroHeight (the "no timeout" sentinel),
// since height is one of the few fields that is legitimately optional
// on the wire.
func HeightFromRaw(raw *RawHeight) Height {
	if raw == nil {
		return ZeroHeight()
	}
	return NewHeight(raw.RevisionNumber, raw.RevisionHeight)
}
