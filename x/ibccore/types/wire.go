package types

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// This file holds the hand-maintained wire-encoding helpers shared by
// every package's raw.go. The Raw* types round-tripped at the routing
// boundary (spec.md §6) are encoded with the same low-level varint/bytes
// field codec protoc-generated code uses; there is no protoc available
// in this environment, so the field layout is maintained by hand the
// way a vendored, pre-codegen commit would look.

// AppendUint64Field appends a non-zero uint64 field using proto3
// implicit-presence semantics (a zero value is simply omitted).
func AppendUint64Field(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	b = protowire.AppendVarint(b, v)
	return b
}

// AppendStringField appends a non-empty string field.
func AppendStringField(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendString(b, v)
	return b
}

// AppendBytesField appends a non-empty bytes field.
func AppendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendBytes(b, v)
	return b
}

// AppendMessageField appends an embedded message given its already
// encoded bytes. An empty encoding is still written, so a present but
// zero-valued message survives a round trip.
func AppendMessageField(b []byte, num protowire.Number, encoded []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendBytes(b, encoded)
	return b
}

// FieldIterator walks the top-level fields of an encoded message one at
// a time, in the style of a generated Unmarshal loop.
type FieldIterator struct {
	b []byte
}

// NewFieldIterator wraps buf for field-by-field consumption.
func NewFieldIterator(buf []byte) *FieldIterator {
	return &FieldIterator{b: buf}
}

// Next advances to the next field tag. ok is false once the buffer is
// exhausted.
func (it *FieldIterator) Next() (num protowire.Number, typ protowire.Type, ok bool, err error) {
	if len(it.b) == 0 {
		return 0, 0, false, nil
	}
	num, typ, n := protowire.ConsumeTag(it.b)
	if n < 0 {
		return 0, 0, false, fmt.Errorf("ibccore: malformed tag: %w", protowire.ParseError(n))
	}
	it.b = it.b[n:]
	return num, typ, true, nil
}

// Varint consumes the current field as a varint.
func (it *FieldIterator) Varint() (uint64, error) {
	v, n := protowire.ConsumeVarint(it.b)
	if n < 0 {
		return 0, fmt.Errorf("ibccore: malformed varint: %w", protowire.ParseError(n))
	}
	it.b = it.b[n:]
	return v, nil
}

// Bytes consumes the current field as a length-delimited byte slice
// (also used for strings and embedded messages).
func (it *FieldIterator) Bytes() ([]byte, error) {
	v, n := protowire.ConsumeBytes(it.b)
	if n < 0 {
		return nil, fmt.Errorf("ibccore: malformed bytes field: %w", protowire.ParseError(n))
	}
	it.b = it.b[n:]
	return v, nil
}

// Skip discards the current field's value without interpreting it,
// used for unrecognised field numbers so future schema fields don't
// break older readers.
func (it *FieldIterator) Skip(typ protowire.Type) error {
	n := protowire.ConsumeFieldValue(0, typ, it.b)
	if n < 0 {
		return fmt.Errorf("ibccore: malformed field: %w", protowire.ParseError(n))
	}
	it.b = it.b[n:]
	return nil
}
