package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FungibleTokenPacketData is the payload carried in a channel packet's
// opaque Data field for a transfer. JSON is the actual ICS-20 wire
// format (not a stand-in for it), so a relayer speaking the real
// protocol can decode what this chain sends.
type FungibleTokenPacketData struct {
	Denom    string `json:"denom"`
	Amount   string `json:"amount"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

// Validate checks the fields a receiving chain can check without
// consulting any keeper state.
func (d FungibleTokenPacketData) Validate() error {
	if strings.TrimSpace(d.Denom) == "" {
		return ErrInvalidDenom
	}
	amount, err := strconv.ParseInt(d.Amount, 10, 64)
	if err != nil || amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(d.Sender) == "" || strings.TrimSpace(d.Receiver) == "" {
		return ErrInvalidPacketData.Wrap("missing sender or receiver")
	}
	return nil
}

// Marshal encodes d as the packet's Data bytes.
func (d FungibleTokenPacketData) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

// UnmarshalPacketData decodes a packet's Data bytes into
// FungibleTokenPacketData.
func UnmarshalPacketData(data []byte) (FungibleTokenPacketData, error) {
	var d FungibleTokenPacketData
	if err := json.Unmarshal(data, &d); err != nil {
		return FungibleTokenPacketData{}, ErrInvalidPacketData.Wrap(err.Error())
	}
	return d, nil
}

// acknowledgement is the ICS-20 success/error acknowledgement envelope.
type acknowledgement struct {
	Result []byte `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// successResult is the single-byte result ICS-20 acknowledges a
// successful transfer with.
var successResult = []byte{1}

// NewSuccessAcknowledgement encodes the ICS-20 success acknowledgement.
func NewSuccessAcknowledgement() []byte {
	ack, _ := json.Marshal(acknowledgement{Result: successResult})
	return ack
}

// NewErrorAcknowledgement encodes err as an ICS-20 failure
// acknowledgement. Errors are flattened to their message text: the
// acknowledgement is committed to the chain's state and must stay
// deterministic and side-effect free.
func NewErrorAcknowledgement(err error) []byte {
	ack, _ := json.Marshal(acknowledgement{Error: err.Error()})
	return ack
}

// IsSuccessAcknowledgement reports whether ack decodes as the ICS-20
// success envelope.
func IsSuccessAcknowledgement(ack []byte) bool {
	var a acknowledgement
	if err := json.Unmarshal(ack, &a); err != nil {
		return false
	}
	return a.Error == ""
}
