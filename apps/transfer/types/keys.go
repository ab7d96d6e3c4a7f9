package types

// ModuleName is the transfer module's name and default bound port.
const ModuleName = "transfer"

// Version is the IBC channel version this module negotiates during the
// channel handshake; OnChanOpenInit/Try reject any other proposal.
const Version = "ics20-1"

// escrowPrefix namespaces a denom that has crossed this chain's
// boundary, the way a voucher denom is built from the channel it
// arrived on: ibc/<hash(port/channel/denom)> in a full implementation,
// simplified here to a literal prefix since denom-hash derivation is
// out of scope.
const escrowPrefix = "ibc/"

// VoucherDenom names the denom this chain mints for a token that
// arrived over portId/channelId.
func VoucherDenom(portId, channelId, denom string) string {
	return escrowPrefix + portId + "/" + channelId + "/" + denom
}
