package types

// Result is the per-message return value of a routing sub-handler: a
// result plus a log trail, deliberately not collapsed to a bare error.
// Events themselves are still emitted through the host's EventManager
// as every keeper layer already does; Log is this handler's own
// human-readable trail, independent of the host log sink.
type Result struct {
	// TypeURL echoes the envelope that produced this result, so a
	// batch caller can line results back up with the messages that
	// produced them without re-threading an index.
	TypeURL string
	// Data carries the handler's primary output, where it has one:
	// the allocated ClientId/ConnectionId/ChannelId, or nil for
	// handlers whose only effect is a state transition.
	Data []byte
	// Log is zero or more human-readable trail lines, in the same
	// voice as the keepers' Info-level log lines but scoped to this
	// result rather than the shared logger sink.
	Log []string
}
