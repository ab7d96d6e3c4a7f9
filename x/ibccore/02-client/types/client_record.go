package types

import (
	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
	ibctypes "github.com/tokenize-x/ibc-core/x/ibccore/types"
)

// ClientRecord groups a client's declared type, its current state, and
// the consensus states pinned at every height it has been updated to
// (spec.md §3). Invariant 1: ClientType must agree with both
// ClientState's and every ConsensusState's dynamic type — NewClientRecord
// enforces this once at creation (the client keeper also builds
// ClientRecord values directly, from the ClientType it stored);
// UpdateClient preserves it by construction
// since the verifier it delegates to is selected by the same
// ClientType.
type ClientRecord struct {
	ClientType      ibctypes.ClientType
	ClientState     exported.ClientState
	ConsensusStates map[ibctypes.Height]exported.ConsensusState
}

// NewClientRecord constructs a ClientRecord, enforcing invariant 1
// against the initial consensus state.
func NewClientRecord(clientType ibctypes.ClientType, clientState exported.ClientState, initialHeight ibctypes.Height, initialConsensus exported.ConsensusState) (ClientRecord, error) {
	if clientState.ClientType() != clientType || initialConsensus.ClientType() != clientType {
		return ClientRecord{}, ErrRawTypesMismatch
	}
	return ClientRecord{
		ClientType:  clientType,
		ClientState: clientState,
		ConsensusStates: map[ibctypes.Height]exported.ConsensusState{
			initialHeight: initialConsensus,
		},
	}, nil
}

// WithUpdatedState returns a copy of r with clientState replacing the
// current one and a new consensus state recorded at height.
func (r ClientRecord) WithUpdatedState(clientState exported.ClientState, height ibctypes.Height, consensusState exported.ConsensusState) ClientRecord {
	next := make(map[ibctypes.Height]exported.ConsensusState, len(r.ConsensusStates)+1)
	for k, v := range r.ConsensusStates {
		next[k] = v
	}
	next[height] = consensusState
	return ClientRecord{
		ClientType:      r.ClientType,
		ClientState:     clientState,
		ConsensusStates: next,
	}
}

// ConsensusStateAt returns the consensus state pinned at height, or
// ErrConsensusStateNotFound.
func (r ClientRecord) ConsensusStateAt(height ibctypes.Height) (exported.ConsensusState, error) {
	cs, ok := r.ConsensusStates[height]
	if !ok {
		return nil, ErrConsensusStateNotFound
	}
	return cs, nil
}
