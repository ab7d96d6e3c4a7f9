package tendermint

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cometbft/cometbft/crypto/merkle"
	cmtcrypto "github.com/cometbft/cometbft/proto/tendermint/crypto"
	"github.com/cosmos/gogoproto/proto"

	"github.com/tokenize-x/ibc-core/x/ibccore/exported"
)

// MerkleProofVerifier is the default ProofVerifier: proof bytes are a
// protobuf-encoded cometbft merkle proof, checked against the root by
// hashing "path/value" as the leaf. Hosts with a different commitment
// scheme (e.g. ics23 ranged proofs) inject their own ProofVerifier
// instead.
type MerkleProofVerifier struct{}

var _ ProofVerifier = MerkleProofVerifier{}

// VerifyMembership implements ProofVerifier.
func (MerkleProofVerifier) VerifyMembership(root []byte, path string, value []byte, proof exported.Proof) error {
	var pb cmtcrypto.Proof
	if err := proto.Unmarshal(proof, &pb); err != nil {
		return errorsmod.Wrapf(exported.ErrClientProofVerification, "proof decode: %s", err)
	}
	mp, err := merkle.ProofFromProto(&pb)
	if err != nil {
		return errorsmod.Wrapf(exported.ErrClientProofVerification, "proof decode: %s", err)
	}
	leaf := append([]byte(path+"/"), value...)
	if err := mp.Verify(root, leaf); err != nil {
		return errorsmod.Wrapf(exported.ErrClientProofVerification, "membership check: %s", err)
	}
	return nil
}
