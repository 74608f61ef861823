package verifier

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ensgate-project/ensgate-go/pkg/protocol"
)

// ProofVerifier authenticates signed gateway responses against the identity
// of one verifying resolver instance
type ProofVerifier interface {
	// Verify recomputes the canonical digest for (sender, expires, request,
	// result), recovers the signer from the signature and enforces the
	// expiry. It returns the recovered signer address and the result bytes.
	//
	// Verify does not consult any signer registry; checking the recovered
	// address against the authorized set is the caller's responsibility.
	Verify(request []byte, resp *protocol.SignedResponse) (common.Address, []byte, error)
}
