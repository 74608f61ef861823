// Copyright (C) 2025 ENSGate Project
//
// This file is part of ensgate-go.
//
// ensgate-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ensgate-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with ensgate-go.  If not, see <https://www.gnu.org/licenses/>.

package verifier

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ensgate-project/ensgate-go/pkg/protocol"
	"github.com/ensgate-project/ensgate-go/pkg/signer"
)

// DefaultProofVerifier implements ProofVerifier for a fixed sender identity
type DefaultProofVerifier struct {
	sender common.Address
	now    func() time.Time
}

// NewDefaultProofVerifier creates a verifier bound to the given resolver
// instance identity. Responses signed for any other identity will recover to
// a different address and fail the caller's authorization check.
func NewDefaultProofVerifier(sender common.Address) *DefaultProofVerifier {
	return &DefaultProofVerifier{
		sender: sender,
		now:    time.Now,
	}
}

// NewDefaultProofVerifierWithClock creates a verifier with a custom clock.
// The clock supplies the verification-time reference the expiry is checked
// against.
func NewDefaultProofVerifierWithClock(sender common.Address, now func() time.Time) *DefaultProofVerifier {
	return &DefaultProofVerifier{
		sender: sender,
		now:    now,
	}
}

// Sender returns the resolver instance identity this verifier is bound to
func (v *DefaultProofVerifier) Sender() common.Address {
	return v.sender
}

// Verify authenticates a signed response against the original request bytes.
// It is read-only: no state is touched beyond the clock.
func (v *DefaultProofVerifier) Verify(request []byte, resp *protocol.SignedResponse) (common.Address, []byte, error) {
	if resp == nil {
		return common.Address{}, nil, fmt.Errorf("response cannot be nil")
	}

	if len(resp.Signature) != protocol.SignatureLength {
		return common.Address{}, nil, fmt.Errorf("%w: expected %d bytes, got %d",
			protocol.ErrMalformedSignature, protocol.SignatureLength, len(resp.Signature))
	}

	// Accept both signature conventions: recovery id 0/1 as produced by
	// crypto.Sign and 27/28 as carried on-chain.
	sig := make([]byte, protocol.SignatureLength)
	copy(sig, resp.Signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return common.Address{}, nil, fmt.Errorf("%w: invalid recovery id %d",
			protocol.ErrMalformedSignature, resp.Signature[64])
	}

	digest := signer.MakeSignatureHash(v.sender, resp.Expires, request, resp.Result)

	pubKey, err := crypto.SigToPub(digest.Bytes(), sig)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("%w: %v", protocol.ErrMalformedSignature, err)
	}

	if resp.Expires < uint64(v.now().Unix()) {
		return common.Address{}, nil, fmt.Errorf("%w: expired at %d",
			protocol.ErrSignatureExpired, resp.Expires)
	}

	return crypto.PubkeyToAddress(*pubKey), resp.Result, nil
}
