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

// Package verifier authenticates signed gateway responses.
//
// The verifier recomputes the canonical digest for the response it is handed,
// recovers the signer address from the secp256k1 signature and enforces the
// expiry against the verification-time clock:
//
//	v := verifier.NewDefaultProofVerifier(senderAddress)
//
//	signerAddr, value, err := v.Verify(request, resp)
//	switch {
//	case errors.Is(err, protocol.ErrMalformedSignature):
//	    // signature bytes unusable, try another endpoint
//	case errors.Is(err, protocol.ErrSignatureExpired):
//	    // fetch a fresh response, do not resubmit this one
//	}
//
// Authorization is deliberately out of scope: Verify returns whichever
// address produced the signature and leaves the membership check against the
// signer registry to the resolver layer, keeping the cryptography separate
// from policy.
//
// The expiry check uses the clock at verification time, never the signing
// time; an injectable clock (NewDefaultProofVerifierWithClock) makes the
// check deterministic in tests.
package verifier
