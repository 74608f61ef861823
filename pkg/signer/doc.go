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

// Package signer produces signed gateway responses for off-chain ENS
// resolution.
//
// # Canonical digest
//
// MakeSignatureHash is the single source of truth for the digest both sides
// of the protocol operate on. A gateway signs it, the verifier recomputes it;
// any divergence in the construction makes every proof invalid, which is why
// the function is exported rather than private to either side:
//
//	digest := signer.MakeSignatureHash(sender, expires, request, result)
//
// The digest binds the signature to one verifying resolver instance (sender),
// one expiry, one request and one result. Changing any of the four produces a
// different digest.
//
// # Signing responses
//
//	key, _ := crypto.GenerateKey()
//	s := signer.NewDefaultResponseSigner(key)
//
//	resp, err := s.SignResponse(ctx, sender, request, result)
//	if err != nil {
//	    return err
//	}
//	// resp.Signature is 65 bytes, r || s || v with v in {27, 28}
//
// Expiry policy is configurable per call through SigningOptions; by default
// responses are valid for DefaultTTL from signing time.
package signer
