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

// Package resolver implements the ENSIP-10 wildcard resolution dispatcher
// and its authenticated callback.
//
// The resolver stores no resolution data. Resolve always redirects:
//
//	result, _ := r.Resolve(dnsName, innerCall)
//	lookup, _ := result.Lookup()
//	// fetch a signed response from one of lookup.URLs,
//	// passing lookup.CallData as the request payload
//
//	value, err := r.ResolveWithProof(signedResponse, lookup.ExtraData)
//
// ResolveWithProof composes the proof verifier with the registry's
// authorization policy: a response must carry a valid, unexpired signature
// AND the recovered signer must be in the authorized set. The distinct
// failures (protocol.ErrMalformedSignature, protocol.ErrSignatureExpired,
// protocol.ErrUnauthorizedSigner) tell a client whether another fetch is
// worth attempting.
package resolver
