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

// Package protocol defines the wire types of the CCIP-Read (EIP-3668)
// off-chain resolution protocol.
//
// # Resolution flow
//
// A resolution request is dispatched as an off-chain lookup: instead of a
// value, the dispatcher hands back an OffchainLookup describing where the
// answer can be fetched and how to resubmit it:
//
//	result, err := resolver.Resolve(name, data)
//	if lookup, ok := result.Lookup(); ok {
//	    // fetch a signed response from one of lookup.URLs,
//	    // then resubmit through resolver.ResolveWithProof
//	}
//
// # Signed responses
//
// Gateways answer with an ABI-encoded (bytes result, uint64 expires,
// bytes signature) tuple. EncodeSignedResponse and DecodeSignedResponse
// convert between the tuple and the SignedResponse struct:
//
//	resp, err := protocol.DecodeSignedResponse(raw)
//	if err != nil {
//	    return err
//	}
//
// # Call payloads
//
// MakeResolveCall builds the exact payload a gateway receives, the 4-byte
// selector of resolve(bytes,bytes) followed by the ABI encoding of the
// DNS-encoded name and the inner call data. The name and the inner data are
// opaque at this layer; they are encoded, hashed and signed but never
// interpreted.
//
// # Errors
//
// The package exports the protocol error taxonomy (ErrMalformedSignature,
// ErrSignatureExpired, ErrUnauthorizedSigner, ErrIndexOutOfBounds,
// ErrUnauthorized) as sentinel errors. Callers distinguish them with
// errors.Is: an expired or malformed response is worth re-fetching from
// another endpoint, an unauthorized signer is not.
package protocol
