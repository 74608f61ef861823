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

package protocol

import (
	"github.com/ethereum/go-ethereum/common"
)

// SignatureLength is the expected length of a gateway signature,
// r (32 bytes) || s (32 bytes) || v (1 byte).
const SignatureLength = 65

// OffchainLookup instructs the caller's environment to fetch the answer from
// one of the listed gateway endpoints and resubmit it through the callback.
// It mirrors the OffchainLookup revert of EIP-3668, expressed as an ordinary
// value instead of an exception.
type OffchainLookup struct {
	// Sender is the identity of the verifying resolver instance. Signatures
	// are bound to it; a response signed for one instance does not verify
	// against another.
	Sender common.Address

	// URLs is the ordered list of gateway endpoint templates to try. Order
	// is advisory only; the registry does not keep indexes stable across
	// removals.
	URLs []string

	// CallData is the exact payload the gateway must receive,
	// selector(resolve(bytes,bytes)) || abi(name, data).
	CallData []byte

	// CallbackSelector identifies the callback operation to invoke with the
	// fetched response.
	CallbackSelector [4]byte

	// ExtraData is carried through unchanged and handed to the callback
	// alongside the fetched response.
	ExtraData []byte
}

// SignedResponse is a gateway's authenticated answer: the opaque result
// bytes, an absolute expiry (seconds since epoch) and a 65-byte signature
// over the canonical digest of (sender, expires, request, result).
type SignedResponse struct {
	Result    []byte
	Expires   uint64
	Signature []byte
}

// Result is the outcome of a dispatch: either a value resolved synchronously
// or an off-chain lookup the caller must perform. Exactly one variant is set.
type Result struct {
	value  []byte
	lookup *OffchainLookup
}

// Resolved wraps a synchronously resolved value.
func Resolved(value []byte) Result {
	return Result{value: value}
}

// FetchRequired wraps an off-chain lookup instruction.
func FetchRequired(lookup *OffchainLookup) Result {
	return Result{lookup: lookup}
}

// Value returns the resolved value, if this result carries one.
func (r Result) Value() ([]byte, bool) {
	if r.lookup != nil {
		return nil, false
	}
	return r.value, true
}

// Lookup returns the off-chain lookup instruction, if this result carries one.
func (r Result) Lookup() (*OffchainLookup, bool) {
	return r.lookup, r.lookup != nil
}

// GatewayRequest is the JSON body of a POST gateway fetch, per the EIP-3668
// gateway interface.
type GatewayRequest struct {
	Sender string `json:"sender"`
	Data   string `json:"data"`
}

// GatewayResponse is the JSON body returned by a gateway. Data carries the
// hex-encoded ABI encoding of the signed response tuple; Message is set on
// errors instead.
type GatewayResponse struct {
	Data    string `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}
