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

package resolver

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ensgate-project/ensgate-go/pkg/protocol"
	"github.com/ensgate-project/ensgate-go/pkg/registry"
	"github.com/ensgate-project/ensgate-go/pkg/verifier"
)

// ERC165InterfaceID is the interface id of supportsInterface(bytes4)
var ERC165InterfaceID = [4]byte{0x01, 0xff, 0xc9, 0xa7}

// Resolver is the off-chain resolution dispatcher. It never answers a
// resolution request directly; Resolve always redirects to the gateway
// endpoints and ResolveWithProof authenticates what came back.
type Resolver struct {
	sender   common.Address
	registry *registry.Registry
	verifier verifier.ProofVerifier
}

// New creates a resolver with the given instance identity and registry,
// using the default proof verifier.
func New(sender common.Address, reg *registry.Registry) *Resolver {
	return NewWithVerifier(sender, reg, verifier.NewDefaultProofVerifier(sender))
}

// NewWithVerifier creates a resolver with a custom proof verifier
func NewWithVerifier(sender common.Address, reg *registry.Registry, v verifier.ProofVerifier) *Resolver {
	return &Resolver{
		sender:   sender,
		registry: reg,
		verifier: v,
	}
}

// Sender returns the resolver instance identity signatures are bound to
func (r *Resolver) Sender() common.Address {
	return r.sender
}

// Resolve dispatches a wildcard resolution of the DNS-encoded name with the
// given inner call data. The answer is never available synchronously: the
// result always carries an OffchainLookup naming the current gateway
// endpoints, the exact payload to send them and the callback to resubmit the
// fetched response through.
func (r *Resolver) Resolve(name, data []byte) (protocol.Result, error) {
	callData, err := protocol.MakeResolveCall(name, data)
	if err != nil {
		return protocol.Result{}, fmt.Errorf("failed to build resolve call: %w", err)
	}
	return protocol.FetchRequired(&protocol.OffchainLookup{
		Sender:           r.sender,
		URLs:             r.registry.URLs(),
		CallData:         callData,
		CallbackSelector: protocol.ResolveWithProofSelector,
		ExtraData:        callData,
	}), nil
}

// ResolveWithProof is the authenticated callback. It decodes the gateway's
// ABI-encoded signed response, verifies the signature over extraData (the
// original dispatched payload), checks the recovered signer against the
// registry and returns the result bytes unchanged.
func (r *Resolver) ResolveWithProof(response, extraData []byte) ([]byte, error) {
	resp, err := protocol.DecodeSignedResponse(response)
	if err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	signerAddr, value, err := r.verifier.Verify(extraData, resp)
	if err != nil {
		return nil, err
	}

	if !r.registry.IsSigner(signerAddr) {
		return nil, fmt.Errorf("%w: %s", protocol.ErrUnauthorizedSigner, signerAddr.Hex())
	}

	return value, nil
}

// SupportsInterface reports ERC-165 support for the ENSIP-10 extended
// resolver interface.
func (r *Resolver) SupportsInterface(interfaceID [4]byte) bool {
	return interfaceID == protocol.ResolveSelector || interfaceID == ERC165InterfaceID
}
