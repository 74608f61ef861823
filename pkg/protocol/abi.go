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
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	bytesType, _  = abi.NewType("bytes", "", nil)
	uint64Type, _ = abi.NewType("uint64", "", nil)

	resolveArgs = abi.Arguments{
		{Name: "name", Type: bytesType},
		{Name: "data", Type: bytesType},
	}

	signedResponseArgs = abi.Arguments{
		{Name: "result", Type: bytesType},
		{Name: "expires", Type: uint64Type},
		{Name: "sig", Type: bytesType},
	}
)

var (
	// ResolveSelector is the 4-byte selector of resolve(bytes,bytes). Its
	// value, 0x9061b923, doubles as the ENSIP-10 extended resolver
	// interface id.
	ResolveSelector = selector("resolve(bytes,bytes)")

	// ResolveWithProofSelector is the 4-byte selector of
	// resolveWithProof(bytes,bytes), the authenticated callback.
	ResolveWithProofSelector = selector("resolveWithProof(bytes,bytes)")

	// SupportsInterfaceSelector is the 4-byte selector of
	// supportsInterface(bytes4), the ERC-165 interface id.
	SupportsInterfaceSelector = selector("supportsInterface(bytes4)")
)

func selector(signature string) (sel [4]byte) {
	copy(sel[:], crypto.Keccak256([]byte(signature))[:4])
	return sel
}

// MakeResolveCall builds the payload a gateway receives for a wildcard
// resolution of name with the given inner call data:
// selector(resolve(bytes,bytes)) || abi(name, data).
func MakeResolveCall(name, data []byte) ([]byte, error) {
	encoded, err := resolveArgs.Pack(name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to pack resolve arguments: %w", err)
	}
	call := make([]byte, 0, len(ResolveSelector)+len(encoded))
	call = append(call, ResolveSelector[:]...)
	return append(call, encoded...), nil
}

// ParseResolveCall decodes a payload built by MakeResolveCall back into the
// DNS-encoded name and the inner call data.
func ParseResolveCall(callData []byte) (name, data []byte, err error) {
	if len(callData) < 4 || !bytes.Equal(callData[:4], ResolveSelector[:]) {
		return nil, nil, fmt.Errorf("payload is not a resolve(bytes,bytes) call")
	}
	values, err := resolveArgs.Unpack(callData[4:])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unpack resolve arguments: %w", err)
	}
	name, ok := values[0].([]byte)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected type for name argument")
	}
	data, ok = values[1].([]byte)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected type for data argument")
	}
	return name, data, nil
}

// EncodeSignedResponse packs a signed response into the ABI tuple
// (bytes result, uint64 expires, bytes sig) used on the gateway wire.
func EncodeSignedResponse(resp *SignedResponse) ([]byte, error) {
	if resp == nil {
		return nil, fmt.Errorf("response cannot be nil")
	}
	encoded, err := signedResponseArgs.Pack(resp.Result, resp.Expires, resp.Signature)
	if err != nil {
		return nil, fmt.Errorf("failed to pack signed response: %w", err)
	}
	return encoded, nil
}

// DecodeSignedResponse unpacks the ABI tuple (bytes result, uint64 expires,
// bytes sig) into a SignedResponse.
func DecodeSignedResponse(encoded []byte) (*SignedResponse, error) {
	values, err := signedResponseArgs.Unpack(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack signed response: %w", err)
	}
	result, ok := values[0].([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected type for result field")
	}
	expires, ok := values[1].(uint64)
	if !ok {
		return nil, fmt.Errorf("unexpected type for expires field")
	}
	sig, ok := values[2].([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected type for sig field")
	}
	return &SignedResponse{Result: result, Expires: expires, Signature: sig}, nil
}
