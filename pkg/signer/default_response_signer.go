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

package signer

import (
	"context"
	"crypto/ecdsa"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ensgate-project/ensgate-go/pkg/protocol"
)

// DefaultTTL is the validity window of a signed response when the caller
// specifies neither an expiry nor a TTL.
const DefaultTTL = 300 * time.Second

// x19 to avoid collision with rlp encode, x00 version byte distinguishing
// this scheme from EIP-191 personal messages (x45) and EIP-712 typed
// data (x01)
var messagePadding = []byte{0x19, 0x00}

// MakeSignatureHash computes the canonical digest a gateway signs:
//
//	keccak256(0x1900 || sender || expires(8, big-endian)
//	          || keccak256(request) || keccak256(result))
//
// Variable-length fields are hashed before concatenation, so their lengths
// cannot shift bytes across field boundaries. The digest is a pure function
// of its four inputs; signing and verification must use this exact
// construction to agree byte for byte.
func MakeSignatureHash(sender common.Address, expires uint64, request, result []byte) common.Hash {
	var expiresBytes [8]byte
	binary.BigEndian.PutUint64(expiresBytes[:], expires)
	return crypto.Keccak256Hash(
		messagePadding,
		sender.Bytes(),
		expiresBytes[:],
		crypto.Keccak256(request),
		crypto.Keccak256(result),
	)
}

// DefaultResponseSigner implements ResponseSigner with a local secp256k1 key
type DefaultResponseSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	now     func() time.Time
}

// NewDefaultResponseSigner creates a signer for the given private key
func NewDefaultResponseSigner(key *ecdsa.PrivateKey) *DefaultResponseSigner {
	return &DefaultResponseSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		now:     time.Now,
	}
}

// Address returns the address corresponding to the signing key
func (s *DefaultResponseSigner) Address() common.Address {
	return s.address
}

// SignResponse signs a resolution result with default options
func (s *DefaultResponseSigner) SignResponse(ctx context.Context, sender common.Address, request, result []byte) (*protocol.SignedResponse, error) {
	return s.SignResponseWithOptions(ctx, sender, request, result, nil)
}

// SignResponseWithOptions signs a resolution result with custom options
func (s *DefaultResponseSigner) SignResponseWithOptions(ctx context.Context, sender common.Address, request, result []byte, opts *SigningOptions) (*protocol.SignedResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if s.key == nil {
		return nil, fmt.Errorf("signing key cannot be nil")
	}

	if opts == nil {
		opts = &SigningOptions{}
	}

	expires := opts.Expires
	if expires == 0 {
		ttl := time.Duration(opts.TTL) * time.Second
		if ttl == 0 {
			ttl = DefaultTTL
		}
		expires = uint64(s.now().Add(ttl).Unix())
	}

	digest := MakeSignatureHash(sender, expires, request, result)

	signature, err := crypto.Sign(digest.Bytes(), s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}

	// crypto.Sign yields a recovery id of 0 or 1; the wire carries the
	// on-chain ecrecover convention of 27 or 28
	signature[64] += 27

	return &protocol.SignedResponse{
		Result:    result,
		Expires:   expires,
		Signature: signature,
	}, nil
}
