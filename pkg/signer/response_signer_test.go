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
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensgate-project/ensgate-go/pkg/protocol"
)

var testSender = common.HexToAddress("0x1234567890123456789012345678901234567890")

func TestMakeSignatureHash_Deterministic(t *testing.T) {
	request := []byte{0xde, 0xad}
	result := []byte{0xbe, 0xef}

	first := MakeSignatureHash(testSender, 1893456000, request, result)
	second := MakeSignatureHash(testSender, 1893456000, request, result)

	assert.Equal(t, first, second)
}

func TestMakeSignatureHash_DomainSeparation(t *testing.T) {
	base := MakeSignatureHash(testSender, 100, []byte{0xde, 0xad}, []byte{0xbe, 0xef})

	otherSender := common.HexToAddress("0x0000000000000000000000000000000000000001")

	variants := map[string]common.Hash{
		"sender":  MakeSignatureHash(otherSender, 100, []byte{0xde, 0xad}, []byte{0xbe, 0xef}),
		"expires": MakeSignatureHash(testSender, 101, []byte{0xde, 0xad}, []byte{0xbe, 0xef}),
		"request": MakeSignatureHash(testSender, 100, []byte{0xde, 0xae}, []byte{0xbe, 0xef}),
		"result":  MakeSignatureHash(testSender, 100, []byte{0xde, 0xad}, []byte{0xbe, 0xee}),
	}

	for field, digest := range variants {
		assert.NotEqual(t, base, digest, "changing %s must change the digest", field)
	}
}

func TestMakeSignatureHash_LengthNormalization(t *testing.T) {
	// request/result bytes are hashed before concatenation, so moving a
	// byte across the field boundary must not collide
	a := MakeSignatureHash(testSender, 100, []byte{0x01, 0x02}, []byte{0x03})
	b := MakeSignatureHash(testSender, 100, []byte{0x01}, []byte{0x02, 0x03})
	assert.NotEqual(t, a, b)
}

func TestDefaultResponseSigner_SignResponse(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	s := NewDefaultResponseSigner(key)
	request := []byte{0xde, 0xad}
	result := []byte{0xbe, 0xef}

	resp, err := s.SignResponse(context.Background(), testSender, request, result)
	require.NoError(t, err)

	assert.Equal(t, result, resp.Result)
	require.Len(t, resp.Signature, protocol.SignatureLength)
	assert.Contains(t, []byte{27, 28}, resp.Signature[64])

	// the signature must recover to the signer's address
	digest := MakeSignatureHash(testSender, resp.Expires, request, result)
	sig := append([]byte(nil), resp.Signature...)
	sig[64] -= 27
	pub, err := crypto.SigToPub(digest.Bytes(), sig)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), crypto.PubkeyToAddress(*pub))
}

func TestDefaultResponseSigner_ExpiryPolicy(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	now := time.Unix(1700000000, 0)
	s := NewDefaultResponseSigner(key)
	s.now = func() time.Time { return now }

	// explicit Expires wins
	resp, err := s.SignResponseWithOptions(context.Background(), testSender, nil, nil,
		&SigningOptions{Expires: 42, TTL: 600})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), resp.Expires)

	// TTL relative to the signer clock
	resp, err = s.SignResponseWithOptions(context.Background(), testSender, nil, nil,
		&SigningOptions{TTL: 600})
	require.NoError(t, err)
	assert.Equal(t, uint64(now.Unix())+600, resp.Expires)

	// default TTL when nothing is set
	resp, err = s.SignResponse(context.Background(), testSender, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(now.Add(DefaultTTL).Unix()), resp.Expires)
}

func TestDefaultResponseSigner_CancelledContext(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewDefaultResponseSigner(key).SignResponse(ctx, testSender, nil, nil)
	assert.Error(t, err)
}
