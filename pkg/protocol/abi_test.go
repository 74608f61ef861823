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
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSelector_MatchesENSIP10InterfaceID(t *testing.T) {
	// The selector of resolve(bytes,bytes) is the ENSIP-10 extended
	// resolver interface id, 0x9061b923.
	assert.Equal(t, "0x9061b923", hexutil.Encode(ResolveSelector[:]))
}

func TestMakeResolveCall_PayloadShape(t *testing.T) {
	name := []byte{0x04, 't', 'e', 's', 't', 0x03, 'e', 't', 'h', 0x00}
	data := []byte{0xde, 0xad, 0xbe, 0xef}

	call, err := MakeResolveCall(name, data)
	require.NoError(t, err)

	// selector(resolve) || encode(name, data)
	require.GreaterOrEqual(t, len(call), 4)
	assert.Equal(t, ResolveSelector[:], call[:4])

	gotName, gotData, err := ParseResolveCall(call)
	require.NoError(t, err)
	assert.Equal(t, name, gotName)
	assert.Equal(t, data, gotData)
}

func TestMakeResolveCall_EmptyInnerData(t *testing.T) {
	call, err := MakeResolveCall([]byte{0x00}, nil)
	require.NoError(t, err)

	gotName, gotData, err := ParseResolveCall(call)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, gotName)
	assert.Empty(t, gotData)
}

func TestParseResolveCall_WrongSelector(t *testing.T) {
	call, err := MakeResolveCall([]byte("name"), []byte("data"))
	require.NoError(t, err)

	call[0] ^= 0xff

	_, _, err = ParseResolveCall(call)
	assert.Error(t, err)
}

func TestParseResolveCall_Truncated(t *testing.T) {
	_, _, err := ParseResolveCall(ResolveSelector[:3])
	assert.Error(t, err)

	_, _, err = ParseResolveCall(ResolveSelector[:])
	assert.Error(t, err)
}

func TestSignedResponse_EncodeDecode(t *testing.T) {
	resp := &SignedResponse{
		Result:    []byte{0xbe, 0xef},
		Expires:   1893456000,
		Signature: make([]byte, SignatureLength),
	}

	encoded, err := EncodeSignedResponse(resp)
	require.NoError(t, err)

	decoded, err := DecodeSignedResponse(encoded)
	require.NoError(t, err)
	assert.Equal(t, resp.Result, decoded.Result)
	assert.Equal(t, resp.Expires, decoded.Expires)
	assert.Equal(t, resp.Signature, decoded.Signature)
}

func TestEncodeSignedResponse_Nil(t *testing.T) {
	_, err := EncodeSignedResponse(nil)
	assert.Error(t, err)
}

func TestDecodeSignedResponse_Garbage(t *testing.T) {
	_, err := DecodeSignedResponse([]byte{0x01, 0x02, 0x03})
	assert.Error(t, err)
}
