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

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensgate-project/ensgate-go/pkg/protocol"
	"github.com/ensgate-project/ensgate-go/pkg/signer"
	"github.com/ensgate-project/ensgate-go/pkg/verifier"
)

var testSender = common.HexToAddress("0x5555555555555555555555555555555555555555")

func newTestGateway(t *testing.T) (*httptest.Server, *MemoryBackend, common.Address) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	backend := NewMemoryBackend()
	gw := New(signer.NewDefaultResponseSigner(key), backend, nil)
	srv := httptest.NewServer(gw.Handler())
	t.Cleanup(srv.Close)

	return srv, backend, crypto.PubkeyToAddress(key.PublicKey)
}

func fetchGet(t *testing.T, srv *httptest.Server, sender common.Address, callData []byte) *http.Response {
	t.Helper()
	url := fmt.Sprintf("%s/%s/%s.json", srv.URL, strings.ToLower(sender.Hex()), hexutil.Encode(callData))
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var gwResp protocol.GatewayResponse
	require.NoError(t, json.Unmarshal(body, &gwResp))

	payload, err := hexutil.Decode(gwResp.Data)
	require.NoError(t, err)
	return payload
}

func TestGateway_GetServesVerifiableResponse(t *testing.T) {
	srv, backend, signerAddr := newTestGateway(t)

	name := []byte{0x04, 't', 'e', 's', 't', 0x03, 'e', 't', 'h', 0x00}
	data := []byte{0x01}
	backend.Set(name, data, []byte{0xbe, 0xef})

	callData, err := protocol.MakeResolveCall(name, data)
	require.NoError(t, err)

	resp := fetchGet(t, srv, testSender, callData)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decoded, err := protocol.DecodeSignedResponse(decodeBody(t, resp))
	require.NoError(t, err)

	// the signature must verify against the sender from the URL and the
	// exact request bytes sent
	v := verifier.NewDefaultProofVerifier(testSender)
	recovered, value, err := v.Verify(callData, decoded)
	require.NoError(t, err)
	assert.Equal(t, signerAddr, recovered)
	assert.Equal(t, []byte{0xbe, 0xef}, value)
}

func TestGateway_PostServesVerifiableResponse(t *testing.T) {
	srv, backend, _ := newTestGateway(t)

	name := []byte{0x00}
	data := []byte{0x02}
	backend.Set(name, data, []byte{0xca, 0xfe})

	callData, err := protocol.MakeResolveCall(name, data)
	require.NoError(t, err)

	body, err := json.Marshal(protocol.GatewayRequest{
		Sender: strings.ToLower(testSender.Hex()),
		Data:   hexutil.Encode(callData),
	})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decoded, err := protocol.DecodeSignedResponse(decodeBody(t, resp))
	require.NoError(t, err)

	v := verifier.NewDefaultProofVerifier(testSender)
	_, value, err := v.Verify(callData, decoded)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xca, 0xfe}, value)
}

func TestGateway_UnknownRecordIs404(t *testing.T) {
	srv, _, _ := newTestGateway(t)

	callData, err := protocol.MakeResolveCall([]byte{0x00}, []byte{0x99})
	require.NoError(t, err)

	resp := fetchGet(t, srv, testSender, callData)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGateway_InvalidSenderIs400(t *testing.T) {
	srv, _, _ := newTestGateway(t)

	resp, err := http.Get(srv.URL + "/not-an-address/0x1234.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGateway_NonResolveCallIs400(t *testing.T) {
	srv, _, _ := newTestGateway(t)

	resp := fetchGet(t, srv, testSender, []byte{0xde, 0xad, 0xbe, 0xef})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMemoryBackend_Lookup(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Set([]byte("name"), []byte("data"), []byte("result"))

	result, err := backend.Lookup(context.Background(), []byte("name"), []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, []byte("result"), result)

	_, err = backend.Lookup(context.Background(), []byte("other"), []byte("data"))
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
