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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/ensgate-project/ensgate-go/pkg/protocol"
)

// Dispatcher is the resolver surface the client drives: the dispatch step
// and the authenticated callback.
type Dispatcher interface {
	Resolve(name, data []byte) (protocol.Result, error)
	ResolveWithProof(response, extraData []byte) ([]byte, error)
}

// Client performs the caller's side of CCIP-Read: it takes the off-chain
// lookup a dispatcher emits, fetches a signed response from the gateway
// endpoints and resubmits it through the callback. All retry and fallback
// policy lives here; the verification core never retries anything.
type Client struct {
	httpClient *http.Client
	log        *zap.Logger
	maxRetries uint64
}

// New creates a client. A nil httpClient uses http.DefaultClient; a nil
// logger disables logging.
func New(httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		log:        log,
		maxRetries: 2,
	}
}

// SetMaxRetries sets how many times a single endpoint is retried on
// transient failure before the client moves to the next endpoint.
func (c *Client) SetMaxRetries(n uint64) {
	c.maxRetries = n
}

// Resolve runs the full resolution round trip against d: dispatch, fetch
// from one of the advertised endpoints, authenticate through the callback.
func (c *Client) Resolve(ctx context.Context, d Dispatcher, name, data []byte) ([]byte, error) {
	result, err := d.Resolve(name, data)
	if err != nil {
		return nil, fmt.Errorf("dispatch failed: %w", err)
	}

	if value, ok := result.Value(); ok {
		return value, nil
	}

	lookup, _ := result.Lookup()
	response, err := c.FetchProof(ctx, lookup)
	if err != nil {
		return nil, err
	}

	return d.ResolveWithProof(response, lookup.ExtraData)
}

// FetchProof fetches the ABI-encoded signed response for lookup, trying the
// advertised endpoints in order and returning the first successful payload.
func (c *Client) FetchProof(ctx context.Context, lookup *protocol.OffchainLookup) ([]byte, error) {
	if lookup == nil {
		return nil, fmt.Errorf("lookup cannot be nil")
	}
	if len(lookup.URLs) == 0 {
		return nil, fmt.Errorf("lookup advertises no gateway endpoints")
	}

	var lastErr error
	for _, url := range lookup.URLs {
		payload, err := c.fetchEndpoint(ctx, url, lookup)
		if err != nil {
			c.log.Warn("gateway endpoint failed",
				zap.String("url", url),
				zap.Error(err))
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		return payload, nil
	}
	return nil, fmt.Errorf("all %d gateway endpoints failed: %w", len(lookup.URLs), lastErr)
}

// fetchEndpoint fetches from one endpoint template, retrying transient
// failures with exponential backoff.
func (c *Client) fetchEndpoint(ctx context.Context, url string, lookup *protocol.OffchainLookup) ([]byte, error) {
	var payload []byte
	operation := func() error {
		var err error
		payload, err = c.fetchOnce(ctx, url, lookup)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) fetchOnce(ctx context.Context, url string, lookup *protocol.OffchainLookup) ([]byte, error) {
	req, err := c.buildRequest(ctx, url, lookup)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	switch {
	case resp.StatusCode >= 500:
		// transient; worth retrying this endpoint
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		// the request itself is bad; retrying will not help
		return nil, backoff.Permanent(fmt.Errorf("gateway rejected request with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var gwResp protocol.GatewayResponse
	if err := json.Unmarshal(body, &gwResp); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to decode gateway response: %w", err))
	}

	data, err := hexutil.Decode(gwResp.Data)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("gateway returned invalid hex payload: %w", err))
	}
	return data, nil
}

// buildRequest expands the EIP-3668 URL template. Templates containing
// {data} are fetched with a GET and both placeholders substituted; all
// others receive a POST with a JSON body.
func (c *Client) buildRequest(ctx context.Context, url string, lookup *protocol.OffchainLookup) (*http.Request, error) {
	senderHex := strings.ToLower(lookup.Sender.Hex())
	dataHex := hexutil.Encode(lookup.CallData)

	if strings.Contains(url, "{data}") {
		expanded := strings.ReplaceAll(url, "{sender}", senderHex)
		expanded = strings.ReplaceAll(expanded, "{data}", dataHex)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, expanded, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create GET request: %w", err)
		}
		return req, nil
	}

	expanded := strings.ReplaceAll(url, "{sender}", senderHex)
	body, err := json.Marshal(protocol.GatewayRequest{Sender: senderHex, Data: dataHex})
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, expanded, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create POST request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
