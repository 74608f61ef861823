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
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ensgate-project/ensgate-go/pkg/protocol"
	"github.com/ensgate-project/ensgate-go/pkg/signer"
)

// Gateway serves signed off-chain resolution responses over the EIP-3668
// gateway interface:
//
//	GET  /:sender/:data.json
//	POST /  with JSON body {"sender": "0x…", "data": "0x…"}
//
// Both answer {"data": "0x…"} where the payload is the hex of the
// ABI-encoded (result, expires, sig) tuple.
type Gateway struct {
	signer  signer.ResponseSigner
	backend Backend
	log     *zap.Logger
	opts    *signer.SigningOptions
}

// New creates a gateway signing with s and answering from backend. A nil
// logger disables logging.
func New(s signer.ResponseSigner, backend Backend, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{
		signer:  s,
		backend: backend,
		log:     log,
	}
}

// SetSigningOptions overrides the expiry policy applied to every response
func (g *Gateway) SetSigningOptions(opts *signer.SigningOptions) {
	g.opts = opts
}

// Register mounts the gateway routes on e
func (g *Gateway) Register(e *echo.Echo) {
	e.GET("/:sender/:data", g.handleGet)
	e.POST("/", g.handlePost)
}

// Handler returns a ready-to-serve http.Handler with the gateway routes
// mounted on a fresh echo instance.
func (g *Gateway) Handler() http.Handler {
	e := echo.New()
	e.HideBanner = true
	g.Register(e)
	return e
}

func (g *Gateway) handleGet(c echo.Context) error {
	sender := c.Param("sender")
	data := strings.TrimSuffix(c.Param("data"), ".json")
	return g.handle(c, sender, data)
}

func (g *Gateway) handlePost(c echo.Context) error {
	var req protocol.GatewayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, protocol.GatewayResponse{Message: "invalid request body"})
	}
	return g.handle(c, req.Sender, req.Data)
}

func (g *Gateway) handle(c echo.Context, senderHex, dataHex string) error {
	requestID := uuid.NewString()
	log := g.log.With(zap.String("request_id", requestID))

	if !common.IsHexAddress(senderHex) {
		log.Warn("rejected request with invalid sender", zap.String("sender", senderHex))
		return c.JSON(http.StatusBadRequest, protocol.GatewayResponse{Message: "invalid sender address"})
	}
	sender := common.HexToAddress(senderHex)

	callData, err := hexutil.Decode(dataHex)
	if err != nil {
		log.Warn("rejected request with invalid calldata", zap.Error(err))
		return c.JSON(http.StatusBadRequest, protocol.GatewayResponse{Message: "invalid call data"})
	}

	payload, err := g.process(c.Request().Context(), sender, callData)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			log.Info("no record for request", zap.String("sender", sender.Hex()))
			return c.JSON(http.StatusNotFound, protocol.GatewayResponse{Message: err.Error()})
		case errors.Is(err, errBadCall):
			log.Warn("unparseable resolve call", zap.Error(err))
			return c.JSON(http.StatusBadRequest, protocol.GatewayResponse{Message: err.Error()})
		default:
			log.Error("failed to produce signed response", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, protocol.GatewayResponse{Message: "internal error"})
		}
	}

	log.Debug("served signed response",
		zap.String("sender", sender.Hex()),
		zap.Int("result_bytes", len(payload)))
	return c.JSON(http.StatusOK, protocol.GatewayResponse{Data: hexutil.Encode(payload)})
}

var errBadCall = errors.New("bad resolve call")

// process runs the lookup and signs the result over the exact request bytes
// received, as the wire contract requires.
func (g *Gateway) process(ctx context.Context, sender common.Address, callData []byte) ([]byte, error) {
	name, data, err := protocol.ParseResolveCall(callData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadCall, err)
	}

	result, err := g.backend.Lookup(ctx, name, data)
	if err != nil {
		return nil, err
	}

	resp, err := g.signer.SignResponseWithOptions(ctx, sender, callData, result, g.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to sign response: %w", err)
	}

	return protocol.EncodeSignedResponse(resp)
}
