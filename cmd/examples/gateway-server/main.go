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

package main

import (
	"crypto/ecdsa"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ensgate-project/ensgate-go/pkg/gateway"
	"github.com/ensgate-project/ensgate-go/pkg/protocol"
	"github.com/ensgate-project/ensgate-go/pkg/signer"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	keyHex := flag.String("key", "", "signing key as hex (generated when empty)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	key, err := loadKey(*keyHex)
	if err != nil {
		log.Fatalf("Failed to load signing key: %v", err)
	}
	s := signer.NewDefaultResponseSigner(key)
	logger.Info("gateway signer ready", zap.String("address", s.Address().Hex()))

	// Seed a record so the gateway has something to serve:
	// name "test.eth" DNS-encoded, empty inner call data.
	backend := gateway.NewMemoryBackend()
	name := []byte{0x04, 't', 'e', 's', 't', 0x03, 'e', 't', 'h', 0x00}
	backend.Set(name, nil, []byte{0xbe, 0xef})

	call, err := protocol.MakeResolveCall(name, nil)
	if err != nil {
		log.Fatalf("Failed to build demo call: %v", err)
	}
	fmt.Printf("Demo request payload: 0x%x\n", call)

	gw := gateway.New(s, backend, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	gw.Register(e)

	logger.Info("gateway listening", zap.String("addr", *addr))
	if err := e.Start(*addr); err != nil {
		logger.Fatal("gateway stopped", zap.Error(err))
	}
}

func loadKey(keyHex string) (*ecdsa.PrivateKey, error) {
	if keyHex == "" {
		return crypto.GenerateKey()
	}
	return crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
}
