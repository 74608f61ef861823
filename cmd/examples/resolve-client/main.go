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
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/ensgate-project/ensgate-go/pkg/client"
	"github.com/ensgate-project/ensgate-go/pkg/registry"
	"github.com/ensgate-project/ensgate-go/pkg/resolver"
)

func main() {
	gatewayURL := flag.String("gateway", "http://localhost:8080/{sender}/{data}.json", "gateway URL template")
	signerAddr := flag.String("signer", "", "authorized gateway signer address")
	nameArg := flag.String("name", "test.eth", "name to resolve (dot-separated, DNS-encoded internally)")
	flag.Parse()

	if *signerAddr == "" {
		log.Fatal("the -signer flag is required: pass the gateway's signer address")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	fmt.Println("ENSGate Go - Resolve Client Example")
	fmt.Println("===================================")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Wire registry and resolver the way a verifying deployment would
	fmt.Println("\n1. Building registry and resolver...")
	owner := common.HexToAddress("0x1000000000000000000000000000000000000001")
	sender := common.HexToAddress("0x5555555555555555555555555555555555555555")
	reg := registry.New(owner,
		[]common.Address{common.HexToAddress(*signerAddr)},
		[]string{*gatewayURL})
	r := resolver.New(sender, reg)

	// Run the full CCIP-Read round trip
	fmt.Printf("\n2. Resolving %q through %s\n", *nameArg, *gatewayURL)
	c := client.New(nil, logger)
	value, err := c.Resolve(ctx, r, dnsEncode(*nameArg), nil)
	if err != nil {
		log.Fatalf("Resolution failed: %v", err)
	}

	fmt.Printf("\nResolved value: %s\n", hexutil.Encode(value))
}

// dnsEncode converts a dot-separated name into DNS wire format, one
// length-prefixed label per component.
func dnsEncode(name string) []byte {
	var out []byte
	for _, label := range strings.Split(strings.Trim(name, "."), ".") {
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	return append(out, 0x00)
}
