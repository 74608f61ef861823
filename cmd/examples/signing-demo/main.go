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
	"fmt"
	"log"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ensgate-project/ensgate-go/pkg/signer"
	"github.com/ensgate-project/ensgate-go/pkg/verifier"
)

func main() {
	fmt.Println("ENSGate Go - Signing Demo")
	fmt.Println("=========================")

	ctx := context.Background()
	sender := common.HexToAddress("0x5555555555555555555555555555555555555555")

	// Generate a gateway signing key
	fmt.Println("\n1. Generating gateway signing key...")
	key, err := crypto.GenerateKey()
	if err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	s := signer.NewDefaultResponseSigner(key)
	fmt.Printf("   Signer address: %s\n", s.Address().Hex())

	// Compute the canonical digest a gateway signs
	fmt.Println("\n2. Computing canonical signature hash...")
	request := []byte{0xde, 0xad}
	result := []byte{0xbe, 0xef}
	expires := uint64(time.Now().Add(time.Hour).Unix())
	digest := signer.MakeSignatureHash(sender, expires, request, result)
	fmt.Printf("   Digest: %s\n", digest.Hex())

	// Sign the response
	fmt.Println("\n3. Signing the response...")
	resp, err := s.SignResponseWithOptions(ctx, sender, request, result,
		&signer.SigningOptions{Expires: expires})
	if err != nil {
		log.Fatalf("Failed to sign response: %v", err)
	}
	fmt.Printf("   Signature: %s\n", hexutil.Encode(resp.Signature))
	fmt.Printf("   Expires:   %d\n", resp.Expires)

	// Verify it the way a resolver would
	fmt.Println("\n4. Verifying the response...")
	v := verifier.NewDefaultProofVerifier(sender)
	recovered, value, err := v.Verify(request, resp)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	fmt.Printf("   Recovered signer: %s\n", recovered.Hex())
	fmt.Printf("   Value:            %s\n", hexutil.Encode(value))

	if recovered == s.Address() {
		fmt.Println("\nRound trip complete: recovered signer matches the signing key.")
	}
}
