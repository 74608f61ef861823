package signer

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func BenchmarkMakeSignatureHash(b *testing.B) {
	sender := common.HexToAddress("0x1234567890123456789012345678901234567890")
	request := make([]byte, 132)
	result := make([]byte, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MakeSignatureHash(sender, 1893456000, request, result)
	}
}

func BenchmarkSignResponse(b *testing.B) {
	key, err := crypto.GenerateKey()
	if err != nil {
		b.Fatal(err)
	}
	s := NewDefaultResponseSigner(key)
	sender := common.HexToAddress("0x1234567890123456789012345678901234567890")
	request := make([]byte, 132)
	result := make([]byte, 64)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.SignResponse(ctx, sender, request, result); err != nil {
			b.Fatal(err)
		}
	}
}
