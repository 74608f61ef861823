package verifier

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ensgate-project/ensgate-go/pkg/signer"
)

func BenchmarkVerify(b *testing.B) {
	key, err := crypto.GenerateKey()
	if err != nil {
		b.Fatal(err)
	}

	sender := common.HexToAddress("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	request := make([]byte, 132)
	result := make([]byte, 64)

	s := signer.NewDefaultResponseSigner(key)
	resp, err := s.SignResponseWithOptions(context.Background(), sender, request, result,
		&signer.SigningOptions{Expires: uint64(time.Now().Add(time.Hour).Unix())})
	if err != nil {
		b.Fatal(err)
	}

	v := NewDefaultProofVerifier(sender)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := v.Verify(request, resp); err != nil {
			b.Fatal(err)
		}
	}
}
