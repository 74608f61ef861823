package signer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ensgate-project/ensgate-go/pkg/protocol"
)

// ResponseSigner produces signed gateway responses for off-chain resolution
type ResponseSigner interface {
	// SignResponse signs the result of a resolution request on behalf of the
	// verifying resolver instance identified by sender, using default options
	SignResponse(ctx context.Context, sender common.Address, request, result []byte) (*protocol.SignedResponse, error)

	// SignResponseWithOptions signs a resolution result with custom options
	SignResponseWithOptions(ctx context.Context, sender common.Address, request, result []byte, opts *SigningOptions) (*protocol.SignedResponse, error)

	// Address returns the signer's address, the identity recovered from its
	// signatures
	Address() common.Address
}

// SigningOptions contains options for signing gateway responses
type SigningOptions struct {
	// Expires is the absolute expiry timestamp (Unix seconds) to embed in
	// the response. If 0, TTL is used instead.
	Expires uint64

	// TTL is the response validity window added to the current time when
	// Expires is 0. If both are 0, DefaultTTL applies.
	TTL uint64
}
