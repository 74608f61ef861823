package protocol

import "errors"

// Protocol error taxonomy. Every failure of the verification core and the
// registry maps to exactly one of these sentinels so that callers can tell
// "re-fetch from another endpoint" apart from "stop trusting this gateway".
var (
	// ErrMalformedSignature means the signature bytes cannot be parsed into
	// a valid (r,s,v) triple or recovery yields no valid curve point.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrSignatureExpired means the response expiry is in the past relative
	// to verification time. The caller must fetch a fresh response, not
	// resubmit the stale one.
	ErrSignatureExpired = errors.New("signature expired")

	// ErrUnauthorizedSigner means the recovered signer address is not in the
	// authorized signer set.
	ErrUnauthorizedSigner = errors.New("unauthorized signer")

	// ErrIndexOutOfBounds means an administrative operation referenced a
	// nonexistent endpoint index.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrUnauthorized means the caller of a registry mutation is not the
	// registry owner.
	ErrUnauthorized = errors.New("unauthorized")
)
