package registry

import "github.com/ethereum/go-ethereum/common"

// EventKind identifies a registry mutation
type EventKind int

const (
	// SignersAdded is emitted for each authorized signer batch
	SignersAdded EventKind = iota
	// SignersRemoved is emitted for each deauthorized signer batch
	SignersRemoved
	// URLAdded is emitted when an endpoint URL is appended
	URLAdded
	// URLRemoved is emitted when an endpoint URL is removed
	URLRemoved
)

// Event is a registry change notification delivered to subscribers. Signers
// carries the batch for signer events; URL carries the endpoint for URL
// events.
type Event struct {
	Kind    EventKind
	Signers []common.Address
	URL     string
}
