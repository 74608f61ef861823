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

package registry

import (
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"

	"github.com/ensgate-project/ensgate-go/pkg/protocol"
)

// Registry holds the authorized signer set and the gateway endpoint list for
// one resolver instance. Mutations are owner-gated: they take the caller's
// address explicitly and fail with protocol.ErrUnauthorized for anyone else.
type Registry struct {
	mu      sync.RWMutex
	owner   common.Address
	signers mapset.Set[common.Address]
	urls    []string
	feed    event.Feed
}

// New creates a registry owned by owner, preloaded with the given signers
// and endpoint URLs.
func New(owner common.Address, signers []common.Address, urls []string) *Registry {
	return &Registry{
		owner:   owner,
		signers: mapset.NewSet(signers...),
		urls:    append([]string(nil), urls...),
	}
}

// Owner returns the address allowed to mutate the registry
func (r *Registry) Owner() common.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.owner
}

// TransferOwnership hands the registry to a new owner
func (r *Registry) TransferOwnership(caller, newOwner common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.requireOwner(caller); err != nil {
		return err
	}
	r.owner = newOwner
	return nil
}

// AddSigners authorizes a batch of signer addresses. Adding an address that
// is already present is a no-op.
func (r *Registry) AddSigners(caller common.Address, signers []common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.requireOwner(caller); err != nil {
		return err
	}
	for _, s := range signers {
		r.signers.Add(s)
	}
	r.feed.Send(Event{Kind: SignersAdded, Signers: append([]common.Address(nil), signers...)})
	return nil
}

// RemoveSigners deauthorizes a batch of signer addresses. Removing an absent
// address is a no-op.
func (r *Registry) RemoveSigners(caller common.Address, signers []common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.requireOwner(caller); err != nil {
		return err
	}
	for _, s := range signers {
		r.signers.Remove(s)
	}
	r.feed.Send(Event{Kind: SignersRemoved, Signers: append([]common.Address(nil), signers...)})
	return nil
}

// AddURL appends a gateway endpoint URL to the list
func (r *Registry) AddURL(caller common.Address, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.requireOwner(caller); err != nil {
		return err
	}
	r.urls = append(r.urls, url)
	r.feed.Send(Event{Kind: URLAdded, URL: url})
	return nil
}

// RemoveURL removes the endpoint at index by swapping the last entry into
// its place and shrinking the list. Positions of the remaining entries are
// not preserved; nothing may depend on URL ordering or index stability.
func (r *Registry) RemoveURL(caller common.Address, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.requireOwner(caller); err != nil {
		return err
	}
	if index < 0 || index >= len(r.urls) {
		return fmt.Errorf("%w: index %d, %d urls", protocol.ErrIndexOutOfBounds, index, len(r.urls))
	}
	removed := r.urls[index]
	r.urls[index] = r.urls[len(r.urls)-1]
	r.urls = r.urls[:len(r.urls)-1]
	r.feed.Send(Event{Kind: URLRemoved, URL: removed})
	return nil
}

// IsSigner reports whether addr is in the authorized signer set
func (r *Registry) IsSigner(addr common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.signers.Contains(addr)
}

// URLs returns a snapshot of the current endpoint list
func (r *Registry) URLs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.urls...)
}

// SubscribeEvents subscribes ch to registry change notifications. The
// subscription must be unsubscribed when no longer needed.
func (r *Registry) SubscribeEvents(ch chan<- Event) event.Subscription {
	return r.feed.Subscribe(ch)
}

func (r *Registry) requireOwner(caller common.Address) error {
	if caller != r.owner {
		return fmt.Errorf("%w: caller %s is not the owner", protocol.ErrUnauthorized, caller.Hex())
	}
	return nil
}
