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

// Package registry maintains the authorized signer set and gateway endpoint
// list consulted during off-chain resolution.
//
//	reg := registry.New(owner, []common.Address{signerAddr}, []string{
//	    "https://gateway.example/{sender}/{data}.json",
//	})
//
//	// owner-gated mutations take the caller explicitly
//	err := reg.AddSigners(owner, newSigners)
//
// Signer membership is boolean with no per-signer metadata; add and remove
// are idempotent. Endpoint removal swaps the last entry into the removed
// slot, so URL order is not stable across mutations.
//
// Each mutation publishes an Event on a feed; subscribe with SubscribeEvents
// for off-chain observability of registry changes.
package registry
