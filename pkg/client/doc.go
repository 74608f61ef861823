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

// Package client drives the full CCIP-Read round trip from the caller's
// side.
//
//	c := client.New(nil, logger)
//
//	value, err := c.Resolve(ctx, resolver, dnsName, innerCall)
//
// Resolve dispatches through the resolver, performs the out-of-band HTTP
// fetch the OffchainLookup demands and resubmits the signed response through
// the authenticated callback. Endpoints are tried in the advertised order;
// transient (5xx) failures are retried per endpoint with exponential
// backoff, terminal (4xx) failures move straight to the next endpoint.
//
// This package is the "caller's environment" of EIP-3668: everything
// asynchronous — the network fetch, retries, timeouts via ctx — lives here,
// outside the synchronous verification core.
package client
