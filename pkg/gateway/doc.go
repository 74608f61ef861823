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

// Package gateway serves signed off-chain resolution responses over the
// EIP-3668 gateway HTTP interface.
//
//	backend := gateway.NewMemoryBackend()
//	gw := gateway.New(responseSigner, backend, logger)
//
//	e := echo.New()
//	gw.Register(e)
//	e.Start(":8080")
//
// The gateway decodes the resolve(bytes,bytes) payload it receives, asks the
// Backend for the result, then signs the canonical digest of
// (sender, expires, request, result) — over the exact request bytes that
// arrived, since the verifier will recompute the digest from the payload it
// dispatched. Record storage is the Backend's concern; MemoryBackend is
// provided for tests and demos.
//
// Status codes follow the EIP-3668 client contract: 4xx means the request
// itself is bad and retrying another gateway with it is pointless, 5xx means
// this gateway failed and another endpoint may still answer.
package gateway
