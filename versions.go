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

// Package ensgate provides version information for ensgate-go and the
// off-chain resolution standards it implements.
package ensgate

const (
	// Version is the current version of ensgate-go
	Version = "1.0.0-alpha"

	// CCIPReadVersion is the CCIP-Read (EIP-3668) revision this library implements
	// See: https://eips.ethereum.org/EIPS/eip-3668
	CCIPReadVersion = "EIP-3668"

	// WildcardResolutionVersion is the wildcard resolution standard supported
	// by the dispatcher
	WildcardResolutionVersion = "ENSIP-10"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	EnsgateVersion            string
	CCIPReadVersion           string
	WildcardResolutionVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		EnsgateVersion:            Version,
		CCIPReadVersion:           CCIPReadVersion,
		WildcardResolutionVersion: WildcardResolutionVersion,
	}
}
