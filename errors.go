// Copyright © 2018 - 2023 Weald Technology Trading
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pots

import "errors"

// ErrSpaceTooSmall is returned by NewProtoParams when the requested space
// is below MinSpace.
var ErrSpaceTooSmall = errors.New("pots: space requirement is too small")

// VerificationError identifies why a proof failed to verify.
type VerificationError struct {
	kind string
}

func (e *VerificationError) Error() string {
	return "pots: " + e.kind
}

// Is allows errors.Is(err, ErrInvalidSourceLabel) style comparisons.
func (e *VerificationError) Is(target error) bool {
	other, ok := target.(*VerificationError)
	if !ok {
		return false
	}
	return e.kind == other.kind
}

// The four verification failure kinds defined by the protocol (spec §7).
var (
	ErrInvalidSourceLabel                   = &VerificationError{"invalid source label"}
	ErrInvalidNonSourceLabel                = &VerificationError{"invalid non-source label"}
	ErrCalculatedRootDoesNotMatchStoredRoot = &VerificationError{"calculated root does not match stored root"}
	ErrCalculatedRootDoesNotMatchProof      = &VerificationError{"calculated root does not match proof"}
)
