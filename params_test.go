// Copyright © 2023 Weald Technology Trading.
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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProtoParamsTooSmall(t *testing.T) {
	_, err := NewProtoParams(SpaceBytes(MinSpace - 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSpaceTooSmall))
}

func TestNewProtoParamsMinimum(t *testing.T) {
	params, err := NewProtoParams(SpaceKbs(4))
	require.NoError(t, err)
	assert.Equal(t, 16, params.N)
	assert.Equal(t, K, params.K)
	assert.InDelta(t, 1.3344, float64(params.Delta), 0.01)
	assert.Equal(t, 34, params.L0)
}

func TestSpaceUnitConversions(t *testing.T) {
	assert.Equal(t, 4096, SpaceKbs(4).NBytes())
	assert.Equal(t, 1_048_576, SpaceMbs(1).NBytes())
	assert.Equal(t, 1_073_741_824, SpaceGbs(1).NBytes())
	assert.Equal(t, 4096, SpaceBytes(4096).NBytes())
}

func TestNewProtoParamsLargerSpace(t *testing.T) {
	params, err := NewProtoParams(SpaceMbs(1))
	require.NoError(t, err)
	assert.Greater(t, params.N, 16)
	assert.Greater(t, params.Delta, float32(1.0))
	assert.Greater(t, params.L0, 0)
}

func TestCeilF32(t *testing.T) {
	assert.Equal(t, float32(4), ceilF32(4))
	assert.Equal(t, float32(5), ceilF32(4.1))
	assert.Equal(t, float32(-4), ceilF32(-4))
	assert.Equal(t, float32(-3), ceilF32(-3.9))
}
