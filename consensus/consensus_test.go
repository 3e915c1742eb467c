// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consensus

import (
	"testing"

	"github.com/33cn/lottery/consensus/solo"
	"github.com/33cn/lottery/types"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m, err := New(&types.Consensus{Name: "solo"}, nil, nil)
	assert.Nil(t, err)
	_, ok := m.(*solo.Client)
	assert.True(t, ok)
	_, err = New(&types.Consensus{Name: "ticket"}, nil, nil)
	assert.Equal(t, types.ErrConsensusNotSupport, err)
	_, err = New(nil, nil, nil)
	assert.Equal(t, types.ErrInvalidParam, err)
}
