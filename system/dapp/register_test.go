// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"testing"

	"github.com/33cn/lottery/common/address"
	"github.com/33cn/lottery/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demoDriver struct {
	DriverBase
}

func (d *demoDriver) GetDriverName() string {
	return "demo"
}

func newDemo() Driver {
	d := &demoDriver{}
	d.SetChild(d)
	return d
}

func TestRegisterAndLoad(t *testing.T) {
	Register("demo", newDemo, 10)
	assert.Panics(t, func() { Register("demo", newDemo, 10) })
	assert.Panics(t, func() { Register("nil", nil, 0) })
	assert.Contains(t, DriverNames(), "demo")

	_, err := LoadDriver("demo", 9)
	assert.Equal(t, types.ErrUnknowDriver, err)
	d, err := LoadDriver("demo", 10)
	require.Nil(t, err)
	assert.Equal(t, "demo", d.GetDriverName())
	_, err = LoadDriver("demo", -1)
	assert.Nil(t, err)
	_, err = LoadDriver("none", 10)
	assert.Equal(t, types.ErrUnRegistedDriver, err)

	execAddr := ExecAddress("demo")
	assert.Equal(t, address.ExecAddress("demo"), execAddr)
	assert.True(t, IsDriverAddress(execAddr, 10))
	assert.False(t, IsDriverAddress(execAddr, 9))
	assert.Nil(t, CheckAddress(execAddr, 10))
	assert.NotNil(t, CheckAddress("not-an-address", 10))
}

func TestDriverBaseCheckTx(t *testing.T) {
	d := newDemo()
	assert.Equal(t, types.ErrEmptyTx, d.CheckTx(nil, 0))
	//调用者为空时交给执行器自己返回对应的错误
	assert.Nil(t, d.CheckTx(&types.Transaction{Execer: []byte("demo")}, 0))
	assert.Nil(t, d.CheckTx(&types.Transaction{Execer: []byte("demo"), From: "alice"}, 0))
}
