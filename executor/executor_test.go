// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"
	"testing"

	"github.com/33cn/lottery/account"
	"github.com/33cn/lottery/common"
	"github.com/33cn/lottery/common/address"
	dbm "github.com/33cn/lottery/common/db"
	coins "github.com/33cn/lottery/system/dapp/coins/executor"
	cty "github.com/33cn/lottery/system/dapp/coins/types"
	"github.com/33cn/lottery/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initCoins sync.Once

type testChain struct {
	header types.Header
	txs    []*types.Transaction
}

func (c *testChain) PendingHeader() *types.Header {
	h := c.header
	return &h
}

func (c *testChain) AddTx(tx *types.Transaction) {
	c.txs = append(c.txs, tx)
}

func addrOf(name string) string {
	return address.PubKeyToAddress(common.Sha256([]byte(name))).String()
}

func newTestExecutor(t *testing.T, cfg *types.Exec) (*Executor, *testChain, dbm.DB) {
	initCoins.Do(func() {
		coins.Init(cty.CoinsX, nil, nil)
	})
	db := newMemDB(t)
	chain := &testChain{header: types.Header{Height: 1, BlockTime: 1}}
	return New(cfg, db, chain), chain, db
}

func transferTx(t *testing.T, from, to string, amount int64) *types.Transaction {
	tx, err := cty.CreateRawTransferTx(from, to, amount, "")
	require.Nil(t, err)
	return tx
}

func TestGenesisAndTransfer(t *testing.T) {
	exec, chain, db := newTestExecutor(t, &types.Exec{EnableStat: true})
	alice, bob := addrOf("alice"), addrOf("bob")

	_, err := exec.Genesis(alice, 1e10)
	require.Nil(t, err)
	_, err = exec.Genesis(alice, 1e10)
	assert.Equal(t, types.ErrGenesisExist, err)

	acc := account.NewCoinsAccount().SetDB(db)
	assert.Equal(t, int64(1e10), acc.LoadAccount(alice).Balance)

	rdata, err := exec.ExecTx(transferTx(t, alice, bob, 1e8))
	require.Nil(t, err)
	assert.Equal(t, int32(types.ExecOk), rdata.Ty)
	assert.Equal(t, 1, len(chain.txs))
	assert.Equal(t, int64(1e10-1e8), acc.LoadAccount(alice).Balance)
	assert.Equal(t, int64(1e8), acc.LoadAccount(bob).Balance)

	msg, err := exec.Query(cty.CoinsX, cty.FuncNameGetBalance, &cty.ReqBalance{Addr: bob})
	require.Nil(t, err)
	assert.Equal(t, int64(1e8), msg.(*types.Account).Balance)
	msg, err = exec.Query(cty.CoinsX, cty.FuncNameGetAddrReciver, &cty.ReqBalance{Addr: bob})
	require.Nil(t, err)
	assert.Equal(t, int64(1e8), msg.(*types.Int64).Data)
	assert.Equal(t, int64(1), exec.txOk.Count())
}

func TestExecTxWithoutStat(t *testing.T) {
	for _, cfg := range []*types.Exec{nil, {EnableStat: false}} {
		exec, chain, db := newTestExecutor(t, cfg)
		alice, bob := addrOf("alice"), addrOf("bob")
		_, err := exec.Genesis(alice, 1e10)
		require.Nil(t, err)

		rdata, err := exec.ExecTx(transferTx(t, alice, bob, 1e8))
		require.Nil(t, err)
		require.NotNil(t, rdata)
		assert.Equal(t, int32(types.ExecOk), rdata.Ty)
		assert.Equal(t, 1, len(chain.txs))
		assert.Equal(t, int64(1e8), account.NewCoinsAccount().SetDB(db).LoadAccount(bob).Balance)
	}
}

func TestExecTxFailedRollback(t *testing.T) {
	exec, chain, db := newTestExecutor(t, nil)
	alice, bob := addrOf("alice"), addrOf("bob")
	_, err := exec.Genesis(alice, 1e8)
	require.Nil(t, err)

	_, err = exec.ExecTx(transferTx(t, alice, bob, 2e8))
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = exec.ExecTx(transferTx(t, alice, "notaddress", 1))
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = exec.ExecTx(transferTx(t, "", bob, 1))
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = exec.ExecTx(nil)
	assert.Equal(t, types.ErrEmptyTx, err)
	_, err = exec.ExecTx(&types.Transaction{Execer: []byte("none"), From: alice})
	assert.Equal(t, types.ErrUnRegistedDriver, errors.Cause(err))
	assert.Equal(t, 0, len(chain.txs))

	acc := account.NewCoinsAccount().SetDB(db)
	assert.Equal(t, int64(1e8), acc.LoadAccount(alice).Balance)
	assert.Equal(t, int64(0), acc.LoadAccount(bob).Balance)
	msg, err := exec.Query(cty.CoinsX, cty.FuncNameGetAddrReciver, &cty.ReqBalance{Addr: bob})
	require.Nil(t, err)
	assert.Equal(t, int64(0), msg.(*types.Int64).Data)
}

func TestQueryErrors(t *testing.T) {
	exec, _, _ := newTestExecutor(t, nil)
	_, err := exec.Query("none", "GetBalance", nil)
	assert.Equal(t, types.ErrUnRegistedDriver, err)
	_, err = exec.Query(cty.CoinsX, "GetNothing", nil)
	assert.Equal(t, types.ErrActionNotSupport, err)
	_, err = exec.Query(cty.CoinsX, cty.FuncNameGetBalance, &cty.ReqBalance{})
	assert.Equal(t, types.ErrInvalidAddress, err)
}
