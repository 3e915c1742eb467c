// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/lottery/account"
	"github.com/33cn/lottery/common"
	"github.com/33cn/lottery/common/address"
	dbm "github.com/33cn/lottery/common/db"
	hostexec "github.com/33cn/lottery/executor"
	drivers "github.com/33cn/lottery/system/dapp"
	cty "github.com/33cn/lottery/system/dapp/coins/types"
	"github.com/33cn/lottery/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	Init(cty.CoinsX, nil, nil)
}

func testAddr(name string) string {
	return address.PubKeyToAddress(common.Sha256([]byte(name))).String()
}

func newTestCoins(t *testing.T) (*Coins, dbm.DB) {
	db, err := dbm.NewGoMemDB("coins", "", 0)
	require.Nil(t, err)
	c := newCoins().(*Coins)
	c.SetStateDB(db)
	c.SetLocalDB(hostexec.NewLocalDB(db))
	c.SetEnv(1, 1, nil)
	return c, db
}

func TestCoinsName(t *testing.T) {
	assert.Equal(t, cty.CoinsX, GetName())
	assert.Panics(t, func() { Init("coins2", nil, nil) })
	assert.Panics(t, func() { Init(cty.CoinsX, nil, nil) })
	d, err := drivers.LoadDriver(cty.CoinsX, 0)
	require.Nil(t, err)
	assert.Equal(t, cty.CoinsX, d.GetDriverName())
}

func TestCoinsTransfer(t *testing.T) {
	c, db := newTestCoins(t)
	alice, bob := testAddr("alice"), testAddr("bob")
	acc := account.NewCoinsAccount().SetDB(db)
	_, err := acc.GenesisInit(alice, 10*types.Coin)
	require.Nil(t, err)

	tx, err := cty.CreateRawTransferTx(alice, bob, types.Coin, "hi")
	require.Nil(t, err)
	require.Nil(t, c.CheckTx(tx, 0))
	receipt, err := c.Exec(tx, 0)
	require.Nil(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, 2, len(receipt.KV))
	assert.Equal(t, 9*types.Coin, acc.LoadAccount(alice).Balance)
	assert.Equal(t, types.Coin, acc.LoadAccount(bob).Balance)

	//转给执行器地址
	tx, err = cty.CreateRawTransferTx(alice, drivers.ExecAddress(cty.CoinsX), types.Coin, "")
	require.Nil(t, err)
	_, err = c.Exec(tx, 0)
	assert.Nil(t, err)

	tx, err = cty.CreateRawTransferTx(alice, "bad", types.Coin, "")
	require.Nil(t, err)
	_, err = c.Exec(tx, 0)
	assert.Equal(t, types.ErrInvalidAddress, err)

	tx, err = cty.CreateRawTransferTx(bob, alice, 2*types.Coin, "")
	require.Nil(t, err)
	_, err = c.Exec(tx, 0)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = cty.CreateRawTransferTx(bob, alice, 0, "")
	assert.Equal(t, types.ErrAmount, err)
	assert.Equal(t, types.ErrInvalidAddress, c.CheckTx(&types.Transaction{}, 0))
	assert.Equal(t, types.ErrEmptyTx, c.CheckTx(nil, 0))
}

func TestCoinsLocalAndQuery(t *testing.T) {
	c, db := newTestCoins(t)
	alice, bob := testAddr("alice"), testAddr("bob")
	_, err := account.NewCoinsAccount().SetDB(db).GenesisInit(alice, 10*types.Coin)
	require.Nil(t, err)

	for i := 0; i < 2; i++ {
		tx, err := cty.CreateRawTransferTx(alice, bob, types.Coin, "")
		require.Nil(t, err)
		receipt, err := c.Exec(tx, 0)
		require.Nil(t, err)
		set, err := c.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
		require.Nil(t, err)
		require.Equal(t, 1, len(set.KV))
		for _, kv := range set.KV {
			require.Nil(t, db.Set(kv.Key, kv.Value))
		}
	}
	msg, err := c.Query(cty.FuncNameGetAddrReciver, types.Encode(&cty.ReqBalance{Addr: bob}))
	require.Nil(t, err)
	assert.Equal(t, 2*types.Coin, msg.(*types.Int64).Data)

	msg, err = c.Query(cty.FuncNameGetBalance, types.Encode(&cty.ReqBalance{Addr: alice}))
	require.Nil(t, err)
	assert.Equal(t, 8*types.Coin, msg.(*types.Account).Balance)

	//失败的交易不记录
	tx, err := cty.CreateRawTransferTx(alice, bob, types.Coin, "")
	require.Nil(t, err)
	set, err := c.ExecLocal(tx, &types.ReceiptData{Ty: types.ExecErr}, 0)
	require.Nil(t, err)
	assert.Equal(t, 0, len(set.KV))
}
