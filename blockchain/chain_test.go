// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"os"
	"testing"
	"time"

	dbm "github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTime(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0) }
}

func TestGenesisBlock(t *testing.T) {
	db, err := dbm.NewGoMemDB("chain", "", 0)
	require.Nil(t, err)
	chain, isNew, err := New(&types.Consensus{GenesisBlockTime: 1514533394}, db)
	require.Nil(t, err)
	assert.True(t, isNew)
	assert.Equal(t, int64(0), chain.Height())
	genesis := chain.LastHeader()
	assert.Equal(t, int64(1514533394), genesis.BlockTime)
	assert.Equal(t, make([]byte, 32), genesis.ParentHash)
	assert.Equal(t, genesis.CalcHash(), genesis.Hash)

	//重新打开不会再创建创世区块
	chain, isNew, err = New(&types.Consensus{GenesisBlockTime: 1}, db)
	require.Nil(t, err)
	assert.False(t, isNew)
	assert.Equal(t, genesis, chain.LastHeader())
}

func TestPendingAndCreateBlock(t *testing.T) {
	db, err := dbm.NewGoMemDB("chain", "", 0)
	require.Nil(t, err)
	chain, _, err := New(&types.Consensus{GenesisBlockTime: 1000}, db)
	require.Nil(t, err)
	genesis := chain.LastHeader()

	//时钟早于父区块时使用父区块的时间加1
	chain.SetTimeFunc(fixedTime(10))
	pending := chain.PendingHeader()
	assert.Equal(t, int64(1), pending.Height)
	assert.Equal(t, int64(1001), pending.BlockTime)
	assert.Equal(t, genesis.Hash, pending.ParentHash)
	assert.Nil(t, pending.Hash)

	chain.AddTx(&types.Transaction{})
	chain.AddTx(&types.Transaction{})
	//同一个区块中的交易看到相同的区块时间
	chain.SetTimeFunc(fixedTime(2000))
	assert.Equal(t, int64(1001), chain.PendingHeader().BlockTime)

	block1, err := chain.CreateBlock()
	require.Nil(t, err)
	assert.Equal(t, int64(1), block1.Height)
	assert.Equal(t, int64(2), block1.TxCount)
	assert.Equal(t, block1.CalcHash(), block1.Hash)
	assert.Equal(t, block1, chain.LastHeader())

	pending = chain.PendingHeader()
	assert.Equal(t, int64(2), pending.Height)
	assert.Equal(t, int64(2000), pending.BlockTime)
	assert.Equal(t, block1.Hash, pending.ParentHash)
	assert.Equal(t, int64(0), pending.TxCount)

	block2, err := chain.CreateBlock()
	require.Nil(t, err)
	assert.NotEqual(t, block1.Hash, block2.Hash)

	h, err := chain.GetHeader(1)
	require.Nil(t, err)
	assert.Equal(t, block1, h)
	_, err = chain.GetHeader(3)
	assert.Equal(t, types.ErrHeightNotExist, err)
}

func TestBlockStoreLevelDB(t *testing.T) {
	dir, err := os.MkdirTemp("", "blockstore")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	db, err := dbm.NewDB("chain", "leveldb", dir, 16)
	require.Nil(t, err)
	bs := NewBlockStore(db)
	assert.Nil(t, bs.LastHeader())
	assert.Equal(t, int64(-1), bs.Height())

	assert.Equal(t, types.ErrInvalidParam, bs.SaveHeader(&types.Header{Height: 1}))
	require.Nil(t, bs.SaveHeader(&types.Header{Height: 0, BlockTime: 5}))
	require.Nil(t, bs.SaveHeader(&types.Header{Height: 1, BlockTime: 6}))
	db.Close()

	db, err = dbm.NewDB("chain", "leveldb", dir, 16)
	require.Nil(t, err)
	defer db.Close()
	bs = NewBlockStore(db)
	assert.Equal(t, int64(1), bs.Height())
	assert.Equal(t, int64(6), bs.LastHeader().BlockTime)
	h, err := bs.LoadHeaderByHeight(0)
	require.Nil(t, err)
	assert.Equal(t, int64(5), h.BlockTime)
}
