// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"sync"

	"github.com/33cn/lottery/common"
	dbm "github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/types"
)

var (
	blockLastHeader = []byte("Chain-LastHeader")
	storeLog        = chainlog.New("submodule", "store")
)

//存储block height 对应的block header
func calcHeightToHeaderKey(height int64) []byte {
	return []byte(fmt.Sprintf("Chain-Height:%012d", height))
}

// BlockStore 保存区块头, 最新的区块头单独保存一份
type BlockStore struct {
	mu         sync.RWMutex
	db         dbm.DB
	lastHeader *types.Header
}

// NewBlockStore 从数据库加载最新的区块头, 数据库为空时 LastHeader 返回 nil
func NewBlockStore(db dbm.DB) *BlockStore {
	bs := &BlockStore{db: db}
	header, err := LoadLastHeader(db)
	if err != nil {
		if err != types.ErrHeightNotExist {
			panic(err)
		}
		storeLog.Info("load last header error, may be init database")
		return bs
	}
	bs.lastHeader = header
	return bs
}

// LoadLastHeader 读取数据库中的最新区块头
func LoadLastHeader(db dbm.DB) (*types.Header, error) {
	data, err := db.Get(blockLastHeader)
	if data == nil || err != nil {
		if err != types.ErrNotFound {
			storeLog.Error("LoadLastHeader", "error", err)
		}
		return nil, types.ErrHeightNotExist
	}
	var header types.Header
	if err := types.Decode(data, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

// Height 当前高度, 没有区块时为 -1
func (bs *BlockStore) Height() int64 {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	if bs.lastHeader == nil {
		return -1
	}
	return bs.lastHeader.Height
}

// LastHeader 最新的区块头
func (bs *BlockStore) LastHeader() *types.Header {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	if bs.lastHeader == nil {
		return nil
	}
	h := *bs.lastHeader
	return &h
}

// SaveHeader 保存区块头并更新最新区块头, 高度必须连续
func (bs *BlockStore) SaveHeader(header *types.Header) error {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	next := int64(0)
	if bs.lastHeader != nil {
		next = bs.lastHeader.Height + 1
	}
	if header.Height != next {
		storeLog.Error("SaveHeader", "height", header.Height, "expect", next)
		return types.ErrInvalidParam
	}
	data := types.Encode(header)
	batch := bs.db.NewBatch(true)
	batch.Set(calcHeightToHeaderKey(header.Height), data)
	batch.Set(blockLastHeader, data)
	if err := batch.Write(); err != nil {
		return err
	}
	h := *header
	bs.lastHeader = &h
	storeLog.Debug("SaveHeader", "height", header.Height, "hash", common.ToHex(header.Hash))
	return nil
}

// LoadHeaderByHeight 读取指定高度的区块头
func (bs *BlockStore) LoadHeaderByHeight(height int64) (*types.Header, error) {
	data, err := bs.db.Get(calcHeightToHeaderKey(height))
	if err != nil {
		return nil, types.ErrHeightNotExist
	}
	var header types.Header
	if err := types.Decode(data, &header); err != nil {
		return nil, err
	}
	return &header, nil
}
