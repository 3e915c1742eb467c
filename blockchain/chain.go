// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockchain 本地区块链, 只保存区块头, 为执行器提供区块高度, 区块时间和父区块哈希
package blockchain

import (
	"sync"
	"time"

	"github.com/33cn/lottery/common"
	dbm "github.com/33cn/lottery/common/db"
	log "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/types"
	"github.com/rcrowley/go-metrics"
)

var chainlog = log.New("module", "blockchain")

// BlockChain 区块链
// 交易在 PendingHeader 的环境下执行, CreateBlock 把正在打包的区块写入数据库
type BlockChain struct {
	mu      sync.Mutex
	cfg     *types.Consensus
	store   *BlockStore
	pending *types.Header
	timeNow func() time.Time
	height  metrics.Gauge
}

// New 创建区块链, 数据库为空时写入创世区块
// 返回值 isNew 表示这次是否创建了创世区块, 这时需要执行创世交易
func New(cfg *types.Consensus, db dbm.DB) (chain *BlockChain, isNew bool, err error) {
	if cfg == nil {
		cfg = &types.Consensus{}
	}
	chain = &BlockChain{
		cfg:     cfg,
		store:   NewBlockStore(db),
		timeNow: time.Now,
		height:  metrics.GetOrRegisterGauge("blockchain.height", nil),
	}
	if chain.store.LastHeader() == nil {
		genesis := &types.Header{
			ParentHash: make([]byte, 32),
			Height:     0,
			BlockTime:  cfg.GenesisBlockTime,
		}
		genesis.Hash = genesis.CalcHash()
		if err := chain.store.SaveHeader(genesis); err != nil {
			return nil, false, err
		}
		chainlog.Info("create genesis block", "hash", common.ToHex(genesis.Hash), "blocktime", genesis.BlockTime)
		isNew = true
	}
	chain.height.Update(chain.store.Height())
	return chain, isNew, nil
}

// SetTimeFunc 替换时钟
func (chain *BlockChain) SetTimeFunc(f func() time.Time) {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	chain.timeNow = f
}

// LastHeader 最新的区块头
func (chain *BlockChain) LastHeader() *types.Header {
	return chain.store.LastHeader()
}

// Height 当前高度
func (chain *BlockChain) Height() int64 {
	return chain.store.Height()
}

// GetHeader 指定高度的区块头
func (chain *BlockChain) GetHeader(height int64) (*types.Header, error) {
	return chain.store.LoadHeaderByHeight(height)
}

// pendingLocked 正在打包的区块在第一次使用时创建, 区块时间大于父区块
func (chain *BlockChain) pendingLocked() *types.Header {
	if chain.pending == nil {
		tip := chain.store.LastHeader()
		blocktime := chain.timeNow().Unix()
		if tip.BlockTime >= blocktime {
			blocktime = tip.BlockTime + 1
		}
		chain.pending = &types.Header{
			ParentHash: tip.Hash,
			Height:     tip.Height + 1,
			BlockTime:  blocktime,
		}
	}
	return chain.pending
}

// PendingHeader 正在打包的区块头, 还没有 Hash
func (chain *BlockChain) PendingHeader() *types.Header {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	h := *chain.pendingLocked()
	return &h
}

// AddTx 交易加入正在打包的区块
func (chain *BlockChain) AddTx(tx *types.Transaction) {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	chain.pendingLocked().TxCount++
}

// CreateBlock 打包区块, 空区块也会打包, 区块高度由出块节奏决定
func (chain *BlockChain) CreateBlock() (*types.Header, error) {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	header := chain.pendingLocked()
	header.Hash = header.CalcHash()
	if err := chain.store.SaveHeader(header); err != nil {
		chainlog.Error("CreateBlock", "height", header.Height, "err", err)
		return nil, err
	}
	chain.pending = nil
	chain.height.Update(header.Height)
	chainlog.Debug("CreateBlock", "height", header.Height, "txs", header.TxCount, "hash", common.ToHex(header.Hash))
	h := *header
	return &h, nil
}
