// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solo 单节点按固定间隔出块
package solo

import (
	"context"
	"sync"
	"time"

	log "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/types"
)

var slog = log.New("module", "solo")

const defaultBlockInterval = time.Second

// Chain 出块需要的区块链接口
type Chain interface {
	CreateBlock() (*types.Header, error)
}

type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// Client solo 出块
type Client struct {
	cfg      *types.Consensus
	chain    Chain
	locker   sync.Locker
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New 创建 solo, 出块间隔由 blockIntervalMs 配置
func New(cfg *types.Consensus, chain Chain, locker sync.Locker) *Client {
	interval := time.Duration(cfg.BlockIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = defaultBlockInterval
	}
	if locker == nil {
		locker = nopLocker{}
	}
	return &Client{
		cfg:      cfg,
		chain:    chain,
		locker:   locker,
		interval: interval,
	}
}

// Start 启动出块, ctx 结束或者调用 Close 时停止
func (client *Client) Start(ctx context.Context) {
	client.mu.Lock()
	defer client.mu.Unlock()
	if client.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	client.cancel = cancel
	client.done = make(chan struct{})
	go client.CreateBlock(ctx, client.done)
	slog.Info("consensus solo started", "interval", client.interval)
}

// CreateBlock 出块循环
func (client *Client) CreateBlock(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(client.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			client.createOne()
		}
	}
}

func (client *Client) createOne() {
	client.locker.Lock()
	defer client.locker.Unlock()
	header, err := client.chain.CreateBlock()
	if err != nil {
		slog.Error("CreateBlock", "err", err)
		return
	}
	slog.Debug("CreateBlock", "height", header.Height, "txs", header.TxCount)
}

// Close 停止出块并等待出块循环退出
func (client *Client) Close() {
	client.mu.Lock()
	cancel, done := client.cancel, client.done
	client.cancel = nil
	client.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	slog.Info("consensus solo closed")
}
