// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package consensus 根据配置创建出块模块, 目前只支持 solo
package consensus

import (
	"context"
	"sync"

	"github.com/33cn/lottery/consensus/solo"
	"github.com/33cn/lottery/types"
)

// Miner 出块模块
type Miner interface {
	Start(ctx context.Context)
	Close()
}

// New 创建出块模块, locker 在出块期间被锁住, 可以为 nil
func New(cfg *types.Consensus, chain solo.Chain, locker sync.Locker) (Miner, error) {
	if cfg == nil {
		return nil, types.ErrInvalidParam
	}
	switch cfg.Name {
	case "solo", "":
		return solo.New(cfg, chain, locker), nil
	}
	return nil, types.ErrConsensusNotSupport
}
