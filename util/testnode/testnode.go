// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testnode 提供一个通用的测试节点, 用于单元测试和集成测试
// 数据保存在内存中, rpc 监听随机端口, 默认不自动出块
package testnode

import (
	"context"

	log "github.com/33cn/lottery/common/log"
	_ "github.com/33cn/lottery/plugin" //register plugins
	"github.com/33cn/lottery/rpc/jsonclient"
	_ "github.com/33cn/lottery/system" //register system dapps
	"github.com/33cn/lottery/types"
	"github.com/33cn/lottery/util/cli"
)

var tlog = log.New("module", "testnode")

// 出块间隔一小时, 测试通过 CreateBlock 手动出块
var cfgstring = `
Title="testnode"

[log]
loglevel = "error"
logConsoleLevel = "error"

[store]
name = "testnode"
driver = "memdb"
dbPath = ""

[consensus]
name = "solo"
genesis = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
genesisAmount = 10000000000000000
genesisBlockTime = 1514533394
blockIntervalMs = 3600000

[rpc]
jrpcBindAddr = "127.0.0.1:0"

[exec.sub.lottery]
ticketPrice = 100000000
roundDuration = 3
ticketLength = 3
randomSource = "block"
`

// LotteryMock 测试节点
type LotteryMock struct {
	*cli.Node
	cfg    *types.Config
	sub    *types.ConfigSubModule
	client *jsonclient.JSONClient
}

// GetDefaultConfig 测试节点的默认配置
func GetDefaultConfig() (*types.Config, *types.ConfigSubModule) {
	cfg, sub, err := types.InitCfgString(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

// New 使用默认配置创建并启动测试节点
func New() *LotteryMock {
	cfg, sub := GetDefaultConfig()
	return NewWithConfig(cfg, sub)
}

// NewWithConfig 创建并启动测试节点, 失败时 panic
func NewWithConfig(cfg *types.Config, sub *types.ConfigSubModule) *LotteryMock {
	node, err := cli.NewNode(cfg, sub)
	if err != nil {
		panic(err)
	}
	if err := node.Start(context.Background()); err != nil {
		node.Close()
		panic(err)
	}
	client, err := jsonclient.NewJSONClient(node.RPCAddr)
	if err != nil {
		node.Close()
		panic(err)
	}
	tlog.Info("testnode started", "rpc", node.RPCAddr)
	return &LotteryMock{Node: node, cfg: cfg, sub: sub, client: client}
}

// GetCfg 节点配置
func (mock *LotteryMock) GetCfg() *types.Config {
	return mock.cfg
}

// GetSubCfg 子模块配置
func (mock *LotteryMock) GetSubCfg() *types.ConfigSubModule {
	return mock.sub
}

// GetGenesisAddress 创世地址
func (mock *LotteryMock) GetGenesisAddress() string {
	return mock.cfg.Consensus.Genesis
}

// GetJSONC json rpc 客户端
func (mock *LotteryMock) GetJSONC() *jsonclient.JSONClient {
	return mock.client
}

// CreateBlock 手动出一个块, 返回新块的高度
func (mock *LotteryMock) CreateBlock() int64 {
	exec := mock.Executor()
	exec.Lock()
	defer exec.Unlock()
	header, err := mock.Chain().CreateBlock()
	if err != nil {
		panic(err)
	}
	return header.Height
}

// WaitHeight 出块直到最新区块的高度达到 height
func (mock *LotteryMock) WaitHeight(height int64) {
	for mock.Chain().Height() < height {
		mock.CreateBlock()
	}
}
