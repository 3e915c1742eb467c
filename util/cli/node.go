// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"

	"github.com/33cn/lottery/blockchain"
	dbm "github.com/33cn/lottery/common/db"
	log "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/consensus"
	"github.com/33cn/lottery/executor"
	"github.com/33cn/lottery/metrics"
	lotteryexec "github.com/33cn/lottery/plugin/dapp/lottery/executor"
	"github.com/33cn/lottery/pluginmgr"
	"github.com/33cn/lottery/rpc"
	"github.com/33cn/lottery/types"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var nlog = log.New("module", "node")

// nodeAPI rpc 需要的接口, 交易和查询由执行器处理, 区块头来自 blockchain
type nodeAPI struct {
	*executor.Executor
	chain *blockchain.BlockChain
}

func (api *nodeAPI) LastHeader() *types.Header {
	return api.chain.LastHeader()
}

// Node 一个完整的本地节点
type Node struct {
	cfg      *types.Config
	db       dbm.DB
	chain    *blockchain.BlockChain
	exec     *executor.Executor
	miner    consensus.Miner
	rpc      *rpc.JSONRPCServer
	registry *prometheus.Registry
	cancel   context.CancelFunc

	// RPCAddr json rpc 实际监听的地址, Start 之后有效
	RPCAddr string
}

// NewNode 按配置加载各个模块, 新链会执行创世
func NewNode(cfg *types.Config, sub *types.ConfigSubModule) (*Node, error) {
	if cfg == nil || cfg.Store == nil || cfg.Consensus == nil || cfg.RPC == nil {
		return nil, types.ErrInvalidParam
	}
	nlog.Info("loading store module", "driver", cfg.Store.Driver, "path", cfg.Store.DbPath)
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, errors.Wrap(err, "open db")
	}
	n := &Node{cfg: cfg, db: db, registry: prometheus.NewRegistry()}
	if err := n.load(sub); err != nil {
		db.Close()
		return nil, err
	}
	return n, nil
}

func (n *Node) load(sub *types.ConfigSubModule) error {
	nlog.Info("loading blockchain module")
	chain, isNew, err := blockchain.New(n.cfg.Consensus, n.db)
	if err != nil {
		return errors.Wrap(err, "load blockchain")
	}
	n.chain = chain

	nlog.Info("loading execs module")
	pluginmgr.InitExec(n.cfg, sub)
	n.exec = executor.New(n.cfg.Exec, n.db, chain)
	if isNew {
		nlog.Info("new chain, init genesis", "addr", n.cfg.Consensus.Genesis, "amount", n.cfg.Consensus.GenesisAmount)
	}
	if _, err := n.exec.Genesis(n.cfg.Consensus.Genesis, n.cfg.Consensus.GenesisAmount); err != nil && err != types.ErrGenesisExist {
		return errors.Wrap(err, "genesis")
	}

	sink := metrics.NewLotterySink(nil)
	lotteryexec.SetEventSink(lotteryexec.MultiSink{lotteryexec.NewLogSink(), sink})

	nlog.Info("loading consensus module", "name", n.cfg.Consensus.Name)
	n.miner, err = consensus.New(n.cfg.Consensus, chain, n.exec)
	if err != nil {
		return err
	}

	nlog.Info("loading rpc module")
	n.rpc, err = rpc.NewJSONRPCServer(n.cfg.RPC, &nodeAPI{Executor: n.exec, chain: chain}, n.registry)
	if err != nil {
		return err
	}
	metrics.MustRegister(n.registry, sink)
	metrics.MustRegister(n.registry, n.rpc)
	n.registry.MustRegister(collectors.NewGoCollector())
	return nil
}

// Start 开始出块, 监听 rpc
func (n *Node) Start(ctx context.Context) error {
	ctx, n.cancel = context.WithCancel(ctx)
	addr, err := n.rpc.Listen()
	if err != nil {
		n.cancel()
		return errors.Wrap(err, "rpc listen")
	}
	n.RPCAddr = addr
	n.miner.Start(ctx)
	metrics.StartMetrics(ctx, n.cfg.Metrics, nil)
	return nil
}

// Chain blockchain
func (n *Node) Chain() *blockchain.BlockChain {
	return n.chain
}

// Executor executor
func (n *Node) Executor() *executor.Executor {
	return n.exec
}

// Close close all module
func (n *Node) Close() {
	nlog.Info("begin close rpc module")
	n.rpc.Close()
	nlog.Info("begin close consensus module")
	n.miner.Close()
	if n.cancel != nil {
		n.cancel()
	}
	nlog.Info("begin close store module")
	n.db.Close()
}
