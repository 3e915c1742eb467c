// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行器, 串行执行交易并维护状态数据库和本地数据库
package executor

import (
	"sync"
	"time"

	"github.com/33cn/lottery/account"
	"github.com/33cn/lottery/common"
	dbm "github.com/33cn/lottery/common/db"
	log "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs")

// genesisKey 创世交易执行过之后写入状态数据库
var genesisKey = []byte("mavl-genesis-flag")

// Chain 执行器需要的区块链接口
type Chain interface {
	// PendingHeader 正在打包的区块, 交易在这个区块的环境下执行
	PendingHeader() *types.Header
	// AddTx 交易执行成功后加入正在打包的区块
	AddTx(tx *types.Transaction)
}

// Executor 执行器, 所有调用串行执行
type Executor struct {
	mu    sync.Mutex
	chain Chain
	state *StateDB
	local *LocalDB
	cfg   *types.Exec

	txOk     metrics.Counter
	txFailed metrics.Counter
	execTime metrics.Timer
}

// New 创建执行器, state 和 local 数据保存在同一个数据库中, 通过前缀区分
func New(cfg *types.Exec, db dbm.DB, chain Chain) *Executor {
	if cfg == nil {
		cfg = &types.Exec{}
	}
	exec := &Executor{
		chain: chain,
		state: NewStateDB(db),
		local: NewLocalDB(db),
		cfg:   cfg,
	}
	if cfg.EnableStat {
		exec.txOk = metrics.GetOrRegisterCounter("executor.tx.ok", nil)
		exec.txFailed = metrics.GetOrRegisterCounter("executor.tx.failed", nil)
		exec.execTime = metrics.GetOrRegisterTimer("executor.tx.time", nil)
	} else {
		exec.txOk = metrics.NilCounter{}
		exec.txFailed = metrics.NilCounter{}
		exec.execTime = metrics.NilTimer{}
	}
	return exec
}

// LoadDriver 加载执行器驱动
func LoadDriver(name string, height int64) (dapp.Driver, error) {
	return dapp.LoadDriver(name, height)
}

func (exec *Executor) setEnv(driver dapp.Driver, header *types.Header) {
	driver.SetStateDB(exec.state)
	driver.SetLocalDB(exec.local)
	driver.SetEnv(header.Height, header.BlockTime, header.ParentHash)
}

// ExecTx 执行一笔交易
// 交易失败时状态数据库回滚, 不产生任何修改; 成功时修改落盘, 然后执行 ExecLocal
func (exec *Executor) ExecTx(tx *types.Transaction) (*types.ReceiptData, error) {
	if tx == nil {
		return nil, types.ErrEmptyTx
	}
	exec.mu.Lock()
	defer exec.mu.Unlock()
	header := exec.chain.PendingHeader()
	start := time.Now()
	receipt, err := exec.execTx(tx, header)
	exec.execTime.UpdateSince(start)
	if err != nil {
		exec.txFailed.Inc(1)
		elog.Info("ExecTx failed", "execer", string(tx.Execer), "from", tx.From, "height", header.Height, "err", err)
		return nil, err
	}
	if err := exec.state.Flush(); err != nil {
		return nil, errors.Wrap(err, "flush state")
	}
	exec.txOk.Inc(1)
	rdata := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	exec.execLocal(tx, rdata, header)
	exec.chain.AddTx(tx)
	elog.Debug("ExecTx", "execer", string(tx.Execer), "hash", common.ToHex(tx.Hash()), "height", header.Height)
	return rdata, nil
}

func (exec *Executor) execTx(tx *types.Transaction, header *types.Header) (*types.Receipt, error) {
	driver, err := LoadDriver(string(tx.Execer), header.Height)
	if err != nil {
		return nil, errors.Wrap(err, string(tx.Execer))
	}
	exec.setEnv(driver, header)
	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	exec.state.Begin()
	receipt, err := driver.Exec(tx, 0)
	if err != nil {
		exec.state.Rollback()
		return nil, err
	}
	if receipt == nil {
		exec.state.Rollback()
		return nil, types.ErrExecFailed
	}
	for _, kv := range receipt.KV {
		if err := exec.state.Set(kv.Key, kv.Value); err != nil {
			exec.state.Rollback()
			return nil, err
		}
	}
	exec.state.Commit()
	return receipt, nil
}

// execLocal 的错误只记录日志, 不影响已经提交的交易
func (exec *Executor) execLocal(tx *types.Transaction, rdata *types.ReceiptData, header *types.Header) {
	driver, err := LoadDriver(string(tx.Execer), header.Height)
	if err != nil {
		elog.Error("execLocal LoadDriver", "execer", string(tx.Execer), "err", err)
		return
	}
	exec.setEnv(driver, header)
	set, err := driver.ExecLocal(tx, rdata, 0)
	if err != nil {
		elog.Error("execLocal", "execer", string(tx.Execer), "err", err)
		exec.local.Rollback()
		return
	}
	if set != nil {
		for _, kv := range set.KV {
			exec.local.Set(kv.Key, kv.Value)
		}
	}
	if err := exec.local.Commit(); err != nil {
		elog.Error("execLocal commit", "execer", string(tx.Execer), "err", err)
	}
	if n, ok := driver.(Notifier); ok {
		n.Committed(tx, rdata)
	}
}

// Notifier 执行器在交易提交之后需要通知外部时实现这个接口
type Notifier interface {
	Committed(tx *types.Transaction, receipt *types.ReceiptData)
}

// Query 查询执行器, 只读已经提交的数据
func (exec *Executor) Query(driverName, funcName string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	driver, err := LoadDriver(driverName, -1)
	if err != nil {
		return nil, err
	}
	exec.setEnv(driver, exec.chain.PendingHeader())
	var data []byte
	if param != nil {
		data = types.Encode(param)
	}
	return driver.Query(funcName, data)
}

// Genesis 创世: 给 addr 发行 amount 个币, 然后初始化实现了 dapp.Genesis 的执行器
func (exec *Executor) Genesis(addr string, amount int64) (*types.Receipt, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if _, err := exec.state.Get(genesisKey); err == nil {
		return nil, types.ErrGenesisExist
	}
	header := &types.Header{}
	exec.state.Begin()
	receipt, err := account.NewCoinsAccount().SetDB(exec.state).GenesisInit(addr, amount)
	if err != nil {
		exec.state.Rollback()
		return nil, err
	}
	for _, name := range dapp.DriverNames() {
		driver, err := LoadDriver(name, 0)
		if err != nil {
			continue
		}
		g, ok := driver.(dapp.Genesis)
		if !ok {
			continue
		}
		exec.setEnv(driver, header)
		r, err := g.Genesis()
		if err != nil {
			exec.state.Rollback()
			return nil, errors.Wrap(err, name)
		}
		for _, kv := range r.KV {
			exec.state.Set(kv.Key, kv.Value)
		}
		receipt.KV = append(receipt.KV, r.KV...)
		receipt.Logs = append(receipt.Logs, r.Logs...)
		elog.Info("Genesis", "driver", name)
	}
	exec.state.Set(genesisKey, []byte(addr))
	exec.state.Commit()
	if err := exec.state.Flush(); err != nil {
		return nil, err
	}
	return receipt, nil
}

// Lock 出块时锁住执行器, 保证一个区块中的交易都在同一个区块环境中执行
func (exec *Executor) Lock() {
	exec.mu.Lock()
}

// Unlock unlock
func (exec *Executor) Unlock() {
	exec.mu.Unlock()
}
