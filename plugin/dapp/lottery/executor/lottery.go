// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor lottery 执行器: 按轮次购买号码, 到期开奖, 奖池平分给中奖号码的持有者
package executor

import (
	"encoding/json"
	"sync"

	log "github.com/33cn/lottery/common/log"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/system/random"
	"github.com/33cn/lottery/types"
)

var llog = log.New("module", "execs.lottery")

// RandomFactory 根据区块环境创建随机数来源
type RandomFactory func(env *random.Env) (random.Source, error)

type lotteryConf struct {
	conf      *pty.Config
	sink      EventSink
	newRandom RandomFactory
}

var (
	confMu     sync.RWMutex
	current    *lotteryConf
	registOnce sync.Once
)

// Option 初始化选项
type Option func(c *lotteryConf)

// WithEventSink 设置购买和开奖的通知
func WithEventSink(sink EventSink) Option {
	return func(c *lotteryConf) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithRandomFactory 替换随机数来源
func WithRandomFactory(f RandomFactory) Option {
	return func(c *lotteryConf) {
		if f != nil {
			c.newRandom = f
		}
	}
}

// NewConfig 解析 [exec.sub.lottery] 的配置
func NewConfig(sub []byte) (*pty.Config, error) {
	var subcfg pty.Config
	if sub != nil {
		if err := json.Unmarshal(sub, &subcfg); err != nil {
			return nil, err
		}
	}
	subcfg.FillDefault()
	if err := subcfg.Validate(); err != nil {
		return nil, err
	}
	return &subcfg, nil
}

// Init 注册执行器, 配置错误时 panic
// 可以多次调用, 后一次调用的配置覆盖之前的配置
func Init(name string, cfg *types.Config, sub []byte, opts ...Option) {
	driverName := GetName()
	if name != driverName {
		panic("system dapp can't be rename")
	}
	conf, err := NewConfig(sub)
	if err != nil {
		panic(err)
	}
	c := &lotteryConf{conf: conf, sink: &logSink{}}
	c.newRandom = func(env *random.Env) (random.Source, error) {
		return random.New(conf.RandomSource, env)
	}
	for _, opt := range opts {
		opt(c)
	}
	confMu.Lock()
	current = c
	confMu.Unlock()
	registOnce.Do(func() {
		drivers.Register(driverName, newLottery, 0)
	})
	llog.Info("Init", "ticketPrice", conf.TicketPrice, "roundDuration", conf.RoundDuration,
		"ticketLength", conf.TicketLength, "randomSource", conf.RandomSource)
}

// SetEventSink 替换当前的通知
func SetEventSink(sink EventSink) {
	confMu.Lock()
	defer confMu.Unlock()
	if current != nil && sink != nil {
		c := *current
		c.sink = sink
		current = &c
	}
}

func getConf() *lotteryConf {
	confMu.RLock()
	defer confMu.RUnlock()
	if current == nil {
		conf := pty.DefaultConfig()
		return &lotteryConf{
			conf: conf,
			sink: &logSink{},
			newRandom: func(env *random.Env) (random.Source, error) {
				return random.New(conf.RandomSource, env)
			},
		}
	}
	return current
}

// GetName 执行器名
func GetName() string {
	return pty.LotteryX
}

// Lottery 执行器
type Lottery struct {
	drivers.DriverBase
	conf *lotteryConf
}

func newLottery() drivers.Driver {
	l := &Lottery{conf: getConf()}
	l.SetChild(l)
	l.SetExecutorType(types.LoadExecutorType(pty.LotteryX))
	return l
}

// GetDriverName 驱动名
func (lott *Lottery) GetDriverName() string {
	return pty.LotteryX
}

// Config 当前的配置
func (lott *Lottery) Config() *pty.Config {
	return lott.conf.conf
}

// Genesis 创世时初始化状态, 上一次开奖高度为0
func (lott *Lottery) Genesis() (*types.Receipt, error) {
	db := lott.GetStateDB()
	if _, err := db.Get(stateKey()); err == nil {
		return nil, types.ErrGenesisExist
	}
	state := newState(0, lott.Config().TicketLength)
	kv := saveState(db, state)
	return &types.Receipt{Ty: types.ExecOk, KV: kv}, nil
}

// Committed 交易提交之后通知外部
func (lott *Lottery) Committed(tx *types.Transaction, receipt *types.ReceiptData) {
	if receipt.GetTy() != types.ExecOk {
		return
	}
	sink := lott.conf.sink
	var draw *pty.ReceiptLotteryDraw
	var payout *pty.ReceiptLotteryPayout
	for _, item := range receipt.Logs {
		switch item.Ty {
		case pty.TyLogLotteryRegister:
			var reg pty.ReceiptLotteryRegister
			if err := types.Decode(item.Log, &reg); err != nil {
				llog.Error("Committed decode register", "err", err)
				continue
			}
			sink.TicketRegistered(reg.Ticket, reg.Addr)
		case pty.TyLogLotteryDraw:
			draw = &pty.ReceiptLotteryDraw{}
			if err := types.Decode(item.Log, draw); err != nil {
				llog.Error("Committed decode draw", "err", err)
				draw = nil
			}
		case pty.TyLogLotteryPayout:
			payout = &pty.ReceiptLotteryPayout{}
			if err := types.Decode(item.Log, payout); err != nil {
				llog.Error("Committed decode payout", "err", err)
				payout = nil
			}
		}
	}
	if draw == nil {
		return
	}
	if ob, ok := sink.(DrawObserver); ok {
		ob.LotteryDrawn(draw, payout)
	}
}
