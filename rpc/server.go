// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc json rpc 服务, 服务名为 Lottery
package rpc

import (
	"math/rand"

	"github.com/33cn/lottery/common"
	log "github.com/33cn/lottery/common/log"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	rpctypes "github.com/33cn/lottery/rpc/types"
	cty "github.com/33cn/lottery/system/dapp/coins/types"
	"github.com/33cn/lottery/types"
)

var rlog = log.New("module", "rpc")

// API rpc 需要的节点接口
type API interface {
	ExecTx(tx *types.Transaction) (*types.ReceiptData, error)
	Query(driver, funcName string, param types.Message) (types.Message, error)
	LastHeader() *types.Header
}

// Lottery json rpc 服务
type Lottery struct {
	api API
}

func (l *Lottery) sendTx(tx *types.Transaction, result *rpctypes.ReplyTx) error {
	tx.Nonce = rand.Int63()
	rdata, err := l.api.ExecTx(tx)
	if err != nil {
		rlog.Debug("sendTx", "execer", string(tx.Execer), "from", tx.From, "err", err)
		return err
	}
	*result = rpctypes.ReplyTx{
		Hash:    common.ToHex(tx.Hash()),
		Receipt: rpctypes.DecodeLog(tx.Execer, rdata),
	}
	return nil
}

// Register 购买号码
func (l *Lottery) Register(in *rpctypes.ReqRegister, result *rpctypes.ReplyTx) error {
	ticket, err := common.FromHex(in.Ticket)
	if err != nil {
		return types.ErrInvalidParam
	}
	return l.sendTx(pty.CreateRawLotteryRegisterTx(in.From, ticket, in.Amount), result)
}

// Transfer 转账
func (l *Lottery) Transfer(in *rpctypes.ReqTransfer, result *rpctypes.ReplyTx) error {
	tx, err := cty.CreateRawTransferTx(in.From, in.To, in.Amount, in.Note)
	if err != nil {
		return err
	}
	return l.sendTx(tx, result)
}

// GetLotteryInfo 彩票状态
func (l *Lottery) GetLotteryInfo(in *rpctypes.ReqNil, result *rpctypes.LotteryInfo) error {
	reply, err := l.api.Query(pty.LotteryX, pty.FuncNameGetLotteryInfo, &types.ReqNil{})
	if err != nil {
		return err
	}
	*result = *rpctypes.ConvertLotteryInfo(reply.(*pty.ReplyLotteryInfo))
	return nil
}

// GetParticipants 某一轮某个号码的参与者
func (l *Lottery) GetParticipants(in *rpctypes.ReqParticipants, result *rpctypes.ReplyAddrs) error {
	ticket, err := common.FromHex(in.Ticket)
	if err != nil {
		return types.ErrInvalidParam
	}
	reply, err := l.api.Query(pty.LotteryX, pty.FuncNameGetParticipants, &pty.ReqLotteryParticipants{Ticket: ticket, Round: in.Round})
	if err != nil {
		return err
	}
	result.Addrs = reply.(*pty.ReplyLotteryParticipants).Addrs
	return nil
}

// GetPreviousWinners 上一轮的中奖者
func (l *Lottery) GetPreviousWinners(in *rpctypes.ReqNil, result *rpctypes.ReplyAddrs) error {
	reply, err := l.api.Query(pty.LotteryX, pty.FuncNameGetPreviousWinners, &types.ReqNil{})
	if err != nil {
		return err
	}
	result.Addrs = reply.(*pty.ReplyLotteryParticipants).Addrs
	return nil
}

// GetDrawHistory 开奖记录, 最近的在前
func (l *Lottery) GetDrawHistory(in *rpctypes.ReqCount, result *rpctypes.DrawRecords) error {
	reply, err := l.api.Query(pty.LotteryX, pty.FuncNameGetDrawHistory, &pty.ReqLotteryDrawHistory{Count: in.Count})
	if err != nil {
		return err
	}
	*result = *rpctypes.ConvertDrawRecords(reply.(*pty.LotteryDrawRecords))
	return nil
}

// GetBuyHistory 购买记录
func (l *Lottery) GetBuyHistory(in *rpctypes.ReqBuyHistory, result *rpctypes.BuyRecords) error {
	reply, err := l.api.Query(pty.LotteryX, pty.FuncNameGetBuyHistory, &pty.ReqLotteryBuyHistory{Addr: in.Addr, Round: in.Round})
	if err != nil {
		return err
	}
	*result = *rpctypes.ConvertBuyRecords(reply.(*pty.LotteryBuyRecords))
	return nil
}

// GetBalance 账户余额
func (l *Lottery) GetBalance(in *rpctypes.ReqAddr, result *rpctypes.Account) error {
	reply, err := l.api.Query(cty.CoinsX, cty.FuncNameGetBalance, &cty.ReqBalance{Addr: in.Addr})
	if err != nil {
		return err
	}
	acc := reply.(*types.Account)
	*result = rpctypes.Account{Addr: in.Addr, Balance: acc.Balance}
	return nil
}

// GetLastBlock 最新区块
func (l *Lottery) GetLastBlock(in *rpctypes.ReqNil, result *rpctypes.Header) error {
	header := l.api.LastHeader()
	if header == nil {
		return types.ErrHeightNotExist
	}
	*result = *rpctypes.ConvertHeader(header)
	return nil
}
