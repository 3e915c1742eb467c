// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/common"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
)

// EventSink 购买成功的通知, 在交易提交之后调用
type EventSink interface {
	TicketRegistered(ticket []byte, from string)
}

// DrawObserver EventSink 可以选择实现这个接口接收开奖通知, 没有中奖者时 payout 为 nil
type DrawObserver interface {
	LotteryDrawn(draw *pty.ReceiptLotteryDraw, payout *pty.ReceiptLotteryPayout)
}

type logSink struct{}

func (s *logSink) TicketRegistered(ticket []byte, from string) {
	llog.Info("TicketRegistered", "ticket", common.ToHex(ticket), "from", from)
}

func (s *logSink) LotteryDrawn(draw *pty.ReceiptLotteryDraw, payout *pty.ReceiptLotteryPayout) {
	if payout == nil {
		llog.Info("LotteryDrawn no winner", "round", draw.Round, "ticket", common.ToHex(draw.WinnerTicket), "height", draw.Height)
		return
	}
	llog.Info("LotteryDrawn", "round", draw.Round, "ticket", common.ToHex(draw.WinnerTicket), "height", draw.Height,
		"winners", len(payout.Winners), "payout", payout.Payout, "jackpot", payout.Jackpot)
}

// MultiSink 把通知转发给多个 EventSink
type MultiSink []EventSink

// TicketRegistered 转发
func (m MultiSink) TicketRegistered(ticket []byte, from string) {
	for _, s := range m {
		s.TicketRegistered(ticket, from)
	}
}

// LotteryDrawn 转发给实现了 DrawObserver 的 sink
func (m MultiSink) LotteryDrawn(draw *pty.ReceiptLotteryDraw, payout *pty.ReceiptLotteryPayout) {
	for _, s := range m {
		if ob, ok := s.(DrawObserver); ok {
			ob.LotteryDrawn(draw, payout)
		}
	}
}

// NewLogSink 把通知写到日志, 同时实现 DrawObserver
func NewLogSink() EventSink {
	return &logSink{}
}
