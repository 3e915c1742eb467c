// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/lottery/common/db"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	"github.com/33cn/lottery/types"
)

func (lott *Lottery) findState() (*pty.LotteryState, error) {
	return findState(lott.GetStateDB(), 0, lott.Config().TicketLength)
}

func (lott *Lottery) previousWinners(state *pty.LotteryState) (*pty.TicketSlots, error) {
	if state.Round == 0 {
		return pty.NewTicketSlots(), nil
	}
	return findSlots(lott.GetStateDB(), state.WinnerTicket, state.Round-1)
}

// Query_GetWinnerTicket 最近一次开奖的中奖号码
func (lott *Lottery) Query_GetWinnerTicket(param *types.ReqNil) (types.Message, error) {
	state, err := lott.findState()
	if err != nil {
		return nil, err
	}
	return &pty.ReplyLotteryTicket{Ticket: state.WinnerTicket}, nil
}

// Query_GetParticipants 某一轮某个号码的参与者, 固定8个位置
func (lott *Lottery) Query_GetParticipants(param *pty.ReqLotteryParticipants) (types.Message, error) {
	if param.GetRound() < 0 {
		return nil, types.ErrInvalidParam
	}
	slots, err := findSlots(lott.GetStateDB(), param.GetTicket(), param.GetRound())
	if err != nil {
		return nil, err
	}
	return &pty.ReplyLotteryParticipants{Addrs: slots.Addrs}, nil
}

// Query_GetJackpot 当前奖池
func (lott *Lottery) Query_GetJackpot(param *types.ReqNil) (types.Message, error) {
	state, err := lott.findState()
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: state.Jackpot}, nil
}

// Query_GetLastJackpot 上一次派奖的奖池
func (lott *Lottery) Query_GetLastJackpot(param *types.ReqNil) (types.Message, error) {
	state, err := lott.findState()
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: state.LastJackpot}, nil
}

// Query_GetLastDrawing 上一次开奖的高度
func (lott *Lottery) Query_GetLastDrawing(param *types.ReqNil) (types.Message, error) {
	state, err := lott.findState()
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: state.LastDrawing}, nil
}

// Query_GetNextDrawing 下一次可以开奖的高度
func (lott *Lottery) Query_GetNextDrawing(param *types.ReqNil) (types.Message, error) {
	state, err := lott.findState()
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: state.LastDrawing + lott.Config().RoundDuration}, nil
}

// Query_GetLastPayout 上一次每个中奖者得到的金额
func (lott *Lottery) Query_GetLastPayout(param *types.ReqNil) (types.Message, error) {
	state, err := lott.findState()
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: state.LastPayout}, nil
}

// Query_GetPreviousWinners 上一轮中奖号码的参与者, 第0轮返回全部为空
func (lott *Lottery) Query_GetPreviousWinners(param *types.ReqNil) (types.Message, error) {
	state, err := lott.findState()
	if err != nil {
		return nil, err
	}
	slots, err := lott.previousWinners(state)
	if err != nil {
		return nil, err
	}
	return &pty.ReplyLotteryParticipants{Addrs: slots.Addrs}, nil
}

// Query_GetRound 当前轮次
func (lott *Lottery) Query_GetRound(param *types.ReqNil) (types.Message, error) {
	state, err := lott.findState()
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: state.Round}, nil
}

// Query_GetLotteryInfo 所有状态
func (lott *Lottery) Query_GetLotteryInfo(param *types.ReqNil) (types.Message, error) {
	state, err := lott.findState()
	if err != nil {
		return nil, err
	}
	slots, err := lott.previousWinners(state)
	if err != nil {
		return nil, err
	}
	conf := lott.Config()
	return &pty.ReplyLotteryInfo{
		Round:           state.Round,
		Jackpot:         state.Jackpot,
		LastJackpot:     state.LastJackpot,
		LastDrawing:     state.LastDrawing,
		NextDrawing:     state.LastDrawing + conf.RoundDuration,
		WinnerTicket:    state.WinnerTicket,
		LastPayout:      state.LastPayout,
		PreviousWinners: slots.Addrs,
		TicketPrice:     conf.TicketPrice,
		RoundDuration:   conf.RoundDuration,
		TicketLength:    conf.TicketLength,
	}, nil
}

// Query_GetDrawHistory 开奖记录, 最近的在前
func (lott *Lottery) Query_GetDrawHistory(param *pty.ReqLotteryDrawHistory) (types.Message, error) {
	values, err := lott.GetLocalDB().List(calcLotteryDrawPrefix(), nil, param.GetCount(), dbm.ListDESC)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	var records pty.LotteryDrawRecords
	for _, value := range values {
		var record pty.LotteryDrawRecord
		if err := types.Decode(value, &record); err != nil {
			llog.Error("GetDrawHistory decode", "err", err)
			continue
		}
		records.Records = append(records.Records, &record)
	}
	return &records, nil
}

// Query_GetBuyHistory 购买记录, round 小于0时返回所有轮次
func (lott *Lottery) Query_GetBuyHistory(param *pty.ReqLotteryBuyHistory) (types.Message, error) {
	if param.GetAddr() == "" {
		return nil, types.ErrInvalidAddress
	}
	prefix := calcLotteryBuyPrefix(param.GetAddr())
	if param.GetRound() >= 0 {
		prefix = calcLotteryBuyRoundPrefix(param.GetAddr(), param.GetRound())
	}
	values, err := lott.GetLocalDB().List(prefix, nil, 0, dbm.ListASC)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	var records pty.LotteryBuyRecords
	for _, value := range values {
		var record pty.LotteryBuyRecord
		if err := types.Decode(value, &record); err != nil {
			llog.Error("GetBuyHistory decode", "err", err)
			continue
		}
		records.Records = append(records.Records, &record)
	}
	return &records, nil
}
