// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/account"
	"github.com/33cn/lottery/common"
	dbm "github.com/33cn/lottery/common/db"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/system/random"
	"github.com/33cn/lottery/types"
	"github.com/pkg/errors"
)

func newState(height int64, ticketLength int32) *pty.LotteryState {
	return &pty.LotteryState{
		Round:        0,
		LastDrawing:  height,
		CreateHeight: height,
		WinnerTicket: make([]byte, ticketLength),
	}
}

// 状态不存在时以 height 为创建高度
func findState(db dbm.KV, height int64, ticketLength int32) (*pty.LotteryState, error) {
	data, err := db.Get(stateKey())
	if err == types.ErrNotFound {
		return newState(height, ticketLength), nil
	}
	if err != nil {
		llog.Error("findState", "err", err)
		return nil, err
	}
	var state pty.LotteryState
	if err := types.Decode(data, &state); err != nil {
		llog.Error("findState decode", "err", err)
		return nil, err
	}
	return &state, nil
}

func saveState(db dbm.KV, state *pty.LotteryState) []*types.KeyValue {
	kv := &types.KeyValue{Key: stateKey(), Value: types.Encode(state)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		llog.Error("saveState", "err", err)
	}
	return []*types.KeyValue{kv}
}

// 没有登记过的 (ticket, round) 返回全部为空的参与者列表
func findSlots(db dbm.KV, ticket []byte, round int64) (*pty.TicketSlots, error) {
	data, err := db.Get(calcTicketKey(ticket, round))
	if err == types.ErrNotFound {
		return pty.NewTicketSlots(), nil
	}
	if err != nil {
		llog.Error("findSlots", "err", err)
		return nil, err
	}
	var slots pty.TicketSlots
	if err := types.Decode(data, &slots); err != nil {
		llog.Error("findSlots decode", "err", err)
		return nil, err
	}
	return slots.Normalize(), nil
}

func saveSlots(db dbm.KV, ticket []byte, round int64, slots *pty.TicketSlots) []*types.KeyValue {
	kv := &types.KeyValue{Key: calcTicketKey(ticket, round), Value: types.Encode(slots)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		llog.Error("saveSlots", "err", err)
	}
	return []*types.KeyValue{kv}
}

// Action 一次调用的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	amount       int64
	blocktime    int64
	height       int64
	parentHash   []byte
	execaddr     string
	conf         *pty.Config
	newRandom    RandomFactory
}

// NewLotteryAction new
func NewLotteryAction(l *Lottery, tx *types.Transaction) *Action {
	return &Action{
		coinsAccount: l.GetCoinsAccount(),
		db:           l.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From,
		amount:       tx.Amount,
		blocktime:    l.GetBlockTime(),
		height:       l.GetHeight(),
		parentHash:   l.GetParentHash(),
		execaddr:     drivers.ExecAddress(string(tx.Execer)),
		conf:         l.Config(),
		newRandom:    l.conf.newRandom,
	}
}

// Register 购买号码
// 所有检查通过之后才收款, 收款之后如果到了开奖高度, 在同一个调用中开奖
func (action *Action) Register(reg *pty.LotteryRegister) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	if action.amount != action.conf.TicketPrice {
		llog.Error("Register", "addr", action.fromaddr, "amount", action.amount, "price", action.conf.TicketPrice)
		return nil, pty.ErrLotteryTicketPrice
	}
	if action.fromaddr == pty.EmptyAddr {
		return nil, pty.ErrLotteryEmptyAddr
	}
	ticket := reg.GetTicket()
	if int32(len(ticket)) != action.conf.TicketLength {
		llog.Error("Register", "addr", action.fromaddr, "ticketLength", len(ticket), "want", action.conf.TicketLength)
		return nil, pty.ErrLotteryTicketLength
	}

	state, err := findState(action.db, action.height, action.conf.TicketLength)
	if err != nil {
		return nil, err
	}
	slots, err := findSlots(action.db, ticket, state.Round)
	if err != nil {
		return nil, err
	}
	index := slots.FirstEmpty()
	if index < 0 {
		llog.Error("Register sold out", "ticket", common.ToHex(ticket), "round", state.Round)
		return nil, pty.ErrLotterySoldOut
	}

	receipt, err := action.coinsAccount.Transfer(action.fromaddr, action.execaddr, action.amount)
	if err != nil {
		llog.Error("Register transfer", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", action.amount, "err", err)
		return nil, errors.Wrap(pty.ErrLotteryPayment, err.Error())
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	slots.Addrs[index] = action.fromaddr
	state.Jackpot += action.amount
	kv = append(kv, saveSlots(action.db, ticket, state.Round, slots)...)

	reglog := &pty.ReceiptLotteryRegister{
		Ticket:  ticket,
		Addr:    action.fromaddr,
		Round:   state.Round,
		Slot:    int32(index),
		Amount:  action.amount,
		Height:  action.height,
		Jackpot: state.Jackpot,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogLotteryRegister, Log: types.Encode(reglog)})

	if action.drawDue(state) {
		r, err := action.draw(state)
		if err != nil {
			return nil, err
		}
		logs = append(logs, r.Logs...)
		kv = append(kv, r.KV...)
	}
	kv = append(kv, saveState(action.db, state)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) drawDue(state *pty.LotteryState) bool {
	return action.height-state.LastDrawing >= action.conf.RoundDuration && action.height != 0
}

// draw 开奖, 随机数获取失败时整个调用失败
func (action *Action) draw(state *pty.LotteryState) (*types.Receipt, error) {
	source, err := action.newRandom(&random.Env{
		Height:     action.height,
		BlockTime:  action.blocktime,
		ParentHash: action.parentHash,
		Seed:       action.txhash,
	})
	if err != nil {
		llog.Error("draw new random source", "err", err)
		return nil, errors.Wrap(pty.ErrLotteryRandom, err.Error())
	}
	rnd, err := source.FetchRandom()
	if err != nil {
		llog.Error("draw FetchRandom", "height", action.height, "err", err)
		return nil, errors.Wrap(pty.ErrLotteryRandom, err.Error())
	}
	winner := pty.WinnerTicket(rnd, action.conf.TicketLength)
	state.WinnerTicket = winner
	state.LastDrawing = action.height

	slots, err := findSlots(action.db, winner, state.Round)
	if err != nil {
		return nil, err
	}
	drawlog := &pty.ReceiptLotteryDraw{
		Round:        state.Round,
		WinnerTicket: winner,
		Height:       action.height,
		Winners:      int32(slots.Count()),
		Jackpot:      state.Jackpot,
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	receipt.Logs = append(receipt.Logs, &types.ReceiptLog{Ty: pty.TyLogLotteryDraw, Log: types.Encode(drawlog)})
	llog.Debug("draw", "round", state.Round, "ticket", common.ToHex(winner), "winners", drawlog.Winners)
	if slots.IsEmpty() {
		return receipt, nil
	}
	if r := action.transferToWinners(state, slots); r != nil {
		receipt.KV = append(receipt.KV, r.KV...)
		receipt.Logs = append(receipt.Logs, r.Logs...)
	}
	return receipt, nil
}

// transferToWinners 奖池平分给中奖者, 单笔转账失败时只记录日志
// 每人得到 (jackpot/8)*(8/n), 余数留在执行器账户中
func (action *Action) transferToWinners(state *pty.LotteryState, slots *pty.TicketSlots) *types.Receipt {
	if state.Jackpot == 0 {
		return nil
	}
	n := int64(slots.Count())
	if n == 0 {
		return nil
	}
	per := (state.Jackpot / pty.MaxParticipants) * (pty.MaxParticipants / n)
	state.LastPayout = per

	receipt := &types.Receipt{Ty: types.ExecOk}
	winners := slots.Winners()
	var paid []string
	for _, addr := range winners {
		r, err := action.coinsAccount.Transfer(action.execaddr, addr, per)
		if err != nil {
			llog.Error("transferToWinners", "addr", addr, "amount", per, "err", err)
			continue
		}
		receipt.KV = append(receipt.KV, r.KV...)
		receipt.Logs = append(receipt.Logs, r.Logs...)
		paid = append(paid, addr)
	}
	payoutlog := &pty.ReceiptLotteryPayout{
		Round:   state.Round,
		Jackpot: state.Jackpot,
		Payout:  per,
		Winners: winners,
		Paid:    paid,
	}
	receipt.Logs = append(receipt.Logs, &types.ReceiptLog{Ty: pty.TyLogLotteryPayout, Log: types.Encode(payoutlog)})

	state.Round++
	state.LastJackpot = state.Jackpot
	state.Jackpot = 0
	return receipt
}
