// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/common"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	"github.com/33cn/lottery/types"
)

func (lott *Lottery) execLocal(tx *types.Transaction, receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	txhash := common.ToHex(tx.Hash())
	var draw *pty.LotteryDrawRecord
	for _, item := range receipt.Logs {
		switch item.Ty {
		case pty.TyLogLotteryRegister:
			var reglog pty.ReceiptLotteryRegister
			if err := types.Decode(item.Log, &reglog); err != nil {
				return nil, err
			}
			set.KV = append(set.KV, lott.saveLotteryBuy(&reglog, txhash)...)
		case pty.TyLogLotteryDraw:
			var drawlog pty.ReceiptLotteryDraw
			if err := types.Decode(item.Log, &drawlog); err != nil {
				return nil, err
			}
			draw = &pty.LotteryDrawRecord{
				Round:        drawlog.Round,
				Height:       drawlog.Height,
				WinnerTicket: drawlog.WinnerTicket,
				Jackpot:      drawlog.Jackpot,
				TxHash:       txhash,
			}
		case pty.TyLogLotteryPayout:
			var payoutlog pty.ReceiptLotteryPayout
			if err := types.Decode(item.Log, &payoutlog); err != nil {
				return nil, err
			}
			if draw != nil {
				draw.Winners = payoutlog.Winners
				draw.Payout = payoutlog.Payout
			}
		}
	}
	if draw != nil {
		set.KV = append(set.KV, lott.saveLotteryDraw(draw)...)
	}
	return set, nil
}

func (lott *Lottery) saveLotteryBuy(reglog *pty.ReceiptLotteryRegister, txhash string) (kvs []*types.KeyValue) {
	record := &pty.LotteryBuyRecord{
		Round:  reglog.Round,
		Ticket: reglog.Ticket,
		Slot:   reglog.Slot,
		Amount: reglog.Amount,
		Height: reglog.Height,
		TxHash: txhash,
		Addr:   reglog.Addr,
	}
	key := calcLotteryBuyKey(reglog.Addr, reglog.Round, txhash)
	kvs = append(kvs, &types.KeyValue{Key: key, Value: types.Encode(record)})
	return kvs
}

func (lott *Lottery) saveLotteryDraw(record *pty.LotteryDrawRecord) (kvs []*types.KeyValue) {
	key := calcLotteryDrawKey(record.Height)
	kvs = append(kvs, &types.KeyValue{Key: key, Value: types.Encode(record)})
	return kvs
}

// ExecLocal_Register 保存购买记录和开奖记录
func (lott *Lottery) ExecLocal_Register(payload *pty.LotteryRegister, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return lott.execLocal(tx, receiptData)
}
