// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/lottery/common"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	"github.com/33cn/lottery/types"
)

// DecodeLog decode log
func DecodeLog(execer []byte, rlog *types.ReceiptData) *ReceiptDataResult {
	var rTy string
	switch rlog.Ty {
	case types.ExecErr:
		rTy = "ExecErr"
	case types.ExecPack:
		rTy = "ExecPack"
	case types.ExecOk:
		rTy = "ExecOk"
	default:
		rTy = "Unknown"
	}
	rd := &ReceiptDataResult{Ty: rlog.Ty, TyName: rTy}
	ety := types.LoadExecutorType(string(execer))
	for _, l := range rlog.Logs {
		lTy := "unkownType"
		logIns, name, err := types.DecodeLogJSON(ety, l.Ty, l.Log)
		if err == nil {
			lTy = name
		} else if l.Ty == types.TyLogTransfer || l.Ty == types.TyLogGenesis {
			//账户日志由 account 模块产生, 不属于任何执行器
			var acc types.ReceiptAccountTransfer
			if types.Decode(l.Log, &acc) == nil {
				logIns, _ = json.Marshal(&acc)
				lTy = "LogTransfer"
				if l.Ty == types.TyLogGenesis {
					lTy = "LogGenesis"
				}
			}
		}
		rd.Logs = append(rd.Logs, &ReceiptLogResult{Ty: l.Ty, TyName: lTy, Log: logIns, RawLog: common.ToHex(l.Log)})
	}
	return rd
}

// ConvertLotteryInfo 号码转换为十六进制
func ConvertLotteryInfo(in *pty.ReplyLotteryInfo) *LotteryInfo {
	return &LotteryInfo{
		Round:           in.Round,
		Jackpot:         in.Jackpot,
		LastJackpot:     in.LastJackpot,
		LastDrawing:     in.LastDrawing,
		NextDrawing:     in.NextDrawing,
		WinnerTicket:    common.ToHex(in.WinnerTicket),
		LastPayout:      in.LastPayout,
		PreviousWinners: in.PreviousWinners,
		TicketPrice:     in.TicketPrice,
		RoundDuration:   in.RoundDuration,
		TicketLength:    in.TicketLength,
	}
}

// ConvertDrawRecords convert
func ConvertDrawRecords(in *pty.LotteryDrawRecords) *DrawRecords {
	out := &DrawRecords{}
	for _, r := range in.GetRecords() {
		out.Records = append(out.Records, &DrawRecord{
			Round:        r.Round,
			Height:       r.Height,
			WinnerTicket: common.ToHex(r.WinnerTicket),
			Winners:      r.Winners,
			Payout:       r.Payout,
			Jackpot:      r.Jackpot,
			TxHash:       r.TxHash,
		})
	}
	return out
}

// ConvertBuyRecords convert
func ConvertBuyRecords(in *pty.LotteryBuyRecords) *BuyRecords {
	out := &BuyRecords{}
	for _, r := range in.GetRecords() {
		out.Records = append(out.Records, &BuyRecord{
			Round:  r.Round,
			Ticket: common.ToHex(r.Ticket),
			Slot:   r.Slot,
			Amount: r.Amount,
			Height: r.Height,
			TxHash: r.TxHash,
			Addr:   r.Addr,
		})
	}
	return out
}

// ConvertHeader convert
func ConvertHeader(in *types.Header) *Header {
	return &Header{
		Height:     in.Height,
		BlockTime:  in.BlockTime,
		ParentHash: common.ToHex(in.ParentHash),
		Hash:       common.ToHex(in.Hash),
		TxCount:    in.TxCount,
	}
}
