// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types json rpc 的请求和返回结构, 哈希和号码都使用 0x 开头的十六进制字符串
package types

import "encoding/json"

// ReqNil 空请求
type ReqNil struct{}

// ReqAddr 地址
type ReqAddr struct {
	Addr string `json:"addr"`
}

// ReqRegister 购买号码, Amount 必须等于票价
type ReqRegister struct {
	From   string `json:"from"`
	Ticket string `json:"ticket"`
	Amount int64  `json:"amount"`
}

// ReqTransfer 转账
type ReqTransfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// ReqParticipants 某一轮某个号码的参与者
type ReqParticipants struct {
	Ticket string `json:"ticket"`
	Round  int64  `json:"round"`
}

// ReqCount 最近 count 条记录, 0 表示全部
type ReqCount struct {
	Count int32 `json:"count"`
}

// ReqBuyHistory 购买记录, Round 小于0表示所有轮次
type ReqBuyHistory struct {
	Addr  string `json:"addr"`
	Round int64  `json:"round"`
}

// ReceiptLogResult 解码后的日志
type ReceiptLogResult struct {
	Ty     int32           `json:"ty"`
	TyName string          `json:"tyName"`
	Log    json.RawMessage `json:"log,omitempty"`
	RawLog string          `json:"rawLog"`
}

// ReceiptDataResult 解码后的回执
type ReceiptDataResult struct {
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyName"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

// ReplyTx 交易执行结果
type ReplyTx struct {
	Hash    string             `json:"hash"`
	Receipt *ReceiptDataResult `json:"receipt"`
}

// ReplyAddrs 参与者列表, 固定8个位置, 空位置为 ""
type ReplyAddrs struct {
	Addrs []string `json:"addrs"`
}

// LotteryInfo 彩票状态
type LotteryInfo struct {
	Round           int64    `json:"round"`
	Jackpot         int64    `json:"jackpot"`
	LastJackpot     int64    `json:"lastJackpot"`
	LastDrawing     int64    `json:"lastDrawing"`
	NextDrawing     int64    `json:"nextDrawing"`
	WinnerTicket    string   `json:"winnerTicket"`
	LastPayout      int64    `json:"lastPayout"`
	PreviousWinners []string `json:"previousWinners"`
	TicketPrice     int64    `json:"ticketPrice"`
	RoundDuration   int64    `json:"roundDuration"`
	TicketLength    int32    `json:"ticketLength"`
}

// DrawRecord 开奖记录
type DrawRecord struct {
	Round        int64    `json:"round"`
	Height       int64    `json:"height"`
	WinnerTicket string   `json:"winnerTicket"`
	Winners      []string `json:"winners,omitempty"`
	Payout       int64    `json:"payout"`
	Jackpot      int64    `json:"jackpot"`
	TxHash       string   `json:"txHash"`
}

// DrawRecords 开奖记录
type DrawRecords struct {
	Records []*DrawRecord `json:"records"`
}

// BuyRecord 购买记录
type BuyRecord struct {
	Round  int64  `json:"round"`
	Ticket string `json:"ticket"`
	Slot   int32  `json:"slot"`
	Amount int64  `json:"amount"`
	Height int64  `json:"height"`
	TxHash string `json:"txHash"`
	Addr   string `json:"addr"`
}

// BuyRecords 购买记录
type BuyRecords struct {
	Records []*BuyRecord `json:"records"`
}

// Account 账户
type Account struct {
	Addr    string `json:"addr"`
	Balance int64  `json:"balance"`
}

// Header 区块头
type Header struct {
	Height     int64  `json:"height"`
	BlockTime  int64  `json:"blockTime"`
	ParentHash string `json:"parentHash"`
	Hash       string `json:"hash"`
	TxCount    int64  `json:"txCount"`
}
