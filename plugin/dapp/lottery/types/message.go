// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/golang/protobuf/proto"
)

// 这里的结构体与 proto/lottery.proto 中的定义一一对应

// LotteryAction 交易的 payload, Ty 决定哪个字段有效
type LotteryAction struct {
	Ty       int32            `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Register *LotteryRegister `protobuf:"bytes,2,opt,name=register,proto3" json:"register,omitempty"`
}

func (m *LotteryAction) Reset()         { *m = LotteryAction{} }
func (m *LotteryAction) String() string { return proto.CompactTextString(m) }
func (*LotteryAction) ProtoMessage()    {}

// GetTy get ty
func (m *LotteryAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetRegister get register
func (m *LotteryAction) GetRegister() *LotteryRegister {
	if m != nil {
		return m.Register
	}
	return nil
}

// LotteryRegister 购买一个号码, 支付的金额由交易的 Amount 给出
type LotteryRegister struct {
	Ticket []byte `protobuf:"bytes,1,opt,name=ticket,proto3" json:"ticket,omitempty"`
}

func (m *LotteryRegister) Reset()         { *m = LotteryRegister{} }
func (m *LotteryRegister) String() string { return proto.CompactTextString(m) }
func (*LotteryRegister) ProtoMessage()    {}

// GetTicket get ticket
func (m *LotteryRegister) GetTicket() []byte {
	if m != nil {
		return m.Ticket
	}
	return nil
}

// LotteryState 彩票的全局状态
type LotteryState struct {
	Round        int64  `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Jackpot      int64  `protobuf:"varint,2,opt,name=jackpot,proto3" json:"jackpot,omitempty"`
	LastJackpot  int64  `protobuf:"varint,3,opt,name=lastJackpot,proto3" json:"lastJackpot,omitempty"`
	LastDrawing  int64  `protobuf:"varint,4,opt,name=lastDrawing,proto3" json:"lastDrawing,omitempty"`
	WinnerTicket []byte `protobuf:"bytes,5,opt,name=winnerTicket,proto3" json:"winnerTicket,omitempty"`
	LastPayout   int64  `protobuf:"varint,6,opt,name=lastPayout,proto3" json:"lastPayout,omitempty"`
	CreateHeight int64  `protobuf:"varint,7,opt,name=createHeight,proto3" json:"createHeight,omitempty"`
}

func (m *LotteryState) Reset()         { *m = LotteryState{} }
func (m *LotteryState) String() string { return proto.CompactTextString(m) }
func (*LotteryState) ProtoMessage()    {}

// GetRound get round
func (m *LotteryState) GetRound() int64 {
	if m != nil {
		return m.Round
	}
	return 0
}

// GetJackpot get jackpot
func (m *LotteryState) GetJackpot() int64 {
	if m != nil {
		return m.Jackpot
	}
	return 0
}

// GetLastJackpot get lastJackpot
func (m *LotteryState) GetLastJackpot() int64 {
	if m != nil {
		return m.LastJackpot
	}
	return 0
}

// GetLastDrawing get lastDrawing
func (m *LotteryState) GetLastDrawing() int64 {
	if m != nil {
		return m.LastDrawing
	}
	return 0
}

// GetWinnerTicket get winnerTicket
func (m *LotteryState) GetWinnerTicket() []byte {
	if m != nil {
		return m.WinnerTicket
	}
	return nil
}

// GetLastPayout get lastPayout
func (m *LotteryState) GetLastPayout() int64 {
	if m != nil {
		return m.LastPayout
	}
	return 0
}

// GetCreateHeight get createHeight
func (m *LotteryState) GetCreateHeight() int64 {
	if m != nil {
		return m.CreateHeight
	}
	return 0
}

// TicketSlots 某一轮某个号码的参与者, 固定 MaxParticipants 个位置, 空字符串表示空位
type TicketSlots struct {
	Addrs []string `protobuf:"bytes,1,rep,name=addrs,proto3" json:"addrs,omitempty"`
}

func (m *TicketSlots) Reset()         { *m = TicketSlots{} }
func (m *TicketSlots) String() string { return proto.CompactTextString(m) }
func (*TicketSlots) ProtoMessage()    {}

// GetAddrs get addrs
func (m *TicketSlots) GetAddrs() []string {
	if m != nil {
		return m.Addrs
	}
	return nil
}

// ReceiptLotteryRegister 购买日志
type ReceiptLotteryRegister struct {
	Ticket  []byte `protobuf:"bytes,1,opt,name=ticket,proto3" json:"ticket,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Round   int64  `protobuf:"varint,3,opt,name=round,proto3" json:"round,omitempty"`
	Slot    int32  `protobuf:"varint,4,opt,name=slot,proto3" json:"slot,omitempty"`
	Amount  int64  `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	Height  int64  `protobuf:"varint,6,opt,name=height,proto3" json:"height,omitempty"`
	Jackpot int64  `protobuf:"varint,7,opt,name=jackpot,proto3" json:"jackpot,omitempty"`
}

func (m *ReceiptLotteryRegister) Reset()         { *m = ReceiptLotteryRegister{} }
func (m *ReceiptLotteryRegister) String() string { return proto.CompactTextString(m) }
func (*ReceiptLotteryRegister) ProtoMessage()    {}

// GetTicket get ticket
func (m *ReceiptLotteryRegister) GetTicket() []byte {
	if m != nil {
		return m.Ticket
	}
	return nil
}

// GetAddr get addr
func (m *ReceiptLotteryRegister) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// GetRound get round
func (m *ReceiptLotteryRegister) GetRound() int64 {
	if m != nil {
		return m.Round
	}
	return 0
}

// GetSlot get slot
func (m *ReceiptLotteryRegister) GetSlot() int32 {
	if m != nil {
		return m.Slot
	}
	return 0
}

// GetAmount get amount
func (m *ReceiptLotteryRegister) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// GetHeight get height
func (m *ReceiptLotteryRegister) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

// GetJackpot get jackpot
func (m *ReceiptLotteryRegister) GetJackpot() int64 {
	if m != nil {
		return m.Jackpot
	}
	return 0
}

// ReceiptLotteryDraw 开奖日志
type ReceiptLotteryDraw struct {
	Round        int64  `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	WinnerTicket []byte `protobuf:"bytes,2,opt,name=winnerTicket,proto3" json:"winnerTicket,omitempty"`
	Height       int64  `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	Winners      int32  `protobuf:"varint,4,opt,name=winners,proto3" json:"winners,omitempty"`
	Jackpot      int64  `protobuf:"varint,5,opt,name=jackpot,proto3" json:"jackpot,omitempty"`
}

func (m *ReceiptLotteryDraw) Reset()         { *m = ReceiptLotteryDraw{} }
func (m *ReceiptLotteryDraw) String() string { return proto.CompactTextString(m) }
func (*ReceiptLotteryDraw) ProtoMessage()    {}

// GetRound get round
func (m *ReceiptLotteryDraw) GetRound() int64 {
	if m != nil {
		return m.Round
	}
	return 0
}

// GetWinnerTicket get winnerTicket
func (m *ReceiptLotteryDraw) GetWinnerTicket() []byte {
	if m != nil {
		return m.WinnerTicket
	}
	return nil
}

// GetHeight get height
func (m *ReceiptLotteryDraw) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

// GetWinners get winners
func (m *ReceiptLotteryDraw) GetWinners() int32 {
	if m != nil {
		return m.Winners
	}
	return 0
}

// GetJackpot get jackpot
func (m *ReceiptLotteryDraw) GetJackpot() int64 {
	if m != nil {
		return m.Jackpot
	}
	return 0
}

// ReceiptLotteryPayout 派奖日志
type ReceiptLotteryPayout struct {
	Round   int64    `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Jackpot int64    `protobuf:"varint,2,opt,name=jackpot,proto3" json:"jackpot,omitempty"`
	Payout  int64    `protobuf:"varint,3,opt,name=payout,proto3" json:"payout,omitempty"`
	Winners []string `protobuf:"bytes,4,rep,name=winners,proto3" json:"winners,omitempty"`
	Paid    []string `protobuf:"bytes,5,rep,name=paid,proto3" json:"paid,omitempty"`
}

func (m *ReceiptLotteryPayout) Reset()         { *m = ReceiptLotteryPayout{} }
func (m *ReceiptLotteryPayout) String() string { return proto.CompactTextString(m) }
func (*ReceiptLotteryPayout) ProtoMessage()    {}

// GetRound get round
func (m *ReceiptLotteryPayout) GetRound() int64 {
	if m != nil {
		return m.Round
	}
	return 0
}

// GetJackpot get jackpot
func (m *ReceiptLotteryPayout) GetJackpot() int64 {
	if m != nil {
		return m.Jackpot
	}
	return 0
}

// GetPayout get payout
func (m *ReceiptLotteryPayout) GetPayout() int64 {
	if m != nil {
		return m.Payout
	}
	return 0
}

// GetWinners get winners
func (m *ReceiptLotteryPayout) GetWinners() []string {
	if m != nil {
		return m.Winners
	}
	return nil
}

// GetPaid get paid
func (m *ReceiptLotteryPayout) GetPaid() []string {
	if m != nil {
		return m.Paid
	}
	return nil
}

// LotteryDrawRecord 本地数据库中的开奖记录
type LotteryDrawRecord struct {
	Round        int64    `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Height       int64    `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
	WinnerTicket []byte   `protobuf:"bytes,3,opt,name=winnerTicket,proto3" json:"winnerTicket,omitempty"`
	Winners      []string `protobuf:"bytes,4,rep,name=winners,proto3" json:"winners,omitempty"`
	Payout       int64    `protobuf:"varint,5,opt,name=payout,proto3" json:"payout,omitempty"`
	Jackpot      int64    `protobuf:"varint,6,opt,name=jackpot,proto3" json:"jackpot,omitempty"`
	TxHash       string   `protobuf:"bytes,7,opt,name=txHash,proto3" json:"txHash,omitempty"`
}

func (m *LotteryDrawRecord) Reset()         { *m = LotteryDrawRecord{} }
func (m *LotteryDrawRecord) String() string { return proto.CompactTextString(m) }
func (*LotteryDrawRecord) ProtoMessage()    {}

// GetRound get round
func (m *LotteryDrawRecord) GetRound() int64 {
	if m != nil {
		return m.Round
	}
	return 0
}

// GetHeight get height
func (m *LotteryDrawRecord) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

// GetWinnerTicket get winnerTicket
func (m *LotteryDrawRecord) GetWinnerTicket() []byte {
	if m != nil {
		return m.WinnerTicket
	}
	return nil
}

// GetWinners get winners
func (m *LotteryDrawRecord) GetWinners() []string {
	if m != nil {
		return m.Winners
	}
	return nil
}

// GetPayout get payout
func (m *LotteryDrawRecord) GetPayout() int64 {
	if m != nil {
		return m.Payout
	}
	return 0
}

// GetJackpot get jackpot
func (m *LotteryDrawRecord) GetJackpot() int64 {
	if m != nil {
		return m.Jackpot
	}
	return 0
}

// GetTxHash get txHash
func (m *LotteryDrawRecord) GetTxHash() string {
	if m != nil {
		return m.TxHash
	}
	return ""
}

// LotteryDrawRecords 开奖记录列表
type LotteryDrawRecords struct {
	Records []*LotteryDrawRecord `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
}

func (m *LotteryDrawRecords) Reset()         { *m = LotteryDrawRecords{} }
func (m *LotteryDrawRecords) String() string { return proto.CompactTextString(m) }
func (*LotteryDrawRecords) ProtoMessage()    {}

// GetRecords get records
func (m *LotteryDrawRecords) GetRecords() []*LotteryDrawRecord {
	if m != nil {
		return m.Records
	}
	return nil
}

// LotteryBuyRecord 本地数据库中的购买记录
type LotteryBuyRecord struct {
	Round  int64  `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Ticket []byte `protobuf:"bytes,2,opt,name=ticket,proto3" json:"ticket,omitempty"`
	Slot   int32  `protobuf:"varint,3,opt,name=slot,proto3" json:"slot,omitempty"`
	Amount int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Height int64  `protobuf:"varint,5,opt,name=height,proto3" json:"height,omitempty"`
	TxHash string `protobuf:"bytes,6,opt,name=txHash,proto3" json:"txHash,omitempty"`
	Addr   string `protobuf:"bytes,7,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *LotteryBuyRecord) Reset()         { *m = LotteryBuyRecord{} }
func (m *LotteryBuyRecord) String() string { return proto.CompactTextString(m) }
func (*LotteryBuyRecord) ProtoMessage()    {}

// GetRound get round
func (m *LotteryBuyRecord) GetRound() int64 {
	if m != nil {
		return m.Round
	}
	return 0
}

// GetTicket get ticket
func (m *LotteryBuyRecord) GetTicket() []byte {
	if m != nil {
		return m.Ticket
	}
	return nil
}

// GetSlot get slot
func (m *LotteryBuyRecord) GetSlot() int32 {
	if m != nil {
		return m.Slot
	}
	return 0
}

// GetAmount get amount
func (m *LotteryBuyRecord) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// GetHeight get height
func (m *LotteryBuyRecord) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

// GetTxHash get txHash
func (m *LotteryBuyRecord) GetTxHash() string {
	if m != nil {
		return m.TxHash
	}
	return ""
}

// GetAddr get addr
func (m *LotteryBuyRecord) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// LotteryBuyRecords 购买记录列表
type LotteryBuyRecords struct {
	Records []*LotteryBuyRecord `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
}

func (m *LotteryBuyRecords) Reset()         { *m = LotteryBuyRecords{} }
func (m *LotteryBuyRecords) String() string { return proto.CompactTextString(m) }
func (*LotteryBuyRecords) ProtoMessage()    {}

// GetRecords get records
func (m *LotteryBuyRecords) GetRecords() []*LotteryBuyRecord {
	if m != nil {
		return m.Records
	}
	return nil
}

// ReqLotteryParticipants 查询某一轮某个号码的参与者
type ReqLotteryParticipants struct {
	Ticket []byte `protobuf:"bytes,1,opt,name=ticket,proto3" json:"ticket,omitempty"`
	Round  int64  `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *ReqLotteryParticipants) Reset()         { *m = ReqLotteryParticipants{} }
func (m *ReqLotteryParticipants) String() string { return proto.CompactTextString(m) }
func (*ReqLotteryParticipants) ProtoMessage()    {}

// GetTicket get ticket
func (m *ReqLotteryParticipants) GetTicket() []byte {
	if m != nil {
		return m.Ticket
	}
	return nil
}

// GetRound get round
func (m *ReqLotteryParticipants) GetRound() int64 {
	if m != nil {
		return m.Round
	}
	return 0
}

// ReqLotteryDrawHistory 查询最近的开奖记录
type ReqLotteryDrawHistory struct {
	Count int32 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *ReqLotteryDrawHistory) Reset()         { *m = ReqLotteryDrawHistory{} }
func (m *ReqLotteryDrawHistory) String() string { return proto.CompactTextString(m) }
func (*ReqLotteryDrawHistory) ProtoMessage()    {}

// GetCount get count
func (m *ReqLotteryDrawHistory) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

// ReqLotteryBuyHistory 查询某个地址的购买记录, Round 小于0时查询所有轮次
type ReqLotteryBuyHistory struct {
	Addr  string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Round int64  `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *ReqLotteryBuyHistory) Reset()         { *m = ReqLotteryBuyHistory{} }
func (m *ReqLotteryBuyHistory) String() string { return proto.CompactTextString(m) }
func (*ReqLotteryBuyHistory) ProtoMessage()    {}

// GetAddr get addr
func (m *ReqLotteryBuyHistory) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// GetRound get round
func (m *ReqLotteryBuyHistory) GetRound() int64 {
	if m != nil {
		return m.Round
	}
	return 0
}

// ReplyLotteryParticipants 参与者列表
type ReplyLotteryParticipants struct {
	Addrs []string `protobuf:"bytes,1,rep,name=addrs,proto3" json:"addrs,omitempty"`
}

func (m *ReplyLotteryParticipants) Reset()         { *m = ReplyLotteryParticipants{} }
func (m *ReplyLotteryParticipants) String() string { return proto.CompactTextString(m) }
func (*ReplyLotteryParticipants) ProtoMessage()    {}

// GetAddrs get addrs
func (m *ReplyLotteryParticipants) GetAddrs() []string {
	if m != nil {
		return m.Addrs
	}
	return nil
}

// ReplyLotteryTicket 号码
type ReplyLotteryTicket struct {
	Ticket []byte `protobuf:"bytes,1,opt,name=ticket,proto3" json:"ticket,omitempty"`
}

func (m *ReplyLotteryTicket) Reset()         { *m = ReplyLotteryTicket{} }
func (m *ReplyLotteryTicket) String() string { return proto.CompactTextString(m) }
func (*ReplyLotteryTicket) ProtoMessage()    {}

// GetTicket get ticket
func (m *ReplyLotteryTicket) GetTicket() []byte {
	if m != nil {
		return m.Ticket
	}
	return nil
}

// ReplyLotteryInfo 彩票的全部信息
type ReplyLotteryInfo struct {
	Round           int64    `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Jackpot         int64    `protobuf:"varint,2,opt,name=jackpot,proto3" json:"jackpot,omitempty"`
	LastJackpot     int64    `protobuf:"varint,3,opt,name=lastJackpot,proto3" json:"lastJackpot,omitempty"`
	LastDrawing     int64    `protobuf:"varint,4,opt,name=lastDrawing,proto3" json:"lastDrawing,omitempty"`
	NextDrawing     int64    `protobuf:"varint,5,opt,name=nextDrawing,proto3" json:"nextDrawing,omitempty"`
	WinnerTicket    []byte   `protobuf:"bytes,6,opt,name=winnerTicket,proto3" json:"winnerTicket,omitempty"`
	LastPayout      int64    `protobuf:"varint,7,opt,name=lastPayout,proto3" json:"lastPayout,omitempty"`
	PreviousWinners []string `protobuf:"bytes,8,rep,name=previousWinners,proto3" json:"previousWinners,omitempty"`
	TicketPrice     int64    `protobuf:"varint,9,opt,name=ticketPrice,proto3" json:"ticketPrice,omitempty"`
	RoundDuration   int64    `protobuf:"varint,10,opt,name=roundDuration,proto3" json:"roundDuration,omitempty"`
	TicketLength    int32    `protobuf:"varint,11,opt,name=ticketLength,proto3" json:"ticketLength,omitempty"`
}

func (m *ReplyLotteryInfo) Reset()         { *m = ReplyLotteryInfo{} }
func (m *ReplyLotteryInfo) String() string { return proto.CompactTextString(m) }
func (*ReplyLotteryInfo) ProtoMessage()    {}

// GetRound get round
func (m *ReplyLotteryInfo) GetRound() int64 {
	if m != nil {
		return m.Round
	}
	return 0
}

// GetJackpot get jackpot
func (m *ReplyLotteryInfo) GetJackpot() int64 {
	if m != nil {
		return m.Jackpot
	}
	return 0
}

// GetLastJackpot get lastJackpot
func (m *ReplyLotteryInfo) GetLastJackpot() int64 {
	if m != nil {
		return m.LastJackpot
	}
	return 0
}

// GetLastDrawing get lastDrawing
func (m *ReplyLotteryInfo) GetLastDrawing() int64 {
	if m != nil {
		return m.LastDrawing
	}
	return 0
}

// GetNextDrawing get nextDrawing
func (m *ReplyLotteryInfo) GetNextDrawing() int64 {
	if m != nil {
		return m.NextDrawing
	}
	return 0
}

// GetWinnerTicket get winnerTicket
func (m *ReplyLotteryInfo) GetWinnerTicket() []byte {
	if m != nil {
		return m.WinnerTicket
	}
	return nil
}

// GetLastPayout get lastPayout
func (m *ReplyLotteryInfo) GetLastPayout() int64 {
	if m != nil {
		return m.LastPayout
	}
	return 0
}

// GetPreviousWinners get previousWinners
func (m *ReplyLotteryInfo) GetPreviousWinners() []string {
	if m != nil {
		return m.PreviousWinners
	}
	return nil
}

// GetTicketPrice get ticketPrice
func (m *ReplyLotteryInfo) GetTicketPrice() int64 {
	if m != nil {
		return m.TicketPrice
	}
	return 0
}

// GetRoundDuration get roundDuration
func (m *ReplyLotteryInfo) GetRoundDuration() int64 {
	if m != nil {
		return m.RoundDuration
	}
	return 0
}

// GetTicketLength get ticketLength
func (m *ReplyLotteryInfo) GetTicketLength() int32 {
	if m != nil {
		return m.TicketLength
	}
	return 0
}
