// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// LotteryX 执行器名
const LotteryX = "lottery"

//Lottery op
const (
	LotteryActionRegister = 1 + iota
)

//log for lottery
const (
	TyLogLotteryRegister = 801 + iota
	TyLogLotteryDraw
	TyLogLotteryPayout
)

// 默认参数
const (
	DefaultTicketPrice   = int64(1e12)
	DefaultRoundDuration = int64(10)
	DefaultTicketLength  = int32(32)

	MinTicketLength = 3
	MaxTicketLength = 32

	// WinnerTicketLength 中奖号码取随机数的前几个字节, 其余字节为0
	WinnerTicketLength = 3
	// MaxParticipants 每个号码在每一轮最多的参与者个数
	MaxParticipants = 8
	// EmptyAddr 空的参与者
	EmptyAddr = ""
)

// query func name
const (
	FuncNameGetWinnerTicket    = "GetWinnerTicket"
	FuncNameGetParticipants    = "GetParticipants"
	FuncNameGetJackpot         = "GetJackpot"
	FuncNameGetLastJackpot     = "GetLastJackpot"
	FuncNameGetLastDrawing     = "GetLastDrawing"
	FuncNameGetNextDrawing     = "GetNextDrawing"
	FuncNameGetLastPayout      = "GetLastPayout"
	FuncNameGetPreviousWinners = "GetPreviousWinners"
	FuncNameGetRound           = "GetRound"
	FuncNameGetLotteryInfo     = "GetLotteryInfo"
	FuncNameGetDrawHistory     = "GetDrawHistory"
	FuncNameGetBuyHistory      = "GetBuyHistory"
)

// 随机数来源
const (
	RandomSourceBlock  = "block"
	RandomSourceCrypto = "crypto"
)
