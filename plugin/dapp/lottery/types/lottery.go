// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types lottery 执行器的类型定义
package types

import (
	"reflect"

	log "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/types"
)

var (
	llog = log.New("module", "exectype."+LotteryX)

	actionTypeMap = map[string]int32{
		"Register": LotteryActionRegister,
	}

	logMap = map[int64]*types.LogInfo{
		TyLogLotteryRegister: {Ty: reflect.TypeOf(ReceiptLotteryRegister{}), Name: "LogLotteryRegister"},
		TyLogLotteryDraw:     {Ty: reflect.TypeOf(ReceiptLotteryDraw{}), Name: "LogLotteryDraw"},
		TyLogLotteryPayout:   {Ty: reflect.TypeOf(ReceiptLotteryPayout{}), Name: "LogLotteryPayout"},
	}
)

func init() {
	types.RegistorExecutor(LotteryX, NewType())
}

// LotteryType 执行器类型
type LotteryType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *LotteryType {
	c := &LotteryType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名
func (at *LotteryType) GetName() string {
	return LotteryX
}

// GetPayload payload 结构体
func (at *LotteryType) GetPayload() types.Message {
	return &LotteryAction{}
}

// GetTypeMap action 名与类型
func (at *LotteryType) GetTypeMap() map[string]int32 {
	return actionTypeMap
}

// GetLogMap 日志类型
func (at *LotteryType) GetLogMap() map[int64]*types.LogInfo {
	return logMap
}

// CreateRawLotteryRegisterTx 构造购买交易, amount 是随交易支付的金额
func CreateRawLotteryRegisterTx(from string, ticket []byte, amount int64) *types.Transaction {
	action := &LotteryAction{
		Ty:       LotteryActionRegister,
		Register: &LotteryRegister{Ticket: ticket},
	}
	tx := &types.Transaction{
		Execer:  []byte(LotteryX),
		Payload: types.Encode(action),
		From:    from,
		Amount:  amount,
	}
	llog.Debug("CreateRawLotteryRegisterTx", "from", from, "amount", amount)
	return tx
}
