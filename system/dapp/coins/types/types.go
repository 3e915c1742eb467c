// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的类型定义
package types

import (
	"github.com/33cn/lottery/types"
)

// action
const (
	CoinsActionTransfer = 1
)

var (
	// CoinsX 执行器名
	CoinsX = "coins"
	// ExecerCoins execer
	ExecerCoins = []byte(CoinsX)
	actionName  = map[string]int32{
		"Transfer": CoinsActionTransfer,
	}
)

// query func name
const (
	FuncNameGetBalance     = "GetBalance"
	FuncNameGetAddrReciver = "GetAddrReciver"
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsType 执行器类型
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名
func (coins *CoinsType) GetName() string {
	return CoinsX
}

// GetPayload payload
func (coins *CoinsType) GetPayload() types.Message {
	return &CoinsAction{}
}

// GetLogMap coins 的日志都是账户日志
func (coins *CoinsType) GetLogMap() map[int64]*types.LogInfo {
	return nil
}

// GetTypeMap action
func (coins *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}

// CreateRawTransferTx 构造转账交易
func CreateRawTransferTx(from, to string, amount int64, note string) (*types.Transaction, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	action := &CoinsAction{
		Ty:       CoinsActionTransfer,
		Transfer: &CoinsTransfer{To: to, Amount: amount, Note: note},
	}
	return &types.Transaction{
		Execer:  ExecerCoins,
		Payload: types.Encode(action),
		From:    from,
	}, nil
}
