// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 实现了lottery节点基础结构体、接口、常量等的定义
package types

import (
	"encoding/json"

	"github.com/golang/protobuf/proto"
	"github.com/shopspring/decimal"
)

// Message 声明proto.Message
type Message proto.Message

//Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//CheckAmount  检测转账金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

// NewErrReceipt new一个新的Receipt
func NewErrReceipt(err error) *Receipt {
	berr := err.Error()
	errlog := &ReceiptLog{Ty: TyLogErr, Log: []byte(berr)}
	return &Receipt{Ty: ExecErr, KV: nil, Logs: []*ReceiptLog{errlog}}
}

// FormatAmount 按精度格式化金额, 1e8 -> "1.0000"
func FormatAmount(amount int64, precision int64) string {
	if precision <= 0 {
		precision = Coin
	}
	return decimal.New(amount, 0).Div(decimal.New(precision, 0)).StringFixed(4)
}

// ParseAmount 将 "1.5" 这样的字符串按精度转换为整数金额
func ParseAmount(s string, precision int64) (int64, error) {
	if precision <= 0 {
		precision = Coin
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrAmount
	}
	v := d.Mul(decimal.New(precision, 0))
	if !v.Equal(v.Truncate(0)) {
		return 0, ErrAmount
	}
	return v.IntPart(), nil
}

// MustDecode 数据是否已经编码
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}
