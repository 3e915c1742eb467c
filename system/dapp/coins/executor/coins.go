// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是内置货币的执行器。

主要提供一种操作：
Transfer -> 转移资产
*/

import (
	log "github.com/33cn/lottery/common/log"
	drivers "github.com/33cn/lottery/system/dapp"
	cty "github.com/33cn/lottery/system/dapp/coins/types"
	"github.com/33cn/lottery/types"
)

var clog = log.New("module", "execs.coins")
var driverName = cty.CoinsX

// Init 注册驱动
func Init(name string, cfg *types.Config, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newCoins, 0)
}

// GetName 执行器名
func GetName() string {
	return newCoins().GetName()
}

// Coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

// GetDriverName 驱动名
func (c *Coins) GetDriverName() string {
	return driverName
}

// CheckTx 检查交易
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	if tx == nil {
		return types.ErrEmptyTx
	}
	if tx.From == "" {
		return types.ErrInvalidAddress
	}
	return nil
}
