// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	drivers "github.com/33cn/lottery/system/dapp"
	cty "github.com/33cn/lottery/system/dapp/coins/types"
	"github.com/33cn/lottery/types"
)

// Exec_Transfer 转账, 接收方可以是普通地址或者执行器地址
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := drivers.CheckAddress(transfer.GetTo(), c.GetHeight()); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().Transfer(tx.From, transfer.GetTo(), transfer.GetAmount())
}
