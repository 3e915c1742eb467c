// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	"github.com/33cn/lottery/types"
)

// Exec_Register 购买号码
func (lott *Lottery) Exec_Register(payload *pty.LotteryRegister, tx *types.Transaction, index int) (*types.Receipt, error) {
	actiondb := NewLotteryAction(lott, tx)
	return actiondb.Register(payload)
}
