// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/33cn/lottery/common"
)

// 状态数据库中的 key
func stateKey() []byte {
	return []byte("mavl-lottery-state")
}

func calcTicketKey(ticket []byte, round int64) []byte {
	key := fmt.Sprintf("mavl-lottery-ticket-%s-%010d", common.Bytes2Hex(ticket), round)
	return []byte(key)
}

// 本地数据库中的 key
func calcLotteryDrawPrefix() []byte {
	return []byte("LODB-lottery-draw-")
}

func calcLotteryDrawKey(height int64) []byte {
	key := fmt.Sprintf("LODB-lottery-draw-%012d", height)
	return []byte(key)
}

// 购买记录的 key 中地址按 hex 编码, 避免一个地址是另一个地址前缀时前缀查询互相覆盖
func calcLotteryBuyPrefix(addr string) []byte {
	key := fmt.Sprintf("LODB-lottery-buy-%s-", common.Bytes2Hex([]byte(addr)))
	return []byte(key)
}

func calcLotteryBuyRoundPrefix(addr string, round int64) []byte {
	key := fmt.Sprintf("LODB-lottery-buy-%s-%010d-", common.Bytes2Hex([]byte(addr)), round)
	return []byte(key)
}

func calcLotteryBuyKey(addr string, round int64, txHash string) []byte {
	key := fmt.Sprintf("LODB-lottery-buy-%s-%010d-%s", common.Bytes2Hex([]byte(addr)), round, txHash)
	return []byte(key)
}
