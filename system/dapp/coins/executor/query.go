// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	cty "github.com/33cn/lottery/system/dapp/coins/types"
	"github.com/33cn/lottery/types"
)

// Query_GetBalance 查询账户余额
func (c *Coins) Query_GetBalance(in *cty.ReqBalance) (types.Message, error) {
	if in.GetAddr() == "" {
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().LoadAccount(in.GetAddr()), nil
}

// Query_GetAddrReciver 查询地址累计收到的金额
func (c *Coins) Query_GetAddrReciver(in *cty.ReqBalance) (types.Message, error) {
	recv, err := getAddrReciver(c.GetLocalDB(), in.GetAddr())
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: recv}, nil
}
