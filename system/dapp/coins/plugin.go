// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 系统内置的货币执行器
package coins

import (
	"github.com/33cn/lottery/pluginmgr"
	"github.com/33cn/lottery/system/dapp/coins/executor"
	cty "github.com/33cn/lottery/system/dapp/coins/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     cty.CoinsX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
	})
}
