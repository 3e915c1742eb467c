// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lottery 按轮次开奖的彩票插件
package lottery

import (
	"github.com/33cn/lottery/plugin/dapp/lottery/commands"
	"github.com/33cn/lottery/plugin/dapp/lottery/executor"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	"github.com/33cn/lottery/pluginmgr"
	"github.com/33cn/lottery/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     pty.LotteryX,
		ExecName: executor.GetName(),
		Exec: func(name string, cfg *types.Config, sub []byte) {
			executor.Init(name, cfg, sub)
		},
		Cmd: commands.LotteryCmd,
	})
}
