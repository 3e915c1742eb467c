// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"sort"
	"sync"

	log "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/types"
	"github.com/spf13/cobra"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	pluginItems = make(map[string]Plugin)
	mu          sync.RWMutex
	once        = &sync.Once{}
)

// InitExec 初始化所有插件的执行器, 只执行一次
func InitExec(cfg *types.Config, sub *types.ConfigSubModule) {
	var exec map[string][]byte
	if sub != nil {
		exec = sub.Exec
	}
	once.Do(func() {
		for _, item := range sortedItems() {
			mgrlog.Debug("InitExec", "plugin", item.GetName())
			item.InitExec(cfg, exec)
		}
	})
}

// HasExec 是否有插件提供了这个执行器
func HasExec(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// Register 注册插件
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// AddCmd 把所有插件的命令加到 rootCmd
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range sortedItems() {
		item.AddCmd(rootCmd)
	}
}

// Names 已注册的插件名
func Names() []string {
	var names []string
	for _, item := range sortedItems() {
		names = append(names, item.GetName())
	}
	return names
}

func sortedItems() []Plugin {
	mu.RLock()
	defer mu.RUnlock()
	items := make([]Plugin, 0, len(pluginItems))
	for _, item := range pluginItems {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].GetName() < items[j].GetName() })
	return items
}
