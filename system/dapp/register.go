// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/lottery/common/address"
	log "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/types"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	registerMu         sync.RWMutex
	registedExecDriver = make(map[string]*driverWithHeight)
	execAddressNameMap = make(map[string]string)
	execDrivers        = make(map[string]*driverWithHeight)
)

// Register 注册驱动, height 是驱动开始生效的高度
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	registerMu.Lock()
	defer registerMu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	driverHeight := &driverWithHeight{
		create: create,
		height: height,
	}
	registedExecDriver[name] = driverHeight
	execDrivers[registerAddress(name)] = driverHeight
}

// LoadDriver load driver, height 为 -1 时不检查生效高度
func LoadDriver(name string, height int64) (driver Driver, err error) {
	registerMu.RLock()
	c, ok := registedExecDriver[name]
	registerMu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	if height >= c.height || height == -1 {
		return c.create(), nil
	}
	return nil, types.ErrUnknowDriver
}

// DriverNames 所有已注册的驱动名, 按名字排序
func DriverNames() []string {
	registerMu.RLock()
	defer registerMu.RUnlock()
	var names []string
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDriverAddress whether or not execdrivers by address
func IsDriverAddress(addr string, height int64) bool {
	registerMu.RLock()
	c, ok := execDrivers[addr]
	registerMu.RUnlock()
	if !ok {
		return false
	}
	return height >= c.height || height == -1
}

// CheckAddress 执行器地址或者普通地址
func CheckAddress(addr string, height int64) error {
	if IsDriverAddress(addr, height) {
		return nil
	}
	return address.CheckAddress(addr)
}

func registerAddress(name string) string {
	if len(name) == 0 {
		panic("empty name string")
	}
	addr := address.ExecAddress(name)
	execAddressNameMap[name] = addr
	return addr
}

// ExecAddress return exec address
func ExecAddress(name string) string {
	registerMu.RLock()
	addr, ok := execAddressNameMap[name]
	registerMu.RUnlock()
	if ok {
		return addr
	}
	return address.ExecAddress(name)
}
