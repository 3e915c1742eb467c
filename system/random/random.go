// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package random 执行器使用的随机数来源
package random

import (
	"errors"
	"sort"
	"sync"

	log "github.com/33cn/lottery/common/log"
)

var rlog = log.New("module", "random")

// Size 随机数字节数
const Size = 32

// 随机数来源的错误
var (
	ErrSourceUnavailable = errors.New("ErrRandomSourceUnavailable")
	ErrUnknownStatus     = errors.New("ErrRandomUnknownStatus")
	ErrShortOutput       = errors.New("ErrRandomShortOutput")
	ErrSourceNotFound    = errors.New("ErrRandomSourceNotFound")
)

// Source 随机数来源
type Source interface {
	FetchRandom() ([Size]byte, error)
}

// Env 创建随机数来源时的区块环境
type Env struct {
	Height     int64
	BlockTime  int64
	ParentHash []byte
	// Seed 一般为交易哈希, 同一个区块内不同交易得到不同的随机数
	Seed []byte
}

// Creator 根据区块环境创建随机数来源
type Creator func(env *Env) Source

var (
	mu       sync.RWMutex
	creators = make(map[string]Creator)
)

// Register 注册随机数来源
func Register(name string, create Creator) {
	if create == nil {
		panic("random: Register creator is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := creators[name]; dup {
		panic("random: Register called twice for " + name)
	}
	creators[name] = create
}

// New 创建随机数来源
func New(name string, env *Env) (Source, error) {
	mu.RLock()
	create, ok := creators[name]
	mu.RUnlock()
	if !ok {
		rlog.Error("New", "name", name, "err", ErrSourceNotFound)
		return nil, ErrSourceNotFound
	}
	return create(env), nil
}

// Registered 随机数来源是否已经注册
func Registered(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := creators[name]
	return ok
}

// Names 已注册的随机数来源
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	var names []string
	for name := range creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SourceFunc 函数形式的随机数来源
type SourceFunc func() ([Size]byte, error)

// FetchRandom 调用函数本身
func (f SourceFunc) FetchRandom() ([Size]byte, error) {
	return f()
}
