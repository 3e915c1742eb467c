// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 键值数据库接口以及 goleveldb, memdb, badger 三种实现
package db

import (
	"bytes"

	log "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/types"
	"github.com/pkg/errors"
)

var dlog = log.New("module", "db")

// KV 执行器使用的读写接口, key 不存在时 Get 返回 types.ErrNotFound
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// KVDB 带列表查询的读写接口
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// IteratorDB 迭代
type IteratorDB interface {
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

// DB 数据库
type DB interface {
	KV
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch 批量写, Write 之前的修改对数据库不可见
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

type itBase struct {
	start   []byte
	end     []byte
	reverse bool
}

// end 为空时表示以 start 为前缀的所有 key
func newItBase(start, end []byte, reverse bool) itBase {
	if end == nil {
		end = bytesPrefix(start)
	}
	return itBase{start: start, end: end, reverse: reverse}
}

func (it *itBase) checkKey(key []byte) bool {
	if len(it.start) > 0 && bytes.Compare(key, it.start) < 0 {
		return false
	}
	if len(it.end) > 0 && bytes.Compare(key, it.end) >= 0 {
		return false
	}
	return true
}

// bytesPrefix 返回比所有以 prefix 开头的 key 都大的最小 key
func bytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

//-----------------------------------------------------------------------------

// 支持的数据库类型
const (
	LevelDBBackendStr    = "leveldb"
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 按 backend 创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		dlog.Error("NewDB", "backend", backend, "err", types.ErrDBDriverNotSupport)
		return nil, types.ErrDBDriverNotSupport
	}
	db, err := creator(name, dir, int(cache))
	if err != nil {
		return nil, errors.Wrapf(err, "open %s db %s", backend, name)
	}
	return db, nil
}
