// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/types"
)

// StateDB 状态数据库, 在后端数据库之上加了两层缓存
// txcache 保存当前交易的修改, cache 保存已经提交但是没有落盘的修改
type StateDB struct {
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
	db      dbm.DB
}

// NewStateDB new state db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{
		cache: make(map[string][]byte),
		db:    db,
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 把事务中的修改合并到 cache
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return notFoundIfNil(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return notFoundIfNil(value)
	}
	if s.db == nil {
		return nil, types.ErrNotFound
	}
	value, err := s.db.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

func notFoundIfNil(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// Set set key value to state db, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// GetSetKeys 当前事务中修改的key
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// Flush 把已经提交的修改写入后端数据库
func (s *StateDB) Flush() error {
	if s.intx {
		return types.ErrExecFailed
	}
	if len(s.cache) == 0 || s.db == nil {
		return nil
	}
	batch := s.db.NewBatch(true)
	for k, v := range s.cache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	if err := batch.Write(); err != nil {
		elog.Error("StateDB.Flush", "err", err)
		return err
	}
	s.cache = make(map[string][]byte)
	return nil
}
