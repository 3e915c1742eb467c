// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/types"
)

//LocalDB 本地数据库，不加入区块链的状态。
//Set 的内容先放在 kvs 中, Commit 的时候一次写入后端数据库
//List 只能看到已经提交的数据
type LocalDB struct {
	cache map[string][]byte
	keys  []string
	db    dbm.DB
	list  *dbm.ListHelper
}

//NewLocalDB 创建一个新的LocalDB
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{
		cache: make(map[string][]byte),
		db:    db,
		list:  dbm.NewListHelper(db),
	}
}

//Get 获取key
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	if value, ok := l.cache[string(key)]; ok {
		return notFoundIfNil(value)
	}
	value, err := l.db.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

//Set 设置key, value 为 nil 表示删除
func (l *LocalDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if _, ok := l.cache[skey]; !ok {
		l.keys = append(l.keys, skey)
	}
	l.cache[skey] = value
	return nil
}

// List 从数据库中查询数据列表
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := l.list.List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}

// PrefixCount 前缀相同的key的个数
func (l *LocalDB) PrefixCount(prefix []byte) int64 {
	return l.list.PrefixCount(prefix)
}

//Commit 把修改写入后端数据库
func (l *LocalDB) Commit() error {
	if len(l.keys) == 0 {
		return nil
	}
	batch := l.db.NewBatch(true)
	for _, k := range l.keys {
		v := l.cache[k]
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	if err := batch.Write(); err != nil {
		elog.Error("LocalDB.Commit", "err", err)
		return err
	}
	l.Rollback()
	return nil
}

//Rollback 丢弃没有提交的修改
func (l *LocalDB) Rollback() {
	l.cache = make(map[string][]byte)
	l.keys = nil
}
