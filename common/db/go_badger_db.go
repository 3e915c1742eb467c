// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"fmt"
	"path"
	"strconv"

	log "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/types"
	"github.com/dgraph-io/badger"
	"github.com/dgraph-io/badger/options"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// badgerLog 把 badger 内部日志转到 log15
type badgerLog struct{}

func (l *badgerLog) Errorf(f string, v ...interface{})   { blog.Error("badger", "msg", fmt.Sprintf(f, v...)) }
func (l *badgerLog) Warningf(f string, v ...interface{}) { blog.Warn("badger", "msg", fmt.Sprintf(f, v...)) }
func (l *badgerLog) Infof(f string, v ...interface{})    { blog.Debug("badger", "msg", fmt.Sprintf(f, v...)) }
func (l *badgerLog) Debugf(f string, v ...interface{})   { blog.Debug("badger", "msg", fmt.Sprintf(f, v...)) }

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = &badgerLog{}
	opts.ValueLogLoadingMode = options.FileIO
	opts.TableLoadingMode = options.MemoryMap
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, types.ErrNotFound
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

//SetSync 同步
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	if err := db.Set(key, value); err != nil {
		return err
	}
	return db.db.Sync()
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

//DeleteSync 删除同步
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	if err := db.Delete(key); err != nil {
		return err
	}
	return db.db.Sync()
}

//DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsmsize":  strconv.FormatInt(lsm, 10),
		"badger.vlogsize": strconv.FormatInt(vlog, 10),
	}
}

//Iterator 迭代器
func (db *GoBadgerDB) Iterator(start, end []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{Iterator: it, itBase: newItBase(start, end, reverse), txn: txn}
}

type goBadgerDBIt struct {
	*badger.Iterator
	itBase
	txn *badger.Txn
	err error
}

//Rewind 定位到第一个或最后一个
func (it *goBadgerDBIt) Rewind() bool {
	if !it.reverse {
		it.Iterator.Seek(it.start)
		return it.Valid()
	}
	if len(it.end) == 0 {
		it.Iterator.Rewind()
		return it.Valid()
	}
	//反向时 Seek 定位到 <= end 的位置, end 本身不在范围内
	it.Iterator.Seek(it.end)
	if it.Iterator.Valid() && bytes.Equal(it.Iterator.Item().Key(), it.end) {
		it.Iterator.Next()
	}
	return it.Valid()
}

//Next next
func (it *goBadgerDBIt) Next() bool {
	it.Iterator.Next()
	return it.Valid()
}

//Seek 正向定位到第一个 >= key 的位置, 反向定位到最后一个 <= key 的位置
func (it *goBadgerDBIt) Seek(key []byte) bool {
	it.Iterator.Seek(key)
	return it.Valid()
}

//Valid 是否合法
func (it *goBadgerDBIt) Valid() bool {
	return it.Iterator.Valid() && it.checkKey(it.Key())
}

//Key key
func (it *goBadgerDBIt) Key() []byte {
	return it.Item().Key()
}

//Value value
func (it *goBadgerDBIt) Value() []byte {
	value, err := it.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

//ValueCopy copy
func (it *goBadgerDBIt) ValueCopy() []byte {
	return it.Value()
}

//Error 错误
func (it *goBadgerDBIt) Error() error {
	return it.err
}

//Close 关闭
func (it *goBadgerDBIt) Close() {
	it.Iterator.Close()
	it.txn.Discard()
}

type badgerBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
	sync   bool
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &badgerBatch{db: db, sync: sync}
}

func (b *badgerBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
	b.size += len(value)
}

func (b *badgerBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size++
}

func (b *badgerBatch) Write() error {
	err := b.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range b.writes {
			var err error
			if kv.v == nil {
				err = txn.Delete(kv.k)
			} else {
				err = txn.Set(kv.k, kv.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	if b.sync {
		return b.db.db.Sync()
	}
	return nil
}

func (b *badgerBatch) ValueSize() int {
	return b.size
}

func (b *badgerBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
