// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// BlockName 根据区块信息计算的随机数
const BlockName = "block"

func init() {
	Register(BlockName, func(env *Env) Source {
		return NewBlockSource(env)
	})
}

// BlockSource keccak256(height || blocktime || parentHash || seed)
// 只依赖于区块数据, 所有节点得到相同的结果, 但是可以被出块者预测
type BlockSource struct {
	env Env
}

// NewBlockSource new
func NewBlockSource(env *Env) *BlockSource {
	if env == nil {
		env = &Env{}
	}
	return &BlockSource{env: *env}
}

// FetchRandom 计算随机数
func (s *BlockSource) FetchRandom() (out [Size]byte, err error) {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(s.env.Height))
	binary.BigEndian.PutUint64(buf[8:], uint64(s.env.BlockTime))
	h := sha3.NewLegacyKeccak256()
	h.Write(buf[:])
	h.Write(s.env.ParentHash)
	h.Write(s.env.Seed)
	copy(out[:], h.Sum(nil))
	return out, nil
}
