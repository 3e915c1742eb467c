// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

// CryptoName 操作系统提供的随机数
const CryptoName = "crypto"

func init() {
	Register(CryptoName, func(env *Env) Source {
		return NewCryptoSource(nil)
	})
}

// CryptoSource 从 reader 读取随机数, 默认 crypto/rand
type CryptoSource struct {
	reader io.Reader
}

// NewCryptoSource reader 为 nil 时使用 crypto/rand
func NewCryptoSource(reader io.Reader) *CryptoSource {
	if reader == nil {
		reader = rand.Reader
	}
	return &CryptoSource{reader: reader}
}

// FetchRandom 读取随机数
func (s *CryptoSource) FetchRandom() (out [Size]byte, err error) {
	if _, err = io.ReadFull(s.reader, out[:]); err != nil {
		rlog.Error("CryptoSource.FetchRandom", "err", err)
		return out, errors.Wrap(ErrSourceUnavailable, err.Error())
	}
	return out, nil
}
