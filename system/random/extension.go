// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

import (
	"fmt"

	"github.com/pkg/errors"
)

// 外部扩展返回的状态码
const (
	StatusOK          = uint32(0)
	StatusUnavailable = uint32(1)
)

// ExtensionCall 调用外部扩展, 返回状态码以及输出
type ExtensionCall func() (status uint32, output []byte)

// ExtensionSource 把返回状态码的外部扩展适配为 Source
// 0 成功, 1 随机数来源不可用, 其他状态码为未知错误
type ExtensionSource struct {
	call ExtensionCall
}

// NewExtensionSource new
func NewExtensionSource(call ExtensionCall) *ExtensionSource {
	return &ExtensionSource{call: call}
}

// RegisterExtension 把外部扩展注册为名为 name 的随机数来源, 之后可以在 randomSource 中配置
func RegisterExtension(name string, call ExtensionCall) {
	if call == nil {
		panic("random: RegisterExtension call is nil")
	}
	Register(name, func(*Env) Source { return NewExtensionSource(call) })
}

// FetchRandom 调用扩展并解析状态码
func (s *ExtensionSource) FetchRandom() (out [Size]byte, err error) {
	status, output := s.call()
	if err = FromStatusCode(status); err != nil {
		return out, err
	}
	if len(output) < Size {
		return out, errors.Wrap(ErrShortOutput, fmt.Sprintf("got %d bytes", len(output)))
	}
	copy(out[:], output[:Size])
	return out, nil
}

// FromStatusCode 状态码转换为错误
func FromStatusCode(status uint32) error {
	switch status {
	case StatusOK:
		return nil
	case StatusUnavailable:
		return ErrSourceUnavailable
	default:
		rlog.Error("FromStatusCode", "status", status)
		return errors.Wrap(ErrUnknownStatus, fmt.Sprintf("status %d", status))
	}
}
