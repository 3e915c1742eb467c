// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonclient

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// RPCCtx 一次命令行 rpc 调用
type RPCCtx struct {
	Addr   string
	Method string
	Params interface{}
	Res    interface{}

	cb  Callback
	out io.Writer
	err io.Writer
}

// Callback 对 rpc 结果做格式化
type Callback func(res interface{}) (interface{}, error)

// NewRPCCtx produce a object of rpcctx
func NewRPCCtx(laddr, method string, params, res interface{}) *RPCCtx {
	return &RPCCtx{
		Addr:   laddr,
		Method: method,
		Params: params,
		Res:    res,
		out:    os.Stdout,
		err:    os.Stderr,
	}
}

// SetResultCb rpcctx callback
func (c *RPCCtx) SetResultCb(cb Callback) {
	c.cb = cb
}

// SetOutput 输出位置, 默认 stdout/stderr
func (c *RPCCtx) SetOutput(out, errOut io.Writer) {
	c.out = out
	c.err = errOut
}

// RunResult 调用并返回(格式化后的)结果
func (c *RPCCtx) RunResult() (interface{}, error) {
	rpc, err := NewJSONClient(c.Addr)
	if err != nil {
		return nil, err
	}
	if err = rpc.Call(c.Method, c.Params, c.Res); err != nil {
		return nil, err
	}
	if c.cb == nil {
		return c.Res, nil
	}
	return c.cb(c.Res)
}

// Run 调用并以缩进 json 打印结果, 错误打印到 stderr
func (c *RPCCtx) Run() {
	result, err := c.RunResult()
	if err != nil {
		fmt.Fprintln(c.err, err)
		return
	}
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		fmt.Fprintln(c.err, err)
		return
	}
	fmt.Fprintln(c.out, string(data))
}
