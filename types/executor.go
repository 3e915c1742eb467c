// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"
)

// LogInfo 日志类型对应的结构体以及名称
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

// ExecutorType 执行器的类型信息, 负责 payload 和日志的编解码
type ExecutorType interface {
	GetName() string
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	DecodeLog(ty int32, data []byte) (interface{}, string, error)
}

// execTypeBase 通过 child 提供的信息实现 ExecutorType
type execTypeChild interface {
	GetName() string
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
}

// ExecTypeBase 执行器类型基类
type ExecTypeBase struct {
	child    execTypeChild
	actionTy map[int32]string
}

// SetChild 设置子类
func (base *ExecTypeBase) SetChild(child execTypeChild) {
	base.child = child
	base.actionTy = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.actionTy[ty] = name
	}
}

// GetActionName 根据类型获取 action 名
func (base *ExecTypeBase) GetActionName(ty int32) string {
	if name, ok := base.actionTy[ty]; ok {
		return name
	}
	return "unknown"
}

// DecodePayload 解码 payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	err := Decode(tx.GetPayload(), payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// DecodePayloadValue 解码 payload 并返回 action 名以及 action 的值
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	action, err := base.DecodePayload(tx)
	if err != nil {
		return "", reflect.ValueOf(nil), err
	}
	name, _, value := GetActionValue(action, base.actionTy)
	if name == "" || IsNilVal(value) {
		return "", reflect.ValueOf(nil), ErrActionNotSupport
	}
	return name, value, nil
}

// DecodeLog 解码日志, 返回日志结构体以及日志名
func (base *ExecTypeBase) DecodeLog(ty int32, data []byte) (interface{}, string, error) {
	info, ok := base.child.GetLogMap()[int64(ty)]
	if !ok {
		return nil, "", ErrLogType
	}
	msg, ok := reflect.New(info.Ty).Interface().(Message)
	if !ok {
		return nil, "", ErrLogType
	}
	if err := Decode(data, msg); err != nil {
		return nil, "", err
	}
	return msg, info.Name, nil
}

// DecodeLogJSON 把日志解码为 json
func DecodeLogJSON(ety ExecutorType, ty int32, data []byte) (json.RawMessage, string, error) {
	if ety == nil {
		return nil, "", ErrLogType
	}
	msg, name, err := ety.DecodeLog(ty, data)
	if err != nil {
		return nil, "", err
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, "", err
	}
	return b, name, nil
}

var executorTypes = make(map[string]ExecutorType)

// RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	if _, exist := executorTypes[exec]; exist {
		panic("DupExecutorType")
	}
	executorTypes[exec] = util
}

// LoadExecutorType 加载执行器类型
func LoadExecutorType(execstr string) ExecutorType {
	if e, ok := executorTypes[execstr]; ok {
		return e
	}
	return nil
}
