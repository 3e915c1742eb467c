// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Is this an exported - upper case - name?
func isExported(name string) bool {
	rune, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(rune)
}

// ListMethod 列出所有导出的方法
func ListMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	return ListMethodByType(typ)
}

// ListMethodByType 列出类型上所有导出的方法
func ListMethodByType(typ reflect.Type) map[string]reflect.Method {
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		methods[mname] = method
	}
	return methods
}

// ExecutorAction 带类型的 action
type ExecutorAction interface {
	GetTy() int32
}

// GetActionValue 根据 action.Ty 找到对应的字段, 字段名就是 action 的名字
func GetActionValue(action interface{}, names map[int32]string) (string, int32, reflect.Value) {
	a, ok := action.(ExecutorAction)
	if !ok {
		return "", 0, reflect.ValueOf(nil)
	}
	ty := a.GetTy()
	name, ok := names[ty]
	if !ok {
		return "", ty, reflect.ValueOf(nil)
	}
	value := reflect.ValueOf(action)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return "", ty, reflect.ValueOf(nil)
	}
	field := value.Elem().FieldByName(name)
	if !field.IsValid() || IsNilVal(field) {
		return "", ty, reflect.ValueOf(nil)
	}
	return name, ty, field
}

// IsOK 返回值个数正确且都可以转换成 interface
func IsOK(list []reflect.Value, n int) bool {
	if len(list) != n {
		return false
	}
	for i := 0; i < len(list); i++ {
		if !IsNilVal(list[i]) && !list[i].CanInterface() {
			return false
		}
	}
	return true
}

// IsNilVal 是否为空值
func IsNilVal(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
