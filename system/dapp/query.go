// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"
	"sync"

	"github.com/33cn/lottery/types"
)

var (
	funcMapMu sync.Mutex
	funcMaps  = make(map[reflect.Type]map[string]reflect.Method)
)

func getFuncMap(child interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(child)
	funcMapMu.Lock()
	defer funcMapMu.Unlock()
	if m, ok := funcMaps[typ]; ok {
		return m
	}
	m := types.ListMethodByType(typ)
	funcMaps[typ] = m
	return m
}

// Query 调用子类的 Query_xxx, params 是 proto 编码的参数
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	funcmap := d.child.GetFuncMap()
	funcname = "Query_" + funcname
	if _, ok := funcmap[funcname]; !ok {
		blog.Error(funcname+" funcname not find", "func", funcname)
		return nil, types.ErrActionNotSupport
	}
	ty := funcmap[funcname].Type
	if ty.NumIn() != 2 {
		blog.Error(funcname+" err num in param", "num", ty.NumIn())
		return nil, types.ErrActionNotSupport
	}
	paramin := ty.In(1)
	if paramin.Kind() != reflect.Ptr {
		blog.Error(funcname+"  param is not pointer")
		return nil, types.ErrActionNotSupport
	}
	p := reflect.New(ty.In(1).Elem())
	queryin, ok := p.Interface().(types.Message)
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	if err := types.Decode(params, queryin); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("query error", "func", funcname, "info", r)
			err = types.ErrActionNotSupport
			msg = nil
		}
	}()
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, reflect.ValueOf(queryin)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(types.Message); ok {
			msg = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	//参数2
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return msg, err
}
