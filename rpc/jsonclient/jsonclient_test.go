// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoServer(t *testing.T, handle func(req map[string]interface{}) string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.Nil(t, err)
		req := make(map[string]interface{})
		require.Nil(t, json.Unmarshal(body, &req))
		w.Write([]byte(handle(req)))
	}))
}

func TestCall(t *testing.T) {
	srv := echoServer(t, func(req map[string]interface{}) string {
		assert.Equal(t, "Lottery.Echo", req["method"])
		params := req["params"].([]interface{})
		assert.Equal(t, 1, len(params))
		data, _ := json.Marshal(params[0])
		return `{"id":"1","result":` + string(data) + `,"error":null}`
	})
	defer srv.Close()

	client, err := NewJSONClient(srv.URL)
	require.Nil(t, err)
	var res struct {
		A int `json:"a"`
	}
	require.Nil(t, client.Call("Lottery.Echo", map[string]int{"a": 7}, &res))
	assert.Equal(t, 7, res.A)
}

func TestCallErrors(t *testing.T) {
	_, err := NewJSONClient("")
	assert.NotNil(t, err)

	srv := echoServer(t, func(req map[string]interface{}) string {
		return `{"id":"1","result":null,"error":"ErrLotterySoldOut"}`
	})
	defer srv.Close()
	client, err := NewJSONClient(srv.URL)
	require.Nil(t, err)
	err = client.Call("Lottery.Register", nil, nil)
	require.NotNil(t, err)
	assert.Equal(t, "ErrLotterySoldOut", err.Error())

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many", http.StatusTooManyRequests)
	}))
	defer bad.Close()
	client, err = NewJSONClient(bad.URL)
	require.Nil(t, err)
	err = client.Call("Lottery.Register", nil, nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestRPCCtxRun(t *testing.T) {
	srv := echoServer(t, func(req map[string]interface{}) string {
		return `{"id":"1","result":{"a":1},"error":null}`
	})
	defer srv.Close()

	var res map[string]int
	ctx := NewRPCCtx(srv.URL, "Lottery.Echo", nil, &res)
	ctx.SetResultCb(func(r interface{}) (interface{}, error) {
		m := *r.(*map[string]int)
		m["b"] = 2
		return m, nil
	})
	var out, errOut bytes.Buffer
	ctx.SetOutput(&out, &errOut)
	ctx.Run()
	assert.Equal(t, "", errOut.String())
	assert.Contains(t, out.String(), `"b": 2`)

	ctx = NewRPCCtx("", "Lottery.Echo", nil, &res)
	ctx.SetOutput(&out, &errOut)
	ctx.Run()
	assert.Contains(t, errOut.String(), "ErrEmptyURL")
}
