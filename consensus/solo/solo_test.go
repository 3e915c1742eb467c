// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/33cn/lottery/types"
	"github.com/stretchr/testify/assert"
)

type countChain struct {
	mu     sync.Mutex
	height int64
	fail   bool
}

func (c *countChain) CreateBlock() (*types.Header, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return nil, errors.New("create failed")
	}
	c.height++
	return &types.Header{Height: c.height}, nil
}

func (c *countChain) Height() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

type countLocker struct {
	sync.Mutex
	n int
}

func (l *countLocker) Lock() {
	l.Mutex.Lock()
	l.n++
}

func TestSoloCreateBlock(t *testing.T) {
	chain := &countChain{}
	locker := &countLocker{}
	client := New(&types.Consensus{BlockIntervalMs: 5}, chain, locker)
	client.Start(context.Background())
	//重复启动无效
	client.Start(context.Background())
	assert.Eventually(t, func() bool { return chain.Height() >= 3 }, time.Second, time.Millisecond)
	client.Close()
	h := chain.Height()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, h, chain.Height())
	locker.Lock()
	assert.True(t, int64(locker.n-1) >= h)
	locker.Unlock()
	client.Close()
}

func TestSoloContextCancel(t *testing.T) {
	chain := &countChain{fail: true}
	client := New(&types.Consensus{}, chain, nil)
	assert.Equal(t, defaultBlockInterval, client.interval)
	client.interval = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	client.Start(ctx)
	time.Sleep(10 * time.Millisecond)
	cancel()
	client.mu.Lock()
	done := client.done
	client.mu.Unlock()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("solo not stopped")
	}
	assert.Equal(t, int64(0), chain.Height())
	client.Close()
}
