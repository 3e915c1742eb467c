// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	"github.com/33cn/lottery/common"
	"github.com/decred/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubKeyToAddress(t *testing.T) {
	pub := common.Sha256([]byte("alice"))
	addr := PubKeyToAddress(pub)
	s := addr.String()
	require.Nil(t, CheckAddress(s))
	//第二次命中缓存
	require.Nil(t, CheckAddress(s))

	parsed, err := NewAddrFromString(s)
	require.Nil(t, err)
	assert.Equal(t, addr.Hash160, parsed.Hash160)
	assert.Equal(t, s, parsed.String())
}

func TestExecAddress(t *testing.T) {
	a1 := ExecAddress("lottery")
	a2 := ExecAddress("lottery")
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, ExecAddress("coins"))
	assert.Nil(t, CheckAddress(a1))
	assert.Equal(t, PubKeyToAddress(ExecPubKey("lottery")).String(), a1)
	assert.Panics(t, func() {
		ExecPubKey(string(make([]byte, MaxExecNameLength+1)))
	})
}

func TestCheckAddressError(t *testing.T) {
	assert.Equal(t, ErrDecodeBase58, CheckAddress("0OIl"))
	assert.Equal(t, ErrAddressShort, CheckAddress(base58.Encode([]byte{1, 2, 3})))

	s := PubKeyToAddress(common.Sha256([]byte("bob"))).String()
	dec := base58.Decode(s)
	dec[24] ^= 0xff
	bad := base58.Encode(dec)
	assert.Equal(t, ErrCheckChecksum, CheckAddress(bad))
	_, err := NewAddrFromString(bad)
	assert.Equal(t, ErrCheckChecksum, err)
}
