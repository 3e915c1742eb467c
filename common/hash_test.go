// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))
	b, err := FromHex("0x0102ff")
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)
	b, err = FromHex("102ff")
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)
	b, err = FromHex("")
	require.Nil(t, err)
	assert.Equal(t, 0, len(b))
	_, err = FromHex("0xzz")
	assert.NotNil(t, err)
	assert.True(t, HasHexPrefix("0X12"))
	assert.False(t, HasHexPrefix("12"))
	assert.Equal(t, "0102", HashHex([]byte{1, 2}))
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	a := []byte{1, 2, 3}
	b := CopyBytes(a)
	b[0] = 9
	assert.Equal(t, byte(1), a[0])
}

func TestHashes(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashHex(Sha256(nil)))
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", HashHex(ShaKeccak256(nil)))
	sum := Sha2Sum([]byte("abc"))
	assert.Equal(t, Sha256(Sha256([]byte("abc"))), sum[:])
	rim := Rimp160AfterSha256([]byte("abc"))
	assert.Equal(t, 20, len(rim))
}
