// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound            = errors.New("ErrNotFound")
	ErrAmount              = errors.New("ErrAmount")
	ErrNoBalance           = errors.New("ErrNoBalance")
	ErrSendSameToRecv      = errors.New("ErrSendSameToRecv")
	ErrExecNameNotAllow    = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow  = errors.New("ErrSymbolNameNotAllow")
	ErrActionNotSupport    = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport     = errors.New("ErrQueryNotSupport")
	ErrExecNotFound        = errors.New("ErrExecNotFound")
	ErrEmptyTx             = errors.New("ErrEmptyTx")
	ErrInvalidParam        = errors.New("ErrInvalidParam")
	ErrInvalidAddress      = errors.New("ErrInvalidAddress")
	ErrDBDriverNotSupport  = errors.New("ErrDBDriverNotSupport")
	ErrIsClosed            = errors.New("ErrIsClosed")
	ErrRateLimited         = errors.New("ErrRateLimited")
	ErrMethodReturnType    = errors.New("ErrMethodReturnType")
	ErrMethodNotFound      = errors.New("ErrMethodNotFound")
	ErrUnRegistedDriver    = errors.New("ErrUnRegistedDriver")
	ErrUnknowDriver        = errors.New("ErrUnknowDriver")
	ErrLogType             = errors.New("ErrLogType")
	ErrExecFailed          = errors.New("ErrExecFailed")
	ErrNotStarted          = errors.New("ErrNotStarted")
	ErrGenesisExist        = errors.New("ErrGenesisExist")
	ErrHeightNotExist      = errors.New("ErrHeightNotExist")
	ErrConsensusNotSupport = errors.New("ErrConsensusNotSupport")
)
