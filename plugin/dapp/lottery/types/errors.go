// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrLotteryTicketPrice  = errors.New("ErrLotteryTicketPrice")
	ErrLotteryEmptyAddr    = errors.New("ErrLotteryEmptyAddr")
	ErrLotteryTicketLength = errors.New("ErrLotteryTicketLength")
	ErrLotterySoldOut      = errors.New("ErrLotterySoldOut")
	ErrLotteryRandom       = errors.New("ErrLotteryRandom")
	ErrLotteryConfig       = errors.New("ErrLotteryConfig")
	ErrLotteryPayment      = errors.New("ErrLotteryPayment")
)
