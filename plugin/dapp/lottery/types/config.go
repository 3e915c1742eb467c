// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	"github.com/33cn/lottery/system/random"
	"github.com/pkg/errors"
)

// Config lottery 执行器的配置, 对应 [exec.sub.lottery]
type Config struct {
	TicketPrice   int64  `json:"ticketPrice,omitempty"`
	RoundDuration int64  `json:"roundDuration,omitempty"`
	TicketLength  int32  `json:"ticketLength,omitempty"`
	RandomSource  string `json:"randomSource,omitempty"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		TicketPrice:   DefaultTicketPrice,
		RoundDuration: DefaultRoundDuration,
		TicketLength:  DefaultTicketLength,
		RandomSource:  RandomSourceBlock,
	}
}

// FillDefault 未配置的项使用默认值
func (c *Config) FillDefault() {
	def := DefaultConfig()
	if c.TicketPrice == 0 {
		c.TicketPrice = def.TicketPrice
	}
	if c.RoundDuration == 0 {
		c.RoundDuration = def.RoundDuration
	}
	if c.TicketLength == 0 {
		c.TicketLength = def.TicketLength
	}
	if c.RandomSource == "" {
		c.RandomSource = def.RandomSource
	}
}

// Validate 检查配置
func (c *Config) Validate() error {
	if c.TicketPrice <= 0 {
		return errors.Wrapf(ErrLotteryConfig, "ticketPrice %d", c.TicketPrice)
	}
	if c.RoundDuration <= 0 {
		return errors.Wrapf(ErrLotteryConfig, "roundDuration %d", c.RoundDuration)
	}
	if c.TicketLength < MinTicketLength || c.TicketLength > MaxTicketLength {
		return errors.Wrapf(ErrLotteryConfig, "ticketLength %d not in [%d, %d]", c.TicketLength, MinTicketLength, MaxTicketLength)
	}
	if !random.Registered(c.RandomSource) {
		return errors.Wrap(ErrLotteryConfig, fmt.Sprintf("randomSource %s", c.RandomSource))
	}
	return nil
}
