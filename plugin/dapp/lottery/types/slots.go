// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// NewTicketSlots 全部为空的参与者列表
func NewTicketSlots() *TicketSlots {
	return &TicketSlots{Addrs: make([]string, MaxParticipants)}
}

// Normalize 保证长度为 MaxParticipants, 数据库中读出的记录末尾的空值可能被省略
func (m *TicketSlots) Normalize() *TicketSlots {
	for len(m.Addrs) < MaxParticipants {
		m.Addrs = append(m.Addrs, EmptyAddr)
	}
	return m
}

// FirstEmpty 第一个空位置, 已满时返回 -1
func (m *TicketSlots) FirstEmpty() int {
	for i := 0; i < MaxParticipants; i++ {
		if i >= len(m.Addrs) || m.Addrs[i] == EmptyAddr {
			return i
		}
	}
	return -1
}

// Count 非空的参与者个数, 检查全部位置
func (m *TicketSlots) Count() int {
	n := 0
	for _, addr := range m.Addrs {
		if addr != EmptyAddr {
			n++
		}
	}
	return n
}

// Winners 非空的参与者
func (m *TicketSlots) Winners() []string {
	var winners []string
	for _, addr := range m.Addrs {
		if addr != EmptyAddr {
			winners = append(winners, addr)
		}
	}
	return winners
}

// IsEmpty 是否全部为空
func (m *TicketSlots) IsEmpty() bool {
	return m.Count() == 0
}

// WinnerTicket 由随机数生成中奖号码, 取前 WinnerTicketLength 个字节, 其余为0
func WinnerTicket(random [32]byte, length int32) []byte {
	ticket := make([]byte, length)
	copy(ticket, random[:WinnerTicketLength])
	return ticket
}
