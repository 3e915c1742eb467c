// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	"github.com/prometheus/client_golang/prometheus"
	go_metrics "github.com/rcrowley/go-metrics"
)

// LotterySink 统计购买和开奖, 同时实现 EventSink 和 DrawObserver
type LotterySink struct {
	tickets go_metrics.Counter
	draws   go_metrics.Counter
	payouts go_metrics.Counter
	jackpot go_metrics.Gauge

	Tickets     prometheus.Counter
	Draws       *prometheus.CounterVec
	PaidAmount  prometheus.Counter
	LastJackpot prometheus.Gauge
}

// NewLotterySink go-metrics 的统计注册到 r
func NewLotterySink(r go_metrics.Registry) *LotterySink {
	if r == nil {
		r = go_metrics.DefaultRegistry
	}
	return &LotterySink{
		tickets: go_metrics.GetOrRegisterCounter("lottery.tickets", r),
		draws:   go_metrics.GetOrRegisterCounter("lottery.draws", r),
		payouts: go_metrics.GetOrRegisterCounter("lottery.payouts", r),
		jackpot: go_metrics.GetOrRegisterGauge("lottery.last_jackpot", r),
		Tickets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "lottery",
			Name:      "tickets_total",
			Help:      "Total number of registered tickets.",
		}),
		Draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "lottery",
			Name:      "draws_total",
			Help:      "Total number of draws by result.",
		}, []string{"result"}),
		PaidAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "lottery",
			Name:      "paid_amount_total",
			Help:      "Total amount paid to winners.",
		}),
		LastJackpot: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "lottery",
			Name:      "last_jackpot",
			Help:      "Jackpot of the last round with winners.",
		}),
	}
}

// Metrics prometheus 指标
func (s *LotterySink) Metrics() []prometheus.Collector {
	return PrometheusCollectorsFromFields(s)
}

// TicketRegistered 购买成功
func (s *LotterySink) TicketRegistered(ticket []byte, from string) {
	s.tickets.Inc(1)
	s.Tickets.Inc()
}

// LotteryDrawn 开奖
func (s *LotterySink) LotteryDrawn(draw *pty.ReceiptLotteryDraw, payout *pty.ReceiptLotteryPayout) {
	s.draws.Inc(1)
	if payout == nil {
		s.Draws.WithLabelValues("nowinner").Inc()
		return
	}
	s.Draws.WithLabelValues("winner").Inc()
	paid := payout.Payout * int64(len(payout.Paid))
	s.payouts.Inc(int64(len(payout.Paid)))
	s.jackpot.Update(payout.Jackpot)
	s.PaidAmount.Add(float64(paid))
	s.LastJackpot.Set(float64(payout.Jackpot))
}
