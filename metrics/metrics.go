// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics go-metrics 统计的定时输出以及 prometheus 指标
package metrics

import (
	"context"
	"net/http"
	"reflect"
	"time"

	lotterylog "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	log = lotterylog.New("module", "lottery metrics")
)

// Namespace prometheus 指标的命名空间
var Namespace = "lottery"

// Registry 节点的 prometheus 指标
var Registry = prometheus.NewRegistry()

const defaultDuration = 10 * time.Second

// StartMetrics 根据配置定时输出 go-metrics 的统计, ctx 结束时停止
func StartMetrics(ctx context.Context, cfg *types.Metrics, r go_metrics.Registry) {
	if cfg == nil || !cfg.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return
	}
	if r == nil {
		r = go_metrics.DefaultRegistry
	}
	duration := time.Duration(cfg.Duration) * time.Millisecond
	if duration <= 0 {
		duration = defaultDuration
	}
	switch cfg.DataEmitMode {
	case "log", "":
		log.Info("StartMetrics with log", "duration", duration)
		go emitLog(ctx, r, duration)
	default:
		log.Error("startMetrics", "The dataEmitMode set is not supported now ", cfg.DataEmitMode)
	}
}

func emitLog(ctx context.Context, r go_metrics.Registry, duration time.Duration) {
	ticker := time.NewTicker(duration)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			LogOnce(r)
		}
	}
}

// LogOnce 把 registry 中所有的统计输出到日志
func LogOnce(r go_metrics.Registry) {
	r.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			log.Info("counter", "name", name, "count", m.Count())
		case go_metrics.Gauge:
			log.Info("gauge", "name", name, "value", m.Value())
		case go_metrics.Meter:
			ms := m.Snapshot()
			log.Info("meter", "name", name, "count", ms.Count(), "rate1", ms.Rate1(), "mean", ms.RateMean())
		case go_metrics.Timer:
			t := m.Snapshot()
			log.Info("timer", "name", name, "count", t.Count(), "min", time.Duration(t.Min()),
				"max", time.Duration(t.Max()), "mean", time.Duration(int64(t.Mean())))
		}
	})
}

// Collector 提供 prometheus 指标
type Collector interface {
	Metrics() []prometheus.Collector
}

// PrometheusCollectorsFromFields 结构体中类型为 prometheus.Collector 的字段
func PrometheusCollectorsFromFields(i interface{}) (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(i))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}

// MustRegister 注册 Collector 的所有指标
func MustRegister(reg prometheus.Registerer, c Collector) {
	reg.MustRegister(c.Metrics()...)
}

// Handler /metrics
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = Registry
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
