// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"
	"time"

	"github.com/33cn/lottery/metrics"
	"github.com/33cn/lottery/types"
	"github.com/kevinms/leakybucket-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
)

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

func (c *HTTPConn) Read(p []byte) (n int, err error)  { return c.in.Read(p) }
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

// Close rpc 请求结束不关闭 http 连接
func (c *HTTPConn) Close() error { return nil }

// JSONRPCServer json rpc over http
type JSONRPCServer struct {
	cfg      *types.RPC
	s        *rpc.Server
	gatherer prometheus.Gatherer
	limiter  *leakybucket.Collector
	l        net.Listener
	srv      *http.Server

	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewJSONRPCServer 注册 Lottery 服务, gatherer 为 nil 时 /metrics 使用 metrics.Registry
func NewJSONRPCServer(cfg *types.RPC, api API, gatherer prometheus.Gatherer) (*JSONRPCServer, error) {
	if cfg == nil || api == nil {
		return nil, types.ErrInvalidParam
	}
	server := rpc.NewServer()
	if err := server.RegisterName("Lottery", &Lottery{api: api}); err != nil {
		return nil, err
	}
	j := &JSONRPCServer{
		cfg:      cfg,
		s:        server,
		gatherer: gatherer,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total number of http requests by path and status code.",
		}, []string{"path", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "Http request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = cfg.RateLimit
		}
		j.limiter = leakybucket.NewCollector(float64(cfg.RateLimit), burst, true)
	}
	return j, nil
}

// Metrics prometheus 指标
func (j *JSONRPCServer) Metrics() []prometheus.Collector {
	return metrics.PrometheusCollectorsFromFields(j)
}

// Handler http 处理入口, 包含 cors, 限流以及请求统计
func (j *JSONRPCServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(j.gatherer))
	mux.HandleFunc("/", j.serveJSONRPC)
	c := cors.New(cors.Options{
		AllowedOrigins: j.cfg.Whitelist,
		AllowedMethods: []string{http.MethodPost, http.MethodGet},
		AllowedHeaders: []string{"Content-Type"},
	})
	return j.instrument(j.limit(c.Handler(mux)))
}

func (j *JSONRPCServer) serveJSONRPC(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	serverCodec := jsonrpc.NewServerCodec(&HTTPConn{in: r.Body, out: w})
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := j.s.ServeRequest(serverCodec); err != nil {
		rlog.Debug("Error while serving JSON request", "err", err)
	}
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (j *JSONRPCServer) limit(next http.Handler) http.Handler {
	if j.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := remoteIP(r)
		if j.limiter.Remaining(ip) <= 0 {
			rlog.Debug("rate limited", "ip", ip)
			http.Error(w, types.ErrRateLimited.Error(), http.StatusTooManyRequests)
			return
		}
		j.limiter.Add(ip, 1)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (j *JSONRPCServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		j.Requests.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
		j.Duration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// Listen 监听 JrpcBindAddr, 返回实际监听的地址
func (j *JSONRPCServer) Listen() (string, error) {
	l, err := net.Listen("tcp", j.cfg.JrpcBindAddr)
	if err != nil {
		return "", err
	}
	j.l = l
	j.srv = &http.Server{Handler: j.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := j.srv.Serve(l); err != nil && err != http.ErrServerClosed {
			rlog.Error("jsonrpc serve", "err", err)
		}
	}()
	rlog.Info("jsonrpc listen", "addr", l.Addr().String())
	return l.Addr().String(), nil
}

// Close 关闭 http 服务
func (j *JSONRPCServer) Close() {
	if j.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := j.srv.Shutdown(ctx); err != nil {
		rlog.Error("jsonrpc close", "err", err)
	}
}
