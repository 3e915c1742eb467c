// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
)

// Config 节点配置
type Config struct {
	Title     string     `json:"title,omitempty"`
	Log       *Log       `json:"log,omitempty"`
	Store     *Store     `json:"store,omitempty"`
	Consensus *Consensus `json:"consensus,omitempty"`
	RPC       *RPC       `json:"rpc,omitempty"`
	Metrics   *Metrics   `json:"metrics,omitempty"`
	Exec      *Exec      `json:"exec,omitempty"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `json:"loglevel,omitempty"`
	LogConsoleLevel string `json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `json:"maxAge,omitempty"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `json:"callerFunction,omitempty"`
}

// Store 数据库配置
type Store struct {
	Name    string `json:"name,omitempty"`
	Driver  string `json:"driver,omitempty"`
	DbPath  string `json:"dbPath,omitempty"`
	DbCache int32  `json:"dbCache,omitempty"`
}

// Consensus 出块配置
type Consensus struct {
	Name             string `json:"name,omitempty"`
	Genesis          string `json:"genesis,omitempty"`
	GenesisAmount    int64  `json:"genesisAmount,omitempty"`
	GenesisBlockTime int64  `json:"genesisBlockTime,omitempty"`
	BlockIntervalMs  int64  `json:"blockIntervalMs,omitempty"`
}

// RPC 配置
type RPC struct {
	JrpcBindAddr string   `json:"jrpcBindAddr,omitempty"`
	Whitelist    []string `json:"whitelist,omitempty"`
	// 每个IP每秒允许的请求数, 0 表示不限制
	RateLimit int64 `json:"rateLimit,omitempty"`
	RateBurst int64 `json:"rateBurst,omitempty"`
}

// Metrics 配置
type Metrics struct {
	EnableMetrics bool   `json:"enableMetrics,omitempty"`
	DataEmitMode  string `json:"dataEmitMode,omitempty"`
	// 以毫秒为单位
	Duration int64 `json:"duration,omitempty"`
}

// Exec 执行器配置
type Exec struct {
	EnableStat bool `json:"enableStat,omitempty"`
}

// ConfigSubModule 子模块配置, 以json格式保存, 由各模块自己解析
type ConfigSubModule struct {
	Exec      map[string][]byte
	Consensus map[string][]byte
}

// subModule 子模块结构体
type subModule struct {
	Exec      map[string]interface{}
	Consensus map[string]interface{}
}

// InitCfg 初始化配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return InitCfgString(string(data))
}

// InitCfgString 初始化配置, 用户配置未给出的项使用默认配置
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	merged, err := mergeCfgString(cfgstring, defaultCfgString)
	if err != nil {
		return nil, nil, err
	}
	var cfg Config
	if _, err := tml.Decode(merged, &cfg); err != nil {
		return nil, nil, err
	}
	var sub subModule
	if _, err := tml.Decode(merged, &sub); err != nil {
		return nil, nil, err
	}
	return &cfg, &ConfigSubModule{
		Exec:      parseItem(sub.Exec),
		Consensus: parseItem(sub.Consensus),
	}, nil
}

// GetDefaultCfgstring 获取默认配置
func GetDefaultCfgstring() string {
	return defaultCfgString
}

func mergeCfgString(cfgstring, cfgdefault string) (string, error) {
	//1. defconfig
	def := make(map[string]interface{})
	if _, err := tml.Decode(cfgdefault, &def); err != nil {
		return "", err
	}
	//2. userconfig
	conf := make(map[string]interface{})
	if _, err := tml.Decode(cfgstring, &conf); err != nil {
		return "", err
	}
	MergeConfig(conf, def)
	buf := new(bytes.Buffer)
	if err := tml.NewEncoder(buf).Encode(conf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MergeConfig 将默认配置中存在而用户配置中不存在的项合并到用户配置
func MergeConfig(conf map[string]interface{}, def map[string]interface{}) {
	for key, defvalue := range def {
		value, ok := conf[key]
		if !ok {
			conf[key] = defvalue
			continue
		}
		sub, ok1 := value.(map[string]interface{})
		defsub, ok2 := defvalue.(map[string]interface{})
		if ok1 && ok2 {
			MergeConfig(sub, defsub)
		}
	}
}

func parseItem(data map[string]interface{}) map[string][]byte {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig
	}
	for key := range data {
		if key == "sub" {
			subcfg, ok := data[key].(map[string]interface{})
			if !ok {
				continue
			}
			for k := range subcfg {
				subconfig[k], _ = json.Marshal(subcfg[k])
			}
		}
	}
	return subconfig
}
