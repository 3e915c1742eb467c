// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 命令行入口: node 子命令运行本地节点, 其他子命令通过 json rpc 访问节点
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	clog "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/pluginmgr"
	"github.com/33cn/lottery/system/dapp/commands"
	"github.com/33cn/lottery/types"
	"github.com/spf13/cobra"
)

// NewRootCmd 创建根命令, 插件的命令在这里加入
func NewRootCmd(rpcAddr string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lottery",
		Short: "lottery node and client tools",
	}
	rootCmd.PersistentFlags().String("rpc_laddr", rpcAddr, "http url")
	rootCmd.AddCommand(
		NodeCmd(),
		commands.AccountCmd(),
		commands.BlockCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
	return rootCmd
}

// NodeCmd 运行本地节点
func NodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Run a lottery node",
		RunE:  runNode,
	}
	cmd.Flags().StringP("conf", "f", "", "config file, empty uses the built-in default")
	cmd.Flags().String("datadir", "", "override store dbPath")
	return cmd
}

func loadConfig(path string) (*types.Config, *types.ConfigSubModule, error) {
	if path == "" {
		return types.InitCfgString("")
	}
	return types.InitCfg(path)
}

func runNode(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("conf")
	datadir, _ := cmd.Flags().GetString("datadir")
	cfg, sub, err := loadConfig(path)
	if err != nil {
		return err
	}
	if datadir != "" {
		cfg.Store.DbPath = datadir
	}
	clog.SetFileLog(cfg.Log)
	nlog.Info("config", "title", cfg.Title, "store", cfg.Store.Driver, "consensus", cfg.Consensus.Name)

	node, err := NewNode(cfg, sub)
	if err != nil {
		return err
	}
	defer node.Close()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := node.Start(ctx); err != nil {
		return err
	}
	nlog.Info("node started", "rpc", node.RPCAddr)
	<-ctx.Done()
	nlog.Info("node stopping")
	return nil
}

// Run 执行命令行
func Run(rpcAddr string) {
	clog.SetLogLevel("error")
	if err := NewRootCmd(rpcAddr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
