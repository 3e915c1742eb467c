// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统命令行: 账户和区块
package commands

import (
	"fmt"

	"github.com/33cn/lottery/rpc/jsonclient"
	rpctypes "github.com/33cn/lottery/rpc/types"
	"github.com/33cn/lottery/types"
	"github.com/spf13/cobra"
)

// AccountResult 金额格式化之后的账户
type AccountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
}

func newCtx(cmd *cobra.Command, method string, params, res interface{}) *jsonclient.RPCCtx {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method, params, res)
	ctx.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	return ctx
}

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GetBalanceCmd(),
		TransferCmd(),
	)
	return cmd
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	var res rpctypes.Account
	ctx := newCtx(cmd, "Lottery.GetBalance", &rpctypes.ReqAddr{Addr: addr}, &res)
	ctx.SetResultCb(parseBalance)
	ctx.Run()
}

func parseBalance(arg interface{}) (interface{}, error) {
	res := arg.(*rpctypes.Account)
	return &AccountResult{Addr: res.Addr, Balance: types.FormatAmount(res.Balance, types.Coin)}, nil
}

// TransferCmd 转账
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins between addresses",
		Run:   transfer,
	}
	cmd.Flags().StringP("from", "f", "", "sender address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().StringP("to", "t", "", "receiver address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	note, _ := cmd.Flags().GetString("note")
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := types.ParseAmount(amountStr, types.Coin)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	params := &rpctypes.ReqTransfer{From: from, To: to, Amount: amount, Note: note}
	var res rpctypes.ReplyTx
	newCtx(cmd, "Lottery.Transfer", params, &res).Run()
}
