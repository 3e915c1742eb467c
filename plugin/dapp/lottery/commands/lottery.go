// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands lottery 命令行
package commands

import (
	"fmt"

	"github.com/33cn/lottery/rpc/jsonclient"
	rpctypes "github.com/33cn/lottery/rpc/types"
	"github.com/33cn/lottery/types"
	"github.com/spf13/cobra"
)

// LotteryInfoResult 金额格式化之后的彩票信息
type LotteryInfoResult struct {
	Round           int64    `json:"round"`
	Jackpot         string   `json:"jackpot"`
	LastJackpot     string   `json:"lastJackpot"`
	LastDrawing     int64    `json:"lastDrawing"`
	NextDrawing     int64    `json:"nextDrawing"`
	WinnerTicket    string   `json:"winnerTicket"`
	LastPayout      string   `json:"lastPayout"`
	PreviousWinners []string `json:"previousWinners"`
	TicketPrice     string   `json:"ticketPrice"`
	RoundDuration   int64    `json:"roundDuration"`
	TicketLength    int32    `json:"ticketLength"`
}

// LotteryCmd lottery command
func LotteryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lottery",
		Short: "Lottery management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		RegisterCmd(),
		InfoCmd(),
		ParticipantsCmd(),
		PreviousWinnersCmd(),
		DrawHistoryCmd(),
		BuyHistoryCmd(),
	)
	return cmd
}

func newCtx(cmd *cobra.Command, method string, params, res interface{}) *jsonclient.RPCCtx {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method, params, res)
	ctx.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	return ctx
}

// RegisterCmd 购买号码
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Buy a lottery ticket",
		Run:   register,
	}
	cmd.Flags().StringP("from", "f", "", "buyer address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().StringP("ticket", "t", "", "ticket in hex, e.g. 0x010203")
	cmd.MarkFlagRequired("ticket")
	cmd.Flags().StringP("amount", "a", "", "paid amount in coins, must equal the ticket price")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func register(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	ticket, _ := cmd.Flags().GetString("ticket")
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := types.ParseAmount(amountStr, types.Coin)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	params := &rpctypes.ReqRegister{From: from, Ticket: ticket, Amount: amount}
	var res rpctypes.ReplyTx
	newCtx(cmd, "Lottery.Register", params, &res).Run()
}

// InfoCmd 当前轮次的信息
func InfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show lottery state",
		Run:   info,
	}
}

func info(cmd *cobra.Command, args []string) {
	var res rpctypes.LotteryInfo
	ctx := newCtx(cmd, "Lottery.GetLotteryInfo", &rpctypes.ReqNil{}, &res)
	ctx.SetResultCb(parseLotteryInfo)
	ctx.Run()
}

func parseLotteryInfo(arg interface{}) (interface{}, error) {
	res := arg.(*rpctypes.LotteryInfo)
	return &LotteryInfoResult{
		Round:           res.Round,
		Jackpot:         types.FormatAmount(res.Jackpot, types.Coin),
		LastJackpot:     types.FormatAmount(res.LastJackpot, types.Coin),
		LastDrawing:     res.LastDrawing,
		NextDrawing:     res.NextDrawing,
		WinnerTicket:    res.WinnerTicket,
		LastPayout:      types.FormatAmount(res.LastPayout, types.Coin),
		PreviousWinners: res.PreviousWinners,
		TicketPrice:     types.FormatAmount(res.TicketPrice, types.Coin),
		RoundDuration:   res.RoundDuration,
		TicketLength:    res.TicketLength,
	}, nil
}

// ParticipantsCmd 号码的参与者
func ParticipantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "participants",
		Short: "Show participants of a ticket in a round",
		Run:   participants,
	}
	cmd.Flags().StringP("ticket", "t", "", "ticket in hex")
	cmd.MarkFlagRequired("ticket")
	cmd.Flags().Int64P("round", "r", 0, "round")
	return cmd
}

func participants(cmd *cobra.Command, args []string) {
	ticket, _ := cmd.Flags().GetString("ticket")
	round, _ := cmd.Flags().GetInt64("round")
	var res rpctypes.ReplyAddrs
	newCtx(cmd, "Lottery.GetParticipants", &rpctypes.ReqParticipants{Ticket: ticket, Round: round}, &res).Run()
}

// PreviousWinnersCmd 上一轮中奖者
func PreviousWinnersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "previous",
		Short: "Show winners of the previous round",
		Run:   previousWinners,
	}
}

func previousWinners(cmd *cobra.Command, args []string) {
	var res rpctypes.ReplyAddrs
	newCtx(cmd, "Lottery.GetPreviousWinners", &rpctypes.ReqNil{}, &res).Run()
}

// DrawHistoryCmd 开奖记录
func DrawHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent draws",
		Run:   drawHistory,
	}
	cmd.Flags().Int32P("count", "c", 10, "number of draws")
	return cmd
}

func drawHistory(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt32("count")
	var res rpctypes.DrawRecords
	newCtx(cmd, "Lottery.GetDrawHistory", &rpctypes.ReqCount{Count: count}, &res).Run()
}

// BuyHistoryCmd 购买记录
func BuyHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buys",
		Short: "Show tickets bought by an address in a round",
		Run:   buyHistory,
	}
	cmd.Flags().StringP("addr", "a", "", "buyer address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int64P("round", "r", 0, "round")
	return cmd
}

func buyHistory(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	round, _ := cmd.Flags().GetInt64("round")
	var res rpctypes.BuyRecords
	newCtx(cmd, "Lottery.GetBuyHistory", &rpctypes.ReqBuyHistory{Addr: addr, Round: round}, &res).Run()
}
