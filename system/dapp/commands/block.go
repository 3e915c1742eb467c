// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	rpctypes "github.com/33cn/lottery/rpc/types"
	"github.com/spf13/cobra"
)

// BlockCmd block command
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Get block header",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GetLastHeaderCmd(),
	)
	return cmd
}

// GetLastHeaderCmd get last header
func GetLastHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Get last block header",
		Run:   lastHeader,
	}
}

func lastHeader(cmd *cobra.Command, args []string) {
	var res rpctypes.Header
	newCtx(cmd, "Lottery.GetLastBlock", &rpctypes.ReqNil{}, &res).Run()
}
