// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/33cn/lottery/account"
	"github.com/33cn/lottery/common"
	"github.com/33cn/lottery/common/address"
	dbm "github.com/33cn/lottery/common/db"
	hostexec "github.com/33cn/lottery/executor"
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/system/random"
	"github.com/33cn/lottery/types"
	pkgerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPrice    = int64(1000000)
	testDuration = int64(10)
	testBalance  = int64(100 * 1e8)
)

var testSubCfg = fmt.Sprintf(`{"ticketPrice":%d,"roundDuration":%d,"ticketLength":3,"randomSource":"block"}`, testPrice, testDuration)

func testAddr(name string) string {
	return address.PubKeyToAddress(common.Sha256([]byte(name))).String()
}

var (
	alice = testAddr("alice")
	bob   = testAddr("bob")
	carol = testAddr("carol")
	dave  = testAddr("dave")
	eve   = testAddr("eve")
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) FetchRandom() ([random.Size]byte, error) {
	args := m.Called()
	return args.Get(0).([random.Size]byte), args.Error(1)
}

// 随机数的前3个字节就是中奖号码
func randomFor(ticket []byte) (r [random.Size]byte) {
	copy(r[:], ticket)
	for i := len(ticket); i < random.Size; i++ {
		r[i] = 0xff
	}
	return r
}

type recordSink struct {
	tickets [][]byte
	froms   []string
	draws   []*pty.ReceiptLotteryDraw
	payouts []*pty.ReceiptLotteryPayout
}

func (s *recordSink) TicketRegistered(ticket []byte, from string) {
	s.tickets = append(s.tickets, ticket)
	s.froms = append(s.froms, from)
}

func (s *recordSink) LotteryDrawn(draw *pty.ReceiptLotteryDraw, payout *pty.ReceiptLotteryPayout) {
	s.draws = append(s.draws, draw)
	s.payouts = append(s.payouts, payout)
}

type mockChain struct {
	header types.Header
	txs    int
}

func (c *mockChain) PendingHeader() *types.Header {
	h := c.header
	return &h
}

func (c *mockChain) AddTx(tx *types.Transaction) {
	c.txs++
}

type testEnv struct {
	db    dbm.DB
	chain *mockChain
	exec  *hostexec.Executor
	src   *mockSource
	sink  *recordSink
	coins *account.DB
}

func newTestEnv(t *testing.T, sub string) *testEnv {
	db, err := dbm.NewGoMemDB("lottery", "", 0)
	require.Nil(t, err)
	env := &testEnv{
		db:    db,
		chain: &mockChain{header: types.Header{Height: 1, BlockTime: 1514533394, ParentHash: common.Sha256([]byte("genesis"))}},
		src:   &mockSource{},
		sink:  &recordSink{},
		coins: account.NewCoinsAccount().SetDB(db),
	}
	Init(pty.LotteryX, nil, []byte(sub),
		WithEventSink(env.sink),
		WithRandomFactory(func(*random.Env) (random.Source, error) { return env.src, nil }))
	for _, addr := range []string{alice, bob, carol, dave, eve} {
		_, err := env.coins.GenesisInit(addr, testBalance)
		require.Nil(t, err)
	}
	env.exec = hostexec.New(nil, db, env.chain)
	return env
}

func (env *testEnv) setHeight(height int64) {
	env.chain.header.Height = height
	env.chain.header.BlockTime = 1514533394 + height
}

func (env *testEnv) register(from string, ticket []byte, amount int64) (*types.ReceiptData, error) {
	tx := pty.CreateRawLotteryRegisterTx(from, ticket, amount)
	tx.Nonce = int64(env.chain.txs)
	return env.exec.ExecTx(tx)
}

func (env *testEnv) balance(addr string) int64 {
	return env.coins.LoadAccount(addr).Balance
}

func (env *testEnv) query(t *testing.T, funcName string, param types.Message) types.Message {
	if param == nil {
		param = &types.ReqNil{}
	}
	msg, err := env.exec.Query(pty.LotteryX, funcName, param)
	require.Nil(t, err)
	return msg
}

func (env *testEnv) info(t *testing.T) *pty.ReplyLotteryInfo {
	return env.query(t, pty.FuncNameGetLotteryInfo, nil).(*pty.ReplyLotteryInfo)
}

func (env *testEnv) participants(t *testing.T, ticket []byte, round int64) []string {
	msg := env.query(t, pty.FuncNameGetParticipants, &pty.ReqLotteryParticipants{Ticket: ticket, Round: round})
	return msg.(*pty.ReplyLotteryParticipants).Addrs
}

func emptySlots() []string {
	return pty.NewTicketSlots().Addrs
}

var (
	ticketA = []byte{1, 2, 3}
	ticketB = []byte{4, 5, 6}
	ticketC = []byte{7, 8, 9}
)

func TestRegisterFillsSlotsInOrder(t *testing.T) {
	env := newTestEnv(t, testSubCfg)
	execaddr := drivers.ExecAddress(pty.LotteryX)
	users := []string{alice, bob, carol, dave, eve, alice, bob, carol}
	for i, u := range users {
		rdata, err := env.register(u, ticketA, testPrice)
		require.Nil(t, err)
		assert.Equal(t, int32(types.ExecOk), rdata.Ty)
		slots := env.participants(t, ticketA, 0)
		assert.Equal(t, users[:i+1], slots[:i+1])
		for _, s := range slots[i+1:] {
			assert.Equal(t, pty.EmptyAddr, s)
		}
	}
	assert.Equal(t, 8*testPrice, env.balance(execaddr))
	assert.Equal(t, 8*testPrice, env.info(t).Jackpot)
	assert.Equal(t, testBalance-2*testPrice, env.balance(alice))

	//第9个购买者失败, 不收款, 也不修改参与者
	_, err := env.register(dave, ticketA, testPrice)
	assert.Equal(t, pty.ErrLotterySoldOut, err)
	assert.Equal(t, testBalance-testPrice, env.balance(dave))
	assert.Equal(t, users, env.participants(t, ticketA, 0))
	assert.Equal(t, 8*testPrice, env.info(t).Jackpot)

	//其他号码不受影响
	_, err = env.register(dave, ticketB, testPrice)
	assert.Nil(t, err)
	assert.Equal(t, []string{dave}, env.participants(t, ticketB, 0)[:1])

	assert.Equal(t, users, env.sink.froms[:8])
	assert.Equal(t, 9, len(env.sink.tickets))
	assert.Equal(t, 9, env.chain.txs)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t, testSubCfg)
	_, err := env.register(alice, ticketA, testPrice-1)
	assert.Equal(t, pty.ErrLotteryTicketPrice, err)
	_, err = env.register(alice, ticketA, testPrice+1)
	assert.Equal(t, pty.ErrLotteryTicketPrice, err)
	_, err = env.register(pty.EmptyAddr, ticketA, testPrice)
	assert.Equal(t, pty.ErrLotteryEmptyAddr, err)
	_, err = env.register(alice, []byte{1, 2}, testPrice)
	assert.Equal(t, pty.ErrLotteryTicketLength, err)
	_, err = env.register(alice, make([]byte, 32), testPrice)
	assert.Equal(t, pty.ErrLotteryTicketLength, err)

	poor := testAddr("poor")
	_, err = env.register(poor, ticketA, testPrice)
	assert.Equal(t, pty.ErrLotteryPayment, pkgerr.Cause(err))

	assert.Equal(t, testBalance, env.balance(alice))
	assert.Equal(t, emptySlots(), env.participants(t, ticketA, 0))
	info := env.info(t)
	assert.Equal(t, int64(0), info.Jackpot)
	assert.Equal(t, int64(0), info.Round)
	assert.Equal(t, 0, len(env.sink.tickets))
	assert.Equal(t, 0, env.chain.txs)
}

func TestDrawWithWinners(t *testing.T) {
	env := newTestEnv(t, testSubCfg)
	execaddr := drivers.ExecAddress(pty.LotteryX)
	env.setHeight(1)
	_, err := env.register(alice, ticketA, testPrice)
	require.Nil(t, err)
	_, err = env.register(bob, ticketB, testPrice)
	require.Nil(t, err)
	_, err = env.register(carol, ticketA, testPrice)
	require.Nil(t, err)
	_, err = env.register(dave, ticketC, testPrice)
	require.Nil(t, err)
	env.src.AssertNotCalled(t, "FetchRandom")

	//还没有到开奖高度
	env.setHeight(10)
	info := env.info(t)
	assert.Equal(t, int64(1), info.LastDrawing)
	assert.Equal(t, int64(11), info.NextDrawing)

	//第5个购买者触发开奖, 奖池包含这一笔
	env.setHeight(11)
	env.src.On("FetchRandom").Return(randomFor(ticketA), nil).Once()
	rdata, err := env.register(eve, ticketB, testPrice)
	require.Nil(t, err)
	env.src.AssertExpectations(t)
	assert.NotNil(t, findLog(rdata, pty.TyLogLotteryPayout))

	per := (5 * testPrice / 8) * (8 / 2)
	assert.Equal(t, int64(2500000), per)
	assert.Equal(t, testBalance-testPrice+per, env.balance(alice))
	assert.Equal(t, testBalance-testPrice+per, env.balance(carol))
	assert.Equal(t, testBalance-testPrice, env.balance(bob))
	assert.Equal(t, int64(0), env.balance(execaddr))

	info = env.info(t)
	assert.Equal(t, int64(1), info.Round)
	assert.Equal(t, int64(0), info.Jackpot)
	assert.Equal(t, 5*testPrice, info.LastJackpot)
	assert.Equal(t, per, info.LastPayout)
	assert.Equal(t, int64(11), info.LastDrawing)
	assert.Equal(t, int64(21), info.NextDrawing)
	assert.Equal(t, ticketA, info.WinnerTicket)
	assert.Equal(t, []string{alice, carol}, info.PreviousWinners[:2])
	assert.Equal(t, 8, len(info.PreviousWinners))

	prev := env.query(t, pty.FuncNameGetPreviousWinners, nil).(*pty.ReplyLotteryParticipants)
	assert.Equal(t, info.PreviousWinners, prev.Addrs)
	assert.Equal(t, int64(1), env.query(t, pty.FuncNameGetRound, nil).(*types.Int64).Data)
	assert.Equal(t, per, env.query(t, pty.FuncNameGetLastPayout, nil).(*types.Int64).Data)

	//新的一轮从空的参与者开始
	assert.Equal(t, emptySlots(), env.participants(t, ticketA, 1))
	env.setHeight(12)
	_, err = env.register(bob, ticketA, testPrice)
	require.Nil(t, err)
	assert.Equal(t, bob, env.participants(t, ticketA, 1)[0])
	assert.Equal(t, []string{alice, carol}, env.participants(t, ticketA, 0)[:2])
	assert.Equal(t, testPrice, env.info(t).Jackpot)

	//通知
	require.Equal(t, 1, len(env.sink.draws))
	assert.Equal(t, ticketA, env.sink.draws[0].WinnerTicket)
	require.NotNil(t, env.sink.payouts[0])
	assert.Equal(t, per, env.sink.payouts[0].Payout)
	assert.Equal(t, []string{alice, carol}, env.sink.payouts[0].Paid)

	//本地记录
	history := env.query(t, pty.FuncNameGetDrawHistory, &pty.ReqLotteryDrawHistory{Count: 10}).(*pty.LotteryDrawRecords)
	require.Equal(t, 1, len(history.Records))
	assert.Equal(t, int64(11), history.Records[0].Height)
	assert.Equal(t, int64(0), history.Records[0].Round)
	assert.Equal(t, per, history.Records[0].Payout)
	assert.Equal(t, []string{alice, carol}, history.Records[0].Winners)
	assert.Equal(t, common.ToHex(rdataTxHash(eve, ticketB, 4)), history.Records[0].TxHash)

	buys := env.query(t, pty.FuncNameGetBuyHistory, &pty.ReqLotteryBuyHistory{Addr: bob, Round: -1}).(*pty.LotteryBuyRecords)
	require.Equal(t, 2, len(buys.Records))
	assert.Equal(t, int64(0), buys.Records[0].Round)
	assert.Equal(t, ticketB, buys.Records[0].Ticket)
	assert.Equal(t, int64(1), buys.Records[1].Round)
	buys = env.query(t, pty.FuncNameGetBuyHistory, &pty.ReqLotteryBuyHistory{Addr: bob, Round: 1}).(*pty.LotteryBuyRecords)
	require.Equal(t, 1, len(buys.Records))
	assert.Equal(t, ticketA, buys.Records[0].Ticket)
	assert.Equal(t, int32(0), buys.Records[0].Slot)
}

func rdataTxHash(from string, ticket []byte, nonce int64) []byte {
	tx := pty.CreateRawLotteryRegisterTx(from, ticket, testPrice)
	tx.Nonce = nonce
	return tx.Hash()
}

func findLog(rdata *types.ReceiptData, ty int32) *types.ReceiptLog {
	for _, l := range rdata.Logs {
		if l.Ty == ty {
			return l
		}
	}
	return nil
}

func TestDrawNoWinner(t *testing.T) {
	env := newTestEnv(t, testSubCfg)
	env.setHeight(1)
	_, err := env.register(alice, ticketA, testPrice)
	require.Nil(t, err)

	env.setHeight(20)
	env.src.On("FetchRandom").Return(randomFor(ticketC), nil).Once()
	rdata, err := env.register(bob, ticketB, testPrice)
	require.Nil(t, err)
	assert.NotNil(t, findLog(rdata, pty.TyLogLotteryDraw))
	assert.Nil(t, findLog(rdata, pty.TyLogLotteryPayout))

	info := env.info(t)
	assert.Equal(t, int64(0), info.Round)
	assert.Equal(t, 2*testPrice, info.Jackpot)
	assert.Equal(t, int64(0), info.LastJackpot)
	assert.Equal(t, int64(20), info.LastDrawing)
	assert.Equal(t, ticketC, info.WinnerTicket)
	assert.Equal(t, emptySlots(), info.PreviousWinners)
	require.Equal(t, 1, len(env.sink.draws))
	assert.Nil(t, env.sink.payouts[0])

	//下一次开奖要等 roundDuration 个区块, 奖池继续累积
	env.setHeight(25)
	_, err = env.register(carol, ticketA, testPrice)
	require.Nil(t, err)
	env.setHeight(30)
	env.src.On("FetchRandom").Return(randomFor(ticketA), nil).Once()
	_, err = env.register(dave, ticketC, testPrice)
	require.Nil(t, err)
	env.src.AssertExpectations(t)

	per := (4 * testPrice / 8) * (8 / 2)
	assert.Equal(t, testBalance-testPrice+per, env.balance(alice))
	assert.Equal(t, testBalance-testPrice+per, env.balance(carol))
	info = env.info(t)
	assert.Equal(t, int64(1), info.Round)
	assert.Equal(t, 4*testPrice, info.LastJackpot)
}

func TestDrawRandomFailureAborts(t *testing.T) {
	env := newTestEnv(t, testSubCfg)
	env.setHeight(1)
	_, err := env.register(alice, ticketA, testPrice)
	require.Nil(t, err)

	env.setHeight(11)
	env.src.On("FetchRandom").Return([random.Size]byte{}, random.ErrSourceUnavailable).Once()
	_, err = env.register(bob, ticketA, testPrice)
	assert.Equal(t, pty.ErrLotteryRandom, pkgerr.Cause(err))
	env.src.AssertExpectations(t)

	//购买也被回滚
	assert.Equal(t, testBalance, env.balance(bob))
	assert.Equal(t, []string{alice, pty.EmptyAddr}, env.participants(t, ticketA, 0)[:2])
	info := env.info(t)
	assert.Equal(t, testPrice, info.Jackpot)
	assert.Equal(t, int64(1), info.LastDrawing)
	assert.Equal(t, 1, len(env.sink.tickets))

	//随机数恢复之后可以继续
	env.src.On("FetchRandom").Return(randomFor(ticketA), nil).Once()
	_, err = env.register(bob, ticketA, testPrice)
	require.Nil(t, err)
	assert.Equal(t, int64(1), env.info(t).Round)
	assert.Equal(t, testBalance-testPrice+testPrice, env.balance(bob))
}

func TestRandomFactoryFailure(t *testing.T) {
	env := newTestEnv(t, testSubCfg)
	Init(pty.LotteryX, nil, []byte(testSubCfg), WithRandomFactory(func(*random.Env) (random.Source, error) {
		return nil, random.ErrSourceNotFound
	}))
	env.setHeight(1)
	_, err := env.register(alice, ticketA, testPrice)
	require.Nil(t, err)
	env.setHeight(11)
	_, err = env.register(bob, ticketA, testPrice)
	assert.Equal(t, pty.ErrLotteryRandom, pkgerr.Cause(err))
	assert.Equal(t, testBalance, env.balance(bob))
}

func TestBlockRandomSource(t *testing.T) {
	db, err := dbm.NewGoMemDB("lottery", "", 0)
	require.Nil(t, err)
	chain := &mockChain{header: types.Header{Height: 5, BlockTime: 100, ParentHash: []byte("parent")}}
	Init(pty.LotteryX, nil, []byte(`{"ticketPrice":10,"roundDuration":1,"ticketLength":32}`))
	coins := account.NewCoinsAccount().SetDB(db)
	_, err = coins.GenesisInit(alice, testBalance)
	require.Nil(t, err)
	exec := hostexec.New(nil, db, chain)

	_, err = exec.ExecTx(pty.CreateRawLotteryRegisterTx(alice, make([]byte, 32), 10))
	require.Nil(t, err)
	chain.header.Height = 6
	tx := pty.CreateRawLotteryRegisterTx(alice, make([]byte, 32), 10)
	tx.Nonce = 1
	_, err = exec.ExecTx(tx)
	require.Nil(t, err)

	want, err := random.NewBlockSource(&random.Env{Height: 6, BlockTime: 100, ParentHash: []byte("parent"), Seed: tx.Hash()}).FetchRandom()
	require.Nil(t, err)
	msg, err := exec.Query(pty.LotteryX, pty.FuncNameGetWinnerTicket, &types.ReqNil{})
	require.Nil(t, err)
	ticket := msg.(*pty.ReplyLotteryTicket).Ticket
	assert.Equal(t, 32, len(ticket))
	assert.Equal(t, want[:3], ticket[:3])
	assert.Equal(t, make([]byte, 29), ticket[3:])
}

func TestGenesis(t *testing.T) {
	env := newTestEnv(t, testSubCfg)
	_, err := env.exec.Genesis(eve, testBalance)
	require.Nil(t, err)
	info := env.info(t)
	assert.Equal(t, int64(0), info.LastDrawing)
	assert.Equal(t, int64(testDuration), info.NextDrawing)
	assert.Equal(t, make([]byte, 3), info.WinnerTicket)
	assert.Equal(t, 2*testBalance, env.balance(eve))

	_, err = env.exec.Genesis(eve, testBalance)
	assert.Equal(t, types.ErrGenesisExist, err)

	//创世之后第一个达到开奖高度的购买触发开奖
	env.setHeight(10)
	env.src.On("FetchRandom").Return(randomFor(ticketA), nil).Once()
	_, err = env.register(alice, ticketA, testPrice)
	require.Nil(t, err)
	env.src.AssertExpectations(t)
	info = env.info(t)
	assert.Equal(t, int64(1), info.Round)
	assert.Equal(t, testPrice, info.LastPayout)
}

func TestQueryDefaults(t *testing.T) {
	env := newTestEnv(t, testSubCfg)
	assert.Equal(t, emptySlots(), env.participants(t, ticketA, 0))
	assert.Equal(t, emptySlots(), env.participants(t, ticketA, 100))
	prev := env.query(t, pty.FuncNameGetPreviousWinners, nil).(*pty.ReplyLotteryParticipants)
	assert.Equal(t, emptySlots(), prev.Addrs)
	assert.Equal(t, make([]byte, 3), env.query(t, pty.FuncNameGetWinnerTicket, nil).(*pty.ReplyLotteryTicket).Ticket)
	for _, name := range []string{pty.FuncNameGetJackpot, pty.FuncNameGetLastJackpot, pty.FuncNameGetLastDrawing, pty.FuncNameGetLastPayout, pty.FuncNameGetRound} {
		assert.Equal(t, int64(0), env.query(t, name, nil).(*types.Int64).Data, name)
	}
	assert.Equal(t, testDuration, env.query(t, pty.FuncNameGetNextDrawing, nil).(*types.Int64).Data)
	info := env.info(t)
	assert.Equal(t, testPrice, info.TicketPrice)
	assert.Equal(t, int32(3), info.TicketLength)

	history := env.query(t, pty.FuncNameGetDrawHistory, &pty.ReqLotteryDrawHistory{}).(*pty.LotteryDrawRecords)
	assert.Equal(t, 0, len(history.Records))

	_, err := env.exec.Query(pty.LotteryX, pty.FuncNameGetBuyHistory, &pty.ReqLotteryBuyHistory{})
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = env.exec.Query(pty.LotteryX, pty.FuncNameGetParticipants, &pty.ReqLotteryParticipants{Round: -1})
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = env.exec.Query(pty.LotteryX, "GetNothing", &types.ReqNil{})
	assert.Equal(t, types.ErrActionNotSupport, err)
}

func TestBuyHistoryAddrPrefix(t *testing.T) {
	env := newTestEnv(t, testSubCfg)
	short, long := "alice", "alice-x"
	for _, addr := range []string{short, long} {
		_, err := env.coins.GenesisInit(addr, testBalance)
		require.Nil(t, err)
	}
	_, err := env.register(short, ticketA, testPrice)
	require.Nil(t, err)
	_, err = env.register(long, ticketB, testPrice)
	require.Nil(t, err)

	buys := env.query(t, pty.FuncNameGetBuyHistory, &pty.ReqLotteryBuyHistory{Addr: short, Round: -1}).(*pty.LotteryBuyRecords)
	require.Equal(t, 1, len(buys.Records))
	assert.Equal(t, short, buys.Records[0].Addr)
	assert.Equal(t, ticketA, buys.Records[0].Ticket)
	buys = env.query(t, pty.FuncNameGetBuyHistory, &pty.ReqLotteryBuyHistory{Addr: short, Round: 0}).(*pty.LotteryBuyRecords)
	require.Equal(t, 1, len(buys.Records))
	buys = env.query(t, pty.FuncNameGetBuyHistory, &pty.ReqLotteryBuyHistory{Addr: long, Round: -1}).(*pty.LotteryBuyRecords)
	require.Equal(t, 1, len(buys.Records))
	assert.Equal(t, ticketB, buys.Records[0].Ticket)
}

func TestDrawHistoryOrder(t *testing.T) {
	env := newTestEnv(t, testSubCfg)
	env.src.On("FetchRandom").Return(randomFor(ticketC), nil)
	env.setHeight(1)
	_, err := env.register(alice, ticketA, testPrice)
	require.Nil(t, err)
	for _, h := range []int64{11, 21, 31} {
		env.setHeight(h)
		_, err := env.register(alice, ticketA, testPrice)
		require.Nil(t, err)
	}
	history := env.query(t, pty.FuncNameGetDrawHistory, &pty.ReqLotteryDrawHistory{Count: 2}).(*pty.LotteryDrawRecords)
	require.Equal(t, 2, len(history.Records))
	assert.Equal(t, int64(31), history.Records[0].Height)
	assert.Equal(t, int64(21), history.Records[1].Height)
	history = env.query(t, pty.FuncNameGetDrawHistory, &pty.ReqLotteryDrawHistory{}).(*pty.LotteryDrawRecords)
	assert.Equal(t, 3, len(history.Records))
	assert.Equal(t, 4*testPrice, env.info(t).Jackpot)
}

func newTestAction(t *testing.T, jackpot int64) (*Action, dbm.DB) {
	db, err := dbm.NewGoMemDB("lottery", "", 0)
	require.Nil(t, err)
	conf := pty.DefaultConfig()
	conf.TicketLength = 3
	action := &Action{
		coinsAccount: account.NewCoinsAccount().SetDB(db),
		db:           db,
		execaddr:     drivers.ExecAddress(pty.LotteryX),
		conf:         conf,
		height:       100,
	}
	if jackpot > 0 {
		_, err = action.coinsAccount.GenesisInit(action.execaddr, jackpot)
		require.Nil(t, err)
	}
	return action, db
}

func TestTransferToWinnersSplit(t *testing.T) {
	const pool = int64(5000000)
	cases := []struct {
		n   int
		per int64
	}{
		{1, 625000 * 8},
		{2, 625000 * 4},
		{3, 625000 * 2},
		{4, 625000 * 2},
		{5, 625000 * 1},
		{6, 625000 * 1},
		{7, 625000 * 1},
		{8, 625000 * 1},
	}
	for _, c := range cases {
		action, _ := newTestAction(t, pool)
		state := &pty.LotteryState{Round: 3, Jackpot: pool}
		slots := pty.NewTicketSlots()
		var winners []string
		for i := 0; i < c.n; i++ {
			addr := testAddr(fmt.Sprintf("winner%d", i))
			slots.Addrs[i] = addr
			winners = append(winners, addr)
		}
		receipt := action.transferToWinners(state, slots)
		require.NotNil(t, receipt)
		assert.Equal(t, c.per, state.LastPayout, "n=%d", c.n)
		for _, addr := range winners {
			assert.Equal(t, c.per, action.coinsAccount.LoadAccount(addr).Balance)
		}
		assert.Equal(t, pool-c.per*int64(c.n), action.coinsAccount.LoadAccount(action.execaddr).Balance)
		assert.Equal(t, int64(4), state.Round)
		assert.Equal(t, pool, state.LastJackpot)
		assert.Equal(t, int64(0), state.Jackpot)
	}
}

func TestTransferToWinnersSkipsFailure(t *testing.T) {
	action, _ := newTestAction(t, 8000)
	state := &pty.LotteryState{Jackpot: 8000}
	slots := pty.NewTicketSlots()
	slots.Addrs[0] = alice
	//转给执行器自己会失败
	slots.Addrs[1] = action.execaddr
	slots.Addrs[2] = bob
	receipt := action.transferToWinners(state, slots)
	require.NotNil(t, receipt)
	per := (int64(8000) / 8) * (8 / 3)
	assert.Equal(t, per, action.coinsAccount.LoadAccount(alice).Balance)
	assert.Equal(t, per, action.coinsAccount.LoadAccount(bob).Balance)
	assert.Equal(t, int64(8000)-2*per, action.coinsAccount.LoadAccount(action.execaddr).Balance)

	var payout pty.ReceiptLotteryPayout
	last := receipt.Logs[len(receipt.Logs)-1]
	require.Equal(t, int32(pty.TyLogLotteryPayout), last.Ty)
	require.Nil(t, types.Decode(last.Log, &payout))
	assert.Equal(t, []string{alice, action.execaddr, bob}, payout.Winners)
	assert.Equal(t, []string{alice, bob}, payout.Paid)
	assert.Equal(t, int64(1), state.Round)
}

func TestTransferToWinnersNoop(t *testing.T) {
	action, _ := newTestAction(t, 0)
	state := &pty.LotteryState{Round: 2}
	slots := pty.NewTicketSlots()
	slots.Addrs[0] = alice
	assert.Nil(t, action.transferToWinners(state, slots))
	assert.Equal(t, int64(2), state.Round)

	state.Jackpot = 100
	assert.Nil(t, action.transferToWinners(state, pty.NewTicketSlots()))
	assert.Equal(t, int64(2), state.Round)
	assert.Equal(t, int64(100), state.Jackpot)
}

func TestDrawDue(t *testing.T) {
	action, _ := newTestAction(t, 0)
	action.conf.RoundDuration = 10
	state := &pty.LotteryState{LastDrawing: 90}
	assert.True(t, action.drawDue(state))
	state.LastDrawing = 91
	assert.False(t, action.drawDue(state))
	action.height = 0
	state.LastDrawing = -100
	assert.False(t, action.drawDue(state))
}

func TestNewConfig(t *testing.T) {
	conf, err := NewConfig(nil)
	require.Nil(t, err)
	assert.Equal(t, pty.DefaultConfig(), conf)

	conf, err = NewConfig([]byte(`{"ticketLength":3}`))
	require.Nil(t, err)
	assert.Equal(t, int32(3), conf.TicketLength)
	assert.Equal(t, pty.DefaultTicketPrice, conf.TicketPrice)

	for _, bad := range []string{`{"ticketLength":2}`, `{"ticketLength":33}`, `{"ticketPrice":-1}`, `{"roundDuration":-5}`, `{"randomSource":"oracle"}`} {
		_, err = NewConfig([]byte(bad))
		assert.True(t, errors.Is(err, pty.ErrLotteryConfig), bad)
	}
	_, err = NewConfig([]byte(`{`))
	assert.NotNil(t, err)

	//外部扩展注册之后才能配置
	_, err = NewConfig([]byte(`{"randomSource":"unregistered"}`))
	assert.True(t, errors.Is(err, pty.ErrLotteryConfig))
	if !random.Registered("lotteryext") {
		random.RegisterExtension("lotteryext", func() (uint32, []byte) { return random.StatusUnavailable, nil })
	}
	conf, err = NewConfig([]byte(`{"randomSource":"lotteryext"}`))
	require.Nil(t, err)
	assert.Equal(t, "lotteryext", conf.RandomSource)
	assert.Panics(t, func() { Init(pty.LotteryX, nil, []byte(`{"ticketLength":2}`)) })
	assert.Panics(t, func() { Init("lottery2", nil, nil) })
}

func TestCommittedIgnoresFailedReceipt(t *testing.T) {
	sink := &recordSink{}
	Init(pty.LotteryX, nil, nil, WithEventSink(sink))
	l := newLottery().(*Lottery)
	reg := &pty.ReceiptLotteryRegister{Ticket: ticketA, Addr: alice}
	logs := []*types.ReceiptLog{{Ty: pty.TyLogLotteryRegister, Log: types.Encode(reg)}}
	l.Committed(&types.Transaction{}, &types.ReceiptData{Ty: types.ExecErr, Logs: logs})
	assert.Equal(t, 0, len(sink.tickets))
	l.Committed(&types.Transaction{}, &types.ReceiptData{Ty: types.ExecOk, Logs: logs})
	assert.Equal(t, []string{alice}, sink.froms)
	assert.Equal(t, 0, len(sink.draws))

	other := &recordSink{}
	SetEventSink(MultiSink{sink, other})
	l = newLottery().(*Lottery)
	draw := &pty.ReceiptLotteryDraw{Round: 1}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogLotteryDraw, Log: types.Encode(draw)})
	l.Committed(&types.Transaction{}, &types.ReceiptData{Ty: types.ExecOk, Logs: logs})
	assert.Equal(t, 2, len(sink.froms))
	assert.Equal(t, 1, len(other.froms))
	require.Equal(t, 1, len(other.draws))
	assert.Equal(t, int64(1), other.draws[0].Round)
	assert.Nil(t, other.payouts[0])
}
