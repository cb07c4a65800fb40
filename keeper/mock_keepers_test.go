package keeper_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/cosmos/ics20-escrow/types"
)

var errMockFailure = errors.New("mock failure")

type mockAccountKeeper struct{}

func (mockAccountKeeper) GetModuleAddress(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress(name)
}

// mockBankKeeper keeps balances in memory. Writes are not branched by CacheContext.
type mockBankKeeper struct {
	balances map[string]sdk.Coins
	blocked  map[string]bool
	err      error
}

func newMockBankKeeper() *mockBankKeeper {
	return &mockBankKeeper{
		balances: make(map[string]sdk.Coins),
		blocked:  make(map[string]bool),
	}
}

func (b *mockBankKeeper) fund(addr sdk.AccAddress, coins ...sdk.Coin) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(coins...)
}

func (b *mockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if b.err != nil {
		return b.err
	}

	moduleAddr := authtypes.NewModuleAddress(senderModule).String()
	remaining, negative := b.balances[moduleAddr].SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient module balance: %s < %s", b.balances[moduleAddr], amt)
	}

	b.balances[moduleAddr] = remaining
	b.balances[recipientAddr.String()] = b.balances[recipientAddr.String()].Add(amt...)
	return nil
}

func (b *mockBankKeeper) BlockedAddr(addr sdk.AccAddress) bool {
	return b.blocked[addr.String()]
}

func (b *mockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

type contractCall struct {
	contract sdk.AccAddress
	caller   sdk.AccAddress
	msg      types.Cw20ExecuteMsg
}

type mockContractKeeper struct {
	calls []contractCall
	err   error
}

func (c *mockContractKeeper) Execute(_ context.Context, contractAddress, caller sdk.AccAddress, msg []byte, _ sdk.Coins) ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}

	var executeMsg types.Cw20ExecuteMsg
	if err := json.Unmarshal(msg, &executeMsg); err != nil {
		return nil, err
	}

	c.calls = append(c.calls, contractCall{contract: contractAddress, caller: caller, msg: executeMsg})
	return nil, nil
}

type mockChannelKeeper struct {
	channels map[string]channeltypes.Channel
}

func newMockChannelKeeper() *mockChannelKeeper {
	return &mockChannelKeeper{channels: make(map[string]channeltypes.Channel)}
}

func (c *mockChannelKeeper) GetChannel(_ sdk.Context, srcPort, srcChan string) (channeltypes.Channel, bool) {
	channel, found := c.channels[srcPort+"/"+srcChan]
	return channel, found
}

func uint64Coin(denom string, amount uint64) sdk.Coin {
	return sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount))
}
