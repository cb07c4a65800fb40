package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ics20-escrow/keeper"
	"github.com/cosmos/ics20-escrow/types"
)

func (suite *KeeperTestSuite) TestEscrowLedgerInvariant() {
	testCases := []struct {
		name      string
		malleate  func()
		expBroken bool
	}{
		{
			"success: empty ledger",
			func() {},
			false,
		},
		{
			"success: consistent ledger",
			func() {
				suite.registerChannel(channelID)
				suite.seedEscrow(channelID, "atom", 50, 150)
			},
			false,
		},
		{
			"failure: entry for unregistered channel",
			func() {
				suite.seedEscrow("channel-4", "atom", 1, 1)
			},
			true,
		},
		{
			"failure: outstanding exceeds total sent",
			func() {
				suite.registerChannel(channelID)
				suite.Require().NoError(suite.keeper.SetChannelState(suite.ctx, channelID, "atom", types.ChannelState{
					Outstanding: sdkmath.NewUint(2),
					TotalSent:   sdkmath.NewUint(1),
				}))
			},
			true,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			tc.malleate()

			k := suite.keeper
			msg, broken := keeper.EscrowLedgerInvariant(&k)(suite.ctx)
			suite.Require().Equal(tc.expBroken, broken, msg)
		})
	}
}

func (suite *KeeperTestSuite) TestNativeEscrowBalanceInvariant() {
	suite.registerChannel(channelID)
	suite.registerChannel("channel-4")
	suite.seedEscrow(channelID, "atom", 50, 150)
	suite.seedEscrow("channel-4", "atom", 20, 20)

	k := suite.keeper
	_, broken := keeper.AllInvariants(&k)(suite.ctx)
	suite.Require().False(broken)

	// a ledger increment without matching escrow breaks the invariant
	suite.Require().NoError(suite.keeper.SetChannelState(suite.ctx, "channel-4", "atom", types.ChannelState{
		Outstanding: sdkmath.NewUint(21),
		TotalSent:   sdkmath.NewUint(21),
	}))

	msg, broken := keeper.NativeEscrowBalanceInvariant(&k)(suite.ctx)
	suite.Require().True(broken, msg)
}
