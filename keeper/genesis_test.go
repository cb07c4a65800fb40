package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ics20-escrow/types"
)

func (suite *KeeperTestSuite) TestGenesis() {
	suite.registerChannel("channel-1")
	suite.registerChannel(channelID)
	suite.seedEscrow("channel-1", "uatom", 10, 25)
	suite.seedEscrow(channelID, "atom", 150, 150)
	suite.keeper.SetParams(suite.ctx, types.NewParams(false))

	genesis := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(genesis.Validate())
	suite.Require().Len(genesis.Channels, 2)
	suite.Require().Len(genesis.Escrows, 2)
	suite.Require().False(genesis.Params.ReceiveEnabled)

	suite.SetupTest()
	suite.keeper.InitGenesis(suite.ctx, *genesis)

	suite.Require().Equal(genesis, suite.keeper.ExportGenesis(suite.ctx))
	suite.requireChannelState(channelID, "atom", 150, 150)
}

func (suite *KeeperTestSuite) TestExportDefaultGenesis() {
	genesis := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().Equal(types.DefaultGenesisState(), genesis)
}

func (suite *KeeperTestSuite) TestInitGenesisEscrow() {
	state := types.ChannelState{Outstanding: sdkmath.NewUint(1), TotalSent: sdkmath.NewUint(2)}
	genesis := types.NewGenesisState(
		types.DefaultParams(),
		[]types.ChannelInfo{types.NewChannelInfo(channelID, types.Endpoint{PortID: types.PortID, ChannelID: "channel-9"}, connectionID)},
		[]types.ChannelEscrow{types.NewChannelEscrow(channelID, "atom", state)},
	)
	suite.Require().NoError(genesis.Validate())

	suite.keeper.InitGenesis(suite.ctx, *genesis)
	suite.requireChannelState(channelID, "atom", 1, 2)
}
