package keeper_test

import (
	"github.com/cosmos/ics20-escrow/types"
)

func (suite *KeeperTestSuite) TestConnectChannel() {
	info := types.NewChannelInfo(channelID, types.Endpoint{PortID: types.PortID, ChannelID: "channel-9"}, connectionID)

	suite.Require().False(suite.keeper.HasChannel(suite.ctx, channelID))
	suite.Require().NoError(suite.keeper.ConnectChannel(suite.ctx, info))
	suite.Require().True(suite.keeper.HasChannel(suite.ctx, channelID))

	stored, found := suite.keeper.GetChannelInfo(suite.ctx, channelID)
	suite.Require().True(found)
	suite.Require().Equal(info, stored)

	// registry entries are immutable
	other := types.NewChannelInfo(channelID, types.Endpoint{PortID: types.PortID, ChannelID: "channel-10"}, connectionID)
	suite.Require().ErrorIs(suite.keeper.ConnectChannel(suite.ctx, other), types.ErrChannelExists)

	stored, _ = suite.keeper.GetChannelInfo(suite.ctx, channelID)
	suite.Require().Equal(info, stored)

	invalid := types.NewChannelInfo("ch", types.Endpoint{PortID: types.PortID, ChannelID: "channel-9"}, connectionID)
	suite.Require().Error(suite.keeper.ConnectChannel(suite.ctx, invalid))

	_, found = suite.keeper.GetChannelInfo(suite.ctx, "channel-404")
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestGetAllChannels() {
	suite.Require().Empty(suite.keeper.GetAllChannels(suite.ctx))

	suite.registerChannel("channel-2")
	suite.registerChannel("channel-1")

	channels := suite.keeper.GetAllChannels(suite.ctx)
	suite.Require().Len(channels, 2)
	suite.Require().Equal("channel-1", channels[0].ID)
	suite.Require().Equal("channel-2", channels[1].ID)
}

func (suite *KeeperTestSuite) TestCloseChannel() {
	suite.registerChannel(channelID)
	suite.seedEscrow(channelID, "atom", 40, 100)
	suite.seedEscrow(channelID, "uosmo", 7, 7)
	suite.seedEscrow("channel-4", "atom", 1, 1)

	escrows := suite.keeper.CloseChannel(suite.ctx, channelID)
	suite.Require().Len(escrows, 2)
	suite.Require().Equal("atom", escrows[0].Denom)
	suite.Require().Equal("uosmo", escrows[1].Denom)

	// escrow is frozen, not removed
	suite.requireChannelState(channelID, "atom", 40, 100)

	var closeEvents int
	for _, event := range suite.ctx.EventManager().Events() {
		if event.Type == types.EventTypeChannelClose {
			closeEvents++
		}
	}
	suite.Require().Equal(2, closeEvents)
}
