package keeper_test

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/ics20-escrow/keeper"
	"github.com/cosmos/ics20-escrow/types"
)

func (suite *KeeperTestSuite) TestQueryChannel() {
	suite.registerChannel(channelID)
	suite.seedEscrow(channelID, "atom", 50, 150)

	querier := keeper.NewQuerier(&suite.keeper)

	res, err := querier.Channel(suite.ctx, &types.QueryChannelRequest{ChannelID: channelID})
	suite.Require().NoError(err)
	suite.Require().Equal(channelID, res.Info.ID)
	suite.Require().Len(res.Escrows, 1)

	_, err = querier.Channel(suite.ctx, &types.QueryChannelRequest{ChannelID: "channel-404"})
	suite.Require().Equal(codes.NotFound, status.Code(err))

	_, err = querier.Channel(suite.ctx, &types.QueryChannelRequest{ChannelID: "ch"})
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))

	_, err = querier.Channel(suite.ctx, nil)
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestQueryChannels() {
	querier := keeper.NewQuerier(&suite.keeper)

	res, err := querier.Channels(suite.ctx, &types.QueryChannelsRequest{})
	suite.Require().NoError(err)
	suite.Require().Empty(res.Channels)

	suite.registerChannel(channelID)
	res, err = querier.Channels(suite.ctx, &types.QueryChannelsRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(res.Channels, 1)
}

func (suite *KeeperTestSuite) TestQueryEscrow() {
	suite.seedEscrow(channelID, "atom", 50, 150)
	querier := keeper.NewQuerier(&suite.keeper)

	res, err := querier.Escrow(suite.ctx, &types.QueryEscrowRequest{ChannelID: channelID, Denom: "atom"})
	suite.Require().NoError(err)
	suite.Require().Equal("50", res.State.Outstanding.String())
	suite.Require().Equal("150", res.State.TotalSent.String())

	// missing entries read as zero
	res, err = querier.Escrow(suite.ctx, &types.QueryEscrowRequest{ChannelID: channelID, Denom: "uosmo"})
	suite.Require().NoError(err)
	suite.Require().True(res.State.Outstanding.IsZero())

	_, err = querier.Escrow(suite.ctx, &types.QueryEscrowRequest{ChannelID: channelID, Denom: ""})
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestQueryParams() {
	querier := keeper.NewQuerier(&suite.keeper)

	res, err := querier.Params(suite.ctx, &types.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(types.DefaultParams(), res.Params)
}
