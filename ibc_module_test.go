package escrow_test

import (
	"errors"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"

	"github.com/cosmos/ics20-escrow/types"
)

func (suite *EscrowTestSuite) TestOnChanOpenInit() {
	var (
		order   channeltypes.Order
		portID  string
		version string
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"empty version string", func() {
				version = ""
			}, types.ErrInvalidVersion,
		},
		{
			"invalid order - ORDERED", func() {
				order = channeltypes.ORDERED
			}, types.ErrOrderingMismatch,
		},
		{
			"invalid version is reported before invalid order", func() {
				order = channeltypes.ORDERED
				version = "ics20-2"
			}, types.ErrInvalidVersion,
		},
		{
			"invalid port ID", func() {
				portID = "mock"
			}, porttypes.ErrInvalidPort,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			order = channeltypes.UNORDERED
			portID = types.PortID
			version = types.Version

			tc.malleate()

			counterparty := channeltypes.NewCounterparty(types.PortID, "")
			resVersion, err := suite.ibcModule.OnChanOpenInit(suite.ctx, order, []string{"connection-0"}, portID, "channel-0", counterparty, version)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(types.Version, resVersion)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Empty(resVersion)
			}
		})
	}
}

func (suite *EscrowTestSuite) TestOnChanOpenTry() {
	var (
		order               channeltypes.Order
		counterpartyVersion string
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"invalid counterparty version", func() {
				counterpartyVersion = "version"
			}, types.ErrInvalidVersion,
		},
		{
			"invalid order - ORDERED", func() {
				order = channeltypes.ORDERED
			}, types.ErrOrderingMismatch,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			order = channeltypes.UNORDERED
			counterpartyVersion = types.Version

			tc.malleate()

			counterparty := channeltypes.NewCounterparty(types.PortID, "channel-9")
			version, err := suite.ibcModule.OnChanOpenTry(suite.ctx, order, []string{"connection-0"}, types.PortID, "channel-0", counterparty, counterpartyVersion)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(types.Version, version)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *EscrowTestSuite) TestOnChanOpenAck() {
	var counterpartyVersion string

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"invalid counterparty version", func() {
				counterpartyVersion = "version"
			}, types.ErrInvalidVersion,
		},
		{
			"stored channel is ORDERED", func() {
				suite.setChannelParams("channel-0", channeltypes.ORDERED, types.Version)
			}, types.ErrOrderingMismatch,
		},
		{
			"stored channel has invalid version", func() {
				suite.setChannelParams("channel-0", channeltypes.UNORDERED, "bogus-version")
			}, types.ErrInvalidVersion,
		},
		{
			"channel not found", func() {
				delete(suite.channelKeeper.channels, types.PortID+"/channel-0")
			}, types.ErrChannelNotFound,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.openChannel("channel-0", "")

			counterpartyVersion = types.Version

			tc.malleate()

			err := suite.ibcModule.OnChanOpenAck(suite.ctx, types.PortID, "channel-0", "channel-9", counterpartyVersion)

			if tc.expErr == nil {
				suite.Require().NoError(err)

				info, found := suite.keeper.GetChannelInfo(suite.ctx, "channel-0")
				suite.Require().True(found)
				suite.Require().Equal(types.NewChannelInfo("channel-0", types.Endpoint{PortID: types.PortID, ChannelID: "channel-9"}, "connection-0"), info)

				// a channel can only be connected once
				err = suite.ibcModule.OnChanOpenAck(suite.ctx, types.PortID, "channel-0", "channel-9", types.Version)
				suite.Require().ErrorIs(err, types.ErrChannelExists)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().False(suite.keeper.HasChannel(suite.ctx, "channel-0"))
			}
		})
	}
}

func (suite *EscrowTestSuite) TestOnChanOpenConfirm() {
	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"stored channel is ORDERED", func() {
				suite.setChannelParams("channel-1", channeltypes.ORDERED, types.Version)
			}, types.ErrOrderingMismatch,
		},
		{
			"stored channel has invalid version", func() {
				suite.setChannelParams("channel-1", channeltypes.ORDERED, "bogus-version")
			}, types.ErrInvalidVersion,
		},
		{
			"multi-hop channel", func() {
				channel := suite.channelKeeper.channels[types.PortID+"/channel-1"]
				channel.ConnectionHops = []string{"connection-0", "connection-1"}
				suite.channelKeeper.channels[types.PortID+"/channel-1"] = channel
			}, ibcerrors.ErrInvalidRequest,
		},
		{
			"channel not found", func() {
				delete(suite.channelKeeper.channels, types.PortID+"/channel-1")
			}, types.ErrChannelNotFound,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.openChannel("channel-1", "channel-7")

			tc.malleate()

			err := suite.ibcModule.OnChanOpenConfirm(suite.ctx, types.PortID, "channel-1")

			if tc.expErr == nil {
				suite.Require().NoError(err)

				info, found := suite.keeper.GetChannelInfo(suite.ctx, "channel-1")
				suite.Require().True(found)
				suite.Require().Equal("channel-7", info.CounterpartyEndpoint.ChannelID)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().False(suite.keeper.HasChannel(suite.ctx, "channel-1"))
			}
		})
	}
}

func (suite *EscrowTestSuite) TestOnChanClose() {
	err := suite.ibcModule.OnChanCloseInit(suite.ctx, types.PortID, "channel-0")
	suite.Require().ErrorIs(err, ibcerrors.ErrInvalidRequest)

	suite.Require().NoError(suite.keeper.SetChannelState(suite.ctx, "channel-0", "atom", types.ChannelState{
		Outstanding: sdkmath.NewUint(5),
		TotalSent:   sdkmath.NewUint(5),
	}))
	suite.Require().NoError(suite.ibcModule.OnChanCloseConfirm(suite.ctx, types.PortID, "channel-0"))

	state, found, err := suite.keeper.GetChannelState(suite.ctx, "channel-0", "atom")
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Require().Equal("5", state.Outstanding.String())
}

func (suite *EscrowTestSuite) newPacket(data []byte) channeltypes.Packet {
	return channeltypes.Packet{
		Sequence:           1,
		SourcePort:         types.PortID,
		SourceChannel:      "channel-9",
		DestinationPort:    types.PortID,
		DestinationChannel: "channel-3",
		Data:               data,
	}
}

func (suite *EscrowTestSuite) TestOnRecvPacket() {
	var packetData []byte

	testCases := []struct {
		name       string
		malleate   func()
		expSuccess bool
		expAck     string
		expEscrow  string
	}{
		{
			"success: escrow released to receiver",
			func() {},
			true,
			`{"result":"MQ=="}`,
			"50",
		},
		{
			"success: string encoded amount",
			func() {
				packetData = []byte(`{"denom":"atom","amount":"100","sender":"` + sender.String() + `","receiver":"` + receiver.String() + `"}`)
			},
			true,
			`{"result":"MQ=="}`,
			"50",
		},
		{
			"failure: insufficient escrow",
			func() {
				packetData = types.NewICS20Packet("atom", 151, sender.String(), receiver.String()).GetBytes()
			},
			false,
			`{"error":"ABCI code: 4: insufficient funds in channel escrow"}`,
			"150",
		},
		{
			"failure: undecodable packet data",
			func() {
				packetData = []byte("not json")
			},
			false,
			"",
			"150",
		},
		{
			"failure: receive disabled",
			func() {
				suite.keeper.SetParams(suite.ctx, types.NewParams(false))
			},
			false,
			"",
			"150",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			suite.Require().NoError(suite.keeper.SetChannelState(suite.ctx, "channel-3", "atom", types.ChannelState{
				Outstanding: sdkmath.NewUint(150),
				TotalSent:   sdkmath.NewUint(150),
			}))
			moduleAddr := suite.keeper.GetModuleAddress().String()
			suite.bankKeeper.balances[moduleAddr] = suite.bankKeeper.balances[moduleAddr].Add(sdk.NewInt64Coin("atom", 150))

			packetData = types.NewICS20Packet("atom", 100, sender.String(), receiver.String()).GetBytes()

			tc.malleate()

			ack := suite.ibcModule.OnRecvPacket(suite.ctx, types.Version, suite.newPacket(packetData), relayer)
			suite.Require().Equal(tc.expSuccess, ack.Success())

			if tc.expSuccess {
				suite.Require().Equal(tc.expAck, string(ack.Acknowledgement()))
				suite.Require().Equal(sdkmath.NewInt(100), suite.bankKeeper.GetBalance(suite.ctx, receiver, "atom").Amount)
			} else {
				decoded, err := types.UnmarshalAcknowledgement(ack.Acknowledgement())
				suite.Require().NoError(err)
				suite.Require().NotEmpty(decoded.GetError())
				if tc.expAck != "" {
					suite.Require().Equal(tc.expAck, string(ack.Acknowledgement()))
				}

				// the full error text is only emitted in the packet event
				suite.Require().True(suite.hasPacketErrorAttribute(decoded.GetError()))
			}

			state, _, err := suite.keeper.GetChannelState(suite.ctx, "channel-3", "atom")
			suite.Require().NoError(err)
			suite.Require().Equal(tc.expEscrow, state.Outstanding.String())
		})
	}
}

func (suite *EscrowTestSuite) TestOnAcknowledgementPacket() {
	data := types.NewICS20Packet("atom", 80, sender.String(), receiver.String())
	packet := suite.newPacket(data.GetBytes())

	err := suite.ibcModule.OnAcknowledgementPacket(suite.ctx, types.Version, packet, []byte(`{"result":"MQ==","extra":1}`), relayer)
	suite.Require().ErrorIs(err, ibcerrors.ErrUnknownRequest)

	err = suite.ibcModule.OnAcknowledgementPacket(suite.ctx, types.Version, packet, []byte(`{"result":"MQ=="}`), relayer)
	suite.Require().NoError(err)

	state, found, err := suite.keeper.GetChannelState(suite.ctx, "channel-9", "atom")
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Require().Equal("80", state.Outstanding.String())
	suite.Require().Equal("80", state.TotalSent.String())
}

func (suite *EscrowTestSuite) TestOnTimeoutPacket() {
	data := types.NewICS20Packet("atom", 10, sender.String(), receiver.String())
	packet := suite.newPacket(data.GetBytes())

	// module account holds nothing, the refund cannot be paid
	err := suite.ibcModule.OnTimeoutPacket(suite.ctx, types.Version, packet, relayer)
	suite.Require().Error(err)

	moduleAddr := suite.keeper.GetModuleAddress().String()
	suite.bankKeeper.balances[moduleAddr] = suite.bankKeeper.balances[moduleAddr].Add(sdk.NewInt64Coin("atom", 10))

	suite.Require().NoError(suite.ibcModule.OnTimeoutPacket(suite.ctx, types.Version, packet, relayer))
	suite.Require().Equal(sdkmath.NewInt(10), suite.bankKeeper.GetBalance(suite.ctx, sender, "atom").Amount)
	suite.Require().Empty(suite.keeper.GetAllChannelStates(suite.ctx))
}

func (suite *EscrowTestSuite) TestUnmarshalPacketData() {
	data := types.NewICS20Packet("atom", 10, sender.String(), receiver.String())

	_, _, err := suite.ibcModule.UnmarshalPacketData(suite.ctx, types.PortID, "channel-0", data.GetBytes())
	suite.Require().True(errors.Is(err, ibcerrors.ErrNotFound))

	suite.openChannel("channel-0", "channel-9")
	suite.Require().NoError(suite.ibcModule.OnChanOpenConfirm(suite.ctx, types.PortID, "channel-0"))

	res, version, err := suite.ibcModule.UnmarshalPacketData(suite.ctx, types.PortID, "channel-0", data.GetBytes())
	suite.Require().NoError(err)
	suite.Require().Equal(types.Version, version)
	suite.Require().Equal(data, res)
}

// hasPacketErrorAttribute reports whether a packet event carries an error attribute that is
// more detailed than the committed acknowledgement error.
func (suite *EscrowTestSuite) hasPacketErrorAttribute(ackError string) bool {
	for _, event := range suite.ctx.EventManager().Events() {
		if event.Type != types.EventTypePacket {
			continue
		}
		for _, attr := range event.Attributes {
			if attr.Key == types.AttributeKeyAckError && attr.Value != "" && attr.Value != ackError {
				return true
			}
		}
	}
	return false
}
