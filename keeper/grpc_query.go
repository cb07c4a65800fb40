package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ics20-escrow/internal/validate"
	"github.com/cosmos/ics20-escrow/types"
)

// Querier serves read-only queries over the channel registry and the escrow ledger.
type Querier struct {
	*Keeper
}

// NewQuerier returns a new Querier for the given keeper.
func NewQuerier(k *Keeper) Querier {
	return Querier{Keeper: k}
}

// Channels implements the Query/Channels method
func (q Querier) Channels(goCtx context.Context, req *types.QueryChannelsRequest) (*types.QueryChannelsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	channels := q.GetAllChannels(ctx)
	if channels == nil {
		channels = []types.ChannelInfo{}
	}

	return &types.QueryChannelsResponse{Channels: channels}, nil
}

// Channel implements the Query/Channel method
func (q Querier) Channel(goCtx context.Context, req *types.QueryChannelRequest) (*types.QueryChannelResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.ChannelRequest(req.ChannelID); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	info, found := q.GetChannelInfo(ctx, req.ChannelID)
	if !found {
		return nil, status.Error(
			codes.NotFound,
			errorsmod.Wrapf(types.ErrChannelNotFound, "channel %s", req.ChannelID).Error(),
		)
	}

	escrows := q.GetChannelStates(ctx, req.ChannelID)
	if escrows == nil {
		escrows = []types.ChannelEscrow{}
	}

	return &types.QueryChannelResponse{Info: info, Escrows: escrows}, nil
}

// Escrow implements the Query/Escrow method
func (q Querier) Escrow(goCtx context.Context, req *types.QueryEscrowRequest) (*types.QueryEscrowResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.EscrowRequest(req.ChannelID, req.Denom); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	state, _, err := q.GetChannelState(ctx, req.ChannelID, req.Denom)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryEscrowResponse{State: state}, nil
}

// Params implements the Query/Params method
func (q Querier) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}
