package validate

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"

	"github.com/cosmos/ics20-escrow/types"
)

// ChannelRequest validates that the channelID of a query request is a valid identifier.
func ChannelRequest(channelID string) error {
	if err := host.ChannelIdentifierValidator(channelID); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return nil
}

// EscrowRequest validates the channelID and ledger denomination of a query request.
func EscrowRequest(channelID, denom string) error {
	if err := ChannelRequest(channelID); err != nil {
		return err
	}

	if err := types.ValidateDenom(denom); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return nil
}
