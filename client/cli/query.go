package cli

import (
	"encoding/json"
	"os"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cobra"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/cosmos/ics20-escrow/keeper"
	"github.com/cosmos/ics20-escrow/types"
)

// GetQueryCmd returns the query subcommands. Queries are served from an exported genesis
// file loaded into an in-memory store.
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Query the channel registry and escrow ledger of an exported genesis state",
		RunE:    runHelp,
	}

	queryCmd.AddCommand(
		NewQueryChannelsCmd(),
		NewQueryChannelCmd(),
		NewQueryEscrowCmd(),
		NewQueryParamsCmd(),
	)

	return queryCmd
}

// NewQueryChannelsCmd returns the command to list all registered channels.
func NewQueryChannelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "channels [genesis-file]",
		Short:   "List all registered escrow channels",
		Example: "escrowctl query channels ./genesis.json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			querier, ctx, err := loadQuerier(cmd, args[0])
			if err != nil {
				return err
			}

			res, err := querier.Channels(ctx, &types.QueryChannelsRequest{})
			if err != nil {
				return err
			}

			return printOutput(cmd, res)
		},
	}
}

// NewQueryChannelCmd returns the command to query a channel and its escrow balances.
func NewQueryChannelCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "channel [genesis-file] [channel-id]",
		Short:   "Query a registered channel together with its escrow balances",
		Example: "escrowctl query channel ./genesis.json channel-0",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			querier, ctx, err := loadQuerier(cmd, args[0])
			if err != nil {
				return err
			}

			res, err := querier.Channel(ctx, &types.QueryChannelRequest{ChannelID: args[1]})
			if err != nil {
				return err
			}

			return printOutput(cmd, res)
		},
	}
}

// NewQueryEscrowCmd returns the command to query a single escrow ledger entry.
func NewQueryEscrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "escrow [genesis-file] [channel-id] [denom]",
		Short:   "Query the escrow ledger entry of a channel and denomination",
		Example: "escrowctl query escrow ./genesis.json channel-0 uatom",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			querier, ctx, err := loadQuerier(cmd, args[0])
			if err != nil {
				return err
			}

			res, err := querier.Escrow(ctx, &types.QueryEscrowRequest{ChannelID: args[1], Denom: args[2]})
			if err != nil {
				return err
			}

			return printOutput(cmd, res)
		},
	}
}

// NewQueryParamsCmd returns the command to query the module parameters.
func NewQueryParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "params [genesis-file]",
		Short:   "Query the escrow transfer parameters",
		Example: "escrowctl query params ./genesis.json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			querier, ctx, err := loadQuerier(cmd, args[0])
			if err != nil {
				return err
			}

			res, err := querier.Params(ctx, &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return printOutput(cmd, res)
		},
	}
}

type moduleAccountKeeper struct{}

func (moduleAccountKeeper) GetModuleAddress(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress(name)
}

// readGenesis reads and validates an escrow transfer genesis file.
func readGenesis(path string) (types.GenesisState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return types.GenesisState{}, err
	}

	var genesis types.GenesisState
	if err := json.Unmarshal(bz, &genesis); err != nil {
		return types.GenesisState{}, errorsmod.Wrapf(types.ErrInvalidGenesis, "failed to unmarshal %s: %v", path, err)
	}

	if err := genesis.Validate(); err != nil {
		return types.GenesisState{}, err
	}

	return genesis, nil
}

// loadQuerier initializes a keeper backed by an in-memory store with the genesis state at
// path and returns a querier over it. The returned context must be used for the queries.
func loadQuerier(cmd *cobra.Command, path string) (keeper.Querier, sdk.Context, error) {
	logger := GetLogger(cmd)

	genesis, err := readGenesis(path)
	if err != nil {
		return keeper.Querier{}, sdk.Context{}, err
	}

	db := dbm.NewMemDB()
	key := storetypes.NewKVStoreKey(types.StoreKey)

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	if err := cms.LoadLatestVersion(); err != nil {
		return keeper.Querier{}, sdk.Context{}, err
	}

	ctx := sdk.NewContext(cms, cmtproto.Header{}, false, logger)

	// queries never reach the channel, bank or contract keepers
	k := keeper.NewKeeper(runtime.NewKVStoreService(key), nil, moduleAccountKeeper{}, nil, nil, types.PortID)
	k.InitGenesis(ctx, genesis)

	logger.Debug("loaded genesis state", "file", path, "channels", len(genesis.Channels), "escrows", len(genesis.Escrows))

	return keeper.NewQuerier(&k), ctx, nil
}
