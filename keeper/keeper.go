package keeper

import (
	"errors"
	"fmt"
	"strings"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ics20-escrow/types"
)

// Keeper defines the escrow transfer keeper. It owns the channel registry and the
// escrow ledger.
type Keeper struct {
	storeService corestore.KVStoreService

	Schema   collections.Schema
	Params   collections.Item[types.Params]
	Channels collections.Map[string, types.ChannelInfo]
	Ledger   collections.Map[collections.Pair[string, string], types.ChannelState]

	channelKeeper  types.ChannelKeeper
	authKeeper     types.AccountKeeper
	bankKeeper     types.BankKeeper
	contractKeeper types.ContractKeeper

	port string
}

// NewKeeper creates a new escrow transfer Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	channelKeeper types.ChannelKeeper,
	authKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	contractKeeper types.ContractKeeper,
	port string,
) Keeper {
	if storeService == nil {
		panic(errors.New("store service must not be nil"))
	}

	// ensure the escrow module account is set
	if addr := authKeeper.GetModuleAddress(types.ModuleName); addr == nil {
		panic(errors.New("the escrow transfer module account has not been set"))
	}

	if strings.TrimSpace(port) == "" {
		port = types.PortID
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService:   storeService,
		Params:         collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValueCodec),
		Channels:       collections.NewMap(sb, types.ChannelInfoPrefix, "channels", collections.StringKey, types.ChannelInfoValueCodec),
		Ledger:         collections.NewMap(sb, types.ChannelStatePrefix, "ledger", collections.PairKeyCodec(collections.StringKey, collections.StringKey), types.ChannelStateValueCodec),
		channelKeeper:  channelKeeper,
		authKeeper:     authKeeper,
		bankKeeper:     bankKeeper,
		contractKeeper: contractKeeper,
		port:           port,
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetPort returns the port the module is bound to.
func (k Keeper) GetPort() string {
	return k.port
}

// GetModuleAddress returns the address of the module account that holds native escrow.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.authKeeper.GetModuleAddress(types.ModuleName)
}

// GetParams returns the current escrow transfer module parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	params, err := k.Params.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams()
	}
	if err != nil {
		panic(err)
	}

	return params
}

// SetParams sets the escrow transfer module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	if err := k.Params.Set(ctx, params); err != nil {
		panic(err)
	}
}

// ChannelKeeper returns the core IBC channel keeper.
func (k Keeper) ChannelKeeper() types.ChannelKeeper {
	return k.channelKeeper
}
