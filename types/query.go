package types

// QueryChannelsRequest is the request type for the Channels query.
type QueryChannelsRequest struct{}

// QueryChannelsResponse lists every registered channel.
type QueryChannelsResponse struct {
	Channels []ChannelInfo `json:"channels"`
}

// QueryChannelRequest is the request type for the Channel query.
type QueryChannelRequest struct {
	ChannelID string `json:"channel_id"`
}

// QueryChannelResponse returns the registry entry of a channel together with its escrow
// balances.
type QueryChannelResponse struct {
	Info    ChannelInfo     `json:"info"`
	Escrows []ChannelEscrow `json:"escrows"`
}

// QueryEscrowRequest is the request type for the Escrow query.
type QueryEscrowRequest struct {
	ChannelID string `json:"channel_id"`
	Denom     string `json:"denom"`
}

// QueryEscrowResponse returns a single ledger entry.
type QueryEscrowResponse struct {
	State ChannelState `json:"state"`
}

// QueryParamsRequest is the request type for the Params query.
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}
