package types

// DefaultReceiveEnabled enabled
const DefaultReceiveEnabled = true

// Params defines the escrow transfer module parameters.
type Params struct {
	// ReceiveEnabled toggles whether inbound transfers release escrow
	ReceiveEnabled bool `json:"receive_enabled"`
}

// NewParams creates a new parameter configuration for the escrow transfer module
func NewParams(enableReceive bool) Params {
	return Params{
		ReceiveEnabled: enableReceive,
	}
}

// DefaultParams is the default parameter configuration for the escrow transfer module
func DefaultParams() Params {
	return NewParams(DefaultReceiveEnabled)
}

// Validate all escrow transfer module parameters
func (Params) Validate() error {
	return nil
}
