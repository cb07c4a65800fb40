package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
)

// ICS20Packet is the application data carried by a transfer packet.
type ICS20Packet struct {
	// the token denomination to be transferred
	Denom string `json:"denom"`
	// the token amount to be transferred
	Amount uint64 `json:"amount"`
	// the sender address
	Sender string `json:"sender"`
	// the recipient address on the destination chain
	Receiver string `json:"receiver"`
}

// NewICS20Packet constructs a new ICS20Packet instance
func NewICS20Packet(denom string, amount uint64, sender, receiver string) ICS20Packet {
	return ICS20Packet{
		Denom:    denom,
		Amount:   amount,
		Sender:   sender,
		Receiver: receiver,
	}
}

// ValidateBasic is used for validating the packet data. A zero amount is valid.
func (p ICS20Packet) ValidateBasic() error {
	if err := ValidateDenom(p.Denom); err != nil {
		return err
	}
	if strings.TrimSpace(p.Sender) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "sender address cannot be blank")
	}
	if strings.TrimSpace(p.Receiver) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "receiver address cannot be blank")
	}

	return nil
}

// ValidateDenom checks that a wire denomination is non-blank and, for cw20 denominations,
// names a contract.
func ValidateDenom(denom string) error {
	if strings.TrimSpace(denom) == "" {
		return errorsmod.Wrap(ErrInvalidDenom, "denom cannot be blank")
	}
	if contract, ok := strings.CutPrefix(denom, Cw20DenomPrefix); ok && strings.TrimSpace(contract) == "" {
		return errorsmod.Wrapf(ErrInvalidDenom, "missing cw20 contract address in %s", denom)
	}

	return nil
}

// GetAmount returns the packet amount widened to the ledger arithmetic type.
func (p ICS20Packet) GetAmount() sdkmath.Uint {
	return sdkmath.NewUint(p.Amount)
}

// ToAmount returns the Amount variant selected by the packet denomination.
func (p ICS20Packet) ToAmount() Amount {
	return AmountFromParts(p.Denom, p.GetAmount())
}

// GetBytes is a helper for serialising. The amount is written as a JSON number.
func (p ICS20Packet) GetBytes() []byte {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}

	return bz
}

// UnmarshalJSON accepts the amount either as a JSON number or as a decimal string.
func (p *ICS20Packet) UnmarshalJSON(bz []byte) error {
	var raw struct {
		Denom    string          `json:"denom"`
		Amount   json.RawMessage `json:"amount"`
		Sender   string          `json:"sender"`
		Receiver string          `json:"receiver"`
	}
	if err := json.Unmarshal(bz, &raw); err != nil {
		return err
	}

	amount, err := parseWireAmount(raw.Amount)
	if err != nil {
		return err
	}

	*p = NewICS20Packet(raw.Denom, amount, raw.Sender, raw.Receiver)
	return nil
}

func parseWireAmount(raw json.RawMessage) (uint64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, errorsmod.Wrap(ErrInvalidPacketData, "missing amount")
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, err
		}
	}

	amount, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, errorsmod.Wrapf(ErrInvalidPacketData, "unable to parse amount %s: %v", text, err)
	}

	return amount, nil
}

// UnmarshalPacketData decodes and validates the packet data bytes.
func UnmarshalPacketData(bz []byte) (ICS20Packet, error) {
	if len(bytes.TrimSpace(bz)) == 0 {
		return ICS20Packet{}, errorsmod.Wrap(ErrInvalidPacketData, "packet data cannot be empty")
	}

	var data ICS20Packet
	if err := json.Unmarshal(bz, &data); err != nil {
		return ICS20Packet{}, errorsmod.Wrapf(ErrInvalidPacketData, "cannot unmarshal ICS20 transfer packet data: %v", err)
	}

	if err := data.ValidateBasic(); err != nil {
		return ICS20Packet{}, errorsmod.Wrap(err, "error validating ICS20 transfer packet data")
	}

	return data, nil
}
