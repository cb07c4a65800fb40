package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

var (
	// ChannelInfoValueCodec encodes registry entries.
	ChannelInfoValueCodec collcodec.ValueCodec[ChannelInfo] = jsonValueCodec[ChannelInfo]{name: "escrow/ChannelInfo"}
	// ChannelStateValueCodec encodes escrow ledger entries.
	ChannelStateValueCodec collcodec.ValueCodec[ChannelState] = jsonValueCodec[ChannelState]{name: "escrow/ChannelState"}
	// ParamsValueCodec encodes the module params.
	ParamsValueCodec collcodec.ValueCodec[Params] = jsonValueCodec[Params]{name: "escrow/Params"}
)

// jsonValueCodec stores values as their JSON encoding.
type jsonValueCodec[T any] struct {
	name string
}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var value T
	if err := json.Unmarshal(bz, &value); err != nil {
		return value, fmt.Errorf("%s: %w", c.name, err)
	}
	return value, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error) {
	return c.Decode(bz)
}

func (jsonValueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%v", value)
}

func (c jsonValueCodec[T]) ValueType() string {
	return c.name
}
