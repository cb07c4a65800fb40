package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"
)

var _ ibcexported.Acknowledgement = Acknowledgement{}

// SuccessMarker is the result payload carried by a successful acknowledgement.
var SuccessMarker = []byte("1")

const (
	ackResultKey = "result"
	ackErrorKey  = "error"
)

// Acknowledgement is the generic result-or-error envelope delivered back to the packet origin.
// Response is either *AcknowledgementResult or *AcknowledgementError.
type Acknowledgement struct {
	Response isAcknowledgementResponse
}

type isAcknowledgementResponse interface {
	isAcknowledgementResponse()
}

// AcknowledgementResult is the success variant.
type AcknowledgementResult struct {
	Result []byte
}

// AcknowledgementError is the failure variant.
type AcknowledgementError struct {
	Error string
}

func (*AcknowledgementResult) isAcknowledgementResponse() {}
func (*AcknowledgementError) isAcknowledgementResponse()  {}

// NewResultAcknowledgement returns a new instance of Acknowledgement using an Acknowledgement_Result
// type in the Response field.
func NewResultAcknowledgement(result []byte) Acknowledgement {
	return Acknowledgement{
		Response: &AcknowledgementResult{Result: result},
	}
}

// NewSuccessAcknowledgement returns the canonical success acknowledgement.
func NewSuccessAcknowledgement() Acknowledgement {
	return NewResultAcknowledgement(SuccessMarker)
}

// NewErrorAcknowledgement returns a new instance of Acknowledgement carrying the given message.
func NewErrorAcknowledgement(msg string) Acknowledgement {
	return Acknowledgement{
		Response: &AcknowledgementError{Error: msg},
	}
}

// ackErrorString is committed when err does not wrap a registered error.
const ackErrorString = "error handling packet: see events for details"

// NewErrorAcknowledgementFromError returns an error acknowledgement for err. Only the ABCI
// code and the description of the registered error are committed, the full error text is
// emitted in the packet event.
func NewErrorAcknowledgementFromError(err error) Acknowledgement {
	_, code, _ := errorsmod.ABCIInfo(err, false)

	msg := ackErrorString
	var registered *errorsmod.Error
	if errors.As(err, &registered) {
		msg = registered.Error()
	}

	return NewErrorAcknowledgement(fmt.Sprintf("ABCI code: %d: %s", code, msg))
}

// ValidateBasic performs a basic validation of the acknowledgement
func (ack Acknowledgement) ValidateBasic() error {
	switch resp := ack.Response.(type) {
	case *AcknowledgementResult:
		if len(resp.Result) == 0 {
			return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement result cannot be empty")
		}
	case *AcknowledgementError:
		if strings.TrimSpace(resp.Error) == "" {
			return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement error cannot be empty")
		}
	default:
		return errorsmod.Wrapf(ErrInvalidAcknowledgement, "unsupported acknowledgement response field type %T", resp)
	}

	return nil
}

// Success implements the Acknowledgement interface.
func (ack Acknowledgement) Success() bool {
	_, ok := ack.Response.(*AcknowledgementResult)
	return ok
}

// GetResult returns the result payload, or nil for error acknowledgements.
func (ack Acknowledgement) GetResult() []byte {
	if resp, ok := ack.Response.(*AcknowledgementResult); ok {
		return resp.Result
	}
	return nil
}

// GetError returns the error message, or the empty string for result acknowledgements.
func (ack Acknowledgement) GetError() string {
	if resp, ok := ack.Response.(*AcknowledgementError); ok {
		return resp.Error
	}
	return ""
}

// Acknowledgement implements the Acknowledgement interface. It returns the wire encoding
// of the acknowledgement and panics on an invalid response.
func (ack Acknowledgement) Acknowledgement() []byte {
	bz, err := ack.Marshal()
	if err != nil {
		panic(err)
	}
	return bz
}

// Marshal encodes the acknowledgement as a single-key JSON object. HTML characters are not
// escaped so the bytes match counterparties that do not escape them either.
func (ack Acknowledgement) Marshal() ([]byte, error) {
	var obj map[string]any
	switch resp := ack.Response.(type) {
	case *AcknowledgementResult:
		obj = map[string]any{ackResultKey: resp.Result}
	case *AcknowledgementError:
		obj = map[string]any{ackErrorKey: resp.Error}
	default:
		return nil, errorsmod.Wrapf(ErrInvalidAcknowledgement, "unsupported acknowledgement response field type %T", resp)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (ack Acknowledgement) String() string {
	bz, err := ack.Marshal()
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

// UnmarshalAcknowledgement decodes an acknowledgement envelope. Anything other than an object
// with exactly one of the "result" or "error" keys is rejected, as is any input that does not
// re-encode to the same bytes.
func UnmarshalAcknowledgement(bz []byte) (Acknowledgement, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bz, &fields); err != nil {
		return Acknowledgement{}, errorsmod.Wrapf(ErrInvalidAcknowledgement, "cannot unmarshal acknowledgement: %v", err)
	}
	if len(fields) != 1 {
		return Acknowledgement{}, errorsmod.Wrapf(ErrInvalidAcknowledgement, "expected exactly one of %q or %q, got %d fields", ackResultKey, ackErrorKey, len(fields))
	}

	var ack Acknowledgement
	switch {
	case fields[ackResultKey] != nil:
		var result []byte
		if err := json.Unmarshal(fields[ackResultKey], &result); err != nil {
			return Acknowledgement{}, errorsmod.Wrapf(ErrInvalidAcknowledgement, "invalid result: %v", err)
		}
		ack = NewResultAcknowledgement(result)
	case fields[ackErrorKey] != nil:
		var msg string
		if err := json.Unmarshal(fields[ackErrorKey], &msg); err != nil {
			return Acknowledgement{}, errorsmod.Wrapf(ErrInvalidAcknowledgement, "invalid error: %v", err)
		}
		ack = NewErrorAcknowledgement(msg)
	default:
		return Acknowledgement{}, errorsmod.Wrapf(ErrInvalidAcknowledgement, "expected one of %q or %q", ackResultKey, ackErrorKey)
	}

	if err := ack.ValidateBasic(); err != nil {
		return Acknowledgement{}, err
	}

	encoded, err := ack.Marshal()
	if err != nil {
		return Acknowledgement{}, err
	}
	if !bytes.Equal(encoded, bz) {
		return Acknowledgement{}, errorsmod.Wrapf(ErrInvalidAcknowledgement, "acknowledgement did not marshal to expected bytes: %X ≠ %X", encoded, bz)
	}

	return ack, nil
}
