package wire

import (
	"errors"
	"fmt"
)

// MaxBurst is the largest number of words in one ReadWords or WriteWords
// request.
const MaxBurst = 1024

// Validation errors.
var (
	ErrMessageID     = errors.New("messageId 0 is reserved")
	ErrOperation     = errors.New("invalid operation")
	ErrUnaligned     = errors.New("address not word aligned")
	ErrBurstLength   = errors.New("invalid burst length")
	ErrAddressWraps  = errors.New("burst wraps the address space")
	ErrUnexpectedArg = errors.New("unexpected argument for operation")
)

// Request represents a remote register request.
//
// CBOR encoding:
//
//	{
//	  1: messageId,    // uint32, nonzero
//	  2: operation,    // uint8
//	  3: address,      // uint32, word aligned
//	  4: value,        // uint32 (WriteWord, ModifyWord)
//	  5: mask,         // uint32 (ModifyWord)
//	  6: count,        // uint16 (ReadWords)
//	  7: values        // []uint32 (WriteWords)
//	}
type Request struct {
	MessageID uint32    `cbor:"1,keyasint"`
	Operation Operation `cbor:"2,keyasint"`
	Address   uint32    `cbor:"3,keyasint,omitempty"`
	Value     uint32    `cbor:"4,keyasint,omitempty"`
	Mask      uint32    `cbor:"5,keyasint,omitempty"`
	Count     uint16    `cbor:"6,keyasint,omitempty"`
	Values    []uint32  `cbor:"7,keyasint,omitempty"`
}

// Validate checks if the request is valid.
func (r *Request) Validate() error {
	if r.MessageID == 0 {
		return ErrMessageID
	}
	if !r.Operation.IsValid() {
		return fmt.Errorf("%w: %d", ErrOperation, r.Operation)
	}
	if r.Address%4 != 0 {
		return fmt.Errorf("%w: 0x%x", ErrUnaligned, r.Address)
	}

	words := 0
	switch r.Operation {
	case OpReadWords:
		words = int(r.Count)
		if len(r.Values) != 0 {
			return fmt.Errorf("%w: values on %s", ErrUnexpectedArg, r.Operation)
		}
	case OpWriteWords:
		words = len(r.Values)
		if r.Count != 0 {
			return fmt.Errorf("%w: count on %s", ErrUnexpectedArg, r.Operation)
		}
	default:
		if r.Count != 0 || len(r.Values) != 0 {
			return fmt.Errorf("%w: burst fields on %s", ErrUnexpectedArg, r.Operation)
		}
		return nil
	}
	if words < 1 || words > MaxBurst {
		return fmt.Errorf("%w: %d", ErrBurstLength, words)
	}
	if uint64(r.Address)+uint64(words)*4 > 1<<32 {
		return fmt.Errorf("%w: 0x%x + %d words", ErrAddressWraps, r.Address, words)
	}
	return nil
}

// Response represents a remote register response.
//
// CBOR encoding:
//
//	{
//	  1: messageId,    // uint32: matches request
//	  2: status,       // uint8: 0=success, or error code
//	  3: value,        // uint32: word read, or previous word for ModifyWord
//	  4: values,       // []uint32: words read by ReadWords
//	  5: message       // string: error detail
//	}
type Response struct {
	MessageID uint32   `cbor:"1,keyasint"`
	Status    Status   `cbor:"2,keyasint"`
	Value     uint32   `cbor:"3,keyasint,omitempty"`
	Values    []uint32 `cbor:"4,keyasint,omitempty"`
	Message   string   `cbor:"5,keyasint,omitempty"`
}

// IsSuccess returns true if the response indicates success.
func (r *Response) IsSuccess() bool {
	return r.Status.IsSuccess()
}

// ErrorResponse builds a failed response for messageID.
func ErrorResponse(messageID uint32, status Status, msg string) *Response {
	return &Response{MessageID: messageID, Status: status, Message: msg}
}
