package marshal

import "fmt"

// DecodeError reports a failure to decode a document node.
type DecodeError struct {
	FieldPath string // document path (e.g., "$.phoneNumber.areaCode")
	Message   string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("decode error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a failure to encode a value.
type EncodeError struct {
	FieldPath string // value path (e.g., "$.phoneNumber")
	Message   string
	Err       error
}

func (e *EncodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("encode error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("encode error: %s", e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
