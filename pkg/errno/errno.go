package errno

import (
	"errors"

	"hdpath-core/pkg/hdpath"
	"hdpath-core/pkg/keychain"
)

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// Common Errors
var (
	OK            = Errno{Code: 0, Message: "Success"}
	InternalError = Errno{Code: 10001, Message: "Internal error"}
)

// Path Errors (20100+)
var (
	ErrInvalidFormat    = Errno{Code: 20101, Message: "Invalid path format"}
	ErrInvalidStructure = Errno{Code: 20102, Message: "Invalid path structure"}
	ErrInvalidLength    = Errno{Code: 20103, Message: "Invalid path length"}
	ErrHighBitIsSet     = Errno{Code: 20104, Message: "Value is out of the 31-bit range"}
	ErrInvalidPurpose   = Errno{Code: 20105, Message: "Invalid purpose"}
	ErrInvalidField     = Errno{Code: 20106, Message: "Invalid field value"}
)

// Key Errors (20200+)
var (
	ErrInvalidSeed = Errno{Code: 20201, Message: "Invalid seed"}
)

// Decode tries to classify an error into an error code and message.
// hdpath 的类型化错误保留原始 message，只补充错误码。
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var (
		lenErr     *hdpath.InvalidLengthError
		purposeErr *hdpath.InvalidPurposeError
		fieldErr   *hdpath.FieldError
		typed      Errno
	)
	switch {
	case errors.As(err, &typed):
		return typed.Code, typed.Message
	case errors.Is(err, hdpath.ErrInvalidFormat):
		return ErrInvalidFormat.Code, err.Error()
	case errors.Is(err, hdpath.ErrInvalidStructure):
		return ErrInvalidStructure.Code, err.Error()
	case errors.Is(err, hdpath.ErrHighBitIsSet):
		return ErrHighBitIsSet.Code, err.Error()
	case errors.As(err, &lenErr):
		return ErrInvalidLength.Code, err.Error()
	case errors.As(err, &purposeErr):
		return ErrInvalidPurpose.Code, err.Error()
	case errors.As(err, &fieldErr):
		return ErrInvalidField.Code, err.Error()
	case errors.Is(err, keychain.ErrInvalidSeed):
		return ErrInvalidSeed.Code, err.Error()
	default:
		return InternalError.Code, err.Error()
	}
}
