package errors

// ErrorCode identifies a class of application error
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_ACTION_NOT_FOUND
	ErrorCode_EXTRACTION_FAILED
	ErrorCode_EXTRACTION_BAD_RESPONSE
	ErrorCode_DELIVERY_FAILED
	ErrorCode_STORE_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                 "UNKNOWN",
	ErrorCode_HTTP_OK:                 "OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_ACTION_NOT_FOUND:        "ACTION_NOT_FOUND",
	ErrorCode_EXTRACTION_FAILED:       "EXTRACTION_FAILED",
	ErrorCode_EXTRACTION_BAD_RESPONSE: "EXTRACTION_BAD_RESPONSE",
	ErrorCode_DELIVERY_FAILED:         "DELIVERY_FAILED",
	ErrorCode_STORE_FAILED:            "STORE_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
