package response

const (
	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	// CodeSuccess is the error_code for successful responses.
	CodeSuccess = 0
	// CodeInternal is the error_code for unexpected server errors.
	CodeInternal = 500
)
