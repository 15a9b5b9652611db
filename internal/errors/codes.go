package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

// Process exit statuses, borrowed from sysexits.h
const (
	exitOK          = 0
	exitUsage       = 64
	exitDataErr     = 65
	exitNoInput     = 66
	exitUnavailable = 69
	exitSoftware    = 70
	exitTempFail    = 75
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI reports for the code
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return exitOK
	case CodeInvalidArgument:
		return exitUsage
	case CodeAlreadyExists:
		return exitDataErr
	case CodeNotFound:
		return exitNoInput
	case CodeUnavailable:
		return exitUnavailable
	case CodeFailedPrecondition:
		return exitTempFail
	default:
		return exitSoftware
	}
}
