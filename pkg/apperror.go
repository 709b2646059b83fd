package pkg

// AppError is the transport-facing error envelope. Handlers map domain
// errors into an AppError and serialize ToHTTPError; Err is kept for server
// logs and never leaves the process.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []string
}

// HTTPError is the JSON body returned to clients.
type HTTPError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches field-level messages (e.g. accumulated validation
// violations) to the response body.
func (e *AppError) WithDetails(details []string) *AppError {
	e.Details = details
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
