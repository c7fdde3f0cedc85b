package domain

// 统一业务错误：Code 直接用 HTTP 语义，handler 层按 Code 映射响应
type Error struct {
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "domain error"
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error        { return &Error{Code: 400, Msg: msg} }
func Conflict(msg string) error          { return &Error{Code: 400, Msg: msg} }
func InvalidCredential(msg string) error { return &Error{Code: 400, Msg: msg} }
func NotFound(msg string) error          { return &Error{Code: 404, Msg: msg} }
func Unauthenticated(msg string) error   { return &Error{Code: 401, Msg: msg} }
func Forbidden(msg string) error         { return &Error{Code: 403, Msg: msg} }
func Internal(msg string, err error) error {
	return &Error{Code: 500, Msg: msg, Err: err}
}
