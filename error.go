// 错误类型

package response

type Error struct {
	Code    string
	Message string
	Data    interface{}
}

func NewError(code string, message string) *Error {
	return &Error{code, message, nil}
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func (e *Error) SetMessage(message string) *Error {
	e.Message = message
	return e
}

func (e *Error) SetData(data interface{}) *Error {
	e.Data = data
	return e
}

func (e *Error) SetErrorData(err error) *Error {
	e.Data = map[string]string{"error": err.Error()}
	return e
}

func IsError(x interface{}) bool {
	if _, ok := x.(*Error); ok {
		return true
	}
	if _, ok := x.(Error); ok {
		return true
	}
	return false
}

// IsInvalidStatusCode report whether x is the error returned when a
// status code outside [100, 600) is rejected.
func IsInvalidStatusCode(x interface{}) bool {
	if e, ok := x.(*Error); ok {
		return e.Code == "InvalidStatusCode"
	}
	if e, ok := x.(Error); ok {
		return e.Code == "InvalidStatusCode"
	}
	return false
}
