package errors

type EventErr interface {
	Error() string
	Event() string
	Unwrap() []error
	Log()
	Join(...error) EventErr
	AddData(key string, v any)
}
