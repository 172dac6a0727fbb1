package errs

// Error kinds. Every domain sentinel carries exactly one of these as a mark,
// and the handler layer maps the kind to a transport status.
var (
	ErrInvalidRequest = New("invalid request")
	ErrNotFound       = New("not found")
	ErrConflict       = New("conflict")
	ErrInternal       = New("internal error")
)

// InvalidRequest builds an error of kind ErrInvalidRequest with its own message.
func InvalidRequest(msg string) error {
	return Mark(New(msg), ErrInvalidRequest)
}

func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func Internal(err error, msg string) error {
	return Mark(Wrap(err, msg), ErrInternal)
}

type Kind string

const (
	KindInvalidRequest Kind = "INVALID_REQUEST"
	KindNotFound       Kind = "NOT_FOUND"
	KindConflict       Kind = "CONFLICT"
	KindInternal       Kind = "INTERNAL"
)

// KindOf reports the kind an error was marked with. Unmarked errors are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrInvalidRequest):
		return KindInvalidRequest
	case Is(err, ErrNotFound):
		return KindNotFound
	case Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}
