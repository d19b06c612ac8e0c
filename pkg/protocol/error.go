package protocol

// ErrorCode identifies the type of error.
type ErrorCode uint16

const (
	ErrUnknown       ErrorCode = 0x0000 // Unknown error
	ErrInvalidFrame  ErrorCode = 0x0001 // Malformed frame
	ErrInvalidEvent  ErrorCode = 0x0002 // Malformed event
	ErrNodeNotFound  ErrorCode = 0x0003 // Event target not mounted
	ErrHandlerPanic  ErrorCode = 0x0004 // Handler panicked
	ErrQueueFull     ErrorCode = 0x0005 // Session queue overflowed
	ErrServerError   ErrorCode = 0x0100 // Internal server error
	ErrRenderFailure ErrorCode = 0x0101 // Render function panicked
)

// String returns the string representation of the error code.
func (ec ErrorCode) String() string {
	switch ec {
	case ErrInvalidFrame:
		return "InvalidFrame"
	case ErrInvalidEvent:
		return "InvalidEvent"
	case ErrNodeNotFound:
		return "NodeNotFound"
	case ErrHandlerPanic:
		return "HandlerPanic"
	case ErrQueueFull:
		return "QueueFull"
	case ErrServerError:
		return "ServerError"
	case ErrRenderFailure:
		return "RenderFailure"
	default:
		return "Unknown"
	}
}

// ErrorMessage is the payload of a FrameError frame.
type ErrorMessage struct {
	Code    ErrorCode
	Message string
	Fatal   bool // The sender closes the connection after this frame
}

// NewError creates a non-fatal ErrorMessage.
func NewError(code ErrorCode, message string) *ErrorMessage {
	return &ErrorMessage{Code: code, Message: message}
}

// NewFatalError creates a fatal ErrorMessage.
func NewFatalError(code ErrorCode, message string) *ErrorMessage {
	return &ErrorMessage{Code: code, Message: message, Fatal: true}
}

// EncodeErrorMessage encodes an ErrorMessage to bytes.
func EncodeErrorMessage(em *ErrorMessage) []byte {
	e := NewEncoder()
	e.WriteUint16(uint16(em.Code))
	e.WriteString(em.Message)
	e.WriteBool(em.Fatal)
	return e.Bytes()
}

// DecodeErrorMessage decodes an ErrorMessage from bytes.
func DecodeErrorMessage(data []byte) (*ErrorMessage, error) {
	d := NewDecoder(data)
	code, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	message, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	fatal, err := d.ReadBool()
	if err != nil {
		return nil, err
	}
	return &ErrorMessage{Code: ErrorCode(code), Message: message, Fatal: fatal}, nil
}

// NewErrorFrame wraps an ErrorMessage in a FrameError frame.
func NewErrorFrame(em *ErrorMessage) *Frame {
	return NewFrame(FrameError, EncodeErrorMessage(em))
}

// Error implements the error interface.
func (em *ErrorMessage) Error() string {
	if em.Fatal {
		return "fatal: " + em.Code.String() + ": " + em.Message
	}
	return em.Code.String() + ": " + em.Message
}
