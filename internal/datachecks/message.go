package datachecks

import "fmt"

// MessageType is the severity of a data check finding.
type MessageType string

const (
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)

// Message is an immutable finding reported by a data check. Messages compare
// equal when type, text and originating check match.
type Message struct {
	Type          MessageType `json:"message_type"`
	Message       string      `json:"message"`
	DataCheckName string      `json:"data_check_name"`
}

// NewWarning creates a warning message attributed to checkName.
func NewWarning(message, checkName string) Message {
	return Message{Type: MessageTypeWarning, Message: message, DataCheckName: checkName}
}

// NewError creates an error message attributed to checkName.
func NewError(message, checkName string) Message {
	return Message{Type: MessageTypeError, Message: message, DataCheckName: checkName}
}

func (m Message) String() string {
	return m.Message
}

// GoString makes test failure output readable.
func (m Message) GoString() string {
	return fmt.Sprintf("%s(%q, %q)", m.Type, m.Message, m.DataCheckName)
}

// Messages is an ordered list of findings.
type Messages []Message

// Errors returns the error messages in order.
func (ms Messages) Errors() Messages { return ms.filter(MessageTypeError) }

// Warnings returns the warning messages in order.
func (ms Messages) Warnings() Messages { return ms.filter(MessageTypeWarning) }

// HasErrors reports whether any message is an error.
func (ms Messages) HasErrors() bool {
	for _, m := range ms {
		if m.Type == MessageTypeError {
			return true
		}
	}
	return false
}

func (ms Messages) filter(t MessageType) Messages {
	var out Messages
	for _, m := range ms {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}
