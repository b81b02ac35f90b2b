package protocol

// MessageType classifies window/showMessage, window/logMessage, and
// window/showMessageRequest severities.
type MessageType int

const (
	Error   MessageType = 1
	Warning MessageType = 2
	Info    MessageType = 3
	Log     MessageType = 4
)

// ShowMessageParams is the payload of the outbound window/showMessage
// notification.
type ShowMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// LogMessageParams is the payload of the outbound window/logMessage
// notification the log pump emits after every handler.
type LogMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// MessageActionItem is one button offered by showMessageRequest.
type MessageActionItem struct {
	Title string `json:"title"`
}

// ShowMessageRequestParams is the payload of the outbound
// window/showMessageRequest request — the concrete example used to
// ground the outbound-request correlation mechanism (spec.md §4.4): the
// server sends this as a Request and later demultiplexes the client's
// reply by the request's string id.
type ShowMessageRequestParams struct {
	Type    MessageType         `json:"type"`
	Message string              `json:"message"`
	Actions []MessageActionItem `json:"actions,omitempty"`
}

// ShowMessageRequestResult is the client's reply: the action item they
// picked, or nil if they dismissed the prompt.
type ShowMessageRequestResult = *MessageActionItem

// TelemetryEventParams is the payload of the outbound telemetry/event
// notification; Data is server-specific.
type TelemetryEventParams struct {
	Data any `json:"data"`
}
