package response

// Envelope is the success side of the API response envelope.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Message(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

func MessageWithData(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}
