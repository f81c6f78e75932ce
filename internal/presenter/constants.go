package presenter

// Log messages
const (
	LogMsgEventDropped = "Presentation event dropped"
)
