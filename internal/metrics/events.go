package metrics

// RecordPublished counts a presentation event accepted for delivery
func RecordPublished(eventType string) {
	EventsPublished.WithLabelValues(eventType).Inc()
}

// RecordDropped counts a presentation event lost to a full buffer
func RecordDropped(eventType string) {
	EventsDropped.WithLabelValues(eventType).Inc()
}
