package constants

// NATS subjects published by the realtime service for downstream
// consumers (notification and email services).
const (
	SubjectChatMessageCreated = "chat.message.created"
	SubjectCallEnded          = "call.ended"
)
