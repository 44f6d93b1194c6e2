package constants

// Application-level websocket close codes, sent as close frames during
// connection setup.
const (
	CloseSetupFailure    = 4000
	CloseUnauthenticated = 4001
	CloseUnauthorized    = 4003
)

// Presence and chat events
const (
	EventUserJoined  = "user_joined"
	EventUserLeft    = "user_left"
	EventChatMessage = "chat_message"
)

// Signaling message types. TypeICECandidateAlt and TypeCallEndedAlt are
// accepted on input and normalized to the canonical spelling.
const (
	TypeOffer           = "offer"
	TypeAnswer          = "answer"
	TypeICECandidate    = "ice_candidate"
	TypeICECandidateAlt = "ice-candidate"
	TypeEndCall         = "end_call"
	TypeCallEnded       = "call_ended"
	TypeCallEndedAlt    = "call-ended"
	TypePing            = "ping"
	TypeReadyToCall     = "ready_to_call"
	TypeTestingSignal   = "testing_signal"
)

// Credential sources consumed during the websocket handshake.
const (
	AccessTokenCookie = "access_token"
	TokenQueryParam   = "token"
)
