package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kliklance/kliklance/internal/pkg/constants"
	"github.com/kliklance/kliklance/internal/pkg/models"
	wspkg "github.com/kliklance/kliklance/internal/pkg/websocket"
	"github.com/kliklance/kliklance/services/realtime"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUC is a thread-safe in-memory usecase for end-to-end connection
// tests. Generated mocks do not fit here: connections outlive the test
// body and keep calling into the usecase while they tear down.
type fakeUC struct {
	mu          sync.Mutex
	tokens      map[string]*models.Principal
	users       map[int64]*models.Principal
	allowed     map[int64]bool
	saveErr     error
	saved       []string
	callEndedBy map[int64]int
	leftBy      map[int64]int
}

var _ realtime.RealtimeUC = (*fakeUC)(nil)

func newFakeUC() *fakeUC {
	ayu := &models.Principal{ID: 100, Name: "Ayu Lestari", Role: models.RoleClient}
	budi := &models.Principal{ID: 200, Name: "Budi Santoso", Role: models.RoleProfessional}
	candra := &models.Principal{ID: 300, Name: "Candra Wijaya", Role: models.RoleProfessional}

	return &fakeUC{
		tokens:      map[string]*models.Principal{"token-ayu": ayu, "token-budi": budi, "token-candra": candra},
		users:       map[int64]*models.Principal{100: ayu, 200: budi, 300: candra},
		allowed:     map[int64]bool{100: true, 200: true},
		callEndedBy: make(map[int64]int),
		leftBy:      make(map[int64]int),
	}
}

func (f *fakeUC) ResolvePrincipalFromToken(_ context.Context, token string) (*models.Principal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.tokens[token]; ok {
		return p, nil
	}
	return nil, errors.New("invalid access token")
}

func (f *fakeUC) ResolvePrincipalByID(_ context.Context, userID int64) (*models.Principal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.users[userID]; ok {
		return p, nil
	}
	return nil, errors.New("user not found")
}

func (f *fakeUC) AuthorizeJobAccess(_ context.Context, _, userID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allowed[userID]
}

func (f *fakeUC) SaveChatMessage(_ context.Context, jobID int64, sender *models.Principal, content string) (*models.ChatMessageEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = append(f.saved, content)
	return &models.ChatMessageEvent{
		Event:      constants.EventChatMessage,
		ID:         uuid.New(),
		JobID:      jobID,
		Sender:     sender.ID,
		SenderName: sender.Name,
		SenderRole: sender.Role,
		Content:    content,
		FileType:   "text",
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (f *fakeUC) TrackJoin(context.Context, string, int64, *models.Principal) {}

func (f *fakeUC) TrackLeave(_ context.Context, _ string, _ int64, p *models.Principal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leftBy[p.ID]++
}

func (f *fakeUC) NotifyCallEnded(_ context.Context, _ int64, p *models.Principal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callEndedBy[p.ID]++
}

func (f *fakeUC) savedMessages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.saved...)
}

func (f *fakeUC) callEndedCount(userID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callEndedBy[userID]
}

func (f *fakeUC) leaveCount(userID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.leftBy[userID]
}

func newTestServer(t *testing.T, uc realtime.RealtimeUC) *httptest.Server {
	e := echo.New()
	h := NewHandler(uc, wspkg.NewHub())

	e.GET("/ws/chat/:job_id", h.HandleChat)
	e.GET("/ws/video-call/:job_id", h.HandleVideoCall)

	// Stand-in for the gateway middleware that resolves identity before
	// the request reaches this service.
	upstream := e.Group("/upstream", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user_id", int64(100))
			return next(c)
		}
	})
	upstream.GET("/ws/chat/:job_id", h.HandleChat)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, path string, header http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func sendJSON(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(v))
}

func expectClose(t *testing.T, conn *websocket.Conn, code int) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()

	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, code, closeErr.Code)
}

// expectSilence asserts no frame arrives. The read deadline corrupts
// the connection, so call it last.
func expectSilence(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, data, err := conn.ReadMessage()
	assert.Error(t, err, "unexpected frame: %s", data)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestChatRoundTrip(t *testing.T) {
	uc := newFakeUC()
	srv := newTestServer(t, uc)

	ayu := dial(t, srv, "/ws/chat/7?token=token-ayu", nil)
	joined := readEvent(t, ayu)
	assert.Equal(t, constants.EventUserJoined, joined["event"])
	assert.Equal(t, float64(100), joined["user_id"])

	budi := dial(t, srv, "/ws/chat/7?token=token-budi", nil)
	joined = readEvent(t, budi)
	assert.Equal(t, constants.EventUserJoined, joined["event"])
	assert.Equal(t, float64(200), joined["user_id"])

	// The earlier member sees the newcomer too.
	joined = readEvent(t, ayu)
	assert.Equal(t, float64(200), joined["user_id"])

	sendJSON(t, ayu, map[string]string{"message": "halo, sudah mulai?"})

	for _, conn := range []*websocket.Conn{ayu, budi} {
		msg := readEvent(t, conn)
		assert.Equal(t, constants.EventChatMessage, msg["event"])
		assert.Equal(t, float64(100), msg["sender"])
		assert.Equal(t, "Ayu Lestari", msg["sender_name"])
		assert.Equal(t, "halo, sudah mulai?", msg["content"])
		assert.Equal(t, "text", msg["file_type"])
	}

	assert.Equal(t, []string{"halo, sudah mulai?"}, uc.savedMessages())
}

func TestChatUserLeftOnDisconnect(t *testing.T) {
	uc := newFakeUC()
	srv := newTestServer(t, uc)

	ayu := dial(t, srv, "/ws/chat/7?token=token-ayu", nil)
	readEvent(t, ayu)

	budi := dial(t, srv, "/ws/chat/7?token=token-budi", nil)
	readEvent(t, budi)
	readEvent(t, ayu)

	require.NoError(t, budi.Close())

	left := readEvent(t, ayu)
	assert.Equal(t, constants.EventUserLeft, left["event"])
	assert.Equal(t, float64(200), left["user_id"])
}

func TestChatProtocolErrors(t *testing.T) {
	uc := newFakeUC()
	srv := newTestServer(t, uc)

	ayu := dial(t, srv, "/ws/chat/7?token=token-ayu", nil)
	readEvent(t, ayu)

	require.NoError(t, ayu.WriteMessage(websocket.TextMessage, []byte("not json")))
	assert.Equal(t, "Invalid message format", readEvent(t, ayu)["error"])

	sendJSON(t, ayu, map[string]int{"unrelated": 1})
	assert.Equal(t, "Message content required", readEvent(t, ayu)["error"])

	// The connection survives protocol errors.
	sendJSON(t, ayu, map[string]string{"message": "masih hidup"})
	assert.Equal(t, "masih hidup", readEvent(t, ayu)["content"])
}

func TestChatSaveFailure(t *testing.T) {
	uc := newFakeUC()
	uc.saveErr = errors.New("database unavailable")
	srv := newTestServer(t, uc)

	ayu := dial(t, srv, "/ws/chat/7?token=token-ayu", nil)
	readEvent(t, ayu)

	sendJSON(t, ayu, map[string]string{"message": "hilang"})
	assert.Equal(t, "Failed to process message", readEvent(t, ayu)["error"])
}

func TestUnauthenticatedClose(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	conn := dial(t, srv, "/ws/chat/7", nil)
	expectClose(t, conn, constants.CloseUnauthenticated)
}

func TestBadTokenClose(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	conn := dial(t, srv, "/ws/chat/7?token=forged", nil)
	expectClose(t, conn, constants.CloseUnauthenticated)
}

func TestUnauthorizedClose(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	// Candra authenticates fine but has no stake in the job.
	conn := dial(t, srv, "/ws/chat/7?token=token-candra", nil)
	expectClose(t, conn, constants.CloseUnauthorized)
}

func TestMalformedJobIDClose(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	conn := dial(t, srv, "/ws/chat/abc?token=token-ayu", nil)
	expectClose(t, conn, constants.CloseUnauthorized)
}

func TestCookieAuthentication(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	header := http.Header{}
	header.Set("Cookie", constants.AccessTokenCookie+"=token-ayu")
	conn := dial(t, srv, "/ws/chat/7", header)

	joined := readEvent(t, conn)
	assert.Equal(t, constants.EventUserJoined, joined["event"])
	assert.Equal(t, float64(100), joined["user_id"])
}

func TestUpstreamIdentityAuthentication(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	conn := dial(t, srv, "/upstream/ws/chat/7", nil)

	joined := readEvent(t, conn)
	assert.Equal(t, float64(100), joined["user_id"])
}

func TestOfferSuppressedForSender(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	ayu := dial(t, srv, "/ws/video-call/7?token=token-ayu", nil)
	readEvent(t, ayu)
	budi := dial(t, srv, "/ws/video-call/7?token=token-budi", nil)
	readEvent(t, budi)
	readEvent(t, ayu)

	sendJSON(t, ayu, map[string]interface{}{
		"type":  constants.TypeOffer,
		"offer": map[string]string{"sdp": "v=0"},
	})

	offer := readEvent(t, budi)
	assert.Equal(t, constants.TypeOffer, offer["type"])
	assert.Equal(t, float64(100), offer["caller_id"])
	assert.Equal(t, "Ayu Lestari", offer["caller_name"])
	assert.Equal(t, map[string]interface{}{"sdp": "v=0"}, offer["offer"])

	expectSilence(t, ayu)
}

func TestSenderSuppressedSignalTypes(t *testing.T) {
	tests := []struct {
		name  string
		frame map[string]interface{}
		check func(t *testing.T, event map[string]interface{})
	}{
		{
			name: "ping",
			frame: map[string]interface{}{
				"type":    constants.TypePing,
				"message": map[string]string{"beat": "1"},
			},
			check: func(t *testing.T, event map[string]interface{}) {
				assert.Equal(t, constants.TypePing, event["type"])
				assert.Equal(t, float64(100), event["sender_id"])
				assert.Equal(t, map[string]interface{}{"beat": "1"}, event["message"])
			},
		},
		{
			name: "ready_to_call",
			frame: map[string]interface{}{
				"type": constants.TypeReadyToCall,
			},
			check: func(t *testing.T, event map[string]interface{}) {
				assert.Equal(t, constants.TypeReadyToCall, event["type"])
				assert.Equal(t, float64(100), event["user_id"])
				assert.Equal(t, "Ayu Lestari", event["user_name"])
			},
		},
		{
			name: "testing_signal",
			frame: map[string]interface{}{
				"type":    constants.TypeTestingSignal,
				"message": "periksa koneksi",
			},
			check: func(t *testing.T, event map[string]interface{}) {
				assert.Equal(t, constants.TypeTestingSignal, event["type"])
				assert.Equal(t, float64(100), event["sender_id"])
				assert.Equal(t, "Ayu Lestari", event["sender_name"])
				assert.Equal(t, "periksa koneksi", event["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, newFakeUC())

			ayu := dial(t, srv, "/ws/video-call/7?token=token-ayu", nil)
			readEvent(t, ayu)
			budi := dial(t, srv, "/ws/video-call/7?token=token-budi", nil)
			readEvent(t, budi)
			readEvent(t, ayu)

			sendJSON(t, ayu, tt.frame)

			tt.check(t, readEvent(t, budi))
			expectSilence(t, ayu)
		})
	}
}

func TestAnswerReachesEveryone(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	ayu := dial(t, srv, "/ws/video-call/7?token=token-ayu", nil)
	readEvent(t, ayu)
	budi := dial(t, srv, "/ws/video-call/7?token=token-budi", nil)
	readEvent(t, budi)
	readEvent(t, ayu)

	sendJSON(t, budi, map[string]interface{}{
		"type":   constants.TypeAnswer,
		"answer": map[string]string{"sdp": "v=0"},
	})

	for _, conn := range []*websocket.Conn{ayu, budi} {
		answer := readEvent(t, conn)
		assert.Equal(t, constants.TypeAnswer, answer["type"])
		assert.Equal(t, float64(200), answer["answerer_id"])
	}
}

func TestICECandidateLegacySpelling(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	ayu := dial(t, srv, "/ws/video-call/7?token=token-ayu", nil)
	readEvent(t, ayu)
	budi := dial(t, srv, "/ws/video-call/7?token=token-budi", nil)
	readEvent(t, budi)
	readEvent(t, ayu)

	sendJSON(t, ayu, map[string]interface{}{
		"type":          constants.TypeICECandidateAlt,
		"ice_candidate": map[string]string{"candidate": "udp 1"},
	})

	for _, conn := range []*websocket.Conn{ayu, budi} {
		candidate := readEvent(t, conn)
		assert.Equal(t, constants.TypeICECandidate, candidate["type"])
		assert.Equal(t, float64(100), candidate["sender_id"])
	}
}

func TestTargetedAnswerOnlyReachesTarget(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	ayu := dial(t, srv, "/ws/video-call/7?token=token-ayu", nil)
	readEvent(t, ayu)
	budi := dial(t, srv, "/ws/video-call/7?token=token-budi", nil)
	readEvent(t, budi)
	readEvent(t, ayu)

	sendJSON(t, budi, map[string]interface{}{
		"type":   constants.TypeAnswer,
		"answer": map[string]string{"sdp": "v=0"},
		"to":     100,
	})

	answer := readEvent(t, ayu)
	assert.Equal(t, constants.TypeAnswer, answer["type"])

	expectSilence(t, budi)
}

func TestEndCall(t *testing.T) {
	uc := newFakeUC()
	srv := newTestServer(t, uc)

	ayu := dial(t, srv, "/ws/video-call/7?token=token-ayu", nil)
	readEvent(t, ayu)
	budi := dial(t, srv, "/ws/video-call/7?token=token-budi", nil)
	readEvent(t, budi)
	readEvent(t, ayu)

	sendJSON(t, ayu, map[string]string{"type": constants.TypeEndCall})

	for _, conn := range []*websocket.Conn{ayu, budi} {
		ended := readEvent(t, conn)
		assert.Equal(t, constants.TypeCallEnded, ended["type"])
		assert.Equal(t, float64(100), ended["user_id"])
		assert.Equal(t, "Ayu Lestari", ended["user_name"])
	}

	waitFor(t, func() bool { return uc.callEndedCount(100) >= 1 })
}

func TestEndCallPublishedOncePerConnection(t *testing.T) {
	uc := newFakeUC()
	srv := newTestServer(t, uc)

	ayu := dial(t, srv, "/ws/video-call/7?token=token-ayu", nil)
	readEvent(t, ayu)
	budi := dial(t, srv, "/ws/video-call/7?token=token-budi", nil)
	readEvent(t, budi)
	readEvent(t, ayu)

	sendJSON(t, ayu, map[string]string{"type": constants.TypeEndCall})
	readEvent(t, ayu)
	readEvent(t, budi)
	waitFor(t, func() bool { return uc.callEndedCount(100) == 1 })

	// Disconnecting after an explicit end_call must not publish a
	// second bus event for the same connection.
	require.NoError(t, ayu.Close())
	waitFor(t, func() bool { return uc.leaveCount(100) >= 1 })
	assert.Equal(t, 1, uc.callEndedCount(100))

	// A member that never signaled end_call still publishes on
	// disconnect.
	require.NoError(t, budi.Close())
	waitFor(t, func() bool { return uc.leaveCount(200) >= 1 })
	assert.Equal(t, 1, uc.callEndedCount(200))
}

func TestSignalProtocolErrors(t *testing.T) {
	srv := newTestServer(t, newFakeUC())

	ayu := dial(t, srv, "/ws/video-call/7?token=token-ayu", nil)
	readEvent(t, ayu)

	sendJSON(t, ayu, map[string]string{"not_type": "x"})
	assert.Equal(t, "Message type required", readEvent(t, ayu)["error"])

	sendJSON(t, ayu, map[string]string{"type": "teleport"})
	assert.Equal(t, "Unknown message type: teleport", readEvent(t, ayu)["error"])
}
