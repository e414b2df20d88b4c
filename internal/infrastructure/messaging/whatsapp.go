package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"cvnest.backend/pkg/logger"
)

// ChannelState describes the WhatsApp session lifecycle
type ChannelState int32

const (
	StateDisconnected ChannelState = iota
	StatePairing
	StateReady
)

func (s ChannelState) String() string {
	switch s {
	case StatePairing:
		return "pairing"
	case StateReady:
		return "ready"
	default:
		return "disconnected"
	}
}

// Dispatcher is what request handlers see: can the channel send right now,
// and a best-effort text delivery that reports success instead of failing.
type Dispatcher interface {
	IsReady() bool
	SendText(ctx context.Context, phone, text string) bool
}

// WhatsAppGateway talks to the external WhatsApp session bridge over HTTP
// and supervises its connection state. The session itself (QR pairing,
// socket lifetime) lives in the bridge; this side only polls and sends.
type WhatsAppGateway struct {
	baseURL     string
	apiKey      string
	sendTimeout time.Duration
	httpClient  *http.Client

	mu    sync.RWMutex
	state ChannelState
}

// NewWhatsAppGateway creates a gateway client; state starts Disconnected
// until the first successful status poll.
func NewWhatsAppGateway(baseURL, apiKey string, sendTimeout time.Duration) *WhatsAppGateway {
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &WhatsAppGateway{
		baseURL:     baseURL,
		apiKey:      apiKey,
		sendTimeout: sendTimeout,
		httpClient:  &http.Client{Timeout: sendTimeout},
		state:       StateDisconnected,
	}
}

// State returns the current channel state
func (g *WhatsAppGateway) State() ChannelState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *WhatsAppGateway) setState(s ChannelState) {
	g.mu.Lock()
	prev := g.state
	g.state = s
	g.mu.Unlock()

	if prev != s {
		logger.Info(context.Background(), "WhatsApp channel state changed",
			zap.String("from", prev.String()),
			zap.String("to", s.String()),
		)
	}
}

// IsReady reports whether the channel can send right now
func (g *WhatsAppGateway) IsReady() bool {
	return g.State() == StateReady
}

type statusResponse struct {
	Status string `json:"status"` // "connected" | "pairing" | "disconnected"
}

// RefreshState polls the bridge status endpoint once and updates the state
func (g *WhatsAppGateway) RefreshState(ctx context.Context) ChannelState {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/status", nil)
	if err != nil {
		g.setState(StateDisconnected)
		return StateDisconnected
	}
	g.authorize(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.setState(StateDisconnected)
		return StateDisconnected
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.setState(StateDisconnected)
		return StateDisconnected
	}

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		g.setState(StateDisconnected)
		return StateDisconnected
	}

	switch status.Status {
	case "connected":
		g.setState(StateReady)
	case "pairing":
		g.setState(StatePairing)
	default:
		g.setState(StateDisconnected)
	}
	return g.State()
}

type sendRequest struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

// SendText attempts delivery and reports success. A down channel, transport
// error, timeout or non-2xx response all come back as false, never as an
// error: the caller branches on the boolean.
func (g *WhatsAppGateway) SendText(ctx context.Context, phone, text string) bool {
	if phone == "" || text == "" {
		logger.Warn(ctx, "WhatsApp send rejected: empty phone or text")
		return false
	}
	if !g.IsReady() {
		logger.Warn(ctx, "WhatsApp send skipped: channel not ready",
			zap.String("state", g.State().String()))
		return false
	}

	body, err := json.Marshal(sendRequest{Phone: phone, Text: text})
	if err != nil {
		return false
	}

	sendCtx, cancel := context.WithTimeout(ctx, g.sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(sendCtx, http.MethodPost, g.baseURL+"/send", bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	g.authorize(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		logger.Warn(ctx, "WhatsApp send failed", zap.Error(err))
		// A failed send is the strongest signal we have about the socket
		g.setState(StateDisconnected)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn(ctx, "WhatsApp send rejected by gateway",
			zap.Int("status", resp.StatusCode))
		return false
	}

	logger.Debug(ctx, "WhatsApp message delivered", zap.String("phone", maskPhone(phone)))
	return true
}

func (g *WhatsAppGateway) authorize(req *http.Request) {
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}
}

// Supervise polls the bridge status until the context is cancelled
func (g *WhatsAppGateway) Supervise(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	g.RefreshState(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.RefreshState(ctx)
		}
	}
}

// maskPhone hides all but the last four digits for logs and responses
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	masked := make([]byte, len(phone)-4)
	for i := range masked {
		masked[i] = '*'
	}
	return fmt.Sprintf("%s%s", masked, phone[len(phone)-4:])
}

// MaskPhone is the exported form used in API responses
func MaskPhone(phone string) string {
	return maskPhone(phone)
}
