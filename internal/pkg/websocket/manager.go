package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
)

const writeWait = 10 * time.Second

// Client is one open connection. Writes are serialized because the poll
// loop and the read loop both send frames.
type Client struct {
	ID     string
	UserID string
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// Send writes one event frame
func (c *Client) Send(event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// Manager upgrades authenticated requests and tracks open connections per user
type Manager struct {
	sync.RWMutex
	clients  map[string]map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request of an authenticated user and runs
// handleClient for the lifetime of the connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	rc := requestcontext.FromEchoContext(c)
	if rc.UserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &Client{ID: uuid.New().String(), UserID: rc.UserID, Conn: ws}
	m.AddClient(client)
	defer m.RemoveClient(client)

	return handleClient(client)
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	conns, ok := m.clients[client.UserID]
	if !ok {
		conns = make(map[string]*Client)
		m.clients[client.UserID] = conns
	}
	conns[client.ID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	conns := m.clients[client.UserID]
	delete(conns, client.ID)
	if len(conns) == 0 {
		delete(m.clients, client.UserID)
	}
}

// ClientCount returns the number of open connections of a user
func (m *Manager) ClientCount(userID string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[userID])
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(client *Client, code string, message string) error {
	return client.Send(constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// SendCategorizedError sends an error message based on severity level
func (m *Manager) SendCategorizedError(client *Client, err error, code string, severity constants.ErrorSeverity) error {
	logger.Warn("WebSocket operation failed",
		logger.UserID(client.UserID),
		logger.String("error_code", code),
		logger.String("severity", severityString(severity)),
		logger.Err(err))

	switch severity {
	case constants.ErrorSeverityClient:
		return m.SendErrorMessage(client, code, err.Error())
	case constants.ErrorSeveritySecurity:
		return m.SendErrorMessage(client, code, "Access denied")
	default:
		return m.SendErrorMessage(client, code, "Operation failed")
	}
}

func severityString(severity constants.ErrorSeverity) string {
	switch severity {
	case constants.ErrorSeverityClient:
		return "client"
	case constants.ErrorSeverityServer:
		return "server"
	case constants.ErrorSeveritySecurity:
		return "security"
	default:
		return "unknown"
	}
}

// NotifyUser sends an event to every open connection of a user
func (m *Manager) NotifyUser(userID string, event string, data interface{}) {
	logger.Debug("Notifying user",
		logger.UserID(userID),
		logger.String("event", event))

	m.RLock()
	targets := make([]*Client, 0, len(m.clients[userID]))
	for _, c := range m.clients[userID] {
		targets = append(targets, c)
	}
	m.RUnlock()

	for _, c := range targets {
		if err := c.Send(event, data); err != nil {
			logger.Warn("Error sending message to client",
				logger.UserID(userID),
				logger.String("client_id", c.ID),
				logger.Err(err))
		}
	}
}
