package realtime

import (
	"context"
	"encoding/json"
	"expvar"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const projectChannelPrefix = "gallery:project:"

var (
	wsConnectionsGauge   = expvar.NewInt("gallery_ws_connections")
	wsEventsSentTotal    = expvar.NewInt("gallery_ws_events_sent_total")
	wsEventsDroppedTotal = expvar.NewInt("gallery_ws_events_dropped_total")
)

// Client is one websocket connection watching a project
type Client struct {
	ProjectID string
	Conn      *websocket.Conn
	Send      chan []byte
}

// Hub groups clients by project. With Redis configured, events are published
// to a per-project channel and every instance relays them to its own clients.
type Hub struct {
	rooms map[string]map[*Client]struct{}
	mu    sync.RWMutex

	redis  *redis.Client
	pubsub *redis.PubSub

	register   chan *Client
	unregister chan *Client

	ctx    context.Context
	cancel context.CancelFunc

	upgrader websocket.Upgrader
}

// NewHub creates a hub. redisClient may be nil for single-instance deployments.
func NewHub(redisClient *redis.Client, allowedOrigins []string) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		redis:      redisClient,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
		upgrader:   newUpgrader(allowedOrigins),
	}

	if redisClient != nil {
		h.pubsub = redisClient.PSubscribe(ctx, projectChannelPrefix+"*")
	}

	return h
}

// Run starts the hub (call in goroutine)
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.runRedisSubscriber()
	}

	for {
		select {
		case <-h.ctx.Done():
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.ProjectID] == nil {
				h.rooms[c.ProjectID] = make(map[*Client]struct{})
			}
			h.rooms[c.ProjectID][c] = struct{}{}
			h.mu.Unlock()
			wsConnectionsGauge.Add(1)
			log.Debug().Str("project_id", c.ProjectID).Msg("Gallery client connected")

		case c := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[c.ProjectID]; ok {
				if _, exists := clients[c]; exists {
					delete(clients, c)
					close(c.Send)
					wsConnectionsGauge.Add(-1)
				}
				if len(clients) == 0 {
					delete(h.rooms, c.ProjectID)
				}
			}
			h.mu.Unlock()
			log.Debug().Str("project_id", c.ProjectID).Msg("Gallery client disconnected")
		}
	}
}

func (h *Hub) runRedisSubscriber() {
	ch := h.pubsub.Channel()

	for {
		select {
		case <-h.ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			projectID, found := strings.CutPrefix(msg.Channel, projectChannelPrefix)
			if !found || projectID == "" {
				continue
			}
			h.broadcastLocal(projectID, []byte(msg.Payload))
		}
	}
}

// broadcastLocal sends data to clients connected to THIS instance
func (h *Hub) broadcastLocal(projectID string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[projectID] {
		select {
		case c.Send <- data:
			wsEventsSentTotal.Add(1)
		default:
			wsEventsDroppedTotal.Add(1)
			log.Warn().Str("project_id", projectID).Msg("Gallery client send buffer full")
		}
	}
}

// Register adds a client
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.ctx.Done():
	}
}

// Unregister removes a client and closes its send channel
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.ctx.Done():
	}
}

// ClientCount returns the number of local clients watching projectID
func (h *Hub) ClientCount(projectID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[projectID])
}

// Publish delivers event to every client watching event.ProjectID on any instance
func (h *Hub) Publish(ctx context.Context, event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("event_type", string(event.Type)).Msg("Failed to marshal gallery event")
		return
	}

	log.Debug().Str("project_id", event.ProjectID).Str("event_type", string(event.Type)).Msg("Publishing gallery event")

	if h.redis == nil {
		h.broadcastLocal(event.ProjectID, data)
		return
	}

	channel := projectChannelPrefix + event.ProjectID
	if err := h.redis.Publish(ctx, channel, data).Err(); err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("Redis publish failed")
		h.broadcastLocal(event.ProjectID, data)
	}
}

// Shutdown stops the hub and closes every client connection
func (h *Hub) Shutdown() {
	h.cancel()
	if h.pubsub != nil {
		if err := h.pubsub.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close gallery pubsub")
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for projectID, clients := range h.rooms {
		for c := range clients {
			if c.Conn != nil {
				c.Conn.Close()
			}
		}
		delete(h.rooms, projectID)
	}
}
