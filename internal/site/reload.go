package site

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ReloadMessage is sent to browsers when the dataset changes.
const ReloadMessage = "reload"

const (
	writeWait       = 5 * time.Second
	defaultDebounce = 300 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans reload notifications out to connected browsers.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan string
	closed  bool
	logger  *zap.Logger
}

// NewHub returns a hub with no clients.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{clients: make(map[*websocket.Conn]chan string), logger: logger}
}

// ServeHTTP upgrades the request and holds the connection until the browser
// goes away or the hub is closed.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}

	send := make(chan string, 4)
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[conn] = send
	h.mu.Unlock()

	// The browser never sends anything; reading only detects the disconnect.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Debug("websocket read", zap.Error(err))
				}
				return
			}
		}
	}()

	defer func() {
		h.remove(conn)
		conn.Close()
		<-gone
	}()

	for {
		select {
		case msg, ok := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Broadcast queues msg for every client. Slow clients miss messages rather
// than block the sender.
func (h *Hub) Broadcast(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.clients {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Clients returns the number of connected browsers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn, ch := range h.clients {
		close(ch)
		delete(h.clients, conn)
	}
}

// Watcher reloads the dataset when a JSON file under Dir changes and tells
// the hub about it.
type Watcher struct {
	Dir      string
	Debounce time.Duration
	OnChange func() error
	Hub      *Hub
	Logger   *zap.Logger

	fw *fsnotify.Watcher
}

// NewWatcher starts watching dir and every directory below it. Call Run to
// process events.
func NewWatcher(dir string, hub *Hub, onChange func() error, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		fw.Close()
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		Dir:      dir,
		Debounce: defaultDebounce,
		OnChange: onChange,
		Hub:      hub,
		Logger:   logger,
		fw:       fw,
	}, nil
}

// Run processes file events until ctx is cancelled. Bursts of events within
// the debounce window trigger a single reload.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()

	timer := time.NewTimer(w.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.fw.Add(ev.Name)
				}
			}
			if !strings.HasSuffix(ev.Name, ".json") {
				continue
			}
			w.Logger.Debug("data file changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(w.Debounce)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	if w.OnChange != nil {
		if err := w.OnChange(); err != nil {
			w.Logger.Warn("reloading data failed, keeping previous dataset", zap.Error(err))
			return
		}
	}
	w.Logger.Info("data reloaded", zap.String("dir", w.Dir))
	if w.Hub != nil {
		w.Hub.Broadcast(ReloadMessage)
	}
}
