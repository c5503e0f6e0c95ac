package gesture

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/lixenwraith/glowfield/vmath"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Frame is one perception result for one video frame, pushed by the external
// detection process. Hands carry 21 xyz landmark triplets each; Objects carry
// labeled boxes. Either path reduces to the boolean signal.
type Frame struct {
	Hands   [][][3]float64 `json:"hands"`
	Objects []Detection    `json:"objects"`
}

// Reduce folds a frame into the boolean: a fist on any hand, or the watched
// object category present at sufficient confidence
func (f *Frame) Reduce(category string, minScore float64) bool {
	for _, raw := range f.Hands {
		hand := HandFrame{Landmarks: make([]vmath.Vec3F, len(raw))}
		for i, lm := range raw {
			hand.Landmarks[i] = vmath.Vec3F{X: lm[0], Y: lm[1], Z: lm[2]}
		}
		if hand.Fist() {
			return true
		}
	}
	return Present(f.Objects, category, minScore)
}

// Feed consumes detection frames over a websocket and pushes the reduced
// boolean into its sink, the single writer of the gesture signal. It runs decoupled from the render loop:
// if detection lags, effects keep the last value; if it outpaces rendering,
// intermediate values are simply overwritten.
//
// Any failure (no endpoint, camera denied upstream, malformed frame stream)
// leaves the signal false and the feed redialing; the stage degrades to the
// gesture-inactive branch and never crashes.
type Feed struct {
	url         string
	category    string
	minScore    float64
	sink        func(active bool)
	log         *zap.Logger
	redialDelay time.Duration

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
	done   chan struct{}
}

// NewFeed prepares a feed against a ws:// detection endpoint. sink receives
// the reduced boolean, one write per frame; the stage's SetGesture fits
// directly. Run must be called on its own goroutine.
func NewFeed(url, category string, minScore float64, redialDelay time.Duration, sink func(active bool), log *zap.Logger) *Feed {
	if log == nil {
		log = zap.NewNop()
	}
	return &Feed{
		url:         url,
		category:    category,
		minScore:    minScore,
		sink:        sink,
		log:         log,
		redialDelay: redialDelay,
		done:        make(chan struct{}),
	}
}

// Run dials and reads frames until Close. Blocking.
func (f *Feed) Run() {
	for {
		select {
		case <-f.done:
			return
		default:
		}

		conn, _, err := websocket.DefaultDialer.Dial(f.url, nil)
		if err != nil {
			f.log.Warn("detection feed dial failed", zap.String("url", f.url), zap.Error(err))
			f.sink(false)
			select {
			case <-f.done:
				return
			case <-time.After(f.redialDelay):
			}
			continue
		}

		f.mu.Lock()
		if f.closed {
			f.mu.Unlock()
			conn.Close()
			return
		}
		f.conn = conn
		f.mu.Unlock()

		f.log.Info("detection feed connected", zap.String("url", f.url))
		f.readLoop(conn)
		conn.Close()
		f.sink(false)
	}
}

func (f *Feed) readLoop(conn *websocket.Conn) {
	for {
		select {
		case <-f.done:
			return
		default:
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			f.log.Warn("detection feed read failed", zap.Error(err))
			return
		}

		var frame Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			// Bad frames are skipped, not fatal; the last value stands
			f.log.Debug("detection frame decode failed", zap.Error(err))
			continue
		}

		f.sink(frame.Reduce(f.category, f.minScore))
	}
}

// Close stops the feed and clears the signal. Idempotent.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	close(f.done)
	if f.conn != nil {
		// Unblocks a pending ReadMessage
		f.conn.Close()
	}
	f.sink(false)
}
