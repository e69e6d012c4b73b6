package notify

import "sync"

// Delivery is one recorded notification request.
type Delivery struct {
	Kind   Kind
	UserID int64
}

// Recorder is an in-memory Notifier that keeps a cumulative log of every
// requested delivery. Counts accumulate across a scenario; the log is only
// extended, never reset.
type Recorder struct {
	mu   sync.Mutex
	sent []Delivery
}

var _ Notifier = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SendWelcome(userID int64) {
	r.record(KindWelcome, userID)
}

func (r *Recorder) SendPasswordReset(userID int64) {
	r.record(KindPasswordReset, userID)
}

// Count reports the cumulative number of requested deliveries.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

// Deliveries returns a copy of the delivery log in request order.
func (r *Recorder) Deliveries() []Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Delivery, len(r.sent))
	copy(out, r.sent)
	return out
}

func (r *Recorder) record(kind Kind, userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Delivery{Kind: kind, UserID: userID})
}
