package notify

import "go.uber.org/zap"

// Severity mirrors the two toast variants the storefront shows: routine
// confirmations and attention-demanding rejections.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notice is one transient user-facing message. Exactly one Notice is
// published per successful cart mutation.
type Notice struct {
	Title    string   `json:"title"`
	Message  string   `json:"message,omitempty"`
	Severity Severity `json:"severity"`
}

type Sink interface {
	Publish(Notice)
}

// ZapSink writes notices to the service log. Services have no user-facing
// toast surface of their own; the notice travels to the client in the HTTP
// response and is logged here for operators.
type ZapSink struct {
	Log *zap.Logger
}

func (s *ZapSink) Publish(n Notice) {
	s.Log.Info("notice",
		zap.String("title", n.Title),
		zap.String("message", n.Message),
		zap.String("severity", string(n.Severity)),
	)
}

// Recorder retains every published notice, newest last.
type Recorder struct {
	Notices []Notice
}

func (r *Recorder) Publish(n Notice) {
	r.Notices = append(r.Notices, n)
}
