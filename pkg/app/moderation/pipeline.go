package moderation

import (
	"context"
	"strings"
	"sync"

	domain "github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/feedguard/feedguard/pkg/infra/classifier"
	"github.com/feedguard/feedguard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

// State is the pipeline's position in the Idle → Pending → Settled cycle.
// Every edit re-enters the cycle.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSettled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSettled:
		return "settled"
	default:
		return "idle"
	}
}

// Update is published to subscribers whenever the pipeline's verdict or
// state changes. Verdict is nil unless State is StateSettled.
type Update struct {
	State   State
	Text    string
	Verdict *domain.Verdict
}

// DisplayState projects the update onto the three-state UI contract.
func (u Update) DisplayState() domain.DisplayState {
	switch {
	case u.State == StatePending:
		return domain.DisplayChecking
	case u.Verdict != nil && u.Verdict.IsToxic:
		return domain.DisplayFlagged
	default:
		return domain.DisplayClear
	}
}

// Pipeline is the moderation state machine a text composer drives while the
// user types and at submit time. One instance per composer; the verdict
// cache may be shared across instances since entries are pure functions of
// the text.
//
// Classification runs against a fail-open client: the pipeline never blocks
// a submission because moderation is unavailable.
type Pipeline struct {
	classifier classifier.Client
	cache      *ResultCache
	scheduler  Scheduler
	logger     *logrus.Logger
	settings   Settings

	mu          sync.Mutex
	state       State
	buffer      string
	verdict     *domain.Verdict
	pending     Timer
	subscribers map[int]func(Update)
	nextSubID   int
	closed      bool

	ctx    context.Context
	cancel context.CancelFunc
}

func NewPipeline(
	client classifier.Client,
	cache *ResultCache,
	scheduler Scheduler,
	logger *logrus.Logger,
	settings Settings,
) *Pipeline {
	if cache == nil {
		cache = NewResultCache(settings.CacheBound)
	}
	if scheduler == nil {
		scheduler = NewScheduler()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pipeline{
		classifier:  client,
		cache:       cache,
		scheduler:   scheduler,
		logger:      logger,
		settings:    settings.withDefaults(),
		subscribers: make(map[int]func(Update)),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Subscribe registers a callback for verdict updates and returns an
// unsubscribe function.
func (p *Pipeline) Subscribe(fn func(Update)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

// State returns the current state and settled verdict, if any.
func (p *Pipeline) State() (State, *domain.Verdict) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.verdict
}

// OnTextChanged is called on every keystroke. It debounces classification
// and guarantees that only a verdict for the current buffer is ever
// published; results for superseded buffers are discarded.
func (p *Pipeline) OnTextChanged(text string) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}

	if p.pending != nil {
		p.pending.Cancel()
		p.pending = nil
	}

	if strings.TrimSpace(text) == "" {
		p.buffer = text
		p.verdict = nil
		p.state = StateIdle
		update := Update{State: StateIdle, Text: text}
		subs := p.snapshotSubscribers()
		p.mu.Unlock()
		p.notify(subs, update)
		return
	}

	delta := len(text) - len(p.buffer)
	if delta < 0 {
		delta = -delta
	}
	if delta > p.settings.LargeEditDelta && p.state == StateSettled {
		// A big edit invalidates the settled verdict right away instead of
		// leaving a stale warning on screen while the next check debounces.
		p.verdict = nil
	}

	p.buffer = text
	p.state = StatePending
	p.pending = p.scheduler.AfterFunc(p.settings.Debounce, func() {
		p.runCheck(text)
	})

	update := Update{State: StatePending, Text: text}
	subs := p.snapshotSubscribers()
	p.mu.Unlock()
	p.notify(subs, update)
}

func (p *Pipeline) runCheck(text string) {
	if verdict, ok := p.cache.Get(text); ok {
		prometheus.ModerationCacheLookups.WithLabelValues("hit").Inc()
		p.settle(text, verdict)
		return
	}
	prometheus.ModerationCacheLookups.WithLabelValues("miss").Inc()

	ctx, cancel := context.WithTimeout(p.ctx, p.settings.ClassifyTimeout)
	defer cancel()

	verdict, err := p.classifier.Classify(ctx, text)
	if err != nil {
		// Only possible for blank input, which never reaches here; degrade
		// the same way the fail-open client would.
		p.logger.WithError(err).Warn("classification error in debounce check")
		verdict = domain.SafeDefault(text)
	}
	p.cache.Put(text, verdict)
	p.settle(text, verdict)
}

// settle publishes a verdict only if the buffer still matches the text the
// verdict belongs to.
func (p *Pipeline) settle(text string, verdict domain.Verdict) {
	p.mu.Lock()
	if p.closed || p.buffer != text {
		p.mu.Unlock()
		prometheus.StaleVerdictsDiscarded.Inc()
		return
	}
	p.state = StateSettled
	p.verdict = &verdict
	update := Update{State: StateSettled, Text: text, Verdict: &verdict}
	subs := p.snapshotSubscribers()
	p.mu.Unlock()

	prometheus.ModerationVerdicts.WithLabelValues(verdict.Level.String()).Inc()
	p.notify(subs, update)
}

// Finalize resolves a ContentRecord for the exact submitted text. It never
// fails for moderation reasons; the only error is blank input, which the
// composer must filter before calling.
func (p *Pipeline) Finalize(ctx context.Context, text string) (domain.ContentRecord, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ContentRecord{}, domain.ErrEmptyContent
	}

	verdict, ok := p.cache.Get(text)
	if ok {
		prometheus.ModerationCacheLookups.WithLabelValues("hit").Inc()
	} else {
		prometheus.ModerationCacheLookups.WithLabelValues("miss").Inc()
		classifyCtx, cancel := context.WithTimeout(ctx, p.settings.ClassifyTimeout)
		var err error
		verdict, err = p.classifier.Classify(classifyCtx, text)
		cancel()
		if err != nil {
			p.logger.WithError(err).Warn("classification error at submit")
			verdict = domain.SafeDefault(text)
		}
		p.cache.Put(text, verdict)
	}

	record := domain.ContentRecord{
		DisplayedText: text,
		Verdict:       &verdict,
	}

	if verdict.IsToxic {
		record.OriginalText = text
		displayed := verdict.CensoredText
		if displayed == "" {
			censorCtx, cancel := context.WithTimeout(ctx, p.settings.CensorTimeout)
			var err error
			displayed, err = p.classifier.Censor(censorCtx, text, p.settings.censorLevel())
			cancel()
			if err != nil || displayed == "" {
				// Accepted gap: a flagged submission goes out uncensored
				// rather than blocking the user.
				p.logger.WithError(err).Warn("censoring unavailable at submit, posting uncensored")
				displayed = text
			}
		}
		record.DisplayedText = displayed
	}

	return record, nil
}

// Close cancels pending debounce work and any in-flight classification.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.pending != nil {
		p.pending.Cancel()
		p.pending = nil
	}
	p.cancel()
}

func (p *Pipeline) snapshotSubscribers() []func(Update) {
	subs := make([]func(Update), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func (p *Pipeline) notify(subs []func(Update), update Update) {
	for _, fn := range subs {
		fn(update)
	}
}
