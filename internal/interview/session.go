package interview

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Result records the outcome of one answered question. It is created exactly
// once; re-answering the same question is silently rejected.
type Result struct {
	QuestionID string        `json:"question_id"`
	Selected   int           `json:"selected"`
	Correct    bool          `json:"correct"`
	TimeSpent  time.Duration `json:"time_spent"`
	UsedHint   bool          `json:"used_hint"`
}

// Session is a snapshot of quiz progress. Results is append-only, one entry
// per answered question, in answer order.
type Session struct {
	ID        string        `json:"id"`
	Topic     string        `json:"topic"`
	Questions []Question    `json:"questions"`
	Results   []Result      `json:"results"`
	Index     int           `json:"index"`
	Complete  bool          `json:"complete"`
	Shuffled  bool          `json:"shuffled"`
	StartedAt time.Time     `json:"started_at"`
	TotalTime time.Duration `json:"total_time"`
}

// Score is derived from the recorded results, never stored. Percentage uses
// half-up rounding, so 2 of 3 is 67.
type Score struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Scheduler defers fn by d. The zero-delay case is how completion callbacks
// reach observers: on the next scheduling turn, never inline during the state
// transition that completed the session.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Config wires a Controller to its question list.
type Config struct {
	Topic      string
	Questions  []Question
	TimeLimit  time.Duration // 0 = unlimited
	Shuffle    bool
	OnComplete func(Session)

	// Scheduler, Now and Rand are injectable for tests; nil selects the
	// real clock, a time.AfterFunc scheduler and a time-seeded source.
	Scheduler Scheduler
	Now       func() time.Time
	Rand      *rand.Rand
}

// Controller owns one quiz session. Navigation, answering and hints all
// clamp or no-op at boundaries rather than failing. A mutex serializes every
// method against the deferred completion delivery, which with the default
// scheduler arrives on a timer goroutine.
type Controller struct {
	mu      sync.Mutex
	cfg     Config
	sched   Scheduler
	now     func() time.Time
	rng     *rand.Rand
	session Session
	gen     uint64 // bumped on restart/close; suppresses stale callbacks

	// transient state for the current question
	selected  int
	hintShown bool
	shownAt   time.Time
}

func New(cfg Config) *Controller {
	c := &Controller{
		cfg:   cfg,
		sched: cfg.Scheduler,
		now:   cfg.Now,
		rng:   cfg.Rand,
	}
	if c.sched == nil {
		c.sched = timerScheduler{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c.session = c.freshSession()
	c.clearTransient()
	return c
}

func (c *Controller) freshSession() Session {
	qs := make([]Question, len(c.cfg.Questions))
	copy(qs, c.cfg.Questions)
	if c.cfg.Shuffle {
		c.rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	}
	return Session{
		ID:        uuid.NewString(),
		Topic:     c.cfg.Topic,
		Questions: qs,
		Results:   make([]Result, 0, len(qs)),
		Shuffled:  c.cfg.Shuffle,
		StartedAt: c.now(),
	}
}

func (c *Controller) clearTransient() {
	c.selected = -1
	c.hintShown = false
	c.shownAt = c.now()
}

// Session returns a copy of the current session snapshot.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionLocked()
}

func (c *Controller) sessionLocked() Session {
	s := c.session
	s.Questions = append([]Question(nil), c.session.Questions...)
	s.Results = append([]Result(nil), c.session.Results...)
	return s
}

func (c *Controller) Topic() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Topic
}

func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Index
}

func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.session.Questions)
}

func (c *Controller) IsComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Complete
}

// CurrentQuestion returns the question at the navigation position, or a zero
// Question for an empty session.
func (c *Controller) CurrentQuestion() Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentQuestion()
}

func (c *Controller) currentQuestion() Question {
	if len(c.session.Questions) == 0 {
		return Question{}
	}
	return c.session.Questions[c.session.Index]
}

func (c *Controller) resultFor(id string) (Result, bool) {
	for _, r := range c.session.Results {
		if r.QuestionID == id {
			return r, true
		}
	}
	return Result{}, false
}

func (c *Controller) isAnswered() bool {
	_, ok := c.resultFor(c.currentQuestion().ID)
	return ok
}

// IsAnswered reports whether the current question already has a result.
func (c *Controller) IsAnswered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isAnswered()
}

// SelectedAnswer is the option chosen for the current question, or -1.
func (c *Controller) SelectedAnswer() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// ShowExplanation reports whether the current question's explanation should
// be displayed, which is the case once it has been answered.
func (c *Controller) ShowExplanation() bool { return c.IsAnswered() }

// ShowHint reports whether the hint is visible for the current question.
func (c *Controller) ShowHint() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hintShown
}

// SelectAnswer records the answer for the current question. Answers are
// immutable once submitted: a second call for the same question is silently
// rejected and the original result preserved. Answering the last open
// question completes the session and notifies OnComplete on the next
// scheduling turn with the fully updated session snapshot.
func (c *Controller) SelectAnswer(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	q := c.currentQuestion()
	if q.ID == "" || i < 0 || i >= len(q.Options) {
		return
	}
	if _, ok := c.resultFor(q.ID); ok {
		return
	}

	c.session.Results = append(c.session.Results, Result{
		QuestionID: q.ID,
		Selected:   i,
		Correct:    i == q.Correct,
		TimeSpent:  c.now().Sub(c.shownAt),
		UsedHint:   c.hintShown,
	})
	c.selected = i

	if len(c.session.Results) == len(c.session.Questions) {
		c.session.Complete = true
		c.session.TotalTime = c.now().Sub(c.session.StartedAt)
		c.notifyComplete()
	}
}

// notifyComplete requires c.mu held. The generation check and the snapshot
// are taken under the lock; the callback itself runs without it so observers
// may call back into the controller.
func (c *Controller) notifyComplete() {
	if c.cfg.OnComplete == nil {
		return
	}
	g := c.gen
	c.sched.AfterFunc(0, func() {
		c.mu.Lock()
		if g != c.gen {
			c.mu.Unlock()
			return // session restarted or closed before delivery
		}
		snap := c.sessionLocked()
		c.mu.Unlock()
		c.cfg.OnComplete(snap)
	})
}

// Next moves to the following question, no-op at the last one.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.navigate(c.session.Index + 1)
}

// Prev moves to the preceding question, no-op at the first one.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.navigate(c.session.Index - 1)
}

func (c *Controller) navigate(to int) {
	if to < 0 || to > len(c.session.Questions)-1 || to == c.session.Index {
		return
	}
	c.session.Index = to
	c.clearTransient()
	// Revisiting an answered question re-displays its recorded state.
	if r, ok := c.resultFor(c.currentQuestion().ID); ok {
		c.selected = r.Selected
		c.hintShown = r.UsedHint
	}
}

// UseHint reveals the hint for the current question only. The flag is folded
// into the Result if the question is answered afterwards; it never creates a
// result by itself. Once answered, hint visibility tracks the result.
func (c *Controller) UseHint() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isAnswered() {
		return
	}
	c.hintShown = true
}

// Restart discards all results and produces an entirely fresh session,
// re-shuffling the question order when shuffling was requested. A completion
// callback still in flight for the old session is suppressed.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.session = c.freshSession()
	c.clearTransient()
}

// Close suppresses any pending completion callback. The controller must not
// notify observers after disposal.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
}

// Score derives the running score from the recorded results.
func (c *Controller) Score() Score {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ScoreOf(c.session.Results)
}

// ScoreOf computes the score for a result list. Percentage is half-up
// rounded and 0 for an empty list.
func ScoreOf(results []Result) Score {
	s := Score{Total: len(results)}
	for _, r := range results {
		if r.Correct {
			s.Correct++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
	}
	return s
}

// TimeLimit is the configured limit, 0 for unlimited.
func (c *Controller) TimeLimit() time.Duration { return c.cfg.TimeLimit }

// TimeRemaining is the time left under the session limit, clamped at zero.
// It is always 0 for unlimited sessions; check TimeLimit to distinguish.
func (c *Controller) TimeRemaining() time.Duration {
	if c.cfg.TimeLimit <= 0 {
		return 0
	}
	c.mu.Lock()
	started := c.session.StartedAt
	c.mu.Unlock()
	rem := c.cfg.TimeLimit - c.now().Sub(started)
	if rem < 0 {
		rem = 0
	}
	return rem
}
