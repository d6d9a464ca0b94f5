package interview_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algowalk/internal/interview"
)

// fakeScheduler queues deferred tasks until flushed, modeling the
// next-scheduling-turn semantics without real timers.
type fakeScheduler struct {
	tasks []func()
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) func() {
	i := len(s.tasks)
	s.tasks = append(s.tasks, fn)
	return func() { s.tasks[i] = nil }
}

func (s *fakeScheduler) flush() {
	pending := s.tasks
	s.tasks = nil
	for _, fn := range pending {
		if fn != nil {
			fn()
		}
	}
}

// fakeClock advances only when told to.
type fakeClock struct {
	at time.Time
}

func (c *fakeClock) now() time.Time          { return c.at }
func (c *fakeClock) advance(d time.Duration) { c.at = c.at.Add(d) }

func threeQuestions() []interview.Question {
	return []interview.Question{
		{ID: "q1", Prompt: "first", Options: []string{"a", "b", "c", "d"}, Correct: 1, Hint: "h1"},
		{ID: "q2", Prompt: "second", Options: []string{"a", "b", "c", "d"}, Correct: 2},
		{ID: "q3", Prompt: "third", Options: []string{"a", "b", "c", "d"}, Correct: 0},
	}
}

var _ = Describe("Controller", func() {
	var (
		sched *fakeScheduler
		clock *fakeClock
	)

	newController := func(cfg interview.Config) *interview.Controller {
		cfg.Scheduler = sched
		cfg.Now = clock.now
		if cfg.Questions == nil {
			cfg.Questions = threeQuestions()
		}
		return interview.New(cfg)
	}

	BeforeEach(func() {
		sched = &fakeScheduler{}
		clock = &fakeClock{at: time.Unix(1700000000, 0)}
	})

	Describe("answering", func() {
		It("records the result with time spent and hint usage", func() {
			c := newController(interview.Config{Topic: "lru"})

			c.UseHint()
			clock.advance(7 * time.Second)
			c.SelectAnswer(1)

			s := c.Session()
			Expect(s.Results).To(HaveLen(1))
			Expect(s.Results[0].QuestionID).To(Equal("q1"))
			Expect(s.Results[0].Correct).To(BeTrue())
			Expect(s.Results[0].TimeSpent).To(Equal(7 * time.Second))
			Expect(s.Results[0].UsedHint).To(BeTrue())
		})

		It("silently rejects a second answer for the same question", func() {
			c := newController(interview.Config{})

			c.SelectAnswer(1)
			c.SelectAnswer(3)

			s := c.Session()
			Expect(s.Results).To(HaveLen(1))
			Expect(s.Results[0].Selected).To(Equal(1))
			Expect(s.Results[0].Correct).To(BeTrue())
		})

		It("ignores out-of-range option indexes", func() {
			c := newController(interview.Config{})

			c.SelectAnswer(-1)
			c.SelectAnswer(4)

			Expect(c.Session().Results).To(BeEmpty())
			Expect(c.IsAnswered()).To(BeFalse())
		})

		It("shows the explanation once answered", func() {
			c := newController(interview.Config{})

			Expect(c.ShowExplanation()).To(BeFalse())
			c.SelectAnswer(0)
			Expect(c.ShowExplanation()).To(BeTrue())
		})
	})

	Describe("navigation", func() {
		It("clamps at both bounds", func() {
			c := newController(interview.Config{})

			c.Prev()
			Expect(c.Index()).To(Equal(0))

			c.Next()
			c.Next()
			c.Next()
			c.Next()
			Expect(c.Index()).To(Equal(2))
		})

		It("restores recorded state when revisiting an answered question", func() {
			c := newController(interview.Config{})

			c.UseHint()
			c.SelectAnswer(3)
			c.Next()

			Expect(c.SelectedAnswer()).To(Equal(-1))
			Expect(c.ShowHint()).To(BeFalse())

			c.Prev()
			Expect(c.SelectedAnswer()).To(Equal(3))
			Expect(c.ShowHint()).To(BeTrue())
			Expect(c.ShowExplanation()).To(BeTrue())
		})

		It("clears transient state when moving to an unanswered question", func() {
			c := newController(interview.Config{})

			c.UseHint()
			c.Next()

			Expect(c.ShowHint()).To(BeFalse())
			Expect(c.SelectedAnswer()).To(Equal(-1))
		})
	})

	Describe("hints", func() {
		It("flags only the current question and is captured on answer", func() {
			c := newController(interview.Config{})

			c.Next()
			c.UseHint()
			c.SelectAnswer(2)
			c.Prev()
			c.SelectAnswer(0)

			s := c.Session()
			Expect(s.Results[0].QuestionID).To(Equal("q2"))
			Expect(s.Results[0].UsedHint).To(BeTrue())
			Expect(s.Results[1].QuestionID).To(Equal("q1"))
			Expect(s.Results[1].UsedHint).To(BeFalse())
		})

		It("does not create a result by itself", func() {
			c := newController(interview.Config{})

			c.UseHint()
			Expect(c.Session().Results).To(BeEmpty())
		})
	})

	Describe("completion", func() {
		It("fires the callback exactly once, deferred, with the final snapshot", func() {
			var got []interview.Session
			c := newController(interview.Config{
				OnComplete: func(s interview.Session) { got = append(got, s) },
			})

			c.SelectAnswer(1)
			c.Next()
			c.SelectAnswer(2)
			c.Next()
			c.SelectAnswer(3)

			// Not called inline during the completing transition.
			Expect(got).To(BeEmpty())
			Expect(c.IsComplete()).To(BeTrue())

			sched.flush()
			sched.flush()

			Expect(got).To(HaveLen(1))
			Expect(got[0].Complete).To(BeTrue())
			Expect(got[0].Results).To(HaveLen(3))
		})

		It("suppresses the callback after a restart", func() {
			calls := 0
			c := newController(interview.Config{
				OnComplete: func(interview.Session) { calls++ },
			})

			c.SelectAnswer(0)
			c.Next()
			c.SelectAnswer(0)
			c.Next()
			c.SelectAnswer(0)
			c.Restart()
			sched.flush()

			Expect(calls).To(BeZero())
		})

		It("suppresses the callback after Close", func() {
			calls := 0
			c := newController(interview.Config{
				OnComplete: func(interview.Session) { calls++ },
			})

			c.SelectAnswer(0)
			c.Next()
			c.SelectAnswer(0)
			c.Next()
			c.SelectAnswer(0)
			c.Close()
			sched.flush()

			Expect(calls).To(BeZero())
		})

		It("records total time at completion", func() {
			c := newController(interview.Config{})

			c.SelectAnswer(0)
			clock.advance(30 * time.Second)
			c.Next()
			c.SelectAnswer(0)
			c.Next()
			clock.advance(15 * time.Second)
			c.SelectAnswer(0)

			Expect(c.Session().TotalTime).To(Equal(45 * time.Second))
		})
	})

	Describe("scoring", func() {
		It("derives correct, total and half-up rounded percentage", func() {
			c := newController(interview.Config{})

			c.SelectAnswer(1) // correct
			c.Next()
			c.SelectAnswer(2) // correct
			c.Next()
			c.SelectAnswer(3) // wrong

			Expect(c.Score()).To(Equal(interview.Score{Correct: 2, Total: 3, Percentage: 67}))
		})

		It("is zero for an unanswered session", func() {
			c := newController(interview.Config{})

			Expect(c.Score()).To(Equal(interview.Score{}))
		})
	})

	Describe("restart", func() {
		It("produces an entirely fresh session", func() {
			c := newController(interview.Config{})

			c.SelectAnswer(1)
			c.Next()
			old := c.Session()

			c.Restart()
			s := c.Session()

			Expect(s.ID).NotTo(Equal(old.ID))
			Expect(s.Results).To(BeEmpty())
			Expect(s.Index).To(BeZero())
			Expect(c.SelectedAnswer()).To(Equal(-1))
		})

		It("reshuffles deterministically with the injected source", func() {
			c := newController(interview.Config{
				Shuffle: true,
				Rand:    rand.New(rand.NewSource(42)),
			})

			ids := func(s interview.Session) []string {
				out := make([]string, len(s.Questions))
				for i, q := range s.Questions {
					out[i] = q.ID
				}
				return out
			}

			first := ids(c.Session())
			Expect(first).To(ConsistOf("q1", "q2", "q3"))
			c.Restart()
			Expect(ids(c.Session())).To(ConsistOf("q1", "q2", "q3"))
		})
	})

	Describe("time limit", func() {
		It("counts down against the clock and clamps at zero", func() {
			c := newController(interview.Config{TimeLimit: time.Minute})

			Expect(c.TimeRemaining()).To(Equal(time.Minute))
			clock.advance(40 * time.Second)
			Expect(c.TimeRemaining()).To(Equal(20 * time.Second))
			clock.advance(time.Hour)
			Expect(c.TimeRemaining()).To(BeZero())
		})

		It("reports zero for unlimited sessions", func() {
			c := newController(interview.Config{})

			Expect(c.TimeLimit()).To(BeZero())
			Expect(c.TimeRemaining()).To(BeZero())
		})
	})

	Describe("default scheduler", func() {
		It("delivers the completion callback exactly once off the timer goroutine", func() {
			delivered := make(chan interview.Session, 4)
			c := interview.New(interview.Config{
				Topic:      "lru",
				Questions:  threeQuestions(),
				OnComplete: func(s interview.Session) { delivered <- s },
			})

			for i := 0; i < c.Len(); i++ {
				c.SelectAnswer(0)
				c.Next()
			}

			var got interview.Session
			Eventually(delivered).Should(Receive(&got))
			Expect(got.Complete).To(BeTrue())
			Expect(got.Results).To(HaveLen(3))
			Consistently(delivered, "100ms").ShouldNot(Receive())
			c.Close()
		})

		It("stays serialized against an immediate restart", func() {
			delivered := make(chan interview.Session, 32)
			c := interview.New(interview.Config{
				Topic:      "lru",
				Questions:  threeQuestions(),
				OnComplete: func(s interview.Session) { delivered <- s },
			})

			// Complete and immediately restart, repeatedly. A delivery may be
			// suppressed by the restart, but one that goes through must carry
			// the completed snapshot, never the fresh session.
			for i := 0; i < 10; i++ {
				for j := 0; j < c.Len(); j++ {
					c.SelectAnswer(0)
					c.Next()
				}
				c.Restart()
			}
			c.Close()

			for {
				select {
				case s := <-delivered:
					Expect(s.Complete).To(BeTrue())
					Expect(s.Results).To(HaveLen(3))
				case <-time.After(100 * time.Millisecond):
					return
				}
			}
		})
	})

	Describe("empty question list", func() {
		It("stays inert", func() {
			c := newController(interview.Config{Questions: []interview.Question{}})

			c.SelectAnswer(0)
			c.Next()
			c.Prev()

			Expect(c.IsComplete()).To(BeFalse())
			Expect(c.Session().Results).To(BeEmpty())
		})
	})
})
