package retry

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"encore.app/payment/model"
	"encore.app/payment/repository/retrytasks"
)

// Handler executes one attempt of a task. Returning nil deletes the task;
// any error (or panic) schedules the next attempt.
type Handler func(ctx context.Context, task *model.RetryTask) error

// Publisher receives the terminal event for tasks that failed every attempt.
type Publisher interface {
	PublishRetryExhausted(ctx context.Context, event *model.RetryExhaustedEvent) error
}

type Business interface {
	// AddTask persists a task due at now + InitialDelay and returns its id.
	AddTask(ctx context.Context, taskType model.RetryTaskType, payload any, opts TaskOptions) (string, error)

	// RegisterHandler binds a handler to a task type. Must be called before
	// Run; tasks of an unregistered type fail their attempts.
	RegisterHandler(taskType model.RetryTaskType, handler Handler)

	// Run polls for due tasks on the configured interval until ctx is
	// cancelled, then waits for in-flight attempts to finish.
	Run(ctx context.Context)

	// ListTasks returns queued tasks for operational inspection.
	ListTasks(ctx context.Context, limit, offset int32) ([]*model.RetryTask, error)
}

type TaskOptions struct {
	MaxRetries   int32
	InitialDelay time.Duration
}

type Config struct {
	PollInterval      time.Duration
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
	Jitter            bool
	BatchSize         int32
}

// DefaultConfig returns the production scheduler settings.
func DefaultConfig() Config {
	return Config{
		PollInterval:      5 * time.Second,
		BaseDelay:         time.Second,
		MaxDelay:          10 * time.Minute,
		BackoffMultiplier: 2.0,
		Jitter:            true,
		BatchSize:         100,
	}
}

type scheduler struct {
	repo      retrytasks.Querier
	publisher Publisher
	cfg       Config

	mu       sync.RWMutex
	handlers map[model.RetryTaskType]Handler

	// inflight guards against two overlapping attempts of the same task id.
	inflight sync.Map
	wg       sync.WaitGroup

	now       func() time.Time
	randFloat func() float64
}

// NewScheduler creates a retry scheduler over an injected task store.
func NewScheduler(repo retrytasks.Querier, publisher Publisher, cfg Config) Business {
	return &scheduler{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		handlers:  make(map[model.RetryTaskType]Handler),
		now:       time.Now,
		randFloat: rand.Float64,
	}
}

func (s *scheduler) RegisterHandler(taskType model.RetryTaskType, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[taskType] = handler
}

func (s *scheduler) handler(taskType model.RetryTaskType) (Handler, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.handlers[taskType]
	return h, ok
}
