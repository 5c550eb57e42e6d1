package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"notes-app/internal/logger"
)

const (
	component   = "ShutdownManager"
	stepTimeout = 5 * time.Second
)

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type step struct {
	name      string
	component Shutdownable
}

// Manager runs registered shutdown steps once, newest first.
type Manager struct {
	steps   []step
	logger  logger.Logger
	mu      sync.Mutex
	done    chan struct{}
	signals chan os.Signal
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger: log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (m *Manager) Register(name string, c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.steps = append(m.steps, step{name: name, component: c})
}

// Listen calls onSignal from a background goroutine when SIGINT or SIGTERM
// arrives. It stops listening on Shutdown.
func (m *Manager) Listen(onSignal func(os.Signal)) {
	m.mu.Lock()
	if m.signals != nil {
		m.mu.Unlock()
		return
	}
	m.signals = make(chan os.Signal, 1)
	m.mu.Unlock()

	signal.Notify(m.signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		for {
			select {
			case sig := <-m.signals:
				m.logger.Info(component, "shutdown signal received", map[string]interface{}{
					"signal": sig.String(),
				})
				onSignal(sig)
			case <-m.ctx.Done():
				return
			}
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.steps),
	})

	if m.signals != nil {
		signal.Stop(m.signals)
	}
	m.cancel()

	for i := len(m.steps) - 1; i >= 0; i-- {
		s := m.steps[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			s.component.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug(component, "shutdown step completed", map[string]interface{}{
				"step": s.name,
			})
		case <-time.After(stepTimeout):
			m.logger.Warning(component, "shutdown step timeout", map[string]interface{}{
				"step": s.name,
			})
		}
	}

	m.logger.Info(component, "shutdown sequence completed", nil)
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
