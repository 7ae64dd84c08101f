package monitor

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"manufac-asset-backend/internal/metrics"
	"manufac-asset-backend/internal/model"
	"manufac-asset-backend/internal/store"
)

var (
	// ErrAlreadyMonitoring is returned when a machine already has an active session.
	ErrAlreadyMonitoring = errors.New("machine is already being monitored")
	// ErrNotMonitored is returned when stopping a machine that has no active session.
	ErrNotMonitored = errors.New("machine is not currently being monitored")
)

// Notifier receives the ID of a machine whose monitoring session has ended.
type Notifier interface {
	Dispatch(machineID uint)
}

// session is the state of one active monitoring session.
type session struct {
	id        uuid.UUID
	machineID uint
	startedAt time.Time
	cancel    context.CancelFunc
}

// Service drives production sampling for machines. Each machine gets at most one
// active session, tracked in an explicit registry, so machines can be monitored
// independently without interfering with each other.
type Service struct {
	store    store.Store
	tick     time.Duration
	notifier Notifier

	mu       sync.Mutex
	sessions map[uint]*session

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewService creates a monitoring service sampling at the given cadence.
// notifier may be nil when push notifications are disabled.
func NewService(st store.Store, tick time.Duration, notifier Notifier) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		store:    st,
		tick:     tick,
		notifier: notifier,
		sessions: make(map[uint]*session),
		baseCtx:  ctx,
		cancel:   cancel,
	}
}

// Start begins a monitoring session for the given machine. The machine must exist;
// a second Start for a machine with an active session is rejected. The session runs
// in its own goroutine and ends when the machine's persisted status leaves Running.
func (s *Service) Start(ctx context.Context, machineID uint) (uuid.UUID, error) {
	machine, err := s.store.GetMachine(ctx, machineID)
	if err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	if _, active := s.sessions[machineID]; active {
		s.mu.Unlock()
		return uuid.Nil, ErrAlreadyMonitoring
	}

	// The session must outlive the HTTP request that started it, so it hangs off
	// the service context, not the caller's.
	sessCtx, sessCancel := context.WithCancel(s.baseCtx)
	sess := &session{
		id:        uuid.New(),
		machineID: machineID,
		startedAt: time.Now().UTC(),
		cancel:    sessCancel,
	}
	s.sessions[machineID] = sess
	s.mu.Unlock()

	log.Printf("session %s: monitoring started for machine %d (%s)", sess.id, machineID, machine.Name)
	metrics.SessionsStarted.Inc()

	s.wg.Add(1)
	go s.run(sessCtx, sess)

	return sess.id, nil
}

// Stop ends the session for the given machine by flipping its persisted status to
// Idle; the sampling loop observes the flip and terminates within one tick. Stopping
// a machine with no active session is a warning no-op.
func (s *Service) Stop(ctx context.Context, machineID uint) error {
	s.mu.Lock()
	sess, active := s.sessions[machineID]
	s.mu.Unlock()

	if !active {
		log.Printf("machine %d is not currently being monitored", machineID)
		return ErrNotMonitored
	}

	if err := s.store.UpdateMachineStatus(ctx, machineID, model.StatusIdle); err != nil {
		return err
	}
	log.Printf("session %s: stop requested for machine %d", sess.id, machineID)
	return nil
}

// Active reports whether the given machine has an active monitoring session.
func (s *Service) Active(machineID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, active := s.sessions[machineID]
	return active
}

// Shutdown cancels all active sessions and waits for their goroutines to exit.
func (s *Service) Shutdown() {
	s.cancel()
	s.wg.Wait()
}

// run is the sampling loop for one session. On each tick it polls the machine's
// persisted status; while the machine is Running it increments the production
// counter by one unit, computes the elapsed run time in hours, and appends a new
// production-run sample row. Rows are never updated in place.
func (s *Service) run(ctx context.Context, sess *session) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.sessions, sess.machineID)
		s.mu.Unlock()
		sess.cancel()
	}()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	counter := 0
	for {
		select {
		case <-ctx.Done():
			log.Printf("session %s: shutting down with %d units recorded", sess.id, counter)
			return
		case <-ticker.C:
			machine, err := s.store.GetMachine(ctx, sess.machineID)
			if err != nil {
				log.Printf("session %s: failed to poll machine %d: %v", sess.id, sess.machineID, err)
				return
			}
			if machine.Status != model.StatusRunning {
				s.finish(sess, counter)
				return
			}

			counter++
			runSample := &model.ProductionRun{
				MachineID: sess.machineID,
				StartTime: sess.startedAt,
				EndTime:   nil,
				RunTime:   time.Since(sess.startedAt).Hours(),
				Quantity:  counter,
			}
			if err := s.store.CreateProductionRun(ctx, runSample); err != nil {
				log.Printf("session %s: failed to record sample: %v", sess.id, err)
				continue
			}
			metrics.SamplesRecorded.Inc()
		}
	}
}

// finish reports the session total and hands the machine off for notification.
func (s *Service) finish(sess *session, total int) {
	log.Printf("session %s: monitoring stopped for machine %d, total production: %d units",
		sess.id, sess.machineID, total)
	metrics.SessionsCompleted.Inc()
	if s.notifier != nil {
		s.notifier.Dispatch(sess.machineID)
	}
}
