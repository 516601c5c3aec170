package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/cashbook-server/internal/operator/actions"
)

var ErrStopped = errors.New("operator: delegator stopped")

const defaultQueueSize = 1000

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    writeBeginner
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once

	// mu guards stopped and registration in senders. It is never held
	// while waiting on the queue.
	mu      sync.Mutex
	stopped bool
	senders sync.WaitGroup
	done    chan struct{}
}

func NewOperatorDelegator(s writeBeginner, numWorkers int) *OperatorDelegator {
	return newOperatorDelegator(s, numWorkers, defaultQueueSize)
}

func newOperatorDelegator(s writeBeginner, numWorkers, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
		done:       make(chan struct{}),
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop rejects new work, releases callers blocked on a full queue, drains
// what was already queued and waits for the workers to exit.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.done)
		d.mu.Unlock()

		// The queue is closed only once no caller can still send on it.
		d.senders.Wait()
		close(d.queue)
		d.wg.Wait()
	})
}

// Process runs action in its own database transaction and waits for the result.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return ErrStopped
	}
	d.senders.Add(1)
	d.mu.Unlock()
	defer d.senders.Done()

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.done:
		return ErrStopped
	}
}
