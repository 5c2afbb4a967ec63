package delivery

import (
	"context"
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dispatcher runs delivery simulations on a fixed pool of workers. Enqueue
// never blocks the caller; delivery is best-effort and at-most-once, so a
// failed or dropped job simply leaves the campaign in its prior status.
type Dispatcher struct {
	jobs     chan primitive.ObjectID
	sim      *Simulator
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewDispatcher creates a Dispatcher and starts its workers
func NewDispatcher(sim *Simulator, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	d := &Dispatcher{
		jobs: make(chan primitive.ObjectID, queueSize),
		sim:  sim,
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for id := range d.jobs {
		if err := d.sim.Run(context.Background(), id); err != nil {
			log.Printf("[ERROR] delivery simulation for campaign %s failed: %v", id.Hex(), err)
		}
	}
}

// Enqueue submits a campaign for delivery simulation. Returns false when the
// queue is full and the job was dropped.
func (d *Dispatcher) Enqueue(campaignID primitive.ObjectID) bool {
	select {
	case d.jobs <- campaignID:
		return true
	default:
		log.Printf("[WARN] delivery queue full, dropping campaign %s", campaignID.Hex())
		return false
	}
}

// Stop closes the queue and waits for in-flight simulations to finish
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}
