package metrics

import (
	"time"

	"dupescan/internal/logging"
)

// RowCounter reports the number of rows currently held by the cache store.
// Implemented by *store.Store; declared here to avoid an import cycle.
type RowCounter interface {
	Count() (int64, error)
}

// Collector periodically refreshes gauges that reflect cache store state.
type Collector struct {
	rows     RowCounter
	interval time.Duration
	stopChan chan struct{}
}

// NewCollector creates a new metrics collector.
func NewCollector(rows RowCounter, interval time.Duration) *Collector {
	return &Collector{
		rows:     rows,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the metrics collection loop.
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection.
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	n, err := c.rows.Count()
	if err != nil {
		logging.Debug("Metrics collector: cache row count failed: %v", err)
		return
	}
	StoreRows.Set(float64(n))
}
