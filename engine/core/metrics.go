package core

import "sync"

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average of evaluation times together with call
// counters. It is safe for concurrent use.
type Metrics struct {
	mu sync.Mutex

	avgCounter uint8
	samples    uint8
	msTimes    [AVG_COUNT]float64
	msAvg      float64

	calls    uint64
	failures uint64
	totalMS  float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Update records one evaluation that took elapsedSeconds.
func (m *Metrics) Update(elapsedSeconds float64, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms := elapsedSeconds * 1000.0
	m.msTimes[m.avgCounter] = ms
	m.avgCounter++
	m.avgCounter %= AVG_COUNT
	if m.samples < AVG_COUNT {
		m.samples++
	}

	sum := 0.0
	for i := uint8(0); i < m.samples; i++ {
		sum += m.msTimes[i]
	}
	m.msAvg = sum / float64(m.samples)

	m.calls++
	m.totalMS += ms
	if failed {
		m.failures++
	}
}

// AverageMS is the mean duration of the last AVG_COUNT evaluations.
func (m *Metrics) AverageMS() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.msAvg
}

func (m *Metrics) Calls() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *Metrics) Failures() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures
}

func (m *Metrics) TotalMS() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalMS
}
