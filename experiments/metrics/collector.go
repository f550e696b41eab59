package metrics

import (
	"sync/atomic"
	"time"
)

// BatchMetric describes one completed batch of playouts.
type BatchMetric struct {
	Simulations  int
	Cutoff       int
	Duration     time.Duration
	Playouts     int
	FullPlayouts int // playouts decided before the move cap
	Plies        int // half-moves played over all playouts
}

// MoveMetric is the estimate shown while a move was being decided.
type MoveMetric struct {
	Step   int
	Player string
	WinsA  int
	WinsB  int
	Draws  int
	Total  int
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" when the game was stopped before a result
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(simulations, cutoff int)
	AddPlayout(plies int)
	AddFullPlayout()
	Complete() BatchMetric
}

type collector struct {
	simulations  int
	cutoff       int
	startTime    time.Time
	playouts     atomic.Int32
	fullPlayouts atomic.Int32
	plies        atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(simulations, cutoff int) {
	m.startTime = time.Now()
	m.simulations = simulations
	m.cutoff = cutoff
	m.playouts.Store(0)
	m.fullPlayouts.Store(0)
	m.plies.Store(0)
}

func (m *collector) AddPlayout(plies int) {
	m.playouts.Add(1)
	m.plies.Add(int64(plies))
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) Complete() BatchMetric {
	return BatchMetric{
		Simulations:  m.simulations,
		Cutoff:       m.cutoff,
		Duration:     time.Since(m.startTime),
		Playouts:     int(m.playouts.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Plies:        int(m.plies.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(simulations, cutoff int) {}
func (m *dummyCollector) AddPlayout(plies int)          {}
func (m *dummyCollector) AddFullPlayout()               {}
func (m *dummyCollector) Complete() BatchMetric         { return BatchMetric{} }
