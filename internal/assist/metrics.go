// File path: internal/assist/metrics.go
package assist

import (
	"sync"

	"github.com/friendlynotebook/vuai/internal/kb"
)

// Metrics accumulates responder counters for the status endpoint.
type Metrics struct {
	mu            sync.Mutex
	totalRequests uint64
	totalTimeMs   int64
	bySource      map[string]uint64
	kbHitsByRole  map[kb.Role]uint64
}

func NewMetrics() *Metrics {
	return &Metrics{
		bySource:     make(map[string]uint64),
		kbHitsByRole: make(map[kb.Role]uint64),
	}
}

func (m *Metrics) Record(role kb.Role, resp Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalRequests++
	m.totalTimeMs += resp.ResponseTimeMs
	m.bySource[resp.Source]++
	if resp.KnowledgeResults > 0 {
		m.kbHitsByRole[role]++
	}
}

// Snapshot is a point-in-time copy of the counters, shaped for JSON.
type Snapshot struct {
	TotalRequests     uint64            `json:"total_requests"`
	AvgResponseTimeMs int64             `json:"avg_response_time_ms"`
	BySource          map[string]uint64 `json:"by_source"`
	KnowledgeHits     map[string]uint64 `json:"knowledge_hits_by_role"`
}

func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := Snapshot{
		TotalRequests: m.totalRequests,
		BySource:      make(map[string]uint64, len(m.bySource)),
		KnowledgeHits: make(map[string]uint64, len(m.kbHitsByRole)),
	}
	if m.totalRequests > 0 {
		snap.AvgResponseTimeMs = m.totalTimeMs / int64(m.totalRequests)
	}
	for source, n := range m.bySource {
		snap.BySource[source] = n
	}
	for role, n := range m.kbHitsByRole {
		snap.KnowledgeHits[role.String()] = n
	}
	return snap
}
