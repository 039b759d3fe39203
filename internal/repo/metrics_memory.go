package repo

import "sync"

type InMemoryMetricsRepository struct {
	mu     sync.Mutex
	counts map[string]map[string]int
	cart   CartReader
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{counts: map[string]map[string]int{}}
}

func (i *InMemoryMetricsRepository) SetCartReader(cart CartReader) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.cart = cart
}

// Record counts one finished cart operation.
func (i *InMemoryMetricsRepository) Record(op, outcome string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	byOutcome, ok := i.counts[op]
	if !ok {
		byOutcome = map[string]int{}
		i.counts[op] = byOutcome
	}
	byOutcome[outcome]++
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	m := Metrics{Operations: make(map[string]map[string]int, len(i.counts))}
	for op, byOutcome := range i.counts {
		cp := make(map[string]int, len(byOutcome))
		for k, v := range byOutcome {
			cp[k] = v
		}
		m.Operations[op] = cp
	}

	if i.cart != nil {
		for _, p := range i.cart.Cart() {
			m.CartEntries++
			m.CartUnits += p.Amount
		}
	}
	return m, nil
}

func (i *InMemoryMetricsRepository) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.counts = map[string]map[string]int{}
}
