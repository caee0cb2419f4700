package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastyeats/entity"
)

func TestRefreshPopulatesSnapshot(t *testing.T) {
	svc := NewCatalogService(&stubCatalog{items: []entity.MenuItem{
		menuItem("A", "Dosa", 100),
	}})

	// empty until the first fetch lands
	_, ok := svc.Snapshot().Lookup("A")
	assert.False(t, ok)

	require.NoError(t, svc.Refresh())
	item, ok := svc.Snapshot().Lookup("A")
	require.True(t, ok)
	assert.Equal(t, 100.0, item.Price)
	assert.Len(t, svc.Snapshot().Items(), 1)
}

func TestRefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	source := &stubCatalog{items: []entity.MenuItem{menuItem("A", "Dosa", 100)}}
	svc := NewCatalogService(source)
	require.NoError(t, svc.Refresh())

	source.err = errors.New("network down")
	assert.Error(t, svc.Refresh())

	_, ok := svc.Snapshot().Lookup("A")
	assert.True(t, ok)
}

// gatedSource serves each FetchAll call its own result, optionally holding
// the call until its gate opens.
type gatedSource struct {
	mu      sync.Mutex
	calls   int
	entered chan int
	gates   map[int]chan struct{}
	results map[int][]entity.MenuItem
}

func (s *gatedSource) FetchAll() ([]entity.MenuItem, error) {
	s.mu.Lock()
	s.calls++
	n := s.calls
	s.mu.Unlock()

	if s.entered != nil {
		s.entered <- n
	}
	if gate, ok := s.gates[n]; ok {
		<-gate
	}
	return s.results[n], nil
}

func TestStaleRefreshResponseIsDiscarded(t *testing.T) {
	slowGate := make(chan struct{})
	source := &gatedSource{
		entered: make(chan int, 2),
		gates:   map[int]chan struct{}{1: slowGate},
		results: map[int][]entity.MenuItem{
			1: {menuItem("A", "Stale Dosa", 90)},
			2: {menuItem("A", "Fresh Dosa", 110)},
		},
	}
	svc := NewCatalogService(source)

	done := make(chan error, 1)
	go func() { done <- svc.Refresh() }()
	<-source.entered // slow refresh is in flight

	// a newer refresh is issued and resolves first
	require.NoError(t, svc.Refresh())
	<-source.entered
	item, ok := svc.Snapshot().Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "Fresh Dosa", item.Name)

	// the slow response lands late and must not win
	close(slowGate)
	require.NoError(t, <-done)
	item, ok = svc.Snapshot().Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "Fresh Dosa", item.Name)
	assert.Equal(t, 110.0, item.Price)
}
