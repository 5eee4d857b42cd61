package projection

import (
	"fmt"
	"sort"
	"sync"

	"fulfillment/internal/entities"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Projection is the read-through view of schedules keyed by order identity.
// Synced entries live in a bounded LRU; unsynced entries are held until a
// later reconciliation replaces them and are never evicted.
type Projection struct {
	mu       sync.Mutex
	synced   *lru.Cache[string, entities.DeliverySchedule]
	unsynced map[string]entities.DeliverySchedule
}

func New(size int) (*Projection, error) {
	cache, err := lru.New[string, entities.DeliverySchedule](size)
	if err != nil {
		return nil, fmt.Errorf("create schedule projection: %w", err)
	}

	return &Projection{
		synced:   cache,
		unsynced: make(map[string]entities.DeliverySchedule),
	}, nil
}

func (p *Projection) Get(key string) (entities.DeliverySchedule, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if schedule, ok := p.unsynced[key]; ok {
		return schedule, true
	}
	return p.synced.Get(key)
}

// Put overwrites whatever is held for the schedule's identity.
func (p *Projection) Put(schedule entities.DeliverySchedule) {
	key := schedule.Identity.Key()

	p.mu.Lock()
	defer p.mu.Unlock()

	if schedule.Synced {
		delete(p.unsynced, key)
		p.synced.Add(key, schedule)
		return
	}

	p.synced.Remove(key)
	p.unsynced[key] = schedule
}

// Remove forgets whatever is held for key.
func (p *Projection) Remove(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.unsynced, key)
	p.synced.Remove(key)
}

func (p *Projection) List() []entities.DeliverySchedule {
	p.mu.Lock()
	schedules := p.synced.Values()
	for _, schedule := range p.unsynced {
		schedules = append(schedules, schedule)
	}
	p.mu.Unlock()

	sortSchedules(schedules)
	return schedules
}

func (p *Projection) Unsynced() []entities.DeliverySchedule {
	p.mu.Lock()
	schedules := make([]entities.DeliverySchedule, 0, len(p.unsynced))
	for _, schedule := range p.unsynced {
		schedules = append(schedules, schedule)
	}
	p.mu.Unlock()

	sortSchedules(schedules)
	return schedules
}

func sortSchedules(schedules []entities.DeliverySchedule) {
	sort.Slice(schedules, func(i, j int) bool {
		if !schedules[i].DeliveryDate.Equal(schedules[j].DeliveryDate) {
			return schedules[i].DeliveryDate.Before(schedules[j].DeliveryDate)
		}
		return schedules[i].Identity.Key() < schedules[j].Identity.Key()
	})
}
