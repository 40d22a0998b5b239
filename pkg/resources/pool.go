// Package resources provides the process-wide admission registry for shared
// model backends. Each backend class has a fixed number of slots; a task
// must hold a slot in its class before an executor may run it.
package resources

import (
	"sort"
	"sync"
)

// Backend classes.
const (
	ClassLocal        = "local"
	ClassPremiumCloud = "premium_cloud"
)

// Default slot counts. Premium serialization at 2 is policy, not a hard
// backend limit.
const (
	DefaultLocalSlots   = 1
	DefaultPremiumSlots = 2
)

// ClassStatus is the externally visible state of one backend class.
type ClassStatus struct {
	Max           int      `json:"max"`
	Active        int      `json:"active"`
	ActiveTaskIDs []string `json:"active_task_ids"`
}

type class struct {
	max    int
	active map[string]struct{}
}

// Pool is the registry of backend classes. All operations are serialized
// under one lock; callers never observe a transient overcommit.
type Pool struct {
	mu      sync.Mutex
	classes map[string]*class
}

// NewPool creates a pool with the default local and premium classes.
func NewPool(localSlots, premiumSlots int) *Pool {
	if localSlots <= 0 {
		localSlots = DefaultLocalSlots
	}
	if premiumSlots <= 0 {
		premiumSlots = DefaultPremiumSlots
	}
	p := &Pool{classes: make(map[string]*class)}
	p.Register(ClassLocal, localSlots)
	p.Register(ClassPremiumCloud, premiumSlots)
	return p
}

// Register adds or resizes a backend class. Shrinking below the current
// active count is allowed; existing holders drain naturally.
func (p *Pool) Register(name string, maxSlots int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.classes[name]; ok {
		c.max = maxSlots
		return
	}
	p.classes[name] = &class{max: maxSlots, active: make(map[string]struct{})}
}

// TryAcquire atomically claims a slot for the task. It returns true when a
// slot was free or the task already holds one (idempotent re-acquire), and
// false when the class is full or unknown.
func (p *Pool) TryAcquire(className, taskID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.classes[className]
	if !ok {
		return false
	}
	if _, held := c.active[taskID]; held {
		return true
	}
	if len(c.active) >= c.max {
		return false
	}
	c.active[taskID] = struct{}{}
	return true
}

// Release frees the task's slot. No-op when the task holds none.
func (p *Pool) Release(className, taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.classes[className]; ok {
		delete(c.active, taskID)
	}
}

// ReleaseAll frees the task's slots in every class. Used by the sweeper,
// which does not know which class a stuck task was admitted under.
func (p *Pool) ReleaseAll(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range p.classes {
		delete(c.active, taskID)
	}
}

// Status returns a consistent per-class snapshot.
func (p *Pool) Status() map[string]ClassStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(map[string]ClassStatus, len(p.classes))
	for name, c := range p.classes {
		ids := make([]string, 0, len(c.active))
		for id := range c.active {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		out[name] = ClassStatus{Max: c.max, Active: len(c.active), ActiveTaskIDs: ids}
	}
	return out
}

// Clear drops every held slot in every class. Admin reset only.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range p.classes {
		c.active = make(map[string]struct{})
	}
}
