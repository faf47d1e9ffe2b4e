package input

import "sync"

// Pump is a Surface fed by the host's polling loop.
type Pump struct {
	mu   sync.Mutex
	subs map[int]func(Event)
	next int
	w, h float64
}

func NewPump() *Pump {
	return &Pump{subs: make(map[int]func(Event))}
}

func (p *Pump) Subscribe(fn func(Event)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.next
	p.next++
	p.subs[id] = fn
	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

func (p *Pump) SetSize(w, h float64) {
	p.mu.Lock()
	p.w, p.h = w, h
	p.mu.Unlock()
}

func (p *Pump) Size() (float64, float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.w, p.h
}

// Emit delivers e to every subscriber in subscription order.
func (p *Pump) Emit(e Event) {
	p.mu.Lock()
	fns := make([]func(Event), 0, len(p.subs))
	for id := 0; id < p.next; id++ {
		if fn, ok := p.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

// Subscribers reports how many handlers are attached.
func (p *Pump) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}
