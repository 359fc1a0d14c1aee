package formstate

import (
	"sync"

	"go.uber.org/zap"
)

// Option configures a Container.
type Option func(*Container)

// WithSanitizer runs every string written to a record through s.
func WithSanitizer(s Sanitizer) Option {
	return func(c *Container) {
		c.sanitizer = s
	}
}

// WithLogger attaches a logger used for debug output on each update.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Container owns the form drafts of one session. Create one per session and
// pass it to every component that reads or writes the drafts.
type Container struct {
	mu        sync.RWMutex
	contact   ContactForm
	trademark TrademarkInquiry

	observers []observerEntry
	nextID    uint64

	sanitizer Sanitizer
	logger    *zap.Logger
}

type observerEntry struct {
	id uint64
	fn Observer
}

// NewContainer returns a container with both records at their defaults.
func NewContainer(options ...Option) *Container {
	c := &Container{
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// ContactForm returns a copy of the current contact draft.
func (c *Container) ContactForm() ContactForm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.contact
}

// TrademarkInquiry returns a copy of the current trademark draft.
func (c *Container) TrademarkInquiry() TrademarkInquiry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trademark
}

// Snapshot returns copies of both drafts taken under a single read lock.
func (c *Container) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Contact:   c.contact,
		Trademark: c.trademark,
	}
}

// SetContactForm overwrites the contact fields set in p. An empty patch is a
// no-op and does not notify observers.
func (c *Container) SetContactForm(p ContactPatch) {
	fields := p.Fields()
	if len(fields) == 0 {
		return
	}
	p = p.sanitized(c.sanitizer)

	c.mu.Lock()
	p.applyTo(&c.contact)
	observers := c.observerList()
	c.mu.Unlock()

	c.logger.Debug("form updated",
		zap.String("record", string(RecordContact)),
		zap.Strings("fields", fields),
	)
	notify(observers, Change{Record: RecordContact, Fields: fields})
}

// SetTrademarkInquiry overwrites the trademark fields set in p. An empty patch
// is a no-op and does not notify observers.
func (c *Container) SetTrademarkInquiry(p TrademarkPatch) {
	fields := p.Fields()
	if len(fields) == 0 {
		return
	}
	p = p.sanitized(c.sanitizer)

	c.mu.Lock()
	p.applyTo(&c.trademark)
	observers := c.observerList()
	c.mu.Unlock()

	c.logger.Debug("form updated",
		zap.String("record", string(RecordTrademark)),
		zap.Strings("fields", fields),
	)
	notify(observers, Change{Record: RecordTrademark, Fields: fields})
}

// Subscribe registers fn to run after every successful update. The returned
// cancel func removes the observer and may be called more than once.
func (c *Container) Subscribe(fn Observer) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observerEntry{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, entry := range c.observers {
				if entry.id == id {
					c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// observerList copies the registered observers. Callers hold c.mu.
func (c *Container) observerList() []Observer {
	if len(c.observers) == 0 {
		return nil
	}
	out := make([]Observer, len(c.observers))
	for i, entry := range c.observers {
		out[i] = entry.fn
	}
	return out
}

func notify(observers []Observer, change Change) {
	for _, fn := range observers {
		fields := append([]string(nil), change.Fields...)
		fn(Change{Record: change.Record, Fields: fields})
	}
}
