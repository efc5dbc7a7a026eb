package namefully

import (
	"namefully/src/internal/config"
	"namefully/src/internal/fullname"
	"namefully/src/internal/names"
	"namefully/src/internal/parser"
)

// Hooks are optional callbacks around Build and Clear.
type Hooks struct {
	BeforeBuild func()
	AfterBuild  func(*Namefully)
	// BeforeClear receives the last built name, or nil.
	BeforeClear func(*Namefully)
	AfterClear  func()
}

// Builder stages name parts and produces a Namefully once a first and a last
// name are both queued. Queue operations do no validation.
type Builder struct {
	queue    []names.Name
	hooks    Hooks
	prebuilt *Namefully
}

func NewBuilder(h Hooks, initial ...names.Name) *Builder {
	return &Builder{queue: append([]names.Name(nil), initial...), hooks: h}
}

func (b *Builder) Len() int { return len(b.queue) }

// Parts returns a copy of the queue.
func (b *Builder) Parts() []names.Name { return append([]names.Name(nil), b.queue...) }

func (b *Builder) Add(parts ...names.Name) { b.queue = append(b.queue, parts...) }

func (b *Builder) AddFirst(n names.Name) { b.queue = append([]names.Name{n}, b.queue...) }

func (b *Builder) AddLast(n names.Name) { b.queue = append(b.queue, n) }

// Remove drops the first queued part equal to n and reports whether one was found.
func (b *Builder) Remove(n names.Name) bool {
	for i, q := range b.queue {
		if q.Equal(n) {
			b.queue = append(b.queue[:i:i], b.queue[i+1:]...)
			return true
		}
	}
	return false
}

func (b *Builder) RemoveFirst() (names.Name, bool) {
	if len(b.queue) == 0 {
		return names.Name{}, false
	}
	n := b.queue[0]
	b.queue = append([]names.Name(nil), b.queue[1:]...)
	return n, true
}

func (b *Builder) RemoveLast() (names.Name, bool) {
	if len(b.queue) == 0 {
		return names.Name{}, false
	}
	n := b.queue[len(b.queue)-1]
	b.queue = append([]names.Name(nil), b.queue[:len(b.queue)-1]...)
	return n, true
}

// RemoveWhere drops every part matching pred.
func (b *Builder) RemoveWhere(pred func(names.Name) bool) {
	b.RetainWhere(func(n names.Name) bool { return !pred(n) })
}

// RetainWhere keeps only the parts matching pred.
func (b *Builder) RetainWhere(pred func(names.Name) bool) {
	var kept []names.Name
	for _, n := range b.queue {
		if pred(n) {
			kept = append(kept, n)
		}
	}
	b.queue = kept
}

// Build checks that a first and a last name are queued and assembles them.
// Any number of middle names is accepted.
func (b *Builder) Build(opts ...Option) (*Namefully, error) {
	if b.hooks.BeforeBuild != nil {
		b.hooks.BeforeBuild()
	}
	n, err := New(queued(b.Parts()), opts...)
	if err != nil {
		return nil, err
	}
	if b.hooks.AfterBuild != nil {
		b.hooks.AfterBuild(n)
	}
	b.prebuilt = n
	return n, nil
}

// Clear empties the queue. It does not rebuild.
func (b *Builder) Clear() {
	if b.hooks.BeforeClear != nil {
		b.hooks.BeforeClear(b.prebuilt)
	}
	b.queue = nil
	if b.hooks.AfterClear != nil {
		b.hooks.AfterClear()
	}
}

// queued parses the staged parts without the arity limit of parser.NewNames.
type queued []names.Name

func (q queued) Parse(cfg *config.Config) (fullname.Fullname, error) {
	return parser.Assemble(q, cfg)
}

func (q queued) Raw() any { return []names.Name(q) }
