package lighting

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// ScanStats summarizes one Scan call.
type ScanStats struct {
	Skipped  bool // no render view, or lighting disabled
	Accepted int
	Rejected int
	Faults   int // contributors that panicked and were skipped
}

// Scanner collects the lights of a World into a Frame once per rendered
// frame. It owns the subscriber list third parties use to contribute lights.
type Scanner struct {
	cfg  Config
	log  Logger
	subs []subscriber
}

type ScannerOption func(*Scanner)

func WithLogger(log Logger) ScannerOption {
	return func(s *Scanner) {
		if log != nil {
			s.log = log
		}
	}
}

func NewScanner(cfg Config, opts ...ScannerOption) *Scanner {
	s := &Scanner{cfg: cfg, log: nopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to run at the start of every scan, after the camera
// is resolved and before the world is walked. A nil fn is not registered and
// yields a zero Subscription.
func (s *Scanner) Subscribe(fn SubscriberFunc) Subscription {
	if fn == nil {
		return Subscription{}
	}
	id := uuid.New()
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return Subscription{id: id}
}

// Unsubscribe may be called from inside a subscriber; the running scan keeps
// its own snapshot and the removal applies from the next scan.
func (s *Scanner) Unsubscribe(sub Subscription) bool {
	if sub.id == uuid.Nil {
		return false
	}
	for i, existing := range s.subs {
		if existing.id == sub.id {
			s.subs = slices.Delete(slices.Clone(s.subs), i, i+1)
			return true
		}
	}
	return false
}

// Scan resolves the camera, gathers every light the world offers, keeps the
// ones that pass Accept and ranks them nearest-first. It must be called once
// per frame, before any upload, and the frame must be cleared in between.
func (s *Scanner) Scan(frame *Frame, world World) (ScanStats, error) {
	var stats ScanStats
	if frame.phase == phaseScanned {
		return stats, ErrFrameNotCleared
	}
	frame.phase = phaseScanned

	if !s.cfg.Enabled || world == nil {
		frame.camera = nil
		stats.Skipped = true
		return stats, nil
	}
	view, ok := world.RenderView()
	if !ok || view == nil {
		frame.camera = nil
		stats.Skipped = true
		return stats, nil
	}

	pos := Interpolate(view.PrevPosition(), view.Position(), world.PartialTick())
	cam := &CameraSnapshot{Position: pos}
	if vp, ok := view.ViewProjection(); ok {
		cam.Frustum = NewFrustum(vp, pos)
	}
	frame.camera = cam

	ctx := &GatherContext{frame: frame, maxDistance: s.cfg.MaxDistance}

	for _, sub := range slices.Clone(s.subs) {
		s.guard(&stats, "subscriber "+sub.id.String(), func() {
			sub.fn(ctx)
		})
	}
	for _, e := range world.Entities() {
		if e != nil {
			s.scanEntity(ctx, &stats, e)
		}
	}
	for _, b := range world.BlockEntities() {
		if b == nil {
			continue
		}
		s.guard(&stats, "block entity", func() {
			s.dispatch(ctx, b.Emission(), nil, nil)
		})
	}

	frame.registry.Sort(pos)
	frame.origin = &CameraSnapshot{Position: pos}
	frame.camera = nil

	stats.Accepted = ctx.accepted
	stats.Rejected = ctx.rejected
	return stats, nil
}

func (s *Scanner) scanEntity(ctx *GatherContext, stats *ScanStats, e Entity) {
	var pos mgl64.Vec3
	if !s.guard(stats, "entity", func() { pos = e.Position() }) {
		return
	}

	if dropped, ok := e.(ItemEntity); ok {
		s.guard(stats, "dropped item", func() {
			if stack := dropped.Stack(); stack != nil {
				s.dispatch(ctx, stack.Emission(), e, &pos)
			}
		})
		return
	}

	s.guard(stats, "entity", func() {
		s.dispatch(ctx, e.Emission(), e, &pos)
	})
	s.guard(stats, "held items", func() {
		s.dispatchItems(ctx, stats, e.HeldItems(), e, &pos)
	})
	s.guard(stats, "armor items", func() {
		s.dispatchItems(ctx, stats, e.ArmorItems(), e, &pos)
	})
}

func (s *Scanner) dispatchItems(ctx *GatherContext, stats *ScanStats, items []Item, owner Entity, pos *mgl64.Vec3) {
	for _, item := range items {
		if item == nil {
			continue
		}
		s.guard(stats, "item", func() {
			s.dispatch(ctx, item.Emission(), owner, pos)
		})
	}
}

// dispatch runs one emission. Single lights are stamped at pos when given.
func (s *Scanner) dispatch(ctx *GatherContext, em Emission, owner Entity, pos *mgl64.Vec3) {
	switch em.kind {
	case EmitMulti:
		em.gather(ctx, owner)
	case EmitSingle:
		l := em.light
		if pos != nil {
			l = l.At(*pos)
		}
		ctx.Add(&l)
	}
}

// guard runs fn and turns a panic into a logged, counted fault.
func (s *Scanner) guard(stats *ScanStats, what string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			stats.Faults++
			s.log.Warnf("lighting: %s panicked during scan, skipped: %v", what, r)
			ok = false
		}
	}()
	fn()
	return true
}
