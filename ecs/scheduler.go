package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in registration order and counts the frames it
// has stepped.
type Scheduler struct {
	systems []System
	frames  uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	if w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	s.frames++
}

// Frames reports how many times Update ran against a world.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
