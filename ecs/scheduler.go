package ecs

// System advances the world by one frame of dt seconds.
type System interface {
	Update(w *World, dt float64) error
}

// SystemFunc adapts a function to System.
type SystemFunc func(w *World, dt float64) error

func (f SystemFunc) Update(w *World, dt float64) error {
	return f(w, dt)
}

// Scheduler runs systems in registration order and stops at the first error.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, dt float64) error {
	for _, system := range s.systems {
		if err := system.Update(w, dt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
