package core

import (
	"context"
	"time"

	"github.com/leondejong/platform-game/config"
)

// Simulation is the fixed-timestep driver. Real time goes into an
// accumulator that is drained in whole steps, so physics is independent of
// the frame rate. Each step updates the level, then the player.
type Simulation struct {
	Level  *Level
	Player *Player

	step        float64
	accumulator float64
	elapsed     float64 // milliseconds since the first frame
	steps       uint64
}

// NewSimulation wires a level and its player.
func NewSimulation(cfg *config.Config, level *Level, player *Player) *Simulation {
	return &Simulation{
		Level:  level,
		Player: player,
		step:   cfg.TimeStep,
	}
}

// SetIntent forwards the input for the coming steps.
func (s *Simulation) SetIntent(in Intent) { s.Player.SetIntent(in) }

// Steps returns the number of fixed steps run so far.
func (s *Simulation) Steps() uint64 { return s.steps }

// Elapsed returns the simulated wall time in milliseconds.
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Step moves simulated time forward by one fixed step and runs it. Use it to
// drive the simulation without a clock; Advance does the same from real time.
func (s *Simulation) Step() {
	s.elapsed += s.step * 1000
	s.tick()
}

func (s *Simulation) tick() {
	s.Level.Update(s.step, s.elapsed, s.Player.Tiles())
	s.Player.Update(s.step, s.elapsed)
	s.steps++

	select {
	case <-s.Player.RespawnSignal():
		s.Player.Respawn()
	default:
	}
}

// Advance adds one frame of real time and runs every step that fits. It
// returns the number of steps run, which may be zero.
func (s *Simulation) Advance(frame time.Duration) int {
	s.accumulator += frame.Seconds()
	s.elapsed += float64(frame) / float64(time.Millisecond)

	n := 0
	for s.accumulator > s.step {
		s.accumulator -= s.step
		s.tick()
		n++
	}
	return n
}

// Run advances the simulation on every tick from frames until ctx is done.
// Nothing is pending between ticks, so stopping loses no state.
func (s *Simulation) Run(ctx context.Context, frames <-chan time.Time) error {
	var previous time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			if !previous.IsZero() {
				s.Advance(now.Sub(previous))
			}
			previous = now
		}
	}
}
