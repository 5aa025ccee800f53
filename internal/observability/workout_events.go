package observability

import (
	"context"

	"self-fitness/internal/domain/entity"
	"self-fitness/internal/service"
)

type countedWorkoutEvents struct {
	next    service.WorkoutEvents
	metrics *Metrics
}

// CountWorkoutEvents wraps next so every started and finished workout is
// also counted in workout_events_total.
func (m *Metrics) CountWorkoutEvents(next service.WorkoutEvents) service.WorkoutEvents {
	return &countedWorkoutEvents{next: next, metrics: m}
}

func (c *countedWorkoutEvents) Started(ctx context.Context, workout *entity.Workout) {
	c.metrics.ObserveWorkoutEvent(service.EventWorkoutStarted)
	c.next.Started(ctx, workout)
}

func (c *countedWorkoutEvents) Finished(ctx context.Context, workout *entity.Workout) {
	c.metrics.ObserveWorkoutEvent(service.EventWorkoutFinished)
	c.next.Finished(ctx, workout)
}
