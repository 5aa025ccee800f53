package service

import (
	"context"
	"strconv"
	"time"

	"self-fitness/internal/domain/entity"
	"self-fitness/internal/infrastructure/messaging"

	"github.com/sirupsen/logrus"
)

const (
	EventWorkoutStarted  = "workout.started"
	EventWorkoutFinished = "workout.finished"
)

// WorkoutEvents announces workout lifecycle changes. Publishing is best
// effort and never fails the request that triggered it.
type WorkoutEvents interface {
	Started(ctx context.Context, workout *entity.Workout)
	Finished(ctx context.Context, workout *entity.Workout)
}

type workoutEvents struct {
	log       *logrus.Logger
	publisher messaging.Publisher
	topic     string
	now       func() time.Time
}

func NewWorkoutEvents(log *logrus.Logger, publisher messaging.Publisher, topic string) WorkoutEvents {
	return &workoutEvents{log: log, publisher: publisher, topic: topic, now: time.Now}
}

type workoutPayload struct {
	WorkoutID int64      `json:"workout_id"`
	GymID     int64      `json:"gym_id"`
	RoutineID *int64     `json:"routine_id,omitempty"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Minutes   int        `json:"minutes"`
}

func (e *workoutEvents) Started(ctx context.Context, workout *entity.Workout) {
	e.publish(ctx, EventWorkoutStarted, workout)
}

func (e *workoutEvents) Finished(ctx context.Context, workout *entity.Workout) {
	e.publish(ctx, EventWorkoutFinished, workout)
}

func (e *workoutEvents) publish(ctx context.Context, eventType string, workout *entity.Workout) {
	event := messaging.Event{
		Type:       eventType,
		OccurredAt: e.now().UTC(),
		Payload: workoutPayload{
			WorkoutID: workout.ID,
			GymID:     workout.GymID,
			RoutineID: workout.RoutineID,
			StartTime: workout.StartTime,
			EndTime:   workout.EndTime,
			Minutes:   workout.Minutes(),
		},
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := e.publisher.Publish(ctx, e.topic, strconv.FormatInt(workout.ID, 10), event); err != nil {
		e.log.WithFields(logrus.Fields{
			"event":      eventType,
			"workout_id": workout.ID,
		}).Warnf("Failed to publish workout event: %+v", err)
	}
}
