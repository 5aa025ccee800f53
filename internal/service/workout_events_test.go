package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"self-fitness/internal/domain/entity"
	"self-fitness/internal/infrastructure/messaging"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	topic  string
	key    string
	events []messaging.Event
	err    error
}

func (p *capturePublisher) Publish(_ context.Context, topic, key string, event messaging.Event) error {
	p.topic, p.key = topic, key
	p.events = append(p.events, event)
	return p.err
}

func (p *capturePublisher) Close() error { return nil }

func TestWorkoutEventsPublish(t *testing.T) {
	pub := &capturePublisher{}
	log, _ := test.NewNullLogger()
	events := NewWorkoutEvents(log, pub, "lifting.workout.events")

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	events.Finished(context.Background(), &entity.Workout{ID: 12, GymID: 3, StartTime: &start, EndTime: &end})

	require.Len(t, pub.events, 1)
	assert.Equal(t, "lifting.workout.events", pub.topic)
	assert.Equal(t, "12", pub.key)
	assert.Equal(t, EventWorkoutFinished, pub.events[0].Type)
	payload := pub.events[0].Payload.(workoutPayload)
	assert.Equal(t, 60, payload.Minutes)
	assert.Equal(t, int64(3), payload.GymID)
}

func TestWorkoutEventsLogPublishFailure(t *testing.T) {
	pub := &capturePublisher{err: errors.New("broker down")}
	log, hook := test.NewNullLogger()
	events := NewWorkoutEvents(log, pub, "topic")

	events.Started(context.Background(), &entity.Workout{ID: 1})

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, EventWorkoutStarted, hook.LastEntry().Data["event"])
}
