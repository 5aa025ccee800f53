package entity

import (
	"time"
)

// WorkoutTimeLayout is the wire format of workout start and end times.
const WorkoutTimeLayout = "2006-01-02 15:04"

type Workout struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	StartTime *time.Time `gorm:"index" json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	GymID     int64      `gorm:"not null;index" json:"gym_id"`
	RoutineID *int64     `gorm:"uniqueIndex" json:"routine_id"`
	Note      string     `gorm:"type:text" json:"note"`

	// Relationships
	Gym     Gym      `gorm:"foreignKey:GymID" json:"gym"`
	Routine *Routine `gorm:"foreignKey:RoutineID" json:"routine,omitempty"`
	Targets []Target `gorm:"many2many:lifting_workout_target;joinForeignKey:WorkoutID;joinReferences:TargetID" json:"targets,omitempty"`
}

func (Workout) TableName() string {
	return "lifting_workout"
}

// StartedOn reports whether the workout started on the calendar day of day in loc.
func (w *Workout) StartedOn(day time.Time, loc *time.Location) bool {
	if w.StartTime == nil {
		return false
	}
	y1, m1, d1 := w.StartTime.In(loc).Date()
	y2, m2, d2 := day.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Minutes is the finished duration, zero while the workout is running.
func (w *Workout) Minutes() int {
	if w.StartTime == nil || w.EndTime == nil || w.EndTime.Before(*w.StartTime) {
		return 0
	}
	return int(w.EndTime.Sub(*w.StartTime).Minutes())
}

// StatsInterval is the window of a workout summary.
type StatsInterval string

const (
	IntervalWeek  StatsInterval = "week"
	IntervalMonth StatsInterval = "month"
	IntervalYear  StatsInterval = "year"
)

// Bounds returns the [from, to) window of the interval containing now in loc.
// Weeks start on Monday.
func (i StatsInterval) Bounds(now time.Time, loc *time.Location) (time.Time, time.Time, bool) {
	now = now.In(loc)
	y, m, d := now.Date()
	switch i {
	case IntervalWeek:
		offset := (int(now.Weekday()) + 6) % 7
		from := time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 0, 7), true
	case IntervalMonth:
		from := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 1, 0), true
	case IntervalYear:
		from := time.Date(y, 1, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(1, 0, 0), true
	}
	return time.Time{}, time.Time{}, false
}

// WorkoutStats summarises workouts started inside a window.
type WorkoutStats struct {
	WorkoutCount  int64
	RoutineCount  int64
	ExerciseCount int64
	TotalMinutes  int64
}
