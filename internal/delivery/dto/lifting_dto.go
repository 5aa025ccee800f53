package dto

import (
	"github.com/shopspring/decimal"
)

// Gym

type GymRequest struct {
	Name     string `json:"name" validate:"required,notblank,min=2,max=100"`
	Location string `json:"location" validate:"required,notblank,min=2,max=200"`
}

type GymResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Muscle

type MuscleRequest struct {
	Name        string `json:"name" validate:"required,notblank,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
	Function    string `json:"function" validate:"max=200"`
	OriginName  string `json:"originName" validate:"max=100"`
}

type MuscleResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Function    string `json:"function"`
	OriginName  string `json:"originName"`
}

// Target

type TargetRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

type TargetResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Exercise

type ExerciseRequest struct {
	Name           string   `json:"name" validate:"required,notblank,max=100"`
	Description    string   `json:"description"`
	MainMuscles    []int64  `json:"mainMuscles"`
	SupportMuscles []int64  `json:"supportMuscles"`
	Cues           []string `json:"cues"`
}

type ExerciseResponse struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	MainMuscles    []MuscleResponse `json:"mainMuscles"`
	SupportMuscles []MuscleResponse `json:"supportMuscles"`
	Cues           []string         `json:"cues"`
}

// Routine

type ChecklistItem struct {
	Name       string `json:"name" validate:"required,notblank"`
	IsOptional bool   `json:"isOptional"`
}

type RoutineRequest struct {
	Name        string          `json:"name" validate:"required,notblank,min=2,max=100"`
	Description string          `json:"description" validate:"max=500"`
	WorkoutID   *int64          `json:"workoutId"`
	TargetIDs   []int64         `json:"targetIds"`
	Checklist   []ChecklistItem `json:"checklist" validate:"dive"`
	Note        string          `json:"note"`
}

type RoutineResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Template    bool             `json:"template"`
	WorkoutID   *int64           `json:"workoutId"`
	Targets     []TargetResponse `json:"targets"`
	Slots       []SlotResponse   `json:"slots"`
	Checklist   []ChecklistItem  `json:"checklist"`
	Note        string           `json:"note"`
}

// Slot

type SlotRequest struct {
	RoutineID  int64           `json:"routineId" validate:"required,gt=0"`
	ExerciseID int64           `json:"exerciseId" validate:"required,gt=0"`
	Stars      int             `json:"stars" validate:"gte=0,lte=5"`
	Category   string          `json:"category"`
	SetNumber  int             `json:"setNumber" validate:"gte=0"`
	Weight     decimal.Decimal `json:"weight"`
	Reps       int             `json:"reps" validate:"gte=0"`
	Duration   int             `json:"duration" validate:"gte=0"`
	Sequence   int             `json:"sequence" validate:"gte=0"`
}

type SlotResponse struct {
	ID        int64            `json:"id"`
	Exercise  ExerciseResponse `json:"exercise"`
	Stars     int              `json:"stars"`
	Category  string           `json:"category"`
	SetNumber int              `json:"setNumber"`
	Weight    float64          `json:"weight"`
	Reps      int              `json:"reps"`
	Duration  int              `json:"duration"`
	Sequence  int              `json:"sequence"`
}

// Workout

// WorkoutRequest times use the "yyyy-MM-dd HH:mm" layout.
type WorkoutRequest struct {
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Gym       int64   `json:"gym" validate:"required,gt=0"`
	Routine   *int64  `json:"routine"`
	Target    []int64 `json:"target"`
	Note      *string `json:"note"`
}

// StopWorkoutRequest changes only what differs from the stored workout.
type StopWorkoutRequest struct {
	ID        int64   `json:"id" validate:"required,gt=0"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Gym       int64   `json:"gym" validate:"gte=0"`
	Routine   *int64  `json:"routine"`
	Target    []int64 `json:"target"`
	Note      *string `json:"note"`
}

type WorkoutResponse struct {
	ID        int64            `json:"id"`
	StartTime *string          `json:"startTime"`
	EndTime   *string          `json:"endTime"`
	Gym       GymResponse      `json:"gym"`
	Routine   *RoutineResponse `json:"routine"`
	Target    []TargetResponse `json:"target"`
	Note      string           `json:"note"`
}

type WorkoutStatsResponse struct {
	Interval      string `json:"interval"`
	From          string `json:"from"`
	To            string `json:"to"`
	WorkoutCount  int64  `json:"workoutCount"`
	RoutineCount  int64  `json:"routineCount"`
	ExerciseCount int64  `json:"exerciseCount"`
	TotalMinutes  int64  `json:"totalMinutes"`
}
