package converter

import (
	"time"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
)

func GymToResponse(gym *entity.Gym) *dto.GymResponse {
	if gym == nil {
		return nil
	}
	return &dto.GymResponse{ID: gym.ID, Name: gym.Name, Location: gym.Location}
}

func MuscleToResponse(muscle *entity.Muscle) *dto.MuscleResponse {
	if muscle == nil {
		return nil
	}
	return &dto.MuscleResponse{
		ID:          muscle.ID,
		Name:        muscle.Name,
		Description: muscle.Description,
		Function:    muscle.Function,
		OriginName:  muscle.OriginName,
	}
}

func musclesToResponses(muscles []entity.Muscle) []dto.MuscleResponse {
	responses := make([]dto.MuscleResponse, len(muscles))
	for i := range muscles {
		responses[i] = *MuscleToResponse(&muscles[i])
	}
	return responses
}

func TargetToResponse(target *entity.Target) *dto.TargetResponse {
	if target == nil {
		return nil
	}
	return &dto.TargetResponse{ID: target.ID, Name: target.Name}
}

func TargetsToResponses(targets []entity.Target) []dto.TargetResponse {
	responses := make([]dto.TargetResponse, len(targets))
	for i := range targets {
		responses[i] = *TargetToResponse(&targets[i])
	}
	return responses
}

func ExerciseToResponse(exercise *entity.Exercise) *dto.ExerciseResponse {
	if exercise == nil {
		return nil
	}
	cues := []string(exercise.Cues)
	if cues == nil {
		cues = []string{}
	}
	return &dto.ExerciseResponse{
		ID:             exercise.ID,
		Name:           exercise.Name,
		Description:    exercise.Description,
		MainMuscles:    musclesToResponses(exercise.MainMuscles),
		SupportMuscles: musclesToResponses(exercise.SupportMuscles),
		Cues:           cues,
	}
}

func ExercisesToResponses(exercises []entity.Exercise) []dto.ExerciseResponse {
	responses := make([]dto.ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = *ExerciseToResponse(&exercises[i])
	}
	return responses
}

func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}
	return &dto.SlotResponse{
		ID:        slot.ID,
		Exercise:  *ExerciseToResponse(&slot.Exercise),
		Stars:     slot.Stars,
		Category:  string(slot.Category),
		SetNumber: slot.SetNumber,
		Weight:    slot.Weight.InexactFloat64(),
		Reps:      slot.Reps,
		Duration:  slot.Duration,
		Sequence:  slot.Sequence,
	}
}

func RoutineToResponse(routine *entity.Routine) *dto.RoutineResponse {
	if routine == nil {
		return nil
	}

	slots := routine.SortedSlots()
	slotResponses := make([]dto.SlotResponse, len(slots))
	for i := range slots {
		slotResponses[i] = *SlotToResponse(&slots[i])
	}

	checklist := make([]dto.ChecklistItem, len(routine.Checklist))
	for i, item := range routine.Checklist {
		checklist[i] = dto.ChecklistItem{Name: item.Name, IsOptional: item.IsOptional}
	}

	response := &dto.RoutineResponse{
		ID:          routine.ID,
		Name:        routine.Name,
		Description: routine.Description,
		Template:    routine.Template,
		Targets:     TargetsToResponses(routine.ResolvedTargets()),
		Slots:       slotResponses,
		Checklist:   checklist,
		Note:        routine.Note,
	}
	if routine.Workout != nil {
		id := routine.Workout.ID
		response.WorkoutID = &id
	}
	return response
}

func RoutinesToResponses(routines []entity.Routine) []dto.RoutineResponse {
	responses := make([]dto.RoutineResponse, len(routines))
	for i := range routines {
		responses[i] = *RoutineToResponse(&routines[i])
	}
	return responses
}

// FormatWorkoutTime renders t in loc with the workout wire layout.
func FormatWorkoutTime(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format(entity.WorkoutTimeLayout)
	return &s
}

func WorkoutToResponse(workout *entity.Workout, loc *time.Location) *dto.WorkoutResponse {
	if workout == nil {
		return nil
	}
	response := &dto.WorkoutResponse{
		ID:        workout.ID,
		StartTime: FormatWorkoutTime(workout.StartTime, loc),
		EndTime:   FormatWorkoutTime(workout.EndTime, loc),
		Gym:       *GymToResponse(&workout.Gym),
		Target:    TargetsToResponses(workout.Targets),
		Note:      workout.Note,
	}
	if workout.Routine != nil {
		response.Routine = RoutineToResponse(workout.Routine)
		response.Routine.WorkoutID = &workout.ID
	}
	return response
}

func WorkoutsToResponses(workouts []entity.Workout, loc *time.Location) []dto.WorkoutResponse {
	responses := make([]dto.WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = *WorkoutToResponse(&workouts[i], loc)
	}
	return responses
}
