package converter

import (
	"time"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
)

func PianoTagToResponse(tag *entity.PianoTag) *dto.PianoTagResponse {
	if tag == nil {
		return nil
	}
	return &dto.PianoTagResponse{ID: tag.ID, Name: tag.Name}
}

// PianoTagsToResponses orders the tags by id.
func PianoTagsToResponses(tags []entity.PianoTag) []dto.PianoTagResponse {
	sorted := entity.SortTags(tags)
	responses := make([]dto.PianoTagResponse, len(sorted))
	for i := range sorted {
		responses[i] = *PianoTagToResponse(&sorted[i])
	}
	return responses
}

func PieceToResponse(piece *entity.Piece) *dto.PieceResponse {
	if piece == nil {
		return nil
	}
	return &dto.PieceResponse{
		ID:       piece.ID,
		Title:    piece.Title,
		Composer: piece.Composer,
		Status:   string(piece.Status),
		Tags:     PianoTagsToResponses(piece.Tags),
	}
}

func PiecesToResponses(pieces []entity.Piece) []dto.PieceResponse {
	responses := make([]dto.PieceResponse, len(pieces))
	for i := range pieces {
		responses[i] = *PieceToResponse(&pieces[i])
	}
	return responses
}

func PianoPracticeToResponse(practice *entity.PianoPractice) *dto.PianoPracticeResponse {
	if practice == nil {
		return nil
	}
	return &dto.PianoPracticeResponse{
		ID:      practice.ID,
		Minutes: practice.Minutes,
		Piece:   PieceToResponse(practice.Piece),
		Tags:    PianoTagsToResponses(practice.Tags),
		Note:    practice.Note,
		BPM:     practice.BPM,
		Type:    string(practice.Type),
	}
}

func SolfeggioPracticeToResponse(practice *entity.SolfeggioPractice) *dto.SolfeggioPracticeResponse {
	if practice == nil {
		return nil
	}
	return &dto.SolfeggioPracticeResponse{
		ID:        practice.ID,
		Minutes:   practice.Minutes,
		Intervals: entity.IntervalTitles(practice.Intervals),
		Tags:      PianoTagsToResponses(practice.Tags),
	}
}

func PracticeSessionToResponse(session *entity.PracticeSession, loc *time.Location) *dto.PracticeSessionResponse {
	if session == nil {
		return nil
	}
	practices := make([]dto.PianoPracticeResponse, len(session.PianoPractices))
	for i := range session.PianoPractices {
		practices[i] = *PianoPracticeToResponse(&session.PianoPractices[i])
	}
	earTraining := make([]dto.SolfeggioPracticeResponse, len(session.SolfeggioPractices))
	for i := range session.SolfeggioPractices {
		earTraining[i] = *SolfeggioPracticeToResponse(&session.SolfeggioPractices[i])
	}
	return &dto.PracticeSessionResponse{
		ID:                 session.ID,
		StartTime:          *FormatWorkoutTime(&session.StartTime, loc),
		Summary:            session.Summary,
		TotalMinutes:       session.TotalMinutes(),
		PracticeRecords:    practices,
		EarTrainingRecords: earTraining,
	}
}

func PracticeSessionsToResponses(sessions []entity.PracticeSession, loc *time.Location) []dto.PracticeSessionResponse {
	responses := make([]dto.PracticeSessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = *PracticeSessionToResponse(&sessions[i], loc)
	}
	return responses
}
