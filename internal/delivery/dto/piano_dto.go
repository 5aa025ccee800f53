package dto

// Tag

type PianoTagRequest struct {
	Name string `json:"name" validate:"required,notblank,max=50"`
}

type PianoTagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Piece

type PieceRequest struct {
	Title    string  `json:"title" validate:"required,notblank,max=200"`
	Composer *string `json:"composer" validate:"omitempty,max=100"`
	Status   string  `json:"status"`
	Tags     []int64 `json:"tags"`
}

type PieceResponse struct {
	ID       int64              `json:"id"`
	Title    string             `json:"title"`
	Composer *string            `json:"composer"`
	Status   string             `json:"status"`
	Tags     []PianoTagResponse `json:"tags"`
}

// Practice session

// PracticeSessionRequest uses the "yyyy-MM-dd HH:mm" layout; no start time means now.
type PracticeSessionRequest struct {
	StartTime *string `json:"startTime"`
}

type PracticeSessionResponse struct {
	ID                 int64                       `json:"id"`
	StartTime          string                      `json:"startTime"`
	Summary            *string                     `json:"summary"`
	TotalMinutes       int                         `json:"totalMinutes"`
	PracticeRecords    []PianoPracticeResponse     `json:"practiceRecords"`
	EarTrainingRecords []SolfeggioPracticeResponse `json:"earTrainingRecords"`
}

// Piano practice

type PianoPracticeRequest struct {
	Session int64   `json:"session" validate:"required,gt=0"`
	Minutes int     `json:"minutes" validate:"gte=0"`
	Piece   int64   `json:"piece" validate:"required,gt=0"`
	Tags    []int64 `json:"tags"`
	Note    *string `json:"note"`
	BPM     *int    `json:"bpm" validate:"omitempty,gt=0"`
	Type    string  `json:"type" validate:"required"`
}

type PianoPracticeResponse struct {
	ID      int64              `json:"id"`
	Minutes int                `json:"minutes"`
	Piece   *PieceResponse     `json:"piece"`
	Tags    []PianoTagResponse `json:"tags"`
	Note    *string            `json:"note"`
	BPM     *int               `json:"bpm"`
	Type    string             `json:"type"`
}

// Solfeggio practice

// SolfeggioPracticeRequest intervals are titles such as "Major 3rd" or short names such as "M3".
type SolfeggioPracticeRequest struct {
	Session   int64    `json:"session" validate:"required,gt=0"`
	Minutes   int      `json:"minutes" validate:"gte=0"`
	Intervals []string `json:"intervals"`
	Tags      []int64  `json:"tags"`
}

type SolfeggioPracticeResponse struct {
	ID        int64              `json:"id"`
	Minutes   int                `json:"minutes"`
	Intervals []string           `json:"intervals"`
	Tags      []PianoTagResponse `json:"tags"`
}
