package entity

import (
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
)

// PianoTag labels pieces and practice records.
type PianoTag struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PianoTag) TableName() string {
	return "piano_tag"
}

// SortTags orders tags by id.
func SortTags(tags []PianoTag) []PianoTag {
	sorted := append([]PianoTag(nil), tags...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted
}

type PieceStatus string

const (
	PieceWishlist    PieceStatus = "WISHLIST"
	PieceLearning    PieceStatus = "LEARNING"
	PieceMaintaining PieceStatus = "MAINTAINING"
	PieceArchived    PieceStatus = "ARCHIVED"
)

// ParsePieceStatus reads a status case-insensitively. Empty means LEARNING.
func ParsePieceStatus(s string) (PieceStatus, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return PieceLearning, true
	}
	switch status := PieceStatus(s); status {
	case PieceWishlist, PieceLearning, PieceMaintaining, PieceArchived:
		return status, true
	}
	return "", false
}

type Piece struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string      `gorm:"type:varchar(200);not null" json:"title"`
	Composer  *string     `gorm:"type:varchar(100)" json:"composer"`
	Status    PieceStatus `gorm:"type:varchar(16);not null;default:LEARNING" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	Tags []PianoTag `gorm:"many2many:piano_piece_tag;joinForeignKey:PieceID;joinReferences:TagID" json:"tags,omitempty"`
}

func (Piece) TableName() string {
	return "piano_piece"
}

type PracticeType string

const (
	PracticeFundamental PracticeType = "FUNDAMENTAL"
	PracticeTechnique   PracticeType = "TECHNIQUE"
	PracticeRepertoire  PracticeType = "REPERTOIRE"
)

func ParsePracticeType(s string) (PracticeType, bool) {
	switch t := PracticeType(strings.ToUpper(strings.TrimSpace(s))); t {
	case PracticeFundamental, PracticeTechnique, PracticeRepertoire:
		return t, true
	}
	return "", false
}

// PracticeSession groups the practice records of one sitting at the piano.
type PracticeSession struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	Summary   *string   `gorm:"type:text" json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PianoPractices     []PianoPractice     `gorm:"foreignKey:SessionID" json:"piano_practices,omitempty"`
	SolfeggioPractices []SolfeggioPractice `gorm:"foreignKey:SessionID" json:"solfeggio_practices,omitempty"`
}

func (PracticeSession) TableName() string {
	return "piano_practice_session"
}

// TotalMinutes sums the minutes spent at the keyboard. Ear training is not counted.
func (s *PracticeSession) TotalMinutes() int {
	total := 0
	for _, p := range s.PianoPractices {
		total += p.Minutes
	}
	return total
}

type PianoPractice struct {
	ID        int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID int64        `gorm:"not null;index" json:"session_id"`
	PieceID   *int64       `gorm:"index" json:"piece_id"`
	Minutes   int          `gorm:"not null" json:"minutes"`
	Note      *string      `gorm:"type:text" json:"note"`
	BPM       *int         `gorm:"column:bpm" json:"bpm"`
	Type      PracticeType `gorm:"type:varchar(16);not null" json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Piece *Piece     `gorm:"foreignKey:PieceID" json:"piece,omitempty"`
	Tags  []PianoTag `gorm:"many2many:piano_practice_tag;joinForeignKey:PracticeID;joinReferences:TagID" json:"tags,omitempty"`
}

func (PianoPractice) TableName() string {
	return "piano_practice"
}

// SolfeggioPractice is an ear training record. Intervals hold short names.
type SolfeggioPractice struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID int64          `gorm:"not null;index" json:"session_id"`
	Minutes   int            `gorm:"not null" json:"minutes"`
	Intervals pq.StringArray `gorm:"type:text[];not null" json:"intervals"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Tags []PianoTag `gorm:"many2many:piano_solfeggio_practice_tag;joinForeignKey:PracticeID;joinReferences:TagID" json:"tags,omitempty"`
}

func (SolfeggioPractice) TableName() string {
	return "piano_solfeggio_practice"
}

// Interval is a musical interval up to one octave.
type Interval struct {
	Title     string
	ShortName string
	Semitones int
}

var Intervals = []Interval{
	{"Perfect Unison", "P1", 0},
	{"Minor 2nd", "m2", 1},
	{"Major 2nd", "M2", 2},
	{"Minor 3rd", "m3", 3},
	{"Major 3rd", "M3", 4},
	{"Perfect 4th", "P4", 5},
	{"Tritone", "TT", 6},
	{"Perfect 5th", "P5", 7},
	{"Minor 6th", "m6", 8},
	{"Major 6th", "M6", 9},
	{"Minor 7th", "m7", 10},
	{"Major 7th", "M7", 11},
	{"Octave", "P8", 12},
}

// ParseInterval accepts a title in any case or an exact short name.
// Short names are case-sensitive since m2 and M2 differ.
func ParseInterval(s string) (Interval, bool) {
	s = strings.TrimSpace(s)
	for _, iv := range Intervals {
		if iv.ShortName == s || strings.EqualFold(iv.Title, s) {
			return iv, true
		}
	}
	return Interval{}, false
}

func IntervalFromSemitones(semitones int) (Interval, bool) {
	for _, iv := range Intervals {
		if iv.Semitones == semitones {
			return iv, true
		}
	}
	return Interval{}, false
}

// NormalizeIntervals parses names into a set of short names ordered by
// semitones. It returns the first name it cannot parse.
func NormalizeIntervals(names []string) (pq.StringArray, string, bool) {
	seen := make(map[int]bool, len(names))
	for _, name := range names {
		iv, ok := ParseInterval(name)
		if !ok {
			return nil, name, false
		}
		seen[iv.Semitones] = true
	}
	out := pq.StringArray{}
	for _, iv := range Intervals {
		if seen[iv.Semitones] {
			out = append(out, iv.ShortName)
		}
	}
	return out, "", true
}

// IntervalTitles maps stored short names to titles, skipping unknown ones.
func IntervalTitles(shortNames []string) []string {
	titles := make([]string, 0, len(shortNames))
	for _, name := range shortNames {
		if iv, ok := ParseInterval(name); ok {
			titles = append(titles, iv.Title)
		}
	}
	return titles
}
