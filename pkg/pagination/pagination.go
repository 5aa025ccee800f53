// Package pagination holds page requests, sort parsing and page envelopes
// shared by the list endpoints.
package pagination

import (
	"fmt"
	"strings"
)

const (
	DefaultPage = 0
	DefaultSize = 20
	MaxSize     = 200
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type Sort struct {
	Field     string
	Direction Direction
}

// ParseSort turns "field,direction" into a Sort. Input that does not split
// into exactly two parts sorts by id descending; an unknown direction is
// treated as descending.
func ParseSort(raw string) Sort {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return Sort{Field: "id", Direction: Desc}
	}

	field := strings.TrimSpace(parts[0])
	if field == "" {
		field = "id"
	}

	direction := Desc
	if strings.EqualFold(strings.TrimSpace(parts[1]), "asc") {
		direction = Asc
	}

	return Sort{Field: field, Direction: direction}
}

// OrderBy renders the sort as an ORDER BY clause. Only fields present in
// columns are accepted; anything else falls back to the id column.
func (s Sort) OrderBy(columns map[string]string) string {
	column, ok := columns[s.Field]
	if !ok {
		column = "id"
	}
	return fmt.Sprintf("%s %s", column, s.Direction)
}

type Pageable struct {
	Page int
	Size int
	Sort Sort
}

func NewPageable(page, size int, sort string) Pageable {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Pageable{Page: page, Size: size, Sort: ParseSort(sort)}
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

type Meta struct {
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

type Page[T any] struct {
	Data []T `json:"data"`
	Page Meta `json:"page"`
}

func NewPage[T any](data []T, p Pageable, total int64) Page[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if p.Size > 0 {
		totalPages = int(total) / p.Size
		if int(total)%p.Size > 0 {
			totalPages++
		}
	}
	return Page[T]{
		Data: data,
		Page: Meta{
			Number:        p.Page,
			Size:          p.Size,
			TotalElements: total,
			TotalPages:    totalPages,
		},
	}
}

// Map converts the items of a page while keeping its metadata.
func Map[S, T any](page Page[S], fn func(S) T) Page[T] {
	data := make([]T, len(page.Data))
	for i, item := range page.Data {
		data[i] = fn(item)
	}
	return Page[T]{Data: data, Page: page.Page}
}
