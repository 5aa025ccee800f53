package repository

import (
	"errors"
	"strings"

	"self-fitness/pkg/pagination"

	"gorm.io/gorm"
)

// first runs query.First and maps a missing row to (nil, nil).
func first[T any](query *gorm.DB) (*T, error) {
	var out T
	if err := query.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds a LIKE pattern matching name literally anywhere in
// the column.
func containsPattern(name string) string {
	return "%" + likeEscaper.Replace(name) + "%"
}

// findPage applies the optional case-insensitive name filter, counts the
// matches and loads one page of them.
func findPage[T any](query *gorm.DB, name string, page pagination.Pageable, columns map[string]string) ([]T, int64, error) {
	var model T
	query = query.Model(&model)
	if name != "" {
		query = query.Where("name ILIKE ?", containsPattern(name))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	err := query.
		Order(page.Sort.OrderBy(columns)).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
