package pgrepo

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/jackc/pgx/v5"
)

// safeConvertUintToInt64 безопасно конвертирует uint в int64. В случае выхода значения за рамки диапазона
// выбрасывает ошибку.
func safeConvertUintToInt64(val uint) (int64, error) {
	if uint64(val) > uint64(math.MaxInt64) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int64(val), nil
}

// limitOffset возвращает нормализованные limit и offset для подстановки в запрос.
func limitOffset(p repoargs.Pagination) (int64, int64, error) {
	p = p.Normalize()
	limit, limitErr := safeConvertUintToInt64(p.Limit)
	if limitErr != nil {
		return 0, 0, limitErr
	}
	offset, offsetErr := safeConvertUintToInt64(p.Offset)
	if offsetErr != nil {
		return 0, 0, offsetErr
	}
	return limit, offset, nil
}

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern строит LIKE шаблон поиска подстроки. Спецсимволы LIKE экранируются.
func containsPattern(query string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(query)) + "%"
}

// countUnique количество различных id.
func countUnique(ids []int64) int {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
