package repoargs

import (
	"github.com/fsdevblog/anticrisis/internal/domain"
)

// CounterDelta знаковое изменение одного счетчика профиля.
type CounterDelta struct {
	UserID int64
	Field  domain.CounterField
	Delta  int64
}
