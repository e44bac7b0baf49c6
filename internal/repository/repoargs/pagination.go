package repoargs

const (
	// DefaultPageSize размер страницы, если клиент его не передал.
	DefaultPageSize uint = 20
	// MaxPageSize верхняя граница размера страницы.
	MaxPageSize uint = 100
)

// Pagination offset пагинация, аналогичная параметрам offset/pageSize http слоя.
type Pagination struct {
	Offset uint
	Limit  uint
}

// Normalize возвращает копию с лимитом, приведенным к диапазону [1, MaxPageSize]. Нулевой лимит заменяется
// на DefaultPageSize.
func (p Pagination) Normalize() Pagination {
	switch {
	case p.Limit == 0:
		p.Limit = DefaultPageSize
	case p.Limit > MaxPageSize:
		p.Limit = MaxPageSize
	}
	return p
}
