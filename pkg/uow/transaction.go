package uow

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Transaction отдает репозитории, привязанные к одной pgx транзакции.
type Transaction struct {
	repositories map[RepositoryName]RepositoryFactory
	tx           pgx.Tx
	cache        map[RepositoryName]Repository
}

func NewTransaction(tx pgx.Tx, repositories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		repositories: repositories,
		tx:           tx,
		cache:        make(map[RepositoryName]Repository, len(repositories)),
	}
}

// Get возвращает репозиторий или ошибку ErrRepositoryNotRegistered. В рамках одной транзакции репозиторий
// создается один раз.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.cache[name]; ok {
		return repo, nil
	}
	factory, ok := t.repositories[name]
	if !ok {
		return nil, ErrRepositoryNotRegistered
	}
	repo := factory(t.tx)
	t.cache[name] = repo
	return repo, nil
}

// GetAs возвращает зарегистрированный репозиторий с именем name приведенный к типу T
// или ошибки ErrRepositoryNotRegistered в случае не найденного репозитория с указанным name, ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	repo, err := t.Get(name)
	var res T
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, fmt.Errorf("%w: %s", ErrInvalidRepositoryType, name)
	}
	return res, nil
}
