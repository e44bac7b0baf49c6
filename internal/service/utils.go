package service

import (
	"fmt"

	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/pkg/uow"
)

// txRepository возвращает репозиторий name, привязанный к транзакции tx.
func txRepository[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	repo, err := uow.GetAs[T](tx, uow.RepositoryName(name))
	if err != nil {
		return repo, fmt.Errorf("getting %s repository: %w", name, err)
	}
	return repo, nil
}

// poolRepository возвращает репозиторий name, работающий вне транзакции. Используется для чтения.
func poolRepository[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	repo, err := uow.GetRepositoryAs[T](u, uow.RepositoryName(name))
	if err != nil {
		return repo, fmt.Errorf("getting %s repository: %w", name, err)
	}
	return repo, nil
}
