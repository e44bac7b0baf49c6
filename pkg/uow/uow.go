package uow

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

type UnitOfWork struct {
	conn         Beginner
	txOptions    pgx.TxOptions
	repositories map[RepositoryName]RepositoryFactory
}

// NewUnitOfWork создает UnitOfWork поверх пула соединений. По умолчанию транзакции открываются с
// уровнем изоляции сервера (read committed).
func NewUnitOfWork(conn Beginner, opts ...Option) *UnitOfWork {
	u := &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type Option func(*UnitOfWork)

// WithTxOptions задает параметры всех транзакций, открываемых через Do.
func WithTxOptions(txOptions pgx.TxOptions) Option {
	return func(u *UnitOfWork) {
		u.txOptions = txOptions
	}
}

// Register регистрирует репозиторий у себя в мапе. Если репозиторий уже зарегистрирован, возвращает
// ошибку ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет функцию fn внутри транзакции. Если fn вернула ошибку, запаниковала или контекст отменен
// до коммита, транзакция откатывается целиком. Ошибки начала и коммита транзакции оборачиваются в ErrTxFailed.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, u.txOptions)
	if txErr != nil {
		return fmt.Errorf("%w: begin: %s", ErrTxFailed, txErr.Error())
	}
	defer func() {
		// Rollback после успешного Commit вернет pgx.ErrTxClosed, его игнорируем.
		// Для отката используем не отмененный контекст, иначе соединение вернется в пул с открытой транзакцией.
		if rollbackErr := tx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil &&
			!errors.Is(rollbackErr, pgx.ErrTxClosed) {
			if err == nil {
				err = rollbackErr
			} else {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	if transErr := fn(ctx, NewTransaction(tx, u.repositories)); transErr != nil {
		return transErr
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return fmt.Errorf("%w: commit: %s", ErrTxFailed, commitErr.Error())
	}
	return nil
}

// GetRepository возвращает репозиторий, работающий вне транзакции, или ошибку ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if repoFactory, ok := u.repositories[name]; ok {
		return repoFactory(u.conn), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetRepositoryAs возвращает репозиторий по имени name и приводит его к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)

	if !ok {
		return res, fmt.Errorf("%w: %s", ErrInvalidRepositoryType, name)
	}

	return r, nil
}
