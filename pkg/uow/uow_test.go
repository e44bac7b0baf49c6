package uow

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
)

// fakeTx реализует только Commit и Rollback, остальные методы pgx.Tx в тестах не вызываются.
type fakeTx struct {
	pgx.Tx
	closed     bool
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(_ context.Context) error {
	if f.closed {
		return pgx.ErrTxClosed
	}
	f.closed = true
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(_ context.Context) error {
	if f.closed {
		return pgx.ErrTxClosed
	}
	f.closed = true
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	DBTX
	tx       *fakeTx
	beginErr error
	options  pgx.TxOptions
}

func (f *fakeBeginner) BeginTx(_ context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	f.options = txOptions
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

type testRepo struct {
	conn DBTX
}

type UnitOfWorkTestSuite struct {
	suite.Suite
	tx       *fakeTx
	beginner *fakeBeginner
	uow      *UnitOfWork
}

func TestUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.tx = new(fakeTx)
	s.beginner = &fakeBeginner{tx: s.tx}
	s.uow = NewUnitOfWork(s.beginner, WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}))
	s.Require().NoError(s.uow.Register("test", func(conn DBTX) Repository {
		return &testRepo{conn: conn}
	}))
}

func (s *UnitOfWorkTestSuite) TestRegister_Duplicate() {
	err := s.uow.Register("test", func(conn DBTX) Repository { return &testRepo{conn: conn} })
	s.Require().ErrorIs(err, ErrRepositoryAlreadyRegistered)
}

func (s *UnitOfWorkTestSuite) TestDo_Commit() {
	err := s.uow.Do(s.T().Context(), func(_ context.Context, tx TX) error {
		repo, repoErr := GetAs[*testRepo](tx, "test")
		s.Require().NoError(repoErr)
		// репозиторий должен работать через транзакцию, а не через пул.
		s.Equal(s.tx, repo.conn)

		again, againErr := GetAs[*testRepo](tx, "test")
		s.Require().NoError(againErr)
		s.Same(repo, again)
		return nil
	})
	s.Require().NoError(err)
	s.True(s.tx.committed)
	s.False(s.tx.rolledBack)
	s.Equal(pgx.ReadCommitted, s.beginner.options.IsoLevel)
}

func (s *UnitOfWorkTestSuite) TestDo_RollbackOnError() {
	fnErr := errors.New("counter update failed")
	err := s.uow.Do(s.T().Context(), func(_ context.Context, _ TX) error {
		return fnErr
	})
	s.Require().ErrorIs(err, fnErr)
	s.False(s.tx.committed)
	s.True(s.tx.rolledBack)
}

func (s *UnitOfWorkTestSuite) TestDo_RollbackOnPanic() {
	s.Panics(func() {
		_ = s.uow.Do(s.T().Context(), func(_ context.Context, _ TX) error {
			panic("boom")
		})
	})
	s.True(s.tx.rolledBack)
}

func (s *UnitOfWorkTestSuite) TestDo_BeginAndCommitErrors() {
	cases := []struct {
		name      string
		beginErr  error
		commitErr error
	}{
		{name: "begin", beginErr: errors.New("connection refused")},
		{name: "commit", commitErr: errors.New("serialization failure")},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			tx := &fakeTx{commitErr: t.commitErr}
			u := NewUnitOfWork(&fakeBeginner{tx: tx, beginErr: t.beginErr})
			err := u.Do(s.T().Context(), func(_ context.Context, _ TX) error { return nil })
			s.Require().ErrorIs(err, ErrTxFailed)
			s.False(tx.committed)
		})
	}
}

func (s *UnitOfWorkTestSuite) TestGetAs_Errors() {
	err := s.uow.Do(s.T().Context(), func(_ context.Context, tx TX) error {
		_, notFoundErr := GetAs[*testRepo](tx, "unknown")
		s.Require().ErrorIs(notFoundErr, ErrRepositoryNotRegistered)

		_, typeErr := GetAs[string](tx, "test")
		s.Require().ErrorIs(typeErr, ErrInvalidRepositoryType)
		return nil
	})
	s.Require().NoError(err)

	_, err = GetRepositoryAs[string](s.uow, "test")
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)

	repo, err := GetRepositoryAs[*testRepo](s.uow, "test")
	s.Require().NoError(err)
	s.Equal(s.beginner, repo.conn)
}
