package service

import (
	"context"

	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/internal/service/mocks"
	"github.com/fsdevblog/anticrisis/pkg/uow"
	uowmocks "github.com/fsdevblog/anticrisis/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
)

// repoMocks набор моков репозиториев, которые отдаются и из uow, и из транзакции.
type repoMocks struct {
	uow       *uowmocks.MockUOW
	tx        *uowmocks.MockTX
	users     *mocks.MockUserRepository
	profiles  *mocks.MockProfileRepository
	follows   *mocks.MockFollowRepository
	discounts *mocks.MockDiscountRepository
	posts     *mocks.MockPostRepository
}

func newRepoMocks(ctrl *gomock.Controller) *repoMocks {
	m := &repoMocks{
		uow:       uowmocks.NewMockUOW(ctrl),
		tx:        uowmocks.NewMockTX(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		profiles:  mocks.NewMockProfileRepository(ctrl),
		follows:   mocks.NewMockFollowRepository(ctrl),
		discounts: mocks.NewMockDiscountRepository(ctrl),
		posts:     mocks.NewMockPostRepository(ctrl),
	}

	byName := map[repoargs.RepositoryName]uow.Repository{
		repoargs.UserRepoName:     m.users,
		repoargs.ProfileRepoName:  m.profiles,
		repoargs.FollowRepoName:   m.follows,
		repoargs.DiscountRepoName: m.discounts,
		repoargs.PostRepoName:     m.posts,
	}
	for name, repo := range byName {
		// Мок получения репозитория из uow. Выполняется в инициализации сервисов.
		m.uow.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		// Мок получения репозитория из транзакции.
		m.tx.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
	return m
}

// expectTx мок uow.Do, выполняющий fn с моком транзакции times раз.
func (m *repoMocks) expectTx(times int) {
	m.uow.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, m.tx)
		}).Times(times)
}
