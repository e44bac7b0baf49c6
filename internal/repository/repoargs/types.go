package repoargs

type RepositoryName string

const (
	UserRepoName     RepositoryName = "user"
	ProfileRepoName  RepositoryName = "profile"
	FollowRepoName   RepositoryName = "follow"
	DiscountRepoName RepositoryName = "discount"
	PostRepoName     RepositoryName = "post"
)
