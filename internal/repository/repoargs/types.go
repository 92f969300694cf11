package repoargs

type RepositoryName string

const (
	UserRepoName           RepositoryName = "user"
	TransactionRepoName    RepositoryName = "transaction"
	PlatformConfigRepoName RepositoryName = "platform_config"
)
