package factory

import (
	"github.com/razelos/appsmith/internal/data/usecases"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/repositories/permission_group_repository"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/repositories/user_group_repository"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/razelos/appsmith/internal/infra/metrics"
	"github.com/razelos/appsmith/internal/setup/config"
	"github.com/razelos/appsmith/internal/utils"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies holds the process-wide collaborators every factory draws on.
type Dependencies struct {
	Config                 *config.Config
	Db                     *mongo.Database
	Log                    *logrus.Logger
	Metrics                *metrics.Metrics
	Tokens                 *utils.AccessTokenUtil
	PermissionGroupCache   usecase.PermissionGroupCacheRepository
	PublishMembershipEvent usecase.PublishMembershipEventRepository
}

func NewDependencies(cfg *config.Config, db *mongo.Database, redisClient *redis.Client, m *metrics.Metrics, log *logrus.Logger) (*Dependencies, error) {
	tokens, err := utils.NewAccessTokenUtil(cfg.SecretJWT)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Config:                 cfg,
		Db:                     db,
		Log:                    log,
		Metrics:                m,
		Tokens:                 tokens,
		PermissionGroupCache:   redis_repository.NewPermissionGroupCacheRepository(redisClient, cfg.PermissionCacheTTL),
		PublishMembershipEvent: redis_repository.NewPublishMembershipEventRepository(redisClient, cfg.EventChannel),
	}, nil
}

func MakeLoadSessionUser(deps *Dependencies) *usecases.DbLoadSessionUser {
	return usecases.NewDbLoadSessionUser(
		user_repository.NewFindUserByIdRepository(deps.Db),
		user_group_repository.NewFindUserGroupIdsByMemberRepository(deps.Db),
		permission_group_repository.NewFindPermissionGroupIdsForPrincipalsRepository(deps.Db),
		deps.PermissionGroupCache,
		deps.Metrics,
		deps.Log,
	)
}
