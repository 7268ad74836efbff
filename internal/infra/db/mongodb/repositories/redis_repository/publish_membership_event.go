package redis_repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
)

type PublishMembershipEventRepository struct {
	Client  *redis.Client
	Channel string
}

func NewPublishMembershipEventRepository(client *redis.Client, channel string) *PublishMembershipEventRepository {
	return &PublishMembershipEventRepository{
		Client:  client,
		Channel: channel,
	}
}

func (r *PublishMembershipEventRepository) Publish(ctx context.Context, event *models.MembershipChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode membership event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	if err := r.Client.Publish(ctx, r.Channel, payload).Err(); err != nil {
		return fmt.Errorf("publish membership event %s: %w", event.Id, err)
	}

	return nil
}
