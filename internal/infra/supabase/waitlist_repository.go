package supabase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

const waitlistSignupsTable = "waitlist_signups"

type waitlistRepository struct {
	client *Client
}

// NewWaitlistRepository creates the waitlist repository backed by the waitlist_signups table.
func NewWaitlistRepository(client *Client) repository.WaitlistRepository {
	return &waitlistRepository{client: client}
}

func (r *waitlistRepository) Create(ctx context.Context, signup *entity.WaitlistSignup) error {
	return r.client.From(waitlistSignupsTable).Insert(ctx, "joinWaitlist", signup, "")
}

func (r *waitlistRepository) CountByBoxType(ctx context.Context, boxType entity.BoxType) (int64, error) {
	query := r.client.From(waitlistSignupsTable).Select("*")
	if boxType != "" {
		query = query.Eq("box_type", boxType)
	}

	return query.Count(ctx, "countWaitlist")
}
