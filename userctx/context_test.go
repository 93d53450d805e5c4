package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/destegai/scan-server/models"
)

func TestIdentityRoundTrip(t *testing.T) {
	id := Identity{UID: "oidc|123", Email: "alice@example.com", Role: models.RoleAdmin}
	ctx := WithIdentity(context.Background(), id)

	got, ok := GetIdentity(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.True(t, got.IsAdmin())
}

func TestGetIdentityMissing(t *testing.T) {
	_, ok := GetIdentity(context.Background())
	assert.False(t, ok)
}

func TestGetActorEmail(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{UID: "u1", Email: "bob@example.com", Role: models.RoleUser})
	assert.Equal(t, "bob@example.com", GetActorEmail(ctx))

	assert.Equal(t, models.SystemActor, GetActorEmail(context.Background()))

	anon := WithIdentity(context.Background(), Identity{UID: "u2"})
	assert.Equal(t, models.SystemActor, GetActorEmail(anon))
}
