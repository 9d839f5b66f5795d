package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/database"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, &database.RedisClient{Client: client}
}

func TestSOSStatus_WindowExpires(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewSafetyRepository(client)
	ctx := context.Background()

	sentAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	resetsAt := sentAt.Add(30 * time.Second)
	bookingID := int64(42)
	status := models.SOSStatus{State: models.SOSStateSent, SentAt: &sentAt, ResetsAt: &resetsAt, BookingID: &bookingID}

	require.NoError(t, repo.SaveSOSSent(ctx, "10", status, 30*time.Second))
	assert.Equal(t, 30*time.Second, mr.TTL(fmt.Sprintf(constants.KeyUserSOS, "10")))

	got, err := repo.GetSOSStatus(ctx, "10")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.SOSStateSent, got.State)
	assert.True(t, sentAt.Equal(*got.SentAt))
	assert.True(t, resetsAt.Equal(*got.ResetsAt))
	assert.Equal(t, int64(42), *got.BookingID)

	mr.FastForward(31 * time.Second)

	got, err = repo.GetSOSStatus(ctx, "10")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetSOSStatus_Errors(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewSafetyRepository(client)

	require.NoError(t, mr.Set(fmt.Sprintf(constants.KeyUserSOS, "10"), "{not json"))
	_, err := repo.GetSOSStatus(context.Background(), "10")
	assert.Error(t, err)

	mr.Close()
	_, err = repo.GetSOSStatus(context.Background(), "20")
	assert.Error(t, err)
}
