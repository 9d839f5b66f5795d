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

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, &database.RedisClient{Client: client}
}

func TestStoreLocation(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewLocationRepository(client, 10*time.Minute)

	ts := time.UnixMilli(1700000000123)
	loc := models.Location{
		Latitude:  -6.175392,
		Longitude: 106.827153,
		Accuracy:  12.5,
		Geohash:   "qqguyur",
		Timestamp: ts,
	}

	err := repo.StoreLocation(context.Background(), "10", loc)
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyUserLocation, "10")
	assert.Equal(t, "-6.175392", mr.HGet(key, constants.FieldLatitude))
	assert.Equal(t, "106.827153", mr.HGet(key, constants.FieldLongitude))
	assert.Equal(t, "12.5", mr.HGet(key, constants.FieldAccuracy))
	assert.Equal(t, "qqguyur", mr.HGet(key, constants.FieldGeohash))
	assert.Equal(t, "1700000000123", mr.HGet(key, constants.FieldTimestamp))
	assert.Equal(t, 10*time.Minute, mr.TTL(key))
}

func TestGetLastLocation(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		want    *models.Location
		wantErr bool
	}{
		{
			name: "complete fix",
			fields: map[string]string{
				constants.FieldLatitude:  "-6.2",
				constants.FieldLongitude: "106.8",
				constants.FieldAccuracy:  "30",
				constants.FieldGeohash:   "qqguw",
				constants.FieldTimestamp: "1700000000000",
			},
			want: &models.Location{Latitude: -6.2, Longitude: 106.8, Accuracy: 30, Geohash: "qqguw", Timestamp: time.UnixMilli(1700000000000)},
		},
		{
			name: "accuracy missing",
			fields: map[string]string{
				constants.FieldLatitude:  "1.5",
				constants.FieldLongitude: "2.5",
				constants.FieldTimestamp: "1700000000000",
			},
			want: &models.Location{Latitude: 1.5, Longitude: 2.5, Timestamp: time.UnixMilli(1700000000000)},
		},
		{
			name: "corrupt latitude",
			fields: map[string]string{
				constants.FieldLatitude:  "north",
				constants.FieldLongitude: "2.5",
				constants.FieldTimestamp: "1700000000000",
			},
			wantErr: true,
		},
		{
			name: "corrupt timestamp",
			fields: map[string]string{
				constants.FieldLatitude:  "1",
				constants.FieldLongitude: "2",
				constants.FieldTimestamp: "yesterday",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr, client := setupMiniredis(t)
			repo := NewLocationRepository(client, 0)

			key := fmt.Sprintf(constants.KeyUserLocation, "10")
			for field, value := range tt.fields {
				mr.HSet(key, field, value)
			}

			got, err := repo.GetLastLocation(context.Background(), "10")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want.Latitude, got.Latitude)
			assert.Equal(t, tt.want.Longitude, got.Longitude)
			assert.Equal(t, tt.want.Accuracy, got.Accuracy)
			assert.Equal(t, tt.want.Geohash, got.Geohash)
			assert.True(t, tt.want.Timestamp.Equal(got.Timestamp))
		})
	}
}

func TestGetLastLocation_Missing(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewLocationRepository(client, 0)

	got, err := repo.GetLastLocation(context.Background(), "nobody")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocation_ExpiresWithTTL(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewLocationRepository(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.StoreLocation(ctx, "10", models.Location{Latitude: 1, Longitude: 2, Timestamp: time.Now()}))
	mr.FastForward(2 * time.Minute)

	got, err := repo.GetLastLocation(ctx, "10")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
