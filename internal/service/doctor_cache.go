package service

import (
	"context"
	"encoding/json"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis key for the serialized public doctor list.
const doctorCacheKey = "cache:doctors"

// cachedDoctor is the cache wire shape. The entity's json tags hide the
// avatar and aadhar columns from API output, so marshalling entity.User
// directly would drop them on the round trip; the payload carries its own
// tags instead.
type cachedDoctor struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	AadharNumber     string    `json:"aadharNumber"`
	Gender           string    `json:"gender"`
	DateOfBirth      time.Time `json:"dob"`
	Role             string    `json:"role"`
	AvatarPublicID   string    `json:"avatarPublicId"`
	AvatarURL        string    `json:"avatarUrl"`
	DoctorDepartment string    `json:"doctorDepartment"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func encodeDoctors(doctors []entity.User) ([]byte, error) {
	payload := make([]cachedDoctor, 0, len(doctors))
	for _, d := range doctors {
		payload = append(payload, cachedDoctor{
			ID:               d.ID,
			FirstName:        d.FirstName,
			LastName:         d.LastName,
			Email:            d.Email,
			Phone:            d.Phone,
			AadharNumber:     d.AadharNumber,
			Gender:           d.Gender,
			DateOfBirth:      d.DateOfBirth,
			Role:             d.Role,
			AvatarPublicID:   d.AvatarPublicID,
			AvatarURL:        d.AvatarURL,
			DoctorDepartment: d.DoctorDepartment,
			CreatedAt:        d.CreatedAt,
			UpdatedAt:        d.UpdatedAt,
		})
	}
	return json.Marshal(payload)
}

func decodeDoctors(raw []byte) ([]entity.User, error) {
	var payload []cachedDoctor
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	doctors := make([]entity.User, 0, len(payload))
	for _, d := range payload {
		doctors = append(doctors, entity.User{
			ID:               d.ID,
			FirstName:        d.FirstName,
			LastName:         d.LastName,
			Email:            d.Email,
			Phone:            d.Phone,
			AadharNumber:     d.AadharNumber,
			Gender:           d.Gender,
			DateOfBirth:      d.DateOfBirth,
			Role:             d.Role,
			AvatarPublicID:   d.AvatarPublicID,
			AvatarURL:        d.AvatarURL,
			DoctorDepartment: d.DoctorDepartment,
			CreatedAt:        d.CreatedAt,
			UpdatedAt:        d.UpdatedAt,
		})
	}
	return doctors, nil
}

// DoctorCache is a read-through cache in front of the unpaginated public
// doctor listing. Cache failures degrade to database reads; they are logged
// and never surfaced to the caller.
type DoctorCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewDoctorCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) *DoctorCache {
	return &DoctorCache{client: client, ttl: ttl, log: log}
}

// Get returns the cached doctor list and whether the cache held one.
func (c *DoctorCache) Get(ctx context.Context) ([]entity.User, bool) {
	raw, err := c.client.Get(ctx, doctorCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read doctor cache: %+v", err)
		}
		return nil, false
	}

	doctors, err := decodeDoctors(raw)
	if err != nil {
		c.log.Warnf("Failed to decode doctor cache, dropping key: %+v", err)
		c.client.Del(ctx, doctorCacheKey)
		return nil, false
	}
	return doctors, true
}

// Set stores the doctor list with the configured TTL.
func (c *DoctorCache) Set(ctx context.Context, doctors []entity.User) {
	raw, err := encodeDoctors(doctors)
	if err != nil {
		c.log.Warnf("Failed to encode doctor cache: %+v", err)
		return
	}
	if err := c.client.Set(ctx, doctorCacheKey, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write doctor cache: %+v", err)
	}
}

// Invalidate drops the cached list. Called after a new doctor is created.
func (c *DoctorCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, doctorCacheKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate doctor cache: %+v", err)
	}
}
