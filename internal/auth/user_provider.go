package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// userDataKey is the fixed credential store key for the logged-in user
// profile, stored by the app at login time.
const userDataKey = "userData"

// FallbackDisplayName is shown when no user profile can be resolved.
const FallbackDisplayName = "Người dùng"

type User struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DisplayName renders "First Last"; anything short of both names
// present falls back to the generic label.
func (u User) DisplayName() string {
	if u.FirstName == "" || u.LastName == "" {
		return FallbackDisplayName
	}
	return u.FirstName + " " + u.LastName
}

// UserProvider resolves the current user's display name, preferring the
// process-wide current user over the credential store.
type UserProvider struct {
	mutex       sync.RWMutex
	current     *User
	redisClient *redis.Client
}

func NewUserProvider(redisClient *redis.Client) *UserProvider {
	return &UserProvider{
		redisClient: redisClient,
	}
}

// SetCurrent pins a user process-wide, taking precedence over the store.
func (p *UserProvider) SetCurrent(u User) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.current = &u
}

func (p *UserProvider) Current(ctx context.Context) User {
	p.mutex.RLock()
	current := p.current
	p.mutex.RUnlock()
	if current != nil {
		return *current
	}

	cmd := p.redisClient.Get(ctx, userDataKey)
	if err := cmd.Err(); err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("user provider, get user data: %s", err)
		}
		return User{}
	}

	var u User
	if err := json.Unmarshal([]byte(cmd.Val()), &u); err != nil {
		log.Errorf("user provider, unmarshal user data: %s", err)
		return User{}
	}
	return u
}

func (p *UserProvider) DisplayName(ctx context.Context) string {
	return p.Current(ctx).DisplayName()
}
