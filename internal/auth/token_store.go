package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/LeHPhuc/GymApp/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

// accessTokenKey is the fixed credential store key under which the
// mobile app session keeps the upstream API bearer token.
const accessTokenKey = "accessToken"

// ErrNotLoggedIn signals a missing access token. It is a recoverable
// "must log in" condition, not a transport failure.
var ErrNotLoggedIn = errors.New("not logged in")

// TokenStore is a read-only view of the credential store.
type TokenStore struct {
	redisClient *redis.Client
}

func NewTokenStore(redisClient *redis.Client) *TokenStore {
	return &TokenStore{
		redisClient: redisClient,
	}
}

func (s *TokenStore) AccessToken(ctx context.Context) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.tokenstore.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := s.redisClient.Get(ctx, accessTokenKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotLoggedIn
		}
		return "", fmt.Errorf("get access token: %w", err)
	}

	token := cmd.Val()
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

type tokenContextKey struct{}

func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the bearer token resolved by the auth
// middleware, or empty string when the request is unauthenticated.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}
