package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/LeHPhuc/GymApp/internal/auth"
	"github.com/LeHPhuc/GymApp/internal/telemetry/tracing"
	"github.com/LeHPhuc/GymApp/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const unauthenticatedResponse = `{"status":"error","kind":"unauthenticated","message":"Không tìm thấy token đăng nhập"}`

type AuthMiddlewareHandler struct {
	tokenStore   *auth.TokenStore
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(tokenStore *auth.TokenStore) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokenStore: tokenStore,
		allowedPaths: map[string]bool{
			"/":                 true,
			"/version":          true,
			"/payments/methods": true,
		},
	}
}

// AuthCheck resolves the upstream API bearer token for each request:
// the Authorization header wins, otherwise the credential store is
// consulted. A request with no token anywhere is rejected as
// unauthenticated, distinctly from upstream fetch failures.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				storedToken, err := h.tokenStore.AccessToken(ctx)
				switch {
				case errors.Is(err, auth.ErrNotLoggedIn):
					log.Tracef("[missing token] [auth middleware] unauthenticated => %s", r.URL.Path)
					pkg.WriteResponse(w, pkg.ContentType.JSON, unauthenticatedResponse, http.StatusUnauthorized)
					span.SetStatus(codes.Error, "missing-token")
					return
				case err != nil:
					log.Errorf("[failed token read] => %s: %s", r.URL.Path, err)
					http.Error(w, "internal error", http.StatusInternalServerError)
					span.SetStatus(codes.Error, "token-store-err")
					span.RecordError(err)
					return
				}
				token = storedToken
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithToken(ctx, token)))
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}
