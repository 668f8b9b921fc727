package home

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/LeHPhuc/GymApp/internal/auth"
	"github.com/LeHPhuc/GymApp/internal/gymapi"
	"github.com/LeHPhuc/GymApp/internal/home/notifications"
	"github.com/LeHPhuc/GymApp/internal/home/progress"
	"github.com/LeHPhuc/GymApp/internal/home/schedule"
	"github.com/LeHPhuc/GymApp/internal/home/subscriptions"
	"github.com/LeHPhuc/GymApp/internal/telemetry/metrics"
	"github.com/LeHPhuc/GymApp/internal/telemetry/tracing"
	"github.com/LeHPhuc/GymApp/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=mocks_test.go -package=home_test

type gymAPI interface {
	Subscriptions(ctx context.Context, token string) ([]gymapi.SubscriptionRecord, error)
	RegisteredSessions(ctx context.Context, token string) ([]gymapi.SessionRecord, error)
	ProgressRecords(ctx context.Context, token string) ([]gymapi.ProgressRecord, error)
}

type userProvider interface {
	DisplayName(ctx context.Context) string
}

const (
	errMsgSubscription = "Không thể tải dữ liệu gói tập"
	errMsgSessions     = "Không thể tải dữ liệu lịch tập"
	errMsgProgress     = "Không thể tải dữ liệu tiến triển luyện tập"
)

type UserInfo struct {
	DisplayName string `json:"displayName"`
}

type NotificationsInfo struct {
	Items       []notifications.Item `json:"items"`
	UnreadCount int                  `json:"unreadCount"`
}

type UpcomingSessionData struct {
	Selected schedule.ViewModel   `json:"selected"`
	Sessions []schedule.ViewModel `json:"sessions"`
}

// DashboardResponse aggregates the independently-fetched sections.
type DashboardResponse struct {
	User            UserInfo          `json:"user"`
	Subscription    Section           `json:"subscription"`
	UpcomingSession Section           `json:"upcomingSession"`
	Progress        Section           `json:"progress"`
	Notifications   NotificationsInfo `json:"notifications"`
}

type Handler struct {
	api            gymAPI
	users          userProvider
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(api gymAPI, users userProvider, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		api:            api,
		users:          users,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// HandleDashboard runs the three upstream fetches concurrently, each
// filling only its own section, so one failing source never blanks
// the others.
func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.home.dashboard")
	defer span.End()

	token := auth.TokenFromContext(ctx)

	resp := DashboardResponse{
		User:          UserInfo{DisplayName: handler.users.DisplayName(ctx)},
		Notifications: handler.notificationsInfo(),
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		resp.Subscription = handler.subscriptionSection(ctx, token)
	}()
	go func() {
		defer wg.Done()
		resp.UpcomingSession = handler.upcomingSessionSection(ctx, token)
	}()
	go func() {
		defer wg.Done()
		resp.Progress = handler.progressSection(ctx, token)
	}()
	wg.Wait()

	if ctx.Err() != nil {
		log.Tracef("dashboard request canceled: %s", ctx.Err())
		return
	}

	writeJSON(w, resp)
}

func (handler *Handler) HandleSubscription(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.home.subscription")
	defer span.End()
	writeJSON(w, handler.subscriptionSection(ctx, auth.TokenFromContext(ctx)))
}

func (handler *Handler) HandleUpcomingSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.home.upcomingSession")
	defer span.End()
	writeJSON(w, handler.upcomingSessionSection(ctx, auth.TokenFromContext(ctx)))
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.home.progress")
	defer span.End()
	writeJSON(w, handler.progressSection(ctx, auth.TokenFromContext(ctx)))
}

func (handler *Handler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.home.notifications")
	defer span.End()
	writeJSON(w, handler.notificationsInfo())
}

func (handler *Handler) subscriptionSection(ctx context.Context, token string) Section {
	records, err := handler.api.Subscriptions(ctx, token)
	handler.countFetch("subscriptions", err)
	if err != nil {
		log.Errorf("dashboard: fetch subscriptions: %s", err)
		return errorSection(err, errMsgSubscription)
	}

	active := subscriptions.Active(records)
	if active == nil {
		return emptySection()
	}
	return readySection(subscriptions.BuildViewModel(*active))
}

func (handler *Handler) upcomingSessionSection(ctx context.Context, token string) Section {
	records, err := handler.api.RegisteredSessions(ctx, token)
	handler.countFetch("sessions", err)
	if err != nil {
		log.Errorf("dashboard: fetch registered sessions: %s", err)
		return errorSection(err, errMsgSessions)
	}

	selected, ordered := schedule.SelectUpcoming(records, handler.now())
	if selected == nil {
		return emptySection()
	}
	return readySection(UpcomingSessionData{
		Selected: schedule.BuildViewModel(*selected),
		Sessions: schedule.BuildViewModels(ordered),
	})
}

func (handler *Handler) progressSection(ctx context.Context, token string) Section {
	records, err := handler.api.ProgressRecords(ctx, token)
	handler.countFetch("progress", err)
	if err != nil {
		log.Errorf("dashboard: fetch progress records: %s", err)
		return errorSection(err, errMsgProgress)
	}

	overview := progress.Analyze(progress.FromRecords(records))
	if overview == nil {
		return emptySection()
	}
	return readySection(overview)
}

func (handler *Handler) notificationsInfo() NotificationsInfo {
	items := notifications.Feed()
	return NotificationsInfo{
		Items:       items,
		UnreadCount: notifications.UnreadCount(items),
	}
}

func (handler *Handler) countFetch(source string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	handler.metricsManager.CounterUpstreamFetches.WithLabelValues(source, outcome).Inc()
}

func writeJSON(w http.ResponseWriter, payload any) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal dashboard response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, payloadJson)
}
