package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/admin_logout"
	blockSlotHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/block_slot"
	bookAnotherHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/book_another"
	chooseDateHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/choose_date"
	chooseGroundHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/choose_ground"
	completePaymentHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/complete_payment"
	confirmSlotsHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/confirm_slots"
	createOfflineBookingHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/create_offline_booking"
	createSessionHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/delete_session"
	getPricingHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/get_pricing"
	getSessionHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/get_session"
	goBackHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/go_back"
	listBlockedSlotsHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/list_blocked_slots"
	retryFetchHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/retry_fetch"
	startPaymentHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/start_payment"
	toggleSlotHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/toggle_slot"
	unblockSlotHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/unblock_slot"
	updateGroundPriceHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/update_ground_price"
	"github.com/m04kA/SMC-TurfBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TurfBooking/internal/service/admin"
	"github.com/m04kA/SMC-TurfBooking/internal/service/sessions"
)

// Deps зависимости HTTP API
type Deps struct {
	Sessions *sessions.Service
	Admin    *admin.Service
	Logger   middleware.Logger

	// Metrics и MetricsPath включают сбор и публикацию метрик, если Metrics не nil
	Metrics     middleware.HTTPMetrics
	MetricsPath string

	// RateLimiter ограничивает запросы к API по IP, если не nil
	RateLimiter *middleware.RateLimiter
}

// NewRouter собирает маршруты сервиса
func NewRouter(d Deps) *mux.Router {
	log := d.Logger

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(d.Sessions, log)
	getSession := getSessionHandler.NewHandler(d.Sessions, log)
	deleteSession := deleteSessionHandler.NewHandler(d.Sessions, log)
	chooseDate := chooseDateHandler.NewHandler(d.Sessions, log)
	toggleSlot := toggleSlotHandler.NewHandler(d.Sessions, log)
	confirmSlots := confirmSlotsHandler.NewHandler(d.Sessions, log)
	chooseGround := chooseGroundHandler.NewHandler(d.Sessions, log)
	startPayment := startPaymentHandler.NewHandler(d.Sessions, log)
	completePayment := completePaymentHandler.NewHandler(d.Sessions, log)
	goBack := goBackHandler.NewHandler(d.Sessions, log)
	retryFetch := retryFetchHandler.NewHandler(d.Sessions, log)
	bookAnother := bookAnotherHandler.NewHandler(d.Sessions, log)

	adminLogin := adminLoginHandler.NewHandler(d.Admin, log)
	adminLogout := adminLogoutHandler.NewHandler(d.Admin, log)
	getPricing := getPricingHandler.NewHandler(d.Admin, log)
	updateGroundPrice := updateGroundPriceHandler.NewHandler(d.Admin, log)
	createOfflineBooking := createOfflineBookingHandler.NewHandler(d.Admin, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(d.Admin, log)
	blockSlot := blockSlotHandler.NewHandler(d.Admin, log)
	unblockSlot := unblockSlotHandler.NewHandler(d.Admin, log)

	r := mux.NewRouter()

	// Metrics middleware и endpoint (публичный, без ограничений)
	if d.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.Metrics))
		r.Handle(d.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if d.RateLimiter != nil {
		api.Use(d.RateLimiter.Middleware())
	}

	// ============================================================
	// BOOKING WIZARD (сессия в пути)
	// ============================================================

	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", deleteSession.Handle).Methods(http.MethodDelete)

	// Шаг даты
	api.HandleFunc("/sessions/{sessionId}/date", chooseDate.Handle).Methods(http.MethodPost)

	// Шаг часов
	api.HandleFunc("/sessions/{sessionId}/slots/{hour:[0-9]+}/toggle", toggleSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/slots/confirm", confirmSlots.Handle).Methods(http.MethodPost)

	// Шаг площадки
	api.HandleFunc("/sessions/{sessionId}/ground", chooseGround.Handle).Methods(http.MethodPost)

	// Контакты и оплата
	api.HandleFunc("/sessions/{sessionId}/payment", startPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/payment/outcome", completePayment.Handle).Methods(http.MethodPost)

	// Навигация
	api.HandleFunc("/sessions/{sessionId}/back", goBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/retry", retryFetch.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/restart", bookAnother.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN PANEL (требуют Bearer токен)
	// ============================================================

	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.AdminAuth(d.Admin, log))

	protected.HandleFunc("/logout", adminLogout.Handle).Methods(http.MethodPost)

	// --- Тарифы ---
	protected.HandleFunc("/pricing", getPricing.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/grounds/{groundId}/price", updateGroundPrice.Handle).Methods(http.MethodPut)

	// --- Офлайн-бронирования ---
	protected.HandleFunc("/offline-bookings", createOfflineBooking.Handle).Methods(http.MethodPost)

	// --- Блокировка часов ---
	protected.HandleFunc("/blocked-slots", listBlockedSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/blocked-slots", blockSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocked-slots/{blockId}", unblockSlot.Handle).Methods(http.MethodDelete)

	return r
}
