package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/booking"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/config"
	"github.com/mikededo/hubbl-sub000/internal/event"
	"github.com/mikededo/hubbl-sub000/internal/gym"
	"github.com/mikededo/hubbl-sub000/internal/member"
	"github.com/mikededo/hubbl-sub000/internal/mq"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

const visitorTTL = 3 * time.Minute

type Server struct {
	router  *gin.Engine
	http    *http.Server
	limiter *RateLimiter
	stop    context.CancelFunc
}

type handlers struct {
	person  *person.Handler
	gym     *gym.Handler
	event   *event.Handler
	member  *member.Handler
	booking *booking.Handler
}

// New builds every repository, service and handler of the API once and
// registers the routes.
func New(db *sqlx.DB, cfg *config.Config, notifier booking.Notifier, publisher mq.Publisher) *Server {
	clock := calendar.NewClock(cfg.Location())

	people := person.NewRepository(db)
	resolver := person.NewResolver(people)
	zones := gym.NewRepository(db)
	events := event.NewRepository(db)
	appointments := booking.NewRepository(db)
	validator := booking.NewValidator(appointments, events, zones, resolver, clock)

	h := handlers{
		person:  person.NewHandler(person.NewService(people, cfg.JWTSecret)),
		gym:     gym.NewHandler(gym.NewService(zones, people, resolver)),
		event:   event.NewHandler(event.NewService(events, zones, people, resolver, clock)),
		member:  member.NewHandler(member.NewService(people, resolver)),
		booking: booking.NewHandler(booking.NewService(appointments, validator, events, zones, resolver, notifier, publisher)),
	}

	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, visitorTTL)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(),
	)
	registerSystemRoutes(router, db)
	registerRoutes(router, h, cfg.JWTSecret, RateLimitMiddleware(limiter))

	ctx, stop := context.WithCancel(context.Background())
	go limiter.Cleanup(ctx, time.Minute)

	return &Server{
		router:  router,
		http:    &http.Server{Handler: router, ReadHeaderTimeout: 5 * time.Second},
		limiter: limiter,
		stop:    stop,
	}
}

func registerRoutes(router *gin.Engine, h handlers, secret string, limit gin.HandlerFunc) {
	public := router.Group("/auth", limit)
	{
		public.POST("/register", h.person.RegisterClient)
		public.POST("/register/owner", h.person.RegisterOwner)
		public.POST("/login", h.person.Login)
		public.POST("/refresh", h.person.Refresh)
	}

	protected := router.Group("/", limit, auth.AuthMiddleware(secret))
	protected.GET("/me", h.person.Me)

	protected.POST("/virtual-gyms", h.gym.CreateVirtualGym)
	protected.GET("/virtual-gyms", h.gym.ListVirtualGyms)
	protected.PUT("/virtual-gyms/:vgId", h.gym.UpdateVirtualGym)
	protected.DELETE("/virtual-gyms/:vgId", h.gym.DeleteVirtualGym)
	protected.POST("/virtual-gyms/:vgId/gym-zones", h.gym.CreateGymZone)
	protected.GET("/virtual-gyms/:vgId/gym-zones", h.gym.ListGymZones)
	protected.PUT("/gym-zones/:id", h.gym.UpdateGymZone)
	protected.DELETE("/gym-zones/:id", h.gym.DeleteGymZone)

	protected.POST("/events", h.event.Create)
	protected.PUT("/events/:eId", h.event.Update)
	protected.DELETE("/events/:eId", h.event.Delete)
	protected.GET("/calendars/:cId/events", h.event.ListByCalendar)

	protected.POST("/workers", h.member.CreateWorker)
	protected.GET("/workers", h.member.ListWorkers)
	protected.PUT("/workers/:id", h.member.UpdateWorker)
	protected.DELETE("/workers/:id", h.member.DeleteWorker)
	protected.POST("/trainers", h.member.CreateTrainer)
	protected.GET("/trainers", h.member.ListTrainers)
	protected.PUT("/trainers/:id", h.member.UpdateTrainer)
	protected.DELETE("/trainers/:id", h.member.DeleteTrainer)
	protected.GET("/clients", h.member.ListClients)
	protected.PUT("/clients/:id", h.member.UpdateClient)
	protected.DELETE("/clients/:id", h.member.DeleteClient)

	protected.POST("/events/:eId/appointments", h.booking.CreateEventAppointment)
	protected.GET("/events/:eId/appointments", h.booking.ListEventAppointments)
	protected.PUT("/events/:eId/appointments/:id/cancel", h.booking.CancelEventAppointment)
	protected.DELETE("/events/:eId/appointments/:id", h.booking.DeleteEventAppointment)

	protected.POST("/calendars/:cId/appointments", h.booking.CreateCalendarAppointment)
	protected.GET("/calendars/:cId/appointments", h.booking.ListCalendarAppointments)
	protected.PUT("/calendars/:cId/appointments/:id/cancel", h.booking.CancelCalendarAppointment)
	protected.DELETE("/calendars/:cId/appointments/:id", h.booking.DeleteCalendarAppointment)

	protected.GET("/appointments/me", h.booking.ClientAppointments)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on port until Shutdown is called.
func (s *Server) Start(port string) error {
	s.http.Addr = ":" + port
	return s.http.ListenAndServe()
}

// Shutdown stops accepting requests and waits for the running ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stop()
	return s.http.Shutdown(ctx)
}
