package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/shapeupapp/backend/internal/auth"
	"github.com/shapeupapp/backend/internal/config"
	"github.com/shapeupapp/backend/internal/dailylog"
	"github.com/shapeupapp/backend/internal/db"
	"github.com/shapeupapp/backend/internal/middleware"
	"github.com/shapeupapp/backend/internal/profile"
	"github.com/shapeupapp/backend/internal/targets"
	"github.com/shapeupapp/backend/internal/telemetry/metrics"
	"github.com/shapeupapp/backend/internal/telemetry/tracing"
	"github.com/shapeupapp/backend/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	dbPool   *pgxpool.Pool
	location *time.Location

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	profileService  *profile.Service
	dailyLogService *dailylog.Service
	targetsService  *targets.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config           *config.Config
	GeminiAPIKey     string
	RedisPassword    string
	PostgresPassword string
	VersionInfo      string
	TracingEnabled   bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	location, err := time.LoadLocation(params.Config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", params.Config.Timezone, err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDB,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDB},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("shapeup", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.TracingEnabled, "shapeup-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	suggestionAPIURL := params.Config.SuggestionAPIURL
	if suggestionAPIURL == "" {
		suggestionAPIURL = targets.DefaultGeminiBaseURL
	}
	suggestionProvider := targets.NewGeminiProvider(
		suggestionAPIURL,
		params.GeminiAPIKey,
		tracedHttpClient,
	)

	profileService := profile.NewService(
		profile.NewRepo(dbPool),
		params.Config.DefaultStepsTarget,
	)
	dailyLogService := dailylog.NewService(
		dailylog.NewRepo(dbPool),
		profileService,
		profileService,
		metricsManager,
	)
	targetsService := targets.NewService(
		suggestionProvider,
		profileService,
		profileService,
		dailyLogService,
		metricsManager,
	)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		location:    location,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		profileService:  profileService,
		dailyLogService: dailyLogService,
		targetsService:  targetsService,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("shapeup-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	profileHandler := profile.NewHandler(s.profileService, s.authService, s.dailyLogService)
	loginRateLimit := middleware.RateLimit(
		reqRateLimiter, "login", s.config.LoginRateLimitAllowedPerMin,
	)
	r.Handle("/user/register",
		loginRateLimit(http.HandlerFunc(profileHandler.HandleRegister)),
	).Methods("POST", "OPTIONS").Name("register")
	r.Handle("/user/login",
		loginRateLimit(http.HandlerFunc(profileHandler.HandleLogin)),
	).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/user/logout", profileHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	r.HandleFunc("/user/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/user/profile", profileHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
	r.HandleFunc("/user/profile", profileHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-account")

	dailyLogHandler := dailylog.NewHandler(s.dailyLogService)
	r.HandleFunc("/dailylog", dailyLogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-days")
	r.HandleFunc("/dailylog/day/{date}", dailyLogHandler.HandleGetDay).Methods("GET", "OPTIONS").Name("get-day")
	r.HandleFunc("/dailylog/day/{date}/summary", dailyLogHandler.HandleGetSummary).Methods("GET", "OPTIONS").Name("day-summary")
	r.HandleFunc("/dailylog/day/{date}/food", dailyLogHandler.HandleAddFood).Methods("POST", "OPTIONS").Name("add-food")
	r.HandleFunc("/dailylog/day/{date}/food/{id}", dailyLogHandler.HandleRemoveFood).Methods("DELETE", "OPTIONS").Name("remove-food")
	r.HandleFunc("/dailylog/day/{date}/steps", dailyLogHandler.HandleSetSteps).Methods("PUT", "OPTIONS").Name("set-steps")
	r.HandleFunc("/dailylog/day/{date}/water", dailyLogHandler.HandleSetWater).Methods("PUT", "OPTIONS").Name("set-water")
	r.HandleFunc("/dailylog/day/{date}/weight", dailyLogHandler.HandleLogWeight).Methods("PUT", "OPTIONS").Name("log-weight")

	targetsHandler := targets.NewHandler(s.targetsService, s.location)
	r.HandleFunc("/dailylog/day/{date}/briefing", targetsHandler.HandleBriefing).Methods("POST", "OPTIONS").Name("day-briefing")
	r.HandleFunc("/briefing", targetsHandler.HandleBriefing).Methods("POST", "OPTIONS").Name("briefing-today")
	r.HandleFunc("/food/estimate", targetsHandler.HandleEstimateFood).Methods("POST", "OPTIONS").Name("estimate-food")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "ok")
	}).Methods("GET").Name("health")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.PrometheusMetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
