package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/deliciosaph/deliciosa/internal/config"
	"github.com/deliciosaph/deliciosa/internal/infra/database"
	"github.com/deliciosaph/deliciosa/internal/infra/gateway"
	"github.com/deliciosaph/deliciosa/internal/infra/repository"
	"github.com/deliciosaph/deliciosa/internal/present/rest"
	"github.com/deliciosaph/deliciosa/internal/service"
	"github.com/deliciosaph/deliciosa/internal/service/card"
	"github.com/deliciosaph/deliciosa/internal/usecase"
)

func main() {
	var configPath string
	var seed bool
	flag.StringVar(&configPath, "config", "config.yaml", "path to the configuration file")
	flag.BoolVar(&seed, "seed", false, "seed the admin account and starter content, then continue")
	flag.Parse()

	conf, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		slog.Error("Failed to connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := database.MigratePostgres(db); err != nil {
		slog.Error("Failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if seed {
		adminEmail := os.Getenv("DELICIOSA_ADMIN_EMAIL")
		adminPassword := os.Getenv("DELICIOSA_ADMIN_PASSWORD")
		if adminEmail == "" || adminPassword == "" {
			slog.Error("Seeding requires DELICIOSA_ADMIN_EMAIL and DELICIOSA_ADMIN_PASSWORD")
			os.Exit(1)
		}
		if err := database.Seed(db, adminEmail, adminPassword); err != nil {
			slog.Error("Failed to seed database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)

	if conf.Server.EnableTrace {
		shutdown, err := setupTracing(conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("Failed to set up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown()
	}

	storage, err := gateway.NewStorageGateway(conf.Storage)
	if err != nil {
		slog.Error("Failed to initialize object storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	mailer := gateway.NewMailGateway(conf.SMTP)
	fonts := gateway.NewFontGateway(conf.Site.FontURL)

	inspirationRepo := repository.NewInspirationRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(rdb)

	authService := service.NewAuthService(conf.Auth, userRepo, sessionRepo)
	signalService := service.NewSignalService(rdb)
	renderer := card.NewRenderer(fonts)

	inspirationUsecase := usecase.NewInspirationUsecase(inspirationRepo)
	shareUsecase := usecase.NewShareUsecase(inspirationRepo, conf.Site.BaseURL)
	bannerUsecase := usecase.NewBannerUsecase(bannerRepo)
	menuUsecase := usecase.NewMenuUsecase(menuRepo)
	galleryUsecase := usecase.NewGalleryUsecase(galleryRepo)
	packageUsecase := usecase.NewPackageUsecase(packageRepo)
	inquiryUsecase := usecase.NewInquiryUsecase(inquiryRepo, mailer, signalService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("deliciosa"))
	}

	templates, err := rest.NewTemplateRenderer("web/templates")
	if err != nil {
		slog.Error("Failed to load templates", slog.String("error", err.Error()))
		os.Exit(1)
	}
	e.Renderer = templates
	e.Validator = rest.NewValidator()
	e.Static("/static", "web/static")

	handler := rest.NewHandler(
		inspirationUsecase,
		shareUsecase,
		bannerUsecase,
		menuUsecase,
		galleryUsecase,
		packageUsecase,
		inquiryUsecase,
		renderer,
		authService,
		signalService,
		storage,
	)
	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

func setupTracing(endpoint string) (func(), error) {
	ctx := context.Background()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("deliciosa"),
		),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			slog.Error("Failed to shut down tracer provider", slog.String("error", err.Error()))
		}
	}, nil
}
