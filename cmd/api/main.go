package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xcampos9/imovelhub/internal/auth"
	"github.com/xcampos9/imovelhub/internal/entity"
	"github.com/xcampos9/imovelhub/internal/infra/cache"
	"github.com/xcampos9/imovelhub/internal/infra/database"
	"github.com/xcampos9/imovelhub/internal/infra/http/handlers"
	"github.com/xcampos9/imovelhub/internal/infra/http/middleware"
	"github.com/xcampos9/imovelhub/internal/infra/integration/cloudinary"
	"github.com/xcampos9/imovelhub/internal/infra/integration/gemini"
	"github.com/xcampos9/imovelhub/internal/infra/integration/whatsapp"
	"github.com/xcampos9/imovelhub/internal/infra/mail"
	"github.com/xcampos9/imovelhub/internal/infra/queue"
	"github.com/xcampos9/imovelhub/internal/infra/worker"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

func main() {
	godotenv.Load()

	ctx := context.Background()

	mongoClient, err := database.NewMongoConnection(os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no MongoDB: %v", err)
	}
	defer database.CloseConnection(mongoClient)

	db := mongoClient.Database(envOr("MONGO_DATABASE", "imovelhub"))

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no RabbitMQ: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Redis é opcional: sem ele a vitrine vai direto no banco.
	var listingCache *cache.ListingCache
	redisClient, err := cache.NewRedisClient(envOr("REDIS_ADDR", "localhost:6379"), os.Getenv("REDIS_PASSWORD"))
	if err != nil {
		log.Printf("⚠️ Redis indisponível, vitrine sem cache: %v", err)
	} else {
		listingCache = cache.NewListingCache(redisClient, 10*time.Minute)
	}

	// 1. Repositórios
	usuarioRepo := database.NewUsuarioRepository(db)
	imovelRepo := database.NewImovelRepository(db)
	transacaoRepo := database.NewTransacaoRepository(db)
	favoritoRepo := database.NewFavoritoRepository(db)

	// 2. Gateways e Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
	)
	uploader := cloudinary.NewClient(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	)
	whatsappClient := whatsapp.NewClient()

	geminiClient, err := gemini.NewClient(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("❌ Falha ao criar cliente Gemini: %v", err)
	}

	tokens := auth.NewJWTManager(os.Getenv("JWT_SECRET"), 24*time.Hour)

	// 3. Workers
	notificationWorker := queue.NewNotificationWorker(rabbitMQ.Ch, usuarioRepo, mailSender, whatsappClient)
	go notificationWorker.Start(queue.QueueName)

	if listingCache != nil {
		cacheWarmer := worker.NewCacheWarmer(imovelRepo, listingCache)
		go cacheWarmer.Start(ctx)
	}

	// 4. UseCases
	loginUC := usecase.NewLoginUseCase(usuarioRepo, tokens)
	registerUC := usecase.NewRegisterClienteUseCase(usuarioRepo)
	createCorretorUC := usecase.NewCreateCorretorUseCase(usuarioRepo, mailSender)
	createTransacaoUC := usecase.NewCreateTransacaoUseCase(transacaoRepo, imovelRepo)
	pipelineUC := usecase.NewTransacaoPipelineUseCase(transacaoRepo, uploader)
	marcarFavoritoUC := usecase.NewMarcarFavoritoUseCase(favoritoRepo, imovelRepo, usuarioRepo, producer)
	aggregateLeadsUC := usecase.NewAggregateLeadsUseCase(favoritoRepo, usuarioRepo)
	descricaoUC := usecase.NewGenerateDescricaoUseCase(imovelRepo, geminiClient)

	// 5. Handlers
	authHandler := handlers.NewAuthHandler(loginUC, registerUC)
	imovelHandler := handlers.NewImovelHandler(imovelRepo, usuarioRepo, listingCache, descricaoUC)
	transacaoHandler := handlers.NewTransacaoHandler(createTransacaoUC, pipelineUC)
	favoritoHandler := handlers.NewFavoritoHandler(marcarFavoritoUC)
	leadHandler := handlers.NewLeadHandler(aggregateLeadsUC)
	superAdminHandler := handlers.NewSuperAdminHandler(createCorretorUC, usuarioRepo, imovelRepo)
	perfilHandler := handlers.NewPerfilHandler(usuarioRepo)
	uploadHandler := handlers.NewUploadHandler(uploader)
	healthHandler := handlers.NewHealthHandler(mongoClient, redisClient, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Rotas públicas
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/register", authHandler.Register)
	r.Get("/imoveis", imovelHandler.ListPublic)
	r.Get("/imoveis/{id}", imovelHandler.GetPublic)
	r.Get("/corretores/{id}", imovelHandler.PaginaCorretor)

	// Área do corretor
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(tokens))
		r.Use(middleware.RequireRole(entity.RoleCorretor))

		r.Get("/perfil", perfilHandler.Me)
		r.Put("/perfil/personalizacao", perfilHandler.UpdatePersonalizacao)

		r.Post("/uploads", uploadHandler.Upload)

		r.Get("/imoveis", imovelHandler.ListMine)
		r.Post("/imoveis", imovelHandler.Create)
		r.Put("/imoveis/{id}", imovelHandler.Update)
		r.Delete("/imoveis/{id}", imovelHandler.Delete)
		r.Post("/imoveis/{id}/descricao", imovelHandler.GerarDescricao)

		r.Get("/transacoes", transacaoHandler.List)
		r.Get("/transacoes/board", transacaoHandler.Board)
		r.Get("/transacoes/modelos", transacaoHandler.Modelos)
		r.Post("/transacoes", transacaoHandler.Create)
		r.Get("/transacoes/{id}", transacaoHandler.Get)
		r.Delete("/transacoes/{id}", transacaoHandler.Delete)
		r.Patch("/transacoes/{id}/status", transacaoHandler.MoveStatus)
		r.Patch("/transacoes/{id}/etapas/{index}", transacaoHandler.ToggleEtapa)
		r.Post("/transacoes/{id}/documentos", transacaoHandler.AddDocumento)
		r.Delete("/transacoes/{id}/documentos/{documentoId}", transacaoHandler.RemoveDocumento)

		r.Get("/leads", leadHandler.List)
	})

	// Área do cliente
	r.Route("/cliente", func(r chi.Router) {
		r.Use(middleware.Auth(tokens))
		r.Use(middleware.RequireRole(entity.RoleCliente))

		r.Get("/favoritos", favoritoHandler.ListMine)
		r.Post("/favoritos", favoritoHandler.Marcar)
		r.Delete("/favoritos/{imovelId}", favoritoHandler.Desmarcar)
	})

	// Área do superadmin
	r.Route("/superadmin", func(r chi.Router) {
		r.Use(middleware.Auth(tokens))
		r.Use(middleware.RequireRole(entity.RoleSuperAdmin))

		r.Get("/corretores", superAdminHandler.ListCorretores)
		r.Post("/corretores", superAdminHandler.CreateCorretor)
		r.Patch("/corretores/{id}/status", superAdminHandler.ToggleStatus)
		r.Delete("/corretores/{id}", superAdminHandler.DeleteCorretor)
		r.Delete("/imoveis/{id}", superAdminHandler.DeleteImovel)
		r.Get("/stats", superAdminHandler.Stats)
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Server ImovelHub rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
