package httpserver

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"search-srv/internal/middleware"
	"search-srv/internal/search"
	searchHTTP "search-srv/internal/search/delivery/http"
	searchProducer "search-srv/internal/search/delivery/kafka/producer"
	searchPostgre "search-srv/internal/search/repository/postgre"
	searchRedis "search-srv/internal/search/repository/redis"
	searchUsecase "search-srv/internal/search/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize repositories
	catalogRepo := searchPostgre.New(srv.postgresDB, srv.l)
	cacheRepo := searchRedis.New(srv.redisClient, srv.l)

	// Event publisher is optional; without a broker searches still work,
	// they just leave no history.
	var publisher search.EventPublisher
	if srv.kafkaProducer != nil {
		publisher = searchProducer.New(srv.l, srv.kafkaProducer)
	}

	// Initialize usecases
	searchUC := searchUsecase.New(srv.l, catalogRepo, cacheRepo, publisher, srv.config.Search)

	// Initialize HTTP handlers
	searchHandler := searchHTTP.New(srv.l, searchUC, srv.discord)

	// Map routes
	products := srv.gin.Group("/api/v1/products")
	products.Use(mw.OptionalAuth())
	searchHTTP.MapSearchRoutes(products, searchHandler)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
