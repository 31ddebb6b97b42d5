package api

import (
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/quizcourse/quizcourse/docs"
	v1 "github.com/quizcourse/quizcourse/internal/api/handler/v1"
	"github.com/quizcourse/quizcourse/internal/api/memstore"
	"github.com/quizcourse/quizcourse/internal/api/middleware"
	"github.com/quizcourse/quizcourse/internal/config"
)

// Server is the stub backend: the quiz REST contract served from memory,
// used for local development and by the client tests.
type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Store  *memstore.Store
}

func NewServer(conf *config.AppConfig, store *memstore.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		Store:  store,
	}

	s.MountMiddlewares()
	s.MountHandlers(
		v1.NewAuthHandler(conf.Stub, store),
		v1.NewUserHandler(store),
		v1.NewFolderHandler(store),
		v1.NewGameHandler(store),
		v1.NewProgressHandler(store),
		v1.NewReportHandler(store),
	)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.Stub.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	folderHandler *v1.FolderHandler,
	gameHandler *v1.GameHandler,
	progressHandler *v1.ProgressHandler,
	reportHandler *v1.ReportHandler,
) {
	s.Router.POST("/login", authHandler.HandleLogin)
	s.Router.POST("/users/login", authHandler.HandleLoginJSON)
	s.Router.POST("/users/register", authHandler.HandleRegister)

	authed := s.Router.Group("/", middleware.NewAuthenticator(s.Config.Stub.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/users/me", userHandler.HandleMe)
		authed.PUT("/users/me/interests", userHandler.HandleUpdateInterests)
		authed.GET("/dashboard", userHandler.HandleDashboard)

		authed.GET("/folders/", folderHandler.HandleListFolders)
		authed.POST("/folders/", folderHandler.HandleCreateFolder)
		authed.GET("/folders/:id", folderHandler.HandleGetFolder)
		authed.GET("/folders/:id/with-games", folderHandler.HandleGetFolderWithGames)
		authed.PUT("/folders/update/:id", folderHandler.HandleUpdateFolder)
		authed.DELETE("/folders/delete/:id", folderHandler.HandleDeleteFolder)

		authed.POST("/ai/generate-from-folder/:id", folderHandler.HandleGenerateGames)
		authed.GET("/ai/folders/random/with-games", folderHandler.HandleRandomFolder)

		authed.GET("/games/folder/:id", gameHandler.HandleGamesByFolder)
		authed.GET("/games/:id", gameHandler.HandleGetGame)
		authed.POST("/games/:id/mark-played", gameHandler.HandleMarkPlayed)

		authed.GET("/progress/:id", progressHandler.HandleGetProgress)
		authed.PUT("/progress/:id/:gameID", progressHandler.HandleSaveProgress)

		authed.POST("/reports", reportHandler.HandleCreateReport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = "localhost:" + strings.TrimPrefix(s.Config.Stub.Port, ":")
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "quizcourse stub backend"
	docs.SwaggerInfo.Description = "In-memory implementation of the quiz REST contract."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
