package routes

import (
	"fmt"
	"net/http"

	"subspace-catalog/internal/catalog/brand"
	"subspace-catalog/internal/catalog/solution"
	"subspace-catalog/internal/catalog/tenant"
	"subspace-catalog/internal/pkg/log/access_log"
	"subspace-catalog/internal/pkg/log/logger"

	_ "subspace-catalog/docs"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Controller é o contrato mínimo que cada domínio expõe ao roteador.
type Controller interface {
	Routes(routes gin.IRouter)
}

func SetupRouter(db *gorm.DB) (*gin.Engine, error) {
	env := viper.GetString("app.env")
	switch env {
	case "dev", "":
		gin.SetMode(gin.DebugMode)
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	default:
		return nil, fmt.Errorf("valor de ambiente inválido '%s': use 'dev' ou 'prod'", env)
	}

	var accessRepo access_log.Repository
	if db != nil && viper.GetBool("access_log.persist") {
		accessRepo = access_log.NewRepository(db)
	}

	r := gin.New()
	r.Use(gin.Recovery(), access_log.Middleware(logger.With("http"), accessRepo))
	r.GET("/health", health)
	registerDocs(r)

	controllers, err := catalogControllers()
	if err != nil {
		return nil, err
	}
	SetupApiRoutes(r, controllers...)
	return r, nil
}

// registerDocs publica o Swagger em /doc/index.html.
func registerDocs(r gin.IRouter) {
	r.GET("/doc/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"object": "health", "status": "ok"})
}

func catalogControllers() ([]Controller, error) {
	tenantController, err := tenant.Use()
	if err != nil {
		return nil, err
	}
	brandController, err := brand.Use()
	if err != nil {
		return nil, err
	}
	solutionController, err := solution.Use()
	if err != nil {
		return nil, err
	}
	return []Controller{tenantController, brandController, solutionController}, nil
}

func SetupApiRoutes(r *gin.Engine, controllers ...Controller) {
	route := r.Group("/api")
	for _, ctrl := range controllers {
		ctrl.Routes(route)
	}
	logger.With("http").Debug("rotas registradas", zap.Int("routes", len(r.Routes())))
}
