package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/montelzek/mydorm-backend/internal/announcement"
	annHttp "github.com/montelzek/mydorm-backend/internal/announcement/http"
	"github.com/montelzek/mydorm-backend/internal/auth"
	"github.com/montelzek/mydorm-backend/internal/building"
	bldgHttp "github.com/montelzek/mydorm-backend/internal/building/http"
	"github.com/montelzek/mydorm-backend/internal/mw"
	"github.com/montelzek/mydorm-backend/internal/reservation"
	rsvHttp "github.com/montelzek/mydorm-backend/internal/reservation/http"
	"github.com/montelzek/mydorm-backend/internal/resource"
	resHttp "github.com/montelzek/mydorm-backend/internal/resource/http"
	"github.com/montelzek/mydorm-backend/internal/room"
	roomHttp "github.com/montelzek/mydorm-backend/internal/room/http"
	"github.com/montelzek/mydorm-backend/internal/user"
	userHttp "github.com/montelzek/mydorm-backend/internal/user/http"
)

// Config holds the services and settings the router assembles.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService  user.Service
	BldgService  building.Service
	RoomService  room.Service
	ResService   resource.Service
	RsvService   reservation.Service
	AnnService   announcement.Service
	JWTManager   *auth.JWTManager
	DormZone     *time.Location
	RateLimit    float64
	SlotCacheTTL time.Duration
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth, rate
// limiting) and registering routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	if cfg.RateLimit > 0 {
		r.Use(mw.RateLimit(cfg.RateLimit, int(cfg.RateLimit)*2))
	}

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin()

	slotCache := mw.CacheGET(cache.New(cfg.SlotCacheTTL, 2*cfg.SlotCacheTTL), cfg.SlotCacheTTL)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	bldgHandler := bldgHttp.NewHandler(cfg.BldgService)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	resHandler := resHttp.NewHandler(cfg.ResService)
	rsvHandler := rsvHttp.NewHandler(cfg.RsvService, cfg.DormZone)
	annHandler := annHttp.NewHandler(cfg.AnnService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		bldgHttp.RegisterRoutes(v1, bldgHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		resHttp.RegisterRoutes(v1, resHandler, authMiddleware, adminMiddleware)
		rsvHttp.RegisterRoutes(v1, rsvHandler, authMiddleware, adminMiddleware, slotCache)
		annHttp.RegisterRoutes(v1, annHandler, authMiddleware, adminMiddleware)
	}

	return r
}
