package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/montelzek/mydorm-backend/internal/announcement"
	"github.com/montelzek/mydorm-backend/internal/api"
	"github.com/montelzek/mydorm-backend/internal/auth"
	"github.com/montelzek/mydorm-backend/internal/building"
	"github.com/montelzek/mydorm-backend/internal/reservation"
	"github.com/montelzek/mydorm-backend/internal/resource"
	"github.com/montelzek/mydorm-backend/internal/room"
	"github.com/montelzek/mydorm-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	DormZone     *time.Location
	RateLimit    float64
	SlotCacheTTL time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Building Module
	bldgRepo := building.NewPgxRepository(cfg.DBPool)
	bldgService := building.NewService(bldgRepo)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo, bldgService)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, roomService, passwordHasher)

	// Resource Module
	resRepo := resource.NewPgxRepository(cfg.DBPool)
	resService := resource.NewService(resRepo, bldgService)

	// Reservation Module
	rsvRepo := reservation.NewPgxRepository(cfg.DBPool)
	rsvService := reservation.NewService(rsvRepo, resService, userService, cfg.DormZone, nil)

	// Announcement Module
	annRepo := announcement.NewPgxRepository(cfg.DBPool)
	annService := announcement.NewService(annRepo, bldgService)

	router := api.NewRouter(api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		UserService:  userService,
		BldgService:  bldgService,
		RoomService:  roomService,
		ResService:   resService,
		RsvService:   rsvService,
		AnnService:   annService,
		JWTManager:   jwtManager,
		DormZone:     cfg.DormZone,
		RateLimit:    cfg.RateLimit,
		SlotCacheTTL: cfg.SlotCacheTTL,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
