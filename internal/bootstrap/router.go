package bootstrap

import (
	"time"

	httpapi "github.com/GoSim-25-26J-441/project-tracker/internal/api/http"
	"github.com/GoSim-25-26J-441/project-tracker/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/board"
	trackerhttp "github.com/GoSim-25-26J-441/project-tracker/internal/tracker/http"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/realtime"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	RateRPS     float64
	RateBurst   int
	Board       *board.Board
	Hub         *realtime.Hub
	Ping        httpapi.Pinger
	Log         *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	store := dep.Board.Store()
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Ping, func() int {
		return len(store.Snapshot())
	})
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	trackerHandler := trackerhttp.New(dep.Board, dep.Hub, dep.Log)
	trackerHandler.Register(api, middleware.RateLimit(dep.RateRPS, dep.RateBurst))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
