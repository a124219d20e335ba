//POST /api/auth/register        # Регистрация (публичный)
//POST /api/auth/login           # Логин (публичный)
//GET  /api/auth/me              # Текущий пользователь (auth)
//GET  /api/cars                 # Каталог с фильтрами (публичный)
//GET  /api/cars/{id}            # Автомобиль (публичный)
//POST|PUT|DELETE /api/cars      # Управление каталогом (admin)
//POST /api/messages             # Форма обратной связи (публичный)
//GET|PUT|DELETE /api/messages   # Входящие (admin)
//GET|POST|DELETE /api/favorites # Избранное (auth)
//GET|PUT|DELETE /api/users      # Пользователи (admin), PUT /api/users/profile (auth)
//GET  /api/admin/stats          # Счётчики панели (admin)
//POST /api/admin/store/reconfigure

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"starauto/internal/app"
	adminAPI "starauto/internal/app/server/api/http/admin"
	carAPI "starauto/internal/app/server/api/http/car"
	favoriteAPI "starauto/internal/app/server/api/http/favorite"
	healthAPI "starauto/internal/app/server/api/http/health"
	messageAPI "starauto/internal/app/server/api/http/message"
	"starauto/internal/app/server/api/http/middleware"
	"starauto/internal/app/server/api/http/middleware/auth"
	"starauto/internal/app/server/api/http/middleware/logger"
	userAPI "starauto/internal/app/server/api/http/user"
	"starauto/internal/docstore"
	"starauto/internal/domain/user"
)

type Handlers struct {
	Health   *healthAPI.Handler
	User     *userAPI.Handler
	Car      *carAPI.Handler
	Message  *messageAPI.Handler
	Favorite *favoriteAPI.Handler
	Admin    *adminAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(factory *docstore.Factory, services *app.Services, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Star Auto API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	API := humachi.New(mux, config)

	h := handlers(factory, services, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Car.SetupRoutes(API)
	h.Message.SetupRoutes(API)
	h.Favorite.SetupRoutes(API)
	h.Admin.SetupRoutes(API)

	return mux
}

func handlers(factory *docstore.Factory, s *app.Services, log *slog.Logger) *Handlers {
	authMW := auth.New(s.Sessions, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	chains := func() middleware.Chains {
		var c middleware.Chains
		middlewares.Add(loggerMW.Middleware())
		c.Public = middlewares.GetAllAndClear()

		middlewares.Add(loggerMW.Middleware())
		middlewares.Add(authMW.Middleware())
		c.User = middlewares.GetAllAndClear()

		middlewares.Add(loggerMW.Middleware())
		middlewares.Add(authMW.Middleware())
		middlewares.Add(authMW.RequireRole(user.RoleAdmin))
		c.Admin = middlewares.GetAllAndClear()
		return c
	}

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(factory, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		User:     userAPI.NewHandler(s.Users, s.Sessions, log, chains()),
		Car:      carAPI.NewHandler(s.Cars, log, chains()),
		Message:  messageAPI.NewHandler(s.Messages, log, chains()),
		Favorite: favoriteAPI.NewHandler(s.Favorites, log, chains()),
		Admin:    adminAPI.NewHandler(s.Cars, s.Messages, s.Users, factory, log, chains()),
	}
}
