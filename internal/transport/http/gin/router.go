package httpgin

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/auth"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/admin"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/catalog"
)

func NewRouter(
	svcs *service.Services,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), RequestIDMiddleware(), LoggingMiddleware(logger), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Sign-in
	r.POST("/auth/credentials", handleSubmitCredentials(svcs))
	session := r.Group("/auth", SessionMiddleware(svcs.SignIn))
	{
		session.POST("/second-factor", handleSubmitCode(svcs))
		session.POST("/back", handleBack(svcs))
		session.GET("/state", handleState(svcs))
		session.POST("/logout", handleLogout(svcs))
	}

	// Dashboard API
	api := r.Group("/api", SessionMiddleware(svcs.SignIn), RequireAuthenticated(svcs.SignIn))
	{
		api.GET("/dashboard", handleDashboard(svcs))

		api.GET("/venues", handleListVenues(svcs))
		api.GET("/venues/:id", handleGetVenue(svcs))
		api.POST("/venues", handleAddVenue(svcs))
		api.DELETE("/venues/:id", handleDeleteVenue(svcs))

		api.GET("/categories", handleListCategories(svcs))
		api.GET("/categories/:id/subcategories", handleListSubcategories(svcs))

		api.GET("/users", handleListUsers(svcs))
		api.PUT("/users/:id", handleUpdateUser(svcs))
		api.DELETE("/users/:id", handleDeleteUser(svcs))

		api.GET("/ads", handleListAds(svcs))
		api.POST("/ads", handleCreateAd(svcs))
		api.PUT("/ads/:id", handleUpdateAd(svcs))
		api.DELETE("/ads/:id", handleDeleteAd(svcs))
		api.POST("/ads/:id/toggle", handleToggleAd(svcs))

		api.GET("/notifications", handleListNotifications(svcs))
		api.POST("/notifications/read-all", handleMarkAllRead(svcs))
		api.POST("/notifications/:id/read", handleMarkRead(svcs))
		api.DELETE("/notifications", handleClearNotifications(svcs))

		api.PUT("/settings/password", handleChangePassword(svcs))
		api.PUT("/settings/two-factor", handleTwoFactor(svcs))
		api.PUT("/settings/preferences", handleSavePreferences(svcs))
	}

	return r
}

// --- Helpers ---

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var verr *auth.ValidationError

	switch {
	// sign-in
	case errors.As(err, &verr):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: verr.Message})
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or missing session token"})
	case errors.Is(err, auth.ErrWrongStep):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "not expected at this sign-in step"})
	// catalog
	case errors.Is(err, catalog.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	// admin
	case errors.Is(err, admin.ErrMissingFields):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: admin.MsgMissingFields})
	case errors.Is(err, admin.ErrSubcategoryMismatch):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "subcategory does not belong to category"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
