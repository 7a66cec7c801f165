package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/filter"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/admin"
)

const listCacheControl = "private, max-age=15"

func accepted(c *gin.Context, ack domain.Ack) {
	c.JSON(http.StatusAccepted, ack)
}

func ackOrErr(c *gin.Context, ack domain.Ack, err error) {
	if err != nil {
		respondErr(c, err)
		return
	}
	accepted(c, ack)
}

// @Summary  Dashboard counters and recent feeds
// @Tags     dashboard
// @Security Bearer
// @Success  200 {object} dashboard.Summary
// @Router   /api/dashboard [get]
func handleDashboard(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		sum, err := svcs.Dashboard.Summary(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, sum, listCacheControl)
	}
}

// --- Venues ---

// @Summary  List venues
// @Tags     venues
// @Security Bearer
// @Param    q           query string false "name or location contains"
// @Param    status      query string false "all | open | closed"
// @Param    category    query string false "category id or all"
// @Param    subcategory query string false "subcategory id or all"
// @Param    votes       query string false "all | high | medium | low"
// @Success  200 {array}  filter.VenueRow
// @Failure  400 {object} ErrorResponse
// @Router   /api/venues [get]
func handleListVenues(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svcs.Catalog.Venues(filter.VenueCriteria{
			Query:         c.Query("q"),
			Status:        c.Query("status"),
			CategoryID:    c.Query("category"),
			SubcategoryID: c.Query("subcategory"),
			Votes:         filter.VoteBand(c.Query("votes")),
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, rows, listCacheControl)
	}
}

// @Summary  Get venue
// @Tags     venues
// @Security Bearer
// @Param    id  path  string  true  "Venue ID"
// @Success  200 {object} filter.VenueRow
// @Failure  404 {object} ErrorResponse
// @Router   /api/venues/{id} [get]
func handleGetVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := svcs.Catalog.Venue(c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, row, listCacheControl)
	}
}

// @Summary  Add venue
// @Tags     venues
// @Security Bearer
// @Param    req body  AddVenueRequest true "venue"
// @Success  202 {object} domain.Ack
// @Failure  400 {object} ErrorResponse "Please fill in all fields"
// @Router   /api/venues [post]
func handleAddVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddVenueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		ack, err := svcs.Admin.AddVenue(c.Request.Context(), admin.NewVenue{
			Name:          req.Name,
			Location:      req.Location,
			CategoryID:    req.Category,
			SubcategoryID: req.Subcategory,
		})
		ackOrErr(c, ack, err)
	}
}

// @Summary  Delete venue
// @Tags     venues
// @Security Bearer
// @Param    id  path  string  true  "Venue ID"
// @Success  202 {object} domain.Ack
// @Failure  404 {object} ErrorResponse
// @Router   /api/venues/{id} [delete]
func handleDeleteVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ack, err := svcs.Admin.DeleteVenue(c.Request.Context(), c.Param("id"))
		ackOrErr(c, ack, err)
	}
}

// --- Categories ---

// @Summary  List categories
// @Tags     categories
// @Security Bearer
// @Success  200 {array} domain.Category
// @Router   /api/categories [get]
func handleListCategories(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeJSONWithCache(c, http.StatusOK, svcs.Catalog.Categories(), "private, max-age=300")
	}
}

// @Summary  List subcategories of a category
// @Tags     categories
// @Security Bearer
// @Param    id  path  string  true  "Category ID"
// @Success  200 {array}  domain.Subcategory
// @Failure  404 {object} ErrorResponse
// @Router   /api/categories/{id}/subcategories [get]
func handleListSubcategories(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := svcs.Catalog.Subcategories(c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, subs, "private, max-age=300")
	}
}

// --- Users ---

// @Summary  List users
// @Tags     users
// @Security Bearer
// @Param    q       query string false "full name, username or email contains"
// @Param    status  query string false "all | active | inactive"
// @Success  200 {array}  domain.User
// @Failure  400 {object} ErrorResponse
// @Router   /api/users [get]
func handleListUsers(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svcs.Catalog.Users(filter.UserCriteria{
			Query:    c.Query("q"),
			Activity: c.Query("status"),
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, users, listCacheControl)
	}
}

// @Summary  Update user
// @Tags     users
// @Security Bearer
// @Param    id  path  string  true  "User ID"
// @Param    req body  UpdateUserRequest true "user"
// @Success  202 {object} domain.Ack
// @Failure  404 {object} ErrorResponse
// @Router   /api/users/{id} [put]
func handleUpdateUser(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		ack, err := svcs.Admin.UpdateUser(c.Request.Context(), c.Param("id"), admin.UserUpdate{
			FullName: req.FullName,
			Username: req.Username,
			Email:    req.Email,
		})
		ackOrErr(c, ack, err)
	}
}

// @Summary  Delete user
// @Tags     users
// @Security Bearer
// @Param    id  path  string  true  "User ID"
// @Success  202 {object} domain.Ack
// @Failure  404 {object} ErrorResponse
// @Router   /api/users/{id} [delete]
func handleDeleteUser(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ack, err := svcs.Admin.DeleteUser(c.Request.Context(), c.Param("id"))
		ackOrErr(c, ack, err)
	}
}

// --- Advertisements ---

// @Summary  List advertisements
// @Tags     ads
// @Security Bearer
// @Param    q       query string false "title, description, venue or location contains"
// @Param    status  query string false "all | running | stopped"
// @Success  200 {array}  domain.Advertisement
// @Failure  400 {object} ErrorResponse
// @Router   /api/ads [get]
func handleListAds(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ads, err := svcs.Catalog.Ads(filter.AdCriteria{
			Query:  c.Query("q"),
			Status: c.Query("status"),
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, ads, listCacheControl)
	}
}

func (r AdRequest) draft() admin.AdDraft {
	return admin.AdDraft{
		Title:          r.Title,
		Description:    r.Description,
		Image:          r.Image,
		VenueID:        r.VenueID,
		TargetLocation: r.TargetLocation,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
}

// @Summary  Create advertisement
// @Tags     ads
// @Security Bearer
// @Param    req body  AdRequest true "ad; run_now starts it right away"
// @Success  202 {object} domain.Ack
// @Router   /api/ads [post]
func handleCreateAd(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		ack, err := svcs.Admin.CreateAd(c.Request.Context(), req.draft(), req.RunNow)
		ackOrErr(c, ack, err)
	}
}

// @Summary  Update advertisement
// @Tags     ads
// @Security Bearer
// @Param    id  path  string  true  "Ad ID"
// @Param    req body  AdRequest true "ad"
// @Success  202 {object} domain.Ack
// @Failure  404 {object} ErrorResponse
// @Router   /api/ads/{id} [put]
func handleUpdateAd(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		ack, err := svcs.Admin.UpdateAd(c.Request.Context(), c.Param("id"), req.draft())
		ackOrErr(c, ack, err)
	}
}

// @Summary  Delete advertisement
// @Tags     ads
// @Security Bearer
// @Param    id  path  string  true  "Ad ID"
// @Success  202 {object} domain.Ack
// @Failure  404 {object} ErrorResponse
// @Router   /api/ads/{id} [delete]
func handleDeleteAd(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ack, err := svcs.Admin.DeleteAd(c.Request.Context(), c.Param("id"))
		ackOrErr(c, ack, err)
	}
}

// @Summary  Start or stop advertisement
// @Tags     ads
// @Security Bearer
// @Param    id  path  string  true  "Ad ID"
// @Success  202 {object} domain.Ack
// @Failure  404 {object} ErrorResponse
// @Router   /api/ads/{id}/toggle [post]
func handleToggleAd(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ack, err := svcs.Admin.ToggleAd(c.Request.Context(), c.Param("id"))
		ackOrErr(c, ack, err)
	}
}

// --- Notifications ---

// @Summary  List notifications
// @Tags     notifications
// @Security Bearer
// @Param    read  query string false "all | read | unread"
// @Success  200 {array}  domain.Notification
// @Failure  400 {object} ErrorResponse
// @Router   /api/notifications [get]
func handleListNotifications(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ns, err := svcs.Catalog.Notifications(filter.NotificationCriteria{Read: c.Query("read")})
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, ns, listCacheControl)
	}
}

// @Summary  Mark notification as read
// @Tags     notifications
// @Security Bearer
// @Param    id  path  string  true  "Notification ID"
// @Success  202 {object} domain.Ack
// @Failure  404 {object} ErrorResponse
// @Router   /api/notifications/{id}/read [post]
func handleMarkRead(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ack, err := svcs.Admin.MarkNotificationRead(c.Request.Context(), c.Param("id"))
		ackOrErr(c, ack, err)
	}
}

// @Summary  Mark all notifications as read
// @Tags     notifications
// @Security Bearer
// @Success  202 {object} domain.Ack
// @Router   /api/notifications/read-all [post]
func handleMarkAllRead(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		accepted(c, svcs.Admin.MarkAllNotificationsRead(c.Request.Context()))
	}
}

// @Summary  Clear all notifications
// @Tags     notifications
// @Security Bearer
// @Success  202 {object} domain.Ack
// @Router   /api/notifications [delete]
func handleClearNotifications(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		accepted(c, svcs.Admin.ClearNotifications(c.Request.Context()))
	}
}

// --- Settings ---

// @Summary  Change password
// @Tags     settings
// @Security Bearer
// @Param    req body  ChangePasswordRequest true "passwords"
// @Success  202 {object} domain.Ack
// @Router   /api/settings/password [put]
func handleChangePassword(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		accepted(c, svcs.Admin.ChangePassword(c.Request.Context(), admin.PasswordChange{
			Current: req.CurrentPassword,
			New:     req.NewPassword,
			Confirm: req.ConfirmPassword,
		}))
	}
}

// @Summary  Enable or disable two-factor authentication
// @Tags     settings
// @Security Bearer
// @Param    req body  TwoFactorRequest true "desired state"
// @Success  202 {object} domain.Ack
// @Router   /api/settings/two-factor [put]
func handleTwoFactor(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TwoFactorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		accepted(c, svcs.Admin.SetTwoFactor(c.Request.Context(), req.Enabled))
	}
}

// @Summary  Save notification preferences
// @Tags     settings
// @Security Bearer
// @Param    req body  PreferencesRequest true "preferences"
// @Success  202 {object} domain.Ack
// @Router   /api/settings/preferences [put]
func handleSavePreferences(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PreferencesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		accepted(c, svcs.Admin.SavePreferences(c.Request.Context(), admin.Preferences{
			EmailNotifications: req.EmailNotifications,
			PushNotifications:  req.PushNotifications,
		}))
	}
}
