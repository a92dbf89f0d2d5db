package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"account-manager-api/internal/application/ports"
	"account-manager-api/internal/infrastructure/jwt"
	"account-manager-api/internal/interface/api/rest/dto/changelog"
	"account-manager-api/internal/interface/api/rest/middleware"
)

type ChangelogController struct {
	changelogService ports.ChangelogService
	logger           *zap.Logger
}

func NewChangelogController(
	r *gin.Engine,
	changelogService ports.ChangelogService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ChangelogController {
	cc := &ChangelogController{
		changelogService: changelogService,
		logger:           logger,
	}

	r.GET(RouteChangelog, middleware.AuthMiddleware(jwtService), cc.GetEntriesHandler)

	return cc
}

func (cc *ChangelogController) GetEntriesHandler(c *gin.Context) {
	entries, err := cc.changelogService.FindEntries(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get changelog"},
		)
		cc.logger.Error("FindEntries() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, changelog.ResponseData{
		Data: changelog.ToResponseEntries(entries),
	})
}
