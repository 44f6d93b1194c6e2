package websocket

import (
	"github.com/kliklance/kliklance/internal/pkg/constants"
	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/kliklance/kliklance/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// authenticate resolves the connection principal from the handshake.
// Precedence: access_token cookie, then token query parameter, then an
// identity the HTTP middleware already resolved. A failed tier is
// logged and the next one is tried; only when all fail is the
// connection anonymous. The raw credential is never logged.
func (h *Handler) authenticate(c echo.Context) *models.Principal {
	ctx := c.Request().Context()

	if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil && cookie.Value != "" {
		principal, err := h.uc.ResolvePrincipalFromToken(ctx, cookie.Value)
		if err == nil {
			logger.Info("Websocket client authenticated",
				logger.String("source", "cookie"),
				logger.Int64("user_id", principal.ID))
			return principal
		}
		logger.Warn("Cookie credential rejected",
			logger.Err(err))
	}

	if token := c.QueryParam(constants.TokenQueryParam); token != "" {
		principal, err := h.uc.ResolvePrincipalFromToken(ctx, token)
		if err == nil {
			logger.Info("Websocket client authenticated",
				logger.String("source", "query"),
				logger.Int64("user_id", principal.ID))
			return principal
		}
		logger.Warn("Query credential rejected",
			logger.Err(err))
	}

	if uid := c.Get("user_id"); uid != nil {
		if userID, ok := uid.(int64); ok {
			principal, err := h.uc.ResolvePrincipalByID(ctx, userID)
			if err == nil {
				logger.Info("Websocket client authenticated",
					logger.String("source", "upstream"),
					logger.Int64("user_id", principal.ID))
				return principal
			}
			logger.Warn("Upstream identity rejected",
				logger.Int64("user_id", userID),
				logger.Err(err))
		}
	}

	logger.Warn("No credential resolved for websocket connection",
		logger.String("path", c.Request().URL.Path))
	return nil
}
