package handler

import (
	"net/http"

	"eventide/internal/domain/entity"
	"eventide/internal/realtime"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type FeedMembershipChecker interface {
	CheckMembership(actor *entity.Profile, collabID string) apierror.ErrorResponse
}

type DefaultFeedRoute struct {
	Membership FeedMembershipChecker
	Hub        *realtime.Hub
	upgrader   websocket.Upgrader
}

func NewFeedDefault(membership FeedMembershipChecker, hub *realtime.Hub) *DefaultFeedRoute {
	return &DefaultFeedRoute{
		Membership: membership,
		Hub:        hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Token auth happens before the upgrade; origins are not
			// restricted beyond that.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleFeed upgrades the connection and attaches it to the hub. Attach
// blocks until the peer goes away, so the handler holds the connection
// open for its whole lifetime.
func (h *DefaultFeedRoute) HandleFeed(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	collabID := c.Param("collabId")
	if collabID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("collabId"))
	}

	if apierr := h.Membership.CheckMembership(actor, collabID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Errorf("websocket upgrade failed: %v", err)
		return nil
	}

	h.Hub.Attach(collabID, conn)
	return nil
}
