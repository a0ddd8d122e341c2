package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/lukastechs/youtube-backend/internal/middleware"
	"github.com/lukastechs/youtube-backend/internal/model"
	"github.com/lukastechs/youtube-backend/internal/service"
	"github.com/lukastechs/youtube-backend/internal/youtube"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// GetByPath handles GET /api/age/:channelInput
func (h *ChannelHandler) GetByPath(c fiber.Ctx) error {
	input, errMsg := middleware.ValidateChannelInput(c.Params("channelInput"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_IDENTIFIER", errMsg)
	}
	return h.lookup(c, input)
}

// Post handles POST /api/age
func (h *ChannelHandler) Post(c fiber.Ctx) error {
	var req model.AgeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	input, errMsg := middleware.ValidateChannelInput(req.Channel)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_IDENTIFIER", errMsg)
	}
	return h.lookup(c, input)
}

func (h *ChannelHandler) lookup(c fiber.Ctx, input string) error {
	snap, err := h.svc.Lookup(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_IDENTIFIER",
				"Could not resolve input to a channel ID")
		case errors.Is(err, service.ErrNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Channel not found")
		}

		Metrics.UpstreamFailures.Inc()
		var statusErr *youtube.StatusError
		if errors.As(err, &statusErr) {
			return middleware.ErrorResponse(c, statusErr.Code, "UPSTREAM_ERROR",
				"YouTube API request failed")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "UPSTREAM_ERROR",
			"Could not fetch channel data")
	}

	if snap.IsCached {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
	}

	return c.JSON(snap)
}
