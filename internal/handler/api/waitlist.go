package api

import (
	"errors"
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WaitlistHandler struct {
	commands commands.WaitlistCommands
}

func NewWaitlistHandler(cmds commands.WaitlistCommands) *WaitlistHandler {
	return &WaitlistHandler{commands: cmds}
}

// @Summary Join waitlist
// @Description Record a guest's interest in a time the venue could not seat
// @Tags waitlist
// @Accept json
// @Produce json
// @Param slug path string true "Venue slug"
// @Param request body reqdto.JoinWaitlistRequest true "Waitlist request"
// @Success 201 {object} resdto.WaitlistEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{slug}/waitlist [post]
func (h *WaitlistHandler) JoinWaitlist(c *gin.Context) {
	var req reqdto.JoinWaitlistRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snap, err := h.commands.Join(c.Request.Context(), req.ToParams(c.Param("slug")))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromWaitlistSnapshot(snap))
}
