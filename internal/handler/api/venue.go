package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	commands commands.VenueCommands
	queries  queries.VenueQueries
}

func NewVenueHandler(cmds commands.VenueCommands, qrys queries.VenueQueries) *VenueHandler {
	return &VenueHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// @Summary Create venue
// @Description Register a venue with its operating window and seed its tables
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVenueRequest true "Venue request"
// @Success 201 {object} resdto.VenueResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /venues [post]
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var req reqdto.CreateVenueRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snap, err := h.commands.CreateVenue(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Opening time must be before closing time",
			})
		case errors.Is(err, commands.ErrVenueAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Venue already exists",
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

	c.JSON(http.StatusCreated, resdto.FromVenueSnapshot(snap))
}

// @Summary Add tables
// @Description Expand a venue's seating within its declared table limit
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Venue slug"
// @Param request body reqdto.AddTablesRequest true "Tables to add"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /venues/{slug}/tables [post]
func (h *VenueHandler) AddTables(c *gin.Context) {
	var req reqdto.AddTablesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.commands.AddTables(c.Request.Context(), c.Param("slug"), req.ToSpecs())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		case errors.Is(err, commands.ErrTableLimitExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Table limit exceeded",
			})
		case errors.Is(err, commands.ErrDuplicateTableNumber):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Table number already in use",
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

	c.Status(http.StatusNoContent)
}

// @Summary Get venue
// @Description Venue details, optionally with its tables
// @Tags venues
// @Produce json
// @Param slug path string true "Venue slug"
// @Param include_tables query bool false "Include the table list"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{slug} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	includeTables, _ := strconv.ParseBool(c.DefaultQuery("include_tables", "false"))

	view, err := h.queries.BySlug(c.Request.Context(), c.Param("slug"), includeTables)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}

// @Summary List venues
// @Description All venues, newest first by default
// @Tags venues
// @Produce json
// @Param sort query string false "Sort direction (asc or desc)"
// @Param limit query int false "Maximum venues to return"
// @Success 200 {array} resdto.VenueResponse
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	views, err := h.queries.List(c.Request.Context(), c.DefaultQuery("sort", "desc"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.VenueResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromVenueView(rm)
	}

	c.JSON(http.StatusOK, response)
}
