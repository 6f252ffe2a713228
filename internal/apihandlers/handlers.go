package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"wikilabels/internal/app"
	"wikilabels/internal/labeler"
	"wikilabels/internal/models"
)

type APIHandler struct {
	app *app.App
}

func NewAPIHandler(appInstance *app.App) *APIHandler {
	return &APIHandler{app: appInstance}
}

// suggestRequest mirrors labeler.SuggestParams. TopN and BootstrapSize
// are pointers so "absent" (use the configured default) is distinct from
// an explicit 0 (TopN 0 = return all labels).
type suggestRequest struct {
	Terms               []string `json:"terms" binding:"required"`
	Anchors             []string `json:"anchors"`
	TopN                *int     `json:"topn"`
	BootstrapSize       *int     `json:"bootstrap_size"`
	BoostWithCategories bool     `json:"boost_with_categories"`
}

type suggestResponse struct {
	Labels []models.Suggestion `json:"labels"`
}

// SuggestLabelsHandler handles POST /api/v1/labels:suggest.
func (h *APIHandler) SuggestLabelsHandler(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	params := labeler.SuggestParams{
		Terms:               req.Terms,
		Anchors:             req.Anchors,
		TopN:                h.app.Config.Suggest.TopN,
		BootstrapSize:       h.app.Config.Suggest.BootstrapSize,
		BoostWithCategories: req.BoostWithCategories,
	}
	if req.TopN != nil {
		params.TopN = *req.TopN
	}
	if req.BootstrapSize != nil {
		params.BootstrapSize = *req.BootstrapSize
	}

	suggestions, err := h.app.LabelService.Suggest(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrConfiguration):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrCollaborator):
			log.Warnf("suggest failed upstream: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			log.Errorf("suggest failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}
	c.JSON(http.StatusOK, suggestResponse{Labels: suggestions})
}
