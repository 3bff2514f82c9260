package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GenerateController produces AI tutorial drafts. The draft is returned to
// the caller for review; saving it goes through the normal create endpoint.
// A nil generator means generation is not configured.
type GenerateController struct {
	generator TutorialGenerator
}

func NewGenerateController(generator TutorialGenerator) *GenerateController {
	return &GenerateController{generator: generator}
}

type generateRequest struct {
	Topic string `json:"topic"`
}

// Generate asks the configured model for a tutorial draft about a topic.
func (g *GenerateController) Generate(c *gin.Context) {
	if g.generator == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "tutorial generation is not configured"})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request payload: "+err.Error())
		return
	}
	if req.Topic == "" {
		respondBadRequest(c, "topic is required")
		return
	}

	tutorial, err := g.generator.GenerateTutorial(c.Request.Context(), req.Topic)
	if err != nil {
		respondInternalError(c, err, "generate tutorial")
		return
	}
	c.JSON(http.StatusOK, tutorial)
}
