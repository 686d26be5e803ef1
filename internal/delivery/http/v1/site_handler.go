package v1

import (
	"net/http"
	"time"

	"portfolio-site/internal/domain"

	"github.com/gin-gonic/gin"
)

// Tabs of the content panel, in display order
var sections = []string{"About", "Past Work", "Contact Me"}

type SiteHandler struct {
	siteUC domain.SiteUsecase
}

// NewSiteHandler registers the page route on the root router and the content API on api
func NewSiteHandler(root gin.IRoutes, api *gin.RouterGroup, siteUC domain.SiteUsecase) {
	handler := &SiteHandler{siteUC: siteUC}

	root.GET("/", handler.Index)
	api.GET("/content", handler.GetContent)
}

// Index renders the portfolio page
func (h *SiteHandler) Index(c *gin.Context) {
	content := h.siteUC.GetContent(c.Request.Context())

	active := c.DefaultQuery("section", sections[0])
	known := false
	for _, s := range sections {
		if s == active {
			known = true
			break
		}
	}
	if !known {
		active = sections[0]
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Content":  content,
		"Sections": sections,
		"Active":   active,
		"Year":     time.Now().Year(),
	})
}

// GetContent godoc
// @Summary      Site content
// @Description  Returns the profile, social links, services, clients and past projects shown on the page.
// @Tags         site
// @Produce      json
// @Success      200  {object}  domain.SiteContent
// @Router       /content [get]
func (h *SiteHandler) GetContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.siteUC.GetContent(c.Request.Context()))
}
