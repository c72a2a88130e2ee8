package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"assettracker/internal/service"
	"assettracker/internal/store"
)

type Server struct {
	Service *service.Service
}

type CreateAssetRequest struct {
	AssetCode string `json:"asset_code"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

var availableRoutes = []string{
	"GET    /api/health",
	"GET    /api/test",
	"GET    /api/assets",
	"GET    /api/assets/dropdown",
	"GET    /api/assets/:code",
	"POST   /api/assets",
	"POST   /api/assets/:childCode/parents/:parentCode",
	"DELETE /api/assets/:childCode/parents/:parentCode",
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", s.health)
	api.GET("/test", s.test)
	api.GET("/assets", s.listAssets)
	api.GET("/assets/dropdown", s.assetDropdown)
	api.GET("/assets/:code", s.getAsset)
	api.POST("/assets", s.createAsset)
	api.POST("/assets/:code/parents/:parentCode", s.addParentRelationship)
	api.DELETE("/assets/:code/parents/:parentCode", s.removeParentRelationship)

	r.NoRoute(s.routeNotFound)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Asset Management API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Backend is working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": []string{
			"/api/assets",
			"/api/assets/:code",
			"/api/assets/dropdown",
			"/api/health",
		},
	})
}

func (s *Server) listAssets(c *gin.Context) {
	assets, err := s.Service.ListAssets(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

func (s *Server) assetDropdown(c *gin.Context) {
	options, err := s.Service.ListAssetOptions(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

func (s *Server) getAsset(c *gin.Context) {
	detail, err := s.Service.GetAssetDetail(c.Request.Context(), c.Param("code"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) createAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	asset, err := s.Service.CreateAsset(c.Request.Context(), req.AssetCode, req.Name, req.Type)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (s *Server) addParentRelationship(c *gin.Context) {
	childCode := c.Param("code")
	parentCode := c.Param("parentCode")

	rel, err := s.Service.AddParentRelationship(c.Request.Context(), childCode, parentCode)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Relationship added successfully",
		"parent":  parentCode,
		"child":   childCode,
		"id":      rel.ID,
	})
}

func (s *Server) removeParentRelationship(c *gin.Context) {
	childCode := c.Param("code")
	parentCode := c.Param("parentCode")

	if err := s.Service.RemoveParentRelationship(c.Request.Context(), childCode, parentCode); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Relationship removed successfully",
		"parent":  parentCode,
		"child":   childCode,
	})
}

func (s *Server) routeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":           "route not found",
		"message":         fmt.Sprintf("the route %s %s does not exist", c.Request.Method, c.Request.URL.Path),
		"availableRoutes": availableRoutes,
	})
}

func renderError(c *gin.Context, err error) {
	var verr *service.ValidationError
	var nferr *service.NotFoundError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.As(err, &nferr):
		c.JSON(http.StatusNotFound, gin.H{"error": nferr.Error()})
	case errors.Is(err, store.ErrDuplicateAsset), errors.Is(err, store.ErrDuplicateRelationship):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
