package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eliziario/scanbridge/internal/client"
	"github.com/eliziario/scanbridge/internal/connection"
)

// Server exposes the connection manager over a local HTTP API. Connecting
// stays interactive-only; the API can only query with whatever
// credentials a non-interactive population yields.
type Server struct {
	manager *connection.Manager
	log     *logrus.Logger
	engine  *gin.Engine
	address string
}

type componentsRequest struct {
	Components []client.Coordinates `json:"components" binding:"required"`
}

func NewServer(manager *connection.Manager, address string, logger *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		manager: manager,
		log:     logger,
		engine:  engine,
		address: address,
	}

	engine.GET("/status", s.handleStatus)
	engine.POST("/components", s.handleComponents)
	engine.POST("/modules", s.handleModules)

	return s
}

func (s *Server) Run() error {
	s.log.WithField("address", s.address).Info("Starting status API")
	if err := s.engine.Run(s.address); err != nil {
		return fmt.Errorf("status API failed: %w", err)
	}
	return nil
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server":         s.manager.ServerURL(),
		"credentialsSet": s.manager.AreCredentialsSet(),
	})
}

func (s *Server) handleComponents(c *gin.Context) {
	var req componentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifacts, err := s.manager.GetComponents(c.Request.Context(), req.Components)
	if err != nil {
		s.log.WithError(err).Error("Component lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"componentDetails": artifacts})
}

func (s *Server) handleModules(c *gin.Context) {
	var req componentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modules, err := s.manager.GetModuleMetadata(c.Request.Context(), req.Components)
	if err != nil {
		s.log.WithError(err).Error("Module metadata lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": modules})
}
