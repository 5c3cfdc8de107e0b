// Package api exposes the engine's generators over a small gin-gonic demo
// HTTP server: one route per code kind, plus compose/decode/health.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iscc-community/iscc-core-go/internal/config"
	"github.com/iscc-community/iscc-core-go/internal/generators"
	"github.com/iscc-community/iscc-core-go/internal/isccerr"
	"github.com/iscc-community/iscc-core-go/internal/isccid"
)

// Server wraps a gin.Engine and the stdlib http.Server that serves it.
type Server struct {
	config *config.Config
	router *gin.Engine
	server *http.Server
}

// NewServer builds the router and registers every route. It does not start
// listening; call Run for that.
func NewServer(cfg *config.Config) *Server {
	if !cfg.LogJSON {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(requestIDMiddleware())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		AllowAllOrigins:  true,
	}
	router.Use(cors.New(corsConfig))

	s := &Server{config: cfg, router: router}
	s.setupRoutes()
	return s
}

// requestIDMiddleware tags every request with a uuid, mirroring the
// teacher's use of uuid for entity identifiers.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func (s *Server) setupRoutes() {
	s.router.GET("/api/v1/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/meta", s.handleMeta)
		v1.POST("/text", s.handleText)
		v1.POST("/data", s.handleData)
		v1.POST("/instance", s.handleInstance)
		v1.POST("/compose", s.handleCompose)
		v1.GET("/decode/:code", s.handleDecode)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

type metaRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Bits        int    `json:"bits"`
}

func (s *Server) handleMeta(c *gin.Context) {
	var req metaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bits := req.Bits
	if bits == 0 {
		bits = s.config.Engine.MetaBits
	}
	var description any
	if req.Description != "" {
		description = req.Description
	}
	result, err := generators.GenMetaCode(req.Name, description, bits, &s.config.Engine)
	if err != nil {
		writeGeneratorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"iscc":        result.Code.Code(),
		"name":        result.Name,
		"description": result.Description,
		"metahash":    result.MetaHash,
	})
}

type textRequest struct {
	Text string `json:"text" binding:"required"`
	Bits int    `json:"bits"`
}

func (s *Server) handleText(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bits := req.Bits
	if bits == 0 {
		bits = s.config.Engine.TextBits
	}
	result, err := generators.GenTextCode(req.Text, bits, &s.config.Engine)
	if err != nil {
		writeGeneratorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"iscc":       result.Code.Code(),
		"characters": result.Characters,
	})
}

func (s *Server) handleData(c *gin.Context) {
	defer c.Request.Body.Close()
	result, err := generators.GenDataCode(c.Request.Body, s.config.Engine.DataBits, &s.config.Engine)
	if err != nil {
		writeGeneratorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"iscc": result.Code.Code()})
}

func (s *Server) handleInstance(c *gin.Context) {
	defer c.Request.Body.Close()
	result, err := generators.GenInstanceCode(c.Request.Body, s.config.Engine.InstanceBits, &s.config.Engine)
	if err != nil {
		writeGeneratorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"iscc":     result.Code.Code(),
		"datahash": result.DataHash,
		"filesize": result.FileSize,
	})
}

type composeRequest struct {
	Units []string `json:"units" binding:"required"`
}

func (s *Server) handleCompose(c *gin.Context) {
	var req composeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	units := make([]isccid.Code, len(req.Units))
	for i, text := range req.Units {
		code, err := isccid.FromText(text)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unit %d: %v", i, err)})
			return
		}
		units[i] = code
	}
	composite, err := isccid.ComposeISCC(units...)
	if err != nil {
		writeGeneratorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"iscc": composite.Code()})
}

func (s *Server) handleDecode(c *gin.Context) {
	raw := strings.TrimPrefix(c.Param("code"), "/")
	code, err := isccid.FromText(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp := gin.H{
		"iscc":         code.Code(),
		"type_id":      code.TypeID(),
		"explain":      code.Explain(),
		"mf_base32":    code.MFBase32(),
		"mf_base58btc": code.MFBase58BTC(),
	}
	if code.MainType().String() == "ISCC" {
		units, err := isccid.DecomposeISCC(code)
		if err == nil {
			decoded := make([]string, len(units))
			for i, u := range units {
				decoded[i] = u.Code()
			}
			resp["units"] = decoded
		}
	}
	c.JSON(http.StatusOK, resp)
}

func writeGeneratorError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, isccerr.ErrInvalidInput), errors.Is(err, isccerr.ErrInvalidBitLength),
		errors.Is(err, isccerr.ErrCompositionInvalid), errors.Is(err, isccerr.ErrInvalidBase32),
		errors.Is(err, isccerr.ErrHeaderMalformed):
		status = http.StatusBadRequest
	case errors.Is(err, isccerr.ErrIO):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// Run starts the HTTP server and blocks until it exits.
func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:         s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
