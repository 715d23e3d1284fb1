// Package webui serves the upload form, the extraction preview and the
// spreadsheet download.
//
// State is request-scoped: each upload runs the extractor on its own bytes
// and keeps the resulting record set in memory only long enough for the
// follow-up download click. Nothing is persisted across documents.
package webui

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tgfriperie/xmlsheets/internal/config"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Server wires the gin router, the configuration and the per-interaction
// result store.
type Server struct {
	cfg    *config.Config
	store  *sessionStore
	engine *gin.Engine
}

// New constructs a Server with registered routes.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:   cfg,
		store: newSessionStore(time.Duration(cfg.Server.SessionTTLMinutes) * time.Minute),
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl")))

	r.GET("/", s.handleIndex)
	r.POST("/nfe", s.handleUpload)
	r.GET("/nfe/:token/planilha", s.handleDownload)

	s.engine = r
	return s
}

// Run blocks serving HTTP on the configured listen address.
func (s *Server) Run() error {
	return s.engine.Run(s.cfg.Server.ListenAddr)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}
