// Package preview serves rendered JSON-LD over HTTP for debugging. It is
// a read-only surface over the render pipeline, not an admin interface.
package preview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pressmark/schemald/internal/render"
	"github.com/pressmark/schemald/pkg/schemald"
	"github.com/pressmark/schemald/pkg/types"
)

// Server exposes the preview endpoints over one pipeline.
type Server struct {
	pipeline *render.Pipeline
	log      *zap.Logger
}

// NewServer builds a preview server. A nil logger disables logging.
func NewServer(pipeline *render.Pipeline, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{pipeline: pipeline, log: log}
}

// Router builds the gin engine with all preview routes attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)
	r.GET("/head/:post", s.head)
	r.GET("/schema/:key/:post", s.single)
	return r
}

// Run serves the preview endpoints until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("preview server listening", zap.String("addr", addr))
	return s.Router().Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": schemald.Version})
}

// head renders the full head fragment for a post as text/html.
func (s *Server) head(c *gin.Context) {
	postID, ok := s.postID(c)
	if !ok {
		return
	}
	frag, err := s.pipeline.RenderHead(postID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(frag))
}

// single renders one schema key for a post as a raw JSON-LD object, or
// 404 when the key produces nothing for that post.
func (s *Server) single(c *gin.Context) {
	postID, ok := s.postID(c)
	if !ok {
		return
	}
	obj, err := s.pipeline.BuildForPost(c.Param("key"), postID)
	if err != nil {
		s.fail(c, err)
		return
	}
	if obj == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no schema output for this key and post"})
		return
	}
	c.JSON(http.StatusOK, obj)
}

// postID parses the :post path parameter, answering 400 on garbage.
func (s *Server) postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("post"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// fail maps pipeline errors onto HTTP statuses: a missing post is a 404,
// anything else a 500.
func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, types.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	s.log.Error("render failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
