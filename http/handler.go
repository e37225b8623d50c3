package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/campusguide"
	"github.com/gin-gonic/gin"
)

// locationResponse is the wire form of a matched location.
type locationResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImagePath   string   `json:"image_path"`
	Facilities  []string `json:"facilities"`
	Timing      string   `json:"timing"`
	Coordinates *string  `json:"coordinates"`
}

func newLocationResponse(loc *campusguide.Location) *locationResponse {
	resp := &locationResponse{
		ID:          loc.ID,
		Name:        loc.Name,
		Description: loc.Description,
		ImagePath:   loc.ImagePath,
		Facilities:  loc.Facilities,
		Timing:      loc.Timing,
	}
	if resp.Facilities == nil {
		resp.Facilities = []string{}
	}
	if loc.Coordinates != "" {
		resp.Coordinates = &loc.Coordinates
	}
	return resp
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Success  bool              `json:"success"`
	Location *locationResponse `json:"location,omitempty"`
	Message  string            `json:"message"`
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleSearch matches the query against the catalog. A miss is not an
// error for the client: it gets success=false and the help message.
func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	// A malformed body is treated like a blank query.
	_ = c.ShouldBindJSON(&req)

	begin := time.Now()
	loc, pass, err := s.Catalog.MatchPass(req.Query)
	if s.Observer != nil {
		s.Observer.ObserveSearch(pass, err, time.Since(begin))
	}

	switch campusguide.ErrorCode(err) {
	case "":
		c.JSON(http.StatusOK, searchResponse{
			Success:  true,
			Location: newLocationResponse(loc),
			Message:  campusguide.Summary(loc),
		})
	case campusguide.EINVALID:
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Query is required"})
	case campusguide.ENOTFOUND:
		c.JSON(http.StatusOK, searchResponse{
			Success: false,
			Message: campusguide.ErrorMessage(err),
		})
	default:
		s.Error(c, err)
	}
}

// handleListLocations returns name/description pairs in catalog order.
// The catalog never changes while serving, so the ETag is stable.
func (s *Server) handleListLocations(c *gin.Context) {
	body, err := json.Marshal(s.Catalog.Summaries())
	if err != nil {
		s.Error(c, err)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	c.Header("ETag", etag)
	if match := c.GetHeader("If-None-Match"); match != "" && (strings.TrimSpace(match) == "*" || strings.Contains(match, etag)) {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (s *Server) handleStaticImage(c *gin.Context) {
	if s.Images == nil {
		s.Error(c, campusguide.Errorf(campusguide.ENOTFOUND, "image not found"))
		return
	}

	asset, err := s.Images.OpenAsset(c.Request.Context(), c.Param("filepath"))
	if s.Observer != nil {
		s.Observer.ObserveAsset(err)
	}
	if err != nil {
		s.Error(c, err)
		return
	}
	writeAsset(c, asset)
}

func (s *Server) handleLocationImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.Error(c, campusguide.Errorf(campusguide.EINVALID, "invalid location ID %q", c.Param("id")))
		return
	}

	loc, err := s.Catalog.Location(id)
	if err != nil {
		s.Error(c, err)
		return
	}

	if s.Assets == nil {
		s.Error(c, campusguide.Errorf(campusguide.ENOTIMPLEMENTED, "asset store not configured"))
		return
	}

	asset, err := s.Assets.OpenAsset(c.Request.Context(), loc.ImagePath)
	if s.Observer != nil {
		s.Observer.ObserveAsset(err)
	}
	if err != nil {
		s.Error(c, err)
		return
	}
	writeAsset(c, asset)
}

func (s *Server) handleAsk(c *gin.Context) {
	if s.Guide == nil {
		s.Error(c, campusguide.Errorf(campusguide.ENOTIMPLEMENTED, "guide not configured"))
		return
	}

	var req askRequest
	_ = c.ShouldBindJSON(&req)

	answer, err := s.Guide.Ask(c.Request.Context(), req.Question)
	if err != nil {
		s.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, askResponse{Answer: answer})
}

func (s *Server) handleIndex(c *gin.Context) {
	c.File(s.indexPath())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "locations": s.Catalog.Len()})
}

func writeAsset(c *gin.Context, asset *campusguide.Asset) {
	defer asset.Body.Close()
	c.DataFromReader(http.StatusOK, asset.Size, asset.ContentType, asset.Body, nil)
}
