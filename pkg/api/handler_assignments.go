package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tuitionlab/assignflow/pkg/models"
)

// listAssignments handles GET /api/v1/assignments.
func (s *Server) listAssignments(c *gin.Context) {
	req, ok := s.parseListRequest(c)
	if !ok {
		return
	}

	resp, err := s.deps.Listing.ListOpen(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// assignmentFacets handles GET /api/v1/assignments/facets. Facets apply
// the same filters as the listing, minus sort and pagination.
func (s *Server) assignmentFacets(c *gin.Context) {
	req, ok := s.parseListRequest(c)
	if !ok {
		return
	}

	resp, err := s.deps.Listing.Facets(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// parseListRequest builds a ListAssignmentsRequest from query params.
// Responds with validation_failed and returns ok=false on bad input.
func (s *Server) parseListRequest(c *gin.Context) (*models.ListAssignmentsRequest, bool) {
	req := &models.ListAssignmentsRequest{
		Level:         c.Query("level"),
		SpecificLevel: c.Query("specific_level"),
		Subject:       c.Query("subject"),
		GeneralCode:   c.Query("general_code"),
		CanonicalCode: c.Query("canonical_code"),
		Agency:        c.Query("agency"),
		LearningMode:  c.Query("learning_mode"),
		Location:      c.Query("location"),
		TutorType:     c.Query("tutor_type"),
		Cursor:        c.Query("cursor"),
	}

	if v := c.Query("min_rate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			respondError(c, http.StatusBadRequest, errCodeValidation, "min_rate must be a non-negative number")
			return nil, false
		}
		req.MinRate = &rate
	}

	if v := c.Query("show_duplicates"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, errCodeValidation, "show_duplicates must be a boolean")
			return nil, false
		}
		req.ShowDuplicates = &show
	}

	switch sort := c.Query("sort"); sort {
	case "", string(models.SortNewest):
		req.Sort = models.SortNewest
	case string(models.SortDistance):
		req.Sort = models.SortDistance
	default:
		respondError(c, http.StatusBadRequest, errCodeValidation, "sort must be newest or distance")
		return nil, false
	}

	if near := c.Query("near"); near != "" {
		lat, lon, ok := s.resolveNear(near)
		if !ok {
			respondError(c, http.StatusBadRequest, errCodeValidation, "near must be a 6-digit postal code or lat,lon")
			return nil, false
		}
		req.NearLat = &lat
		req.NearLon = &lon
	} else if req.Sort == models.SortDistance {
		respondError(c, http.StatusBadRequest, errCodeValidation, "sort=distance requires near")
		return nil, false
	}

	req.Limit = s.cfg.DefaultPageSize
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			respondError(c, http.StatusBadRequest, errCodeValidation, "limit must be a positive integer")
			return nil, false
		}
		if limit > s.cfg.MaxPageSize {
			limit = s.cfg.MaxPageSize
		}
		req.Limit = limit
	}

	return req, true
}

// resolveNear turns a "lat,lon" pair or a postal code into coordinates.
func (s *Server) resolveNear(near string) (lat, lon float64, ok bool) {
	if parts := strings.SplitN(near, ",", 2); len(parts) == 2 {
		la, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lo, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		return la, lo, true
	}
	res := s.deps.Geo.Resolve(near)
	if res == nil {
		return 0, 0, false
	}
	return res.Lat, res.Lon, true
}
