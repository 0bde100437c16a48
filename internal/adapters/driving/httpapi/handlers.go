package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
)

// SectionInfo identifies one section in the section list.
type SectionInfo struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
	Href  string `json:"href"`
}

// SectionList is the body of GET /api/sections.
type SectionList struct {
	Dataset  driving.DatasetInfo `json:"dataset"`
	Sections []SectionInfo       `json:"sections"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	sections := s.dashboard.Sections()
	list := SectionList{
		Dataset:  s.dashboard.Dataset(),
		Sections: make([]SectionInfo, len(sections)),
	}
	for i, sec := range sections {
		list.Sections[i] = SectionInfo{
			Label: sec.String(),
			Slug:  sec.Slug(),
			Href:  "/api/sections/" + sec.Slug(),
		}
	}
	render.JSON(w, r, list)
}

// handleRenderSection runs one render pass. The default is the JSON
// result; ?format=text returns the plain rendering, with ?code=true
// appending the section's snippet.
func (s *Server) handleRenderSection(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "section")
	if unescaped, err := url.PathUnescape(param); err == nil {
		param = unescaped
	}

	section, err := domain.ParseSection(param)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "text" {
		s.fail(w, r, fmt.Errorf("%w: format must be json or text", domain.ErrInvalidInput))
		return
	}

	showCode := false
	if v := r.URL.Query().Get("code"); v != "" {
		showCode, err = strconv.ParseBool(v)
		if err != nil {
			s.fail(w, r, fmt.Errorf("%w: code must be a boolean", domain.ErrInvalidInput))
			return
		}
	}

	result, err := s.dashboard.Render(r.Context(), section)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if format == "text" {
		render.PlainText(w, r, s.renderer.Section(result, showCode))
		return
	}
	render.JSON(w, r, result)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	render.Render(w, r, newAPIError(err)) //nolint:errcheck
}
