package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TalentHandler struct {
	talentUC domain.TalentUsecase
}

// NewTalentHandler registers talent search routes. Middlewares run before every route.
func NewTalentHandler(group *gin.RouterGroup, talentUC domain.TalentUsecase, searchMiddlewares ...gin.HandlerFunc) {
	handler := &TalentHandler{talentUC: talentUC}

	talents := group.Group("/talents")
	{
		talents.GET("/filter-options", handler.GetFilterOptions)
		talents.GET("/search", append(searchMiddlewares, handler.SearchTalents)...)
		talents.POST("/search", append(searchMiddlewares, handler.SearchTalentsJSON)...)
		talents.GET("/export", append(searchMiddlewares, handler.ExportTalents)...)
		talents.GET("/:id", handler.GetTalent)
	}
}

// SearchTalents godoc
// @Summary      Search and rank talents
// @Description  Scores every active, approved talent matching the hard filters and returns a ranked page
// @Tags         talents
// @Produce      json
// @Security     BearerAuth
// @Param        skills               query     string   false  "Comma-separated skills"
// @Param        keywords             query     string   false  "Comma-separated free-text keywords"
// @Param        languages            query     string   false  "Comma-separated spoken languages (any match)"
// @Param        city                 query     string   false  "City (exact, case-insensitive)"
// @Param        educationLevel       query     string   false  "high_school, university, masters, doctorate"
// @Param        department           query     string   false  "Department (partial match)"
// @Param        minAge               query     int      false  "Minimum age"
// @Param        maxAge               query     int      false  "Maximum age"
// @Param        position             query     string   false  "frontend, backend, fullstack, mobile, devops, data-science, ui-ux"
// @Param        seniority            query     string   false  "intern, junior, mid, senior (default: junior)"
// @Param        workType             query     string   false  "Preferred work type"
// @Param        minExperienceMonths  query     int      false  "Minimum total experience in months"
// @Param        hasGithub            query     bool     false  "Require a GitHub profile"
// @Param        hasLinkedin          query     bool     false  "Require a LinkedIn profile"
// @Param        minProjectCount      query     int      false  "Minimum number of projects"
// @Param        minScore             query     number   false  "Minimum total score (0-100)"
// @Param        sortBy               query     string   false  "relevance, experience, projects, education, newest"
// @Param        page                 query     int      false  "Page number (default: 1)"
// @Param        limit                query     int      false  "Items per page (default: 20, max: 100)"
// @Success      200  {object}  response.Response{data=domain.SearchResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /talents/search [get]
func (h *TalentHandler) SearchTalents(c *gin.Context) {
	h.search(c, parseSearchQuery(c))
}

// SearchTalentsJSON godoc
// @Summary      Search and rank talents (JSON body)
// @Description  Same as the GET variant with the criteria sent as a JSON body
// @Tags         talents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        criteria  body      domain.SearchCriteria  true  "Search criteria"
// @Success      200  {object}  response.Response{data=domain.SearchResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /talents/search [post]
func (h *TalentHandler) SearchTalentsJSON(c *gin.Context) {
	var criteria domain.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	h.search(c, criteria)
}

func (h *TalentHandler) search(c *gin.Context, criteria domain.SearchCriteria) {
	result, err := h.talentUC.Search(c.Request.Context(), criteria)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Talents retrieved", result)
}

// GetTalent godoc
// @Summary      Get talent profile
// @Description  Returns one active, approved talent with derived experience totals
// @Tags         talents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Talent ID"
// @Success      200  {object}  response.Response{data=domain.TalentDetail}
// @Failure      404  {object}  response.Response
// @Router       /talents/{id} [get]
func (h *TalentHandler) GetTalent(c *gin.Context) {
	detail, err := h.talentUC.GetTalent(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Talent retrieved", detail)
}

// GetFilterOptions godoc
// @Summary      Get available filter options
// @Description  Returns distinct pool values and the supported enumerations for the search UI
// @Tags         talents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.TalentFilterOptions}
// @Failure      500  {object}  response.Response
// @Router       /talents/filter-options [get]
func (h *TalentHandler) GetFilterOptions(c *gin.Context) {
	options, err := h.talentUC.GetFilterOptions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Filter options retrieved", options)
}

// ExportTalents godoc
// @Summary      Export ranked talents to Excel/CSV
// @Description  Ranks the pool with the search filters and downloads the result
// @Tags         talents
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        format   query     string   false  "Export format (xlsx, csv). Default: xlsx"
// @Param        columns  query     string   false  "Comma-separated column names to include"
// @Param        ...      query     string   false  "Same filters as /talents/search"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /talents/export [get]
func (h *TalentHandler) ExportTalents(c *gin.Context) {
	req := domain.TalentExportRequest{
		Criteria:    parseSearchQuery(c),
		Columns:     splitQuery(c.Query("columns")),
		Format:      c.DefaultQuery("format", "xlsx"),
		RequestedBy: c.GetString(string(domain.KeyUserID)),
	}

	data, filename, err := h.talentUC.Export(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	format := "xlsx"
	if strings.HasSuffix(filename, ".csv") {
		format = "csv"
	}
	response.Attachment(c, filename, usecase.ExportContentType(format), data)
}

// parseSearchQuery reads criteria from the query string. Unparseable numbers and
// booleans are ignored so that defaults apply.
func parseSearchQuery(c *gin.Context) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Skills:         splitQuery(c.Query("skills")),
		Keywords:       splitQuery(c.Query("keywords")),
		Languages:      splitQuery(c.Query("languages")),
		City:           c.Query("city"),
		EducationLevel: domain.EducationLevel(c.Query("educationLevel")),
		Department:     c.Query("department"),
		Position:       domain.Position(c.Query("position")),
		Seniority:      domain.Seniority(c.Query("seniority")),
		WorkType:       domain.WorkType(c.Query("workType")),
		SortBy:         domain.SortBy(c.Query("sortBy")),
	}

	criteria.MinAge = queryIntPtr(c, "minAge")
	criteria.MaxAge = queryIntPtr(c, "maxAge")
	if v := queryIntPtr(c, "minExperienceMonths"); v != nil {
		criteria.MinExperienceMonths = *v
	}
	if v := queryIntPtr(c, "minProjectCount"); v != nil {
		criteria.MinProjectCount = *v
	}
	if v := queryIntPtr(c, "page"); v != nil {
		criteria.Page = *v
	}
	if v := queryIntPtr(c, "limit"); v != nil {
		criteria.Limit = *v
	}
	if s := c.Query("minScore"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			criteria.MinScore = v
		}
	}
	if s := c.Query("hasGithub"); s != "" {
		criteria.HasGithub, _ = strconv.ParseBool(s)
	}
	if s := c.Query("hasLinkedin"); s != "" {
		criteria.HasLinkedin, _ = strconv.ParseBool(s)
	}
	return criteria
}

func queryIntPtr(c *gin.Context, key string) *int {
	s := c.Query(key)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

// splitQuery splits a comma-separated query value, dropping blanks
func splitQuery(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
