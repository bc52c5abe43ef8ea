package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studentsignal/pkg/models"
)

type Handler struct {
	Repo Repo
	Log  *zap.Logger
}

func NewHandler(repo Repo, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Repo: repo, Log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)    // GET /scholarships
	rg.GET("/:id", h.get) // GET /scholarships/:id (id or slug)
}

// ListResponse is the paged listing body.
type ListResponse struct {
	Scholarships []models.TransformedRecord `json:"scholarships"`
	Total        int                        `json:"total"`
	Page         int                        `json:"page"`
	Limit        int                        `json:"limit"`
	Pages        int                        `json:"pages"`
}

func (h *Handler) list(c *gin.Context) {
	q, page, err := parseListQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	total, err := h.Repo.Count(ctx, q)
	if err != nil {
		h.Log.Error("catalog: count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count failed"})
		return
	}
	items, err := h.Repo.List(ctx, q)
	if err != nil {
		h.Log.Error("catalog: list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Scholarships: items,
		Total:        total,
		Page:         page,
		Limit:        q.Limit,
		Pages:        (total + q.Limit - 1) / q.Limit,
	})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		h.Log.Error("catalog: get failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scholarship not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

type badParam struct {
	name, value, want string
}

func (e badParam) Error() string {
	return "invalid " + e.name + " " + strconv.Quote(e.value) + ": " + e.want
}

// parseListQuery reads search, category, type, tag, renewable, page and
// limit. Out-of-range page/limit values are rejected rather than clamped.
func parseListQuery(c *gin.Context) (ListQuery, int, error) {
	q := ListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Tag:      c.Query("tag"),
		Limit:    DefaultLimit,
	}

	page, err := intParam(c, "page", 1, 1, 0)
	if err != nil {
		return q, 0, err
	}
	if q.Limit, err = intParam(c, "limit", DefaultLimit, 1, MaxLimit); err != nil {
		return q, 0, err
	}
	q.Offset = (page - 1) * q.Limit

	if s := strings.TrimSpace(c.Query("renewable")); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return q, 0, badParam{"renewable", s, "want true or false"}
		}
		q.Renewable = &b
	}
	return q, page, nil
}

// intParam parses an integer query parameter; hi 0 means unbounded.
func intParam(c *gin.Context, name string, def, lo, hi int) (int, error) {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || (hi > 0 && n > hi) {
		want := "want an integer >= " + strconv.Itoa(lo)
		if hi > 0 {
			want += " and <= " + strconv.Itoa(hi)
		}
		return 0, badParam{name, s, want}
	}
	return n, nil
}
