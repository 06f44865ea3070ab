package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-pack-service/internal/domain/dto"
	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/i18n"
	"github.com/guttosm/cargo-pack-service/internal/middleware"
	"github.com/guttosm/cargo-pack-service/internal/service"
)

// DefaultStreamBuffer is the number of progress events a stream holds for a
// slow client before new ones are dropped.
const DefaultStreamBuffer = 64

// Handler provides HTTP handlers for optimization and container routes.
type Handler struct {
	optimizer    service.Optimizer
	history      service.RunHistory
	streamBuffer int
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRunHistory enables the run history endpoints.
func WithRunHistory(history service.RunHistory) HandlerOption {
	return func(h *Handler) {
		h.history = history
	}
}

// WithStreamBuffer sets the progress buffer of each stream.
func WithStreamBuffer(size int) HandlerOption {
	return func(h *Handler) {
		if size > 0 {
			h.streamBuffer = size
		}
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(optimizer service.Optimizer, opts ...HandlerOption) *Handler {
	h := &Handler{
		optimizer:    optimizer,
		streamBuffer: DefaultStreamBuffer,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Optimize handles POST /api/optimize requests.
//
// @Summary      Optimize a container load
// @Description  Places the items in the container with the requested algorithm. "auto" asks the advisory service when configured and otherwise runs every strategy and keeps the best. Seeded genetic runs and the deterministic strategies are served from cache when possible.
// @Tags         Optimize
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Response language (en, pt, nl)"
// @Param        request body dto.OptimizeRequest true "Items, container and tuning"
// @Success      200 {object} dto.SuccessResponse{data=dto.OptimizeResponse} "Packing result"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Unknown container code"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/optimize [post]
func (h *Handler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindAndValidate[dto.OptimizeRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	out, err := h.optimizer.Optimize(c.Request.Context(), toServiceRequest(c, req))
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(toOptimizeResponse(out))
}

// Compare handles POST /api/optimize/compare requests.
//
// @Summary      Compare packing algorithms
// @Description  Runs every strategy on the same input and returns utilization, counts and elapsed time per algorithm, best first. The algorithm field of the request is ignored.
// @Tags         Optimize
// @Accept       json
// @Produce      json
// @Param        request body dto.OptimizeRequest true "Items, container and tuning"
// @Success      200 {object} dto.SuccessResponse{data=model.Comparison} "Comparison"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Unknown container code"
// @Failure      504 {object} dto.ErrorResponse "Comparison exceeded its deadline"
// @Router       /api/optimize/compare [post]
func (h *Handler) Compare(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindAndValidate[dto.OptimizeRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	cmp, err := h.optimizer.Compare(c.Request.Context(), toServiceRequest(c, req))
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(cmp)
}

// Containers handles GET /api/containers requests.
//
// @Summary      List container presets
// @Tags         Containers
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ContainersResponse} "Catalogue, smallest first"
// @Router       /api/containers [get]
func (h *Handler) Containers(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.ContainersResponse{Containers: h.optimizer.Containers()})
}

// RecommendContainer handles POST /api/containers/recommend requests.
//
// @Summary      Recommend a container
// @Description  Returns the smallest preset whose volume holds the cargo volume plus a 30% buffer, and up to two larger alternatives. recommended is null when nothing fits.
// @Tags         Containers
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Response language (en, pt, nl)"
// @Param        request body dto.RecommendContainerRequest true "Items"
// @Success      200 {object} dto.SuccessResponse{data=model.ContainerRecommendation} "Recommendation"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Router       /api/containers/recommend [post]
func (h *Handler) RecommendContainer(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindAndValidate[dto.RecommendContainerRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	rec := h.optimizer.RecommendContainer(req.Items)
	rec.Reason = i18n.GetTranslator().Translate(rec.Reason, i18n.GetLocale(c))
	builder.SuccessOK(rec)
}

// Runs handles GET /api/runs requests.
//
// @Summary      List recent runs
// @Description  Returns optimization run summaries, newest first. Available when run history is enabled.
// @Tags         Runs
// @Produce      json
// @Param        algorithm query string false "Algorithm actually used"
// @Param        request_id query string false "Request id"
// @Param        since query string false "RFC 3339 lower bound"
// @Param        until query string false "RFC 3339 upper bound"
// @Param        limit query int false "Page size (default 50, max 200)"
// @Param        skip query int false "Runs to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.RunsResponse} "Runs"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      503 {object} dto.ErrorResponse "Run history disabled or unavailable"
// @Router       /api/runs [get]
func (h *Handler) Runs(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.history == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyRunHistoryUnavailable, nil)
		return
	}

	opts, ok := h.runQuery(c, builder)
	if !ok {
		return
	}
	opts = service.ClampRunQuery(opts)

	runs, total, err := h.history.Recent(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyRunHistoryUnavailable, err)
		return
	}

	builder.SuccessOK(dto.RunsResponse{Runs: runs, Total: total, Limit: opts.Limit, Skip: opts.Skip})
}

// RunsSummary handles GET /api/runs/summary requests.
//
// @Summary      Summarize runs per algorithm
// @Tags         Runs
// @Produce      json
// @Param        since query string false "RFC 3339 lower bound"
// @Param        until query string false "RFC 3339 upper bound"
// @Success      200 {object} dto.SuccessResponse{data=dto.RunsSummaryResponse} "Usage per algorithm"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      503 {object} dto.ErrorResponse "Run history disabled or unavailable"
// @Router       /api/runs/summary [get]
func (h *Handler) RunsSummary(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.history == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyRunHistoryUnavailable, nil)
		return
	}

	opts, ok := h.runQuery(c, builder)
	if !ok {
		return
	}

	usage, err := h.history.Summary(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyRunHistoryUnavailable, err)
		return
	}

	builder.SuccessOK(dto.RunsSummaryResponse{Algorithms: usage})
}

func (h *Handler) runQuery(c *gin.Context, builder *ResponseBuilder) (opts model.RunQueryOptions, ok bool) {
	var query dto.RunsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return opts, false
	}
	opts, err := query.ToOptions()
	if err != nil {
		builder.Fail(err)
		return opts, false
	}
	return opts, true
}

func toServiceRequest(c *gin.Context, req *dto.OptimizeRequest) service.OptimizeRequest {
	return service.OptimizeRequest{
		RequestID:     middleware.GetRequestID(c),
		Items:         req.Items,
		Container:     req.ContainerValue(),
		ContainerCode: req.ContainerCode,
		Options:       req.Options(),
	}
}

func toOptimizeResponse(out service.Outcome) dto.OptimizeResponse {
	resp := dto.OptimizeResponse{
		PackResult:         out.Result,
		RequestedAlgorithm: out.Requested,
		Source:             out.Source,
		Cached:             out.Cached,
		DurationMs:         out.Duration.Milliseconds(),
		Container:          out.Container,
	}
	if out.Advice != nil {
		resp.Advice = &dto.Advice{Algorithm: out.Advice.Algorithm, Confidence: out.Advice.Confidence}
	}
	return resp
}
