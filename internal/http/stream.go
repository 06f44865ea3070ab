package http

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/cargo-pack-service/internal/domain/dto"
	"github.com/guttosm/cargo-pack-service/internal/i18n"
	"github.com/guttosm/cargo-pack-service/internal/logger"
	"github.com/guttosm/cargo-pack-service/internal/metrics"
	"github.com/guttosm/cargo-pack-service/internal/packing"
	"github.com/guttosm/cargo-pack-service/internal/service"
)

// Server-sent event names of the optimize stream.
const (
	EventStarted  = "started"
	EventProgress = "progress"
	EventComplete = "complete"
	EventError    = "error"
)

type streamOutcome struct {
	out service.Outcome
	err error
}

// OptimizeStream handles POST /api/optimize/stream requests.
//
// The optimizer runs on its own goroutine and reports genetic progress
// through a buffered channel. When the client is slower than the optimizer
// progress events are dropped; the optimizer never waits on the client.
// A client that disconnects stops the stream, not the run.
//
// @Summary      Optimize with live progress
// @Description  Same input as /api/optimize. Responds with text/event-stream: one "started" event, one "progress" event per genetic generation, then "complete" with the result or "error".
// @Tags         Optimize
// @Accept       json
// @Produce      text/event-stream
// @Param        request body dto.OptimizeRequest true "Items, container and tuning"
// @Success      200 {object} dto.StreamComplete "Event stream; the complete event carries this payload"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Router       /api/optimize/stream [post]
func (h *Handler) OptimizeStream(c *gin.Context) {
	req, err := BindAndValidate[dto.OptimizeRequest](c)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}

	runID := uuid.NewString()
	sreq := toServiceRequest(c, req)
	locale := i18n.GetLocale(c)
	translator := i18n.GetTranslator()
	log := logger.ForRun(sreq.RequestID, sreq.Options.Algorithm).With().Str("run_id", runID).Logger()

	progress := make(chan packing.Progress, h.streamBuffer)
	done := make(chan streamOutcome, 1)
	dropped := 0

	sreq.Options.OnProgress = func(p packing.Progress) {
		select {
		case progress <- p:
		default:
			dropped++
		}
	}

	metrics.ActiveStreams.Inc()
	defer metrics.ActiveStreams.Dec()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent(EventStarted, dto.StreamStarted{
		RunID:              runID,
		RequestID:          sreq.RequestID,
		RequestedAlgorithm: sreq.Options.Algorithm,
		TotalInstances:     packing.TotalInstances(sreq.Items),
		Message:            translator.Translate(i18n.MsgKeyOptimizationStarted, locale),
	})
	c.Writer.Flush()

	// The run outlives a disconnected client so its result still reaches the
	// cache and run history.
	runCtx := context.WithoutCancel(c.Request.Context())
	go func() {
		out, err := h.optimizer.Optimize(runCtx, sreq)
		done <- streamOutcome{out: out, err: err}
		close(progress)
	}()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case p, ok := <-progress:
			if ok {
				c.SSEvent(EventProgress, dto.StreamProgress{
					RunID:            runID,
					Generation:       p.Generation,
					TotalGenerations: p.TotalGenerations,
					Percent:          p.Percent,
					BestFitness:      p.BestFitness,
					CurrentFitness:   p.CurrentFitness,
				})
				return true
			}

			res := <-done
			if res.err != nil {
				status, key, _ := classify(res.err)
				c.SSEvent(EventError, dto.StreamError{
					RunID:   runID,
					Error:   dto.ErrCodeFromStatus(status),
					Message: translator.Translate(key, locale),
				})
				log.Warn().Err(res.err).Msg("Stream ended with error")
				return false
			}

			c.SSEvent(EventComplete, dto.StreamComplete{
				RunID:   runID,
				Message: translator.Translate(i18n.MsgKeyOptimizationCompleted, locale),
				Result:  toOptimizeResponse(res.out),
			})
			if dropped > 0 {
				log.Debug().Int("dropped", dropped).Msg("Progress events dropped for slow client")
			}
			return false
		case <-clientGone:
			log.Debug().Msg("Stream client disconnected")
			return false
		}
	})
}
