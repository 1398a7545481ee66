package transmission

import (
	"log/slog"
	"net/http"

	"verse-report/internal/common/pagination"
	"verse-report/internal/handler/http/respond"
	"verse-report/internal/observability/logging"
	"verse-report/internal/pkg/filter"
	txUC "verse-report/internal/usecase/transmission"
)

type ListHandler struct {
	Svc           *txUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP returns one page of published transmissions, newest first.
// The optional filter query parameter carries the encoded filter token;
// malformed tokens degrade to an unfiltered listing rather than erroring.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		pagination.RecordError("validation")
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	f := filter.Decode(r.URL.Query().Get("filter"))

	result, err := h.Svc.ListPublished(ctx, f, params)
	if err != nil {
		logger.Error("failed to list transmissions",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("database")
		respond.SafeError(w, err)
		return
	}

	pagination.TotalCount.Set(float64(result.Pagination.Total))
	pagination.RecordRequest(http.StatusOK, params.Page)

	dtos := make([]DTO, 0, len(result.Data))
	for _, v := range result.Data {
		dtos = append(dtos, toDTO(v, false))
	}
	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
