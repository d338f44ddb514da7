// Package http exposes the parcel locker queries and commands over a JSON
// HTTP API built on echo.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

const defaultTop = 3

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	notifyFreeLockerHandler commands.NotifyFreeLockerCommandHandler
	sendReportHandler       commands.SendReportCommandHandler

	// Query handlers
	findLockerHandler    queries.FindLockerQueryHandler
	locateParcelHandler  queries.LocateParcelQueryHandler
	getReportHandler     queries.GetReportQueryHandler
	getStatisticsHandler queries.GetStatisticsQueryHandler
	getSummaryHandler    queries.GetPurchaseSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	notifyFreeLockerHandler commands.NotifyFreeLockerCommandHandler,
	sendReportHandler commands.SendReportCommandHandler,
	findLockerHandler queries.FindLockerQueryHandler,
	locateParcelHandler queries.LocateParcelQueryHandler,
	getReportHandler queries.GetReportQueryHandler,
	getStatisticsHandler queries.GetStatisticsQueryHandler,
	getSummaryHandler queries.GetPurchaseSummaryQueryHandler,
) *Server {
	return &Server{
		notifyFreeLockerHandler: notifyFreeLockerHandler,
		sendReportHandler:       sendReportHandler,
		findLockerHandler:       findLockerHandler,
		locateParcelHandler:     locateParcelHandler,
		getReportHandler:        getReportHandler,
		getStatisticsHandler:    getStatisticsHandler,
		getSummaryHandler:       getSummaryHandler,
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetStatistics handles GET /api/v1/statistics?top=n.
func (s *Server) GetStatistics(ctx echo.Context) error {
	top := defaultTop
	if raw := ctx.QueryParam("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "top must be an integer")
		}
		top = n
	}

	query, err := queries.NewGetStatisticsQuery(top)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	stats, err := s.getStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to compute statistics")
	}

	return ctx.JSON(http.StatusOK, toStatistics(stats))
}

// GetPurchaseSummary handles GET /api/v1/summary.
func (s *Server) GetPurchaseSummary(ctx echo.Context) error {
	res, err := s.getSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetPurchaseSummaryQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to read purchase summary")
	}

	return ctx.JSON(http.StatusOK, toPurchaseSummary(res))
}

// GetReport handles GET /api/v1/report.
func (s *Server) GetReport(ctx echo.Context) error {
	text, err := s.getReportHandler.Handle(ctx.Request().Context(), queries.NewGetReportQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to render report")
	}

	return ctx.String(http.StatusOK, text)
}

// LocateParcel handles GET /api/v1/parcels/:id/locker.
func (s *Server) LocateParcel(ctx echo.Context) error {
	query, err := queries.NewLocateParcelQuery(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid parcel number: "+err.Error())
	}

	res, err := s.locateParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to locate parcel")
	}

	status := http.StatusOK
	if !res.Found {
		status = http.StatusNotFound
	}

	return ctx.JSON(status, ParcelLocation{
		ParcelID: res.ParcelID,
		LockerID: res.LockerID,
		Found:    res.Found,
		Message:  res.Message,
	})
}

// SearchLocker handles POST /api/v1/lockers/search.
func (s *Server) SearchLocker(ctx echo.Context) error {
	p, email, failure := bindParcel(ctx)
	if failure != nil {
		return ctx.JSON(failure.Code, failure)
	}

	query, err := queries.NewFindLockerQuery(email, p)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	match, err := s.findLockerHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, services.ErrLockerNotFound) {
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	}
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to find locker")
	}

	return ctx.JSON(http.StatusOK, LockerMatch{
		LockerID: match.LockerID,
		Size:     match.Size,
		Compartments: Compartments{
			Small:  match.Small,
			Medium: match.Medium,
			Large:  match.Large,
		},
		DistanceKm: match.DistanceKm,
	})
}

// NotifyFreeLocker handles POST /api/v1/lockers/notify.
func (s *Server) NotifyFreeLocker(ctx echo.Context) error {
	p, email, failure := bindParcel(ctx)
	if failure != nil {
		return ctx.JSON(failure.Code, failure)
	}

	cmd, err := commands.NewNotifyFreeLockerCommand(email, p)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid command: "+err.Error())
	}

	err = s.notifyFreeLockerHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, services.ErrLockerNotFound) {
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	}
	if err != nil {
		return errorJSON(ctx, http.StatusBadGateway, "Failed to send notification")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendReport handles POST /api/v1/reports/send.
func (s *Server) SendReport(ctx echo.Context) error {
	var req SendReportRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	cmd, err := commands.NewSendReportCommand(req.Subject, req.Body)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid command: "+err.Error())
	}

	if err = s.sendReportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, http.StatusBadGateway, "Failed to send report")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bindParcel decodes and validates a ParcelRequest. A non-nil *Error is the
// response to send instead.
func bindParcel(ctx echo.Context) (parcel.Parcel, string, *Error) {
	var req ParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return parcel.Parcel{}, "", &Error{Code: http.StatusBadRequest, Message: "Invalid request body"}
	}
	if err := ctx.Validate(req); err != nil {
		return parcel.Parcel{}, "", &Error{Code: http.StatusBadRequest, Message: "Invalid request: " + err.Error()}
	}

	p, err := parcel.NewParcel(req.ParcelID, req.Height, req.Length, req.Weight)
	if err != nil {
		return parcel.Parcel{}, "", &Error{Code: http.StatusBadRequest, Message: "Invalid parcel: " + err.Error()}
	}

	return p, req.Email, nil
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
