package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/grouplib/library-app/library/internal/errs"
	"github.com/grouplib/library-app/library/internal/model"
	"github.com/grouplib/library-app/pkg/kafka"
	md "github.com/grouplib/library-app/pkg/middleware"
	"github.com/grouplib/library-app/pkg/validate"
)

type Handler struct {
	librarySvc LibraryService
	eventLog   EventLog
	log        *zap.Logger
}

func New(librarySrv LibraryService, eventLog EventLog, log *zap.Logger) *Handler {
	h := &Handler{
		librarySvc: librarySrv,
		eventLog:   eventLog,
		log:        log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.GetBooks)
	api.POST("/books/loan", h.LoanBook)
	api.POST("/books/return", h.ReturnBook)
	api.GET("/books/loan/count", h.CountLoanedBooks)
	api.GET("/books/stats", h.BookStatistics)

	api.POST("/users", h.CreateUser)
	api.GET("/users", h.GetUsers)
	api.PUT("/users", h.RenameUser)
	api.DELETE("/users", h.DeleteUser)
	api.GET("/users/loan-histories", h.UserLoanHistories)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.librarySvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidName) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBooks(c echo.Context) error {
	books, err := h.librarySvc.ListBooks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) LoanBook(c echo.Context) error {
	var req model.LoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.librarySvc.LoanBook(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, errs.ErrAlreadyLoaned) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.logEvent(record, req.UserName, kafka.EventLoan)

	return c.JSON(http.StatusCreated, record)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	var req model.LoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.librarySvc.ReturnBook(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, errs.ErrInvalidState) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.logEvent(record, req.UserName, kafka.EventReturn)

	return c.JSON(http.StatusOK, record)
}

func (h *Handler) CountLoanedBooks(c echo.Context) error {
	count, err := h.librarySvc.CountLoanedBooks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.LoanCount{Count: count})
}

func (h *Handler) BookStatistics(c echo.Context) error {
	stats, err := h.librarySvc.BookStatistics(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.librarySvc.CreateUser(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) GetUsers(c echo.Context) error {
	users, err := h.librarySvc.ListUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) RenameUser(c echo.Context) error {
	var req model.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.librarySvc.RenameUser(c.Request().Context(), req); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	if err := h.librarySvc.RemoveUserByName(c.Request().Context(), name); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) UserLoanHistories(c echo.Context) error {
	histories, err := h.librarySvc.UserLoanHistories(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, histories)
}

// logEvent publishes the audit event best-effort; the operation has
// already committed.
func (h *Handler) logEvent(record model.LoanRecord, userName string, eventType kafka.EventType) {
	if err := h.eventLog.Log(kafka.LoanEvent{
		Timestamp: time.Now().UTC(),
		RecordUid: record.RecordUid,
		UserName:  userName,
		BookName:  record.BookName,
		EventType: eventType,
	}); err != nil {
		h.log.Warn("eventLog.Log", zap.Error(err))
	}
}
