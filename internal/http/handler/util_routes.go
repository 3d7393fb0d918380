package handler

import (
	"context"
	"net/http"

	"eventide/internal/contract"
	"eventide/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SummaryService interface {
	Summarize(ctx context.Context, req *contract.SummarizeRequest) (*contract.SummarizeResponse, apierror.ErrorResponse)
}

type DefaultUtilRoute struct {
	SummaryService SummaryService
}

func NewUtilRoute(summaryService SummaryService) *DefaultUtilRoute {
	return &DefaultUtilRoute{SummaryService: summaryService}
}

func (u *DefaultUtilRoute) Summarize(c echo.Context) error {
	var req contract.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.SummaryService.Summarize(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
