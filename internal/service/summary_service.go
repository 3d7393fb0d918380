package service

import (
	"context"
	"errors"

	"eventide/internal/contract"
	"eventide/internal/infrastructure/summarizer"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type SummaryService struct {
	Summarizer Summarizer
	Validate   *validator.Validate
}

func NewSummaryService(sum Summarizer, validate *validator.Validate) *SummaryService {
	return &SummaryService{
		Summarizer: sum,
		Validate:   validate,
	}
}

func (s *SummaryService) Summarize(ctx context.Context, req *contract.SummarizeRequest) (*contract.SummarizeResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	summary, err := s.Summarizer.Summarize(ctx, req.Text)
	if err != nil {
		if errors.Is(err, summarizer.ErrNotConfigured) {
			return nil, apierror.NewSimple(503, "Summarization is not available.")
		}
		log.Errorf("summarization failed: %v", err)
		return nil, apierror.NewSimple(502, "Summarization failed.")
	}
	return &contract.SummarizeResponse{Summary: summary}, nil
}
