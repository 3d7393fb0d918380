package service

import (
	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"
	"eventide/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type LabelRepository interface {
	FindByOwner(email string) ([]*entity.Label, error)
	FindByID(id string) (*entity.Label, error)
	Save(label *entity.Label) error
	Delete(label *entity.Label) error
}

// LabelService manages labels. Labels are strictly personal: no collab
// scoping, the only precondition is row ownership.
type LabelService struct {
	LabelRepo LabelRepository
	Validate  *validator.Validate
}

func NewLabelService(labelRepo LabelRepository, validate *validator.Validate) *LabelService {
	return &LabelService{LabelRepo: labelRepo, Validate: validate}
}

func (s *LabelService) GetLabels(actor *entity.Profile) ([]*contract.LabelResponse, apierror.ErrorResponse) {
	labels, err := s.LabelRepo.FindByOwner(actor.Email)
	if err != nil {
		log.Errorf("failed to fetch labels: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.LabelResponse, len(labels))
	for i, label := range labels {
		resp[i] = toLabelResponse(label)
	}
	return resp, nil
}

func (s *LabelService) CreateLabel(actor *entity.Profile, req *contract.CreateLabelRequest) (*contract.LabelResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	label := &entity.Label{
		LabelID:   uid.NewString(),
		UserEmail: actor.Email,
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: utils.NowUTC(),
	}

	if err := s.LabelRepo.Save(label); err != nil {
		log.Errorf("failed to save label: %v", err)
		return nil, apierror.InternalServerError
	}
	return toLabelResponse(label), nil
}

func (s *LabelService) UpdateLabel(actor *entity.Profile, labelID string, req *contract.UpdateLabelRequest) (*contract.LabelResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	label, apierr := s.fetchOwned(actor, labelID)
	if apierr != nil {
		return nil, apierr
	}

	if req.Name != nil {
		label.Name = *req.Name
	}
	if req.Color != nil {
		label.Color = *req.Color
	}

	if err := s.LabelRepo.Save(label); err != nil {
		log.Errorf("failed to update label: %v", err)
		return nil, apierror.InternalServerError
	}
	return toLabelResponse(label), nil
}

// DeleteLabel removes the label; referencing events and todos keep
// existing with their label cleared by the store.
func (s *LabelService) DeleteLabel(actor *entity.Profile, labelID string) apierror.ErrorResponse {
	label, apierr := s.fetchOwned(actor, labelID)
	if apierr != nil {
		return apierr
	}

	if err := s.LabelRepo.Delete(label); err != nil {
		log.Errorf("failed to delete label: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *LabelService) fetchOwned(actor *entity.Profile, labelID string) (*entity.Label, apierror.ErrorResponse) {
	label, err := s.LabelRepo.FindByID(labelID)
	if err != nil {
		log.Errorf("failed to fetch label: %v", err)
		return nil, apierror.InternalServerError
	}

	if label == nil || label.UserEmail != actor.Email {
		return nil, apierror.NotFoundError
	}
	return label, nil
}
