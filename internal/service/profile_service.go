package service

import (
	"strings"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ProfileRepository interface {
	FindBySub(sub string) (*entity.Profile, error)
	Save(profile *entity.Profile) error
}

type ProfileService struct {
	ProfileRepo ProfileRepository
	Validate    *validator.Validate
}

func NewProfileService(profileRepo ProfileRepository, validate *validator.Validate) *ProfileService {
	return &ProfileService{
		ProfileRepo: profileRepo,
		Validate:    validate,
	}
}

// EnsureProfile returns the stored profile for the token subject,
// creating one from the token claims on first sight.
func (s *ProfileService) EnsureProfile(token *utils.TokenData) (*entity.Profile, apierror.ErrorResponse) {
	profile, err := s.ProfileRepo.FindBySub(token.Sub)
	if err != nil {
		log.Errorf("failed to fetch profile: %v", err)
		return nil, apierror.InternalServerError
	}

	if profile != nil {
		return profile, nil
	}

	username := token.Username
	if username == "" {
		username = usernameFromEmail(token.Email)
	}

	now := utils.NowUTC()
	profile = &entity.Profile{
		Sub:         token.Sub,
		Email:       token.Email,
		Username:    username,
		PhotoURL:    token.PhotoURL,
		Theme:       "system",
		LandingPage: "/",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.ProfileRepo.Save(profile); err != nil {
		log.Errorf("failed to create profile: %v", err)
		return nil, apierror.InternalServerError
	}
	return profile, nil
}

func (s *ProfileService) GetProfile(actor *entity.Profile) *contract.ProfileResponse {
	return toProfileResponse(actor)
}

func (s *ProfileService) UpdateProfile(actor *entity.Profile, req *contract.UpdateProfileRequest) (*contract.ProfileResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.Username != nil {
		actor.Username = *req.Username
	}
	if req.PhotoURL != nil {
		actor.PhotoURL = *req.PhotoURL
	}
	if req.Theme != nil {
		actor.Theme = *req.Theme
	}
	if req.LandingPage != nil {
		actor.LandingPage = *req.LandingPage
	}

	actor.UpdatedAt = utils.NowUTC()
	if err := s.ProfileRepo.Save(actor); err != nil {
		log.Errorf("failed to update profile: %v", err)
		return nil, apierror.InternalServerError
	}
	return toProfileResponse(actor), nil
}

func usernameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
