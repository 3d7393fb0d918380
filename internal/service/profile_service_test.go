package service

import (
	"testing"

	"eventide/internal/contract"
	"eventide/internal/domain/store/repository"
	"eventide/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) *ProfileService {
	t.Helper()
	db := newTestDB(t)
	return NewProfileService(repository.NewProfileRepository(db), newValidate())
}

func TestEnsureProfileCreatesOnFirstSight(t *testing.T) {
	profiles := newProfileService(t)

	token := &utils.TokenData{Sub: "sub-1", Email: "ana@example.com"}
	profile, apierr := profiles.EnsureProfile(token)
	require.Nil(t, apierr)

	assert.Equal(t, "ana@example.com", profile.Email)
	assert.Equal(t, "ana", profile.Username)
	assert.Equal(t, "system", profile.Theme)
	assert.Equal(t, "/", profile.LandingPage)
}

func TestEnsureProfileIsIdempotentPerSubject(t *testing.T) {
	profiles := newProfileService(t)

	token := &utils.TokenData{Sub: "sub-1", Email: "ana@example.com", Username: "Ana"}
	first, apierr := profiles.EnsureProfile(token)
	require.Nil(t, apierr)

	_, apierr = profiles.UpdateProfile(first, &contract.UpdateProfileRequest{Theme: strptr("dark")})
	require.Nil(t, apierr)

	again, apierr := profiles.EnsureProfile(token)
	require.Nil(t, apierr)

	assert.Equal(t, first.Sub, again.Sub)
	assert.Equal(t, "dark", again.Theme, "repeat sight must load, not recreate")
}

func TestUpdateProfilePatchesOnlyProvidedFields(t *testing.T) {
	profiles := newProfileService(t)

	token := &utils.TokenData{Sub: "sub-1", Email: "ana@example.com", Username: "Ana"}
	profile, apierr := profiles.EnsureProfile(token)
	require.Nil(t, apierr)

	resp, apierr := profiles.UpdateProfile(profile, &contract.UpdateProfileRequest{
		LandingPage: strptr("/calendar"),
	})
	require.Nil(t, apierr)

	assert.Equal(t, "/calendar", resp.LandingPage)
	assert.Equal(t, "Ana", resp.Username)
	assert.Equal(t, "system", resp.Theme)
}
