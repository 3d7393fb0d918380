package service

import (
	"net/http"
	"testing"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCollabMakesCreatorOwner(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Household"})
	require.Nil(t, apierr)
	assert.Equal(t, "Household", collab.Name)
	assert.Equal(t, alice.Email, collab.OwnerEmail)

	members, apierr := f.collabs.GetMembers(alice, collab.CollabID)
	require.Nil(t, apierr)
	require.Len(t, members, 1)
	assert.Equal(t, alice.Email, members[0].UserEmail)
	assert.Equal(t, "owner", members[0].Role)
}

func TestRenameCollabByNonOwnerForbidden(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	bob := profileOf("bob@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Household"})
	require.Nil(t, apierr)

	inviteMember(t, f, alice, bob.Email, collab.CollabID, "admin")

	_, apierr = f.collabs.RenameCollab(bob, collab.CollabID, &contract.RenameCollabRequest{Name: "Taken over"})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())

	renamed, apierr := f.collabs.RenameCollab(alice, collab.CollabID, &contract.RenameCollabRequest{Name: "Chores"})
	require.Nil(t, apierr)
	assert.Equal(t, "Chores", renamed.Name)
}

func TestOwnerCannotBeRemovedOrDemoted(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	bob := profileOf("bob@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Household"})
	require.Nil(t, apierr)
	inviteMember(t, f, alice, bob.Email, collab.CollabID, "admin")

	apierr = f.collabs.RemoveMember(bob, collab.CollabID, alice.Email)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())

	_, apierr = f.collabs.UpdateMemberRole(bob, collab.CollabID, alice.Email, &contract.UpdateMemberRequest{Role: "viewer"})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())
}

func TestMemberManagementRequiresAdminOrOwner(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	bob := profileOf("bob@example.com")
	carol := profileOf("carol@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Household"})
	require.Nil(t, apierr)
	inviteMember(t, f, alice, bob.Email, collab.CollabID, "editor")
	inviteMember(t, f, alice, carol.Email, collab.CollabID, "viewer")

	// Editors do not manage members
	apierr = f.collabs.RemoveMember(bob, collab.CollabID, carol.Email)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())

	apierr = f.collabs.RemoveMember(alice, collab.CollabID, carol.Email)
	require.Nil(t, apierr)

	members, apierr := f.collabs.GetMembers(alice, collab.CollabID)
	require.Nil(t, apierr)
	assert.Len(t, members, 2)
}

func TestGetCollabRequiresMembership(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	mallory := profileOf("mallory@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Private"})
	require.Nil(t, apierr)

	_, apierr = f.collabs.GetCollab(mallory, collab.CollabID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())
}

// inviteMember pushes a user through the invite/accept flow, the only
// path that creates non-owner member rows.
func inviteMember(t *testing.T, f *fixture, inviter *entity.Profile, inviteeEmail, collabID, role string) {
	t.Helper()

	invite, apierr := f.invites.CreateInvitation(inviter, &contract.CreateInvitationRequest{
		CollabID:     collabID,
		InviteeEmail: inviteeEmail,
		Role:         role,
	})
	require.Nil(t, apierr)

	_, apierr = f.invites.AnswerInvitation(profileOf(inviteeEmail), invite.InviteID, &contract.AnswerInvitationRequest{
		Status: "accepted",
	})
	require.Nil(t, apierr)
}
