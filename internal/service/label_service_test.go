package service

import (
	"net/http"
	"testing"

	"eventide/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelLifecycle(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	label, apierr := f.labels.CreateLabel(alice, &contract.CreateLabelRequest{
		Name:  "Urgent",
		Color: "#ff0000",
	})
	require.Nil(t, apierr)

	updated, apierr := f.labels.UpdateLabel(alice, label.LabelID, &contract.UpdateLabelRequest{
		Color: strptr("#7c3aed"),
	})
	require.Nil(t, apierr)
	assert.Equal(t, "#7c3aed", updated.Color)
	assert.Equal(t, "Urgent", updated.Name)

	apierr = f.labels.DeleteLabel(alice, label.LabelID)
	require.Nil(t, apierr)

	labels, apierr := f.labels.GetLabels(alice)
	require.Nil(t, apierr)
	assert.Empty(t, labels)
}

func TestLabelsArePersonal(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	bob := profileOf("bob@example.com")

	label, apierr := f.labels.CreateLabel(alice, &contract.CreateLabelRequest{
		Name:  "Mine",
		Color: "#00ff00",
	})
	require.Nil(t, apierr)

	_, apierr = f.labels.UpdateLabel(bob, label.LabelID, &contract.UpdateLabelRequest{Name: strptr("Stolen")})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	labels, apierr := f.labels.GetLabels(bob)
	require.Nil(t, apierr)
	assert.Empty(t, labels)
}

func TestCreateLabelRejectsBadColor(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	_, apierr := f.labels.CreateLabel(alice, &contract.CreateLabelRequest{
		Name:  "Bad",
		Color: "red",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}
