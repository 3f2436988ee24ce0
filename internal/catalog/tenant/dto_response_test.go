package tenant

import (
	"encoding/json"
	"testing"
	"time"

	"subspace-catalog/internal/catalog/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTenant() model.Tenant {
	return model.Tenant{
		ID:         "t_1",
		Identifier: "acme",
		Name:       "Acme Inc",
		CreatedAt:  time.Unix(1700000000, 0).UTC(),
		UpdatedAt:  time.Unix(1700000500, 0).UTC(),
	}
}

func TestPresenter_Fields(t *testing.T) {
	record := sampleTenant()

	got := Presenter.Present(record)

	assert.Equal(t, "tenant", Presenter.Object())
	assert.Equal(t, TenantResponseDto{
		Object:     "tenant",
		ID:         "t_1",
		Identifier: "acme",
		Name:       "Acme Inc",
		CreatedAt:  record.CreatedAt,
	}, got)
}

func TestPresenter_DeterministicAndPure(t *testing.T) {
	record := sampleTenant()
	before := record

	first := Presenter.Present(record)
	second := Presenter.Present(record)

	assert.Equal(t, first, second)
	assert.Equal(t, before, record)
}

func TestPresenter_WireShape(t *testing.T) {
	raw, err := json.Marshal(Presenter.Present(sampleTenant()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"object": "tenant",
		"id": "t_1",
		"identifier": "acme",
		"name": "Acme Inc",
		"createdAt": "2023-11-14T22:13:20Z"
	}`, string(raw))

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.NotContains(t, keys, "updatedAt")
	assert.Len(t, keys, 5)
}
