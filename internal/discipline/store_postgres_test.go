//go:build integration

package discipline_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"classroom/internal/discipline"
	"classroom/pkg/testutil/containers"
)

func TestPostgresDisciplineStore(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	store := discipline.NewPostgresStore(pg.DB)
	ctx := t.Context()

	d := discipline.Discipline{ID: uuid.New(), Name: "Mathematics"}
	require.NoError(t, store.Create(ctx, d))

	got, err := store.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, d, got)

	updated, err := store.Update(ctx, d.ID, discipline.DisciplineIn{Name: "Applied Mathematics"})
	require.NoError(t, err)
	require.Equal(t, d.ID, updated.ID)
	require.Equal(t, "Applied Mathematics", updated.Name)

	require.NoError(t, store.Create(ctx, discipline.Discipline{ID: uuid.New(), Name: "Biology"}))

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Applied Mathematics", all[0].Name)

	require.NoError(t, store.Delete(ctx, d.ID))
	_, err = store.Get(ctx, d.ID)
	require.ErrorIs(t, err, discipline.ErrNotFound)

	require.ErrorIs(t, store.Delete(ctx, d.ID), discipline.ErrNotFound)
	_, err = store.Update(ctx, d.ID, discipline.DisciplineIn{Name: "x"})
	require.ErrorIs(t, err, discipline.ErrNotFound)
}
