//go:build unit

package usecase_test

import (
	"testing"

	"hotel-registry/internal/domain/hotel"
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/internal/pkg/patch"
	"hotel-registry/internal/usecase"
	"hotel-registry/internal/usecase/readmodel"
	"hotel-registry/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelStore_Create(t *testing.T) {
	t.Run("success: rooms are listed by number", func(t *testing.T) {
		store := usecase.NewHotelStore(discardLogger())
		b := builder.NewHotelBuilder().WithRoom("202", "reserved", "double")

		view, report, err := store.Create(t.Context(), b.BuildParams())
		require.NoError(t, err)
		requireClean(t, report)
		assert.Equal(t, []string{"room 101", "room 202"}, report.Applied)

		if diff := cmp.Diff(b.BuildView(), view, cmpopts.IgnoreFields(readmodel.HotelView{}, "ID")); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
		assert.NotEqual(t, uuid.Nil, view.ID)
	})

	t.Run("partial: invalid rooms are skipped and reported", func(t *testing.T) {
		store := usecase.NewHotelStore(discardLogger())
		b := builder.NewHotelBuilder().
			WithRoom("5000", "available", "single").
			WithRoom("102", "cleaning", "single").
			WithRoom("103", "available", "suite")

		view, report, err := store.Create(t.Context(), b.BuildParams())
		require.NoError(t, err)
		require.Len(t, view.Rooms, 1)
		assert.Equal(t, "101", view.Rooms[0].Number)
		assert.Equal(t, []string{"room 101"}, report.Applied)

		require.ErrorIs(t, failureFor(report, "room 5000"), hotel.ErrRoomNumberInvalid)
		require.ErrorIs(t, failureFor(report, "room 102"), hotel.ErrRoomStatusInvalid)
		require.ErrorIs(t, failureFor(report, "room 103"), hotel.ErrRoomTypeInvalid)
		assert.Equal(t, 1, store.Len())
	})

	testCases := []struct {
		name   string
		mutate func(*builder.HotelBuilder)
		errIs  error
	}{
		{name: "error: empty name", mutate: func(b *builder.HotelBuilder) { b.Name = " " }, errIs: hotel.ErrNameEmpty},
		{name: "error: empty location", mutate: func(b *builder.HotelBuilder) { b.Location = "" }, errIs: hotel.ErrLocationEmpty},
		{name: "error: location with digits", mutate: func(b *builder.HotelBuilder) { b.Location = "Tijuana 2" }, errIs: hotel.ErrLocationInvalid},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := usecase.NewHotelStore(discardLogger())
			view, report, err := store.Create(t.Context(), builder.NewHotelBuilder().With(tc.mutate).BuildParams())

			require.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, view)
			assert.Nil(t, report)
			assert.Equal(t, 0, store.Len())
		})
	}

	t.Run("error: duplicate name", func(t *testing.T) {
		store := usecase.NewHotelStore(discardLogger())
		_, _, err := store.Create(t.Context(), builder.NewHotelBuilder().BuildParams())
		require.NoError(t, err)

		_, _, err = store.Create(t.Context(), builder.NewHotelBuilder().BuildParams())
		require.ErrorIs(t, err, hotel.ErrAlreadyExists)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		assert.Equal(t, 1, store.Len())
	})
}

func TestHotelStore_Rooms(t *testing.T) {
	setup := func(t *testing.T) *usecase.HotelStore {
		t.Helper()
		store := usecase.NewHotelStore(discardLogger())
		_, _, err := store.Create(t.Context(), builder.NewHotelBuilder().BuildParams())
		require.NoError(t, err)
		return store
	}

	t.Run("create room", func(t *testing.T) {
		store := setup(t)
		room, err := store.CreateRoom(t.Context(), "H1", "102", usecase.RoomSpec{Status: "available", Type: "double"})
		require.NoError(t, err)
		assert.Equal(t, readmodel.RoomView{Number: "102", Status: "available", Type: "double"}, *room)

		_, err = store.CreateRoom(t.Context(), "H1", "102", usecase.RoomSpec{Status: "available", Type: "single"})
		require.ErrorIs(t, err, hotel.ErrRoomAlreadyExists)

		_, err = store.CreateRoom(t.Context(), "H9", "102", usecase.RoomSpec{Status: "available", Type: "single"})
		require.ErrorIs(t, err, hotel.ErrNotFound)
	})

	t.Run("reserve is gated on state", func(t *testing.T) {
		store := setup(t)
		ctx := t.Context()

		room, err := store.Reserve(ctx, "H1", "101")
		require.NoError(t, err)
		assert.Equal(t, "reserved", room.Status)

		_, err = store.Reserve(ctx, "H1", "101")
		require.ErrorIs(t, err, hotel.ErrRoomNotAvailable)

		status, err := store.RoomStatus(ctx, "H1", "101")
		require.NoError(t, err)
		assert.Equal(t, hotel.StatusReserved, status)

		room, err = store.Cancel(ctx, "H1", "101")
		require.NoError(t, err)
		assert.Equal(t, "available", room.Status)

		_, err = store.Cancel(ctx, "H1", "101")
		require.ErrorIs(t, err, hotel.ErrRoomNotReserved)
	})

	t.Run("hold and release by hotel id", func(t *testing.T) {
		store := setup(t)
		ctx := t.Context()
		want, err := store.HotelID(ctx, "H1")
		require.NoError(t, err)

		id, err := store.HoldRoom(ctx, "H1", "101")
		require.NoError(t, err)
		assert.Equal(t, want, id)
		_, err = store.HoldRoom(ctx, "H1", "101")
		require.ErrorIs(t, err, hotel.ErrRoomNotAvailable)

		_, err = store.Modify(ctx, "H1", usecase.HotelUpdate{Name: patch.Set("H2")})
		require.NoError(t, err)

		name, err := store.ReleaseRoom(ctx, id, "101")
		require.NoError(t, err)
		assert.Equal(t, "H2", name)
		_, err = store.ReleaseRoom(ctx, id, "101")
		require.ErrorIs(t, err, hotel.ErrRoomNotReserved)
		_, err = store.ReleaseRoom(ctx, id, "999")
		require.ErrorIs(t, err, hotel.ErrRoomNotFound)
		_, err = store.ReleaseRoom(ctx, uuid.New(), "101")
		require.ErrorIs(t, err, hotel.ErrNotFound)
	})

	t.Run("lookups report what is missing", func(t *testing.T) {
		store := setup(t)
		ctx := t.Context()

		_, err := store.Reserve(ctx, "", "101")
		require.ErrorIs(t, err, hotel.ErrNameEmpty)
		_, err = store.Reserve(ctx, "H9", "101")
		require.ErrorIs(t, err, hotel.ErrNotFound)
		_, err = store.Reserve(ctx, "H1", "1O1")
		require.ErrorIs(t, err, hotel.ErrRoomNumberInvalid)
		_, err = store.Reserve(ctx, "H1", "999")
		require.ErrorIs(t, err, hotel.ErrRoomNotFound)

		assert.True(t, store.HotelExists(ctx, "H1"))
		assert.False(t, store.HotelExists(ctx, "h1"))
		assert.True(t, store.RoomExists(ctx, "H1", "101"))
		assert.False(t, store.RoomExists(ctx, "H1", "102"))
	})
}

func TestHotelStore_Modify(t *testing.T) {
	setup := func(t *testing.T) *usecase.HotelStore {
		t.Helper()
		store := usecase.NewHotelStore(discardLogger())
		b := builder.NewHotelBuilder().WithRoom("102", "available", "double")
		_, _, err := store.Create(t.Context(), b.BuildParams())
		require.NoError(t, err)
		return store
	}

	t.Run("rename keeps the id and frees the old name", func(t *testing.T) {
		store := setup(t)
		ctx := t.Context()
		id, err := store.HotelID(ctx, "H1")
		require.NoError(t, err)

		report, err := store.Modify(ctx, "H1", usecase.HotelUpdate{Name: patch.Set("H2")})
		require.NoError(t, err)
		requireClean(t, report)

		assert.False(t, store.HotelExists(ctx, "H1"))
		renamedID, err := store.HotelID(ctx, "H2")
		require.NoError(t, err)
		assert.Equal(t, id, renamedID)
		name, ok := store.HotelName(ctx, id)
		require.True(t, ok)
		assert.Equal(t, "H2", name)
	})

	t.Run("rename onto a taken name is rejected", func(t *testing.T) {
		store := setup(t)
		ctx := t.Context()
		_, _, err := store.Create(ctx, builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) { b.Name = "H2" }).BuildParams())
		require.NoError(t, err)

		report, err := store.Modify(ctx, "H1", usecase.HotelUpdate{Name: patch.Set("H2")})
		require.NoError(t, err)
		require.ErrorIs(t, failureFor(report, "name"), hotel.ErrAlreadyExists)

		report, err = store.Modify(ctx, "H1", usecase.HotelUpdate{Name: patch.Set("H1")})
		require.NoError(t, err)
		require.ErrorIs(t, failureFor(report, "name"), hotel.ErrAlreadyExists)
		assert.True(t, store.HotelExists(ctx, "H1"))
	})

	t.Run("relocation", func(t *testing.T) {
		store := setup(t)
		report, err := store.Modify(t.Context(), "H1", usecase.HotelUpdate{Location: patch.Set("Tijuana")})
		require.NoError(t, err)
		require.ErrorIs(t, failureFor(report, "location"), hotel.ErrLocationUnchanged)

		report, err = store.Modify(t.Context(), "H1", usecase.HotelUpdate{Location: patch.Set("Rosarito")})
		require.NoError(t, err)
		requireClean(t, report)

		got, err := store.Get(t.Context(), "H1")
		require.NoError(t, err)
		assert.Equal(t, "Rosarito", got.Location)
	})

	t.Run("room patches apply independently", func(t *testing.T) {
		store := setup(t)
		report, err := store.Modify(t.Context(), "H1", usecase.HotelUpdate{
			Rooms: patch.Set(map[string]usecase.RoomPatch{
				"101": {Status: patch.Set("reserved")},
				"102": {Status: patch.Set("reserved"), Type: patch.Set("suite")},
				"303": {Type: patch.Set("double")},
			}),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"room 101"}, report.Applied)
		require.ErrorIs(t, failureFor(report, "room 102"), hotel.ErrRoomTypeInvalid)
		require.ErrorIs(t, failureFor(report, "room 303"), hotel.ErrRoomNotFound)

		got, err := store.Get(t.Context(), "H1")
		require.NoError(t, err)
		want := []readmodel.RoomView{
			{Number: "101", Status: "reserved", Type: "single"},
			{Number: "102", Status: "available", Type: "double"},
		}
		assert.Equal(t, want, got.Rooms)
	})

	t.Run("room patches follow a rename in the same update", func(t *testing.T) {
		store := setup(t)
		report, err := store.Modify(t.Context(), "H1", usecase.HotelUpdate{
			Name:  patch.Set("H2"),
			Rooms: patch.Set(map[string]usecase.RoomPatch{"101": {Type: patch.Set("double")}}),
		})
		require.NoError(t, err)
		requireClean(t, report)

		got, err := store.Get(t.Context(), "H2")
		require.NoError(t, err)
		assert.Equal(t, "double", got.Rooms[0].Type)
	})

	t.Run("error: unknown hotel", func(t *testing.T) {
		store := setup(t)
		_, err := store.Modify(t.Context(), "H9", usecase.HotelUpdate{Location: patch.Set("Rosarito")})
		require.ErrorIs(t, err, hotel.ErrNotFound)
	})
}

func TestHotelStore_Delete(t *testing.T) {
	store := usecase.NewHotelStore(discardLogger())
	ctx := t.Context()
	for _, name := range []string{"Zeta", "Alfa"} {
		_, _, err := store.Create(ctx, builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) { b.Name = name }).BuildParams())
		require.NoError(t, err)
	}

	list := store.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "Alfa", list[0].Name)
	assert.Equal(t, "Zeta", list[1].Name)

	id, err := store.HotelID(ctx, "Zeta")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "Zeta"))
	assert.Equal(t, 1, store.Len())
	_, ok := store.HotelName(ctx, id)
	assert.False(t, ok)

	require.ErrorIs(t, store.Delete(ctx, "Zeta"), hotel.ErrNotFound)
}
