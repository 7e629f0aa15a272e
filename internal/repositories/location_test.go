package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func seedUser(t *testing.T, db *sqlx.DB, email, username string) int64 {
	t.Helper()

	writeRepo := NewUserWriteRepository(db)
	id, err := writeRepo.Save(context.Background(), email, username, "hash")
	assert.NoError(t, err)
	return id
}

func TestLocationWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := seedUser(t, db, "alice@example.com", "alice")
	repo := NewLocationWriteRepository(db)
	ctx := context.Background()

	location, err := repo.Save(ctx, userID, "Crag A")
	assert.NoError(t, err)
	assert.NotNil(t, location)
	assert.Greater(t, location.ID, int64(0))
	assert.Equal(t, userID, location.UserID)
	assert.Equal(t, "Crag A", location.LocationName)
}

func TestLocationReadRepository_ListByUserID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	alice := seedUser(t, db, "alice@example.com", "alice")
	bob := seedUser(t, db, "bob@example.com", "bob")

	writeRepo := NewLocationWriteRepository(db)
	readRepo := NewLocationReadRepository(db)
	ctx := context.Background()

	// Insert out of order to check the name ordering.
	_, err := writeRepo.Save(ctx, alice, "Zion")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, alice, "Bishop")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, bob, "Fontainebleau")
	assert.NoError(t, err)

	t.Run("OrderedByName", func(t *testing.T) {
		locations, err := readRepo.ListByUserID(ctx, alice)
		assert.NoError(t, err)
		assert.Len(t, locations, 2)
		assert.Equal(t, "Bishop", locations[0].LocationName)
		assert.Equal(t, "Zion", locations[1].LocationName)
	})

	t.Run("OnlyOwnRows", func(t *testing.T) {
		locations, err := readRepo.ListByUserID(ctx, bob)
		assert.NoError(t, err)
		assert.Len(t, locations, 1)
		assert.Equal(t, "Fontainebleau", locations[0].LocationName)
	})

	t.Run("EmptyForNewUser", func(t *testing.T) {
		carol := seedUser(t, db, "carol@example.com", "carol")
		locations, err := readRepo.ListByUserID(ctx, carol)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(locations))
		assert.NotNil(t, locations)
	})
}

func TestLocationReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	alice := seedUser(t, db, "alice@example.com", "alice")
	bob := seedUser(t, db, "bob@example.com", "bob")

	writeRepo := NewLocationWriteRepository(db)
	readRepo := NewLocationReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, alice, "Crag A")
	assert.NoError(t, err)

	t.Run("Owner", func(t *testing.T) {
		location, err := readRepo.GetByID(ctx, alice, saved.ID)
		assert.NoError(t, err)
		assert.NotNil(t, location)
		assert.Equal(t, saved.ID, location.ID)
	})

	t.Run("ForeignOwnerLooksMissing", func(t *testing.T) {
		location, err := readRepo.GetByID(ctx, bob, saved.ID)
		assert.NoError(t, err)
		assert.Nil(t, location)
	})

	t.Run("UnknownID", func(t *testing.T) {
		location, err := readRepo.GetByID(ctx, alice, 9999)
		assert.NoError(t, err)
		assert.Nil(t, location)
	})
}

func TestLocationWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	alice := seedUser(t, db, "alice@example.com", "alice")
	bob := seedUser(t, db, "bob@example.com", "bob")

	writeRepo := NewLocationWriteRepository(db)
	readRepo := NewLocationReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, alice, "Crag A")
	assert.NoError(t, err)

	t.Run("Owner", func(t *testing.T) {
		rowsAffected, err := writeRepo.Update(ctx, alice, saved.ID, "Crag B")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rowsAffected)

		location, err := readRepo.GetByID(ctx, alice, saved.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Crag B", location.LocationName)
	})

	t.Run("ForeignOwnerCannotRename", func(t *testing.T) {
		rowsAffected, err := writeRepo.Update(ctx, bob, saved.ID, "Hijacked")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rowsAffected)

		location, err := readRepo.GetByID(ctx, alice, saved.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Crag B", location.LocationName)
	})

	t.Run("UnknownID", func(t *testing.T) {
		rowsAffected, err := writeRepo.Update(ctx, alice, 9999, "Nowhere")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rowsAffected)
	})
}

func TestLocationWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	alice := seedUser(t, db, "alice@example.com", "alice")
	bob := seedUser(t, db, "bob@example.com", "bob")

	locationWrite := NewLocationWriteRepository(db)
	locationRead := NewLocationReadRepository(db)
	problemWrite := NewProblemWriteRepository(db)
	problemRead := NewProblemReadRepository(db)
	ctx := context.Background()

	saved, err := locationWrite.Save(ctx, alice, "Crag A")
	assert.NoError(t, err)

	problem, err := problemWrite.Save(ctx, testProblem(saved.ID, alice, "Moonwalk"))
	assert.NoError(t, err)

	t.Run("ForeignOwnerCannotDelete", func(t *testing.T) {
		rowsAffected, err := locationWrite.Delete(ctx, bob, saved.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rowsAffected)
	})

	t.Run("CascadesToProblems", func(t *testing.T) {
		rowsAffected, err := locationWrite.Delete(ctx, alice, saved.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rowsAffected)

		location, err := locationRead.GetByID(ctx, alice, saved.ID)
		assert.NoError(t, err)
		assert.Nil(t, location)

		orphan, err := problemRead.GetByID(ctx, alice, problem.ID)
		assert.NoError(t, err)
		assert.Nil(t, orphan)
	})
}
