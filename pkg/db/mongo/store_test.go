package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"cleanbook/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDocumentStore_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	fixed := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)

	mt.Run("stamps timestamps and assigns an id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := NewDocumentStore(mt.DB, WithClock(func() time.Time { return fixed }))

		doc, err := store.Create(context.Background(), model.BookingCollection, map[string]any{
			"name":     "Ada",
			"bedrooms": 3,
			"notes":    nil,
		})
		require.NoError(mt, err)

		assert.Equal(mt, "Ada", doc["name"])
		assert.Equal(mt, 3, doc["bedrooms"])
		assert.Contains(mt, doc, "notes")
		assert.Nil(mt, doc["notes"])
		assert.NotContains(mt, doc, "_id")

		_, hexErr := primitive.ObjectIDFromHex(doc.ID())
		assert.NoError(mt, hexErr, "id should be a hex ObjectID")

		want := fixed.Truncate(time.Millisecond)
		assert.Equal(mt, want, doc.CreatedAt())
		assert.Equal(mt, want, doc[model.FieldUpdatedAt])
	})

	mt.Run("does not mutate the input fields", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := NewDocumentStore(mt.DB)

		fields := map[string]any{"name": "Ada"}
		_, err := store.Create(context.Background(), model.BookingCollection, fields)
		require.NoError(mt, err)
		assert.Len(mt, fields, 1)
	})

	mt.Run("identical submissions get distinct ids", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())
		store := NewDocumentStore(mt.DB)

		first, err := store.Create(context.Background(), model.BookingCollection, map[string]any{"name": "Ada"})
		require.NoError(mt, err)
		second, err := store.Create(context.Background(), model.BookingCollection, map[string]any{"name": "Ada"})
		require.NoError(mt, err)

		assert.NotEqual(mt, first.ID(), second.ID())
	})

	mt.Run("write errors are wrapped with the collection name", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))
		store := NewDocumentStore(mt.DB)

		doc, err := store.Create(context.Background(), model.BookingCollection, map[string]any{"name": "Ada"})
		require.Error(mt, err)
		assert.Nil(mt, doc)
		assert.Contains(mt, err.Error(), "bookingrequest")
		assert.Contains(mt, err.Error(), "Document failed validation")
	})
}

func TestDocumentStore_ListCollectionNames(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sorted and truncated", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".$cmd.listCollections"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "name", Value: "zeta"}},
			bson.D{{Key: "name", Value: "alpha"}},
			bson.D{{Key: "name", Value: "bookingrequest"}},
		))
		store := NewDocumentStore(mt.DB)

		names, err := store.ListCollectionNames(context.Background(), 2)
		require.NoError(mt, err)
		assert.Equal(mt, []string{"alpha", "bookingrequest"}, names)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on cleaning_business",
		}))
		store := NewDocumentStore(mt.DB)

		_, err := store.ListCollectionNames(context.Background(), 10)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "not authorized")
	})
}

func TestDocumentStore_Ping(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, NewDocumentStore(mt.DB).Ping(context.Background()))
	})
}

func TestDocumentStore_NilDatabase(t *testing.T) {
	var nilStore *DocumentStore
	_, err := nilStore.Create(context.Background(), model.BookingCollection, nil)
	assert.True(t, errors.Is(err, ErrNotInitialized))

	store := NewDocumentStore(nil)
	_, err = store.Create(context.Background(), model.BookingCollection, nil)
	assert.True(t, errors.Is(err, ErrNotInitialized))
	_, err = store.ListCollectionNames(context.Background(), 10)
	assert.True(t, errors.Is(err, ErrNotInitialized))
	assert.True(t, errors.Is(store.Ping(context.Background()), ErrNotInitialized))
	assert.Equal(t, "", store.DatabaseName())
}

func TestWithTimeout_KeepsShorterDeadline(t *testing.T) {
	store := NewDocumentStore(nil, WithOperationTimeout(time.Minute))

	parent, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	parentDeadline, _ := parent.Deadline()

	ctx, cancelOp := store.withTimeout(parent)
	defer cancelOp()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.Equal(t, parentDeadline, deadline)

	ctx2, cancelOp2 := store.withTimeout(context.Background())
	defer cancelOp2()
	deadline2, ok := ctx2.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline2, 5*time.Second)
}
