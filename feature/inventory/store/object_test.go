package store_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"inventory-manager/core/storage/mocks"
	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/inventory/store"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const catalogObject = "catalog/products.json"

func TestObjectStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Document", func(t *testing.T) {
		client := new(mocks.Client)
		doc := `[{"id":1,"name":"Milk","barcode":"111","sku":"M1","price":"2.5","stock":3,"minStock":10}]`
		client.On("GetObject", mock.Anything, "inventory", catalogObject, mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(doc))), nil)

		got, err := store.NewObjectStore(client, "inventory", catalogObject).Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Milk", got[0].Name)
		assert.Equal(t, 10, got[0].MinStock)
		assert.True(t, decimal.RequireFromString("2.5").Equal(got[0].Price))
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "inventory", catalogObject, mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		got, err := store.NewObjectStore(client, "inventory", catalogObject).Load(ctx)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Corrupt", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "inventory", catalogObject, mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("{not json"))), nil)

		_, err := store.NewObjectStore(client, "inventory", catalogObject).Load(ctx)
		assert.ErrorContains(t, err, "failed to decode catalog")
	})
}

func TestObjectStore_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes", func(t *testing.T) {
		client := new(mocks.Client)
		var written []byte
		client.On("PutObject", mock.Anything, "inventory", catalogObject, mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				written, _ = io.ReadAll(args.Get(3).(io.Reader))
			}).
			Return(minio.UploadInfo{}, nil)

		err := store.NewObjectStore(client, "inventory", catalogObject).Replace(ctx, []models.Product{{ID: 7, Name: "Jam"}})
		require.NoError(t, err)

		var got []models.Product
		require.NoError(t, json.Unmarshal(written, &got))
		assert.Equal(t, 7, got[0].ID)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		client := new(mocks.Client)
		var written []byte
		client.On("PutObject", mock.Anything, "inventory", catalogObject, mock.Anything, int64(2), mock.Anything).
			Run(func(args mock.Arguments) {
				written, _ = io.ReadAll(args.Get(3).(io.Reader))
			}).
			Return(minio.UploadInfo{}, nil)

		require.NoError(t, store.NewObjectStore(client, "inventory", catalogObject).Replace(ctx, nil))
		assert.Equal(t, "[]", string(written))
	})

	t.Run("PutFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("offline"))

		err := store.NewObjectStore(client, "inventory", catalogObject).Replace(ctx, nil)
		assert.ErrorContains(t, err, "offline")
	})
}

func TestObjectStore_Migrate(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "inventory").Return(true, nil)

	assert.NoError(t, store.NewObjectStore(client, "inventory", catalogObject).Migrate(context.Background()))
}
