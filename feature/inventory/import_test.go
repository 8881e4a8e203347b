package inventory

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/storage/mocks"
	"inventory-manager/feature/inventory/importer"
	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/inventory/store"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var header = []string{"Name", "Barcode", "SKU", "Price", "Stock"}

func TestImport_MergeUpdatesByBarcode(t *testing.T) {
	svc, st := newTestService(t, models.Product{ID: 1, Name: "Cola", Barcode: "A", SKU: "X", Price: price("10")})

	report, err := svc.Import(context.Background(), "test", [][]string{header, {"Cola Zero", "A", "Y", "20", "6"}}, ImportOptions{})
	require.NoError(t, err)

	assert.True(t, report.Applied)
	assert.Equal(t, reconcile.ModeMerge, report.Mode)
	assert.Equal(t, 1, report.Summary.Updated)
	assert.Equal(t, 0, report.Summary.Added)

	products := load(t, st)
	require.Len(t, products, 1)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Y", products[0].SKU)
	assert.Equal(t, "Cola Zero", products[0].Name)
	assert.True(t, price("20").Equal(products[0].Price))
	assert.Equal(t, fixedNow, products[0].LastRestocked)
}

func TestImport_MergeAppendsNew(t *testing.T) {
	svc, st := newTestService(t, models.Product{ID: 1, Name: "Cola", Barcode: "A"})

	report, err := svc.Import(context.Background(), "test", [][]string{header, {"Tea", "B", "", "3", "1"}}, ImportOptions{Mode: "merge"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.Added)

	products := load(t, st)
	require.Len(t, products, 2)
	assert.Equal(t, "Cola", products[0].Name)
	assert.Equal(t, 2, products[1].ID)
	assert.Equal(t, "B", products[1].Barcode)
}

func TestImport_Idempotent(t *testing.T) {
	svc, st := newTestService(t)
	rows := [][]string{
		header,
		{"Milk", "111", "M1", "2.5", "4"},
		{"Bread", "222", "B1", "1.2", "9"},
		{"Jam", "", "J1", "3.1", "0"},
	}

	_, err := svc.Import(context.Background(), "test", rows, ImportOptions{})
	require.NoError(t, err)
	first := load(t, st)

	report, err := svc.Import(context.Background(), "test", rows, ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.Updated)
	assert.Equal(t, 0, report.Summary.Added)
	assert.Equal(t, first, load(t, st))
}

func TestImport_Replace(t *testing.T) {
	existing := []models.Product{{ID: 7, Name: "Old", Barcode: "A"}, {ID: 9, Name: "Older", Barcode: "Z"}}
	rows := [][]string{header, {"Milk", "A", "", "1", "1"}, {"Bread", "B", "", "1", "1"}}

	t.Run("Unconfirmed", func(t *testing.T) {
		svc, st := newTestService(t, existing...)
		report, err := svc.Import(context.Background(), "test", rows, ImportOptions{Mode: "replace"})
		require.NoError(t, err)
		assert.False(t, report.Applied)
		assert.Equal(t, existing, load(t, st))
	})

	t.Run("Confirmed", func(t *testing.T) {
		svc, st := newTestService(t, existing...)
		report, err := svc.Import(context.Background(), "test", rows, ImportOptions{Mode: "replace", Confirmed: true})
		require.NoError(t, err)
		assert.True(t, report.Applied)
		assert.Equal(t, 2, report.Summary.Added)

		products := load(t, st)
		require.Len(t, products, 2)
		assert.Equal(t, 1, products[0].ID)
		assert.Equal(t, "Milk", products[0].Name)
		assert.Equal(t, 2, products[1].ID)
	})
}

func TestImport_DryRun(t *testing.T) {
	existing := []models.Product{{ID: 1, Name: "Cola", Barcode: "A"}}
	svc, st := newTestService(t, existing...)

	report, err := svc.Import(context.Background(), "test", [][]string{header, {"Cola", "A", "", "2", "2"}, {"Tea", "T", "", "1", "1"}}, ImportOptions{DryRun: true})
	require.NoError(t, err)

	assert.False(t, report.Applied)
	assert.True(t, report.DryRun)
	require.Len(t, report.Actions, 2)
	assert.Equal(t, reconcile.ActionUpdate, report.Actions[0].Type)
	assert.Equal(t, reconcile.ActionAdd, report.Actions[1].Type)
	assert.Equal(t, existing, load(t, st))
}

func TestImport_NoCandidates(t *testing.T) {
	existing := []models.Product{{ID: 1, Name: "Cola", Barcode: "A"}}
	svc, st := newTestService(t, existing...)

	_, err := svc.Import(context.Background(), "test", [][]string{{"", " "}, {}}, ImportOptions{})
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = svc.Import(context.Background(), "test", [][]string{header}, ImportOptions{})
	assert.ErrorIs(t, err, ErrNoCandidates)

	assert.Equal(t, existing, load(t, st))
}

func TestImport_InvalidMode(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Import(context.Background(), "test", [][]string{header}, ImportOptions{Mode: "append"})
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestImport_WriteFailureKeepsCatalog(t *testing.T) {
	existing := []models.Product{{ID: 1, Name: "Cola", Barcode: "A"}}
	mem := store.NewMemoryStore(existing)
	svc := NewService(failingStore{MemoryStore: mem}, nil, "inventory", importer.DefaultConfig(), zap.NewNop())

	_, err := svc.Import(context.Background(), "test", [][]string{header, {"Tea", "T", "", "1", "1"}}, ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write refused")
	assert.Equal(t, existing, load(t, mem))
}

func TestImport_Cancelled(t *testing.T) {
	svc, st := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Import(ctx, "test", [][]string{header, {"Tea", "T", "", "1", "1"}}, ImportOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, load(t, st))
}

func TestImport_Observer(t *testing.T) {
	svc, _ := newTestService(t)
	var messages []string

	_, err := svc.Import(context.Background(), "test", [][]string{header, {"Tea", "T", "", "1", "1"}}, ImportOptions{
		Observer: importer.ObserverFunc(func(msg string) { messages = append(messages, msg) }),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Parsed 1 products"}, messages)
}

func TestImportFile(t *testing.T) {
	svc, st := newTestService(t)
	body := "Product Name,UPC,Item Code,Cost,Qty,Reorder Level\nMilk,111,M1,2.50,4,2\nBread,222,B1,\"1,2\",9,\n"

	report, err := svc.ImportFile(context.Background(), "stock.csv", strings.NewReader(body), ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Candidates)

	products := load(t, st)
	require.Len(t, products, 2)
	assert.Equal(t, "Milk", products[0].Name)
	assert.Equal(t, "111", products[0].Barcode)
	assert.Equal(t, 2, products[0].MinStock)
	assert.Equal(t, int64(1), products[1].Price.IntPart())

	_, err = svc.ImportFile(context.Background(), "stock.pdf", strings.NewReader(body), ImportOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestImportObject(t *testing.T) {
	body := "Name,Barcode,Price\nMilk,111,2\n"

	t.Run("Imported", func(t *testing.T) {
		client := &mocks.Client{}
		client.On("GetObject", mock.Anything, "inventory", "imports/stock.csv", mock.Anything).
			Return(io.NopCloser(bytes.NewBufferString(body)), nil)

		svc, st := newTestService(t)
		svc.client = client

		report, err := svc.ImportObject(context.Background(), "imports/stock.csv", ImportOptions{})
		require.NoError(t, err)
		assert.Equal(t, "imports/stock.csv", report.Source)
		assert.Len(t, load(t, st), 1)
		client.AssertExpectations(t)
	})

	t.Run("Missing", func(t *testing.T) {
		client := &mocks.Client{}
		client.On("GetObject", mock.Anything, "inventory", "nope.csv", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		svc, _ := newTestService(t)
		svc.client = client

		_, err := svc.ImportObject(context.Background(), "nope.csv", ImportOptions{})
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("CallerCancelDoesNotFailSharedRun", func(t *testing.T) {
		client := &mocks.Client{}
		client.On("GetObject", mock.Anything, "inventory", "imports/stock.csv", mock.Anything).
			Return(io.NopCloser(bytes.NewBufferString(body)), nil)

		svc, st := newTestService(t)
		svc.client = client

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		report, err := svc.ImportObject(ctx, "imports/stock.csv", ImportOptions{})
		require.NoError(t, err)
		assert.True(t, report.Applied)
		assert.Len(t, load(t, st), 1)
	})

	t.Run("NoStorage", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.ImportObject(context.Background(), "stock.csv", ImportOptions{})
		assert.ErrorIs(t, err, ErrStorageDisabled)
	})
}

func TestListImportObjects(t *testing.T) {
	client := &mocks.Client{}
	client.On("ListObjects", mock.Anything, "inventory", mock.Anything).Return(func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, 3)
		ch <- minio.ObjectInfo{Key: "imports/a.csv"}
		ch <- minio.ObjectInfo{Key: "imports/b.json"}
		ch <- minio.ObjectInfo{Key: "imports/c.xlsx"}
		close(ch)
		return ch
	})

	svc, _ := newTestService(t)
	svc.client = client

	names, err := svc.ListImportObjects(context.Background(), "imports/")
	require.NoError(t, err)
	assert.Equal(t, []string{"imports/a.csv", "imports/c.xlsx"}, names)
}
