package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/store-admin/internal/config"
	"github.com/javajoker/store-admin/internal/database/databasetest"
)

const storeLookup = `SELECT \* FROM "stores" WHERE id = \$1 AND user_id = \$2`

func ownerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "user_id"}).AddRow("store_1", "Main", "user_1")
}

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "expected a validation error, got %v", err)
	return validationErr.Message
}

func TestCheck_Order(t *testing.T) {
	db, _ := databasetest.New(t)
	stores := NewStoreService(db)
	ctx := context.Background()

	// No identity beats every other failure.
	err := stores.check(ctx, mutation{req: &SizeRequest{}, idName: "size"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	err = stores.check(ctx, mutation{userID: "user_1", req: &SizeRequest{}, idName: "size"})
	assert.Equal(t, "name is required", validationMessage(t, err))

	err = stores.check(ctx, mutation{userID: "user_1", req: &SizeRequest{Name: "L", Value: "lg"}, idName: "size"})
	assert.Equal(t, "store id is required", validationMessage(t, err))

	err = stores.check(ctx, mutation{userID: "user_1", storeID: "store_1", req: &SizeRequest{Name: "L", Value: "lg"}, idName: "size"})
	assert.Equal(t, "size id is required", validationMessage(t, err))
}

func TestAuthorize(t *testing.T) {
	db, mock := databasetest.New(t)
	stores := NewStoreService(db)
	ctx := context.Background()

	mock.ExpectQuery(storeLookup).WillReturnRows(ownerRows())
	store, err := stores.Authorize(ctx, "user_1", "store_1")
	require.NoError(t, err)
	assert.Equal(t, "store_1", store.ID)

	mock.ExpectQuery(storeLookup).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = stores.Authorize(ctx, "user_2", "store_1")
	assert.ErrorIs(t, err, ErrForbidden)

	mock.ExpectQuery(storeLookup).WillReturnError(errors.New("db down"))
	_, err = stores.Authorize(ctx, "user_1", "store_1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestGetStore_ForeignStoreIsNotFound(t *testing.T) {
	db, mock := databasetest.New(t)
	stores := NewStoreService(db)

	mock.ExpectQuery(storeLookup).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err := stores.GetStore(context.Background(), "user_2", "store_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteStore_BlockedByChildren(t *testing.T) {
	db, mock := databasetest.New(t)
	stores := NewStoreService(db)

	mock.ExpectQuery(storeLookup).WillReturnRows(ownerRows())
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE store_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE store_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	_, err := stores.DeleteStore(context.Background(), "user_1", "store_1")
	assert.ErrorIs(t, err, ErrInUse)
}

func TestDeleteSize_NotFoundInStore(t *testing.T) {
	db, mock := databasetest.New(t)
	sizes := NewSizeService(db, NewStoreService(db))

	// References are never counted for a row outside the store.
	mock.ExpectQuery(storeLookup).WillReturnRows(ownerRows())
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "sizes" WHERE id = \$1 AND store_id = \$2`).
		WithArgs("size_9", "store_1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := sizes.DeleteSize(context.Background(), "user_1", "store_1", "size_9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct_InUseWithinStore(t *testing.T) {
	db, mock := databasetest.New(t)
	products := NewProductService(db, NewStoreService(db))

	mock.ExpectQuery(storeLookup).WillReturnRows(ownerRows())
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE id = \$1 AND store_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "order_items" WHERE product_id = \$1`).
		WithArgs("prod_1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := products.DeleteProduct(context.Background(), "user_1", "store_1", "prod_1")
	assert.ErrorIs(t, err, ErrInUse)
}

func TestUpdateColor(t *testing.T) {
	db, mock := databasetest.New(t)
	colors := NewColorService(db, NewStoreService(db))

	mock.ExpectQuery(storeLookup).WillReturnRows(ownerRows())
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "colors" SET .* WHERE id = \$\d AND store_id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "colors" WHERE id = \$1 AND store_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "store_id", "name", "value"}).
			AddRow("col_1", "store_1", "Navy", "#000080"))

	color, err := colors.UpdateColor(context.Background(), "user_1", "store_1", "col_1", &ColorRequest{Name: "Navy", Value: "#000080"})
	require.NoError(t, err)
	assert.Equal(t, "col_1", color.ID)
	assert.Equal(t, "#000080", color.Value)
}

func TestUpdateProduct_ReplacesImagesInOneTransaction(t *testing.T) {
	db, mock := databasetest.New(t)
	products := NewProductService(db, NewStoreService(db))

	mock.ExpectQuery(storeLookup).WillReturnRows(ownerRows())
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET .* WHERE id = \$\d+ AND store_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 AND store_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "store_id", "name", "price"}).
			AddRow("prod_1", "store_1", "Shirt", "25.00"))
	mock.ExpectExec(`DELETE FROM "images" WHERE product_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO "images"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	product, err := products.UpdateProduct(context.Background(), "user_1", "store_1", "prod_1", &ProductRequest{
		Name:       "Shirt",
		Images:     []ImageInput{{URL: "https://img.test/2.png"}},
		Price:      decimal.RequireFromString("25.00"),
		CategoryID: "cat_1",
		ColorID:    "col_1",
		SizeID:     "size_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "prod_1", product.ID)
	require.Len(t, product.Images, 1)
	assert.Equal(t, "prod_1", product.Images[0].ProductID)
}

func TestUpdateProduct_RollsBackWhenMissing(t *testing.T) {
	db, mock := databasetest.New(t)
	products := NewProductService(db, NewStoreService(db))

	mock.ExpectQuery(storeLookup).WillReturnRows(ownerRows())
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := products.UpdateProduct(context.Background(), "user_1", "store_1", "gone", &ProductRequest{
		Name:       "Shirt",
		Images:     []ImageInput{{URL: "https://img.test/2.png"}},
		Price:      decimal.NewFromInt(1),
		CategoryID: "cat_1",
		ColorID:    "col_1",
		SizeID:     "size_1",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProducts_RequiresStoreID(t *testing.T) {
	db, _ := databasetest.New(t)
	products := NewProductService(db, NewStoreService(db))

	_, err := products.ListProducts(context.Background(), "", ProductFilter{})
	assert.Equal(t, "store id is required", validationMessage(t, err))
}

func TestBuildGraph(t *testing.T) {
	graph, revenue := buildGraph([]monthlyRevenue{
		{Month: 1, Total: decimal.RequireFromString("10.50")},
		{Month: 12, Total: decimal.RequireFromString("4.50")},
		{Month: 13, Total: decimal.RequireFromString("99")},
	})

	require.Len(t, graph, 12)
	assert.Equal(t, GraphPoint{Name: "Jan", Total: 10.5}, graph[0])
	assert.Equal(t, GraphPoint{Name: "Dec", Total: 4.5}, graph[11])
	assert.Equal(t, "Jun", graph[5].Name)
	assert.True(t, revenue.Equal(decimal.NewFromInt(15)))
}

func TestJoinAddress(t *testing.T) {
	assert.Equal(t, "1 Main St, Springfield, 12345, US", joinAddress("1 Main St", "", "Springfield", "", "12345", "US"))
	assert.Empty(t, joinAddress("", ""))
}

func TestPaymentEvent_Completed(t *testing.T) {
	assert.True(t, (&PaymentEvent{Type: "checkout.session.completed"}).Completed())
	assert.False(t, (&PaymentEvent{Type: "checkout.session.expired"}).Completed())
}

type recordingGateway struct {
	event *PaymentEvent
}

func (g *recordingGateway) CreateCheckoutSession(CheckoutSessionParams) (string, error) {
	return "", errors.New("not expected")
}

func (g *recordingGateway) ParseWebhook([]byte, string) (*PaymentEvent, error) {
	return g.event, nil
}

func TestHandleWebhook_MissingOrderID(t *testing.T) {
	db, _ := databasetest.New(t)
	checkout := NewCheckoutService(db, &recordingGateway{event: &PaymentEvent{Type: eventCheckoutCompleted}}, &config.Config{})

	err := checkout.HandleWebhook(context.Background(), []byte("{}"), "sig")
	assert.Equal(t, "Webhook Error: missing order id", validationMessage(t, err))
}

func newTestStorage(t *testing.T, db *StoreService) *StorageService {
	t.Helper()
	s, err := NewStorageService(&config.Config{
		Storage: config.StorageConfig{
			LocalDir:     t.TempDir(),
			PublicURL:    "http://cdn.test/uploads/",
			MaxImageSize: 64,
		},
	}, db)
	require.NoError(t, err)
	return s
}

func TestUploadImage_Validation(t *testing.T) {
	gif := []byte("GIF89a" + strings.Repeat("\x00", 10))

	cases := []struct {
		name    string
		upload  *Upload
		message string
	}{
		{"missing", nil, "file is required"},
		{"declared too large", &Upload{Filename: "a.gif", Size: 65, Body: bytes.NewReader(gif)}, "file size 65 bytes exceeds maximum allowed size 64 bytes"},
		{"extension", &Upload{Filename: "a.exe", Size: 16, Body: bytes.NewReader(gif)}, "file type .exe is not allowed"},
		{"actually too large", &Upload{Filename: "a.gif", Size: 1, Body: bytes.NewReader(bytes.Repeat(gif, 8))}, "file size exceeds maximum allowed size 64 bytes"},
		{"not an image", &Upload{Filename: "a.png", Size: 5, Body: strings.NewReader("hello")}, "invalid image file"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := databasetest.New(t)
			mock.ExpectQuery(storeLookup).WillReturnRows(ownerRows())

			_, err := newTestStorage(t, NewStoreService(db)).UploadImage(context.Background(), "user_1", "store_1", tc.upload)
			assert.Equal(t, tc.message, validationMessage(t, err))
		})
	}
}

func TestUploadImage_WritesLocalFile(t *testing.T) {
	db, mock := databasetest.New(t)
	mock.ExpectQuery(storeLookup).WillReturnRows(ownerRows())

	storage := newTestStorage(t, NewStoreService(db))
	gif := []byte("GIF89a" + strings.Repeat("\x00", 10))

	result, err := storage.UploadImage(context.Background(), "user_1", "store_1", &Upload{Filename: "Banner.GIF", Size: int64(len(gif)), Body: bytes.NewReader(gif)})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Key, "store_1/"))
	assert.True(t, strings.HasSuffix(result.Key, ".gif"))
	assert.Equal(t, "http://cdn.test/uploads/"+result.Key, result.URL)
	assert.Equal(t, "image/gif", result.MimeType)

	written, err := os.ReadFile(filepath.Join(storage.storage.LocalDir, filepath.FromSlash(result.Key)))
	require.NoError(t, err)
	assert.Equal(t, gif, written)
}

func TestGetS3URL(t *testing.T) {
	s := &StorageService{aws: config.AWSConfig{S3Bucket: "imgs", Region: "eu-west-1"}}
	assert.Equal(t, "https://imgs.s3.eu-west-1.amazonaws.com/k.png", s.getS3URL("k.png"))

	s.aws.CloudFrontURL = "https://cdn.test"
	assert.Equal(t, "https://cdn.test/k.png", s.getS3URL("k.png"))
}
