package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"rewardsadmin/config"
	"rewardsadmin/db"
	"rewardsadmin/uploads"
	"rewardsadmin/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testJWTSecret is a fixed secret for signing session tokens during tests.
const testJWTSecret = "test-api-secret-key-needs-to-be-long-enough"

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct horse battery staple"
)

// testServer bundles everything a handler test needs.
type testServer struct {
	router   *gin.Engine
	database *db.Database
	cfg      *config.Config
	sidecar  *uploads.Sidecar
}

// setupTestServer builds the production router on top of temporary data and public directories.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tempDir := t.TempDir()
	hash, err := utils.HashPassword(testAdminPassword, bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		DataDir:           filepath.Join(tempDir, "data"),
		PublicDir:         filepath.Join(tempDir, "public"),
		EnableBackup:      false,
		JwtSecret:         testJWTSecret,
		AdminEmail:        testAdminEmail,
		AdminPasswordHash: hash,
		TokenLifetime:     1 * time.Hour,
	}

	database, err := db.NewDatabase(cfg)
	require.NoError(t, err, "Failed to initialize test database")

	sidecar := uploads.NewSidecar(cfg.PublicDir)
	router, err := NewRouter(cfg, database, sidecar)
	require.NoError(t, err, "Failed to build router")

	return &testServer{router: router, database: database, cfg: cfg, sidecar: sidecar}
}

// performRequest executes an HTTP request against the test router.
// A non-nil body is sent as JSON.
func performRequest(router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			data, err := json.Marshal(b)
			if err != nil {
				panic(fmt.Sprintf("Failed to marshal request body: %v", err)) // Panic in test helper is acceptable
			}
			reader = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		panic(fmt.Sprintf("Failed to create request: %v", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// testFile is one file part of a multipart request.
type testFile struct {
	field    string
	filename string
	content  []byte
}

// performMultipart sends fields and files as multipart/form-data.
func performMultipart(t *testing.T, router *gin.Engine, path string, fields map[string]string, files ...testFile) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeJSON unmarshals a recorder body into a generic map.
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Response is not a JSON object: %s", w.Body.String())
	return body
}

// writeResourceFile replaces a store's file with raw content.
func writeResourceFile(t *testing.T, store *db.Store, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0644))
}

// --- Brands ---

func TestCreateBrand_WithoutImage(t *testing.T) {
	ts := setupTestServer(t)

	w := performMultipart(t, ts.router, "/api/brands", map[string]string{
		"name":              "Acme",
		"description":       "d",
		"website_url":       "https://a.com",
		"business_category": "RETAIL",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeJSON(t, w)
	assert.Equal(t, "Brand created successfully", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "data should be an object")
	assert.Equal(t, "Acme", data["name"])
	assert.Equal(t, "https://a.com", data["website_url"])
	assert.Equal(t, "RETAIL", data["business_category"])
	assert.Contains(t, data, "image")
	assert.Nil(t, data["image"], "image should be null when no file was sent")
	assert.Len(t, data["id"], 32, "id should be a dashless UUID")
	assert.NotContains(t, data["id"], "-")
	assert.EqualValues(t, 0, data["_v"])
	assert.Equal(t, data["createdAt"], data["updatedAt"])
}

func TestCreateBrand_WithImage(t *testing.T) {
	ts := setupTestServer(t)
	content := []byte("\x89PNG fake image bytes")

	w := performMultipart(t, ts.router, "/api/brands",
		map[string]string{"name": "Acme"},
		testFile{field: "image", filename: "logo.png", content: content},
	)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeJSON(t, w)["data"].(map[string]any)
	image, ok := data["image"].(string)
	require.True(t, ok, "image should be a string path")
	assert.True(t, strings.HasPrefix(image, "uploads/"), "image path %q should be relative to uploads/", image)
	assert.True(t, strings.HasSuffix(image, "-logo.png"), "image path %q should keep the original name", image)

	onDisk, err := os.ReadFile(filepath.Join(ts.cfg.PublicDir, filepath.FromSlash(image)))
	require.NoError(t, err, "uploaded file should exist under the public dir")
	assert.Equal(t, content, onDisk)

	// The stored path is directly fetchable.
	served := performRequest(ts.router, http.MethodGet, "/"+image, nil)
	assert.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, content, served.Body.Bytes())
}

func TestCreateBrand_StoreFailureRemovesUpload(t *testing.T) {
	ts := setupTestServer(t)
	writeResourceFile(t, ts.database.Brands, "{not json")

	w := performMultipart(t, ts.router, "/api/brands",
		map[string]string{"name": "Acme"},
		testFile{field: "image", filename: "logo.png", content: []byte("img")},
	)
	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())

	entries, err := os.ReadDir(ts.sidecar.Dir())
	if !os.IsNotExist(err) {
		require.NoError(t, err)
	}
	assert.Empty(t, entries)
}

func TestCreateBrand_NotMultipart(t *testing.T) {
	ts := setupTestServer(t)

	w := performRequest(ts.router, http.MethodPost, "/api/brands", map[string]string{"name": "Acme"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "Failed to create brand", body["message"])
	assert.NotEmpty(t, body["error"])

	n, err := ts.database.Brands.Len()
	require.NoError(t, err)
	assert.Zero(t, n, "nothing should be stored")
}

func TestListBrands(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("MissingFileIsEmpty", func(t *testing.T) {
		w := performRequest(ts.router, http.MethodGet, "/api/brands", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Brands fetched successfully","data":[]}`, w.Body.String())
	})

	t.Run("InsertionOrder", func(t *testing.T) {
		for _, name := range []string{"First", "Second", "Third"} {
			w := performMultipart(t, ts.router, "/api/brands", map[string]string{"name": name})
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := performRequest(ts.router, http.MethodGet, "/api/brands", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Message string           `json:"message"`
			Data    []map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 3)
		assert.Equal(t, "First", resp.Data[0]["name"])
		assert.Equal(t, "Second", resp.Data[1]["name"])
		assert.Equal(t, "Third", resp.Data[2]["name"])
	})
}

func TestListBrands_CorruptFileIsServerError(t *testing.T) {
	ts := setupTestServer(t)
	writeResourceFile(t, ts.database.Brands, "{not json")

	w := performRequest(ts.router, http.MethodGet, "/api/brands", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "Failed to fetch brands", body["message"])
	assert.NotEmpty(t, body["error"])
}

func TestCreateBrand_ConcurrentPostsKeepBoth(t *testing.T) {
	ts := setupTestServer(t)

	const writers = 8
	var wg sync.WaitGroup
	codes := make([]int, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := performMultipart(t, ts.router, "/api/brands", map[string]string{"name": fmt.Sprintf("Brand %d", i)})
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusCreated, code, "writer %d", i)
	}
	n, err := ts.database.Brands.Len()
	require.NoError(t, err)
	assert.Equal(t, writers, n, "every concurrent create should be persisted")
}

// --- Vouchers ---

func TestCreateVoucher_FormHandling(t *testing.T) {
	ts := setupTestServer(t)

	w := performMultipart(t, ts.router, "/api/vouchers",
		map[string]string{
			"brand":         "acme",
			"title":         "10% off",
			"discount":      "abc",
			"price":         "12.5",
			"validUpTo":     "2026-12-31",
			"terms[0]":      "first term",
			"terms[1]":      "",
			"terms[2]":      "third term",
			"howToAvail[1]": "second step",
			"howToAvail[0]": "first step",
		},
		testFile{field: "logo1", filename: "logo1.png", content: []byte("logo")},
	)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeJSON(t, w)
	assert.Equal(t, "Voucher created successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "acme", data["brand"])
	assert.EqualValues(t, 0, data["discount"], "malformed number falls back to 0")
	assert.EqualValues(t, 0, data["coins"], "missing number falls back to 0")
	assert.EqualValues(t, 12.5, data["price"])
	assert.Equal(t, []any{"first term", "third term"}, data["terms"])
	assert.Equal(t, []any{"first step", "second step"}, data["howToAvail"])

	logo1, ok := data["logo1"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(logo1, "uploads/"))
	assert.Nil(t, data["logo2"])
	assert.Nil(t, data["productImage"])
	assert.Nil(t, data["banarImage"])
}

func TestCreateVoucher_EmptyArrays(t *testing.T) {
	ts := setupTestServer(t)

	w := performMultipart(t, ts.router, "/api/vouchers", map[string]string{"title": "bare"})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeJSON(t, w)["data"].(map[string]any)
	assert.Equal(t, []any{}, data["terms"], "terms should be an empty array, not null")
	assert.Equal(t, []any{}, data["howToAvail"])
}

func TestCreateVoucher_StoreFailureRemovesUploads(t *testing.T) {
	ts := setupTestServer(t)
	writeResourceFile(t, ts.database.Vouchers, "{not json")

	w := performMultipart(t, ts.router, "/api/vouchers",
		map[string]string{"title": "doomed"},
		testFile{field: "logo1", filename: "logo1.png", content: []byte("logo")},
		testFile{field: "productImage", filename: "product.png", content: []byte("product")},
	)
	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())

	entries, err := os.ReadDir(ts.sidecar.Dir())
	if !os.IsNotExist(err) {
		require.NoError(t, err)
	}
	assert.Empty(t, entries, "uploads saved for a record that was never stored should be removed")
}

func TestListVouchers(t *testing.T) {
	ts := setupTestServer(t)

	w := performRequest(ts.router, http.MethodGet, "/api/vouchers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Vouchers fetched successfully","data":[]}`, w.Body.String())

	require.Equal(t, http.StatusCreated, performMultipart(t, ts.router, "/api/vouchers", map[string]string{"title": "v1"}).Code)

	w = performRequest(ts.router, http.MethodGet, "/api/vouchers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeJSON(t, w)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "v1", data[0].(map[string]any)["title"])

	writeResourceFile(t, ts.database.Vouchers, `{"not":"an array"}`)
	w = performRequest(ts.router, http.MethodGet, "/api/vouchers", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch vouchers", decodeJSON(t, w)["message"])
}

// --- Coupons ---

func TestListCoupons(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("MissingFile", func(t *testing.T) {
		w := performRequest(ts.router, http.MethodGet, "/api/coupons", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"coupons":[]}`, w.Body.String())
	})

	t.Run("RecordsReturnedAsStored", func(t *testing.T) {
		writeResourceFile(t, ts.database.Coupons, `[{"name":"legacy","extra":{"kept":true}}]`)
		w := performRequest(ts.router, http.MethodGet, "/api/coupons", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"coupons":[{"name":"legacy","extra":{"kept":true}}]}`, w.Body.String())
	})

	t.Run("CorruptFileIsMasked", func(t *testing.T) {
		writeResourceFile(t, ts.database.Coupons, "garbage")
		w := performRequest(ts.router, http.MethodGet, "/api/coupons", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"coupons":[]}`, w.Body.String())
	})
}

func TestCreateCoupon(t *testing.T) {
	ts := setupTestServer(t)

	w := performRequest(ts.router, http.MethodPost, "/api/coupons", map[string]any{
		"name":            "Summer",
		"code":            "SUMMER10",
		"discount":        10,
		"coins_to_redeem": 50,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeJSON(t, w)["data"].(map[string]any)
	assert.Equal(t, "Summer", data["name"])
	assert.NotEmpty(t, data["id"])

	w = performRequest(ts.router, http.MethodPost, "/api/coupons", map[string]any{"code": "NONAME"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCoupon_ByIndex(t *testing.T) {
	ts := setupTestServer(t)
	require.Equal(t, http.StatusCreated, performRequest(ts.router, http.MethodPost, "/api/coupons", map[string]any{"name": "Old"}).Code)

	w := performRequest(ts.router, http.MethodPut, "/api/coupons", map[string]any{"index": 0, "newName": "X"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = performRequest(ts.router, http.MethodGet, "/api/coupons", nil)
	coupons := decodeJSON(t, w)["coupons"].([]any)
	require.Len(t, coupons, 1)
	coupon := coupons[0].(map[string]any)
	assert.Equal(t, "X", coupon["name"])
	assert.EqualValues(t, 1, coupon["_v"], "update should bump the version")
	assert.NotEqual(t, coupon["createdAt"], coupon["updatedAt"], "update should refresh updatedAt")
}

func TestUpdateCoupon_DuplicateIDsRenamesPosition(t *testing.T) {
	ts := setupTestServer(t)
	writeResourceFile(t, ts.database.Coupons, `[{"id":"dup","name":"first"},{"id":"dup","name":"second"}]`)

	w := performRequest(ts.router, http.MethodPut, "/api/coupons", map[string]any{"index": 1, "newName": "X"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = performRequest(ts.router, http.MethodGet, "/api/coupons", nil)
	coupons := decodeJSON(t, w)["coupons"].([]any)
	require.Len(t, coupons, 2)
	assert.Equal(t, "first", coupons[0].(map[string]any)["name"], "the earlier coupon sharing the id stays untouched")
	assert.Equal(t, "X", coupons[1].(map[string]any)["name"])
}

func TestUpdateCoupon_LegacyRecordWithoutID(t *testing.T) {
	ts := setupTestServer(t)
	writeResourceFile(t, ts.database.Coupons, `[{"name":"legacy","discount":12345678901234567890}]`)

	w := performRequest(ts.router, http.MethodPut, "/api/coupons", map[string]any{"index": 0, "newName": "renamed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	raw, err := os.ReadFile(ts.database.Coupons.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name": "renamed"`)
	assert.Contains(t, string(raw), "12345678901234567890", "untouched fields should survive byte-for-byte")
}

func TestUpdateCoupon_Boundaries(t *testing.T) {
	ts := setupTestServer(t)
	require.Equal(t, http.StatusCreated, performRequest(ts.router, http.MethodPost, "/api/coupons", map[string]any{"name": "Only"}).Code)

	testCases := []struct {
		name         string
		body         any
		expectedCode int
		expectedErr  string
	}{
		{"IndexEqualsLength", map[string]any{"index": 1, "newName": "X"}, http.StatusBadRequest, "Invalid coupon index"},
		{"NegativeIndex", map[string]any{"index": -1, "newName": "X"}, http.StatusBadRequest, "Invalid coupon index"},
		{"MissingIndex", map[string]any{"newName": "X"}, http.StatusBadRequest, "Invalid coupon index"},
		{"MissingNewName", map[string]any{"index": 0}, http.StatusBadRequest, "newName is required"},
		{"MalformedBody", "{index:", http.StatusInternalServerError, "Failed to update coupon: "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(ts.router, http.MethodPut, "/api/coupons", tc.body)
			assert.Equal(t, tc.expectedCode, w.Code, w.Body.String())
			errMsg, _ := decodeJSON(t, w)["error"].(string)
			assert.True(t, strings.HasPrefix(errMsg, tc.expectedErr), "error %q should start with %q", errMsg, tc.expectedErr)
		})
	}

	// None of the failures may have touched the stored coupon.
	coupons, err := ts.database.Coupons.LoadAll()
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Contains(t, string(coupons[0]), `"Only"`)
}

func TestUpdateCoupon_VersionConflict(t *testing.T) {
	ts := setupTestServer(t)
	require.Equal(t, http.StatusCreated, performRequest(ts.router, http.MethodPost, "/api/coupons", map[string]any{"name": "Old"}).Code)

	w := performRequest(ts.router, http.MethodPut, "/api/coupons", map[string]any{"index": 0, "newName": "Stale", "_v": 3})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(ts.router, http.MethodPut, "/api/coupons", map[string]any{"index": 0, "newName": "Fresh", "_v": 0})
	require.Equal(t, http.StatusOK, w.Code)

	// The version moved on; the same _v is now stale.
	w = performRequest(ts.router, http.MethodPut, "/api/coupons", map[string]any{"index": 0, "newName": "Again", "_v": 0})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRenameCoupon_ByID(t *testing.T) {
	ts := setupTestServer(t)
	for _, name := range []string{"A", "B"} {
		require.Equal(t, http.StatusCreated, performRequest(ts.router, http.MethodPost, "/api/coupons", map[string]any{"name": name}).Code)
	}
	listed := decodeJSON(t, performRequest(ts.router, http.MethodGet, "/api/coupons", nil))["coupons"].([]any)
	require.Len(t, listed, 2)
	ids := make([]string, 2)
	for i := range ids {
		ids[i] = listed[i].(map[string]any)["id"].(string)
	}

	w := performRequest(ts.router, http.MethodPut, "/api/coupons/"+ids[1], map[string]any{"newName": "B2"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeJSON(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "B2", body["data"].(map[string]any)["name"])

	w = performRequest(ts.router, http.MethodGet, "/api/coupons", nil)
	coupons := decodeJSON(t, w)["coupons"].([]any)
	assert.Equal(t, "A", coupons[0].(map[string]any)["name"], "other coupons stay untouched")
	assert.Equal(t, "B2", coupons[1].(map[string]any)["name"])

	w = performRequest(ts.router, http.MethodPut, "/api/coupons/does-not-exist", map[string]any{"newName": "Z"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(ts.router, http.MethodPut, "/api/coupons/"+ids[0], map[string]any{"newName": "A2", "_v": 7})
	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Auth ---

func TestCheckAuth(t *testing.T) {
	ts := setupTestServer(t)

	w := performRequest(ts.router, http.MethodGet, "/api/auth/check", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

	// Presence is all that counts; the value is never verified.
	w = performRequest(ts.router, http.MethodGet, "/api/auth/check", nil, &http.Cookie{Name: utils.AuthCookieName, Value: "anything"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"authenticated"}`, w.Body.String())
}

func TestLogout_ClearsCookie(t *testing.T) {
	ts := setupTestServer(t)

	w := performRequest(ts.router, http.MethodPost, "/api/auth/logout", nil, &http.Cookie{Name: utils.AuthCookieName, Value: "token"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, w.Body.String())

	var cleared *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.AuthCookieName {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared, "logout should send a clearing Set-Cookie")
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.MaxAge < 0, "cookie should be expired immediately")

	// A client honouring the clearing cookie sends nothing on the next check.
	w = performRequest(ts.router, http.MethodGet, "/api/auth/check", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logout without a cookie still succeeds.
	w = performRequest(ts.router, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin(t *testing.T) {
	ts := setupTestServer(t)

	testCases := []struct {
		name         string
		body         any
		expectedCode int
	}{
		{"Success", LoginRequest{Email: testAdminEmail, Password: testAdminPassword}, http.StatusOK},
		{"EmailCaseInsensitive", LoginRequest{Email: strings.ToUpper(testAdminEmail), Password: testAdminPassword}, http.StatusOK},
		{"WrongPassword", LoginRequest{Email: testAdminEmail, Password: "nope"}, http.StatusUnauthorized},
		{"UnknownEmail", LoginRequest{Email: "other@example.com", Password: testAdminPassword}, http.StatusUnauthorized},
		{"MissingPassword", map[string]string{"email": testAdminEmail}, http.StatusBadRequest},
		{"InvalidEmail", map[string]string{"email": "not-an-email", "password": "x"}, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(ts.router, http.MethodPost, "/api/auth/login", tc.body)
			assert.Equal(t, tc.expectedCode, w.Code, w.Body.String())

			var session *http.Cookie
			for _, cookie := range w.Result().Cookies() {
				if cookie.Name == utils.AuthCookieName {
					session = cookie
				}
			}
			if tc.expectedCode == http.StatusOK {
				require.NotNil(t, session, "successful login should set the session cookie")
				assert.NotEmpty(t, session.Value)
				assert.True(t, session.HttpOnly)
			} else {
				assert.Nil(t, session, "failed login must not set the session cookie")
			}
		})
	}
}

func TestLogin_NotConfigured(t *testing.T) {
	ts := setupTestServer(t)
	ts.cfg.AdminPasswordHash = ""

	w := performRequest(ts.router, http.MethodPost, "/api/auth/login", LoginRequest{Email: testAdminEmail, Password: testAdminPassword})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
