package integration

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/kybermartin/python-editor/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLiveness(t *testing.T) {
	r := setupRouter()

	w := performRequest(r, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Python editor backend running.", resp["message"])
}

func TestSaveAndListFlow(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	// 1. Save a script under a brand-new user name
	payload := map[string]interface{}{
		"title":     "Hello World",
		"code":      "print('Hello World')",
		"user_name": "martin",
	}
	w := performRequest(r, "POST", "/save", payload)
	assert.Equal(t, http.StatusOK, w.Code)

	var saveResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &saveResp)
	assert.Equal(t, "Skript uložený", saveResp["message"])

	// 2. The saved pair must come back in the listing
	w = performRequest(r, "GET", "/scripts/martin", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var scripts []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &scripts)
	assert.NoError(t, err)
	assert.Len(t, scripts, 1)
	assert.Equal(t, "Hello World", scripts[0]["title"])
	assert.Equal(t, "print('Hello World')", scripts[0]["code"])

	// 3. Duplicate titles are allowed; both rows land under the same user
	w = performRequest(r, "POST", "/save", payload)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "GET", "/scripts/martin", nil)
	json.Unmarshal(w.Body.Bytes(), &scripts)
	assert.Len(t, scripts, 2)

	var userCount int64
	db.Model(&models.User{}).Where("name = ?", "martin").Count(&userCount)
	assert.Equal(t, int64(1), userCount)
}

func TestListUnknownUserIsEmpty(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	w := performRequest(r, "GET", "/scripts/nobody", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Empty JSON array, not null and not an error
	assert.Equal(t, "[]", w.Body.String())
}

func TestSaveMalformedBody(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	// Missing user_name
	w := performRequest(r, "POST", "/save", map[string]interface{}{
		"title": "Orphan",
		"code":  "print(1)",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Validation fails before delegation; nothing may have been persisted
	var userCount, scriptCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Script{}).Count(&scriptCount)
	assert.Equal(t, int64(0), userCount)
	assert.Equal(t, int64(0), scriptCount)
}

func TestConcurrentFirstSaveCreatesOneUser(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	const workers = 8

	var wg sync.WaitGroup
	codes := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload := map[string]interface{}{
				"title":     "Racy",
				"code":      "print('race')",
				"user_name": "newcomer",
			}
			w := performRequest(r, "POST", "/save", payload)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "save %d failed", i)
	}

	var userCount int64
	db.Model(&models.User{}).Where("name = ?", "newcomer").Count(&userCount)
	assert.Equal(t, int64(1), userCount, "exactly one user row despite concurrent first saves")

	var scriptCount int64
	db.Model(&models.Script{}).Count(&scriptCount)
	assert.Equal(t, int64(workers), scriptCount)
}
