// File: /controllers/saved_item_controller_test.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"wanderspot-api/models"
)

type stubSavedItemRepo struct {
	items    []models.SavedItem
	failList bool
}

func (r *stubSavedItemRepo) ListByUser(userID string) ([]models.SavedItem, error) {
	if r.failList {
		return nil, errors.New("list failed")
	}
	return r.items, nil
}

func (r *stubSavedItemRepo) Insert(item *models.SavedItem) error {
	r.items = append(r.items, *item)
	return nil
}

func (r *stubSavedItemRepo) Delete(userID, itemID, itemType string) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if !(item.UserID == userID && item.ItemID == itemID && item.ItemType == itemType) {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

func newSavedItemRouter(repo *stubSavedItemRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
	})

	controller := NewSavedItemController(repo)
	r.GET("/saved", controller.GetSavedItems)
	r.POST("/saved/toggle", controller.ToggleItem)
	return r
}

func TestGetSavedItemsRepositoryError(t *testing.T) {
	r := newSavedItemRouter(&stubSavedItemRepo{failList: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/saved", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error != "Failed to fetch saved items" || body.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestToggleItemValidation(t *testing.T) {
	r := newSavedItemRouter(&stubSavedItemRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/saved/toggle", strings.NewReader(`{"item_id":"p1","item_type":"video"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid item_type, got %d", w.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error != "Validation failed" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestToggleItemReportsResultingState(t *testing.T) {
	repo := &stubSavedItemRepo{}
	r := newSavedItemRouter(repo)

	toggle := func() bool {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/saved/toggle", strings.NewReader(`{"item_id":"p1","item_type":"post"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Saved bool `json:"saved"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		return body.Saved
	}

	if !toggle() {
		t.Fatal("first toggle should report saved")
	}
	if toggle() {
		t.Fatal("second toggle should report removed")
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected empty remote set after toggle pair, got %d", len(repo.items))
	}
}
