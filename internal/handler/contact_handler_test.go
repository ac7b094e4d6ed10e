package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/webnova/backend/internal/model"
	"github.com/webnova/backend/internal/repository"
	"github.com/webnova/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, in service.ContactInput) (*model.Contact, error)
	listFunc   func(ctx context.Context) ([]*model.Contact, error)
	getFunc    func(ctx context.Context, id int64) (*model.Contact, error)
	updateFunc func(ctx context.Context, id int64, patch model.ContactPatch) (*model.Contact, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockContactService) Submit(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &model.Contact{ID: 1}, nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactService) Get(ctx context.Context, id int64) (*model.Contact, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) Update(ctx context.Context, id int64, patch model.ContactPatch) (*model.Contact, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// testEnvelope mirrors envelope with a raw data field for decoding.
type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured service.ContactInput
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
			captured = in
			return &model.Contact{ID: 1712345678901}, nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","phone":"555","service":"seo","message":"Hello!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body: %s", rec.Code, rec.Body.String())
	}
	if captured.Name != "Alice" || captured.Email != "alice@example.com" || captured.Phone != "555" ||
		captured.Service != "seo" || captured.Message != "Hello!" {
		t.Errorf("unexpected input forwarded: %+v", captured)
	}

	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Error("expected success=true")
	}
	if env.Message != msgContactReceived {
		t.Errorf("unexpected message %q", env.Message)
	}
	var data struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.ID != 1712345678901 {
		t.Errorf("expected id in data, got %d", data.ID)
	}
}

func TestContactHandler_Submit_FormEncoded(t *testing.T) {
	var captured service.ContactInput
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
			captured = in
			return &model.Contact{ID: 2}, nil
		},
	}
	h := NewContactHandler(mock)

	form := url.Values{
		"name":    {"Bob"},
		"email":   {"bob@example.com"},
		"service": {"branding"},
		"message": {"Hi there"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body: %s", rec.Code, rec.Body.String())
	}
	if captured.Name != "Bob" || captured.Service != "branding" {
		t.Errorf("form fields not forwarded: %+v", captured)
	}
}

// TestContactHandler_Submit_ValidationError verifies a ValidationError maps to 400 with its message.
func TestContactHandler_Submit_ValidationError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
			return nil, &service.ValidationError{Message: service.MsgContactFieldsRequired}
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Bob"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Error("expected success=false")
	}
	if env.Message != service.MsgContactFieldsRequired {
		t.Errorf("unexpected message %q", env.Message)
	}
}

// TestContactHandler_Submit_InvalidJSON verifies that malformed JSON returns 400.
func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	called := false
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
			called = true
			return &model.Contact{}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called for a malformed body")
	}
}

// TestContactHandler_Submit_BodyTooLarge verifies bodies over the cap are rejected.
func TestContactHandler_Submit_BodyTooLarge(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	body := `{"message":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversize body, got %d", rec.Code)
	}
}

// TestContactHandler_Submit_EmptyBody verifies an empty body reaches validation.
func TestContactHandler_Submit_EmptyBody(t *testing.T) {
	var called bool
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
			called = true
			return nil, &service.ValidationError{Message: service.MsgContactFieldsRequired}
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if !called {
		t.Error("expected service to validate an empty submission")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// TestContactHandler_Submit_ServiceError verifies that a storage failure returns a generic 500.
func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
			return nil, errors.New("disk full: /var/data/contacts.json")
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "disk full") {
		t.Error("internal error detail leaked to the client")
	}
	env := decodeEnvelope(t, rec)
	if env.Message != msgSomethingWrong {
		t.Errorf("unexpected message %q", env.Message)
	}
}

// TestContactHandler_Submit_ContentTypeJSON verifies the response Content-Type header.
func TestContactHandler_Submit_ContentTypeJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %q", ct)
	}
}

// ---------------------------------------------------------------------------
// GET /api/contacts tests
// ---------------------------------------------------------------------------

func TestContactHandler_List_Success(t *testing.T) {
	now := time.Now().UTC()
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.Contact, error) {
			return []*model.Contact{
				{ID: 1, Name: "A", Email: "a@b.com", Status: "new", CreatedAt: now},
				{ID: 2, Name: "C", Email: "c@d.com", Status: "contacted", CreatedAt: now},
			}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Count == nil || *env.Count != 2 {
		t.Errorf("expected count=2, got %v", env.Count)
	}
	var contacts []*model.Contact
	if err := json.Unmarshal(env.Data, &contacts); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(contacts) != 2 {
		t.Errorf("expected 2 contacts, got %d", len(contacts))
	}
}

// TestContactHandler_List_Empty verifies an empty store returns [] and count=0, not null.
func TestContactHandler_List_Empty(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	env := decodeEnvelope(t, rec)
	if env.Count == nil || *env.Count != 0 {
		t.Errorf("expected count=0, got %v", env.Count)
	}
	if string(env.Data) != "[]" {
		t.Errorf("expected data=[], got %s", env.Data)
	}
}

func TestContactHandler_List_ServiceError(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.Contact, error) {
			return nil, repository.ErrCorrupt
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET/PATCH/DELETE /api/contact/{id} tests
// ---------------------------------------------------------------------------

func TestContactHandler_Get_Success(t *testing.T) {
	var gotID int64
	mock := &mockContactService{
		getFunc: func(ctx context.Context, id int64) (*model.Contact, error) {
			gotID = id
			return &model.Contact{ID: id, Name: "Alice"}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/42", nil)
	req.SetPathValue("id", "42")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 42 {
		t.Errorf("expected id=42 forwarded, got %d", gotID)
	}
	env := decodeEnvelope(t, rec)
	var c model.Contact
	if err := json.Unmarshal(env.Data, &c); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if c.Name != "Alice" {
		t.Errorf("expected name=Alice, got %q", c.Name)
	}
}

func TestContactHandler_Get_NotFound(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/contact/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != msgContactNotFound {
		t.Errorf("unexpected message %q", env.Message)
	}
}

// TestContactHandler_Get_NonNumericID verifies a malformed id is reported as not found.
func TestContactHandler_Get_NonNumericID(t *testing.T) {
	called := false
	mock := &mockContactService{
		getFunc: func(ctx context.Context, id int64) (*model.Contact, error) {
			called = true
			return nil, repository.ErrNotFound
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called with an unparsable id")
	}
}

func TestContactHandler_Get_ServiceError(t *testing.T) {
	mock := &mockContactService{
		getFunc: func(ctx context.Context, id int64) (*model.Contact, error) {
			return nil, errors.New("read failed")
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestContactHandler_Update_Success(t *testing.T) {
	var gotPatch model.ContactPatch
	mock := &mockContactService{
		updateFunc: func(ctx context.Context, id int64, patch model.ContactPatch) (*model.Contact, error) {
			gotPatch = patch
			at := time.Now().UTC()
			return &model.Contact{ID: id, Status: patch.Status, Notes: patch.Notes, UpdatedAt: &at}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/9", strings.NewReader(`{"status":"contacted","notes":"left voicemail"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", "9")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body: %s", rec.Code, rec.Body.String())
	}
	if gotPatch.Status != "contacted" || gotPatch.Notes != "left voicemail" {
		t.Errorf("unexpected patch forwarded: %+v", gotPatch)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != msgContactUpdated {
		t.Errorf("unexpected message %q", env.Message)
	}
	var c model.Contact
	if err := json.Unmarshal(env.Data, &c); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if c.UpdatedAt == nil {
		t.Error("expected updatedAt in response")
	}
}

func TestContactHandler_Update_NotFound(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/9", strings.NewReader(`{"status":"x"}`))
	req.SetPathValue("id", "9")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// TestContactHandler_Submit_TrailingData verifies that a body with anything
// after the JSON object is rejected.
func TestContactHandler_Submit_TrailingData(t *testing.T) {
	called := false
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
			called = true
			return &model.Contact{ID: 1}, nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Ann","email":"a@b.com","service":"web","message":"hi"}garbage`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for trailing data, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called for a malformed body")
	}
}

// TestContactHandler_Submit_TrailingWhitespace verifies that whitespace after
// the JSON object is accepted.
func TestContactHandler_Submit_TrailingWhitespace(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
			return &model.Contact{ID: 1}, nil
		},
	})

	body := "{\"name\":\"Ann\",\"email\":\"a@b.com\",\"service\":\"web\",\"message\":\"hi\"}\n  \n"
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestContactHandler_Update_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/9", strings.NewReader(`{"status":`))
	req.SetPathValue("id", "9")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestContactHandler_Delete_Success(t *testing.T) {
	var gotID int64
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/contact/5", nil)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 5 {
		t.Errorf("expected id=5, got %d", gotID)
	}
	if env := decodeEnvelope(t, rec); env.Message != msgContactDeleted {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestContactHandler_Delete_NotFound(t *testing.T) {
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id int64) error {
			return repository.ErrNotFound
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/contact/5", nil)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestContactHandler_Delete_ServiceError(t *testing.T) {
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id int64) error {
			return errors.New("rename failed")
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/contact/5", nil)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Error deleting contact" {
		t.Errorf("unexpected message %q", env.Message)
	}
}
