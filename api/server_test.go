package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"solsite/article"
	"solsite/auth"
	"solsite/contact"
	"solsite/event"
	"solsite/feedback"
	"solsite/job"
	"solsite/metrics"
	"solsite/solution"
	"solsite/upload"
)

type testEnv struct {
	handler  http.Handler
	authRepo *fakeAuthRepo
	store    *fakeObjectStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	authRepo := newFakeAuthRepo()
	store := &fakeObjectStore{}
	registry := prometheus.NewRegistry()

	pipeline := upload.NewPipeline(store, upload.DefaultMaxBytes)

	server := NewServer(ServerConfig{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:   metrics.NewCollector(registry),
		Gatherer:  registry,
		Auth:      auth.NewService(authRepo, "test-secret", time.Hour),
		Articles:  article.NewService(newFakeArticleRepo()),
		Solutions: solution.NewService(newFakeSolutionRepo()),
		Feedback:  feedback.NewService(newFakeFeedbackRepo()),
		Contact:   contact.NewService(newFakeContactRepo()),
		Events:    event.NewService(newFakeEventRepo()),
		Jobs:      job.NewService(newFakeJobRepo(), pipeline),
	})

	return &testEnv{
		handler:  server.Router(),
		authRepo: authRepo,
		store:    store,
	}
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func (e *testEnv) register(t *testing.T, email string) {
	t.Helper()
	rec, body := e.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "Passw0rd",
		"name":     "Test User",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %v", email, rec.Code, body)
	}
}

func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()
	rec, body := e.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "Passw0rd",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %v", email, rec.Code, body)
	}
	data := body["data"].(map[string]any)
	return data["token"].(string)
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	e.register(t, "admin@example.com")
	e.authRepo.promote("admin@example.com")
	return e.login(t, "admin@example.com")
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Mixed.Case@Example.COM")

	token := env.login(t, "mixed.case@example.com")

	rec, body := env.doJSON(t, http.MethodGet, "/api/auth/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: status %d body %v", rec.Code, body)
	}
	data := body["data"].(map[string]any)
	if data["email"] != "mixed.case@example.com" {
		t.Fatalf("expected normalized email, got %v", data["email"])
	}
	if _, leaked := data["passwordHash"]; leaked {
		t.Fatal("password hash must never leave the server")
	}
}

func TestLoginFailureDoesNotRevealWhichPartWasWrong(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "known@example.com")

	recUnknown, bodyUnknown := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "unknown@example.com",
		"password": "Passw0rd",
	})
	recWrong, bodyWrong := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "known@example.com",
		"password": "WrongPass1",
	})

	if recUnknown.Code != http.StatusUnauthorized || recWrong.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", recUnknown.Code, recWrong.Code)
	}
	if bodyUnknown["message"] != bodyWrong["message"] {
		t.Fatalf("messages differ: %v vs %v", bodyUnknown["message"], bodyWrong["message"])
	}
}

func TestRegisterValidationReportsAllViolations(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "short",
		"name":     "x",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	errs, _ := body["errors"].([]any)
	if len(errs) != 3 {
		t.Fatalf("expected 3 violations, got %v", body["errors"])
	}
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "dup@example.com")

	rec, _ := env.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "dup@example.com",
		"password": "Passw0rd",
		"name":     "Test User",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAdminGuard(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "user@example.com")
	userToken := env.login(t, "user@example.com")

	payload := map[string]string{"title": "T", "content": "C"}

	rec, _ := env.doJSON(t, http.MethodPost, "/api/articles", "", payload)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}

	rec, _ = env.doJSON(t, http.MethodPost, "/api/articles", "garbage.token.here", payload)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", rec.Code)
	}

	rec, body := env.doJSON(t, http.MethodPost, "/api/articles", userToken, payload)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d body %v", rec.Code, body)
	}
	if body["message"] != "Admin access required" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

func TestAdminDemotionTakesEffectImmediately(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	payload := map[string]string{"title": "T", "content": "C"}
	if rec, _ := env.doJSON(t, http.MethodPost, "/api/articles", token, payload); rec.Code != http.StatusCreated {
		t.Fatalf("admin create: expected 201, got %d", rec.Code)
	}

	env.authRepo.demote("admin@example.com")

	if rec, _ := env.doJSON(t, http.MethodPost, "/api/articles", token, payload); rec.Code != http.StatusForbidden {
		t.Fatalf("demoted admin with live token: expected 403, got %d", rec.Code)
	}
}

func TestGuardRejectsTokenForDeletedAccount(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "gone@example.com")
	token := env.login(t, "gone@example.com")
	env.authRepo.remove("gone@example.com")

	rec, _ := env.doJSON(t, http.MethodPost, "/api/articles", token, map[string]string{"title": "T", "content": "C"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted account, got %d", rec.Code)
	}
}

func TestSolutionsListRequiresType(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.doJSON(t, http.MethodGet, "/api/solutions", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing type: expected 400, got %d", rec.Code)
	}

	rec, _ = env.doJSON(t, http.MethodGet, "/api/solutions?type=hardware", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad type: expected 400, got %d", rec.Code)
	}

	rec, _ = env.doJSON(t, http.MethodGet, "/api/solutions?type=software", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid type: expected 200, got %d", rec.Code)
	}
}

func TestFeedbackModerationFlow(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminToken(t)

	rec, body := env.doJSON(t, http.MethodPost, "/api/feedback", "", map[string]any{
		"name":    "Visitor",
		"rating":  5,
		"message": "Great work",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: status %d body %v", rec.Code, body)
	}
	id := body["data"].(map[string]any)["id"].(string)

	_, public := env.doJSON(t, http.MethodGet, "/api/feedback", "", nil)
	if items, _ := public["data"].([]any); len(items) != 0 {
		t.Fatalf("unapproved feedback visible publicly: %v", public["data"])
	}

	if rec, _ := env.doJSON(t, http.MethodGet, "/api/feedback/pending", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("pending without token: expected 401, got %d", rec.Code)
	}

	if rec, _ := env.doJSON(t, http.MethodPut, "/api/feedback/"+id+"/approve", admin, nil); rec.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d", rec.Code)
	}
	// approving twice is a no-op, not an error
	if rec, _ := env.doJSON(t, http.MethodPut, "/api/feedback/"+id+"/approve", admin, nil); rec.Code != http.StatusOK {
		t.Fatalf("second approve: expected 200, got %d", rec.Code)
	}

	_, public = env.doJSON(t, http.MethodGet, "/api/feedback", "", nil)
	if items, _ := public["data"].([]any); len(items) != 1 {
		t.Fatalf("approved feedback missing from public list: %v", public["data"])
	}
}

func TestArticleUpdateRejectsEmptyPatch(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminToken(t)

	rec, body := env.doJSON(t, http.MethodPost, "/api/articles", admin, map[string]string{"title": "T", "content": "C"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d", rec.Code)
	}
	id := body["data"].(map[string]any)["id"].(string)

	rec, _ = env.doJSON(t, http.MethodPut, "/api/articles/"+id, admin, map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty patch: expected 400, got %d", rec.Code)
	}
}

func TestContactSubmissionIsPublicButListIsNot(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminToken(t)

	rec, _ := env.doJSON(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name":       "Ann",
		"email":      "ann@example.com",
		"jobDetails": "Need a website",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d", rec.Code)
	}

	if rec, _ := env.doJSON(t, http.MethodGet, "/api/contact", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("list without token: expected 401, got %d", rec.Code)
	}

	rec, body := env.doJSON(t, http.MethodGet, "/api/contact", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin list: expected 200, got %d", rec.Code)
	}
	if items, _ := body["data"].([]any); len(items) != 1 {
		t.Fatalf("expected one message, got %v", body["data"])
	}
}

func TestEventRegistrationIsPublicButListIsNot(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminToken(t)

	rec, _ := env.doJSON(t, http.MethodPost, "/api/event-registrations", "", map[string]string{
		"eventTitle": "Launch Day",
		"fullName":   "Ann Example",
		"email":      "ann@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}

	if rec, _ := env.doJSON(t, http.MethodGet, "/api/event-registrations", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("list without token: expected 401, got %d", rec.Code)
	}

	rec, body := env.doJSON(t, http.MethodGet, "/api/event-registrations", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin list: expected 200, got %d", rec.Code)
	}
	if items, _ := body["data"].([]any); len(items) != 1 {
		t.Fatalf("expected one registration, got %v", body["data"])
	}
}

func doMultipart(t *testing.T, env *testEnv, filename, contentType string, content []byte) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", "Ann")
	_ = mw.WriteField("email", "ann@example.com")
	if filename != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func TestJobSubmissionWithAttachment(t *testing.T) {
	env := newTestEnv(t)

	rec, body := doMultipart(t, env, "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: status %d body %v", rec.Code, body)
	}
	data := body["data"].(map[string]any)
	url, _ := data["fileUrl"].(string)
	if !strings.Contains(url, "jobs/") || !strings.HasSuffix(url, ".pdf") {
		t.Fatalf("unexpected file url %q", url)
	}
	if env.store.putCalls != 1 {
		t.Fatalf("expected one stored object, got %d", env.store.putCalls)
	}
}

func TestJobSubmissionRejectsDisallowedFileBeforeStoring(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := doMultipart(t, env, "malware.exe", "application/octet-stream", []byte("MZ"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env.store.putCalls != 0 {
		t.Fatalf("store must not be touched for rejected files, got %d puts", env.store.putCalls)
	}
}

func TestJobSubmissionWithoutAttachment(t *testing.T) {
	env := newTestEnv(t)

	rec, body := doMultipart(t, env, "", "", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: status %d body %v", rec.Code, body)
	}
	if fileURL := body["data"].(map[string]any)["fileUrl"]; fileURL != nil {
		t.Fatalf("expected null fileUrl, got %v", fileURL)
	}
}

func TestJobsListIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminToken(t)

	if rec, _ := env.doJSON(t, http.MethodGet, "/api/jobs", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec, _ := env.doJSON(t, http.MethodGet, "/api/jobs", admin, nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUnknownRouteReturnsJSONEnvelope(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.doJSON(t, http.MethodGet, "/api/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["success"] != false {
		t.Fatalf("expected envelope with success=false, got %v", body)
	}
}

// --- fakes ---

type fakeAuthRepo struct {
	byID    map[string]auth.Account
	byEmail map[string]string
	nextID  int
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		byID:    map[string]auth.Account{},
		byEmail: map[string]string{},
		nextID:  1,
	}
}

func (f *fakeAuthRepo) CreateAccount(_ context.Context, params auth.CreateAccountParams) (auth.Account, error) {
	if _, exists := f.byEmail[params.Email]; exists {
		return auth.Account{}, auth.ErrDuplicateEmail
	}
	account := auth.Account{
		ID:           fmt.Sprintf("acc-%d", f.nextID),
		Email:        params.Email,
		Name:         params.Name,
		PasswordHash: params.PasswordHash,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	f.nextID++
	f.byID[account.ID] = account
	f.byEmail[account.Email] = account.ID
	return account, nil
}

func (f *fakeAuthRepo) GetByEmail(_ context.Context, email string) (auth.Account, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return auth.Account{}, auth.ErrAccountNotFound
	}
	return f.byID[id], nil
}

func (f *fakeAuthRepo) GetByID(_ context.Context, accountID string) (auth.Account, error) {
	account, ok := f.byID[accountID]
	if !ok {
		return auth.Account{}, auth.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeAuthRepo) IsAdmin(_ context.Context, accountID string) (bool, error) {
	account, ok := f.byID[accountID]
	if !ok {
		return false, auth.ErrAccountNotFound
	}
	return account.IsAdmin, nil
}

func (f *fakeAuthRepo) promote(email string) { f.setAdmin(email, true) }
func (f *fakeAuthRepo) demote(email string)  { f.setAdmin(email, false) }

func (f *fakeAuthRepo) setAdmin(email string, isAdmin bool) {
	if id, ok := f.byEmail[email]; ok {
		account := f.byID[id]
		account.IsAdmin = isAdmin
		f.byID[id] = account
	}
}

func (f *fakeAuthRepo) remove(email string) {
	if id, ok := f.byEmail[email]; ok {
		delete(f.byID, id)
		delete(f.byEmail, email)
	}
}

type fakeArticleRepo struct {
	records []article.Record
	nextID  int
}

func newFakeArticleRepo() *fakeArticleRepo { return &fakeArticleRepo{nextID: 1} }

func (f *fakeArticleRepo) Create(_ context.Context, params article.CreateParams) (article.Record, error) {
	rec := article.Record{
		ID:        fmt.Sprintf("art-%d", f.nextID),
		Title:     params.Title,
		Content:   params.Content,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	f.nextID++
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeArticleRepo) List(_ context.Context) ([]article.Record, error) {
	return f.records, nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id string) (article.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return article.Record{}, article.ErrNotFound
}

func (f *fakeArticleRepo) Update(_ context.Context, id string, params article.UpdateParams) error {
	for i, rec := range f.records {
		if rec.ID == id {
			if params.Title != nil {
				f.records[i].Title = *params.Title
			}
			if params.Content != nil {
				f.records[i].Content = *params.Content
			}
			return nil
		}
	}
	return article.ErrNotFound
}

func (f *fakeArticleRepo) Delete(_ context.Context, id string) error {
	for i, rec := range f.records {
		if rec.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return article.ErrNotFound
}

type fakeSolutionRepo struct {
	records []solution.Record
	nextID  int
}

func newFakeSolutionRepo() *fakeSolutionRepo { return &fakeSolutionRepo{nextID: 1} }

func (f *fakeSolutionRepo) Create(_ context.Context, params solution.CreateParams) (solution.Record, error) {
	rec := solution.Record{
		ID:       fmt.Sprintf("sol-%d", f.nextID),
		Name:     params.Name,
		Type:     params.Type,
		Features: params.Features,
	}
	f.nextID++
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeSolutionRepo) ListByType(_ context.Context, t solution.Type) ([]solution.Record, error) {
	out := []solution.Record{}
	for _, rec := range f.records {
		if rec.Type == t {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeSolutionRepo) GetByID(_ context.Context, id string) (solution.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return solution.Record{}, solution.ErrNotFound
}

func (f *fakeSolutionRepo) Update(_ context.Context, id string, params solution.UpdateParams) error {
	for i, rec := range f.records {
		if rec.ID == id {
			if params.Name != nil {
				f.records[i].Name = *params.Name
			}
			return nil
		}
	}
	return solution.ErrNotFound
}

func (f *fakeSolutionRepo) Delete(_ context.Context, id string) error {
	for i, rec := range f.records {
		if rec.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return solution.ErrNotFound
}

type fakeFeedbackRepo struct {
	records []feedback.Record
	nextID  int
}

func newFakeFeedbackRepo() *fakeFeedbackRepo { return &fakeFeedbackRepo{nextID: 1} }

func (f *fakeFeedbackRepo) Create(_ context.Context, params feedback.CreateParams) (feedback.Record, error) {
	rec := feedback.Record{
		ID:        fmt.Sprintf("fb-%d", f.nextID),
		Name:      params.Name,
		Rating:    params.Rating,
		Message:   params.Message,
		CreatedAt: time.Now().UTC(),
	}
	f.nextID++
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeFeedbackRepo) ListApproved(_ context.Context) ([]feedback.Record, error) {
	return f.listByApproved(true), nil
}

func (f *fakeFeedbackRepo) ListPending(_ context.Context) ([]feedback.Record, error) {
	return f.listByApproved(false), nil
}

func (f *fakeFeedbackRepo) listByApproved(approved bool) []feedback.Record {
	out := []feedback.Record{}
	for _, rec := range f.records {
		if rec.Approved == approved {
			out = append(out, rec)
		}
	}
	return out
}

func (f *fakeFeedbackRepo) Approve(_ context.Context, id string) error {
	for i, rec := range f.records {
		if rec.ID == id {
			f.records[i].Approved = true
			return nil
		}
	}
	return feedback.ErrNotFound
}

func (f *fakeFeedbackRepo) Delete(_ context.Context, id string) error {
	for i, rec := range f.records {
		if rec.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return feedback.ErrNotFound
}

type fakeContactRepo struct {
	records []contact.Record
	nextID  int
}

func newFakeContactRepo() *fakeContactRepo { return &fakeContactRepo{nextID: 1} }

func (f *fakeContactRepo) Create(_ context.Context, params contact.CreateParams, packedMessage string) (contact.Record, error) {
	rec := contact.Record{
		ID:        fmt.Sprintf("msg-%d", f.nextID),
		Name:      params.Name,
		Email:     params.Email,
		Message:   packedMessage,
		CreatedAt: time.Now().UTC(),
	}
	f.nextID++
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeContactRepo) List(_ context.Context) ([]contact.Record, error) {
	return f.records, nil
}

func (f *fakeContactRepo) GetByID(_ context.Context, id string) (contact.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return contact.Record{}, contact.ErrNotFound
}

func (f *fakeContactRepo) Delete(_ context.Context, id string) error {
	for i, rec := range f.records {
		if rec.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return contact.ErrNotFound
}

type fakeEventRepo struct {
	records []event.Registration
	nextID  int
}

func newFakeEventRepo() *fakeEventRepo { return &fakeEventRepo{nextID: 1} }

func (f *fakeEventRepo) Create(_ context.Context, params event.CreateParams) (event.Registration, error) {
	reg := event.Registration{
		ID:         fmt.Sprintf("reg-%d", f.nextID),
		EventTitle: params.EventTitle,
		FullName:   params.FullName,
		Email:      params.Email,
		CreatedAt:  time.Now().UTC(),
	}
	f.nextID++
	f.records = append(f.records, reg)
	return reg, nil
}

func (f *fakeEventRepo) List(_ context.Context) ([]event.Registration, error) {
	return f.records, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (event.Registration, error) {
	for _, reg := range f.records {
		if reg.ID == id {
			return reg, nil
		}
	}
	return event.Registration{}, event.ErrNotFound
}

func (f *fakeEventRepo) Delete(_ context.Context, id string) error {
	for i, reg := range f.records {
		if reg.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return event.ErrNotFound
}

type fakeJobRepo struct {
	records []job.Requirement
	nextID  int
}

func newFakeJobRepo() *fakeJobRepo { return &fakeJobRepo{nextID: 1} }

func (f *fakeJobRepo) Create(_ context.Context, params job.CreateParams, fileURL *string) (job.Requirement, error) {
	req := job.Requirement{
		ID:        fmt.Sprintf("job-%d", f.nextID),
		Name:      params.Name,
		Email:     params.Email,
		FileURL:   fileURL,
		CreatedAt: time.Now().UTC(),
	}
	f.nextID++
	f.records = append(f.records, req)
	return req, nil
}

func (f *fakeJobRepo) List(_ context.Context) ([]job.Requirement, error) {
	return f.records, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (job.Requirement, error) {
	for _, req := range f.records {
		if req.ID == id {
			return req, nil
		}
	}
	return job.Requirement{}, job.ErrNotFound
}

type fakeObjectStore struct {
	putCalls int
	keys     []string
}

func (f *fakeObjectStore) Put(_ context.Context, key, _ string, _ io.Reader, _ int64) error {
	f.putCalls++
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeObjectStore) PublicURL(key string) string {
	return "https://files.example.com/" + key
}
