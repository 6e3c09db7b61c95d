package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/genlang"
	"github.com/flipcymru/flipcymru-backend/internal/http/middleware"
	"github.com/flipcymru/flipcymru-backend/internal/identity"
	"github.com/flipcymru/flipcymru-backend/internal/services"
)

//
// Fakes for the service interfaces consumed by the handlers.
//

type fakeAccountSvc struct {
	registerUser identity.User
	registerErr  error
	loginRes     services.LoginResult
	loginErr     error
	profile      domain.UserProfile
	profileErr   error
}

func (f *fakeAccountSvc) Register(_ context.Context, email, _, username string) (identity.User, error) {
	if f.registerErr != nil {
		return identity.User{}, f.registerErr
	}
	u := f.registerUser
	if u.UID == "" {
		u = identity.User{UID: "u1", Email: email, DisplayName: username}
	}
	return u, nil
}

func (f *fakeAccountSvc) Login(context.Context, string) (services.LoginResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeAccountSvc) Profile(context.Context, string) (domain.UserProfile, error) {
	return f.profile, f.profileErr
}

type fakeHistorySvc struct {
	appendErr error
	appended  []domain.HistoryRecord
	records   []domain.HistoryRecord
	listErr   error
	lastDesc  bool
}

func (f *fakeHistorySvc) Append(_ context.Context, _ string, rec domain.HistoryRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, rec)
	return nil
}

func (f *fakeHistorySvc) List(_ context.Context, _ string, desc bool) ([]domain.HistoryRecord, error) {
	f.lastDesc = desc
	return f.records, f.listErr
}

type fakeFlashcardSvc struct {
	card      domain.Flashcard
	createErr error
	cards     []domain.Flashcard
	listErr   error
	getErr    error
	learntErr error

	lastFilter services.ListFilter
	lastLearnt bool
}

func (f *fakeFlashcardSvc) Create(_ context.Context, _ string, in services.CreateInput) (domain.Flashcard, error) {
	if f.createErr != nil {
		return domain.Flashcard{}, f.createErr
	}
	c := f.card
	if c.English == "" {
		c = domain.Flashcard{ID: "card1", English: in.EnglishText, Welsh: "bwyd", Category: in.CategoryName}
	}
	return c, nil
}

func (f *fakeFlashcardSvc) List(_ context.Context, _ string, filter services.ListFilter) ([]domain.Flashcard, error) {
	f.lastFilter = filter
	return f.cards, f.listErr
}

func (f *fakeFlashcardSvc) ListByCategory(_ context.Context, _ string, category string) ([]domain.Flashcard, error) {
	f.lastFilter = services.ListFilter{Category: category}
	return f.cards, f.listErr
}

func (f *fakeFlashcardSvc) Get(context.Context, string, string) (domain.Flashcard, error) {
	return f.card, f.getErr
}

func (f *fakeFlashcardSvc) SetLearnt(_ context.Context, _, _ string, learnt bool) error {
	f.lastLearnt = learnt
	return f.learntErr
}

type fakeCategorySvc struct {
	cats    []domain.FlashcardCategory
	listErr error
}

func (f *fakeCategorySvc) List(context.Context, string) ([]domain.FlashcardCategory, error) {
	return f.cats, f.listErr
}

type fakeTranslator struct {
	result        genlang.TranslationResult
	translateErr  error
	transcription string
	transcribeErr error

	lastReq   genlang.TranslationRequest
	lastMime  string
	lastAudio []byte
}

func (f *fakeTranslator) Translate(_ context.Context, req genlang.TranslationRequest) (genlang.TranslationResult, error) {
	f.lastReq = req
	return f.result, f.translateErr
}

func (f *fakeTranslator) Transcribe(_ context.Context, audio []byte, mime string) (string, error) {
	f.lastAudio = audio
	f.lastMime = mime
	return f.transcription, f.transcribeErr
}

type fakeSynthesizer struct {
	audio []byte
	err   error
}

func (f *fakeSynthesizer) Synthesize(context.Context, string) ([]byte, error) {
	return f.audio, f.err
}

// testDeps bundles the fakes wired into a test router.
type testDeps struct {
	account    *fakeAccountSvc
	history    *fakeHistorySvc
	cards      *fakeFlashcardSvc
	categories *fakeCategorySvc
	translator *fakeTranslator
	synth      *fakeSynthesizer
}

// newTestRouter builds a Gin engine with the handlers mounted the way the
// real router mounts them, with the auth middleware replaced by a stub that
// injects a fixed user.
func newTestRouter(t *testing.T) (*gin.Engine, *testDeps) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := &testDeps{
		account:    &fakeAccountSvc{},
		history:    &fakeHistorySvc{},
		cards:      &fakeFlashcardSvc{},
		categories: &fakeCategorySvc{},
		translator: &fakeTranslator{},
		synth:      &fakeSynthesizer{},
	}
	h := New(deps.account, deps.history, deps.cards, deps.categories, deps.translator, deps.synth)

	r := gin.New()
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	api.POST("/register-user", h.RegisterUser)
	api.POST("/login-user", h.LoginUser)
	api.POST("/translate-text", h.TranslateText)
	api.POST("/stt-welsh-english", h.STTWelshEnglish)
	api.POST("/tts-welsh", h.TTSWelsh)

	authed := api.Group("")
	authed.Use(func(c *gin.Context) { c.Set("userID", "u1") })
	authed.POST("/save-translation-history", h.SaveTranslationHistory)
	authed.GET("/get-translation-history", h.GetTranslationHistory)
	authed.POST("/create-flashcard", h.CreateFlashcard)
	authed.GET("/get-flashcards", h.GetFlashcards)
	authed.GET("/get-flashcard-categories", h.GetFlashcardCategories)
	authed.GET("/get-flashcards-by-category/:categoryName", h.GetFlashcardsByCategory)
	authed.GET("/get-flashcard/:cardId", h.GetFlashcard)
	authed.PUT("/update-flashcard-learnt-status/:cardId", h.UpdateFlashcardLearntStatus)
	authed.GET("/get-user-profile", h.GetUserProfile)

	return r, deps
}

// doJSON performs a request with an optional JSON body and returns the
// recorder.
func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
