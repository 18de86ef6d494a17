package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	controller "github.com/braindump-app/braindump/pkg/controller/http"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/braindump-app/braindump/pkg/repository/memory"
	"github.com/braindump-app/braindump/pkg/service/media"
	"github.com/braindump-app/braindump/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type scriptedGenerator struct {
	reply string
	err   error
}

func (g *scriptedGenerator) Generate(ctx context.Context, req *model.GenerateRequest) (string, error) {
	return g.reply, g.err
}

func (g *scriptedGenerator) GenerateDirect(ctx context.Context, req *model.GenerateRequest) (string, error) {
	return g.reply, g.err
}

func newTestServer(gen usecase.Generator) (*controller.Server, *memory.Memory) {
	repo := memory.New()
	uc := usecase.New(repo, gen, media.NewMemory())
	return controller.New(uc), repo
}

func TestPostText(t *testing.T) {
	gen := &scriptedGenerator{
		reply: `{"summary": "milk", "actions": [{"type": "SHOPPING_ITEM", "content": "buy milk", "confidence": 0.9}]}`,
	}
	srv, repo := newTestServer(gen)

	body := strings.NewReader(`{"text": "buy milk"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/text", body)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var result model.BrainDumpResult
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	gt.Array(t, result.Actions).Length(1)

	stored := gt.R1(repo.Action().List(context.Background())).NoError(t)
	gt.Array(t, stored).Length(1)
}

func TestPostTextEmptyBody(t *testing.T) {
	srv, _ := newTestServer(&scriptedGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/text", strings.NewReader(`{"text": ""}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

	gt.Value(t, rec.Header().Get("Content-Type")).Equal("application/json")
	var body struct {
		Error string `json:"error"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gt.String(t, body.Error).NotEqual("")
}

func TestPostTextModelUnavailable(t *testing.T) {
	gen := &scriptedGenerator{err: types.ErrModelUnavailable}
	srv, _ := newTestServer(gen)

	req := httptest.NewRequest(http.MethodPost, "/api/text", strings.NewReader(`{"text": "hi"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusServiceUnavailable)
}

func TestPostTextMalformedReply(t *testing.T) {
	gen := &scriptedGenerator{reply: "not json at all"}
	srv, _ := newTestServer(gen)

	req := httptest.NewRequest(http.MethodPost, "/api/text", strings.NewReader(`{"text": "hi"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusBadGateway)
}

func TestPostImageMultipart(t *testing.T) {
	gen := &scriptedGenerator{
		reply: `{"summary": "a list", "actions": [{"type": "SHOPPING_ITEM", "content": "eggs", "confidence": 0.8}]}`,
	}
	srv, _ := newTestServer(gen)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw := gt.R1(mw.CreateFormFile("image", "list.jpg")).NoError(t)
	gt.R1(fw.Write([]byte{0xFF, 0xD8, 0xFF})).NoError(t)
	gt.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestPostImageMissingFile(t *testing.T) {
	srv, _ := newTestServer(&scriptedGenerator{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	gt.NoError(t, mw.WriteField("note", "no file"))
	gt.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestAskAlwaysReturnsText(t *testing.T) {
	gen := &scriptedGenerator{err: types.ErrModelUnavailable}
	srv, repo := newTestServer(gen)

	gt.R1(repo.Action().Create(context.Background(), &model.Action{
		Type:       types.ActionTypeTodo,
		Content:    "call mom",
		Confidence: 0.9,
	})).NoError(t)

	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"question": "what now?"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Answer string `json:"answer"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.Answer).Equal(model.DefaultProfile().ApologyMessage)
}

func TestActionLifecycle(t *testing.T) {
	srv, repo := newTestServer(&scriptedGenerator{})
	ctx := context.Background()

	created := gt.R1(repo.Action().Create(ctx, &model.Action{
		Type:       types.ActionTypeTodo,
		Content:    "call mom",
		Confidence: 0.9,
	})).NoError(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/actions/", nil))
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/actions/%d", created.ID), nil))
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var got struct {
		ID      int64  `json:"id"`
		Content string `json:"content"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	gt.Value(t, got.ID).Equal(created.ID)
	gt.Value(t, got.Content).Equal("call mom")

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/actions/%d", created.ID), nil))
	gt.Value(t, rec.Code).Equal(http.StatusNoContent)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/actions/%d", created.ID), nil))
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
}

func TestActionBadID(t *testing.T) {
	srv, _ := newTestServer(&scriptedGenerator{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/actions/abc", nil))
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestSearchWithoutEmbedding(t *testing.T) {
	srv, _ := newTestServer(&scriptedGenerator{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/actions/search?q=milk", nil))
	gt.Value(t, rec.Code).Equal(http.StatusNotImplemented)
}

func TestUserProfileRoundTrip(t *testing.T) {
	srv, _ := newTestServer(&scriptedGenerator{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/", nil))
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var user model.User
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	gt.Value(t, user.MorningBriefingTime).Equal("09:00")

	patch := strings.NewReader(`{"morning_briefing_time": "07:45", "notion_connected": true}`)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/user/", patch))
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	gt.Value(t, user.MorningBriefingTime).Equal("07:45")
	gt.Value(t, user.NotionConnected).Equal(true)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(&scriptedGenerator{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	gt.Value(t, rec.Code).Equal(http.StatusOK)
}
