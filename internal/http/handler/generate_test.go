package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"promptrelay.app/relay/common/llm"
	"promptrelay.app/relay/internal/content"
	"promptrelay.app/relay/internal/http/handler"
	"promptrelay.app/relay/internal/service"
)

var _ = Describe("GenerateHandler", func() {
	var (
		router *gin.Engine
		svc    *mockGenerationService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockGenerationService{}
		h := handler.NewGenerateHandler(svc)
		router.POST("/api/generate", h.Generate)
	})

	post := func(body string) (*httptest.ResponseRecorder, map[string]any) {
		req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return w, resp
	}

	It("returns 200 with the generated text and type", func() {
		var got service.GenerateParams
		svc.generateFn = func(_ context.Context, params service.GenerateParams) (*service.GenerateResult, error) {
			got = params
			return &service.GenerateResult{Type: content.TypeProject, GeneratedText: "Generated."}, nil
		}

		w, resp := post(`{"type":"project","formData":{"project-title":"X","project-description":"Y"}}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp).To(Equal(map[string]any{"generated_text": "Generated.", "type": "project"}))
		Expect(got.Type).To(Equal("project"))
		Expect(got.FormData).To(Equal(map[string]string{"project-title": "X", "project-description": "Y"}))
	})

	It("returns 400 on a malformed body", func() {
		w, resp := post(`{`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(resp["error"]).To(Equal("Invalid request body."))
	})

	It("returns 400 when form values are not strings", func() {
		w, _ := post(`{"type":"bio","formData":{"bio-name":7}}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	DescribeTable("rejects a non-string type without calling the service",
		func(body string) {
			called := false
			svc.generateFn = func(_ context.Context, _ service.GenerateParams) (*service.GenerateResult, error) {
				called = true
				return nil, nil
			}

			w, resp := post(body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(resp["error"]).To(Equal("Invalid content type."))
			Expect(called).To(BeFalse())
		},
		Entry("number", `{"type":5}`),
		Entry("array", `{"type":["bio"]}`),
		Entry("object", `{"type":{"name":"bio"}}`),
		Entry("boolean", `{"type":true}`),
	)

	It("passes a null type to the service as missing", func() {
		var got service.GenerateParams
		svc.generateFn = func(_ context.Context, params service.GenerateParams) (*service.GenerateResult, error) {
			got = params
			return nil, content.ErrMissingType
		}

		w, resp := post(`{"type":null,"formData":{}}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(resp["error"]).To(Equal("Missing content type."))
		Expect(got.Type).To(BeEmpty())
	})

	DescribeTable("maps service errors to responses",
		func(svcErr error, status int, message string) {
			svc.generateFn = func(_ context.Context, _ service.GenerateParams) (*service.GenerateResult, error) {
				return nil, svcErr
			}

			w, resp := post(`{"type":"bio","formData":{}}`)

			Expect(w.Code).To(Equal(status))
			Expect(resp).To(Equal(map[string]any{"error": message}))
		},
		Entry("missing type", content.ErrMissingType, http.StatusBadRequest, "Missing content type."),
		Entry("invalid type", content.ErrInvalidType, http.StatusBadRequest, "Invalid content type."),
		Entry("authentication failure", errors.Join(errors.New("401 Unauthorized"), llm.ErrAuthentication), http.StatusUnauthorized, "Invalid API key."),
		Entry("generic failure", errors.New("timeout"), http.StatusInternalServerError, "timeout"),
	)
})

var _ = Describe("Health", func() {
	It("always returns the healthy payload", func() {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/api/health", handler.Health)

		for range 3 {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"status":"healthy","message":"Backend connected successfully"}`))
		}
	})
})
