package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hotelops/internal/services"
)

var _ = Describe("HTTPInterpreter", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("fails fast when no API key is configured", func() {
		interp := services.NewHTTPInterpreter("", "", "")
		_, err := interp.Interpret(ctx, "system", "text")
		Expect(err).To(MatchError(services.ErrInterpreterNotConfigured))
	})

	It("returns the first choice content from the completions endpoint", func() {
		var gotAuth string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			Expect(r.URL.Path).To(Equal("/chat/completions"))
			Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"all systems nominal"}}]}`))
		}))
		defer srv.Close()

		interp := services.NewHTTPInterpreter("test-key", srv.URL, "test-model")
		out, err := interp.Interpret(ctx, "system prompt", "user text")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("all systems nominal"))
		Expect(gotAuth).To(Equal("Bearer test-key"))
		Expect(gotBody["model"]).To(Equal("test-model"))
	})

	It("errors on non-200 responses", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		interp := services.NewHTTPInterpreter("test-key", srv.URL, "")
		_, err := interp.Interpret(ctx, "system", "text")
		Expect(err).To(MatchError(ContainSubstring("status 429")))
	})

	It("errors when the response carries no choices", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		interp := services.NewHTTPInterpreter("test-key", srv.URL, "")
		_, err := interp.Interpret(ctx, "system", "text")
		Expect(err).To(MatchError(ContainSubstring("no choices")))
	})

	It("honors context cancellation", func() {
		block := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			<-block
		}))
		defer srv.Close()
		defer close(block)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		interp := services.NewHTTPInterpreter("test-key", srv.URL, "")
		_, err := interp.Interpret(cancelled, "system", "text")
		Expect(err).To(HaveOccurred())
	})
})
