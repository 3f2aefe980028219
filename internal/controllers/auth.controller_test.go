package controllers_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hotelops/internal/store"
)

var _ = Describe("AuthController", func() {
	var env *testEnv

	BeforeEach(func() {
		env = newTestEnv()
	})

	Describe("POST /api/auth/login", func() {
		It("returns a token and the admin account for seeded credentials", func() {
			w := env.do(http.MethodPost, "/api/auth/login", gin.H{
				"username": store.SeedAdminUsername,
				"password": store.SeedAdminPassword,
			})
			Expect(w.Code).To(Equal(http.StatusOK))

			var body struct {
				Token string `json:"token"`
				User  struct {
					Username string `json:"username"`
					Role     string `json:"role"`
				} `json:"user"`
			}
			decode(w, &body)
			Expect(body.Token).NotTo(BeEmpty())
			Expect(body.User.Username).To(Equal(store.SeedAdminUsername))
			Expect(body.User.Role).To(Equal("admin"))
		})

		It("never leaks the password hash in the response", func() {
			w := env.do(http.MethodPost, "/api/auth/login", gin.H{
				"username": store.SeedAdminUsername,
				"password": store.SeedAdminPassword,
			})
			Expect(w.Body.String()).NotTo(ContainSubstring("passwordHash"))
			Expect(w.Body.String()).NotTo(ContainSubstring("$2a$"))
		})

		It("returns 401 without a token for a wrong password", func() {
			w := env.do(http.MethodPost, "/api/auth/login", gin.H{
				"username": store.SeedAdminUsername,
				"password": "wrong-password",
			})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).NotTo(ContainSubstring("token"))
		})

		It("returns 400 when credentials are missing", func() {
			w := env.do(http.MethodPost, "/api/auth/login", gin.H{"username": "admin"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /api/auth/verify", func() {
		It("resolves a fresh token back to its account", func() {
			login := env.do(http.MethodPost, "/api/auth/login", gin.H{
				"username": store.SeedAdminUsername,
				"password": store.SeedAdminPassword,
			})
			var issued struct {
				Token string `json:"token"`
			}
			decode(login, &issued)

			w := env.do(http.MethodPost, "/api/auth/verify", gin.H{"token": issued.Token})
			Expect(w.Code).To(Equal(http.StatusOK))

			var body struct {
				User struct {
					Username string `json:"username"`
				} `json:"user"`
			}
			decode(w, &body)
			Expect(body.User.Username).To(Equal(store.SeedAdminUsername))
		})

		It("returns 401 for an invalid token", func() {
			w := env.do(http.MethodPost, "/api/auth/verify", gin.H{"token": "garbage"})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
