package services_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hotelops/internal/models"
	"hotelops/internal/services"
	"hotelops/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		st   *store.Store
		auth *services.AuthService
	)

	BeforeEach(func() {
		st = store.New()
		Expect(store.Seed(st)).To(Succeed())
		auth = services.NewAuthService(st, "test-secret", time.Hour)
	})

	Describe("Login", func() {
		It("issues a token for the seeded admin credentials", func() {
			token, user, err := auth.Login(store.SeedAdminUsername, store.SeedAdminPassword)
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
			Expect(user).NotTo(BeNil())
			Expect(user.Role).To(Equal(models.RoleAdmin))
			Expect(user.Username).To(Equal(store.SeedAdminUsername))
		})

		It("rejects a wrong password without issuing a token", func() {
			token, user, err := auth.Login(store.SeedAdminUsername, "wrong-password")
			Expect(err).To(MatchError(services.ErrInvalidCredentials))
			Expect(token).To(BeEmpty())
			Expect(user).To(BeNil())
		})

		It("rejects an unknown username with the same error", func() {
			_, _, err := auth.Login("nobody", "whatever")
			Expect(err).To(MatchError(services.ErrInvalidCredentials))
		})
	})

	Describe("Verify", func() {
		It("round-trips a freshly issued token back to its account", func() {
			token, user, err := auth.Login(store.SeedAdminUsername, store.SeedAdminPassword)
			Expect(err).NotTo(HaveOccurred())

			got, err := auth.Verify(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(user.ID))
			Expect(got.Role).To(Equal(models.RoleAdmin))
		})

		It("rejects garbage tokens", func() {
			_, err := auth.Verify("not-a-token")
			Expect(err).To(MatchError(services.ErrInvalidCredentials))
		})

		It("rejects tokens signed with a different secret", func() {
			other := services.NewAuthService(st, "other-secret", time.Hour)
			token, _, err := other.Login(store.SeedAdminUsername, store.SeedAdminPassword)
			Expect(err).NotTo(HaveOccurred())

			_, err = auth.Verify(token)
			Expect(err).To(MatchError(services.ErrInvalidCredentials))
		})

		It("rejects expired tokens", func() {
			short := services.NewAuthService(st, "test-secret", -time.Minute)
			token, _, err := short.Login(store.SeedAdminUsername, store.SeedAdminPassword)
			Expect(err).NotTo(HaveOccurred())

			_, err = auth.Verify(token)
			Expect(err).To(MatchError(services.ErrInvalidCredentials))
		})
	})
})
