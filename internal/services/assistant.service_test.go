package services_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hotelops/internal/services"
	"hotelops/internal/store"
)

var _ = Describe("AssistantService", func() {
	var (
		st     *store.Store
		interp *stubInterpreter
		svc    *services.AssistantService
		ctx    context.Context
	)

	BeforeEach(func() {
		st = store.New()
		Expect(store.Seed(st)).To(Succeed())
		interp = &stubInterpreter{}
		svc = services.NewAssistantService(st, interp, discardLogger(), time.Second)
		ctx = context.Background()
	})

	Describe("Answer", func() {
		It("answers wifi questions from store data without the interpreter", func() {
			msg := svc.Answer(ctx, "u1", "h1", "How is the guest wifi doing?")
			Expect(msg).NotTo(BeNil())
			Expect(msg.Response).NotTo(BeNil())
			Expect(*msg.Response).To(ContainSubstring("Guest WiFi"))
			Expect(interp.calls).To(BeZero())
		})

		It("answers alert questions with the open-alert count", func() {
			msg := svc.Answer(ctx, "u1", "h1", "any alerts I should know about?")
			Expect(*msg.Response).To(ContainSubstring("3 open alerts"))
			Expect(interp.calls).To(BeZero())
		})

		It("answers power questions with the current draw", func() {
			msg := svc.Answer(ctx, "u1", "h1", "what's our power usage?")
			Expect(*msg.Response).To(ContainSubstring("kW"))
			Expect(interp.calls).To(BeZero())
		})

		It("delegates free text to the interpreter", func() {
			interp.response = "The spa booking system is out of scope for this dashboard."
			msg := svc.Answer(ctx, "u1", "h1", "can guests book the spa here?")
			Expect(*msg.Response).To(Equal(interp.response))
			Expect(interp.calls).To(Equal(1))
		})

		It("falls back to an apology when the interpreter fails", func() {
			interp.err = errors.New("upstream unavailable")
			msg := svc.Answer(ctx, "u1", "h1", "summarize tonight's occupancy")
			Expect(msg.Response).NotTo(BeNil())
			Expect(*msg.Response).To(ContainSubstring("Sorry"))
		})

		It("records the exchange in chat history either way", func() {
			interp.err = errors.New("down")
			svc.Answer(ctx, "u1", "h1", "free text question")

			history := st.ChatHistory("u1", 10)
			Expect(history).To(HaveLen(1))
			Expect(history[0].Message).To(Equal("free text question"))
			Expect(history[0].Response).NotTo(BeNil())
		})
	})

	Describe("ParseVoice", func() {
		It("maps keyword transcripts without the interpreter", func() {
			intent := svc.ParseVoice(ctx, "show me the wifi status")
			Expect(intent.Action).To(Equal(services.ActionShowWiFi))
			Expect(interp.calls).To(BeZero())

			intent = svc.ParseVoice(ctx, "are there any open incidents")
			Expect(intent.Action).To(Equal(services.ActionShowAlerts))

			intent = svc.ParseVoice(ctx, "pull up energy consumption")
			Expect(intent.Action).To(Equal(services.ActionShowPower))
		})

		It("accepts a valid action from the interpreter", func() {
			interp.response = `{"action": "show_iptv", "parameters": {"channel": "group-b"}}`
			intent := svc.ParseVoice(ctx, "check the channel lineup")
			Expect(intent.Action).To(Equal(services.ActionShowIPTV))
			Expect(intent.Parameters).To(HaveKeyWithValue("channel", "group-b"))
		})

		It("maps interpreter failures to unknown", func() {
			interp.err = errors.New("timeout")
			intent := svc.ParseVoice(ctx, "do something unusual")
			Expect(intent.Action).To(Equal(services.ActionUnknown))
			Expect(intent.Parameters).NotTo(BeNil())
		})

		It("maps unparseable interpreter output to unknown", func() {
			interp.response = "sorry, I cannot help with that"
			intent := svc.ParseVoice(ctx, "do something unusual")
			Expect(intent.Action).To(Equal(services.ActionUnknown))
		})

		It("rejects actions outside the fixed vocabulary", func() {
			interp.response = `{"action": "reboot_everything", "parameters": {}}`
			intent := svc.ParseVoice(ctx, "do something drastic")
			Expect(intent.Action).To(Equal(services.ActionUnknown))
		})
	})
})
