package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hotelops/internal/metrics"
	"hotelops/internal/models"
	"hotelops/internal/store"
)

// Interpreter is the external language-model call for free-text chat
// and voice-intent parsing. Implementations must honor ctx
// cancellation.
type Interpreter interface {
	Interpret(ctx context.Context, systemPrompt, text string) (string, error)
}

// Fixed action vocabulary for voice intents.
const (
	ActionShowWiFi   = "show_wifi"
	ActionShowIPTV   = "show_iptv"
	ActionShowAlerts = "show_alerts"
	ActionShowPower  = "show_power"
	ActionUnknown    = "unknown"
)

const (
	chatFallback = "Sorry, I could not process that request right now. Please try again."

	chatSystemPrompt = "You are the operations assistant for a hotel IT dashboard. " +
		"Answer briefly and concretely about WiFi, IPTV, CCTV, telephony, signage, alerts and power usage."

	voiceSystemPrompt = `Map the transcript to exactly one JSON object ` +
		`{"action": "...", "parameters": {}} where action is one of ` +
		`show_wifi, show_iptv, show_alerts, show_power, unknown. Respond with JSON only.`
)

// VoiceIntent is the parsed result of a voice transcript.
type VoiceIntent struct {
	Action     string            `json:"action"`
	Parameters map[string]string `json:"parameters"`
}

// AssistantService answers canned questions from store data via keyword
// matching and delegates only genuine free text to the external
// interpreter. Interpreter failures degrade to documented fallbacks
// (generic apology for chat, unknown action for voice) instead of
// failing the request.
type AssistantService struct {
	store   *store.Store
	interp  Interpreter
	log     *slog.Logger
	timeout time.Duration
}

// NewAssistantService creates the assistant. A zero timeout defaults to
// 15 seconds per interpreter call.
func NewAssistantService(st *store.Store, interp Interpreter, log *slog.Logger, timeout time.Duration) *AssistantService {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AssistantService{
		store:   st,
		interp:  interp,
		log:     log,
		timeout: timeout,
	}
}

// Answer records the message, fills in a response and returns the
// completed exchange.
func (a *AssistantService) Answer(ctx context.Context, userID, hotelID, message string) *models.ChatMessage {
	msg := a.store.CreateChatMessage(models.ChatMessage{
		UserID:  userID,
		HotelID: hotelID,
		Message: message,
	})

	response, ok := a.cannedAnswer(message)
	if !ok {
		callCtx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		out, err := a.interp.Interpret(callCtx, chatSystemPrompt, message)
		if err != nil {
			a.log.Error("interpreter call failed", "error", err)
			metrics.AssistantFallbacks.Inc()
			response = chatFallback
		} else {
			response = strings.TrimSpace(out)
		}
	}

	return a.store.SetChatResponse(msg.ID, response)
}

// ParseVoice maps a transcript to one action from the fixed
// vocabulary. Keyword matches short-circuit the interpreter; anything
// the interpreter cannot place lands on unknown.
func (a *AssistantService) ParseVoice(ctx context.Context, transcript string) *VoiceIntent {
	if action, ok := matchVoiceKeywords(transcript); ok {
		return &VoiceIntent{Action: action, Parameters: map[string]string{}}
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	out, err := a.interp.Interpret(callCtx, voiceSystemPrompt, transcript)
	if err != nil {
		a.log.Error("voice interpretation failed", "error", err)
		metrics.AssistantFallbacks.Inc()
		return &VoiceIntent{Action: ActionUnknown, Parameters: map[string]string{}}
	}

	var intent VoiceIntent
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &intent); err != nil {
		a.log.Error("voice intent not parseable", "error", err)
		return &VoiceIntent{Action: ActionUnknown, Parameters: map[string]string{}}
	}
	switch intent.Action {
	case ActionShowWiFi, ActionShowIPTV, ActionShowAlerts, ActionShowPower:
	default:
		intent.Action = ActionUnknown
	}
	if intent.Parameters == nil {
		intent.Parameters = map[string]string{}
	}
	return &intent
}

func matchVoiceKeywords(transcript string) (string, bool) {
	text := strings.ToLower(transcript)
	switch {
	case strings.Contains(text, "wifi") || strings.Contains(text, "wi-fi") || strings.Contains(text, "wireless"):
		return ActionShowWiFi, true
	case strings.Contains(text, "iptv") || strings.Contains(text, "television"):
		return ActionShowIPTV, true
	case strings.Contains(text, "alert") || strings.Contains(text, "incident"):
		return ActionShowAlerts, true
	case strings.Contains(text, "power") || strings.Contains(text, "energy"):
		return ActionShowPower, true
	}
	return "", false
}

// cannedAnswer handles the keyword topics answerable straight from the
// store. Returns false when the message needs the interpreter.
func (a *AssistantService) cannedAnswer(message string) (string, bool) {
	text := strings.ToLower(message)
	switch {
	case strings.Contains(text, "wifi") || strings.Contains(text, "wi-fi"):
		row := a.store.SystemMetricsBySystemType(models.SystemWiFi)
		latest := a.store.LatestNetworkSample()
		if row == nil || latest == nil {
			return "", false
		}
		return fmt.Sprintf("%s is %s at %.1f%% uptime. Current network load is %.0f%% with %d active guest devices.",
			row.SystemName, row.Status, row.Uptime, latest.CurrentLoad, latest.ActiveGuests), true

	case strings.Contains(text, "iptv") || strings.Contains(text, "television"):
		row := a.store.SystemMetricsBySystemType(models.SystemIPTV)
		if row == nil {
			return "", false
		}
		return fmt.Sprintf("%s is %s at %.1f%% uptime.", row.SystemName, row.Status, row.Uptime), true

	case strings.Contains(text, "alert") || strings.Contains(text, "incident") || strings.Contains(text, "problem"):
		open := a.store.OpenAlerts()
		if len(open) == 0 {
			return "There are no open alerts right now.", true
		}
		top := open[0]
		return fmt.Sprintf("There are %d open alerts. Most recent: [%s] %s - %s",
			len(open), top.Severity, top.SystemName, top.Message), true

	case strings.Contains(text, "power") || strings.Contains(text, "energy"):
		latest := a.store.LatestPowerSample()
		if latest == nil {
			return "", false
		}
		answer := fmt.Sprintf("Current total power draw is %.1f kW.", latest.TotalUsage)
		if latest.PotentialSavings > 0 {
			answer += fmt.Sprintf(" Estimated %.1f%% savings available.", latest.PotentialSavings)
		}
		return answer, true
	}
	return "", false
}
