package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/ruok-app/ruok-api/internal/config"
	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/types"
	"google.golang.org/genai"
)

// Sentinel messages the frontend sends to open a conversation.
const (
	greetingNoCheckIn   = "INITIAL_GREETING_NO_CHECKIN"
	greetingWithCheckIn = "INITIAL_GREETING_WITH_CHECKIN"
)

const (
	geminiModel     = "gemini-2.0-flash"
	elevenLabsModel = "eleven_multilingual_v2"
	elevenLabsURL   = "https://api.elevenlabs.io/v1/text-to-speech/%s"

	// Rolling conversation history kept per user in Redis.
	chatHistoryTTL = 24 * time.Hour
)

// Expression and animation labels the avatar understands. The
// classification call is constrained to these; anything else falls
// back to the defaults.
var (
	allowedExpressions = map[string]struct{}{
		"smile": {}, "sad": {}, "angry": {}, "surprised": {}, "default": {},
	}
	allowedAnimations = map[string]struct{}{
		"Talking_0": {}, "Talking_1": {}, "Crying": {}, "Laughing": {}, "Idle": {},
	}
)

// ChatMessage is one turn of the running conversation.
type ChatMessage struct {
	From string `json:"from"` // "user" or "bot"
	Text string `json:"text"`
}

// ChatRequest carries the user message plus the emotional context the
// frontend already holds.
type ChatRequest struct {
	Message     string                `json:"message"`
	DayCheckIns []models.CheckIn      `json:"dayCheckIns,omitempty"`
	Feedbacks   []models.ToolFeedback `json:"feedbacks,omitempty"`
	ChatHistory []ChatMessage         `json:"chatHistory,omitempty"`
}

// AvatarMessage is one rendered reply: text, synthesized audio, the
// phoneme transcript driving the avatar's mouth, and its expression.
type AvatarMessage struct {
	ID               string          `json:"id"`
	Text             string          `json:"text"`
	Audio            string          `json:"audio"` // base64 mp3
	Lipsync          json.RawMessage `json:"lipsync"`
	FacialExpression string          `json:"facialExpression"`
	Animation        string          `json:"animation"`
}

// ChatService orchestrates the Sage pipeline: Gemini for the reply and
// its expression classification, ElevenLabs for speech, ffmpeg+rhubarb
// for the lip-sync transcript, Redis for rolling history.
type ChatService struct {
	cfg    *config.Config
	genAI  *genai.Client
	redis  *redis.Client
	client *http.Client
}

// NewChatService builds the orchestrator. The Redis client may be nil;
// history then only lives in the request payload.
func NewChatService(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (*ChatService, error) {
	var genClient *genai.Client
	if cfg.GeminiAPIKey != "" {
		var err error
		genClient, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: cfg.GeminiAPIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
	}

	return &ChatService{
		cfg:    cfg,
		genAI:  genClient,
		redis:  redisClient,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// HandleSageChat runs the full pipeline for one user message and
// returns the avatar messages to play.
func (s *ChatService) HandleSageChat(ctx context.Context, ownerUserID uint64, req ChatRequest) ([]AvatarMessage, error) {
	userMessage := req.Message
	if userMessage == "" {
		return nil, types.ValidationError("Message is required")
	}
	if s.genAI == nil || s.cfg.ElevenLabsAPIKey == "" {
		return nil, types.ValidationError("API keys are missing.")
	}

	if userMessage == greetingNoCheckIn {
		return s.cannedGreeting(ctx)
	}
	if userMessage == greetingWithCheckIn {
		userMessage = "Start the conversation by greeting me warmly based on my latest emotional check-in."
	}

	history := s.mergedHistory(ctx, ownerUserID, req.ChatHistory)

	text, err := s.generateReply(ctx, userMessage, req.DayCheckIns, req.Feedbacks, history)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, types.ValidationError("Failed to process chat message.")
	}

	expression, animation := s.classifyReply(ctx, text)

	message, err := s.renderAvatarMessage(ctx, uuid.NewString(), text, expression, animation)
	if err != nil {
		return nil, err
	}

	s.storeHistory(ctx, ownerUserID, append(history,
		ChatMessage{From: "user", Text: userMessage},
		ChatMessage{From: "bot", Text: text},
	))

	return []AvatarMessage{*message}, nil
}

// cannedGreeting short-circuits the first contact before any check-in
// exists: fixed text, but the audio pipeline still runs.
func (s *ChatService) cannedGreeting(ctx context.Context) ([]AvatarMessage, error) {
	const text = "Hey there! Before we start, could you do a quick emotional check-in so I can understand you better?"

	message, err := s.renderAvatarMessage(ctx, "initial_greeting", text, "smile", "Talking_1")
	if err != nil {
		return nil, err
	}
	return []AvatarMessage{*message}, nil
}

// generateReply asks Gemini for Sage's answer with the emotional
// context folded into the system instruction.
func (s *ChatService) generateReply(ctx context.Context, userMessage string, checkIns []models.CheckIn, feedbacks []models.ToolFeedback, history []ChatMessage) (string, error) {
	emotionalContext, _ := json.MarshalIndent(checkIns, "", "  ")
	feedbackHistory, _ := json.MarshalIndent(feedbacks, "", "  ")

	instruction := sageSystemInstruction(string(emotionalContext), string(feedbackHistory))

	contents := historyContents(history, userMessage)

	resp, err := s.genAI.Models.GenerateContent(ctx, geminiModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini chat failed: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

// historyContents turns the stored conversation into Gemini contents,
// ending with the current user message.
func historyContents(history []ChatMessage, userMessage string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.From == "bot" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}
	return append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))
}

// classifyReply asks Gemini to pick the avatar's expression and
// animation for the reply text. Any failure degrades to the defaults;
// the conversation never stalls on presentation.
func (s *ChatService) classifyReply(ctx context.Context, text string) (string, string) {
	prompt := fmt.Sprintf(`Analyze the therapist's text: %q
Choose the best facial expression from: smile, sad, angry, surprised, default.
Choose the best animation from: Talking_0, Talking_1, Crying, Laughing, Idle.
Respond with only a JSON object containing "facialExpression" and "animation" keys.`, text)

	resp, err := s.genAI.Models.GenerateContent(ctx, geminiModel,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		config.Logger.Warnw("expression classification failed", "error", err)
		return "default", "Talking_0"
	}

	var analysis struct {
		FacialExpression string `json:"facialExpression"`
		Animation        string `json:"animation"`
	}
	if err := json.Unmarshal([]byte(resp.Text()), &analysis); err != nil {
		config.Logger.Warnw("expression classification unparseable", "error", err)
		return "default", "Talking_0"
	}

	if _, ok := allowedExpressions[analysis.FacialExpression]; !ok {
		analysis.FacialExpression = "default"
	}
	if _, ok := allowedAnimations[analysis.Animation]; !ok {
		analysis.Animation = "Talking_0"
	}
	return analysis.FacialExpression, analysis.Animation
}

// renderAvatarMessage synthesizes speech, produces the lip-sync
// transcript, and assembles the wire message.
func (s *ChatService) renderAvatarMessage(ctx context.Context, baseName, text, expression, animation string) (*AvatarMessage, error) {
	mp3Path := filepath.Join(s.cfg.AudioDir, baseName+".mp3")

	if err := s.synthesizeSpeech(ctx, text, mp3Path); err != nil {
		return nil, err
	}

	lipsync, err := s.lipSync(ctx, baseName)
	if err != nil {
		return nil, err
	}

	audio, err := audioFileToBase64(mp3Path)
	if err != nil {
		return nil, err
	}

	return &AvatarMessage{
		ID:               fmt.Sprintf("msg_%d", time.Now().UnixMilli()),
		Text:             text,
		Audio:            audio,
		Lipsync:          lipsync,
		FacialExpression: expression,
		Animation:        animation,
	}, nil
}

// synthesizeSpeech calls the ElevenLabs text-to-speech endpoint and
// streams the mp3 to disk.
func (s *ChatService) synthesizeSpeech(ctx context.Context, text, outPath string) error {
	payload, err := json.Marshal(map[string]string{
		"text":     text,
		"model_id": elevenLabsModel,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf(elevenLabsURL, s.cfg.ElevenLabsVoice)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(payload)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.cfg.ElevenLabsAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("text-to-speech request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("text-to-speech returned %d: %s", resp.StatusCode, string(body))
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

// lipSync converts the mp3 to wav and runs rhubarb to produce the
// phoneme-timing transcript.
func (s *ChatService) lipSync(ctx context.Context, baseName string) (json.RawMessage, error) {
	mp3Path := filepath.Join(s.cfg.AudioDir, baseName+".mp3")
	wavPath := filepath.Join(s.cfg.AudioDir, baseName+".wav")
	jsonPath := filepath.Join(s.cfg.AudioDir, baseName+".json")

	if out, err := exec.CommandContext(ctx, "ffmpeg", "-y", "-i", mp3Path, wavPath).CombinedOutput(); err != nil {
		return nil, fmt.Errorf("ffmpeg failed: %w: %s", err, string(out))
	}

	if out, err := exec.CommandContext(ctx, s.cfg.RhubarbPath,
		"-f", "json", "-o", jsonPath, wavPath, "-r", "phonetic").CombinedOutput(); err != nil {
		return nil, fmt.Errorf("rhubarb failed: %w: %s", err, string(out))
	}

	transcript, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(transcript), nil
}

// mergedHistory prefers the client-supplied history and falls back to
// the Redis copy from a previous session.
func (s *ChatService) mergedHistory(ctx context.Context, ownerUserID uint64, supplied []ChatMessage) []ChatMessage {
	if len(supplied) > 0 || s.redis == nil {
		return supplied
	}

	raw, err := s.redis.Get(ctx, chatHistoryKey(ownerUserID)).Result()
	if err != nil {
		return nil
	}
	var history []ChatMessage
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil
	}
	return history
}

// storeHistory keeps the last forty turns per user, best effort.
func (s *ChatService) storeHistory(ctx context.Context, ownerUserID uint64, history []ChatMessage) {
	if s.redis == nil {
		return
	}
	if len(history) > 40 {
		history = history[len(history)-40:]
	}
	encoded, err := json.Marshal(history)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, chatHistoryKey(ownerUserID), encoded, chatHistoryTTL).Err(); err != nil {
		config.Logger.Warnw("failed to store chat history", "error", err, "user", ownerUserID)
	}
}

func chatHistoryKey(ownerUserID uint64) string {
	return fmt.Sprintf("sage:history:%d", ownerUserID)
}

func audioFileToBase64(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// sageSystemInstruction builds the persona prompt with the user's
// current emotional context and feedback history folded in.
func sageSystemInstruction(emotionalContext, feedbackHistory string) string {
	return fmt.Sprintf(`You are a compassionate CBT-style AI therapist named 'Sage'.

Always be empathetic, understanding, and respond like a warm friend and therapist.
Never mention you're an AI or that this is a simulation.
Respond in a way that balances professionalism with empathy and friendliness, adapting to the user's tone.
You should:
- Offer emotional support, validation, and reflective listening like a therapist.
- Act as a non-judgmental friend when the user seems casual, venting, or confused.
- Understand and interpret informal language and slang without explaining it or making the user feel self-conscious.
- Avoid using slang or abbreviations unless the user uses them first. Match their communication style naturally.
- Ask thoughtful, open-ended questions to help users reflect.
- Respect emotional boundaries and avoid offering medical diagnoses or medication advice.
- Keep responses clear, warm, concise, and emotionally intelligent.
- Suggest specific tools from the provided list when relevant, based on the user's current emotional state and past feedback, using conversational phrasing.

Feedback history:
%s

Your task is to:
1. Respond to the user's input with empathy, validating their feelings and offering support.
2. Analyze the feedback history to find the highest-rated tool for the specific emotion, the emotion type, and the activity/place/people tags in the latest check-in, when present.
3. Provide tailored tool suggestions for the latest check-in, phrased conversationally, for example: "Whenever you felt [emotion] and used [tool], it worked out great for you. Try it again!"
4. If no feedback exists for a specific context, recommend a tool from the same emotion type category as the latest check-in, using the same phrasing.
5. Omit suggestions for activity, place, or people if their tags are null in the latest check-in.
6. Integrate suggestions naturally into the response, only when relevant to the user's input.

Current emotional context:
%s
`, feedbackHistory, emotionalContext)
}
