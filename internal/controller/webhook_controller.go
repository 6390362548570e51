package controller

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"manualbot-be/internal/dto"
	"manualbot-be/internal/pkg/logger"
	"manualbot-be/internal/pkg/serverutils"
	"manualbot-be/internal/service"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Handle(ctx *fiber.Ctx) error
}

type webhookController struct {
	botService    service.IBotService
	channelSecret string
	logger        logger.ILogger
}

func NewWebhookController(botService service.IBotService, channelSecret string, log logger.ILogger) IWebhookController {
	return &webhookController{
		botService:    botService,
		channelSecret: channelSecret,
		logger:        log,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bot/v1")
	h.Post("webhook", c.Handle)
}

func (c *webhookController) Handle(ctx *fiber.Ctx) error {
	body := ctx.Body()
	if !c.verifySignature(body, ctx.Get("X-Line-Signature")) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid signature")
	}

	var req dto.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed webhook payload")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	replies := make([]dto.WebhookReply, 0, len(req.Events))
	for _, event := range req.Events {
		if event.Type != "message" || event.Message == nil || event.Message.Type != "text" {
			continue
		}
		if event.Source.UserId == "" {
			continue
		}

		text, err := c.botService.HandleMessage(ctx.Context(), event.Source.UserId, event.Message.Text)
		if err != nil {
			// The service answers every message it can; anything surfacing
			// here is unexpected. Skip the event rather than fail the batch.
			c.logger.Error("WebhookController", "Message handling failed", map[string]interface{}{
				"user_id": event.Source.UserId,
				"error":   err.Error(),
			})
			continue
		}
		replies = append(replies, dto.WebhookReply{ReplyToken: event.ReplyToken, Text: text})
	}

	return ctx.JSON(serverutils.SuccessResponse("ok", dto.WebhookResponse{Replies: replies}))
}

// verifySignature checks the platform's HMAC-SHA256 body signature. An empty
// configured secret disables the check for local development.
func (c *webhookController) verifySignature(body []byte, signature string) bool {
	if c.channelSecret == "" {
		return true
	}
	mac := hmac.New(sha256.New, []byte(c.channelSecret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
