package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"plaza/internal/delivery/http/response"
	"plaza/internal/domain/entity"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConversationHandler holds dependencies for conversation and messaging
// handlers.
type ConversationHandler struct {
	uc     usecase.ConversationUsecase
	logger *slog.Logger
}

// NewConversationHandler is the constructor for ConversationHandler,
// injected by Fx.
func NewConversationHandler(uc usecase.ConversationUsecase, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{
		uc:     uc,
		logger: logger,
	}
}

type openConversationBody struct {
	RequestID  uuid.UUID `json:"request_id" validate:"required"`
	ProviderID uuid.UUID `json:"provider_id" validate:"required"`
}

// Open returns the conversation for (request, provider, user), creating
// it when absent.
func (h *ConversationHandler) Open(c echo.Context) error {
	var body openConversationBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conversation input")
	}

	conversation, err := h.uc.GetOrCreate(c.Request().Context(), body.RequestID, body.ProviderID, mustUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversation, "")
}

// ListForUser lists the authenticated requester's conversations.
func (h *ConversationHandler) ListForUser(c echo.Context) error {
	conversations, err := h.uc.ListForUser(c.Request().Context(), mustUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversations, "")
}

// ListForProvider lists a provider's conversations for its owner.
func (h *ConversationHandler) ListForProvider(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("providerID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	conversations, err := h.uc.ListForProvider(c.Request().Context(), providerID, mustUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversations, "")
}

// Messages lists a conversation's messages in server order.
func (h *ConversationHandler) Messages(c echo.Context) error {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid conversation ID")
	}

	messages, err := h.uc.Messages(c.Request().Context(), conversationID, mustUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

type sendMessageBody struct {
	SenderType  string   `json:"sender_type" validate:"required,oneof=user provider"`
	Content     string   `json:"content"`
	Attachments []string `json:"attachments"`
}

// SendMessage appends a plain message to a conversation.
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid conversation ID")
	}

	var body sendMessageBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	message, err := h.uc.SendMessage(c.Request().Context(), usecase.SendMessageInput{
		ConversationID: conversationID,
		SenderID:       mustUserID(c),
		SenderType:     entity.SenderType(body.SenderType),
		Content:        body.Content,
		Attachments:    body.Attachments,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}

// SendQuotation validates and sends a structured price offer. The body
// is multipart so supporting images ride along with the pricing fields.
func (h *ConversationHandler) SendQuotation(c echo.Context) error {
	requestID, err := uuid.Parse(c.FormValue("request_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	providerID, err := uuid.Parse(c.FormValue("provider_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	userID, err := uuid.Parse(c.FormValue("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid price")
	}

	input := usecase.QuotationInput{
		RequestID:         requestID,
		ProviderID:        providerID,
		UserID:            userID,
		SenderID:          mustUserID(c),
		SenderType:        entity.SenderType(c.FormValue("sender_type")),
		PricingType:       entity.PricingType(c.FormValue("pricing_type")),
		Price:             price,
		DeliveryAvailable: c.FormValue("delivery_available") == "true",
		Note:              c.FormValue("note"),
		ShopName:          c.FormValue("shop_name"),
	}

	if raw := c.FormValue("wholesale_price"); raw != "" {
		wholesale, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid wholesale price")
		}
		input.WholesalePrice = &wholesale
	}

	if raw := c.FormValue("negotiable_price"); raw != "" {
		negotiable, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid negotiable price")
		}
		input.NegotiablePrice = &negotiable
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		files, err := readMultipartFiles(form.File["images"])
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Failed to read uploaded images")
		}
		input.Images = files
	}

	result, err := h.uc.SendQuotation(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Quotation sent")
}

// MarkRead marks the counterparty's messages in a conversation as read.
// The reader's side is derived from the authenticated user.
func (h *ConversationHandler) MarkRead(c echo.Context) error {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid conversation ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), conversationID, mustUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Conversation marked read")
}

// UnreadCount returns the user's total unread messages.
func (h *ConversationHandler) UnreadCount(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context(), mustUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "")
}

// UnreadCountPerRequest returns the user's unread messages grouped by
// service request.
func (h *ConversationHandler) UnreadCountPerRequest(c echo.Context) error {
	counts, err := h.uc.UnreadCountPerRequest(c.Request().Context(), mustUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts, "")
}

// readMultipartFiles buffers uploaded files into memory for the usecase
// layer, which enforces per-file size and type limits.
func readMultipartFiles(headers []*multipart.FileHeader) ([]usecase.FileInput, error) {
	files := make([]usecase.FileInput, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			return nil, errors.Wrap(err, "failed to open uploaded file")
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read uploaded file")
		}

		files = append(files, usecase.FileInput{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Data:        data,
		})
	}

	return files, nil
}
