package response

import "github.com/gofiber/fiber/v3"

// SemanticResponse is the envelope every endpoint answers with.
type SemanticResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Meta accompanies paged collections inside Data.
type Meta struct {
	TotalCount int  `json:"total_count"`
	HasMore    bool `json:"has_more"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	// set when the listing behind the page was capped
	PoolTruncated bool `json:"pool_truncated,omitempty"`
}

type Paged struct {
	Items any  `json:"items"`
	Meta  Meta `json:"meta"`
}

// NewPaged wraps one page of items taken at offset with the given limit.
func NewPaged(items any, total, limit, offset int) Paged {
	return Paged{
		Items: items,
		Meta: Meta{
			TotalCount: total,
			HasMore:    offset+limit < total,
			Limit:      limit,
			Offset:     offset,
		},
	}
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageRequestTimeout      = "request cancelled"
	MessageConflict            = "conflict"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageServiceUnavailable  = "service unavailable"
	MessageGatewayTimeout      = "request timed out"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

var statusMessages = map[int]string{
	fiber.StatusOK:                  MessageOK,
	fiber.StatusCreated:             MessageOK,
	fiber.StatusBadRequest:          MessageBadRequest,
	fiber.StatusUnauthorized:        MessageUnauthorized,
	fiber.StatusForbidden:           MessageForbidden,
	fiber.StatusNotFound:            MessageNotFound,
	fiber.StatusRequestTimeout:      MessageRequestTimeout,
	fiber.StatusConflict:            MessageConflict,
	fiber.StatusUnprocessableEntity: MessageUnprocessableEntity,
	fiber.StatusServiceUnavailable:  MessageServiceUnavailable,
	fiber.StatusGatewayTimeout:      MessageGatewayTimeout,
}

// MessageFor is the generic text for a status, used whenever a caller gives
// none and for every masked 5xx.
func MessageFor(status int) string {
	if m, ok := statusMessages[status]; ok {
		return m
	}
	if status >= 500 {
		return MessageInternalServerError
	}
	return MessageError
}

func Success(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func OK(c fiber.Ctx, data any) error {
	return write(c, fiber.StatusOK, MessageOK, data)
}

func Error(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data any) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = MessageFor(status)
	}
	return c.Status(status).JSON(SemanticResponse{Status: status, Message: message, Data: data})
}
