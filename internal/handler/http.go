package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/SergeyBogomolovv/ticket-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const idempotencyHeader = "Idempotency-Key"

type OrderService interface {
	CreateOrder(ctx context.Context, ownerID string, eventID int64, lines []entities.CartLine) (entities.OrderView, error)
	GetUserHistory(ctx context.Context, ownerID string) ([]entities.OrderView, error)
	GetOrder(ctx context.Context, requester entities.Identity, orderID string) (entities.OrderView, error)
	ClaimItems(ctx context.Context, requester entities.Identity, orderID string, lines []entities.ClaimLine, idempotencyKey string) (entities.ClaimResult, error)
	CancelOrder(ctx context.Context, requester entities.Identity, orderID string) (entities.Order, error)
	LookupByRedemptionToken(ctx context.Context, requester entities.Identity, token string) (entities.OrderView, error)
}

type IdentityResolver interface {
	Resolve(credential string) (entities.Identity, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	auth     IdentityResolver
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, auth IdentityResolver) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", instrument("create_order", h.CreateOrder))
		r.Get("/my-history", instrument("history", h.GetHistory))
		r.Post("/scan", instrument("scan", h.ScanToken))
		r.Get("/{order_id}", instrument("get_order", h.GetOrder))
		r.Post("/{order_id}/claim", instrument("claim", h.ClaimItems))
		r.Post("/{order_id}/cancel", instrument("cancel", h.CancelOrder))
	})
}

// CreateOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Фиксирует цены и названия вариаций из каталога и сохраняет заказ целиком
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateOrderRequest  true  "Событие и корзина"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет или неверный токен"
// @Failure      404  {object}  utils.ErrorResponse "Событие или вариация не найдены"
// @Failure      409  {object}  utils.ErrorResponse "Не удалось подобрать уникальный номер заказа"
// @Failure      503  {object}  utils.ErrorResponse "Каталог недоступен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteErrorCode(w, "invalid request body", "invalid_request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	view, err := h.svc.CreateOrder(r.Context(), identity.OwnerID, req.EventID, CartJSONToEntity(req.Items))
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to create order")
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderViewToJSON(view), http.StatusCreated)
}

// GetHistory возвращает заказы текущего пользователя.
// @Summary      История заказов
// @Description  Заказы владельца токена, новые первыми. Если событие недоступно, вместо него возвращается заглушка
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Нет или неверный токен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/my-history [get]
func (h *HTTPHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identify(w, r)
	if !ok {
		return
	}

	views, err := h.svc.GetUserHistory(r.Context(), identity.OwnerID)
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to get order history")
		return
	}

	res := make([]Order, 0, len(views))
	for _, v := range views {
		res = append(res, OrderViewToJSON(v))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Доступно владельцу заказа и операторам (admin, scanner)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id   path      string  true  "Номер заказа"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse "Нет или неверный токен"
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identify(w, r)
	if !ok {
		return
	}

	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required,max=32"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	view, err := h.svc.GetOrder(r.Context(), identity, orderID)
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderViewToJSON(view), http.StatusOK)
}

// ClaimItems выдаёт позиции заказа.
// @Summary      Выдать позиции заказа
// @Description  Все строки применяются целиком или не применяются совсем. Повтор с тем же Idempotency-Key не выдаёт позиции повторно
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_id         path    string             true   "Номер заказа"
// @Param        Idempotency-Key  header  string             false  "Ключ идемпотентности"
// @Param        request          body    ClaimOrderRequest  true   "Позиции к выдаче"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет или неверный токен"
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Превышено купленное количество, заказ отменён или конфликт"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{order_id}/claim [post]
func (h *HTTPHandler) ClaimItems(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identify(w, r)
	if !ok {
		return
	}

	orderID := chi.URLParam(r, "order_id")
	key := r.Header.Get(idempotencyHeader)
	if err := h.validate.Var(key, "omitempty,max=128"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req ClaimOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteErrorCode(w, "invalid request body", "invalid_request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	lines := ClaimJSONToEntity(req.Items)
	res, err := h.svc.ClaimItems(r.Context(), identity, orderID, lines, key)
	if err != nil {
		claimRejections.WithLabelValues(errorCode(err)).Inc()
		h.writeError(r.Context(), w, err, "failed to claim items")
		return
	}

	if !res.Replayed {
		itemsClaimed.WithLabelValues("http").Add(float64(claimedQuantity(lines)))
	}
	utils.WriteJSON(w, OrderEntityToJSON(res.Order), http.StatusOK)
}

// CancelOrder отменяет заказ.
// @Summary      Отменить заказ
// @Description  Доступно владельцу и администратору. Полностью выданный заказ отменить нельзя
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id   path      string  true  "Номер заказа"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse "Нет или неверный токен"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ нельзя отменить"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identify(w, r)
	if !ok {
		return
	}

	order, err := h.svc.CancelOrder(r.Context(), identity, chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to cancel order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ScanToken находит заказ по QR коду.
// @Summary      Найти заказ по QR коду
// @Description  Только для операторов. Владелец из кода сверяется с владельцем заказа
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ScanRequest  true  "Содержимое QR кода"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет или неверный токен"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав или код не совпадает с заказом"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/scan [post]
func (h *HTTPHandler) ScanToken(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req ScanRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteErrorCode(w, "invalid request body", "invalid_request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	view, err := h.svc.LookupByRedemptionToken(r.Context(), identity, req.Token)
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to look up order by token")
		return
	}

	utils.WriteJSON(w, OrderViewToJSON(view), http.StatusOK)
}

// identify проверяет токен до любого обращения к сервису.
func (h *HTTPHandler) identify(w http.ResponseWriter, r *http.Request) (entities.Identity, bool) {
	identity, err := h.auth.Resolve(r.Header.Get("Authorization"))
	if err != nil {
		h.logger.DebugContext(r.Context(), "unauthenticated request", slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteErrorCode(w, "unauthorized", "unauthenticated", http.StatusUnauthorized)
		return entities.Identity{}, false
	}
	return identity, true
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, entities.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, entities.ErrForbidden):
		return "forbidden"
	case errors.Is(err, entities.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, entities.ErrNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrDependencyUnavailable):
		return "dependency_unavailable"
	case errors.Is(err, entities.ErrOverClaim):
		return "over_claim"
	case errors.Is(err, entities.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, entities.ErrConflict):
		return "conflict"
	}
	return "internal"
}

var statusByCode = map[string]int{
	"unauthenticated":        http.StatusUnauthorized,
	"forbidden":              http.StatusForbidden,
	"invalid_request":        http.StatusBadRequest,
	"not_found":              http.StatusNotFound,
	"dependency_unavailable": http.StatusServiceUnavailable,
	"over_claim":             http.StatusConflict,
	"invalid_state":          http.StatusConflict,
	"conflict":               http.StatusConflict,
}

// writeError переводит ошибку сервиса в HTTP статус.
func (h *HTTPHandler) writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	code := errorCode(err)
	status, ok := statusByCode[code]
	if !ok {
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteErrorCode(w, "internal server error", code, http.StatusInternalServerError)
		return
	}

	switch status {
	case http.StatusUnauthorized:
		utils.WriteErrorCode(w, "unauthorized", code, status)
	case http.StatusServiceUnavailable:
		h.logger.WarnContext(ctx, msg, slog.Any("error", err))
		utils.WriteErrorCode(w, "catalog unavailable", code, status)
	default:
		utils.WriteErrorCode(w, err.Error(), code, status)
	}
}
