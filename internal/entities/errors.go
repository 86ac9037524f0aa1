package entities

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок. Конкретные ошибки ниже оборачивают их, поэтому
// errors.Is работает на обоих уровнях.
var (
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrNotFound              = errors.New("not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrOverClaim             = errors.New("claim exceeds purchased quantity")
	ErrConflict              = errors.New("conflict")
	ErrInvalidState          = errors.New("invalid state")
)

var (
	ErrOrderNotFound     = fmt.Errorf("order %w", ErrNotFound)
	ErrEventNotFound     = fmt.Errorf("event %w", ErrNotFound)
	ErrVariationNotFound = fmt.Errorf("variation %w", ErrNotFound)

	ErrEmptyCart         = fmt.Errorf("%w: cart is empty", ErrInvalidRequest)
	ErrInvalidEvent      = fmt.Errorf("%w: event reference is required", ErrInvalidRequest)
	ErrInvalidOrderID    = fmt.Errorf("%w: order id is required", ErrInvalidRequest)
	ErrInvalidQuantity   = fmt.Errorf("%w: quantity must be positive", ErrInvalidRequest)
	ErrInvalidVariation  = fmt.Errorf("%w: variation reference is required", ErrInvalidRequest)
	ErrEmptyClaim        = fmt.Errorf("%w: claim has no items", ErrInvalidRequest)
	ErrItemNotInOrder    = fmt.Errorf("%w: variation is not part of the order", ErrInvalidRequest)
	ErrInvalidToken      = fmt.Errorf("%w: malformed redemption token", ErrInvalidRequest)
	ErrOrderCancelled    = fmt.Errorf("%w: order is cancelled", ErrInvalidState)
	ErrOrderFullyClaimed = fmt.Errorf("%w: order is fully claimed", ErrInvalidState)

	ErrNotOrderOwner  = fmt.Errorf("%w: order belongs to another owner", ErrForbidden)
	ErrOperatorOnly   = fmt.Errorf("%w: operator role required", ErrForbidden)
	ErrTokenMismatch  = fmt.Errorf("%w: redemption token does not match the order owner", ErrForbidden)
	ErrMissingOwnerID = fmt.Errorf("%w: owner identifier is required", ErrUnauthenticated)

	// ErrOrderIDConflict возвращается хранилищем при повторе order_id.
	ErrOrderIDConflict = fmt.Errorf("%w: order id already exists", ErrConflict)
	// ErrConcurrentUpdate - временная ошибка сериализации транзакций, можно повторить.
	ErrConcurrentUpdate = fmt.Errorf("%w: concurrent update", ErrConflict)
)
