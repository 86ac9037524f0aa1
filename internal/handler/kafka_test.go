package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/handler/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKafkaHandler_HandleClaim(t *testing.T) {
	scanner := entities.Identity{OwnerID: "s-1", Role: entities.RoleScanner}
	validMsg := `{"credential":"Bearer token","order_id":"ORD-AAAAAAAA","idempotency_key":"gate-1:42",` +
		`"items":[{"variation_id":10,"quantity":1},{"variation_id":20,"quantity":2}]}`

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(svc *mocks.MockOrderService, auth *mocks.MockIdentityResolver)
		wantErr      error
		wantAnyErr   bool
	}{
		{
			name:  "success",
			value: validMsg,
			mockBehavior: func(svc *mocks.MockOrderService, auth *mocks.MockIdentityResolver) {
				auth.EXPECT().Resolve("Bearer token").Return(scanner, nil)
				svc.EXPECT().ClaimItems(mock.Anything, scanner, "ORD-AAAAAAAA", []entities.ClaimLine{
					{VariationID: 10, Quantity: 1},
					{VariationID: 20, Quantity: 2},
				}, "gate-1:42").Return(entities.ClaimResult{Order: entities.Order{ID: "ORD-AAAAAAAA", Status: entities.StatusPartiallyClaimed}}, nil).Once()
			},
		},
		{
			name:         "invalid json",
			value:        `{"order_id":`,
			mockBehavior: func(svc *mocks.MockOrderService, auth *mocks.MockIdentityResolver) {},
			wantAnyErr:   true,
		},
		{
			name:         "missing credential",
			value:        `{"order_id":"ORD-AAAAAAAA","items":[{"variation_id":10,"quantity":1}]}`,
			mockBehavior: func(svc *mocks.MockOrderService, auth *mocks.MockIdentityResolver) {},
			wantAnyErr:   true,
		},
		{
			name:         "zero quantity",
			value:        `{"credential":"Bearer token","order_id":"ORD-AAAAAAAA","items":[{"variation_id":10,"quantity":0}]}`,
			mockBehavior: func(svc *mocks.MockOrderService, auth *mocks.MockIdentityResolver) {},
			wantAnyErr:   true,
		},
		{
			name:  "bad credential",
			value: validMsg,
			mockBehavior: func(svc *mocks.MockOrderService, auth *mocks.MockIdentityResolver) {
				auth.EXPECT().Resolve("Bearer token").Return(entities.Identity{}, entities.ErrUnauthenticated)
			},
			wantErr: entities.ErrUnauthenticated,
		},
		{
			name:  "over claim",
			value: validMsg,
			mockBehavior: func(svc *mocks.MockOrderService, auth *mocks.MockIdentityResolver) {
				auth.EXPECT().Resolve("Bearer token").Return(scanner, nil)
				svc.EXPECT().ClaimItems(mock.Anything, scanner, "ORD-AAAAAAAA", mock.Anything, "gate-1:42").
					Return(entities.ClaimResult{}, entities.ErrOverClaim).Once()
			},
			wantErr: entities.ErrOverClaim,
		},
		{
			name:  "store error",
			value: validMsg,
			mockBehavior: func(svc *mocks.MockOrderService, auth *mocks.MockIdentityResolver) {
				auth.EXPECT().Resolve("Bearer token").Return(scanner, nil)
				svc.EXPECT().ClaimItems(mock.Anything, scanner, "ORD-AAAAAAAA", mock.Anything, "gate-1:42").
					Return(entities.ClaimResult{}, errors.New("connection reset")).Once()
			},
			wantAnyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			auth := mocks.NewMockIdentityResolver(t)
			tc.mockBehavior(svc, auth)

			h := &kafkaHandler{
				logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate: validator.New(),
				auth:     auth,
				claimer:  svc,
			}

			err := h.handleClaim(context.Background(), kafka.Message{Topic: "order-claims", Value: []byte(tc.value)})

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
