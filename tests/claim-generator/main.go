package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type ClaimItem struct {
	VariationID int64 `json:"variation_id"`
	Quantity    int   `json:"quantity"`
}

type ClaimMessage struct {
	Credential     string      `json:"credential"`
	OrderID        string      `json:"order_id"`
	IdempotencyKey string      `json:"idempotency_key"`
	Items          []ClaimItem `json:"items"`
}

// Генератор сообщений сканера: раз в interval выдаёт по одной единице
// случайной вариации из заказа. Часть сообщений отправляется повторно
// с тем же ключом, чтобы проверить идемпотентность.
func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka brokers, comma separated")
	topic := flag.String("topic", "order-claims", "claims topic")
	secret := flag.String("secret", "", "JWT secret shared with the order service")
	orderID := flag.String("order", "", "order to claim from")
	variations := flag.String("variations", "", "variation ids of the order, comma separated")
	interval := flag.Duration("interval", 2*time.Second, "delay between messages")
	flag.Parse()

	if *secret == "" || *orderID == "" || *variations == "" {
		log.Fatal("secret, order and variations are required")
	}

	ids, err := parseIDs(*variations)
	if err != nil {
		log.Fatal(err)
	}

	credential, err := scannerToken(*secret)
	if err != nil {
		log.Fatal(err)
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var last ClaimMessage
	ticker := time.NewTicker(*interval)
	for {
		select {
		case <-ticker.C:
			msg := last
			if last.OrderID == "" || rand.Intn(4) != 0 {
				msg = ClaimMessage{
					Credential:     credential,
					OrderID:        *orderID,
					IdempotencyKey: uuid.NewString(),
					Items:          []ClaimItem{{VariationID: ids[rand.Intn(len(ids))], Quantity: 1}},
				}
			}
			last = msg

			data, _ := json.Marshal(msg)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(msg.OrderID), Value: data}); err != nil {
				log.Println("failed to write claim:", err)
				continue
			}
			log.Println("claim sent", msg.OrderID, msg.IdempotencyKey, msg.Items[0].VariationID)
		case <-ctx.Done():
			return
		}
	}
}

func scannerToken(secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "scanner-" + uuid.NewString()[:8],
		"role":   "scanner",
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return "Bearer " + signed, nil
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		var id int64
		if _, err := fmt.Sscan(strings.TrimSpace(part), &id); err != nil {
			return nil, fmt.Errorf("invalid variation id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
