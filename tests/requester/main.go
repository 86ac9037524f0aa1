package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/api/orders"

type cartItem struct {
	VariationID int64 `json:"variationId"`
	Quantity    int   `json:"quantity"`
}

type createOrderRequest struct {
	EventID int64      `json:"eventId"`
	Items   []cartItem `json:"items"`
}

// Нагрузка на HTTP API: оформление заказов вперемешку с чтением истории.
// Токен пользователя берётся из TOKEN.
func main() {
	token := os.Getenv("TOKEN")
	if token == "" {
		fmt.Println("TOKEN is required")
		os.Exit(1)
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			if rand.Intn(3) == 0 {
				wg.Go(func() { createOrder(token) })
			} else {
				wg.Go(func() { history(token) })
			}
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func createOrder(token string) {
	body, _ := json.Marshal(createOrderRequest{
		EventID: 1,
		Items: []cartItem{
			{VariationID: int64(rand.Intn(3) + 1), Quantity: rand.Intn(3) + 1},
		},
	})
	do(http.MethodPost, baseURL, token, body)
}

func history(token string) {
	do(http.MethodGet, baseURL+"/my-history", token, nil)
}

func do(method, url, token string, body []byte) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println(method, url, "->", resp.Status)
	resp.Body.Close()
}
