// redisbus — реализация шины поверх Redis Pub/Sub: канал на чат
// (префикс "chat:"). Нужна при развёртывании нескольких экземпляров
// сервиса, когда публикующий и подписчик живут в разных процессах.
//
// Redis гарантирует порядок доставки в пределах одного канала, что
// совпадает с контрактом bus.Bus (порядок per-chat).
package redisbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/go-messenger/internal/bus"
	"github.com/pribylovaa/go-messenger/internal/models"
)

const (
	channelPrefix = "chat:"
	sendBuffer    = 32
)

// wireMessage — JSON-представление сообщения в Redis-канале.
type wireMessage struct {
	ID        uuid.UUID `json:"id"`
	ChatID    uuid.UUID `json:"chatId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Bus struct {
	rdb *redis.Client
	log *slog.Logger
}

// New создаёт шину из Redis-URL (например, redis://:pass@host:6379/1).
// Fail-fast: недоступный Redis — ошибка старта, а не первой публикации.
func New(ctx context.Context, redisURL string, log *slog.Logger) (*Bus, error) {
	const op = "bus.redisbus.New"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if log == nil {
		log = slog.Default()
	}

	return &Bus{rdb: rdb, log: log}, nil
}

var _ bus.Bus = (*Bus)(nil)

func channelFor(chatID uuid.UUID) string {
	return channelPrefix + chatID.String()
}

// Publish сериализует сообщение и публикует его в канал чата.
func (b *Bus) Publish(ctx context.Context, chatID uuid.UUID, msg models.Message) error {
	const op = "bus.redisbus.Publish"

	payload, err := json.Marshal(wireMessage{
		ID:        msg.ID,
		ChatID:    msg.ChatID,
		AuthorID:  msg.AuthorID,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
		UpdatedAt: msg.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := b.rdb.Publish(ctx, channelFor(chatID), payload).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

type subscription struct {
	ps   *redis.PubSub
	ch   chan models.Message
	once sync.Once
}

func (s *subscription) Events() <-chan models.Message { return s.ch }

func (s *subscription) Close() {
	// Закрытие PubSub останавливает читающую горутину; канал Events
	// закрывает она сама при выходе.
	s.once.Do(func() { _ = s.ps.Close() })
}

// Subscribe подписывается на Redis-канал чата и перекладывает сообщения
// в типизированный канал. Отмена ctx снимает подписку.
func (b *Bus) Subscribe(ctx context.Context, chatID uuid.UUID) (bus.Subscription, error) {
	const op = "bus.redisbus.Subscribe"

	ps := b.rdb.Subscribe(ctx, channelFor(chatID))

	// Дожидаемся подтверждения подписки, чтобы после возврата из Subscribe
	// публикации уже доставлялись.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sub := &subscription{
		ps: ps,
		ch: make(chan models.Message, sendBuffer),
	}

	go func() {
		defer close(sub.ch)

		for raw := range ps.Channel() {
			var wire wireMessage
			if err := json.Unmarshal([]byte(raw.Payload), &wire); err != nil {
				b.log.Warn("redisbus_bad_payload",
					slog.String("channel", raw.Channel),
					slog.String("err", err.Error()),
				)
				continue
			}

			select {
			case sub.ch <- models.Message{
				ID:        wire.ID,
				ChatID:    wire.ChatID,
				AuthorID:  wire.AuthorID,
				Text:      wire.Text,
				CreatedAt: wire.CreatedAt,
				UpdatedAt: wire.UpdatedAt,
			}:
			default:
				// Медленный подписчик: снимаем подписку целиком,
				// публикующего Redis-канал это не задерживает.
				sub.Close()
			}
		}
	}()

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	return sub, nil
}

// Close закрывает клиент Redis.
func (b *Bus) Close() error {
	return b.rdb.Close()
}
