// membus — встроенная (in-process) реализация шины: реестр подписчиков
// по чатам под мьютексом и буферизованные каналы доставки. Используется
// по умолчанию при одноэкземплярном развёртывании и в тестах.
package membus

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/bus"
	"github.com/pribylovaa/go-messenger/internal/models"
)

// sendBuffer — ёмкость канала подписчика. Подписчик, не вычитавший буфер
// к моменту очередной публикации, отключается, а не тормозит публикующего.
const sendBuffer = 32

type subscriber struct {
	b      *Bus
	chatID uuid.UUID
	ch     chan models.Message
	// done закрывается вместе с ch и останавливает сторожевую горутину
	// подписки, когда отписка произошла раньше отмены ctx.
	done chan struct{}
}

func (s *subscriber) Events() <-chan models.Message { return s.ch }

// Close снимает подписку. Канал закрывает только та сторона, которая
// фактически удалила подписчика из реестра, поэтому повторный Close
// и гонка с отключением медленного подписчика безопасны.
func (s *subscriber) Close() { s.b.detach(s) }

type Bus struct {
	mu     sync.Mutex
	chats  map[uuid.UUID]map[*subscriber]struct{}
	closed bool
}

func New() *Bus {
	return &Bus{
		chats: make(map[uuid.UUID]map[*subscriber]struct{}),
	}
}

var _ bus.Bus = (*Bus)(nil)

// Publish рассылает сообщение всем текущим подписчикам чата.
// Рассылка идёт под мьютексом, поэтому подписчик видит сообщения одного
// чата строго в порядке публикации. Переполненный канал подписчика
// означает отключение этого подписчика.
func (b *Bus) Publish(_ context.Context, chatID uuid.UUID, msg models.Message) error {
	const op = "bus.membus.Publish"

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("%s: bus closed", op)
	}

	for sub := range b.chats[chatID] {
		select {
		case sub.ch <- msg:
		default:
			// Медленный подписчик: отключаем, чтобы не блокировать публикацию.
			if b.removeLocked(sub) {
				close(sub.ch)
				close(sub.done)
			}
		}
	}

	return nil
}

// Subscribe открывает подписку на чат. Отмена ctx снимает подписку
// и освобождает канал без участия вызывающего.
func (b *Bus) Subscribe(ctx context.Context, chatID uuid.UUID) (bus.Subscription, error) {
	const op = "bus.membus.Subscribe"

	sub := &subscriber{
		b:      b,
		chatID: chatID,
		ch:     make(chan models.Message, sendBuffer),
		done:   make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, fmt.Errorf("%s: bus closed", op)
	}

	set, ok := b.chats[chatID]
	if !ok {
		set = make(map[*subscriber]struct{})
		b.chats[chatID] = set
	}
	set[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			sub.Close()
		case <-sub.done:
		}
	}()

	return sub, nil
}

// Close закрывает шину и все подписки.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for _, set := range b.chats {
		for sub := range set {
			close(sub.ch)
			close(sub.done)
		}
	}
	b.chats = make(map[uuid.UUID]map[*subscriber]struct{})

	return nil
}

func (b *Bus) detach(sub *subscriber) {
	b.mu.Lock()
	removed := b.removeLocked(sub)
	b.mu.Unlock()

	if removed {
		close(sub.ch)
		close(sub.done)
	}
}

// removeLocked удаляет подписчика из реестра; true — если он там был.
func (b *Bus) removeLocked(sub *subscriber) bool {
	set, ok := b.chats[sub.chatID]
	if !ok {
		return false
	}

	if _, ok := set[sub]; !ok {
		return false
	}

	delete(set, sub)
	if len(set) == 0 {
		delete(b.chats, sub.chatID)
	}

	return true
}
