// bus задаёт контракт шины рассылки новых сообщений подписчикам чатов.
//
// Гарантии у всех реализаций одинаковые:
//   - доставка best-effort на момент публикации: кто не подписан — ничего
//     не получает и догоняется pull-чтением истории из БД;
//   - сообщения одного чата приходят подписчику в порядке публикации;
//     между разными чатами порядок не определён;
//   - публикация никогда не блокируется на медленном подписчике;
//   - шина не выполняет авторизацию — членство в чате проверяется ДО подписки.
package bus

import (
	"context"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/models"
)

// Subscription — живая подписка на один чат.
type Subscription interface {
	// Events — канал входящих сообщений. Закрывается при Close
	// или при отключении медленного подписчика шиной.
	Events() <-chan models.Message
	// Close снимает подписку и освобождает канал. Идемпотентен.
	Close()
}

// Bus — шина публикации/подписки per-chat.
type Bus interface {
	// Publish рассылает сообщение всем текущим подписчикам чата.
	Publish(ctx context.Context, chatID uuid.UUID, msg models.Message) error
	// Subscribe открывает подписку на чат. Отмена ctx снимает подписку.
	Subscribe(ctx context.Context, chatID uuid.UUID) (Subscription, error)
	// Close останавливает шину и закрывает все подписки.
	Close() error
}
