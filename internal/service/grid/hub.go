package grid

import (
	"sync"

	"github.com/m04kA/Salon-ReservationService/internal/service/grid/models"
)

// Hub рассылает снимки сетки всем текущим подписчикам (SSE поток)
// Рассылка не блокируется на медленных потребителях: канал подписчика
// буферизован на один снимок, устаревший снимок вытесняется свежим
type Hub struct {
	mu          sync.Mutex
	nextID      int64
	subscribers map[int64]chan models.Snapshot
}

// NewHub создает новый hub подписчиков
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int64]chan models.Snapshot),
	}
}

// Subscribe регистрирует подписчика
// Возвращает канал снимков и функцию отписки, которую вызывающий обязан вызвать
func (h *Hub) Subscribe() (<-chan models.Snapshot, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan models.Snapshot, 1)
	h.subscribers[id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subscribers[id]; ok {
			delete(h.subscribers, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

// Broadcast доставляет снимок всем подписчикам
// Для подписчика с непрочитанным снимком старый снимок заменяется новым
func (h *Hub) Broadcast(snapshot models.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Вытесняем непрочитанный снимок
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}

// Len возвращает количество текущих подписчиков
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
