// Package events provee el bus de cambios del subsistema de inventario.
// Los observadores (UI, reportes) se suscriben para re-leer el estado
// derivado después de cada mutación exitosa.
package events

import (
	"sync"
	"time"
)

// Tipos de evento de cambio publicados por el servicio de inventario.
const (
	KindSeeded            = "seeded"
	KindReorderLevelSet   = "reorder_level_set"
	KindTransferCreated   = "transfer_created"
	KindTransferCompleted = "transfer_completed"
	KindTransferCancelled = "transfer_cancelled"
	KindAlertCreated      = "alert_created"
	KindAlertUpdated      = "alert_updated"
	KindAlertAcknowledged = "alert_acknowledged"
	KindAlertResolved     = "alert_resolved"
)

// ChangeEvent describe una mutación del libro. Los campos de identidad son
// opcionales según el tipo; los observadores pueden ignorarlos y re-leer
// todo el estado (ese es el contrato mínimo).
type ChangeEvent struct {
	Kind        string
	WarehouseID string
	ProductID   string
	TransferID  string
	AlertID     string
	At          time.Time
}

// Handler recibe eventos de cambio.
type Handler func(ChangeEvent)

type subscription struct {
	id int
	fn Handler
}

// Bus despacha eventos de forma síncrona y en orden de suscripción.
// El servicio de inventario publica fuera de su mutex, de modo que un
// handler puede re-leer el estado del servicio sin bloquearse.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription
	nextID int
}

// NewBus construye un bus sin suscriptores.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registra un handler y devuelve la función para desuscribirlo.
// Desuscribirse más de una vez es inocuo.
func (b *Bus) Subscribe(fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish entrega el evento a cada suscriptor, en orden de registro,
// antes de devolver el control. Los handlers se invocan sobre una copia
// de la lista, así un handler puede desuscribirse a sí mismo.
func (b *Bus) Publish(ev ChangeEvent) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()
	for _, s := range subs {
		s.fn(ev)
	}
}
