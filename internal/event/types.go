// internal/event/types.go
package event

const (
	PointerMoved   EventType = "PointerMoved"   // Указатель сдвинулся
	PointerLeft    EventType = "PointerLeft"    // Указатель ушёл с холста
	PointerPressed EventType = "PointerPressed" // Клик
	Resized        EventType = "Resized"        // Окно изменило размер
	ThemeToggled   EventType = "ThemeToggled"   // Светлая/тёмная тема
	PauseToggled   EventType = "PauseToggled"   // Пауза
)

// PointerData — данные событий указателя
type PointerData struct {
	X, Y float64
}

// SizeData — данные события Resized
type SizeData struct {
	Width, Height int
}
