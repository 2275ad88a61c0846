package calc

import (
	"math/rand"
	"sync"
	"time"
)

// Calculator мок-движок астрологических расчётов: деривация карты, скоринг
// совместимости, генерация прогнозов и каталога транзитов. Настоящих эфемерид
// здесь нет, значительная часть значений разыгрывается случайно.
//
// Источник случайности инжектируется: в проде — несидированный, в тестах —
// с фиксированным seed для точных проверок.
type Calculator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New создаёт калькулятор с переданным источником случайности.
// nil означает несидированный источник.
func New(rng *rand.Rand) *Calculator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Calculator{rng: rng}
}

// intn случайное целое в [0, n), безопасно для конкурентных вызовов
func (c *Calculator) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

// pick случайный элемент списка
func (c *Calculator) pick(list []string) string {
	return list[c.intn(len(list))]
}
