package eventbus_test

import (
	"fmt"

	"github.com/plus3/ecsreg/eventbus"
)

type Damage struct {
	Target int
	Amount int
}

type Shield struct {
	Absorb int
}

func (s *Shield) OnDamage(e *Damage) {
	absorbed := min(s.Absorb, e.Amount)
	e.Amount -= absorbed
	s.Absorb -= absorbed
}

// Example shows handlers bound to owners through method values. The shield
// runs first and reduces the damage the logger then sees.
func Example() {
	bus := eventbus.New()
	shield := &Shield{Absorb: 3}

	eventbus.Subscribe(bus, shield.OnDamage)
	eventbus.Subscribe(bus, func(e *Damage) {
		fmt.Printf("entity %d takes %d damage\n", e.Target, e.Amount)
	})

	eventbus.Emit(bus, Damage{Target: 7, Amount: 5})
	eventbus.Emit(bus, Damage{Target: 7, Amount: 5})

	// Output:
	// entity 7 takes 2 damage
	// entity 7 takes 5 damage
}
