package ecs

// Commands buffers changes that should only be applied once every system of
// the frame has run. Kills are already deferred by the Registry; Commands
// extends that to component edits and arbitrary callbacks.
type Commands struct {
	registry *Registry
	kills    []Entity
	removes  []componentCommand
	adds     []componentCommand
	defers   []func()
}

type componentCommand struct {
	entity Entity
	apply  func()
}

func newCommands(registry *Registry) *Commands {
	return &Commands{registry: registry}
}

// Defer queues fn to run after the other buffered commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Kill queues an entity kill.
func (c *Commands) Kill(e Entity) {
	c.kills = append(c.kills, e)
}

// DeferAddComponent queues AddComponent(e, value).
func DeferAddComponent[T any](c *Commands, e Entity, value T) {
	c.adds = append(c.adds, componentCommand{
		entity: e,
		apply:  func() { AddComponent(e, value) },
	})
}

// DeferRemoveComponent queues RemoveComponent[T](e).
func DeferRemoveComponent[T any](c *Commands, e Entity) {
	c.removes = append(c.removes, componentCommand{
		entity: e,
		apply:  func() { RemoveComponent[T](e) },
	})
}

// Len returns the number of buffered commands.
func (c *Commands) Len() int {
	return len(c.kills) + len(c.removes) + len(c.adds) + len(c.defers)
}

// Flush applies buffered commands in order kills, removes, adds, defers and
// resets the buffer. Component edits on entities killed in the same buffer
// are dropped.
func (c *Commands) Flush() {
	killed := make(map[EntityId]bool, len(c.kills))
	for _, e := range c.kills {
		c.registry.KillEntity(e)
		killed[e.id] = true
	}

	for _, cmd := range c.removes {
		if !killed[cmd.entity.id] {
			cmd.apply()
		}
	}

	for _, cmd := range c.adds {
		if !killed[cmd.entity.id] {
			cmd.apply()
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.kills)
	clear(c.removes)
	clear(c.adds)
	clear(c.defers)
	c.kills = c.kills[:0]
	c.removes = c.removes[:0]
	c.adds = c.adds[:0]
	c.defers = c.defers[:0]
}
