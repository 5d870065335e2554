package reveal

// EntityStore is the interface for optional ECS integration.
// When set on a Registry, trigger state changes are forwarded to it.
type EntityStore interface {
	EmitEvent(event TriggerEvent)
}

// TriggerEvent carries a trigger state change for the ECS bridge.
type TriggerEvent struct {
	Type     TriggerEventType
	EntityID uint32
	// NodeName is the Name of the triggering node.
	NodeName string
	// ID is the element's data-reveal-id, if any.
	ID     string
	Params AnimationParams
}

// trigger pairs a descriptor with its mutable state.
type trigger struct {
	desc *Descriptor
	pos  Position
}

// next returns the position the trigger moves to given the evaluator result,
// and whether that is a change. Leaving is blocked only by Once.
func (t *trigger) next(visible bool) (Position, bool) {
	switch {
	case t.pos == Untriggered && visible:
		return Triggered, true
	case t.pos == Triggered && !visible && !t.desc.Once:
		return Untriggered, true
	}
	return t.pos, false
}

// hasClasses reports whether every animate class of d is on its node. A
// descriptor without classes never reports true.
func hasClasses(d *Descriptor) bool {
	if len(d.Classes) == 0 {
		return false
	}
	for _, c := range d.Classes {
		if !d.Node.HasClass(c) {
			return false
		}
	}
	return true
}

// transition applies the evaluator result to t. Side effects run only when
// the position changes, so re-evaluating an unchanged viewport is a no-op.
func (r *Registry) transition(t *trigger, visible bool) bool {
	pos, changed := t.next(visible)
	if !changed {
		return false
	}
	t.pos = pos

	d := t.desc
	n := d.Node
	ctx := TriggerContext{
		Node:     n,
		EntityID: n.EntityID,
		UserData: n.UserData,
		ID:       d.ID,
		Params:   d.Params,
		Mirror:   d.Mirror,
	}

	evt := EventEnter
	if pos == Triggered {
		for _, c := range d.Classes {
			n.AddClass(c)
		}
		if r.effect != nil {
			r.effect.Enter(d)
		}
		if n.OnEnter != nil {
			n.OnEnter(ctx)
		}
	} else {
		evt = EventLeave
		for _, c := range d.Classes {
			n.RemoveClass(c)
		}
		if r.effect != nil {
			r.effect.Leave(d)
		}
		if n.OnLeave != nil {
			n.OnLeave(ctx)
		}
	}

	if r.store != nil {
		r.store.EmitEvent(TriggerEvent{
			Type:     evt,
			EntityID: n.EntityID,
			NodeName: n.Name,
			ID:       d.ID,
			Params:   d.Params,
		})
	}
	return true
}
