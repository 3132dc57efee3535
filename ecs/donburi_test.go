package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/vellum"
)

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []vellum.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e vellum.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(vellum.InteractionEvent{
		Kind:   vellum.EventMouseDown,
		Msg:    vellum.MouseDown{X: 100, Y: 200},
		NodeID: 42,
	})
	store.EmitEvent(vellum.InteractionEvent{
		Kind: vellum.EventChar,
		Msg:  vellum.CharTyped{Char: 'x'},
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatal("events delivered before ProcessEvents")
	}
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Kind != vellum.EventMouseDown || e.NodeID != 42 {
		t.Errorf("event 0: %+v", e)
	}
	if md := received[0].Msg.(vellum.MouseDown); md.X != 100 || md.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", md.X, md.Y)
	}
	if c := received[1].Msg.(vellum.CharTyped); c.Char != 'x' {
		t.Errorf("event 1: %+v", received[1])
	}
}

// clickModel draws one 50x50 box.
type clickModel struct{}

func (clickModel) Update(int) vellum.ChangeView { return vellum.ChangeNone }

func (clickModel) View() *vellum.Node {
	return vellum.NewNode(vellum.NewRectangle(vellum.Px(0), vellum.Px(0), vellum.Px(50), vellum.Px(50)))
}

func TestDonburiStore_FromScene(t *testing.T) {
	world := donburi.NewWorld()
	comp := vellum.NewComp[int](clickModel{})
	scene := vellum.NewScene(comp, nil)
	scene.SetEntityStore(NewDonburiStore(world))
	scene.Resize(100, 100)
	scene.Update()

	var kinds []vellum.EventKind
	var hitID uint32
	InteractionEventType.Subscribe(world, func(w donburi.World, e vellum.InteractionEvent) {
		kinds = append(kinds, e.Kind)
		if e.Kind == vellum.EventMouseDown {
			hitID = e.NodeID
		}
	})

	scene.InjectMouseDown(10, 10)
	scene.Update()
	events.ProcessAllEvents(world)

	// The resize from the first frame was queued before subscribing.
	if len(kinds) != 2 || kinds[0] != vellum.EventResize || kinds[1] != vellum.EventMouseDown {
		t.Fatalf("kinds = %v", kinds)
	}
	if hitID != comp.View().ID {
		t.Errorf("NodeID = %d, want %d", hitID, comp.View().ID)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e vellum.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e vellum.InteractionEvent) {
		count2++
	})

	store.EmitEvent(vellum.InteractionEvent{Kind: vellum.EventDrawTick, Msg: vellum.DrawTick{}})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
