package pipeline

import "testing"

func TestFanoutDeliversInRegistrationOrder(t *testing.T) {
	var order []string
	var f Fanout[int]

	f.AddListener(ListenerFunc[int](func(int) { order = append(order, "first") }))
	f.AddListener(ListenerFunc[int](func(int) { order = append(order, "second") }))
	f.AddListener(ListenerFunc[int](func(int) { order = append(order, "third") }))

	f.Publish(1)

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestFanoutSynchronousCascade(t *testing.T) {
	var downstream Fanout[int]
	var received []int
	downstream.AddListener(ListenerFunc[int](func(v int) { received = append(received, v) }))

	var upstream Fanout[int]
	upstream.AddListener(ListenerFunc[int](func(v int) {
		downstream.Publish(v * 2)
		received = append(received, v)
	}))

	upstream.Publish(5)

	want := []int{10, 5}
	if len(received) != len(want) || received[0] != want[0] || received[1] != want[1] {
		t.Fatalf("got %v, want %v (downstream must complete before upstream listener returns)", received, want)
	}
}

func TestFanoutNoListenersIsNoop(t *testing.T) {
	var f Fanout[string]
	f.Publish("unobserved")
}
