package history

import "testing"

func TestRingBufferWrapsAtCapacity(t *testing.T) {
	rb := NewRingBuffer(3)
	for i := 0; i < 5; i++ {
		rb.Add(DaySummary{Day: i})
	}
	if rb.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", rb.Size())
	}
	all := rb.GetAll()
	want := []int{2, 3, 4}
	for i, s := range all {
		if s.Day != want[i] {
			t.Errorf("GetAll()[%d].Day = %d, want %d", i, s.Day, want[i])
		}
	}
}

func TestRingBufferBelowCapacityPreservesOrder(t *testing.T) {
	rb := NewRingBuffer(10)
	rb.Add(DaySummary{Day: 0})
	rb.Add(DaySummary{Day: 1})
	all := rb.GetAll()
	if len(all) != 2 || all[0].Day != 0 || all[1].Day != 1 {
		t.Errorf("unexpected order: %+v", all)
	}
}
