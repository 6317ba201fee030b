package collections

import "testing"

func TestStack_PushPop(t *testing.T) {
	var s Stack[int]

	if s.Len() != 0 {
		t.Fatalf("zero-value stack should be empty, len = %d", s.Len())
	}

	s.Push(1)
	s.Push(2)
	s.Push(3)

	if top, ok := s.Peek(); !ok || top != 3 {
		t.Errorf("Peek() = %d, %v; want 3, true", top, ok)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d after Peek, want 3", s.Len())
	}

	for want := 3; want >= 1; want-- {
		v, ok := s.Pop()
		if !ok || v != want {
			t.Errorf("Pop() = %d, %v; want %d, true", v, ok, want)
		}
	}

	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack should report false")
	}
	if _, ok := s.Peek(); ok {
		t.Error("Peek on empty stack should report false")
	}
}
