package vdom

import (
	"sync"
	"testing"
)

func TestRefLifecycle(t *testing.T) {
	ref := NewRef()
	if ref.IsSet() || ref.Current() != nil {
		t.Fatal("new ref should be empty")
	}

	node := Div()
	ref.Set(node)
	if !ref.IsSet() || ref.Current() != node {
		t.Fatal("ref should hold node after Set")
	}

	ref.Clear()
	if ref.IsSet() || ref.Current() != nil {
		t.Fatal("ref should be empty after Clear")
	}
}

func TestRefNilSafe(t *testing.T) {
	var ref *Ref
	ref.Set(Div())
	ref.Clear()
	if ref.IsSet() || ref.Current() != nil {
		t.Error("nil ref should behave as empty")
	}
}

func TestRefConcurrentAccess(t *testing.T) {
	ref := NewRef()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ref.Set(Span())
		}()
		go func() {
			defer wg.Done()
			_ = ref.Current()
		}()
	}
	wg.Wait()
	if !ref.IsSet() {
		t.Error("ref should be set")
	}
}
