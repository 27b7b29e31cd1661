package lex

import "testing"

func TestStream(t *testing.T) {
	s := NewStream(Lex("test", "a b c"))

	if tok := s.Next(); tok.Val != "a" {
		t.Fatalf("got %s expected a", tok.Val)
	}
	if tok := s.LookAhead(0); tok.Val != "b" {
		t.Errorf("got %s expected b", tok.Val)
	}
	if tok := s.LookAhead(1); tok.Val != "c" {
		t.Errorf("got %s expected c", tok.Val)
	}
	if tok := s.LookAhead(10); tok.Kind != EOF {
		t.Errorf("look-ahead past the end should yield EOF, got %s", tok.Kind)
	}

	mark := s.Mark()
	s.Next()
	s.Next()
	if tok := s.LookAhead(0); tok.Kind != EOF {
		t.Fatalf("got %s expected EOF", tok.Kind)
	}
	s.Restore(mark)
	if tok := s.Next(); tok.Val != "b" {
		t.Errorf("restore did not rewind, got %s", tok.Val)
	}
}

func TestStreamStickyEOF(t *testing.T) {
	s := NewStream(Lex("test", "a"))
	s.Next()
	for i := 0; i < 3; i++ {
		if tok := s.Next(); tok.Kind != EOF {
			t.Fatalf("got %s expected EOF", tok.Kind)
		}
	}
}

func TestStreamMisuse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic on a non-EOF-terminated slice")
		}
	}()
	NewStream([]Token{{Kind: IDENT, Val: "a"}})
}

func TestStreamRestoreForward(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic on a forward restore")
		}
	}()
	s := NewStream(Lex("test", "a b"))
	s.Restore(1)
}
