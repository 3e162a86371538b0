package editbuffer

import "testing"

func TestInsertAndContents(t *testing.T) {
	b := New()
	b.InsertString("hello")
	if b.Contents() != "hello" {
		t.Fatalf("unexpected contents %q", b.Contents())
	}
	if b.Cursor() != 5 {
		t.Fatalf("expected cursor 5, got %d", b.Cursor())
	}
}

func TestInsertMidBuffer(t *testing.T) {
	b := New()
	b.InsertString("hllo")
	b.MoveLeft()
	b.MoveLeft()
	b.MoveLeft()
	b.Insert('e')
	if b.Contents() != "hello" {
		t.Fatalf("unexpected contents %q", b.Contents())
	}
	if b.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", b.Cursor())
	}
}

func TestBackspace(t *testing.T) {
	b := New()
	b.InsertString("ab")
	b.Backspace()
	if b.Contents() != "a" || b.Cursor() != 1 {
		t.Fatalf("unexpected state %q cursor %d", b.Contents(), b.Cursor())
	}
	b.Backspace()
	b.Backspace() // no-op at start
	if b.Contents() != "" || b.Cursor() != 0 {
		t.Fatalf("unexpected state %q cursor %d", b.Contents(), b.Cursor())
	}
}

func TestDeleteForward(t *testing.T) {
	b := New()
	b.InsertString("abc")
	b.MoveLeft()
	b.MoveLeft()
	b.Delete()
	if b.Contents() != "ac" || b.Cursor() != 1 {
		t.Fatalf("unexpected state %q cursor %d", b.Contents(), b.Cursor())
	}
	b.MoveRight()
	b.Delete() // no-op at end
	if b.Contents() != "ac" || b.Cursor() != 2 {
		t.Fatalf("unexpected state %q cursor %d", b.Contents(), b.Cursor())
	}
}

func TestCursorBounds(t *testing.T) {
	b := New()
	b.MoveLeft()
	b.MoveRight()
	if b.Cursor() != 0 {
		t.Fatalf("cursor escaped empty buffer: %d", b.Cursor())
	}
	b.InsertString("ab")
	b.MoveRight()
	if b.Cursor() != 2 {
		t.Fatalf("cursor exceeded content length: %d", b.Cursor())
	}
}

func TestNewlineAndVerticalMovement(t *testing.T) {
	b := New()
	b.InsertString("first line")
	b.Newline()
	b.InsertString("second")
	if b.Contents() != "first line\nsecond" {
		t.Fatalf("unexpected contents %q", b.Contents())
	}

	// Cursor at end of "second" (col 6); moving up clamps to "first line" col 6.
	b.MoveUp()
	if b.Cursor() != 6 {
		t.Fatalf("expected cursor 6 after MoveUp, got %d", b.Cursor())
	}
	b.MoveDown()
	if b.Cursor() != 17 {
		t.Fatalf("expected cursor 17 after MoveDown, got %d", b.Cursor())
	}
}

func TestMoveUpClampsColumn(t *testing.T) {
	b := New()
	b.InsertString("ab")
	b.Newline()
	b.InsertString("longer line")
	b.MoveUp()
	// Column 11 clamps to the end of "ab".
	if b.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", b.Cursor())
	}
}

func TestMoveDownPastLastLine(t *testing.T) {
	b := New()
	b.InsertString("only")
	b.MoveLeft()
	b.MoveLeft()
	b.MoveDown()
	if b.Cursor() != 4 {
		t.Fatalf("expected cursor at end, got %d", b.Cursor())
	}
}

func TestClear(t *testing.T) {
	b := New()
	b.InsertString("something")
	b.Clear()
	if b.Contents() != "" || b.Cursor() != 0 || b.Len() != 0 {
		t.Fatalf("clear left state behind: %q cursor %d", b.Contents(), b.Cursor())
	}
}
