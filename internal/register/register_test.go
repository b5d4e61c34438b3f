package register

import "testing"

func TestNewStoreSeedsSearchRegister(t *testing.T) {
	s := NewStore()
	if got := s.Get('/'); got != "" {
		t.Errorf("Get('/') on fresh store = %q, want empty", got)
	}
}

func TestSetGet(t *testing.T) {
	s := NewStore()
	s.Set('a', "hello")
	if got := s.Get('a'); got != "hello" {
		t.Errorf("Get('a') = %q, want hello", got)
	}
}

func TestGetUnsetRegisterIsEmpty(t *testing.T) {
	s := NewStore()
	if got := s.Get('z'); got != "" {
		t.Errorf("Get('z') = %q, want empty", got)
	}
}

func TestSetLastSearch(t *testing.T) {
	s := NewStore()
	s.SetLastSearch("TODO")
	if got := s.Get('/'); got != "TODO" {
		t.Errorf("Get('/') after SetLastSearch = %q, want TODO", got)
	}
}

func TestZeroValueStoreSetDoesNotPanic(t *testing.T) {
	var s Store
	s.Set('/', "x")
	if got := s.Get('/'); got != "x" {
		t.Errorf("Get('/') = %q, want x", got)
	}
}
