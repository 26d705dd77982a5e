package usecase

import (
	"context"
	"errors"
	"testing"

	testhelpers "github.com/polkiloo/givebox/internal/test"
)

func TestMessageUseCaseSubmit(t *testing.T) {
	repo := &testhelpers.MessageRepositoryStub{}
	uc := NewMessageUseCase(repo)

	saved, err := uc.Submit(context.Background(), "Eve", "eve@example.com", "hello")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if saved.ID == "" || saved.Name != "Eve" || saved.Email != "eve@example.com" || saved.Message != "hello" {
		t.Fatalf("unexpected message: %+v", saved)
	}
	if len(repo.Saved) != 1 {
		t.Fatalf("expected one stored message, got %d", len(repo.Saved))
	}
}

func TestMessageUseCaseSubmitAcceptsEmptyFields(t *testing.T) {
	repo := &testhelpers.MessageRepositoryStub{}
	uc := NewMessageUseCase(repo)

	if _, err := uc.Submit(context.Background(), "", "", ""); err != nil {
		t.Fatalf("expected empty message to be stored, got %v", err)
	}
	if len(repo.Saved) != 1 {
		t.Fatalf("expected one stored message, got %d", len(repo.Saved))
	}
}

func TestMessageUseCaseSubmitRepositoryError(t *testing.T) {
	repo := &testhelpers.MessageRepositoryStub{Err: errors.New("down")}
	uc := NewMessageUseCase(repo)

	if _, err := uc.Submit(context.Background(), "a", "b", "c"); err == nil {
		t.Fatal("expected repository error")
	}
}
