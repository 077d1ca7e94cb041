package contact

import (
	"context"
	"errors"
	"testing"

	"pressroom/internal/domain/entity"
)

type fakeContactRepo struct {
	active []*entity.Contact
	err    error
}

func (f *fakeContactRepo) Create(context.Context, *entity.Contact) error { return nil }
func (f *fakeContactRepo) ListActive(context.Context) ([]*entity.Contact, error) {
	return f.active, f.err
}

func TestListActive(t *testing.T) {
	repo := &fakeContactRepo{active: []*entity.Contact{
		{ID: 2, Email: "b@example.com"},
		{ID: 1, Email: "a@example.com"},
	}}
	svc := &Service{Repo: repo}

	got, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
}

func TestListActive_RepoError(t *testing.T) {
	svc := &Service{Repo: &fakeContactRepo{err: errors.New("connection refused")}}

	if _, err := svc.ListActive(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
