package source_test

import (
	"context"
	"errors"
	"testing"

	"verse-report/internal/domain/entity"
	srcUC "verse-report/internal/usecase/source"
)

type stubRepo struct {
	names map[string]bool
	slugs map[string]bool
	data  []*entity.Source
	err   error
}

func newStub() *stubRepo {
	return &stubRepo{names: map[string]bool{}, slugs: map[string]bool{}}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Source, error) {
	return s.data, s.err
}

func (s *stubRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	return s.names[name], s.err
}

func (s *stubRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	return s.slugs[slug], s.err
}

func (s *stubRepo) NextSortOrder(_ context.Context) (int, error) {
	return len(s.data) + 1, s.err
}

func (s *stubRepo) Create(_ context.Context, src *entity.Source) error {
	if s.err != nil {
		return s.err
	}
	src.ID = int64(len(s.data) + 1)
	s.data = append(s.data, src)
	s.names[src.Name] = true
	s.slugs[src.Slug] = true
	return nil
}

func (s *stubRepo) Exists(_ context.Context, _ int64) (bool, error) {
	return false, s.err
}

func TestCreate_DerivesSlug(t *testing.T) {
	repo := newStub()
	svc := &srcUC.Service{Repo: repo}

	src, err := svc.Create(context.Background(), srcUC.CreateInput{Name: "Discord - Pipeline"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if src.Slug != "discord-pipeline" {
		t.Fatalf("slug=%q", src.Slug)
	}
	if src.SortOrder != 1 || src.ID == 0 {
		t.Fatalf("src=%+v", src)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := newStub()
	repo.names["Spectrum"] = true
	svc := &srcUC.Service{Repo: repo}

	if _, err := svc.Create(context.Background(), srcUC.CreateInput{Name: "Spectrum"}); !errors.Is(err, srcUC.ErrDuplicateSource) {
		t.Fatalf("err=%v, want ErrDuplicateSource", err)
	}
}

func TestCreate_DuplicateSlug(t *testing.T) {
	repo := newStub()
	repo.slugs["spectrum"] = true
	svc := &srcUC.Service{Repo: repo}

	// different display name, same derived slug
	if _, err := svc.Create(context.Background(), srcUC.CreateInput{Name: "SPECTRUM!"}); !errors.Is(err, srcUC.ErrDuplicateSource) {
		t.Fatalf("err=%v, want ErrDuplicateSource", err)
	}
}

func TestCreate_EmptyName(t *testing.T) {
	svc := &srcUC.Service{Repo: newStub()}

	var vErr *entity.ValidationError
	_, err := svc.Create(context.Background(), srcUC.CreateInput{})
	if !errors.As(err, &vErr) {
		t.Fatalf("err=%v, want ValidationError", err)
	}
}
