package transmission_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"verse-report/internal/common/pagination"
	"verse-report/internal/domain/entity"
	"verse-report/internal/pkg/filter"
	"verse-report/internal/repository"
	txUC "verse-report/internal/usecase/transmission"
)

/* ───────── stubs ───────── */

// minimal in-memory TransmissionRepository
type stubRepo struct {
	data     map[string]*repository.TransmissionRow
	tags     map[string][]repository.TransmissionTagRef
	knownTag map[int64]bool
	lastQ    repository.TransmissionQuery
	err      error
}

func newStub() *stubRepo {
	return &stubRepo{
		data:     map[string]*repository.TransmissionRow{},
		tags:     map[string][]repository.TransmissionTagRef{},
		knownTag: map[int64]bool{},
	}
}

func (s *stubRepo) ListPublished(_ context.Context, q repository.TransmissionQuery, offset, limit int) ([]repository.TransmissionRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastQ = q
	var out []repository.TransmissionRow
	for _, r := range s.data {
		if r.Transmission.PublishedAt != nil {
			out = append(out, *r)
		}
	}
	// newest first, id as tiebreak, same as the postgres adapter
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Transmission, out[j].Transmission
		if !a.PublishedAt.Equal(*b.PublishedAt) {
			return a.PublishedAt.After(*b.PublishedAt)
		}
		return a.ID > b.ID
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubRepo) CountPublished(_ context.Context, q repository.TransmissionQuery) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.lastQ = q
	var n int64
	for _, r := range s.data {
		if r.Transmission.PublishedAt != nil {
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) TagsFor(_ context.Context, ids []string) (map[string][]repository.TransmissionTagRef, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := map[string][]repository.TransmissionTagRef{}
	for _, id := range ids {
		if refs, ok := s.tags[id]; ok {
			out[id] = refs
		}
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id string) (*repository.TransmissionRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data[id], nil
}

func (s *stubRepo) Create(_ context.Context, t *entity.Transmission, tagIDs []int64) error {
	if s.err != nil {
		return s.err
	}
	s.data[t.ID] = &repository.TransmissionRow{Transmission: t}
	for _, id := range tagIDs {
		s.tags[t.ID] = append(s.tags[t.ID], repository.TransmissionTagRef{TransmissionID: t.ID, TagID: id})
	}
	return nil
}

func (s *stubRepo) Update(_ context.Context, t *entity.Transmission, tagIDs []int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[t.ID]; !ok {
		return entity.ErrNotFound
	}
	s.data[t.ID] = &repository.TransmissionRow{Transmission: t}
	s.tags[t.ID] = nil
	for _, id := range tagIDs {
		s.tags[t.ID] = append(s.tags[t.ID], repository.TransmissionTagRef{TransmissionID: t.ID, TagID: id})
	}
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	delete(s.tags, id)
	return nil
}

func (s *stubRepo) FilterExistingTagIDs(_ context.Context, ids []int64) ([]int64, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []int64
	for _, id := range ids {
		if s.knownTag[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *stubRepo) ListPublishDates(_ context.Context) ([]time.Time, error) {
	return nil, s.err
}

// minimal SourceRepository with a fixed id set
type stubSources struct {
	known map[int64]bool
}

func (s *stubSources) List(_ context.Context) ([]*entity.Source, error) { return nil, nil }

func (s *stubSources) ExistsByName(_ context.Context, _ string) (bool, error) { return false, nil }

func (s *stubSources) ExistsBySlug(_ context.Context, _ string) (bool, error) { return false, nil }

func (s *stubSources) NextSortOrder(_ context.Context) (int, error) { return 1, nil }

func (s *stubSources) Create(_ context.Context, _ *entity.Source) error { return nil }

func (s *stubSources) Exists(_ context.Context, id int64) (bool, error) { return s.known[id], nil }

func newService(repo *stubRepo) *txUC.Service {
	return &txUC.Service{
		Repo:    repo,
		Sources: &stubSources{known: map[int64]bool{1: true}},
		Loc:     time.UTC,
	}
}

func validCreate() txUC.CreateInput {
	published := time.Date(2026, 5, 12, 9, 0, 0, 0, time.UTC)
	return txUC.CreateInput{
		Title:       "Ironclad revealed",
		SubTitle:    "CitizenCon reveal",
		Content:     "body",
		Type:        "OFFICIAL",
		SourceID:    1,
		SourceURL:   "https://example.com/reveal",
		PublishedAt: &published,
		PublisherID: "user-1",
		TagIDs:      []int64{4, 999},
	}
}

/* ───────── Create ───────── */

func TestCreate_DropsUnknownTags(t *testing.T) {
	repo := newStub()
	repo.knownTag[4] = true
	svc := newService(repo)

	id, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if len(repo.tags[id]) != 1 || repo.tags[id][0].TagID != 4 {
		t.Fatalf("tags=%v, want only tag 4", repo.tags[id])
	}
	if repo.data[id].Transmission.Status != entity.StatusPublished {
		t.Fatalf("status=%s, want PUBLISHED", repo.data[id].Transmission.Status)
	}
}

func TestCreate_DraftWithoutPublishDate(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	in := validCreate()
	in.PublishedAt = nil
	id, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if repo.data[id].Transmission.Status != entity.StatusDraft {
		t.Fatalf("status=%s, want DRAFT", repo.data[id].Transmission.Status)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := newService(newStub())

	tests := []struct {
		name   string
		mutate func(*txUC.CreateInput)
	}{
		{"empty title", func(in *txUC.CreateInput) { in.Title = "" }},
		{"empty subtitle", func(in *txUC.CreateInput) { in.SubTitle = "" }},
		{"unknown type", func(in *txUC.CreateInput) { in.Type = "RUMOR" }},
		{"bad source url", func(in *txUC.CreateInput) { in.SourceURL = "ftp://nope" }},
		{"missing publisher", func(in *txUC.CreateInput) { in.PublisherID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreate()
			tt.mutate(&in)
			if _, err := svc.Create(context.Background(), in); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreate_UnknownSource(t *testing.T) {
	svc := newService(newStub())

	in := validCreate()
	in.SourceID = 77
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, txUC.ErrUnknownSource) {
		t.Fatalf("err=%v, want ErrUnknownSource", err)
	}
}

/* ───────── ListPublished ───────── */

func TestListPublished_YearFilterBounds(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	year := 2026
	f := filter.Filter{Year: &year}
	params := pagination.Params{Page: 1, Limit: 20}
	if _, err := svc.ListPublished(context.Background(), f, params); err != nil {
		t.Fatalf("ListPublished err=%v", err)
	}

	wantFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	if repo.lastQ.PublishedFrom == nil || !repo.lastQ.PublishedFrom.Equal(wantFrom) {
		t.Fatalf("from=%v, want %v", repo.lastQ.PublishedFrom, wantFrom)
	}
	if repo.lastQ.PublishedTo == nil || !repo.lastQ.PublishedTo.Equal(wantTo) {
		t.Fatalf("to=%v, want %v", repo.lastQ.PublishedTo, wantTo)
	}
}

func TestListPublished_YearFilterRespectsTimezone(t *testing.T) {
	repo := newStub()
	svc := newService(repo)
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}
	svc.Loc = loc

	year := 2026
	params := pagination.Params{Page: 1, Limit: 20}
	if _, err := svc.ListPublished(context.Background(), filter.Filter{Year: &year}, params); err != nil {
		t.Fatalf("ListPublished err=%v", err)
	}
	if got := repo.lastQ.PublishedFrom.Location(); got != loc {
		t.Fatalf("bound location=%v, want %v", got, loc)
	}
}

func TestListPublished_AssemblesTags(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	published := time.Date(2026, 5, 12, 9, 0, 0, 0, time.UTC)
	repo.data["tx-1"] = &repository.TransmissionRow{
		Transmission: &entity.Transmission{ID: "tx-1", Title: "x", PublishedAt: &published},
		SourceName:   "Spectrum",
	}
	repo.tags["tx-1"] = []repository.TransmissionTagRef{
		{TransmissionID: "tx-1", TagID: 4, Name: "Ironclad", Slug: "ironclad", CategorySlug: "ships"},
	}

	got, err := svc.ListPublished(context.Background(), filter.Filter{}, pagination.Params{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("ListPublished err=%v", err)
	}
	if len(got.Data) != 1 || len(got.Data[0].Tags) != 1 {
		t.Fatalf("data=%+v", got.Data)
	}
	if got.Data[0].Tags[0].CategorySlug != "ships" {
		t.Fatalf("tag=%+v", got.Data[0].Tags[0])
	}
	if got.Pagination.Total != 1 || got.Pagination.HasNextPage {
		t.Fatalf("pagination=%+v", got.Pagination)
	}
}

func TestListPublished_PagesConcatenate(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	// five rows, two sharing a timestamp so the id tiebreak matters
	base := time.Date(2026, 5, 12, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		published := base.Add(-time.Duration(i/2) * 24 * time.Hour)
		id := fmt.Sprintf("tx-%d", i)
		repo.data[id] = &repository.TransmissionRow{
			Transmission: &entity.Transmission{ID: id, Title: id, PublishedAt: &published},
		}
	}

	var got []string
	for page := 1; ; page++ {
		res, err := svc.ListPublished(context.Background(), filter.Filter{}, pagination.Params{Page: page, Limit: 2})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		for _, v := range res.Data {
			got = append(got, v.Transmission.ID)
		}
		if !res.Pagination.HasNextPage {
			break
		}
	}

	if len(got) != 5 {
		t.Fatalf("concatenated %d items, want 5: %v", len(got), got)
	}
	seen := map[string]bool{}
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate %s across pages: %v", id, got)
		}
		seen[id] = true
	}
	want := []string{"tx-1", "tx-0", "tx-3", "tx-2", "tx-4"}
	for i, id := range want {
		if got[i] != id {
			t.Fatalf("order=%v, want %v", got, want)
		}
	}
}

/* ───────── Get / Update / Delete ───────── */

func TestGet_NotFound(t *testing.T) {
	svc := newService(newStub())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, txUC.ErrTransmissionNotFound) {
		t.Fatalf("err=%v, want ErrTransmissionNotFound", err)
	}
}

func TestGet_DraftIsHidden(t *testing.T) {
	repo := newStub()
	repo.data["draft-1"] = &repository.TransmissionRow{
		Transmission: &entity.Transmission{
			ID:     "draft-1",
			Title:  "unannounced ship",
			Status: entity.StatusDraft,
		},
	}
	svc := newService(repo)

	if _, err := svc.Get(context.Background(), "draft-1"); !errors.Is(err, txUC.ErrTransmissionNotFound) {
		t.Fatalf("err=%v, want ErrTransmissionNotFound for unpublished transmission", err)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newStub()
	repo.knownTag[9] = true
	svc := newService(repo)

	id, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatal(err)
	}

	newTitle := "Ironclad delayed"
	if err := svc.Update(context.Background(), txUC.UpdateInput{
		ID:     id,
		Title:  &newTitle,
		TagIDs: []int64{9},
	}); err != nil {
		t.Fatalf("Update err=%v", err)
	}

	got := repo.data[id].Transmission
	if got.Title != newTitle {
		t.Fatalf("title=%q", got.Title)
	}
	if got.SubTitle != "CitizenCon reveal" {
		t.Fatalf("subtitle clobbered: %q", got.SubTitle)
	}
	if len(repo.tags[id]) != 1 || repo.tags[id][0].TagID != 9 {
		t.Fatalf("tags=%v, want replaced with tag 9", repo.tags[id])
	}
}

func TestUpdate_RejectsEmptySubtitle(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	id, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatal(err)
	}

	empty := ""
	err = svc.Update(context.Background(), txUC.UpdateInput{ID: id, SubTitle: &empty})
	var verr *entity.ValidationError
	if !errors.As(err, &verr) || verr.Field != "subtitle" {
		t.Fatalf("err=%v, want subtitle validation error", err)
	}
	if repo.data[id].Transmission.SubTitle != "CitizenCon reveal" {
		t.Fatalf("subtitle clobbered: %q", repo.data[id].Transmission.SubTitle)
	}
}

func TestUpdate_KeepsTagsWhenOmitted(t *testing.T) {
	repo := newStub()
	repo.knownTag[4] = true
	svc := newService(repo)

	id, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatal(err)
	}

	highlight := true
	if err := svc.Update(context.Background(), txUC.UpdateInput{ID: id, IsHighlight: &highlight}); err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if len(repo.tags[id]) != 1 || repo.tags[id][0].TagID != 4 {
		t.Fatalf("tags=%v, want tag 4 preserved", repo.tags[id])
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := newService(newStub())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, txUC.ErrTransmissionNotFound) {
		t.Fatalf("err=%v, want ErrTransmissionNotFound", err)
	}
}
