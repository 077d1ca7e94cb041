package article

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pressroom/internal/domain/entity"
)

type fakeRepo struct {
	articles  map[string]*entity.Article
	nextID    int64
	updated   *entity.Article
	deletedID int64
	existsErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{articles: map[string]*entity.Article{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, a *entity.Article) error {
	a.ID = f.nextID
	f.nextID++
	f.articles[a.Slug] = a
	return nil
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	return f.articles[slug], nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*entity.Article, error) {
	for _, a := range f.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Update(_ context.Context, a *entity.Article) error {
	f.updated = a
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func (f *fakeRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.articles[slug]
	return ok, nil
}

type fakeImages struct {
	err    error
	called []string
}

func (f *fakeImages) Check(_ context.Context, url string) error {
	f.called = append(f.called, url)
	return f.err
}

func validInput() Input {
	return Input{
		AuthorName:    "Jane Doe",
		AuthorTwitter: "@janedoe",
		AuthorFBID:    "",
		Title:         "My Interesting Title",
		Description:   "A short description.",
		Image:         "https://example.com/image.png",
		Section:       "tech",
		Tags:          "go, http, postgres",
		Body:          "Body text.",
	}
}

func newService(repo *fakeRepo, images *fakeImages) *Service {
	return &Service{Repo: repo, Images: images}
}

func fieldOf(t *testing.T, err error) *entity.ValidationError {
	t.Helper()
	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	return ve
}

func TestCreate_OK(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	got, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if got.ID == 0 {
		t.Error("expected assigned ID")
	}
	if got.Slug != "my-interesting-title" {
		t.Errorf("slug=%q, want my-interesting-title", got.Slug)
	}
	if got.Section != "TECH" {
		t.Errorf("section=%q, want TECH", got.Section)
	}
	if got.AuthorFBID != nil {
		t.Errorf("empty fbid should store as nil, got %v", *got.AuthorFBID)
	}
	if got.CreatedAt.IsZero() || !got.CreatedAt.Equal(got.ModifiedAt) {
		t.Errorf("timestamps: created=%v modified=%v", got.CreatedAt, got.ModifiedAt)
	}
}

func TestCreate_FBIDKept(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	in := validInput()
	in.AuthorFBID = "page123"

	got, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.AuthorFBID == nil || *got.AuthorFBID != "page123" {
		t.Errorf("fbid=%v, want page123", got.AuthorFBID)
	}
}

func TestCreate_ValidationOrder(t *testing.T) {
	long := func(n int) string { return strings.Repeat("x", n) }

	tests := []struct {
		name     string
		mutate   func(*Input)
		imageErr error
		field    string
		message  string
	}{
		{
			name:    "author_name too long",
			mutate:  func(in *Input) { in.AuthorName = "J" + long(100) },
			field:   "author_name",
			message: "Length cannot exceed 100 characters.",
		},
		{
			name:    "author_name bad format",
			mutate:  func(in *Input) { in.AuthorName = "J" },
			field:   "author_name",
			message: "Input is in the wrong format.",
		},
		{
			name:    "author_twitter too long",
			mutate:  func(in *Input) { in.AuthorTwitter = long(21) },
			field:   "author_twitter",
			message: "Length cannot exceed 20 characters.",
		},
		{
			name:    "author_fbid too long",
			mutate:  func(in *Input) { in.AuthorFBID = long(21) },
			field:   "author_fbid",
			message: "Length cannot exceed 20 characters.",
		},
		{
			name:    "title too long",
			mutate:  func(in *Input) { in.Title = long(76) },
			field:   "title",
			message: "Length cannot exceed 75 characters.",
		},
		{
			name:    "description too long",
			mutate:  func(in *Input) { in.Description = long(161) },
			field:   "description",
			message: "Length cannot exceed 160 characters.",
		},
		{
			name:    "image too long",
			mutate:  func(in *Input) { in.Image = "https://" + long(255) },
			field:   "image",
			message: "Length cannot exceed 255 characters.",
		},
		{
			name:     "image unreachable",
			mutate:   func(in *Input) {},
			imageErr: errors.New("boom"),
			field:    "image",
			message:  "Cannot load image.",
		},
		{
			name:    "section too long",
			mutate:  func(in *Input) { in.Section = long(51) },
			field:   "section",
			message: "Length cannot exceed 50 characters.",
		},
		{
			name:    "tags too long",
			mutate:  func(in *Input) { in.Tags = long(256) },
			field:   "tags",
			message: "Length cannot exceed 255 characters.",
		},
		{
			name:    "tags not a list",
			mutate:  func(in *Input) { in.Tags = "a. list. of. tags" },
			field:   "tags",
			message: "Error parsing tags. Make sure they are in a comma-separated list. (Example: this, is, what, right, looks, like)",
		},
		{
			name:    "empty body",
			mutate:  func(in *Input) { in.Body = "" },
			field:   "body",
			message: "There is nothing in the article body.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newService(repo, &fakeImages{err: tt.imageErr})

			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			ve := fieldOf(t, err)
			if ve.Field != tt.field {
				t.Errorf("field=%q, want %q", ve.Field, tt.field)
			}
			if ve.Message != tt.message {
				t.Errorf("message=%q, want %q", ve.Message, tt.message)
			}
		})
	}
}

func TestCreate_DuplicateTitle(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("first Create err=%v", err)
	}

	_, err := svc.Create(context.Background(), validInput())
	ve := fieldOf(t, err)
	if ve.Field != "title" || ve.Message != "The title is not unique." {
		t.Errorf("got %q/%q", ve.Field, ve.Message)
	}
}

// A request with both a duplicate title and an empty body reports the body
// error: uniqueness is the last check in create mode.
func TestCreate_BodyErrorBeforeUniqueness(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("first Create err=%v", err)
	}

	in := validInput()
	in.Body = ""
	_, err := svc.Create(context.Background(), in)
	if ve := fieldOf(t, err); ve.Field != "body" {
		t.Errorf("field=%q, want body", ve.Field)
	}
}

func TestCreate_TagsLengthBeforeParse(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	// 256 chars with no ", " separator: the length error must win.
	in := validInput()
	in.Tags = strings.Repeat("x", 256)

	_, err := svc.Create(context.Background(), in)
	ve := fieldOf(t, err)
	if ve.Message != "Length cannot exceed 255 characters." {
		t.Errorf("message=%q, want length error", ve.Message)
	}
}

func TestGetBySlug_NotFound(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeImages{})

	_, err := svc.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("err=%v, want ErrArticleNotFound", err)
	}
}

func TestUpdate_TitleUnchangedKeepsSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	createdAt := created.CreatedAt
	time.Sleep(5 * time.Millisecond)

	in := validInput()
	in.Body = "Revised body."

	got, err := svc.Update(context.Background(), "my-interesting-title", in)
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Slug != "my-interesting-title" {
		t.Errorf("slug=%q, want unchanged", got.Slug)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Error("created_at must not change on update")
	}
	if !got.ModifiedAt.After(createdAt) {
		t.Error("modified_at must advance on update")
	}
	if got.Body != "Revised body." {
		t.Errorf("body=%q", got.Body)
	}
	if repo.updated == nil {
		t.Error("repository update was not called")
	}
}

func TestUpdate_TitleChangeRecomputesSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	in := validInput()
	in.Title = "A Brand New Title"

	got, err := svc.Update(context.Background(), "my-interesting-title", in)
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Slug != "a-brand-new-title" {
		t.Errorf("slug=%q, want a-brand-new-title", got.Slug)
	}
}

func TestUpdate_TitleCollision(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	other := validInput()
	other.Title = "Another Title"
	if _, err := svc.Create(context.Background(), other); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	in := validInput()
	in.Title = "Another Title"

	_, err := svc.Update(context.Background(), "my-interesting-title", in)
	ve := fieldOf(t, err)
	if ve.Field != "title" || ve.Message != "The title is not unique." {
		t.Errorf("got %q/%q", ve.Field, ve.Message)
	}

	// The stored article must be left untouched.
	stored, _ := repo.GetBySlug(context.Background(), "my-interesting-title")
	if stored.Title != "My Interesting Title" {
		t.Errorf("stored title=%q, want unchanged", stored.Title)
	}
	if repo.updated != nil {
		t.Error("repository update must not run after a validation failure")
	}
}

// In update mode the title length check runs after every other field, so an
// overlong title loses to an earlier failing field.
func TestUpdate_TitleLengthCheckedLast(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	in := validInput()
	in.Title = strings.Repeat("x", 76)
	in.Body = ""

	_, err := svc.Update(context.Background(), "my-interesting-title", in)
	if ve := fieldOf(t, err); ve.Field != "body" {
		t.Errorf("field=%q, want body", ve.Field)
	}

	in.Body = "Body text."
	_, err = svc.Update(context.Background(), "my-interesting-title", in)
	ve := fieldOf(t, err)
	if ve.Field != "title" || ve.Message != "Length cannot exceed 75 characters." {
		t.Errorf("got %q/%q", ve.Field, ve.Message)
	}
}

func TestUpdate_TagsMessageHasNoExample(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	in := validInput()
	in.Tags = "one-single-tag"

	_, err := svc.Update(context.Background(), "my-interesting-title", in)
	ve := fieldOf(t, err)
	if ve.Message != "Error parsing tags. Make sure they are in a comma-separated list." {
		t.Errorf("message=%q", ve.Message)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeImages{})

	_, err := svc.Update(context.Background(), "missing", validInput())
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("err=%v, want ErrArticleNotFound", err)
	}
}

func TestDelete_OK(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeImages{})

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if err := svc.Delete(context.Background(), "my-interesting-title"); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if repo.deletedID != created.ID {
		t.Errorf("deleted id=%d, want %d", repo.deletedID, created.ID)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeImages{})

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("err=%v, want ErrArticleNotFound", err)
	}
}

func TestCreate_UniquenessLookupFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.existsErr = errors.New("connection refused")
	svc := newService(repo, &fakeImages{})

	_, err := svc.Create(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		t.Fatalf("lookup failure must not surface as a validation error, got %v", ve)
	}
}
