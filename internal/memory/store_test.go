package memory

import (
	"context"
	"strings"
	"sync"
	"testing"

	cl "media-catalog/pkg/catelog"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/guregu/null.v3"
)

func newTestStore() *Store {
	return New(
		[]cl.Album{{ID: 10, Name: "Beach"}, {ID: 20, Name: "City"}},
		[]cl.Photo{
			{ID: 1, Title: "A", Description: "B", Tags: []string{"sun"}, Albums: []int{10}},
			{ID: 2, Title: "C", Description: "D", Tags: []string{}, Albums: []int{10, 20}},
			{ID: 3, Title: "E", Description: "F", Albums: []int{20}},
		},
	)
}

func TestFindPhotoByID(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	p, err := s.FindPhotoByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if p.Title != "A" {
		t.Fatalf("unexpected photo: %+v", p)
	}

	// Mutating the returned copy must not leak into the store.
	p.Tags[0] = "changed"
	again, _ := s.FindPhotoByID(ctx, 1)
	if again.Tags[0] != "sun" {
		t.Fatalf("store shares tag slice with caller")
	}

	if _, err := s.FindPhotoByID(ctx, 99); err != cl.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdatePhotoByID(t *testing.T) {
	table := []struct {
		label    string
		id       int
		update   cl.PhotoUpdate
		expRes   cl.UpdateResult
		expTitle string
		expDesc  string
	}{
		{
			label:    "should be a no-op without fields",
			id:       1,
			expRes:   cl.UpdateNoOp,
			expTitle: "A",
			expDesc:  "B",
		},
		{
			label:    "should only change the description",
			id:       1,
			update:   cl.PhotoUpdate{Description: null.StringFrom("New desc")},
			expRes:   cl.UpdateApplied,
			expTitle: "A",
			expDesc:  "New desc",
		},
		{
			label:    "should change both fields",
			id:       1,
			update:   cl.PhotoUpdate{Title: null.StringFrom("T"), Description: null.StringFrom("D")},
			expRes:   cl.UpdateApplied,
			expTitle: "T",
			expDesc:  "D",
		},
		{
			label:    "should report a missing photo",
			id:       99,
			update:   cl.PhotoUpdate{Title: null.StringFrom("T")},
			expRes:   cl.UpdateNotFound,
			expTitle: "A",
			expDesc:  "B",
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			s := newTestStore()
			ctx := context.Background()
			res, err := s.UpdatePhotoByID(ctx, ts.id, ts.update)
			if err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			if res != ts.expRes {
				t.Fatalf("unexpected result: got %s, want %s", res, ts.expRes)
			}
			p, _ := s.FindPhotoByID(ctx, 1)
			if p.Title != ts.expTitle || p.Description != ts.expDesc {
				t.Fatalf("unexpected photo: %+v", p)
			}
		})
	}
}

func TestAddTagToPhoto(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	res, err := s.AddTagToPhoto(ctx, 1, "Sun")
	if err != nil || res != cl.UpdateNoOp {
		t.Fatalf("expected no-op for case variant, got %s %v", res, err)
	}
	res, err = s.AddTagToPhoto(ctx, 1, "beach")
	if err != nil || res != cl.UpdateApplied {
		t.Fatalf("expected applied, got %s %v", res, err)
	}
	res, err = s.AddTagToPhoto(ctx, 3, "night")
	if err != nil || res != cl.UpdateApplied {
		t.Fatalf("expected applied on photo without tags, got %s %v", res, err)
	}
	res, err = s.AddTagToPhoto(ctx, 99, "beach")
	if err != nil || res != cl.UpdateNotFound {
		t.Fatalf("expected not-found, got %s %v", res, err)
	}

	p, _ := s.FindPhotoByID(ctx, 1)
	if !cmp.Equal(p.Tags, []string{"sun", "beach"}) {
		t.Fatalf("unexpected tags: %v", p.Tags)
	}
}

func TestAddTagToPhotoConcurrentVariants(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	variants := []string{"night", "Night", "NIGHT", "nIgHt"}

	var wg sync.WaitGroup
	results := make([]cl.UpdateResult, len(variants))
	for i, v := range variants {
		wg.Add(1)
		go func(i int, v string) {
			defer wg.Done()
			results[i], _ = s.AddTagToPhoto(ctx, 2, v)
		}(i, v)
	}
	wg.Wait()

	applied := 0
	for _, r := range results {
		if r == cl.UpdateApplied {
			applied++
		}
	}
	if applied != 1 {
		t.Fatalf("expected exactly one addition to apply, got %d", applied)
	}
	p, _ := s.FindPhotoByID(ctx, 2)
	if len(p.Tags) != 1 {
		t.Fatalf("unexpected tags: %v", p.Tags)
	}
}

func TestListPhotosByAlbum(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	table := []struct {
		albumID int
		expIDs  []int
	}{
		{10, []int{1, 2}},
		{20, []int{2, 3}},
		{30, []int{}},
	}
	for _, ts := range table {
		photos, err := s.ListPhotosByAlbum(ctx, ts.albumID)
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		ids := []int{}
		for _, p := range photos {
			ids = append(ids, p.ID)
		}
		if !cmp.Equal(ids, ts.expIDs) {
			t.Fatalf("album %d: unexpected ids: %s", ts.albumID, cmp.Diff(ts.expIDs, ids))
		}
	}
}

func TestLoad(t *testing.T) {
	seed := `{
		"albums": [{"id": 10, "name": "Beach"}],
		"photos": [{"id": 1, "title": "A", "description": "B", "tags": ["sun"], "albums": [10]}]
	}`
	s, err := Load(strings.NewReader(seed))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	albums, _ := s.ListAlbums(context.Background())
	if !cmp.Equal(albums, []cl.Album{{ID: 10, Name: "Beach"}}) {
		t.Fatalf("unexpected albums: %v", albums)
	}

	if _, err := Load(strings.NewReader(`{bad`)); err == nil {
		t.Fatalf("expected error decoding bad seed")
	}
}
