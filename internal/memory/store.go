package memory

import (
	"context"
	"io"
	"sync"

	cl "media-catalog/pkg/catelog"

	"github.com/pkg/errors"
	"github.com/twitsprout/tools/json"
)

// Store keeps photos and albums in process memory. It satisfies the same
// store interfaces as the Mongo implementation and hands out copies, so
// callers never share state with it.
type Store struct {
	mu     sync.RWMutex
	albums []cl.Album
	photos []cl.Photo
	index  map[int]int
}

// Seed is the on-disk shape accepted by Load.
type Seed struct {
	Albums []cl.Album `json:"albums"`
	Photos []cl.Photo `json:"photos"`
}

func New(albums []cl.Album, photos []cl.Photo) *Store {
	s := &Store{
		albums: make([]cl.Album, len(albums)),
		photos: make([]cl.Photo, 0, len(photos)),
		index:  make(map[int]int, len(photos)),
	}
	copy(s.albums, albums)
	for _, p := range photos {
		if i, ok := s.index[p.ID]; ok {
			s.photos[i] = clonePhoto(p)
			continue
		}
		s.index[p.ID] = len(s.photos)
		s.photos = append(s.photos, clonePhoto(p))
	}
	return s
}

// Load builds a Store from a JSON seed document.
func Load(r io.Reader) (*Store, error) {
	var seed Seed
	if err := json.Decode(r, &seed); err != nil {
		return nil, errors.Wrap(err, "decode memory seed")
	}
	return New(seed.Albums, seed.Photos), nil
}

func (s *Store) FindPhotoByID(ctx context.Context, id int) (cl.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return cl.Photo{}, cl.ErrNotFound
	}
	return clonePhoto(s.photos[i]), nil
}

func (s *Store) UpdatePhotoByID(ctx context.Context, id int, u cl.PhotoUpdate) (cl.UpdateResult, error) {
	if u.IsEmpty() {
		return cl.UpdateNoOp, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return cl.UpdateNotFound, nil
	}
	if u.Title.Valid {
		s.photos[i].Title = u.Title.String
	}
	if u.Description.Valid {
		s.photos[i].Description = u.Description.String
	}
	return cl.UpdateApplied, nil
}

func (s *Store) AddTagToPhoto(ctx context.Context, id int, tag string) (cl.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return cl.UpdateNotFound, nil
	}
	if s.photos[i].HasTag(tag) {
		return cl.UpdateNoOp, nil
	}
	s.photos[i].Tags = append(s.photos[i].Tags, tag)
	return cl.UpdateApplied, nil
}

func (s *Store) ListPhotosByAlbum(ctx context.Context, albumID int) ([]cl.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := []cl.Photo{}
	for _, p := range s.photos {
		if p.InAlbum(albumID) {
			r = append(r, clonePhoto(p))
		}
	}
	return r, nil
}

func (s *Store) ListAlbums(ctx context.Context) ([]cl.Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := make([]cl.Album, len(s.albums))
	copy(r, s.albums)
	return r, nil
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func clonePhoto(p cl.Photo) cl.Photo {
	c := p
	if p.Tags != nil {
		c.Tags = make([]string, len(p.Tags))
		copy(c.Tags, p.Tags)
	}
	if p.Albums != nil {
		c.Albums = make([]int, len(p.Albums))
		copy(c.Albums, p.Albums)
	}
	return c
}
