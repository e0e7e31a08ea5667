package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"resume-screener/internal/domain/cv"
	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/match"
	"resume-screener/internal/domain/matching"
	"resume-screener/internal/skill"
)

type fakeCVRepo struct {
	mu       sync.Mutex
	profiles map[string]*cv.Profile
	err      error
}

func newFakeCVRepo(profiles ...*cv.Profile) *fakeCVRepo {
	r := &fakeCVRepo{profiles: map[string]*cv.Profile{}}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeCVRepo) Upsert(_ context.Context, profile *cv.Profile) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeCVRepo) FindByID(_ context.Context, cvID string) (*cv.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profiles[cvID], nil
}

type fakeJobRepo struct {
	mu       sync.Mutex
	postings []*job.Posting
	err      error

	listCalls [][2]int
}

func newFakeJobRepo(postings ...*job.Posting) *fakeJobRepo {
	return &fakeJobRepo{postings: postings}
}

func (r *fakeJobRepo) Upsert(_ context.Context, posting *job.Posting) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.postings {
		if p.ID == posting.ID {
			r.postings[i] = posting
			return nil
		}
	}
	r.postings = append(r.postings, posting)
	return nil
}

func (r *fakeJobRepo) List(_ context.Context, limit, offset int) ([]*job.Posting, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls = append(r.listCalls, [2]int{limit, offset})
	if offset >= len(r.postings) {
		return []*job.Posting{}, nil
	}
	end := offset + limit
	if end > len(r.postings) {
		end = len(r.postings)
	}
	return r.postings[offset:end], nil
}

func (r *fakeJobRepo) FindByIDs(_ context.Context, jobIDs []string) ([]*job.Posting, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byID := make(map[string]*job.Posting, len(r.postings))
	for _, p := range r.postings {
		byID[p.ID] = p
	}
	out := make([]*job.Posting, 0, len(jobIDs))
	for _, id := range jobIDs {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	batches [][]match.Result
	err     error
}

func (r *fakeMatchRepo) UpsertBatch(_ context.Context, results []match.Result) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, results)
	return nil
}

func (r *fakeMatchRepo) batchCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.batches)
}

type fakeCache struct {
	mu          sync.Mutex
	store       map[string][]byte
	hits        int
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	c.hits++
	return true, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = b
	return nil
}

func (c *fakeCache) InvalidateRankingsForCV(_ context.Context, cvID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, cvID)
	return nil
}

func testEngineFactory() *EngineFactory {
	dict := skill.NewDictionary()
	return NewEngineFactory(matching.DefaultConfig(), dict, skill.NewExtractor(dict))
}
